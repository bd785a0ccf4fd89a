package ws

import (
	"log"

	"github.com/vedran77/ember/internal/domain"
)

// HubNotifier implements service.Notifier using the WebSocket Hub.
type HubNotifier struct {
	hub *Hub
}

func NewHubNotifier(hub *Hub) *HubNotifier {
	return &HubNotifier{hub: hub}
}

// NotifyNewMatch tells both parties it's mutual.
func (n *HubNotifier) NotifyNewMatch(match *domain.Match) {
	evtA, err := NewEvent(EventTypeMatchNew, MatchPayload{MatchID: match.ID, OtherUserID: match.UserBID})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(match.UserAID, evtA)

	evtB, err := NewEvent(EventTypeMatchNew, MatchPayload{MatchID: match.ID, OtherUserID: match.UserAID})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(match.UserBID, evtB)
}

// NotifyFriendRequest tells the addressee a request arrived.
func (n *HubNotifier) NotifyFriendRequest(req *domain.Friendship) {
	evt, err := NewEvent(EventTypeFriendRequest, FriendRequestPayload{Friendship: *req})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(req.AddresseeID, evt)
}

// NotifyFriendAccepted tells the original requester their request was
// accepted.
func (n *HubNotifier) NotifyFriendAccepted(req *domain.Friendship) {
	evt, err := NewEvent(EventTypeFriendAccepted, FriendRequestPayload{Friendship: *req})
	if err != nil {
		log.Printf("ws notifier: marshal error: %v", err)
		return
	}
	n.hub.SendToUser(req.RequesterID, evt)
}
