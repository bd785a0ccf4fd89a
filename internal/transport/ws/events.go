package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/ember/internal/domain"
)

// Event types - Client → Server
const (
	EventTypePing = "ping"
)

// Event types - Server → Client
const (
	EventTypeMatchNew       = "match.new"
	EventTypeFriendRequest  = "friend.request.new"
	EventTypeFriendAccepted = "friend.request.accepted"
	EventTypePong           = "pong"
	EventTypeError          = "error"
)

// Event is the base envelope for all WebSocket messages.
type Event struct {
	Type      string          `json:"type"`
	Payload   json.RawMessage `json:"payload,omitempty"`
	Timestamp int64           `json:"ts,omitempty"`
}

func NewEvent(eventType string, payload any) (*Event, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return &Event{
		Type:      eventType,
		Payload:   data,
		Timestamp: time.Now().UnixMilli(),
	}, nil
}

// --- Server → Client payloads ---

type MatchPayload struct {
	MatchID     uuid.UUID `json:"match_id"`
	OtherUserID uuid.UUID `json:"other_user_id"`
}

type FriendRequestPayload struct {
	domain.Friendship
}

type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
