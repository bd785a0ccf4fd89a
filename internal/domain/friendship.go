package domain

import (
	"time"

	"github.com/google/uuid"
)

type FriendshipStatus string

const (
	FriendshipPending  FriendshipStatus = "pending"
	FriendshipAccepted FriendshipStatus = "accepted"
)

// Friendship keeps its directed identity (who asked whom) even after
// acceptance. Declined requests are deleted, not retained.
type Friendship struct {
	ID          uuid.UUID        `json:"id"`
	RequesterID uuid.UUID        `json:"requester_id"`
	AddresseeID uuid.UUID        `json:"addressee_id"`
	Status      FriendshipStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	// Joined fields
	RequesterFirstName string `json:"requester_first_name,omitempty"`
	RequesterLastName  string `json:"requester_last_name,omitempty"`
	AddresseeFirstName string `json:"addressee_first_name,omitempty"`
	AddresseeLastName  string `json:"addressee_last_name,omitempty"`
}

// Other returns the party that is not userID.
func (f *Friendship) Other(userID uuid.UUID) uuid.UUID {
	if f.RequesterID == userID {
		return f.AddresseeID
	}
	return f.RequesterID
}
