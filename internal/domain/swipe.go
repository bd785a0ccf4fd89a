package domain

import (
	"time"

	"github.com/google/uuid"
)

type SwipeKind string

const (
	SwipeLike SwipeKind = "like"
	SwipePass SwipeKind = "pass"
)

func (k SwipeKind) Valid() bool {
	return k == SwipeLike || k == SwipePass
}

// Swipe is a directed action. At most one row exists per (actor, target);
// swiping again overwrites the previous verdict.
type Swipe struct {
	ID        uuid.UUID `json:"id"`
	ActorID   uuid.UUID `json:"actor_id"`
	TargetID  uuid.UUID `json:"target_id"`
	Kind      SwipeKind `json:"kind"`
	CreatedAt time.Time `json:"created_at"`
}

// Match is an unordered pair with UserAID < UserBID (uuid string order).
// At most one row exists per pair.
type Match struct {
	ID        uuid.UUID `json:"id"`
	UserAID   uuid.UUID `json:"user_a_id"`
	UserBID   uuid.UUID `json:"user_b_id"`
	CreatedAt time.Time `json:"created_at"`
	// Joined fields
	OtherUserID    uuid.UUID `json:"other_user_id,omitempty"`
	OtherFirstName string    `json:"other_first_name,omitempty"`
	OtherLastName  string    `json:"other_last_name,omitempty"`
}

// CanonicalPair orders two user IDs so that unordered pairs always hit the
// same row regardless of which side acted.
func CanonicalPair(a, b uuid.UUID) (uuid.UUID, uuid.UUID) {
	if a.String() > b.String() {
		return b, a
	}
	return a, b
}
