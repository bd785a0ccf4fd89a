package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/vedran77/ember/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SearchByName(ctx context.Context, query string) ([]domain.User, error)
	// PickUnswipedUser returns a random user the given user has not swiped on
	// yet, or nil when the deck is exhausted.
	PickUnswipedUser(ctx context.Context, userID uuid.UUID) (*domain.User, error)
}

type SwipeRepository interface {
	// Upsert keeps at most one swipe per (actor, target); a re-swipe
	// overwrites the kind and timestamp.
	Upsert(ctx context.Context, swipe *domain.Swipe) error
	GetByActorAndTarget(ctx context.Context, actorID, targetID uuid.UUID) (*domain.Swipe, error)
}

type MatchRepository interface {
	// Create inserts a match for the canonical pair. It reports whether a row
	// was actually inserted; a pre-existing match is not an error.
	Create(ctx context.Context, match *domain.Match) (bool, error)
	GetByUsers(ctx context.Context, userA, userB uuid.UUID) (*domain.Match, error)
	ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Match, error)
}

type FriendshipRepository interface {
	// Create inserts a pending request. It reports whether a row was inserted;
	// a concurrent insert for the same pair is not an error.
	Create(ctx context.Context, friendship *domain.Friendship) (bool, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Friendship, error)
	// GetBetween looks the pair up in either direction.
	GetBetween(ctx context.Context, userA, userB uuid.UUID) (*domain.Friendship, error)
	ListPendingFor(ctx context.Context, addresseeID uuid.UUID) ([]domain.Friendship, error)
	ListAcceptedFor(ctx context.Context, userID uuid.UUID) ([]domain.Friendship, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FriendshipStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	Create(ctx context.Context, profile *domain.Profile) error
	UpdateBio(ctx context.Context, id uuid.UUID, bio string) error
	ListAnswers(ctx context.Context, profileID uuid.UUID) ([]domain.PromptAnswer, error)
	UpsertAnswer(ctx context.Context, answer *domain.PromptAnswer) error
}
