package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/ember/internal/domain"
	"github.com/vedran77/ember/internal/repository"
)

var (
	ErrCannotSwipeSelf  = errors.New("cannot swipe on yourself")
	ErrSwipeTargetGone  = errors.New("swipe target not found")
	ErrInvalidSwipeKind = errors.New("invalid swipe kind")
)

// Notifier broadcasts real-time events to connected clients.
type Notifier interface {
	NotifyNewMatch(match *domain.Match)
	NotifyFriendRequest(req *domain.Friendship)
	NotifyFriendAccepted(req *domain.Friendship)
}

type MatchService struct {
	swipeRepo repository.SwipeRepository
	matchRepo repository.MatchRepository
	userRepo  repository.UserRepository
	notifier  Notifier
}

func NewMatchService(
	swipeRepo repository.SwipeRepository,
	matchRepo repository.MatchRepository,
	userRepo repository.UserRepository,
) *MatchService {
	return &MatchService{
		swipeRepo: swipeRepo,
		matchRepo: matchRepo,
		userRepo:  userRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *MatchService) SetNotifier(n Notifier) {
	s.notifier = n
}

// RecordSwipe persists a like or pass from actor toward target and, on a
// like, checks whether the pair is now mutual. Swiping the same target again
// overwrites the earlier verdict, so a pass corrected to a like becomes
// match-eligible.
func (s *MatchService) RecordSwipe(ctx context.Context, actorID, targetID uuid.UUID, kind domain.SwipeKind) error {
	if !kind.Valid() {
		return ErrInvalidSwipeKind
	}
	if actorID == targetID {
		return ErrCannotSwipeSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return fmt.Errorf("looking up target: %w", err)
	}
	if target == nil {
		return ErrSwipeTargetGone
	}

	swipe := &domain.Swipe{
		ID:        uuid.New(),
		ActorID:   actorID,
		TargetID:  targetID,
		Kind:      kind,
		CreatedAt: time.Now(),
	}
	if err := s.swipeRepo.Upsert(ctx, swipe); err != nil {
		return fmt.Errorf("recording swipe: %w", err)
	}

	if kind != domain.SwipeLike {
		return nil
	}
	return s.checkForMatch(ctx, actorID, targetID)
}

// checkForMatch creates a match when the reverse like exists. The insert is
// conflict-as-no-op, so two overlapping mutual likes still end up with a
// single row and a single notification.
func (s *MatchService) checkForMatch(ctx context.Context, actorID, targetID uuid.UUID) error {
	reverse, err := s.swipeRepo.GetByActorAndTarget(ctx, targetID, actorID)
	if err != nil {
		return fmt.Errorf("looking up reverse swipe: %w", err)
	}
	if reverse == nil || reverse.Kind != domain.SwipeLike {
		return nil
	}

	a, b := domain.CanonicalPair(actorID, targetID)
	match := &domain.Match{
		ID:        uuid.New(),
		UserAID:   a,
		UserBID:   b,
		CreatedAt: time.Now(),
	}

	inserted, err := s.matchRepo.Create(ctx, match)
	if err != nil {
		return fmt.Errorf("creating match: %w", err)
	}
	if inserted && s.notifier != nil {
		s.notifier.NotifyNewMatch(match)
	}
	return nil
}

// FindPotentialMatch returns the next card for the user's deck: someone they
// have never swiped on. Returns nil when no candidate is left.
func (s *MatchService) FindPotentialMatch(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	return s.userRepo.PickUnswipedUser(ctx, userID)
}

// ListMatches returns every mutual match involving the user, with the other
// party's identity joined in.
func (s *MatchService) ListMatches(ctx context.Context, userID uuid.UUID) ([]domain.Match, error) {
	matches, err := s.matchRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if matches == nil {
		matches = []domain.Match{}
	}
	return matches, nil
}

// MatchedUserIDs returns the other party of every match involving the user.
func (s *MatchService) MatchedUserIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	matches, err := s.matchRepo.ListForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(matches))
	for _, m := range matches {
		ids = append(ids, m.OtherUserID)
	}
	return ids, nil
}
