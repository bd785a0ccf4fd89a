package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/ember/internal/domain"
	"github.com/vedran77/ember/internal/repository"
)

var (
	ErrCannotFriendSelf     = errors.New("cannot send a friend request to yourself")
	ErrFriendTargetGone     = errors.New("user not found")
	ErrFriendRequestMissing = errors.New("friend request not found")
)

// AddFriendOutcome describes what AddFriend did. All three are normal
// results, not errors.
type AddFriendOutcome string

const (
	OutcomeSent          AddFriendOutcome = "sent"
	OutcomeAccepted      AddFriendOutcome = "accepted"
	OutcomeAlreadyExists AddFriendOutcome = "already_exists"
)

type FriendshipService struct {
	friendRepo repository.FriendshipRepository
	userRepo   repository.UserRepository
	notifier   Notifier
}

func NewFriendshipService(friendRepo repository.FriendshipRepository, userRepo repository.UserRepository) *FriendshipService {
	return &FriendshipService{
		friendRepo: friendRepo,
		userRepo:   userRepo,
	}
}

// SetNotifier sets the real-time notifier (optional dependency).
func (s *FriendshipService) SetNotifier(n Notifier) {
	s.notifier = n
}

// AddFriend sends a friend request to target, auto-accepting when target had
// already asked first. Whichever request row exists between the pair wins;
// at most one ever does.
func (s *FriendshipService) AddFriend(ctx context.Context, userID, targetID uuid.UUID) (AddFriendOutcome, error) {
	if userID == targetID {
		return "", ErrCannotFriendSelf
	}

	target, err := s.userRepo.GetByID(ctx, targetID)
	if err != nil {
		return "", fmt.Errorf("looking up user: %w", err)
	}
	if target == nil {
		return "", ErrFriendTargetGone
	}

	existing, err := s.friendRepo.GetBetween(ctx, userID, targetID)
	if err != nil {
		return "", err
	}

	if existing != nil {
		if existing.Status == domain.FriendshipPending && existing.AddresseeID == userID {
			// The target already asked; asking back means yes.
			if err := s.friendRepo.UpdateStatus(ctx, existing.ID, domain.FriendshipAccepted); err != nil {
				return "", fmt.Errorf("accepting reciprocal request: %w", err)
			}
			existing.Status = domain.FriendshipAccepted
			if s.notifier != nil {
				s.notifier.NotifyFriendAccepted(existing)
			}
			return OutcomeAccepted, nil
		}
		return OutcomeAlreadyExists, nil
	}

	req := &domain.Friendship{
		ID:          uuid.New(),
		RequesterID: userID,
		AddresseeID: targetID,
		Status:      domain.FriendshipPending,
		CreatedAt:   time.Now(),
	}

	inserted, err := s.friendRepo.Create(ctx, req)
	if err != nil {
		return "", fmt.Errorf("creating friend request: %w", err)
	}
	if !inserted {
		// Lost a race against the other side's request.
		return OutcomeAlreadyExists, nil
	}

	if s.notifier != nil {
		s.notifier.NotifyFriendRequest(req)
	}
	return OutcomeSent, nil
}

// GetFriendRequests returns pending requests addressed to the user.
func (s *FriendshipService) GetFriendRequests(ctx context.Context, userID uuid.UUID) ([]domain.Friendship, error) {
	reqs, err := s.friendRepo.ListPendingFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if reqs == nil {
		reqs = []domain.Friendship{}
	}
	return reqs, nil
}

// GetFriends returns accepted friendships involving the user in either role.
func (s *FriendshipService) GetFriends(ctx context.Context, userID uuid.UUID) ([]domain.Friendship, error) {
	friends, err := s.friendRepo.ListAcceptedFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	if friends == nil {
		friends = []domain.Friendship{}
	}
	return friends, nil
}

// AcceptFriendRequest marks the request accepted. Only the addressee may
// accept; anyone else's attempt is silently ignored.
func (s *FriendshipService) AcceptFriendRequest(ctx context.Context, requestID, userID uuid.UUID) error {
	req, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrFriendRequestMissing
	}
	if req.AddresseeID != userID {
		return nil
	}

	if err := s.friendRepo.UpdateStatus(ctx, requestID, domain.FriendshipAccepted); err != nil {
		return fmt.Errorf("accepting friend request: %w", err)
	}
	req.Status = domain.FriendshipAccepted
	if s.notifier != nil {
		s.notifier.NotifyFriendAccepted(req)
	}
	return nil
}

// DeclineFriendRequest deletes the request outright; a decline leaves no
// trace. Same addressee-only guard as accept.
func (s *FriendshipService) DeclineFriendRequest(ctx context.Context, requestID, userID uuid.UUID) error {
	req, err := s.friendRepo.GetByID(ctx, requestID)
	if err != nil {
		return err
	}
	if req == nil {
		return ErrFriendRequestMissing
	}
	if req.AddresseeID != userID {
		return nil
	}

	return s.friendRepo.Delete(ctx, requestID)
}

// SearchUsers finds users by name substring, excluding the searcher.
func (s *FriendshipService) SearchUsers(ctx context.Context, query string, userID uuid.UUID) ([]domain.User, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.User{}, nil
	}

	results, err := s.userRepo.SearchByName(ctx, query)
	if err != nil {
		return nil, err
	}

	users := make([]domain.User, 0, len(results))
	for _, u := range results {
		if u.ID != userID {
			users = append(users, u)
		}
	}
	return users, nil
}
