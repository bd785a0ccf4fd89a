// Package mocks provides in-memory repository implementations for tests.
// They mirror the postgres repos' contracts, including the uniqueness
// guarantees the schema enforces (one swipe per ordered pair, one match and
// one friendship per unordered pair).
package mocks

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/vedran77/ember/internal/domain"
)

type pairKey [2]uuid.UUID

func orderedKey(a, b uuid.UUID) pairKey {
	return pairKey{a, b}
}

func canonicalKey(a, b uuid.UUID) pairKey {
	x, y := domain.CanonicalPair(a, b)
	return pairKey{x, y}
}

// UserRepoMem backs UserRepository. PickUnswipedUser consults the linked
// SwipeRepoMem and picks deterministically (lowest ID first) so deck tests
// don't depend on randomness.
type UserRepoMem struct {
	mu     sync.Mutex
	users  map[uuid.UUID]*domain.User
	Swipes *SwipeRepoMem
}

func NewUserRepoMem() *UserRepoMem {
	return &UserRepoMem{users: make(map[uuid.UUID]*domain.User)}
}

func (r *UserRepoMem) Create(ctx context.Context, user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.ID] = &cp
	return nil
}

func (r *UserRepoMem) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *UserRepoMem) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *UserRepoMem) SearchByName(ctx context.Context, query string) ([]domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	q := strings.ToLower(query)
	var out []domain.User
	for _, u := range r.users {
		if strings.Contains(strings.ToLower(u.FirstName), q) || strings.Contains(strings.ToLower(u.LastName), q) {
			out = append(out, *u)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.String() < out[j].ID.String() })
	return out, nil
}

func (r *UserRepoMem) PickUnswipedUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	r.mu.Lock()
	candidates := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		if u.ID != userID {
			candidates = append(candidates, u)
		}
	}
	r.mu.Unlock()

	sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID.String() < candidates[j].ID.String() })
	for _, u := range candidates {
		swipe, err := r.Swipes.GetByActorAndTarget(ctx, userID, u.ID)
		if err != nil {
			return nil, err
		}
		if swipe == nil {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

type SwipeRepoMem struct {
	mu     sync.Mutex
	swipes map[pairKey]*domain.Swipe
}

func NewSwipeRepoMem() *SwipeRepoMem {
	return &SwipeRepoMem{swipes: make(map[pairKey]*domain.Swipe)}
}

func (r *SwipeRepoMem) Upsert(ctx context.Context, swipe *domain.Swipe) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *swipe
	r.swipes[orderedKey(swipe.ActorID, swipe.TargetID)] = &cp
	return nil
}

func (r *SwipeRepoMem) GetByActorAndTarget(ctx context.Context, actorID, targetID uuid.UUID) (*domain.Swipe, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	s, ok := r.swipes[orderedKey(actorID, targetID)]
	if !ok {
		return nil, nil
	}
	cp := *s
	return &cp, nil
}

// MatchRepoMem enforces at-most-one match per unordered pair, the way the
// unique index does in postgres.
type MatchRepoMem struct {
	mu      sync.Mutex
	matches map[pairKey]*domain.Match
	Users   *UserRepoMem
}

func NewMatchRepoMem() *MatchRepoMem {
	return &MatchRepoMem{matches: make(map[pairKey]*domain.Match)}
}

func (r *MatchRepoMem) Create(ctx context.Context, match *domain.Match) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	key := canonicalKey(match.UserAID, match.UserBID)
	if _, exists := r.matches[key]; exists {
		return false, nil
	}
	cp := *match
	r.matches[key] = &cp
	return true, nil
}

func (r *MatchRepoMem) GetByUsers(ctx context.Context, userA, userB uuid.UUID) (*domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.matches[canonicalKey(userA, userB)]
	if !ok {
		return nil, nil
	}
	cp := *m
	return &cp, nil
}

func (r *MatchRepoMem) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Match, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Match
	for _, m := range r.matches {
		if m.UserAID != userID && m.UserBID != userID {
			continue
		}
		cp := *m
		cp.OtherUserID = m.UserBID
		if m.UserBID == userID {
			cp.OtherUserID = m.UserAID
		}
		if r.Users != nil {
			if other, _ := r.Users.GetByID(ctx, cp.OtherUserID); other != nil {
				cp.OtherFirstName = other.FirstName
				cp.OtherLastName = other.LastName
			}
		}
		out = append(out, cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

// FriendshipRepoMem enforces at-most-one row per unordered pair. WriteCount
// tracks mutations so tests can assert that guarded paths stay read-only.
type FriendshipRepoMem struct {
	mu         sync.Mutex
	rows       map[uuid.UUID]*domain.Friendship
	Users      *UserRepoMem
	WriteCount int
}

func NewFriendshipRepoMem() *FriendshipRepoMem {
	return &FriendshipRepoMem{rows: make(map[uuid.UUID]*domain.Friendship)}
}

func (r *FriendshipRepoMem) Create(ctx context.Context, f *domain.Friendship) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if canonicalKey(existing.RequesterID, existing.AddresseeID) == canonicalKey(f.RequesterID, f.AddresseeID) {
			return false, nil
		}
	}
	cp := *f
	r.rows[f.ID] = &cp
	r.WriteCount++
	return true, nil
}

func (r *FriendshipRepoMem) GetByID(ctx context.Context, id uuid.UUID) (*domain.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	f, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	cp := *f
	return &cp, nil
}

func (r *FriendshipRepoMem) GetBetween(ctx context.Context, userA, userB uuid.UUID) (*domain.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, f := range r.rows {
		if canonicalKey(f.RequesterID, f.AddresseeID) == canonicalKey(userA, userB) {
			cp := *f
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *FriendshipRepoMem) ListPendingFor(ctx context.Context, addresseeID uuid.UUID) ([]domain.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Friendship
	for _, f := range r.rows {
		if f.AddresseeID == addresseeID && f.Status == domain.FriendshipPending {
			out = append(out, r.withNames(ctx, f))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *FriendshipRepoMem) ListAcceptedFor(ctx context.Context, userID uuid.UUID) ([]domain.Friendship, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Friendship
	for _, f := range r.rows {
		if (f.RequesterID == userID || f.AddresseeID == userID) && f.Status == domain.FriendshipAccepted {
			out = append(out, r.withNames(ctx, f))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *FriendshipRepoMem) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FriendshipStatus) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f, ok := r.rows[id]; ok {
		f.Status = status
		r.WriteCount++
	}
	return nil
}

func (r *FriendshipRepoMem) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; ok {
		delete(r.rows, id)
		r.WriteCount++
	}
	return nil
}

func (r *FriendshipRepoMem) withNames(ctx context.Context, f *domain.Friendship) domain.Friendship {
	cp := *f
	if r.Users == nil {
		return cp
	}
	if req, _ := r.Users.GetByID(ctx, f.RequesterID); req != nil {
		cp.RequesterFirstName = req.FirstName
		cp.RequesterLastName = req.LastName
	}
	if addr, _ := r.Users.GetByID(ctx, f.AddresseeID); addr != nil {
		cp.AddresseeFirstName = addr.FirstName
		cp.AddresseeLastName = addr.LastName
	}
	return cp
}

type ProfileRepoMem struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*domain.Profile
	answers  map[uuid.UUID]map[domain.PromptKind]*domain.PromptAnswer
}

func NewProfileRepoMem() *ProfileRepoMem {
	return &ProfileRepoMem{
		profiles: make(map[uuid.UUID]*domain.Profile),
		answers:  make(map[uuid.UUID]map[domain.PromptKind]*domain.PromptAnswer),
	}
}

func (r *ProfileRepoMem) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, p := range r.profiles {
		if p.UserID == userID {
			cp := *p
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *ProfileRepoMem) Create(ctx context.Context, profile *domain.Profile) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *profile
	r.profiles[profile.ID] = &cp
	return nil
}

func (r *ProfileRepoMem) UpdateBio(ctx context.Context, id uuid.UUID, bio string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.profiles[id]; ok {
		p.Bio = bio
	}
	return nil
}

func (r *ProfileRepoMem) ListAnswers(ctx context.Context, profileID uuid.UUID) ([]domain.PromptAnswer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.PromptAnswer
	for _, a := range r.answers[profileID] {
		out = append(out, *a)
	}
	return out, nil
}

func (r *ProfileRepoMem) UpsertAnswer(ctx context.Context, answer *domain.PromptAnswer) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.answers[answer.ProfileID] == nil {
		r.answers[answer.ProfileID] = make(map[domain.PromptKind]*domain.PromptAnswer)
	}
	cp := *answer
	if existing, ok := r.answers[answer.ProfileID][answer.Prompt]; ok {
		existing.Answer = answer.Answer
		existing.UpdatedAt = answer.UpdatedAt
		return nil
	}
	r.answers[answer.ProfileID][answer.Prompt] = &cp
	return nil
}

// NotifierRec records notifications for assertions.
type NotifierRec struct {
	mu             sync.Mutex
	Matches        []domain.Match
	FriendRequests []domain.Friendship
	FriendAccepts  []domain.Friendship
}

func (n *NotifierRec) NotifyNewMatch(match *domain.Match) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.Matches = append(n.Matches, *match)
}

func (n *NotifierRec) NotifyFriendRequest(req *domain.Friendship) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.FriendRequests = append(n.FriendRequests, *req)
}

func (n *NotifierRec) NotifyFriendAccepted(req *domain.Friendship) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.FriendAccepts = append(n.FriendAccepts, *req)
}
