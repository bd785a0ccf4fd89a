package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/ember/internal/domain"
	"github.com/vedran77/ember/internal/mocks"
)

type friendFixture struct {
	svc      *FriendshipService
	friends  *mocks.FriendshipRepoMem
	users    *mocks.UserRepoMem
	notifier *mocks.NotifierRec
}

func newFriendFixture(t *testing.T, userCount int) (*friendFixture, []uuid.UUID) {
	t.Helper()

	users := mocks.NewUserRepoMem()
	users.Swipes = mocks.NewSwipeRepoMem()
	friends := mocks.NewFriendshipRepoMem()
	friends.Users = users

	ids := make([]uuid.UUID, userCount)
	names := []string{"Ana", "Bruno", "Clara", "Dario"}
	for i := range ids {
		u := &domain.User{
			ID:        uuid.New(),
			Email:     uuid.NewString() + "@example.com",
			FirstName: names[i%len(names)],
			LastName:  "Kovac",
			BirthDate: time.Date(1992, 3, 14, 0, 0, 0, 0, time.UTC),
			Gender:    domain.GenderMale,
		}
		require.NoError(t, users.Create(context.Background(), u))
		ids[i] = u.ID
	}

	svc := NewFriendshipService(friends, users)
	notifier := &mocks.NotifierRec{}
	svc.SetNotifier(notifier)

	return &friendFixture{svc: svc, friends: friends, users: users, notifier: notifier}, ids
}

func TestAddFriendSendsRequest(t *testing.T) {
	fx, ids := newFriendFixture(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	outcome, err := fx.svc.AddFriend(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, outcome)

	// The addressee sees it, the requester does not.
	reqs, err := fx.svc.GetFriendRequests(ctx, b)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	assert.Equal(t, a, reqs[0].RequesterID)
	assert.Equal(t, domain.FriendshipPending, reqs[0].Status)

	reqs, err = fx.svc.GetFriendRequests(ctx, a)
	require.NoError(t, err)
	assert.Empty(t, reqs)

	require.Len(t, fx.notifier.FriendRequests, 1)
	assert.Equal(t, b, fx.notifier.FriendRequests[0].AddresseeID)
}

func TestAddFriendReciprocalAutoAccepts(t *testing.T) {
	fx, ids := newFriendFixture(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	outcome, err := fx.svc.AddFriend(ctx, a, b)
	require.NoError(t, err)
	require.Equal(t, OutcomeSent, outcome)

	// B asking back is consent, not a second request.
	outcome, err = fx.svc.AddFriend(ctx, b, a)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAccepted, outcome)

	f, err := fx.friends.GetBetween(ctx, a, b)
	require.NoError(t, err)
	require.NotNil(t, f)
	assert.Equal(t, domain.FriendshipAccepted, f.Status)
	assert.Equal(t, a, f.RequesterID, "directed identity survives acceptance")

	for _, id := range []uuid.UUID{a, b} {
		friends, err := fx.svc.GetFriends(ctx, id)
		require.NoError(t, err)
		assert.Len(t, friends, 1)
	}
	assert.Len(t, fx.notifier.FriendAccepts, 1)
}

func TestAddFriendTwiceAlreadyExists(t *testing.T) {
	fx, ids := newFriendFixture(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := fx.svc.AddFriend(ctx, a, b)
	require.NoError(t, err)
	writes := fx.friends.WriteCount

	outcome, err := fx.svc.AddFriend(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyExists, outcome)
	assert.Equal(t, writes, fx.friends.WriteCount, "no second row, no mutation")
}

func TestAddFriendAfterAcceptedAlreadyExists(t *testing.T) {
	fx, ids := newFriendFixture(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := fx.svc.AddFriend(ctx, a, b)
	require.NoError(t, err)
	_, err = fx.svc.AddFriend(ctx, b, a)
	require.NoError(t, err)

	for _, pair := range [][2]uuid.UUID{{a, b}, {b, a}} {
		outcome, err := fx.svc.AddFriend(ctx, pair[0], pair[1])
		require.NoError(t, err)
		assert.Equal(t, OutcomeAlreadyExists, outcome)
	}
}

func TestAddFriendRejectsSelfAndUnknown(t *testing.T) {
	fx, ids := newFriendFixture(t, 1)
	ctx := context.Background()

	_, err := fx.svc.AddFriend(ctx, ids[0], ids[0])
	assert.ErrorIs(t, err, ErrCannotFriendSelf)

	_, err = fx.svc.AddFriend(ctx, ids[0], uuid.New())
	assert.ErrorIs(t, err, ErrFriendTargetGone)
}

func TestAcceptFriendRequest(t *testing.T) {
	fx, ids := newFriendFixture(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := fx.svc.AddFriend(ctx, a, b)
	require.NoError(t, err)
	reqs, err := fx.svc.GetFriendRequests(ctx, b)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	require.NoError(t, fx.svc.AcceptFriendRequest(ctx, reqs[0].ID, b))

	for _, id := range []uuid.UUID{a, b} {
		friends, err := fx.svc.GetFriends(ctx, id)
		require.NoError(t, err)
		require.Len(t, friends, 1)
		assert.Equal(t, domain.FriendshipAccepted, friends[0].Status)
	}

	// Accepted requests leave the pending list.
	reqs, err = fx.svc.GetFriendRequests(ctx, b)
	require.NoError(t, err)
	assert.Empty(t, reqs)
}

func TestAcceptByNonPartyIsSilentNoop(t *testing.T) {
	fx, ids := newFriendFixture(t, 3)
	ctx := context.Background()
	a, b, outsider := ids[0], ids[1], ids[2]

	_, err := fx.svc.AddFriend(ctx, a, b)
	require.NoError(t, err)
	reqs, err := fx.svc.GetFriendRequests(ctx, b)
	require.NoError(t, err)
	require.Len(t, reqs, 1)
	writes := fx.friends.WriteCount

	// Neither an outsider nor the requester can accept for the addressee.
	require.NoError(t, fx.svc.AcceptFriendRequest(ctx, reqs[0].ID, outsider))
	require.NoError(t, fx.svc.AcceptFriendRequest(ctx, reqs[0].ID, a))

	f, err := fx.friends.GetByID(ctx, reqs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, domain.FriendshipPending, f.Status)
	assert.Equal(t, writes, fx.friends.WriteCount, "guard must not touch the store")
}

func TestAcceptMissingRequest(t *testing.T) {
	fx, ids := newFriendFixture(t, 1)
	err := fx.svc.AcceptFriendRequest(context.Background(), uuid.New(), ids[0])
	assert.ErrorIs(t, err, ErrFriendRequestMissing)
}

func TestDeclineDeletesRow(t *testing.T) {
	fx, ids := newFriendFixture(t, 2)
	ctx := context.Background()
	a, b := ids[0], ids[1]

	_, err := fx.svc.AddFriend(ctx, a, b)
	require.NoError(t, err)
	reqs, err := fx.svc.GetFriendRequests(ctx, b)
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	// The requester cannot decline their own outgoing request.
	require.NoError(t, fx.svc.DeclineFriendRequest(ctx, reqs[0].ID, a))
	f, err := fx.friends.GetBetween(ctx, a, b)
	require.NoError(t, err)
	require.NotNil(t, f)

	require.NoError(t, fx.svc.DeclineFriendRequest(ctx, reqs[0].ID, b))

	f, err = fx.friends.GetBetween(ctx, a, b)
	require.NoError(t, err)
	assert.Nil(t, f, "a declined request leaves no trace")

	// A can now ask again from scratch.
	outcome, err := fx.svc.AddFriend(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, OutcomeSent, outcome)
}

func TestDeclineMissingRequest(t *testing.T) {
	fx, ids := newFriendFixture(t, 1)
	err := fx.svc.DeclineFriendRequest(context.Background(), uuid.New(), ids[0])
	assert.ErrorIs(t, err, ErrFriendRequestMissing)
}

func TestSearchUsersExcludesSelf(t *testing.T) {
	fx, ids := newFriendFixture(t, 4)
	ctx := context.Background()

	results, err := fx.svc.SearchUsers(ctx, "kovac", ids[0])
	require.NoError(t, err)
	assert.Len(t, results, 3)
	for _, u := range results {
		assert.NotEqual(t, ids[0], u.ID)
	}

	results, err = fx.svc.SearchUsers(ctx, "  ", ids[0])
	require.NoError(t, err)
	assert.Empty(t, results)
}
