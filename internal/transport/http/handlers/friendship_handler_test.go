package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vedran77/ember/internal/domain"
	"github.com/vedran77/ember/internal/mocks"
	"github.com/vedran77/ember/internal/service"
	"github.com/vedran77/ember/internal/transport/http/middleware"
)

// asUser injects the acting user the way the auth middleware would.
func asUser(userID uuid.UUID, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), middleware.UserIDKey, userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type friendTestEnv struct {
	users   *mocks.UserRepoMem
	friends *mocks.FriendshipRepoMem
	svc     *service.FriendshipService
}

func newFriendTestEnv(t *testing.T, userCount int) (*friendTestEnv, []uuid.UUID) {
	t.Helper()

	users := mocks.NewUserRepoMem()
	users.Swipes = mocks.NewSwipeRepoMem()
	friends := mocks.NewFriendshipRepoMem()
	friends.Users = users

	ids := make([]uuid.UUID, userCount)
	for i := range ids {
		u := &domain.User{
			ID:        uuid.New(),
			Email:     uuid.NewString() + "@example.com",
			FirstName: "Test",
			LastName:  "User",
			BirthDate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
			Gender:    domain.GenderNonBinary,
		}
		require.NoError(t, users.Create(context.Background(), u))
		ids[i] = u.ID
	}

	return &friendTestEnv{
		users:   users,
		friends: friends,
		svc:     service.NewFriendshipService(friends, users),
	}, ids
}

func (e *friendTestEnv) router(userID uuid.UUID) http.Handler {
	h := NewFriendshipHandler(e.svc)
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/friends", h.ListFriends)
	mux.HandleFunc("GET /api/v1/friends/requests", h.ListRequests)
	mux.HandleFunc("POST /api/v1/friends/requests", h.AddFriend)
	mux.HandleFunc("POST /api/v1/friends/requests/{id}/accept", h.AcceptRequest)
	mux.HandleFunc("POST /api/v1/friends/requests/{id}/decline", h.DeclineRequest)
	mux.HandleFunc("GET /api/v1/friends/search", h.SearchUsers)
	return asUser(userID, mux)
}

func TestAddFriendEndpoint(t *testing.T) {
	env, ids := newFriendTestEnv(t, 2)

	body, _ := json.Marshal(map[string]string{"target_id": ids[1].String()})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/friends/requests", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	env.router(ids[0]).ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]string
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "sent", resp["outcome"])
}

func TestAddFriendEndpointOutcomes(t *testing.T) {
	env, ids := newFriendTestEnv(t, 2)

	send := func(actor, target uuid.UUID) (int, string) {
		body, _ := json.Marshal(map[string]string{"target_id": target.String()})
		req := httptest.NewRequest(http.MethodPost, "/api/v1/friends/requests", bytes.NewReader(body))
		rec := httptest.NewRecorder()
		env.router(actor).ServeHTTP(rec, req)
		var resp map[string]string
		_ = json.NewDecoder(rec.Body).Decode(&resp)
		return rec.Code, resp["outcome"]
	}

	code, outcome := send(ids[0], ids[1])
	assert.Equal(t, http.StatusCreated, code)
	assert.Equal(t, "sent", outcome)

	code, outcome = send(ids[1], ids[0])
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "accepted", outcome)

	code, outcome = send(ids[0], ids[1])
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "already_exists", outcome)
}

func TestAddFriendEndpointErrors(t *testing.T) {
	env, ids := newFriendTestEnv(t, 1)

	// Self-request
	body, _ := json.Marshal(map[string]string{"target_id": ids[0].String()})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/friends/requests", bytes.NewReader(body))
	rec := httptest.NewRecorder()
	env.router(ids[0]).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// Unknown target
	body, _ = json.Marshal(map[string]string{"target_id": uuid.NewString()})
	req = httptest.NewRequest(http.MethodPost, "/api/v1/friends/requests", bytes.NewReader(body))
	rec = httptest.NewRecorder()
	env.router(ids[0]).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	// Garbage body
	req = httptest.NewRequest(http.MethodPost, "/api/v1/friends/requests", bytes.NewBufferString("{"))
	rec = httptest.NewRecorder()
	env.router(ids[0]).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAcceptFriendRequestEndpoint(t *testing.T) {
	env, ids := newFriendTestEnv(t, 2)
	ctx := context.Background()

	_, err := env.svc.AddFriend(ctx, ids[0], ids[1])
	require.NoError(t, err)
	reqs, err := env.svc.GetFriendRequests(ctx, ids[1])
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	url := fmt.Sprintf("/api/v1/friends/requests/%s/accept", reqs[0].ID)
	req := httptest.NewRequest(http.MethodPost, url, nil)
	rec := httptest.NewRecorder()
	env.router(ids[1]).ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Both sides now list the friendship.
	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/friends", nil)
	listRec := httptest.NewRecorder()
	env.router(ids[0]).ServeHTTP(listRec, listReq)
	require.Equal(t, http.StatusOK, listRec.Code)
	var friends []domain.Friendship
	require.NoError(t, json.NewDecoder(listRec.Body).Decode(&friends))
	require.Len(t, friends, 1)
	assert.Equal(t, domain.FriendshipAccepted, friends[0].Status)
}

func TestAcceptFriendRequestEndpointNotFound(t *testing.T) {
	env, ids := newFriendTestEnv(t, 1)

	url := fmt.Sprintf("/api/v1/friends/requests/%s/accept", uuid.New())
	req := httptest.NewRequest(http.MethodPost, url, nil)
	rec := httptest.NewRecorder()
	env.router(ids[0]).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/friends/requests/not-a-uuid/accept", nil)
	rec = httptest.NewRecorder()
	env.router(ids[0]).ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeclineFriendRequestEndpoint(t *testing.T) {
	env, ids := newFriendTestEnv(t, 2)
	ctx := context.Background()

	_, err := env.svc.AddFriend(ctx, ids[0], ids[1])
	require.NoError(t, err)
	reqs, err := env.svc.GetFriendRequests(ctx, ids[1])
	require.NoError(t, err)
	require.Len(t, reqs, 1)

	url := fmt.Sprintf("/api/v1/friends/requests/%s/decline", reqs[0].ID)
	req := httptest.NewRequest(http.MethodPost, url, nil)
	rec := httptest.NewRecorder()
	env.router(ids[1]).ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	f, err := env.friends.GetBetween(ctx, ids[0], ids[1])
	require.NoError(t, err)
	assert.Nil(t, f)
}

func TestSearchUsersEndpoint(t *testing.T) {
	env, ids := newFriendTestEnv(t, 3)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/friends/search?q=user", nil)
	rec := httptest.NewRecorder()
	env.router(ids[0]).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var users []domain.User
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
	assert.Len(t, users, 2)
}
