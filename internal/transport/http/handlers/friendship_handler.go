package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/ember/internal/service"
	"github.com/vedran77/ember/internal/transport/http/middleware"
)

type FriendshipHandler struct {
	friendService *service.FriendshipService
}

func NewFriendshipHandler(friendService *service.FriendshipService) *FriendshipHandler {
	return &FriendshipHandler{friendService: friendService}
}

func (h *FriendshipHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input struct {
		TargetID uuid.UUID `json:"target_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}
	if input.TargetID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "MISSING_TARGET", "target_id is required")
		return
	}

	outcome, err := h.friendService.AddFriend(r.Context(), userID, input.TargetID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCannotFriendSelf):
			writeError(w, http.StatusBadRequest, "CANNOT_FRIEND_SELF", "Cannot send a request to yourself")
		case errors.Is(err, service.ErrFriendTargetGone):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			log.Printf("ERROR add friend: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	status := http.StatusCreated
	if outcome != service.OutcomeSent {
		status = http.StatusOK
	}
	writeJSON(w, status, map[string]string{"outcome": string(outcome)})
}

func (h *FriendshipHandler) ListFriends(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	friends, err := h.friendService.GetFriends(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list friends: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, friends)
}

func (h *FriendshipHandler) ListRequests(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	reqs, err := h.friendService.GetFriendRequests(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list friend requests: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, reqs)
}

func (h *FriendshipHandler) AcceptRequest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	requestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	if err := h.friendService.AcceptFriendRequest(r.Context(), requestID, userID); err != nil {
		if errors.Is(err, service.ErrFriendRequestMissing) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Request not found")
		} else {
			log.Printf("ERROR accept friend request: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FriendshipHandler) DeclineRequest(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	requestID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_ID", "Invalid request ID")
		return
	}

	if err := h.friendService.DeclineFriendRequest(r.Context(), requestID, userID); err != nil {
		if errors.Is(err, service.ErrFriendRequestMissing) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Request not found")
		} else {
			log.Printf("ERROR decline friend request: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *FriendshipHandler) SearchUsers(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())
	query := r.URL.Query().Get("q")

	users, err := h.friendService.SearchUsers(r.Context(), query, userID)
	if err != nil {
		log.Printf("ERROR search users: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, users)
}
