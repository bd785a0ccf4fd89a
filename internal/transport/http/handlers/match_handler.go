package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/vedran77/ember/internal/domain"
	"github.com/vedran77/ember/internal/service"
	"github.com/vedran77/ember/internal/transport/http/middleware"
)

type MatchHandler struct {
	matchService *service.MatchService
}

func NewMatchHandler(matchService *service.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

// GetDeck returns the next candidate the user has not swiped on yet.
func (h *MatchHandler) GetDeck(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	candidate, err := h.matchService.FindPotentialMatch(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR deck: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	if candidate == nil {
		writeJSON(w, http.StatusOK, map[string]any{"candidate": nil})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"candidate": candidate})
}

func (h *MatchHandler) Like(w http.ResponseWriter, r *http.Request) {
	h.swipe(w, r, domain.SwipeLike)
}

func (h *MatchHandler) Pass(w http.ResponseWriter, r *http.Request) {
	h.swipe(w, r, domain.SwipePass)
}

func (h *MatchHandler) swipe(w http.ResponseWriter, r *http.Request, kind domain.SwipeKind) {
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

	if err := h.matchService.RecordSwipe(r.Context(), userID, input.TargetID, kind); err != nil {
		switch {
		case errors.Is(err, service.ErrCannotSwipeSelf):
			writeError(w, http.StatusBadRequest, "CANNOT_SWIPE_SELF", "Cannot swipe on yourself")
		case errors.Is(err, service.ErrSwipeTargetGone):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "User not found")
		default:
			log.Printf("ERROR swipe %s: %v", kind, err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *MatchHandler) ListMatches(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	matches, err := h.matchService.ListMatches(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR list matches: %v", err)
		writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		return
	}

	writeJSON(w, http.StatusOK, matches)
}
