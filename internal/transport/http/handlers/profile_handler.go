package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/vedran77/ember/internal/domain"
	"github.com/vedran77/ember/internal/service"
	"github.com/vedran77/ember/internal/transport/http/middleware"
	"github.com/vedran77/ember/pkg/validator"
)

type ProfileHandler struct {
	profileService *service.ProfileService
}

func NewProfileHandler(profileService *service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

func (h *ProfileHandler) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	view, err := h.profileService.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		} else {
			log.Printf("ERROR get profile: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	writeJSON(w, http.StatusOK, view)
}

func (h *ProfileHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input struct {
		Bio     string                       `json:"bio"`
		Answers map[domain.PromptKind]string `json:"answers"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "INVALID_JSON", "Invalid request body")
		return
	}

	if errs := validator.ValidateProfile(input.Bio, input.Answers); errs.HasErrors() {
		writeValidationErrors(w, errs)
		return
	}

	if err := h.profileService.UpdateProfile(r.Context(), userID, input.Bio, input.Answers); err != nil {
		switch {
		case errors.Is(err, service.ErrProfileNotFound):
			writeError(w, http.StatusNotFound, "NOT_FOUND", "Profile not found")
		case errors.Is(err, service.ErrUnknownPrompt):
			writeError(w, http.StatusBadRequest, "UNKNOWN_PROMPT", "Unknown prompt kind")
		default:
			log.Printf("ERROR update profile: %v", err)
			writeError(w, http.StatusInternalServerError, "INTERNAL", "Something went wrong")
		}
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// ListPrompts enumerates the prompt catalog in display order.
func (h *ProfileHandler) ListPrompts(w http.ResponseWriter, r *http.Request) {
	type prompt struct {
		Kind domain.PromptKind `json:"kind"`
		Text string            `json:"text"`
	}
	prompts := make([]prompt, 0, len(domain.PromptKinds))
	for _, k := range domain.PromptKinds {
		prompts = append(prompts, prompt{Kind: k, Text: k.Text()})
	}
	writeJSON(w, http.StatusOK, prompts)
}
