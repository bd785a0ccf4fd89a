package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/vedran77/ember/internal/domain"
	"github.com/vedran77/ember/internal/repository"
)

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrUnknownPrompt   = errors.New("unknown prompt")
)

type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

// ProfileView is a profile with its answers in catalog order.
type ProfileView struct {
	Profile *domain.Profile       `json:"profile"`
	Answers []domain.PromptAnswer `json:"answers"`
}

func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*ProfileView, error) {
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}

	answers, err := s.profileRepo.ListAnswers(ctx, profile.ID)
	if err != nil {
		return nil, err
	}
	if answers == nil {
		answers = []domain.PromptAnswer{}
	}

	order := make(map[domain.PromptKind]int, len(domain.PromptKinds))
	for i, k := range domain.PromptKinds {
		order[k] = i
	}
	sort.Slice(answers, func(i, j int) bool {
		return order[answers[i].Prompt] < order[answers[j].Prompt]
	})

	return &ProfileView{Profile: profile, Answers: answers}, nil
}

// UpdateProfile replaces the bio and upserts the given prompt answers. Blank
// answers are skipped rather than stored.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, bio string, answers map[domain.PromptKind]string) error {
	for kind := range answers {
		if !kind.Valid() {
			return ErrUnknownPrompt
		}
	}

	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}
	if profile == nil {
		return ErrProfileNotFound
	}

	if err := s.profileRepo.UpdateBio(ctx, profile.ID, bio); err != nil {
		return fmt.Errorf("updating bio: %w", err)
	}

	now := time.Now()
	for kind, text := range answers {
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		answer := &domain.PromptAnswer{
			ID:        uuid.New(),
			ProfileID: profile.ID,
			Prompt:    kind,
			Answer:    text,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := s.profileRepo.UpsertAnswer(ctx, answer); err != nil {
			return fmt.Errorf("saving answer %q: %w", kind, err)
		}
	}
	return nil
}
