package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/ember/internal/domain"
)

type ProfileRepo struct {
	pool *pgxpool.Pool
}

func NewProfileRepo(pool *pgxpool.Pool) *ProfileRepo {
	return &ProfileRepo{pool: pool}
}

func (r *ProfileRepo) GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error) {
	query := `
		SELECT id, user_id, bio, created_at, updated_at
		FROM profiles
		WHERE user_id = $1`
	var p domain.Profile
	err := r.pool.QueryRow(ctx, query, userID).Scan(
		&p.ID, &p.UserID, &p.Bio, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, bio, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(ctx, query,
		profile.ID, profile.UserID, profile.Bio, profile.CreatedAt, profile.UpdatedAt,
	)
	return err
}

func (r *ProfileRepo) UpdateBio(ctx context.Context, id uuid.UUID, bio string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE profiles SET bio = $2, updated_at = NOW() WHERE id = $1`,
		id, bio,
	)
	return err
}

func (r *ProfileRepo) ListAnswers(ctx context.Context, profileID uuid.UUID) ([]domain.PromptAnswer, error) {
	query := `
		SELECT id, profile_id, prompt, answer, created_at, updated_at
		FROM prompt_answers
		WHERE profile_id = $1`

	rows, err := r.pool.Query(ctx, query, profileID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var answers []domain.PromptAnswer
	for rows.Next() {
		var a domain.PromptAnswer
		if err := rows.Scan(
			&a.ID, &a.ProfileID, &a.Prompt, &a.Answer, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		answers = append(answers, a)
	}
	return answers, rows.Err()
}

func (r *ProfileRepo) UpsertAnswer(ctx context.Context, answer *domain.PromptAnswer) error {
	query := `
		INSERT INTO prompt_answers (id, profile_id, prompt, answer, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (profile_id, prompt)
		DO UPDATE SET answer = EXCLUDED.answer, updated_at = EXCLUDED.updated_at`
	_, err := r.pool.Exec(ctx, query,
		answer.ID, answer.ProfileID, answer.Prompt, answer.Answer,
		answer.CreatedAt, answer.UpdatedAt,
	)
	return err
}
