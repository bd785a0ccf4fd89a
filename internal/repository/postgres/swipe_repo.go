package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/ember/internal/domain"
)

type SwipeRepo struct {
	pool *pgxpool.Pool
}

func NewSwipeRepo(pool *pgxpool.Pool) *SwipeRepo {
	return &SwipeRepo{pool: pool}
}

func (r *SwipeRepo) Upsert(ctx context.Context, swipe *domain.Swipe) error {
	query := `
		INSERT INTO swipes (id, actor_id, target_id, kind, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (actor_id, target_id)
		DO UPDATE SET kind = EXCLUDED.kind, created_at = EXCLUDED.created_at`
	_, err := r.pool.Exec(ctx, query,
		swipe.ID, swipe.ActorID, swipe.TargetID, swipe.Kind, swipe.CreatedAt,
	)
	return err
}

func (r *SwipeRepo) GetByActorAndTarget(ctx context.Context, actorID, targetID uuid.UUID) (*domain.Swipe, error) {
	query := `
		SELECT id, actor_id, target_id, kind, created_at
		FROM swipes
		WHERE actor_id = $1 AND target_id = $2`
	var s domain.Swipe
	err := r.pool.QueryRow(ctx, query, actorID, targetID).Scan(
		&s.ID, &s.ActorID, &s.TargetID, &s.Kind, &s.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}
