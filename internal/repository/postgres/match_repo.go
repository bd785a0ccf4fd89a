package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/ember/internal/domain"
)

type MatchRepo struct {
	pool *pgxpool.Pool
}

func NewMatchRepo(pool *pgxpool.Pool) *MatchRepo {
	return &MatchRepo{pool: pool}
}

// Create relies on the unique index over the canonical pair: two concurrent
// mutual-like detections insert at most one row, the loser is a no-op.
func (r *MatchRepo) Create(ctx context.Context, match *domain.Match) (bool, error) {
	query := `
		INSERT INTO matches (id, user_a_id, user_b_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_a_id, user_b_id) DO NOTHING`
	tag, err := r.pool.Exec(ctx, query,
		match.ID, match.UserAID, match.UserBID, match.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *MatchRepo) GetByUsers(ctx context.Context, userA, userB uuid.UUID) (*domain.Match, error) {
	a, b := domain.CanonicalPair(userA, userB)
	query := `
		SELECT id, user_a_id, user_b_id, created_at
		FROM matches
		WHERE user_a_id = $1 AND user_b_id = $2`
	var m domain.Match
	err := r.pool.QueryRow(ctx, query, a, b).Scan(
		&m.ID, &m.UserAID, &m.UserBID, &m.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *MatchRepo) ListForUser(ctx context.Context, userID uuid.UUID) ([]domain.Match, error) {
	query := `
		SELECT m.id, m.user_a_id, m.user_b_id, m.created_at,
			CASE WHEN m.user_a_id = $1 THEN m.user_b_id ELSE m.user_a_id END AS other_user_id,
			CASE WHEN m.user_a_id = $1 THEN ub.first_name ELSE ua.first_name END AS other_first_name,
			CASE WHEN m.user_a_id = $1 THEN ub.last_name ELSE ua.last_name END AS other_last_name
		FROM matches m
		JOIN users ua ON m.user_a_id = ua.id
		JOIN users ub ON m.user_b_id = ub.id
		WHERE m.user_a_id = $1 OR m.user_b_id = $1
		ORDER BY m.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var matches []domain.Match
	for rows.Next() {
		var m domain.Match
		if err := rows.Scan(
			&m.ID, &m.UserAID, &m.UserBID, &m.CreatedAt,
			&m.OtherUserID, &m.OtherFirstName, &m.OtherLastName,
		); err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}
