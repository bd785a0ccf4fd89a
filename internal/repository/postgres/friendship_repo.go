package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/ember/internal/domain"
)

type FriendshipRepo struct {
	pool *pgxpool.Pool
}

func NewFriendshipRepo(pool *pgxpool.Pool) *FriendshipRepo {
	return &FriendshipRepo{pool: pool}
}

// Create inserts a request. A unique index over
// (LEAST(requester, addressee), GREATEST(requester, addressee)) guarantees at
// most one row per unordered pair; a conflicting insert reports false.
func (r *FriendshipRepo) Create(ctx context.Context, f *domain.Friendship) (bool, error) {
	query := `
		INSERT INTO friendships (id, requester_id, addressee_id, status, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT ((LEAST(requester_id, addressee_id)), (GREATEST(requester_id, addressee_id))) DO NOTHING`
	tag, err := r.pool.Exec(ctx, query,
		f.ID, f.RequesterID, f.AddresseeID, f.Status, f.CreatedAt,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

func (r *FriendshipRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Friendship, error) {
	query := `
		SELECT id, requester_id, addressee_id, status, created_at
		FROM friendships
		WHERE id = $1`
	return r.scanFriendship(ctx, query, id)
}

func (r *FriendshipRepo) GetBetween(ctx context.Context, userA, userB uuid.UUID) (*domain.Friendship, error) {
	query := `
		SELECT id, requester_id, addressee_id, status, created_at
		FROM friendships
		WHERE (requester_id = $1 AND addressee_id = $2)
		   OR (requester_id = $2 AND addressee_id = $1)`
	var f domain.Friendship
	err := r.pool.QueryRow(ctx, query, userA, userB).Scan(
		&f.ID, &f.RequesterID, &f.AddresseeID, &f.Status, &f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}

func (r *FriendshipRepo) ListPendingFor(ctx context.Context, addresseeID uuid.UUID) ([]domain.Friendship, error) {
	query := `
		SELECT f.id, f.requester_id, f.addressee_id, f.status, f.created_at,
			u.first_name, u.last_name
		FROM friendships f
		JOIN users u ON f.requester_id = u.id
		WHERE f.addressee_id = $1 AND f.status = 'pending'
		ORDER BY f.created_at DESC`

	rows, err := r.pool.Query(ctx, query, addresseeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs []domain.Friendship
	for rows.Next() {
		var f domain.Friendship
		if err := rows.Scan(
			&f.ID, &f.RequesterID, &f.AddresseeID, &f.Status, &f.CreatedAt,
			&f.RequesterFirstName, &f.RequesterLastName,
		); err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return fs, rows.Err()
}

func (r *FriendshipRepo) ListAcceptedFor(ctx context.Context, userID uuid.UUID) ([]domain.Friendship, error) {
	query := `
		SELECT f.id, f.requester_id, f.addressee_id, f.status, f.created_at,
			ur.first_name, ur.last_name, ua.first_name, ua.last_name
		FROM friendships f
		JOIN users ur ON f.requester_id = ur.id
		JOIN users ua ON f.addressee_id = ua.id
		WHERE (f.requester_id = $1 OR f.addressee_id = $1) AND f.status = 'accepted'
		ORDER BY f.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var fs []domain.Friendship
	for rows.Next() {
		var f domain.Friendship
		if err := rows.Scan(
			&f.ID, &f.RequesterID, &f.AddresseeID, &f.Status, &f.CreatedAt,
			&f.RequesterFirstName, &f.RequesterLastName,
			&f.AddresseeFirstName, &f.AddresseeLastName,
		); err != nil {
			return nil, err
		}
		fs = append(fs, f)
	}
	return fs, rows.Err()
}

func (r *FriendshipRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.FriendshipStatus) error {
	_, err := r.pool.Exec(ctx, `UPDATE friendships SET status = $2 WHERE id = $1`, id, status)
	return err
}

func (r *FriendshipRepo) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.pool.Exec(ctx, `DELETE FROM friendships WHERE id = $1`, id)
	return err
}

func (r *FriendshipRepo) scanFriendship(ctx context.Context, query string, arg any) (*domain.Friendship, error) {
	var f domain.Friendship
	err := r.pool.QueryRow(ctx, query, arg).Scan(
		&f.ID, &f.RequesterID, &f.AddresseeID, &f.Status, &f.CreatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &f, nil
}
