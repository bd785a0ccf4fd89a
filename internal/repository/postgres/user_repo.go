package postgres

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/vedran77/ember/internal/domain"
)

const userColumns = "id, email, first_name, last_name, birth_date, gender, password_hash, created_at, updated_at"

type UserRepo struct {
	pool *pgxpool.Pool
}

func NewUserRepo(pool *pgxpool.Pool) *UserRepo {
	return &UserRepo{pool: pool}
}

func (r *UserRepo) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, email, first_name, last_name, birth_date, gender, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.pool.Exec(ctx, query,
		user.ID, user.Email, user.FirstName, user.LastName,
		user.BirthDate, user.Gender, user.PasswordHash,
		user.CreatedAt, user.UpdatedAt,
	)
	return err
}

func (r *UserRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE id = $1", id)
}

func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.scanUser(ctx, "SELECT "+userColumns+" FROM users WHERE email = $1", email)
}

func (r *UserRepo) SearchByName(ctx context.Context, query string) ([]domain.User, error) {
	rows, err := r.pool.Query(ctx,
		"SELECT "+userColumns+" FROM users WHERE first_name ILIKE '%' || $1 || '%' OR last_name ILIKE '%' || $1 || '%' ORDER BY first_name, last_name",
		query,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []domain.User
	for rows.Next() {
		var u domain.User
		if err := scanUserRow(rows, &u); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

// PickUnswipedUser selects a random user the given user has no swipe row
// against. Random pick keeps the deck order unpredictable; anything smarter
// belongs to a ranking layer this app does not have.
func (r *UserRepo) PickUnswipedUser(ctx context.Context, userID uuid.UUID) (*domain.User, error) {
	query := `
		SELECT ` + userColumns + `
		FROM users u
		WHERE u.id != $1
		  AND u.id NOT IN (SELECT s.target_id FROM swipes s WHERE s.actor_id = $1)
		ORDER BY RANDOM()
		LIMIT 1`
	return r.scanUser(ctx, query, userID)
}

func (r *UserRepo) scanUser(ctx context.Context, query string, arg any) (*domain.User, error) {
	var u domain.User
	err := scanUserRow(r.pool.QueryRow(ctx, query, arg), &u)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func scanUserRow(row pgx.Row, u *domain.User) error {
	return row.Scan(
		&u.ID, &u.Email, &u.FirstName, &u.LastName,
		&u.BirthDate, &u.Gender, &u.PasswordHash,
		&u.CreatedAt, &u.UpdatedAt,
	)
}
