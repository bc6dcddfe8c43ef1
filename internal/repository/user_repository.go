package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/userplatform/platform-services/internal/domain"
)

// Sentinel errors returned by the credential store. ErrUnavailable marks the
// retryable class: the backing store could not be reached at all.
var (
	ErrNotFound          = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already exists")
	ErrUnavailable       = errors.New("store unavailable")
)

// UserRepository defines persistence access for platform accounts.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	UpdateEmail(ctx context.Context, id int64, email string) error
	CountByStatus(ctx context.Context) (UserCounts, error)
}

// UserCounts aggregates account totals for reporting.
type UserCounts struct {
	Total  int64
	Active int64
}

type userRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository returns a Postgres-backed implementation.
func NewUserRepository(pool *pgxpool.Pool) UserRepository {
	return &userRepository{pool: pool}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	if r.pool == nil {
		return fmt.Errorf("%w: no connection pool", ErrUnavailable)
	}

	const query = `
        INSERT INTO users (username, password_hash, email, status, created_at)
        VALUES ($1, $2, $3, $4, NOW())
        RETURNING id, created_at`

	err := r.pool.QueryRow(ctx, query,
		user.Username,
		user.PasswordHash,
		user.Email,
		user.Status,
	).Scan(&user.ID, &user.CreatedAt)
	if err != nil {
		return classify(err)
	}
	return nil
}

func (r *userRepository) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("%w: no connection pool", ErrUnavailable)
	}

	const query = `
        SELECT id, username, password_hash, email, status, created_at
        FROM users WHERE username=$1`

	return r.scanUser(r.pool.QueryRow(ctx, query, username))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	if r.pool == nil {
		return nil, fmt.Errorf("%w: no connection pool", ErrUnavailable)
	}

	const query = `
        SELECT id, username, password_hash, email, status, created_at
        FROM users WHERE id=$1`

	return r.scanUser(r.pool.QueryRow(ctx, query, id))
}

func (r *userRepository) UpdateEmail(ctx context.Context, id int64, email string) error {
	if r.pool == nil {
		return fmt.Errorf("%w: no connection pool", ErrUnavailable)
	}

	const query = `UPDATE users SET email=$1 WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, email, id)
	if err != nil {
		return classify(err)
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *userRepository) CountByStatus(ctx context.Context) (UserCounts, error) {
	if r.pool == nil {
		return UserCounts{}, fmt.Errorf("%w: no connection pool", ErrUnavailable)
	}

	const query = `
        SELECT COUNT(*), COUNT(*) FILTER (WHERE status='active')
        FROM users`

	var counts UserCounts
	if err := r.pool.QueryRow(ctx, query).Scan(&counts.Total, &counts.Active); err != nil {
		return UserCounts{}, classify(err)
	}
	return counts, nil
}

func (r *userRepository) scanUser(row pgx.Row) (*domain.User, error) {
	var user domain.User
	if err := row.Scan(
		&user.ID,
		&user.Username,
		&user.PasswordHash,
		&user.Email,
		&user.Status,
		&user.CreatedAt,
	); err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// classify maps driver errors onto the repository's sentinel errors. SQLSTATE
// 23505 is the unique-constraint violation; anything that is neither a SQL
// error nor a missing row is treated as the store being unreachable.
func classify(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			return ErrDuplicateUsername
		}
		return err
	}
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
