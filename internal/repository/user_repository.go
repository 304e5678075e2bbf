package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// UserRepository extends the domain repository with admin listing and
// the balance mutations that must run inside a swap or adjustment
// transaction.
type UserRepository interface {
	user.Repository
	ListUsers(ctx context.Context, limit, offset int) ([]user.User, int64, error)
	AdjustCreditsTx(ctx context.Context, tx database.Tx, id uuid.UUID, delta int) error
	IncrementSwapCountTx(ctx context.Context, tx database.Tx, id uuid.UUID) error
}

const userColumns = `id, name, email, password_hash, location, availability, bio, profile_photo,
	is_public, is_admin, credits, total_swaps, rating, created_at, updated_at`

type PostgresUserRepository struct {
	db database.DB
}

func NewPostgresUserRepository(db database.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) CreateUser(ctx context.Context, u user.User) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO users (id, name, email, password_hash, location, availability, bio, profile_photo, is_public, is_admin, credits, total_swaps, rating)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		u.ID, u.Name, u.Email, u.PasswordHash, u.Location, u.Availability, u.Bio, u.ProfilePhoto,
		u.IsPublic, u.IsAdmin, u.Credits, u.TotalSwaps, u.Rating,
	)
	return err
}

func (r *PostgresUserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
	return scanUser(row)
}

func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM users WHERE email = $1`, email)
	return scanUser(row)
}

func (r *PostgresUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	row := r.db.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, email)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresUserRepository) ListPublicUsers(ctx context.Context, excludeID uuid.UUID) ([]user.User, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users WHERE is_public = TRUE AND id <> $1 ORDER BY created_at ASC`,
		excludeID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]user.User, 0)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresUserRepository) ListUsers(ctx context.Context, limit, offset int) ([]user.User, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM users`).Scan(&total); err != nil {
		return nil, 0, err
	}

	rows, err := r.db.Query(ctx,
		`SELECT `+userColumns+` FROM users ORDER BY created_at ASC LIMIT $1 OFFSET $2`,
		limit, offset,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := make([]user.User, 0, limit)
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, 0, err
		}
		out = append(out, u)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return out, total, nil
}

func (r *PostgresUserRepository) UpdateProfile(ctx context.Context, id uuid.UUID, in user.ProfileUpdate) (user.User, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE users
		 SET name = $1, location = $2, availability = $3, bio = $4, profile_photo = $5, is_public = $6, updated_at = now()
		 WHERE id = $7`,
		in.Name, in.Location, in.Availability, in.Bio, in.ProfilePhoto, in.IsPublic, id,
	)
	if err != nil {
		return user.User{}, err
	}
	if affected == 0 {
		return user.User{}, user.ErrNotFound
	}
	return r.GetUserByID(ctx, id)
}

// AdjustCreditsTx applies a signed delta to the balance inside the
// caller's transaction so the ledger row lands atomically with it.
func (r *PostgresUserRepository) AdjustCreditsTx(ctx context.Context, tx database.Tx, id uuid.UUID, delta int) error {
	affected, err := tx.Exec(ctx,
		`UPDATE users SET credits = credits + $1, updated_at = now() WHERE id = $2`,
		delta, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

func (r *PostgresUserRepository) IncrementSwapCountTx(ctx context.Context, tx database.Tx, id uuid.UUID) error {
	affected, err := tx.Exec(ctx,
		`UPDATE users SET total_swaps = total_swaps + 1, updated_at = now() WHERE id = $1`,
		id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return user.ErrNotFound
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanUser(row scannable) (user.User, error) {
	var u user.User
	err := row.Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Location, &u.Availability, &u.Bio, &u.ProfilePhoto,
		&u.IsPublic, &u.IsAdmin, &u.Credits, &u.TotalSwaps, &u.Rating, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return user.User{}, user.ErrNotFound
		}
		return user.User{}, err
	}
	return u, nil
}
