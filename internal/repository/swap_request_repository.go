package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"skillswap/internal/database"
	"skillswap/internal/domain/swap"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var ErrSwapRequestNotFound = errors.New("swap request not found")

const swapRequestColumns = `id, sender_id, receiver_id, offered_skill_id, wanted_skill_id,
	status, message, feedback, rating, created_at, completed_at`

type SwapRequestRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (swap.Request, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]swap.Request, error)
	Count(ctx context.Context) (int64, error)
	CreateTx(ctx context.Context, tx database.Tx, req swap.Request) error
	UpdateStatusTx(ctx context.Context, tx database.Tx, id uuid.UUID, status swap.Status) error
	CompleteTx(ctx context.Context, tx database.Tx, id uuid.UUID, feedback string, rating int, completedAt time.Time) error
}

type PostgresSwapRequestRepository struct {
	db database.DB
}

func NewPostgresSwapRequestRepository(db database.DB) *PostgresSwapRequestRepository {
	return &PostgresSwapRequestRepository{db: db}
}

func (r *PostgresSwapRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (swap.Request, error) {
	row := r.db.QueryRow(ctx, `SELECT `+swapRequestColumns+` FROM swap_requests WHERE id = $1`, id)
	return scanSwapRequest(row)
}

func (r *PostgresSwapRequestRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]swap.Request, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+swapRequestColumns+` FROM swap_requests
		 WHERE sender_id = $1 OR receiver_id = $1
		 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]swap.Request, 0)
	for rows.Next() {
		req, err := scanSwapRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, req)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSwapRequestRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM swap_requests`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *PostgresSwapRequestRepository) CreateTx(ctx context.Context, tx database.Tx, req swap.Request) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO swap_requests (id, sender_id, receiver_id, offered_skill_id, wanted_skill_id, status, message)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		req.ID, req.SenderID, req.ReceiverID, req.OfferedSkillID, req.WantedSkillID, req.Status, req.Message,
	)
	return err
}

// UpdateStatusTx guards the transition in SQL as well: the WHERE clause
// only matches rows whose current status permits the move, so concurrent
// updates of the same request cannot both apply.
func (r *PostgresSwapRequestRepository) UpdateStatusTx(ctx context.Context, tx database.Tx, id uuid.UUID, status swap.Status) error {
	affected, err := tx.Exec(ctx,
		`UPDATE swap_requests SET status = $1 WHERE id = $2 AND status = 'pending'`,
		status, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSwapRequestNotFound
	}
	return nil
}

func (r *PostgresSwapRequestRepository) CompleteTx(ctx context.Context, tx database.Tx, id uuid.UUID, feedback string, rating int, completedAt time.Time) error {
	affected, err := tx.Exec(ctx,
		`UPDATE swap_requests
		 SET status = 'completed', feedback = $1, rating = $2, completed_at = $3
		 WHERE id = $4 AND status = 'accepted'`,
		feedback, rating, completedAt, id,
	)
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrSwapRequestNotFound
	}
	return nil
}

func scanSwapRequest(row scannable) (swap.Request, error) {
	var req swap.Request
	err := row.Scan(
		&req.ID, &req.SenderID, &req.ReceiverID, &req.OfferedSkillID, &req.WantedSkillID,
		&req.Status, &req.Message, &req.Feedback, &req.Rating, &req.CreatedAt, &req.CompletedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return swap.Request{}, ErrSwapRequestNotFound
		}
		return swap.Request{}, err
	}
	return req, nil
}
