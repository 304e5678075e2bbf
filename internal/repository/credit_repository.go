package repository

import (
	"context"
	"strconv"

	"skillswap/internal/database"
	"skillswap/internal/domain/credit"

	"github.com/google/uuid"
)

const creditColumns = `id, user_id, amount, tx_type, description, swap_request_id, created_at`

type LedgerFilter struct {
	UserID uuid.UUID
	Type   credit.TransactionType
	Limit  int
	Offset int
}

type CreditRepository interface {
	AppendTx(ctx context.Context, tx database.Tx, t credit.Transaction) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]credit.Transaction, error)
	List(ctx context.Context, f LedgerFilter) ([]credit.Transaction, int64, error)
	SystemBalance(ctx context.Context) (int64, error)
}

type PostgresCreditRepository struct {
	db database.DB
}

func NewPostgresCreditRepository(db database.DB) *PostgresCreditRepository {
	return &PostgresCreditRepository{db: db}
}

// AppendTx inserts a ledger row inside the caller's transaction.
// The ledger is append-only; there are no update or delete paths.
func (r *PostgresCreditRepository) AppendTx(ctx context.Context, tx database.Tx, t credit.Transaction) error {
	_, err := tx.Exec(ctx,
		`INSERT INTO credit_transactions (id, user_id, amount, tx_type, description, swap_request_id)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		t.ID, t.UserID, t.Amount, t.Type, t.Description, t.SwapRequestID,
	)
	return err
}

func (r *PostgresCreditRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]credit.Transaction, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+creditColumns+` FROM credit_transactions WHERE user_id = $1 ORDER BY created_at DESC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *PostgresCreditRepository) List(ctx context.Context, f LedgerFilter) ([]credit.Transaction, int64, error) {
	where := ` WHERE 1=1`
	args := make([]any, 0, 4)
	if f.UserID != uuid.Nil {
		args = append(args, f.UserID)
		where += ` AND user_id = $1`
	}
	if f.Type != "" {
		args = append(args, f.Type)
		where += ` AND tx_type = $` + strconv.Itoa(len(args))
	}

	var total int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM credit_transactions`+where, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	args = append(args, f.Limit)
	limitArg := len(args)
	args = append(args, f.Offset)
	offsetArg := len(args)

	rows, err := r.db.Query(ctx,
		`SELECT `+creditColumns+` FROM credit_transactions`+where+
			` ORDER BY created_at DESC LIMIT $`+strconv.Itoa(limitArg)+` OFFSET $`+strconv.Itoa(offsetArg),
		args...,
	)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	items, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *PostgresCreditRepository) SystemBalance(ctx context.Context) (int64, error) {
	var sum int64
	if err := r.db.QueryRow(ctx, `SELECT COALESCE(SUM(credits), 0) FROM users`).Scan(&sum); err != nil {
		return 0, err
	}
	return sum, nil
}

func collectTransactions(rows database.Rows) ([]credit.Transaction, error) {
	out := make([]credit.Transaction, 0)
	for rows.Next() {
		var t credit.Transaction
		if err := rows.Scan(&t.ID, &t.UserID, &t.Amount, &t.Type, &t.Description, &t.SwapRequestID, &t.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

