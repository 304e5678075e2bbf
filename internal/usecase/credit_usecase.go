package usecase

import (
	"context"
	"errors"
	"strings"

	"skillswap/internal/database"
	"skillswap/internal/domain/credit"
	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/user"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrZeroAmount    = errors.New("amount must be non-zero")
	ErrMissingReason = errors.New("reason is required")
)

type AdjustCreditsInput struct {
	UserID uuid.UUID
	Amount int
	Reason string
}

type PlatformStats struct {
	ActiveUsers   int64 `json:"active_users"`
	TotalSkills   int64 `json:"total_skills"`
	TotalSwaps    int64 `json:"total_swaps"`
	CreditsInFlow int64 `json:"credits_in_flow"`
}

type CreditUsecase interface {
	ListMyTransactions(ctx context.Context, userID uuid.UUID) ([]credit.Transaction, error)
	AdjustCredits(ctx context.Context, in AdjustCreditsInput) (credit.Transaction, error)
	ListLedger(ctx context.Context, f repository.LedgerFilter) ([]credit.Transaction, int64, error)
	Stats(ctx context.Context) (PlatformStats, error)
}

type Credit struct {
	db       database.DB
	credits  repository.CreditRepository
	users    repository.UserRepository
	skills   repository.SkillRepository
	swaps    repository.SwapRequestRepository
	notifs   repository.NotificationRepository
	notifier Notifier
}

func NewCreditUsecase(
	db database.DB,
	credits repository.CreditRepository,
	users repository.UserRepository,
	skills repository.SkillRepository,
	swaps repository.SwapRequestRepository,
	notifs repository.NotificationRepository,
	notifier Notifier,
) *Credit {
	return &Credit{db: db, credits: credits, users: users, skills: skills, swaps: swaps, notifs: notifs, notifier: notifier}
}

func (u *Credit) ListMyTransactions(ctx context.Context, userID uuid.UUID) ([]credit.Transaction, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.credits.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// AdjustCredits applies an admin delta. The balance update, the
// admin_adjustment ledger row and the user's notification commit
// together or not at all.
func (u *Credit) AdjustCredits(ctx context.Context, in AdjustCreditsInput) (credit.Transaction, error) {
	if in.UserID == uuid.Nil {
		return credit.Transaction{}, ErrInvalidInput
	}
	if in.Amount == 0 {
		return credit.Transaction{}, ErrZeroAmount
	}
	reason := strings.TrimSpace(in.Reason)
	if reason == "" {
		return credit.Transaction{}, ErrMissingReason
	}

	if _, err := u.users.GetUserByID(ctx, in.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return credit.Transaction{}, ErrUserNotFound
		}
		return credit.Transaction{}, ErrInternal
	}

	txRow := credit.Transaction{
		ID:          uuid.New(),
		UserID:      in.UserID,
		Amount:      in.Amount,
		Type:        credit.TypeAdminAdjustment,
		Description: reason,
	}

	notif := notification.Notification{
		ID:      uuid.New(),
		UserID:  in.UserID,
		Title:   "Credit Adjustment",
		Message: "An administrator adjusted your credit balance: " + reason,
		Type:    notification.TypeCredit,
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return credit.Transaction{}, ErrInternal
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := u.users.AdjustCreditsTx(ctx, tx, in.UserID, in.Amount); err != nil {
		return credit.Transaction{}, ErrInternal
	}
	if err := u.credits.AppendTx(ctx, tx, txRow); err != nil {
		return credit.Transaction{}, ErrInternal
	}
	if err := u.notifs.CreateTx(ctx, tx, notif); err != nil {
		return credit.Transaction{}, ErrInternal
	}
	if err := tx.Commit(ctx); err != nil {
		return credit.Transaction{}, ErrInternal
	}

	if u.notifier != nil {
		u.notifier.NotifyUser(notif.UserID, notif)
	}

	return txRow, nil
}

func (u *Credit) ListLedger(ctx context.Context, f repository.LedgerFilter) ([]credit.Transaction, int64, error) {
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 20
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	items, total, err := u.credits.List(ctx, f)
	if err != nil {
		return nil, 0, ErrInternal
	}
	return items, total, nil
}

func (u *Credit) Stats(ctx context.Context) (PlatformStats, error) {
	_, users, err := u.users.ListUsers(ctx, 1, 0)
	if err != nil {
		return PlatformStats{}, ErrInternal
	}
	skills, err := u.skills.Count(ctx)
	if err != nil {
		return PlatformStats{}, ErrInternal
	}
	swaps, err := u.swaps.Count(ctx)
	if err != nil {
		return PlatformStats{}, ErrInternal
	}
	balance, err := u.credits.SystemBalance(ctx)
	if err != nil {
		return PlatformStats{}, ErrInternal
	}

	return PlatformStats{
		ActiveUsers:   users,
		TotalSkills:   skills,
		TotalSwaps:    swaps,
		CreditsInFlow: balance,
	}, nil
}
