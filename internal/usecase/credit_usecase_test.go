package usecase

import (
	"context"
	"errors"
	"testing"

	"skillswap/internal/domain/credit"
	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/user"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

func newCreditFixture(users ...user.User) (*Credit, *memDB, *memUserRepo, *memCreditRepo, *memNotifRepo, *memNotifier) {
	db := &memDB{}
	userRepo := newMemUserRepo(users...)
	creditRepo := &memCreditRepo{}
	notifRepo := &memNotifRepo{}
	notifier := &memNotifier{}
	uc := NewCreditUsecase(db, creditRepo, userRepo, newMemSkillRepo(), newMemSwapRepo(), notifRepo, notifier)
	return uc, db, userRepo, creditRepo, notifRepo, notifier
}

func TestAdjustCreditsAppliesDeltaAndLedgerRow(t *testing.T) {
	target := user.User{ID: uuid.New(), Name: "Emily", Credits: 10}
	uc, db, users, credits, notifs, notifier := newCreditFixture(target)

	tx, err := uc.AdjustCredits(context.Background(), AdjustCreditsInput{
		UserID: target.ID,
		Amount: -5,
		Reason: "correction",
	})
	if err != nil {
		t.Fatalf("AdjustCredits: %v", err)
	}

	if tx.Type != credit.TypeAdminAdjustment || tx.Amount != -5 {
		t.Errorf("transaction = %+v", tx)
	}

	after, _ := users.GetUserByID(context.Background(), target.ID)
	if after.Credits != 5 {
		t.Errorf("credits = %d, want 5", after.Credits)
	}

	rows, _ := credits.ListByUser(context.Background(), target.ID)
	if len(rows) != 1 || rows[0].Description != "correction" {
		t.Errorf("ledger rows = %+v", rows)
	}

	if got := notifs.forUser(target.ID); len(got) != 1 || got[0].Type != notification.TypeCredit {
		t.Errorf("notifications = %+v, want one credit notification", got)
	}
	if len(notifier.pushed) != 1 {
		t.Errorf("pushed = %d, want 1", len(notifier.pushed))
	}
	if len(db.txs) != 1 || !db.txs[0].committed {
		t.Error("adjustment must commit one transaction")
	}
}

func TestAdjustCreditsValidation(t *testing.T) {
	target := user.User{ID: uuid.New(), Name: "Emily", Credits: 10}
	uc, db, _, _, _, _ := newCreditFixture(target)

	tests := []struct {
		name string
		in   AdjustCreditsInput
		want error
	}{
		{"zero amount", AdjustCreditsInput{UserID: target.ID, Amount: 0, Reason: "x"}, ErrZeroAmount},
		{"blank reason", AdjustCreditsInput{UserID: target.ID, Amount: 3, Reason: "  "}, ErrMissingReason},
		{"nil user", AdjustCreditsInput{Amount: 3, Reason: "x"}, ErrInvalidInput},
		{"unknown user", AdjustCreditsInput{UserID: uuid.New(), Amount: 3, Reason: "x"}, ErrUserNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := uc.AdjustCredits(context.Background(), tt.in); !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}

	if len(db.txs) != 0 {
		t.Error("invalid adjustments must not open transactions")
	}
}

func TestListLedgerFilters(t *testing.T) {
	target := user.User{ID: uuid.New(), Name: "Emily"}
	other := user.User{ID: uuid.New(), Name: "Sarah"}
	uc, _, _, credits, _, _ := newCreditFixture(target, other)

	seed := []credit.Transaction{
		{ID: uuid.New(), UserID: target.ID, Amount: 1, Type: credit.TypeEarned},
		{ID: uuid.New(), UserID: target.ID, Amount: -1, Type: credit.TypeSpent},
		{ID: uuid.New(), UserID: other.ID, Amount: 2, Type: credit.TypeAdminAdjustment},
	}
	for _, tx := range seed {
		if err := credits.AppendTx(context.Background(), nil, tx); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}

	all, total, err := uc.ListLedger(context.Background(), repository.LedgerFilter{})
	if err != nil || total != 3 || len(all) != 3 {
		t.Fatalf("unfiltered = %d rows, total %d, err %v", len(all), total, err)
	}

	byUser, total, err := uc.ListLedger(context.Background(), repository.LedgerFilter{UserID: target.ID})
	if err != nil || total != 2 || len(byUser) != 2 {
		t.Fatalf("by user = %d rows, total %d, err %v", len(byUser), total, err)
	}

	byType, total, err := uc.ListLedger(context.Background(), repository.LedgerFilter{Type: credit.TypeSpent})
	if err != nil || total != 1 || byType[0].Amount != -1 {
		t.Fatalf("by type = %+v, total %d, err %v", byType, total, err)
	}
}

func TestStatsAggregates(t *testing.T) {
	a := user.User{ID: uuid.New(), Name: "A"}
	b := user.User{ID: uuid.New(), Name: "B"}
	uc, _, _, credits, _, _ := newCreditFixture(a, b)

	_ = credits.AppendTx(context.Background(), nil, credit.Transaction{ID: uuid.New(), UserID: a.ID, Amount: 3, Type: credit.TypeAdminAdjustment})

	stats, err := uc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if stats.ActiveUsers != 2 {
		t.Errorf("active users = %d, want 2", stats.ActiveUsers)
	}
	if stats.CreditsInFlow != 3 {
		t.Errorf("credits in flow = %d, want 3", stats.CreditsInFlow)
	}
}
