package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"skillswap/internal/database"
	"skillswap/internal/domain/credit"
	"skillswap/internal/domain/notification"
	"skillswap/internal/domain/skill"
	"skillswap/internal/domain/swap"
	"skillswap/internal/domain/user"
	"skillswap/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrSwapRequestNotFound = errors.New("swap request not found")
	ErrInvalidTransition   = errors.New("invalid status transition")
	ErrInvalidRating       = errors.New("invalid rating")
)

// creditPerSwap is the fixed exchange rate: one credit moves from the
// receiver (learner) to the sender (teacher) per completed swap.
const creditPerSwap = 1

// Notifier pushes a stored notification to connected clients. Delivery
// is best effort and happens after the owning transaction commits.
type Notifier interface {
	NotifyUser(userID uuid.UUID, n notification.Notification)
}

type SendSwapRequestInput struct {
	ReceiverID     uuid.UUID
	OfferedSkillID uuid.UUID
	WantedSkillID  uuid.UUID
	Message        string
}

type CompleteSwapInput struct {
	Feedback string
	Rating   int
}

type SwapUsecase interface {
	SendRequest(ctx context.Context, senderID uuid.UUID, in SendSwapRequestInput) (swap.Request, error)
	ListRequests(ctx context.Context, userID uuid.UUID) ([]swap.Request, error)
	Accept(ctx context.Context, userID, requestID uuid.UUID) (swap.Request, error)
	Reject(ctx context.Context, userID, requestID uuid.UUID) (swap.Request, error)
	Complete(ctx context.Context, userID, requestID uuid.UUID, in CompleteSwapInput) (swap.Request, error)
}

type Swap struct {
	db       database.DB
	swaps    repository.SwapRequestRepository
	skills   repository.SkillRepository
	users    repository.UserRepository
	credits  repository.CreditRepository
	notifs   repository.NotificationRepository
	notifier Notifier
	now      func() time.Time
}

func NewSwapUsecase(
	db database.DB,
	swaps repository.SwapRequestRepository,
	skills repository.SkillRepository,
	users repository.UserRepository,
	credits repository.CreditRepository,
	notifs repository.NotificationRepository,
	notifier Notifier,
) *Swap {
	return &Swap{
		db:       db,
		swaps:    swaps,
		skills:   skills,
		users:    users,
		credits:  credits,
		notifs:   notifs,
		notifier: notifier,
		now:      time.Now,
	}
}

// SendRequest creates a pending request and the receiver's notification
// in one transaction. The message is mandatory; the offered skill must
// be one the sender teaches and the wanted skill must belong to the
// receiver.
func (u *Swap) SendRequest(ctx context.Context, senderID uuid.UUID, in SendSwapRequestInput) (swap.Request, error) {
	if senderID == uuid.Nil {
		return swap.Request{}, ErrUnauthorized
	}
	if strings.TrimSpace(in.Message) == "" {
		return swap.Request{}, ErrInvalidInput
	}
	if in.ReceiverID == uuid.Nil || in.ReceiverID == senderID {
		return swap.Request{}, ErrInvalidInput
	}
	if in.OfferedSkillID == uuid.Nil || in.WantedSkillID == uuid.Nil {
		return swap.Request{}, ErrInvalidInput
	}

	if _, err := u.users.GetUserByID(ctx, in.ReceiverID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return swap.Request{}, ErrUserNotFound
		}
		return swap.Request{}, ErrInternal
	}

	offeredSkill, err := u.skills.GetByID(ctx, in.OfferedSkillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return swap.Request{}, ErrSkillNotFound
		}
		return swap.Request{}, ErrInternal
	}
	if offeredSkill.UserID != senderID || offeredSkill.Type != skill.TypeOffered {
		return swap.Request{}, ErrInvalidInput
	}

	wantedSkill, err := u.skills.GetByID(ctx, in.WantedSkillID)
	if err != nil {
		if errors.Is(err, repository.ErrSkillNotFound) {
			return swap.Request{}, ErrSkillNotFound
		}
		return swap.Request{}, ErrInternal
	}
	if wantedSkill.UserID != in.ReceiverID {
		return swap.Request{}, ErrInvalidInput
	}

	req := swap.Request{
		ID:             uuid.New(),
		SenderID:       senderID,
		ReceiverID:     in.ReceiverID,
		OfferedSkillID: in.OfferedSkillID,
		WantedSkillID:  in.WantedSkillID,
		Status:         swap.StatusPending,
		Message:        strings.TrimSpace(in.Message),
	}

	notif := notification.Notification{
		ID:      uuid.New(),
		UserID:  in.ReceiverID,
		Title:   "New Swap Request",
		Message: "You have received a new skill swap request!",
		Type:    notification.TypeRequest,
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return swap.Request{}, ErrInternal
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := u.swaps.CreateTx(ctx, tx, req); err != nil {
		return swap.Request{}, ErrInternal
	}
	if err := u.notifs.CreateTx(ctx, tx, notif); err != nil {
		return swap.Request{}, ErrInternal
	}
	if err := tx.Commit(ctx); err != nil {
		return swap.Request{}, ErrInternal
	}

	u.push(notif)

	return u.reload(ctx, req.ID)
}

func (u *Swap) ListRequests(ctx context.Context, userID uuid.UUID) ([]swap.Request, error) {
	if userID == uuid.Nil {
		return nil, ErrUnauthorized
	}
	items, err := u.swaps.ListByUser(ctx, userID)
	if err != nil {
		return nil, ErrInternal
	}
	return items, nil
}

// Accept moves a pending request to accepted. Only the receiver may act.
func (u *Swap) Accept(ctx context.Context, userID, requestID uuid.UUID) (swap.Request, error) {
	return u.answer(ctx, userID, requestID, swap.StatusAccepted)
}

// Reject moves a pending request to its terminal rejected state. No
// credits move.
func (u *Swap) Reject(ctx context.Context, userID, requestID uuid.UUID) (swap.Request, error) {
	return u.answer(ctx, userID, requestID, swap.StatusRejected)
}

func (u *Swap) answer(ctx context.Context, userID, requestID uuid.UUID, to swap.Status) (swap.Request, error) {
	req, err := u.getForUpdate(ctx, userID, requestID)
	if err != nil {
		return swap.Request{}, err
	}
	if req.ReceiverID != userID {
		return swap.Request{}, ErrForbidden
	}
	if !swap.CanTransition(req.Status, to) {
		return swap.Request{}, ErrInvalidTransition
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return swap.Request{}, ErrInternal
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := u.swaps.UpdateStatusTx(ctx, tx, requestID, to); err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return swap.Request{}, ErrInvalidTransition
		}
		return swap.Request{}, ErrInternal
	}
	if err := tx.Commit(ctx); err != nil {
		return swap.Request{}, ErrInternal
	}

	return u.reload(ctx, requestID)
}

// Complete settles an accepted swap: status, feedback, both balances,
// both ledger rows, both swap counters and both notifications commit
// atomically. The transfer is zero-sum; the system-wide credit total
// never changes here.
func (u *Swap) Complete(ctx context.Context, userID, requestID uuid.UUID, in CompleteSwapInput) (swap.Request, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return swap.Request{}, ErrInvalidRating
	}

	req, err := u.getForUpdate(ctx, userID, requestID)
	if err != nil {
		return swap.Request{}, err
	}
	if req.SenderID != userID && req.ReceiverID != userID {
		return swap.Request{}, ErrForbidden
	}
	if !swap.CanTransition(req.Status, swap.StatusCompleted) {
		return swap.Request{}, ErrInvalidTransition
	}

	completedAt := u.now().UTC()
	reqID := req.ID

	earned := credit.Transaction{
		ID:            uuid.New(),
		UserID:        req.SenderID,
		Amount:        creditPerSwap,
		Type:          credit.TypeEarned,
		Description:   "Credit earned for completed swap",
		SwapRequestID: &reqID,
	}
	spent := credit.Transaction{
		ID:            uuid.New(),
		UserID:        req.ReceiverID,
		Amount:        -creditPerSwap,
		Type:          credit.TypeSpent,
		Description:   "Credit spent for completed swap",
		SwapRequestID: &reqID,
	}

	senderNotif := notification.Notification{
		ID:      uuid.New(),
		UserID:  req.SenderID,
		Title:   "Swap Completed",
		Message: "Your swap was completed and you earned 1 credit.",
		Type:    notification.TypeCredit,
	}
	receiverNotif := notification.Notification{
		ID:      uuid.New(),
		UserID:  req.ReceiverID,
		Title:   "Swap Completed",
		Message: "Your swap was completed and you spent 1 credit.",
		Type:    notification.TypeCredit,
	}

	tx, err := u.db.Begin(ctx)
	if err != nil {
		return swap.Request{}, ErrInternal
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	if err := u.swaps.CompleteTx(ctx, tx, requestID, strings.TrimSpace(in.Feedback), in.Rating, completedAt); err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return swap.Request{}, ErrInvalidTransition
		}
		return swap.Request{}, ErrInternal
	}

	if err := u.users.AdjustCreditsTx(ctx, tx, req.SenderID, creditPerSwap); err != nil {
		return swap.Request{}, ErrInternal
	}
	if err := u.users.AdjustCreditsTx(ctx, tx, req.ReceiverID, -creditPerSwap); err != nil {
		return swap.Request{}, ErrInternal
	}
	if err := u.users.IncrementSwapCountTx(ctx, tx, req.SenderID); err != nil {
		return swap.Request{}, ErrInternal
	}
	if err := u.users.IncrementSwapCountTx(ctx, tx, req.ReceiverID); err != nil {
		return swap.Request{}, ErrInternal
	}
	if err := u.credits.AppendTx(ctx, tx, earned); err != nil {
		return swap.Request{}, ErrInternal
	}
	if err := u.credits.AppendTx(ctx, tx, spent); err != nil {
		return swap.Request{}, ErrInternal
	}
	if err := u.notifs.CreateTx(ctx, tx, senderNotif); err != nil {
		return swap.Request{}, ErrInternal
	}
	if err := u.notifs.CreateTx(ctx, tx, receiverNotif); err != nil {
		return swap.Request{}, ErrInternal
	}

	if err := tx.Commit(ctx); err != nil {
		return swap.Request{}, ErrInternal
	}

	u.push(senderNotif)
	u.push(receiverNotif)

	return u.reload(ctx, requestID)
}

func (u *Swap) reload(ctx context.Context, requestID uuid.UUID) (swap.Request, error) {
	req, err := u.swaps.GetByID(ctx, requestID)
	if err != nil {
		return swap.Request{}, ErrInternal
	}
	return req, nil
}

func (u *Swap) getForUpdate(ctx context.Context, userID, requestID uuid.UUID) (swap.Request, error) {
	if userID == uuid.Nil {
		return swap.Request{}, ErrUnauthorized
	}
	if requestID == uuid.Nil {
		return swap.Request{}, ErrSwapRequestNotFound
	}

	req, err := u.swaps.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrSwapRequestNotFound) {
			return swap.Request{}, ErrSwapRequestNotFound
		}
		return swap.Request{}, ErrInternal
	}
	return req, nil
}

func (u *Swap) push(n notification.Notification) {
	if u.notifier == nil {
		return
	}
	u.notifier.NotifyUser(n.UserID, n)
}
