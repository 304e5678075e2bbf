package usecase

import (
	"context"
	"database/sql"
	"encoding/json"
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

// memTx satisfies database.Tx. Mock repositories mutate their state
// directly, so the transaction only tracks commit/rollback ordering.
type memTx struct {
	committed  bool
	rolledBack bool
}

func (t *memTx) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return 0, nil
}

func (t *memTx) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, nil
}

func (t *memTx) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

func (t *memTx) Commit(ctx context.Context) error {
	t.committed = true
	return nil
}

func (t *memTx) Rollback(ctx context.Context) error {
	if !t.committed {
		t.rolledBack = true
	}
	return nil
}

type memDB struct {
	txs []*memTx
}

func (d *memDB) Ping(ctx context.Context) error { return nil }
func (d *memDB) Close() error                   { return nil }
func (d *memDB) SQLDB() *sql.DB                 { return nil }

func (d *memDB) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	return 0, nil
}

func (d *memDB) Query(ctx context.Context, query string, args ...any) (database.Rows, error) {
	return nil, nil
}

func (d *memDB) QueryRow(ctx context.Context, query string, args ...any) database.Row {
	return nil
}

func (d *memDB) Begin(ctx context.Context) (database.Tx, error) {
	tx := &memTx{}
	d.txs = append(d.txs, tx)
	return tx, nil
}

type memUserRepo struct {
	users map[uuid.UUID]*user.User
}

func newMemUserRepo(users ...user.User) *memUserRepo {
	r := &memUserRepo{users: make(map[uuid.UUID]*user.User)}
	for i := range users {
		u := users[i]
		r.users[u.ID] = &u
	}
	return r
}

func (r *memUserRepo) CreateUser(ctx context.Context, u user.User) error {
	r.users[u.ID] = &u
	return nil
}

func (r *memUserRepo) GetUserByID(ctx context.Context, id uuid.UUID) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	return *u, nil
}

func (r *memUserRepo) GetUserByEmail(ctx context.Context, email string) (user.User, error) {
	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return *u, nil
		}
	}
	return user.User{}, user.ErrNotFound
}

func (r *memUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	_, err := r.GetUserByEmail(ctx, email)
	return err == nil, nil
}

func (r *memUserRepo) ListPublicUsers(ctx context.Context, excludeID uuid.UUID) ([]user.User, error) {
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		if u.ID == excludeID || !u.IsPublic {
			continue
		}
		out = append(out, *u)
	}
	return out, nil
}

func (r *memUserRepo) UpdateProfile(ctx context.Context, id uuid.UUID, in user.ProfileUpdate) (user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return user.User{}, user.ErrNotFound
	}
	u.Name = in.Name
	u.Location = in.Location
	u.Availability = in.Availability
	u.Bio = in.Bio
	u.ProfilePhoto = in.ProfilePhoto
	u.IsPublic = in.IsPublic
	return *u, nil
}

func (r *memUserRepo) ListUsers(ctx context.Context, limit, offset int) ([]user.User, int64, error) {
	out := make([]user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, *u)
	}
	return out, int64(len(r.users)), nil
}

func (r *memUserRepo) AdjustCreditsTx(ctx context.Context, tx database.Tx, id uuid.UUID, delta int) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.Credits += delta
	return nil
}

func (r *memUserRepo) IncrementSwapCountTx(ctx context.Context, tx database.Tx, id uuid.UUID) error {
	u, ok := r.users[id]
	if !ok {
		return user.ErrNotFound
	}
	u.TotalSwaps++
	return nil
}

type memSkillRepo struct {
	skills map[uuid.UUID]*skill.Skill
}

func newMemSkillRepo(skills ...skill.Skill) *memSkillRepo {
	r := &memSkillRepo{skills: make(map[uuid.UUID]*skill.Skill)}
	for i := range skills {
		s := skills[i]
		r.skills[s.ID] = &s
	}
	return r
}

func (r *memSkillRepo) ListAll(ctx context.Context) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0, len(r.skills))
	for _, s := range r.skills {
		out = append(out, *s)
	}
	return out, nil
}

func (r *memSkillRepo) ListByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0)
	for _, s := range r.skills {
		if s.UserID == userID {
			out = append(out, *s)
		}
	}
	return out, nil
}

func (r *memSkillRepo) GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	s, ok := r.skills[id]
	if !ok {
		return skill.Skill{}, repository.ErrSkillNotFound
	}
	return *s, nil
}

func (r *memSkillRepo) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	s.CreatedAt = time.Now()
	r.skills[s.ID] = &s
	return s, nil
}

func (r *memSkillRepo) Update(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	existing, ok := r.skills[s.ID]
	if !ok || existing.UserID != s.UserID {
		return skill.Skill{}, repository.ErrSkillNotFound
	}
	s.CreatedAt = existing.CreatedAt
	r.skills[s.ID] = &s
	return s, nil
}

func (r *memSkillRepo) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	existing, ok := r.skills[id]
	if !ok {
		return repository.ErrSkillNotFound
	}
	if existing.UserID != userID {
		return repository.ErrSkillForbidden
	}
	delete(r.skills, id)
	return nil
}

func (r *memSkillRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.skills)), nil
}

type memSwapRepo struct {
	reqs map[uuid.UUID]*swap.Request
}

func newMemSwapRepo(reqs ...swap.Request) *memSwapRepo {
	r := &memSwapRepo{reqs: make(map[uuid.UUID]*swap.Request)}
	for i := range reqs {
		req := reqs[i]
		r.reqs[req.ID] = &req
	}
	return r
}

func (r *memSwapRepo) GetByID(ctx context.Context, id uuid.UUID) (swap.Request, error) {
	req, ok := r.reqs[id]
	if !ok {
		return swap.Request{}, repository.ErrSwapRequestNotFound
	}
	return *req, nil
}

func (r *memSwapRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]swap.Request, error) {
	out := make([]swap.Request, 0)
	for _, req := range r.reqs {
		if req.SenderID == userID || req.ReceiverID == userID {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (r *memSwapRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(r.reqs)), nil
}

func (r *memSwapRepo) CreateTx(ctx context.Context, tx database.Tx, req swap.Request) error {
	req.CreatedAt = time.Now()
	r.reqs[req.ID] = &req
	return nil
}

// UpdateStatusTx mirrors the SQL guard: only pending rows transition.
func (r *memSwapRepo) UpdateStatusTx(ctx context.Context, tx database.Tx, id uuid.UUID, status swap.Status) error {
	req, ok := r.reqs[id]
	if !ok || req.Status != swap.StatusPending {
		return repository.ErrSwapRequestNotFound
	}
	req.Status = status
	return nil
}

// CompleteTx mirrors the SQL guard: only accepted rows complete.
func (r *memSwapRepo) CompleteTx(ctx context.Context, tx database.Tx, id uuid.UUID, feedback string, rating int, completedAt time.Time) error {
	req, ok := r.reqs[id]
	if !ok || req.Status != swap.StatusAccepted {
		return repository.ErrSwapRequestNotFound
	}
	req.Status = swap.StatusCompleted
	req.Feedback = feedback
	req.Rating = rating
	req.CompletedAt = &completedAt
	return nil
}

type memCreditRepo struct {
	rows []credit.Transaction
}

func (r *memCreditRepo) AppendTx(ctx context.Context, tx database.Tx, t credit.Transaction) error {
	t.CreatedAt = time.Now()
	r.rows = append(r.rows, t)
	return nil
}

func (r *memCreditRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]credit.Transaction, error) {
	out := make([]credit.Transaction, 0)
	for _, t := range r.rows {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

func (r *memCreditRepo) List(ctx context.Context, f repository.LedgerFilter) ([]credit.Transaction, int64, error) {
	out := make([]credit.Transaction, 0)
	for _, t := range r.rows {
		if f.UserID != uuid.Nil && t.UserID != f.UserID {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		out = append(out, t)
	}
	return out, int64(len(out)), nil
}

func (r *memCreditRepo) SystemBalance(ctx context.Context) (int64, error) {
	var total int64
	for _, t := range r.rows {
		total += int64(t.Amount)
	}
	return total, nil
}

type memNotifRepo struct {
	rows []notification.Notification
}

func (r *memNotifRepo) CreateTx(ctx context.Context, tx database.Tx, n notification.Notification) error {
	n.CreatedAt = time.Now()
	r.rows = append(r.rows, n)
	return nil
}

func (r *memNotifRepo) ListByUser(ctx context.Context, userID uuid.UUID) ([]notification.Notification, error) {
	out := make([]notification.Notification, 0)
	for _, n := range r.rows {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (r *memNotifRepo) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	for i := range r.rows {
		if r.rows[i].ID == id && r.rows[i].UserID == userID {
			r.rows[i].IsRead = true
			return nil
		}
	}
	return repository.ErrNotificationNotFound
}

func (r *memNotifRepo) CountUnread(ctx context.Context, userID uuid.UUID) (int64, error) {
	var n int64
	for _, row := range r.rows {
		if row.UserID == userID && !row.IsRead {
			n++
		}
	}
	return n, nil
}

func (r *memNotifRepo) forUser(userID uuid.UUID) []notification.Notification {
	out, _ := r.ListByUser(context.Background(), userID)
	return out
}

type memNotifier struct {
	pushed []notification.Notification
}

func (n *memNotifier) NotifyUser(userID uuid.UUID, notif notification.Notification) {
	n.pushed = append(n.pushed, notif)
}

// memCache is an in-process MatchCache with prefix pattern support.
type memCache struct {
	entries  map[string][]byte
	wipes    int
	setCalls int
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]byte)}
}

func (c *memCache) GetJSON(ctx context.Context, key string, out any) (bool, error) {
	b, ok := c.entries[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memCache) SetJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.entries[key] = b
	c.setCalls++
	return nil
}

func (c *memCache) DeleteByPattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	for k := range c.entries {
		if strings.HasPrefix(k, prefix) {
			delete(c.entries, k)
		}
	}
	c.wipes++
	return nil
}
