package repository

import (
	"context"
	"database/sql"
	"errors"

	"skillswap/internal/database"
	"skillswap/internal/domain/skill"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

var (
	ErrSkillNotFound  = errors.New("skill not found")
	ErrSkillForbidden = errors.New("forbidden")
)

const skillColumns = `id, user_id, name, description, category, skill_type, level, created_at`

type SkillRepository interface {
	ListAll(ctx context.Context) ([]skill.Skill, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error)
	GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error)
	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Update(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

type PostgresSkillRepository struct {
	db database.DB
}

func NewPostgresSkillRepository(db database.DB) *PostgresSkillRepository {
	return &PostgresSkillRepository{db: db}
}

func (r *PostgresSkillRepository) ListAll(ctx context.Context) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx, `SELECT `+skillColumns+` FROM skills ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

func (r *PostgresSkillRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]skill.Skill, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+skillColumns+` FROM skills WHERE user_id = $1 ORDER BY created_at ASC`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectSkills(rows)
}

func (r *PostgresSkillRepository) GetByID(ctx context.Context, id uuid.UUID) (skill.Skill, error) {
	row := r.db.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	return scanSkill(row)
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	_, err := r.db.Exec(ctx,
		`INSERT INTO skills (id, user_id, name, description, category, skill_type, level)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		s.ID, s.UserID, s.Name, s.Description, s.Category, s.Type, s.Level,
	)
	if err != nil {
		return skill.Skill{}, err
	}
	return r.GetByID(ctx, s.ID)
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	affected, err := r.db.Exec(ctx,
		`UPDATE skills
		 SET name = $1, description = $2, category = $3, skill_type = $4, level = $5
		 WHERE id = $6 AND user_id = $7`,
		s.Name, s.Description, s.Category, s.Type, s.Level, s.ID, s.UserID,
	)
	if err != nil {
		return skill.Skill{}, err
	}
	if affected == 0 {
		return skill.Skill{}, ErrSkillNotFound
	}
	return r.GetByID(ctx, s.ID)
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	var owner uuid.UUID
	row := r.db.QueryRow(ctx, `SELECT user_id FROM skills WHERE id = $1`, id)
	if err := row.Scan(&owner); err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return ErrSkillNotFound
		}
		return err
	}
	if owner != userID {
		return ErrSkillForbidden
	}

	_, err := r.db.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	return err
}

func (r *PostgresSkillRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM skills`).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func collectSkills(rows database.Rows) ([]skill.Skill, error) {
	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func scanSkill(row scannable) (skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(&s.ID, &s.UserID, &s.Name, &s.Description, &s.Category, &s.Type, &s.Level, &s.CreatedAt)
	if err != nil {
		if err == sql.ErrNoRows || errors.Is(err, pgx.ErrNoRows) {
			return skill.Skill{}, ErrSkillNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}
