package seeder

import (
	"context"
	"fmt"

	"skillswap/internal/database"

	"golang.org/x/crypto/bcrypt"
)

// DemoUsersSeeder inserts a handful of demo profiles with offered and
// wanted skills so a fresh environment has match candidates. Rows are
// keyed by email and skipped when already present.
type DemoUsersSeeder struct{}

func (DemoUsersSeeder) Name() string { return "demo_users" }

type demoSkill struct {
	Name        string
	Description string
	Category    string
	Type        string
	Level       string
}

type demoUser struct {
	Name         string
	Email        string
	Password     string
	Location     string
	Availability string
	Bio          string
	IsPublic     bool
	IsAdmin      bool
	Credits      int
	Rating       float64
	Skills       []demoSkill
}

func (DemoUsersSeeder) Run(ctx context.Context, db database.DB) error {
	if err := EnsureTableColumns(ctx, db, "users", "id", "name", "email", "password_hash", "availability", "is_public", "credits"); err != nil {
		return err
	}
	if err := EnsureTableColumns(ctx, db, "skills", "id", "user_id", "name", "skill_type", "level"); err != nil {
		return err
	}

	users := []demoUser{
		{
			Name: "Sarah Johnson", Email: "sarah@example.com", Password: "password123",
			Location: "San Francisco, CA", Availability: "evenings",
			Bio: "Passionate about web development and design.", IsPublic: true, Credits: 15, Rating: 4.8,
			Skills: []demoSkill{
				{Name: "React Development", Description: "Frontend development with React and TypeScript", Category: "Programming", Type: "offered", Level: "advanced"},
				{Name: "UI/UX Design", Description: "User interface and experience design using Figma", Category: "Design", Type: "wanted", Level: "intermediate"},
			},
		},
		{
			Name: "Michael Chen", Email: "michael@example.com", Password: "password123",
			Location: "San Francisco, CA", Availability: "evenings",
			Bio: "Design enthusiast and React developer.", IsPublic: true, Credits: 12, Rating: 4.6,
			Skills: []demoSkill{
				{Name: "UI/UX Design & Figma", Description: "Product design from wireframe to handoff", Category: "Design", Type: "offered", Level: "advanced"},
				{Name: "React", Description: "Modern frontend development", Category: "Programming", Type: "wanted", Level: "beginner"},
			},
		},
		{
			Name: "Emily Rodriguez", Email: "emily@example.com", Password: "password123",
			Location: "Los Angeles, CA", Availability: "weekends",
			Bio: "Full-stack developer passionate about teaching.", IsPublic: true, Credits: 18, Rating: 4.9,
			Skills: []demoSkill{
				{Name: "Spanish Conversation", Description: "Native speaker, casual and business Spanish", Category: "Languages", Type: "offered", Level: "advanced"},
				{Name: "Photography", Description: "Portrait and street photography basics", Category: "Creative", Type: "wanted", Level: "beginner"},
			},
		},
		{
			Name: "Admin User", Email: "admin@skillswap.local", Password: "password123",
			Location: "New York, NY", Availability: "flexible",
			Bio: "Platform administrator.", IsPublic: false, IsAdmin: true, Credits: 100, Rating: 5.0,
		},
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		_ = tx.Rollback(context.Background())
	}()

	for _, u := range users {
		var exists bool
		if err := tx.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM users WHERE email = $1)`, u.Email).Scan(&exists); err != nil {
			return err
		}
		if exists {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}

		var userID string
		err = tx.QueryRow(ctx,
			`INSERT INTO users (id, name, email, password_hash, location, availability, bio, is_public, is_admin, credits, rating)
			 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
			 RETURNING id`,
			u.Name, u.Email, string(hash), u.Location, u.Availability, u.Bio, u.IsPublic, u.IsAdmin, u.Credits, u.Rating,
		).Scan(&userID)
		if err != nil {
			return err
		}

		for _, s := range u.Skills {
			_, err := tx.Exec(ctx,
				`INSERT INTO skills (id, user_id, name, description, category, skill_type, level)
				 VALUES (gen_random_uuid(), $1, $2, $3, $4, $5, $6)`,
				userID, s.Name, s.Description, s.Category, s.Type, s.Level,
			)
			if err != nil {
				return err
			}
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
