package v1

import (
	"skillswap/internal/delivery/http/handler"
	"skillswap/internal/delivery/http/middleware"

	"github.com/gofiber/fiber/v3"
)

type Deps struct {
	AuthMW  *middleware.AuthMiddleware
	AdminMW *middleware.AdminMiddleware

	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Skill        *handler.SkillHandler
	Match        *handler.MatchHandler
	Swap         *handler.SwapHandler
	Credit       *handler.CreditHandler
	Notification *handler.NotificationHandler
	Admin        *handler.AdminHandler
}

func Register(r fiber.Router, d Deps) {
	if r == nil || d.AuthMW == nil {
		return
	}

	d.Auth.RegisterRoutes(r.Group("/auth"))

	protected := r.Group("", d.AuthMW.Middleware())

	// Skill routes register first so /users/me/skills wins over the
	// /users/:id wildcards.
	users := protected.Group("/users")
	d.Skill.RegisterRoutes(users)
	d.User.RegisterRoutes(users)

	d.Match.RegisterRoutes(protected)
	d.Swap.RegisterRoutes(protected)
	d.Credit.RegisterRoutes(protected)
	d.Notification.RegisterRoutes(protected)

	if d.AdminMW != nil && d.Admin != nil {
		admin := protected.Group("/admin", d.AdminMW.Middleware())
		d.Admin.RegisterRoutes(admin)
	}
}
