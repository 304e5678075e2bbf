package middleware

import "github.com/gofiber/fiber/v3"

// AdminMiddleware gates routes behind the is_admin claim. It must run
// after AuthMiddleware so the claim is already in locals.
type AdminMiddleware struct{}

func NewAdminMiddleware() *AdminMiddleware {
	return &AdminMiddleware{}
}

func (m *AdminMiddleware) Middleware() fiber.Handler {
	return func(c fiber.Ctx) error {
		if _, ok := UserIDFromCtx(c); !ok {
			return NewAppError(fiber.StatusUnauthorized, "Unauthorized", nil, nil)
		}
		if !IsAdminFromCtx(c) {
			return NewAppError(fiber.StatusForbidden, "Admin access required", nil, nil)
		}
		return c.Next()
	}
}
