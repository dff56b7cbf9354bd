package middleware

import (
	"errors"

	"github.com/gofiber/fiber/v3"

	"github.com/halouxiaoyu/survey_backend/pkg/authorize"
	pasetotoken "github.com/halouxiaoyu/survey_backend/pkg/paseto"
)

// RequirePermission checks that the authenticated admin holds the given
// permission. The deployment is single-tenant, so all policies live in
// one flat domain.
func RequirePermission(auth authorize.IAuthorization, resource authorize.Resource, action authorize.Action) fiber.Handler {
	return func(c fiber.Ctx) error {
		claims, ok := pasetotoken.ClaimsFromFiber(c)
		if !ok {
			return fiber.ErrUnauthorized
		}

		subject := authorize.GroupSubject(claims.AdminID.String())
		if err := auth.MustEnforce(c.Context(), subject, resource, action); err != nil {
			if errors.Is(err, authorize.ErrForbidden) {
				return fiber.ErrForbidden
			}
			return err
		}

		return c.Next()
	}
}
