package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/helper"
	"github.com/zenith-max/Wellmed/pkg/utils"
)

func AuthMiddleware(auth helper.Auth) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		// 1) try cookie first
		tokenStr := strings.TrimSpace(ctx.Cookies("access_token"))

		// 2) fallback to Authorization header
		if tokenStr == "" {
			tokenStr = strings.TrimSpace(ctx.Get("Authorization"))
		}

		claims, err := auth.VerifyToken(tokenStr)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())
		}

		ctx.Locals("userID", claims.UserID)
		ctx.Locals("user", claims)
		return ctx.Next()
	}
}

// AdminOnly relies on the role baked into the session token, so it must run
// after AuthMiddleware.
func AdminOnly() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		claims, ok := ctx.Locals("user").(dto.AuthClaims)
		if !ok || claims.UserID == 0 {
			return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
		}

		if claims.Role != domain.RoleAdmin {
			return utils.ResponseError(ctx, fiber.StatusForbidden, "admin only")
		}

		return ctx.Next()
	}
}
