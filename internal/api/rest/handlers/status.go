package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/zenith-max/Wellmed/internal/services"
	"github.com/zenith-max/Wellmed/pkg/utils"
)

// respondServiceError translates the service layer's failure classes onto
// HTTP statuses. Unrecognized errors become a generic 500 so internals never
// leak to clients.
func respondServiceError(ctx *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrInvalidInput),
		errors.Is(err, services.ErrEmptyCart),
		errors.Is(err, services.ErrMissingAddress),
		errors.Is(err, services.ErrInvalidStatus):
		return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrInvalidOrExpiredCode):
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, err.Error())

	case errors.Is(err, services.ErrEmailNotVerified),
		errors.Is(err, services.ErrForbidden):
		return utils.ResponseError(ctx, fiber.StatusForbidden, err.Error())

	case errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrProductNotFound),
		errors.Is(err, services.ErrOrderNotFound),
		errors.Is(err, services.ErrCouponNotFound):
		return utils.ResponseError(ctx, fiber.StatusNotFound, err.Error())

	case errors.Is(err, services.ErrEmailRegistered),
		errors.Is(err, services.ErrInsufficientStock),
		errors.Is(err, services.ErrCouponExists),
		errors.Is(err, services.ErrNotCancellable):
		return utils.ResponseError(ctx, fiber.StatusConflict, err.Error())

	case errors.Is(err, services.ErrCouponNotUsable):
		return utils.ResponseError(ctx, fiber.StatusUnprocessableEntity, err.Error())
	}

	return utils.ResponseError(ctx, fiber.StatusInternalServerError, "something went wrong")
}
