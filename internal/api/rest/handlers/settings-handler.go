package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/services"
	"github.com/zenith-max/Wellmed/pkg/utils"
)

type SettingsHandler struct {
	svc services.SettingsService
}

func NewSettingsHandler(svc services.SettingsService) *SettingsHandler {
	return &SettingsHandler{svc: svc}
}

func (h *SettingsHandler) GetShippingCharge(ctx *fiber.Ctx) error {
	charge, err := h.svc.GetShippingCharge()
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"shipping_charge": charge,
	})
}

func (h *SettingsHandler) UpdateShippingCharge(ctx *fiber.Ctx) error {
	var requestBody dto.UpdateShippingChargeRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.ShippingCharge < 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "shipping_charge must be >= 0")
	}

	charge, err := h.svc.UpdateShippingCharge(requestBody.ShippingCharge)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, fiber.Map{
		"shipping_charge": charge,
	})
}
