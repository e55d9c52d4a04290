package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/services"
	"github.com/zenith-max/Wellmed/pkg/utils"
)

type PaymentHandler struct {
	svc services.PaymentService
}

func NewPaymentHandler(svc services.PaymentService) *PaymentHandler {
	return &PaymentHandler{svc: svc}
}

// CreatePaymentOrder opens a gateway order the frontend can pay against.
func (h *PaymentHandler) CreatePaymentOrder(ctx *fiber.Ctx) error {
	var requestBody dto.CreatePaymentOrderRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Amount <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "amount must be > 0")
	}

	resp, err := h.svc.CreatePaymentOrder(requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, resp)
}
