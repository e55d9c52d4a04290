package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/helper"
	"github.com/zenith-max/Wellmed/internal/services"
	"github.com/zenith-max/Wellmed/pkg/utils"
)

type OrderHandler struct {
	svc  services.OrderService
	auth helper.Auth
}

func NewOrderHandler(svc services.OrderService, auth helper.Auth) *OrderHandler {
	return &OrderHandler{svc: svc, auth: auth}
}

func (h *OrderHandler) Create(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	var requestBody dto.CreateOrderRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	order, err := h.svc.CreateOrder(claims.UserID, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, order)
}

func (h *OrderHandler) Get(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	orderID, err := ctx.ParamsInt("orderID")
	if err != nil || orderID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid order id")
	}

	order, err := h.svc.GetOrder(uint(orderID), claims.UserID, claims.Role)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, order)
}

func (h *OrderHandler) MyOrders(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	orders, err := h.svc.MyOrders(claims.UserID)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, orders)
}

func (h *OrderHandler) Cancel(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	orderID, err := ctx.ParamsInt("orderID")
	if err != nil || orderID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid order id")
	}

	order, err := h.svc.CancelOrder(uint(orderID), claims.UserID, claims.Role)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, order)
}

// admin

func (h *OrderHandler) ListAll(ctx *fiber.Ctx) error {
	orders, err := h.svc.AllOrders()
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, orders)
}

func (h *OrderHandler) UpdateStatus(ctx *fiber.Ctx) error {
	orderID, err := ctx.ParamsInt("orderID")
	if err != nil || orderID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid order id")
	}

	var requestBody dto.UpdateOrderStatusRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Status == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "status is required")
	}

	order, err := h.svc.UpdateStatus(uint(orderID), domain.OrderStatus(requestBody.Status))
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, order)
}
