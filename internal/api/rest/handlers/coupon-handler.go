package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/services"
	"github.com/zenith-max/Wellmed/pkg/utils"
)

type CouponHandler struct {
	svc services.CouponService
}

func NewCouponHandler(svc services.CouponService) *CouponHandler {
	return &CouponHandler{svc: svc}
}

func (h *CouponHandler) Create(ctx *fiber.Ctx) error {
	var requestBody dto.CreateCouponRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	coupon, err := h.svc.Create(requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, coupon)
}

func (h *CouponHandler) List(ctx *fiber.Ctx) error {
	coupons, err := h.svc.List()
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, coupons)
}

func (h *CouponHandler) Toggle(ctx *fiber.Ctx) error {
	couponID, err := ctx.ParamsInt("couponID")
	if err != nil || couponID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid coupon id")
	}

	var requestBody dto.ToggleCouponRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	coupon, err := h.svc.Toggle(uint(couponID), requestBody.IsActive)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, coupon)
}

// Validate lets the storefront check a code before checkout. The order flow
// re-checks it server side, so this is purely advisory.
func (h *CouponHandler) Validate(ctx *fiber.Ctx) error {
	code := ctx.Params("code")
	if code == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "coupon code is required")
	}

	coupon, err := h.svc.Validate(code)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.CouponResponse{
		Code:            coupon.Code,
		DiscountPercent: coupon.DiscountPercent,
		ExpiresAt:       coupon.ExpiresAt,
		IsActive:        coupon.IsActive,
	})
}
