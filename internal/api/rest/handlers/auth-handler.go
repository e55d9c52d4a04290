package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/helper"
	"github.com/zenith-max/Wellmed/internal/services"
	"github.com/zenith-max/Wellmed/pkg/utils"
)

type AuthHandler struct {
	svc  services.AuthService
	auth helper.Auth
}

func NewAuthHandler(svc services.AuthService, auth helper.Auth) *AuthHandler {
	return &AuthHandler{svc: svc, auth: auth}
}

func (h *AuthHandler) Register(ctx *fiber.Ctx) error {
	var requestBody dto.RegisterRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	user, err := h.svc.Register(requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, fiber.Map{
		"email":   user.Email,
		"message": "Registered. Check your email for the verification code.",
	})
}

func (h *AuthHandler) Login(ctx *fiber.Ctx) error {
	var requestBody dto.UserLogin
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and password are required")
	}

	resp, err := h.svc.Login(requestBody.Email, requestBody.Password)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) VerifyEmail(ctx *fiber.Ctx) error {
	var requestBody dto.VerifyEmailRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email and code are required")
	}

	resp, err := h.svc.VerifyEmail(requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, resp)
}

func (h *AuthHandler) ResendVerification(ctx *fiber.Ctx) error {
	var requestBody dto.ResendVerificationRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email is required")
	}

	if err := h.svc.ResendVerification(requestBody.Email); err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK,
		"If the account exists, a new verification code has been sent")
}

func (h *AuthHandler) ForgotPassword(ctx *fiber.Ctx) error {
	var requestBody dto.ForgotPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil || requestBody.Email == "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "email is required")
	}

	if err := h.svc.ForgotPassword(requestBody.Email); err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK,
		"If the account exists, a reset code has been sent")
}

func (h *AuthHandler) ResetPassword(ctx *fiber.Ctx) error {
	var requestBody dto.ResetPasswordRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	if err := h.svc.ResetPassword(requestBody); err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK, "Password reset successfully")
}

func (h *AuthHandler) Me(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	user, err := h.svc.GetProfile(claims.UserID)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, dto.UserResponse{
		ID:            user.ID,
		Name:          user.Name,
		Email:         user.Email,
		Role:          user.Role,
		EmailVerified: user.EmailVerified,
	})
}
