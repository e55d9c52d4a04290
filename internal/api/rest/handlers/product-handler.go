package handlers

import (
	"mime/multipart"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/helper"
	"github.com/zenith-max/Wellmed/internal/services"
	"github.com/zenith-max/Wellmed/pkg/utils"
)

const maxImageSize = 5 * 1024 * 1024 // 5MB

var allowedImageExt = map[string]bool{
	".jpg": true, ".jpeg": true, ".png": true, ".webp": true,
}

type ProductHandler struct {
	svc  services.ProductService
	auth helper.Auth
}

func NewProductHandler(svc services.ProductService, auth helper.Auth) *ProductHandler {
	return &ProductHandler{svc: svc, auth: auth}
}

func (h *ProductHandler) List(ctx *fiber.Ctx) error {
	var query dto.ProductQuery
	if err := ctx.QueryParser(&query); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid query parameters")
	}

	products, err := h.svc.List(query)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, products)
}

func (h *ProductHandler) Get(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("productID")
	if err != nil || productID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid product id")
	}

	product, err := h.svc.Get(uint(productID))
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, product)
}

// Create takes multipart form-data: the product fields plus an "image" file.
func (h *ProductHandler) Create(ctx *fiber.Ctx) error {
	input := dto.CreateProductRequest{
		Name:        strings.TrimSpace(ctx.FormValue("name")),
		Description: strings.TrimSpace(ctx.FormValue("description")),
		Category:    strings.TrimSpace(ctx.FormValue("category")),
	}
	var err error
	if input.Price, err = parseFormFloat(ctx, "price"); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid price")
	}
	if input.Stock, err = parseFormInt(ctx, "stock"); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid stock")
	}
	if input.DiscountPercent, err = parseFormFloat(ctx, "discount_percent"); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid discount_percent")
	}

	image, errMsg := readImageFile(ctx)
	if errMsg != "" {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, errMsg)
	}

	product, err := h.svc.Create(ctx.Context(), input, image)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, product)
}

// Update patches only the form fields that were sent; an "image" file, if
// present, replaces the current one.
func (h *ProductHandler) Update(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("productID")
	if err != nil || productID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid product id")
	}

	var input dto.UpdateProductRequest
	if v := ctx.FormValue("name"); v != "" {
		input.Name = &v
	}
	if v := ctx.FormValue("description"); v != "" {
		input.Description = &v
	}
	if v := ctx.FormValue("category"); v != "" {
		input.Category = &v
	}
	if v := ctx.FormValue("price"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid price")
		}
		input.Price = &f
	}
	if v := ctx.FormValue("stock"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid stock")
		}
		input.Stock = &n
	}
	if v := ctx.FormValue("discount_percent"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid discount_percent")
		}
		input.DiscountPercent = &f
	}

	var image *services.ImageUpload
	if file, err := ctx.FormFile("image"); err == nil && file != nil {
		image, err = openImageFile(file)
		if err != nil {
			return utils.ResponseError(ctx, fiber.StatusBadRequest, err.Error())
		}
	}

	product, err := h.svc.Update(ctx.Context(), uint(productID), input, image)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusOK, product)
}

func (h *ProductHandler) Delete(ctx *fiber.Ctx) error {
	productID, err := ctx.ParamsInt("productID")
	if err != nil || productID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid product id")
	}

	if err := h.svc.Delete(ctx.Context(), uint(productID)); err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseMessage(ctx, fiber.StatusOK, "Product deleted")
}

func (h *ProductHandler) AddReview(ctx *fiber.Ctx) error {
	claims, err := h.auth.GetCurrentUser(ctx)
	if err != nil {
		return utils.ResponseError(ctx, fiber.StatusUnauthorized, "unauthorized")
	}

	productID, err := ctx.ParamsInt("productID")
	if err != nil || productID <= 0 {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "invalid product id")
	}

	var requestBody dto.AddReviewRequest
	if err := ctx.BodyParser(&requestBody); err != nil {
		return utils.ResponseError(ctx, fiber.StatusBadRequest, "Please provide valid inputs")
	}

	userName := claims.Email
	product, err := h.svc.AddReview(uint(productID), claims.UserID, userName, requestBody)
	if err != nil {
		return respondServiceError(ctx, err)
	}

	return utils.ResponseSuccess(ctx, fiber.StatusCreated, product)
}

func readImageFile(ctx *fiber.Ctx) (*services.ImageUpload, string) {
	file, err := ctx.FormFile("image")
	if err != nil || file == nil {
		return nil, "image file is required"
	}
	image, err := openImageFile(file)
	if err != nil {
		return nil, err.Error()
	}
	return image, ""
}

func openImageFile(file *multipart.FileHeader) (*services.ImageUpload, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExt[ext] {
		return nil, fiber.NewError(fiber.StatusBadRequest, "only jpg/jpeg/png/webp allowed")
	}
	if file.Size > maxImageSize {
		return nil, fiber.NewError(fiber.StatusBadRequest, "file too large (max 5MB)")
	}

	f, err := file.Open()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "cannot open uploaded file")
	}
	defer f.Close()

	b, err := utils.ReadAllLimit(f, maxImageSize)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "cannot read uploaded file")
	}

	return &services.ImageUpload{Filename: file.Filename, Bytes: b}, nil
}

func parseFormFloat(ctx *fiber.Ctx, key string) (float64, error) {
	v := ctx.FormValue(key)
	if v == "" {
		return 0, nil
	}
	return strconv.ParseFloat(v, 64)
}

func parseFormInt(ctx *fiber.Ctx, key string) (int, error) {
	v := ctx.FormValue(key)
	if v == "" {
		return 0, nil
	}
	return strconv.Atoi(v)
}
