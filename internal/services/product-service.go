package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/zenith-max/Wellmed/internal/domain"
	"github.com/zenith-max/Wellmed/internal/dto"
	"github.com/zenith-max/Wellmed/internal/interfaces"
	"github.com/zenith-max/Wellmed/internal/repository"
)

const productImageFolder = "wellmed/products"

// ImageUpload carries the raw bytes of an uploaded product image.
type ImageUpload struct {
	Filename string
	Bytes    []byte
}

type ProductService interface {
	List(query dto.ProductQuery) ([]domain.Product, error)
	Get(id uint) (*domain.Product, error)
	Create(ctx context.Context, input dto.CreateProductRequest, image *ImageUpload) (*domain.Product, error)
	Update(ctx context.Context, id uint, input dto.UpdateProductRequest, image *ImageUpload) (*domain.Product, error)
	Delete(ctx context.Context, id uint) error
	AddReview(productID, userID uint, userName string, input dto.AddReviewRequest) (*domain.Product, error)
}

type productService struct {
	repo     repository.ProductRepository
	uploader interfaces.Uploader
}

func NewProductService(repo repository.ProductRepository, uploader interfaces.Uploader) ProductService {
	return &productService{repo: repo, uploader: uploader}
}

func (s *productService) List(query dto.ProductQuery) ([]domain.Product, error) {
	if query.Category != "" && !domain.IsValidCategory(query.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, query.Category)
	}

	limit := query.Limit
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	return s.repo.Search(query.Category, strings.TrimSpace(query.Search), limit, query.Offset)
}

func (s *productService) Get(id uint) (*domain.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, id)
	}
	return product, nil
}

func (s *productService) Create(ctx context.Context, input dto.CreateProductRequest, image *ImageUpload) (*domain.Product, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" || strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: name and description are required", ErrInvalidInput)
	}
	if input.Price < 0 {
		return nil, fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
	}
	if !domain.IsValidCategory(input.Category) {
		return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, input.Category)
	}
	if input.Stock < 0 {
		return nil, fmt.Errorf("%w: stock must be >= 0", ErrInvalidInput)
	}
	if input.DiscountPercent < 0 || input.DiscountPercent > 100 {
		return nil, fmt.Errorf("%w: discount percent must be between 0 and 100", ErrInvalidInput)
	}
	if image == nil || len(image.Bytes) == 0 {
		return nil, fmt.Errorf("%w: product image is required", ErrInvalidInput)
	}

	url, publicID, err := s.uploadImage(ctx, image)
	if err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:            name,
		Description:     strings.TrimSpace(input.Description),
		Price:           input.Price,
		Category:        input.Category,
		Stock:           input.Stock,
		DiscountPercent: input.DiscountPercent,
		ImageURL:        url,
		ImagePublicID:   publicID,
	}

	if err := s.repo.Create(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Update(ctx context.Context, id uint, input dto.UpdateProductRequest, image *ImageUpload) (*domain.Product, error) {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, id)
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidInput)
		}
		product.Name = name
	}
	if input.Description != nil {
		desc := strings.TrimSpace(*input.Description)
		if desc == "" {
			return nil, fmt.Errorf("%w: description cannot be empty", ErrInvalidInput)
		}
		product.Description = desc
	}
	if input.Price != nil {
		if *input.Price < 0 {
			return nil, fmt.Errorf("%w: price must be >= 0", ErrInvalidInput)
		}
		product.Price = *input.Price
	}
	if input.Category != nil {
		if !domain.IsValidCategory(*input.Category) {
			return nil, fmt.Errorf("%w: unknown category %q", ErrInvalidInput, *input.Category)
		}
		product.Category = *input.Category
	}
	if input.Stock != nil {
		if *input.Stock < 0 {
			return nil, fmt.Errorf("%w: stock must be >= 0", ErrInvalidInput)
		}
		product.Stock = *input.Stock
	}
	if input.DiscountPercent != nil {
		if *input.DiscountPercent < 0 || *input.DiscountPercent > 100 {
			return nil, fmt.Errorf("%w: discount percent must be between 0 and 100", ErrInvalidInput)
		}
		product.DiscountPercent = *input.DiscountPercent
	}

	if image != nil && len(image.Bytes) > 0 {
		url, publicID, err := s.uploadImage(ctx, image)
		if err != nil {
			return nil, err
		}
		s.destroyImage(ctx, product.ImagePublicID)
		product.ImageURL = url
		product.ImagePublicID = publicID
	}

	if err := s.repo.Save(product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) Delete(ctx context.Context, id uint) error {
	product, err := s.repo.FindByID(id)
	if err != nil {
		return err
	}
	if product == nil {
		return fmt.Errorf("%w: product %d", ErrProductNotFound, id)
	}

	if err := s.repo.Delete(id); err != nil {
		return err
	}

	s.destroyImage(ctx, product.ImagePublicID)
	return nil
}

func (s *productService) AddReview(productID, userID uint, userName string, input dto.AddReviewRequest) (*domain.Product, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, fmt.Errorf("%w: rating must be between 1 and 5", ErrInvalidInput)
	}

	product, err := s.repo.FindByID(productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, fmt.Errorf("%w: product %d", ErrProductNotFound, productID)
	}

	review := &domain.Review{
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Comment:   strings.TrimSpace(input.Comment),
		Rating:    input.Rating,
	}

	// average over existing reviews plus the new one
	sum := float64(input.Rating)
	for _, r := range product.Reviews {
		sum += float64(r.Rating)
	}
	newRating := sum / float64(len(product.Reviews)+1)

	if err := s.repo.AddReview(review, newRating); err != nil {
		return nil, err
	}

	return s.Get(productID)
}

func (s *productService) uploadImage(ctx context.Context, image *ImageUpload) (url, publicID string, err error) {
	if s.uploader == nil {
		return "", "", fmt.Errorf("uploader is not configured")
	}

	filename := uuid.NewString()
	url, err = s.uploader.UploadBytes(ctx, productImageFolder, filename, image.Bytes)
	if err != nil {
		return "", "", fmt.Errorf("image upload failed: %w", err)
	}

	return url, productImageFolder + "/" + filename, nil
}

// destroyImage is best effort; an orphaned CDN asset is not worth failing a
// catalog operation over.
func (s *productService) destroyImage(ctx context.Context, publicID string) {
	if s.uploader == nil || publicID == "" {
		return
	}
	if err := s.uploader.DestroyByPublicID(ctx, publicID); err != nil {
		log.Printf("destroy image %s failed: %v", publicID, err)
	}
}
