package dto

type CreateProductRequest struct {
	Name            string  `json:"name" validate:"required"`
	Description     string  `json:"description" validate:"required"`
	Price           float64 `json:"price" validate:"required,min=0"`
	Category        string  `json:"category" validate:"required"`
	Stock           int     `json:"stock" validate:"min=0"`
	DiscountPercent float64 `json:"discount_percent" validate:"min=0,max=100"`
}

type UpdateProductRequest struct {
	Name            *string  `json:"name,omitempty"`
	Description     *string  `json:"description,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	Category        *string  `json:"category,omitempty"`
	Stock           *int     `json:"stock,omitempty"`
	DiscountPercent *float64 `json:"discount_percent,omitempty"`
}

type ProductQuery struct {
	Category string `query:"category"`
	Search   string `query:"search"`
	Limit    int    `query:"limit"`
	Offset   int    `query:"offset"`
}

type AddReviewRequest struct {
	Comment string `json:"comment"`
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
}
