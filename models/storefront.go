package models

import "github.com/google/uuid"

// StorefrontProductResponse is the thin product card used by listings,
// home sections and recommendation lists.
type StorefrontProductResponse struct {
	ID       uuid.UUID `json:"id"`
	Slug     string    `json:"slug"`
	Name     string    `json:"name"`
	Image    string    `json:"image"`
	Price    float64   `json:"price"`
	Category string    `json:"category"`
	InStock  bool      `json:"in_stock"`
}

// NewStorefrontProductResponse flattens a product into its card shape.
func NewStorefrontProductResponse(p Product) StorefrontProductResponse {
	return StorefrontProductResponse{
		ID:       p.ID,
		Slug:     p.Slug,
		Name:     p.Name,
		Image:    p.Media.Primary.URL,
		Price:    p.Price,
		Category: p.Category,
		InStock:  p.InStock(),
	}
}

// StorefrontProductDetail is the product page payload: the full product
// plus its recommendation lists (each at most 4 entries, possibly empty).
type StorefrontProductDetail struct {
	Product       Product                     `json:"product"`
	Related       []StorefrontProductResponse `json:"related"`
	Complementary []StorefrontProductResponse `json:"complementary"`
}

// StorefrontCategory is a category node in the storefront tree (one level
// of subcategories, matching what the listing filter can express).
type StorefrontCategory struct {
	ID            uuid.UUID            `json:"id"`
	Slug          string               `json:"slug"`
	Name          string               `json:"name"`
	ProductCount  int                  `json:"product_count"`
	Subcategories []StorefrontCategory `json:"subcategories,omitempty"`
}

// CheckoutItem is one cart line sent by the storefront at checkout.
type CheckoutItem struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Name      string    `json:"name" binding:"required"`
	Size      string    `json:"size,omitempty"`
	Quantity  int       `json:"quantity" binding:"required,min=1"`
	Price     float64   `json:"price" binding:"required,min=0"`
}

// CheckoutRequest is the client-side cart handed off to WhatsApp. Nothing
// is persisted; the response carries the deep link only.
type CheckoutRequest struct {
	Module       string         `json:"module" binding:"required,oneof=sports automotive"`
	CustomerName string         `json:"customer_name" binding:"required,min=2"`
	Items        []CheckoutItem `json:"items" binding:"required,min=1,dive"`
}

// CheckoutResponse carries the WhatsApp deep link for the cart.
type CheckoutResponse struct {
	URL   string  `json:"url"`
	Total float64 `json:"total"`
}
