package paddle

import (
	"context"
	"encoding/json"
	"net/http"
	"time"
)

// Status indicates whether an entity can be used in Paddle.
type Status string

const (
	StatusActive   Status = "active"
	StatusArchived Status = "archived"
)

// CatalogType describes whether an item is part of the catalog shown on the
// Paddle dashboard ("standard") or created on the fly ("custom").
type CatalogType string

const (
	CatalogTypeStandard CatalogType = "standard"
	CatalogTypeCustom   CatalogType = "custom"
)

// Product represents a product entity, prefixed with `pro_`.
type Product struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Type        CatalogType     `json:"type"`
	TaxCategory string          `json:"tax_category"`
	ImageURL    string          `json:"image_url,omitempty"`
	CustomData  json.RawMessage `json:"custom_data,omitempty"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// ProductListParams filters paginated product listings.
type ProductListParams struct {
	ListParams

	// ID returns only the products with the given Paddle IDs.
	ID []string `url:"id,comma,omitempty"`
	// Status filters by entity status. By default Paddle returns active products.
	Status []Status `url:"status,comma,omitempty"`
	// TaxCategory filters by tax category.
	TaxCategory []string `url:"tax_category,comma,omitempty"`
	// Type filters by catalog type.
	Type CatalogType `url:"type,omitempty"`
	// Include embeds related entities in the response. Valid values: "prices".
	Include []string `url:"include,comma,omitempty"`
}

// CreateProductRequest holds the fields for creating a product.
type CreateProductRequest struct {
	Name        string          `json:"name"`
	TaxCategory string          `json:"tax_category"`
	Description string          `json:"description,omitempty"`
	Type        CatalogType     `json:"type,omitempty"`
	ImageURL    string          `json:"image_url,omitempty"`
	CustomData  json.RawMessage `json:"custom_data,omitempty"`
}

// UpdateProductRequest holds the fields for updating a product.
// Nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string         `json:"name,omitempty"`
	Description *string         `json:"description,omitempty"`
	TaxCategory *string         `json:"tax_category,omitempty"`
	ImageURL    *string         `json:"image_url,omitempty"`
	CustomData  json.RawMessage `json:"custom_data,omitempty"`
	Status      *Status         `json:"status,omitempty"`
}

// ProductService handles communication with the product related endpoints.
type ProductService struct {
	client *Client
}

// Get fetches a single product by its Paddle ID.
func (s *ProductService) Get(ctx context.Context, id string) (*Product, error) {
	return doEntity[Product](ctx, s.client, http.MethodGet, "/products/"+id, nil)
}

// Create creates a new product.
func (s *ProductService) Create(ctx context.Context, req *CreateProductRequest) (*Product, error) {
	return doEntity[Product](ctx, s.client, http.MethodPost, "/products", req)
}

// Update updates an existing product.
func (s *ProductService) Update(ctx context.Context, id string, req *UpdateProductRequest) (*Product, error) {
	return doEntity[Product](ctx, s.client, http.MethodPatch, "/products/"+id, req)
}

// List returns a paginator over products matching the given filters.
// params may be nil to list with API defaults.
func (s *ProductService) List(params *ProductListParams) *Paginator[Product] {
	return newPaginator[Product](s.client, "/products", params)
}
