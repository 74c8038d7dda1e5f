package domain

import (
	"context"
	"errors"
	"time"

	"github.com/colorhaus/colorhaus/pkg/db/pagination"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	List(ctx context.Context, req ListRequest) (*ListResponse, error)
	Update(ctx context.Context, req UpdateRequest) (*Response, error)
	Archive(ctx context.Context, id string) (*Response, error)

	CreateVariant(ctx context.Context, req CreateVariantRequest) (*VariantResponse, error)
	GetVariant(ctx context.Context, id string) (*VariantResponse, error)
	ListVariants(ctx context.Context, productID string, includeArchived bool) ([]VariantResponse, error)
	ArchiveVariant(ctx context.Context, id string) (*VariantResponse, error)

	References(ctx context.Context, includeArchived bool) (*ReferenceResponse, error)
}

type ListRequest struct {
	CategoryID      string `form:"category_id"`
	FinishID        string `form:"finish_id"`
	ColorID         string `form:"color_id"`
	Search          string `form:"search"`
	IncludeArchived bool   `form:"include_archived"`
	SortBy          string `form:"sort_by"`
	OrderBy         string `form:"order_by"`
	pagination.Request
}

// ListFilter is the repository-side form of ListRequest with parsed ids.
type ListFilter struct {
	CategoryID      int64
	FinishID        int64
	ColorID         int64
	Search          string
	IncludeArchived bool
	SortBy          string
	OrderBy         string
	pagination.Request
}

type CreateRequest struct {
	Code          string         `json:"code"`
	Name          string         `json:"name"`
	Description   *string        `json:"description"`
	CategoryID    string         `json:"category_id"`
	FinishID      string         `json:"finish_id"`
	TechnicalData map[string]any `json:"technical_data"`
}

type UpdateRequest struct {
	ID            string         `json:"-"`
	Name          *string        `json:"name"`
	Description   *string        `json:"description"`
	TechnicalData map[string]any `json:"technical_data"`
}

type CreateVariantRequest struct {
	ProductID string  `json:"-"`
	TextureID string  `json:"texture_id"`
	ColorID   string  `json:"color_id"`
	Price     string  `json:"price"`
	ImageURL  *string `json:"image_url"`
}

type Response struct {
	ID            string         `json:"id"`
	Code          string         `json:"code"`
	Name          string         `json:"name"`
	Description   *string        `json:"description,omitempty"`
	CategoryID    string         `json:"category_id"`
	FinishID      string         `json:"finish_id"`
	TechnicalData map[string]any `json:"technical_data,omitempty"`
	Archived      bool           `json:"archived"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type VariantResponse struct {
	ID        string    `json:"id"`
	ProductID string    `json:"product_id"`
	TextureID string    `json:"texture_id"`
	ColorID   string    `json:"color_id"`
	SKU       string    `json:"sku"`
	Price     string    `json:"price"`
	ImageURL  *string   `json:"image_url,omitempty"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResponse struct {
	Items []Response          `json:"items"`
	Page  pagination.PageInfo `json:"page"`
}

type ReferenceItem struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Archived bool   `json:"archived"`
}

type ReferenceResponse struct {
	Categories []ReferenceItem `json:"categories"`
	Finishes   []ReferenceItem `json:"finishes"`
	Textures   []ReferenceItem `json:"textures"`
}

var (
	ErrInvalidCode      = errors.New("invalid_code")
	ErrInvalidName      = errors.New("invalid_name")
	ErrInvalidID        = errors.New("invalid_id")
	ErrInvalidPrice     = errors.New("invalid_price")
	ErrDuplicateCode    = errors.New("duplicate_code")
	ErrNotFound         = errors.New("not_found")
	ErrCategoryNotFound = errors.New("category_not_found")
	ErrFinishNotFound   = errors.New("finish_not_found")
	ErrTextureNotFound  = errors.New("texture_not_found")
	ErrColorNotFound    = errors.New("color_not_found")
)
