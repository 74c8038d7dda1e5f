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
	AddItem(ctx context.Context, req AddItemRequest) (*Response, error)
	RemoveItem(ctx context.Context, quoteID, itemID string) (*Response, error)
	Send(ctx context.Context, id string) (*Response, error)
	Approve(ctx context.Context, id string) (*Response, error)
	Sign(ctx context.Context, id string) (*Response, error)
	Archive(ctx context.Context, id string) (*Response, error)
	Delete(ctx context.Context, id string) error
	Render(ctx context.Context, id string) ([]byte, error)
}

type CustomerInput struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	PostalCode string `json:"postal_code"`
}

type CreateRequest struct {
	Customer CustomerInput `json:"customer"`
}

type UpdateRequest struct {
	ID       string         `json:"-"`
	Customer *CustomerInput `json:"customer"`
	Discount *string        `json:"discount"`
}

type AddItemRequest struct {
	QuoteID   string `json:"-"`
	VariantID string `json:"variant_id"`
	Quantity  int    `json:"quantity"`
}

type ListRequest struct {
	Status string `form:"status"`
	pagination.Request
}

type ItemResponse struct {
	ID          string    `json:"id"`
	VariantID   string    `json:"variant_id"`
	Quantity    int       `json:"quantity"`
	PriceAtTime string    `json:"price_at_time"`
	LineTotal   string    `json:"line_total"`
	CreatedAt   time.Time `json:"created_at"`
}

type Response struct {
	ID           string         `json:"id"`
	OwnerID      string         `json:"owner_id"`
	Status       string         `json:"status"`
	Customer     CustomerInput  `json:"customer"`
	Items        []ItemResponse `json:"items"`
	Subtotal     string         `json:"subtotal"`
	Discount     string         `json:"discount"`
	Total        string         `json:"total"`
	SignatureRef *string        `json:"signature_ref,omitempty"`
	SignedAt     *time.Time     `json:"signed_at,omitempty"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
}

type ListResponse struct {
	Items []Response          `json:"items"`
	Page  pagination.PageInfo `json:"page"`
}

var (
	ErrInvalidID         = errors.New("invalid_id")
	ErrInvalidCustomer   = errors.New("invalid_customer")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrInvalidStatus     = errors.New("invalid_status")
	ErrInvalidDiscount   = errors.New("invalid_discount")
	ErrInvalidTransition = errors.New("invalid_transition")
	ErrNotFound          = errors.New("not_found")
	ErrItemNotFound      = errors.New("item_not_found")
	ErrVariantNotFound   = errors.New("variant_not_found")
	ErrForbidden         = errors.New("forbidden")
	ErrUnauthenticated   = errors.New("unauthenticated")
	ErrQuoteNotEditable  = errors.New("quote_not_editable")
)
