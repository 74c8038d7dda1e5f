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
}

type ListRequest struct {
	Search          string `form:"search"`
	IncludeArchived bool   `form:"include_archived"`
	pagination.Request
}

type CreateRequest struct {
	Name    string  `json:"name"`
	Hex     string  `json:"hex"`
	RAL     *string `json:"ral"`
	Pantone *string `json:"pantone"`
}

type UpdateRequest struct {
	ID      string  `json:"-"`
	Name    *string `json:"name"`
	Hex     *string `json:"hex"`
	RAL     *string `json:"ral"`
	Pantone *string `json:"pantone"`
}

type Response struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Hex       string    `json:"hex"`
	RAL       *string   `json:"ral,omitempty"`
	Pantone   *string   `json:"pantone,omitempty"`
	Archived  bool      `json:"archived"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ListResponse struct {
	Items []Response          `json:"items"`
	Page  pagination.PageInfo `json:"page"`
}

var (
	ErrInvalidName     = errors.New("invalid_name")
	ErrInvalidHex      = errors.New("invalid_hex")
	ErrInvalidID       = errors.New("invalid_id")
	ErrNotFound        = errors.New("not_found")
	ErrColorReferenced = errors.New("color_referenced")
)
