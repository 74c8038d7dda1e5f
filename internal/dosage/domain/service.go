package domain

import (
	"context"
	"errors"
	"time"
)

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Response, error)
	Get(ctx context.Context, id string) (*Response, error)
	ListByQuote(ctx context.Context, quoteID string) ([]Response, error)
}

type PigmentInput struct {
	Name    string `json:"name"`
	Percent string `json:"percent"`
}

type CreateRequest struct {
	QuoteID     string         `json:"-"`
	VariantID   string         `json:"variant_id"`
	BasePercent string         `json:"base_percent"`
	Pigments    []PigmentInput `json:"pigments"`
}

type PigmentResponse struct {
	Name    string `json:"name"`
	Percent string `json:"percent"`
}

type Response struct {
	ID          string            `json:"id"`
	QuoteID     string            `json:"quote_id"`
	VariantID   string            `json:"variant_id"`
	BasePercent string            `json:"base_percent"`
	Pigments    []PigmentResponse `json:"pigments"`
	CreatedAt   time.Time         `json:"created_at"`
}

var (
	ErrInvalidID          = errors.New("invalid_id")
	ErrInvalidPercent     = errors.New("invalid_percent")
	ErrInvalidPigmentName = errors.New("invalid_pigment_name")
	ErrTooManyPigments    = errors.New("too_many_pigments")
	ErrInvalidDosageTotal = errors.New("invalid_dosage_total")
	ErrNotFound           = errors.New("not_found")
	ErrQuoteNotFound      = errors.New("quote_not_found")
	ErrVariantNotFound    = errors.New("variant_not_found")
)
