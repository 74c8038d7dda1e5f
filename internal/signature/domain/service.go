package domain

import (
	"context"
	"errors"
	"time"
)

// SubmitRequest carries a rendered quote document to the signing processor.
type SubmitRequest struct {
	QuoteID  int64
	Provider string
	Document []byte
}

// Receipt is the processor's proof of a completed signing.
type Receipt struct {
	Reference string
	Digest    string
	SignedAt  time.Time
}

// Processor submits a document for signing and waits for the outcome.
type Processor interface {
	Submit(ctx context.Context, req SubmitRequest) (*Receipt, error)
}

type Service interface {
	Settings(ctx context.Context) (*SettingsResponse, error)
	UpdateSettings(ctx context.Context, req UpdateSettingsRequest) (*SettingsResponse, error)
	Sign(ctx context.Context, quoteID int64, document []byte) (*SignatureResponse, error)
	ListByQuote(ctx context.Context, quoteID int64) ([]SignatureResponse, error)
}

type UpdateSettingsRequest struct {
	Provider string `json:"provider"`
	APIKey   string `json:"api_key"`
	Endpoint string `json:"endpoint"`
}

type SettingsResponse struct {
	Provider  string    `json:"provider"`
	Endpoint  string    `json:"endpoint"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SignatureResponse struct {
	ID        string    `json:"id"`
	QuoteID   string    `json:"quote_id"`
	Provider  string    `json:"provider"`
	Reference string    `json:"reference"`
	Digest    string    `json:"digest"`
	SignedAt  time.Time `json:"signed_at"`
}

var (
	ErrInvalidProvider = errors.New("invalid_provider")
	ErrInvalidAPIKey   = errors.New("invalid_api_key")
	ErrInvalidEndpoint = errors.New("invalid_endpoint")
	ErrEmptyDocument   = errors.New("empty_document")
	ErrNotConfigured   = errors.New("signature_not_configured")
)
