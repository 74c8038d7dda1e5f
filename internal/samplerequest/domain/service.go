package domain

import (
	"context"
	"errors"
	"time"
)

// MaxBatchSize bounds one sample-request batch.
const MaxBatchSize = 10

type Service interface {
	CreateBatch(ctx context.Context, req BatchRequest) ([]Response, error)
	ListOwn(ctx context.Context) ([]Response, error)
}

type BatchEntry struct {
	VariantID string  `json:"variant_id"`
	Note      *string `json:"note"`
}

type BatchRequest struct {
	Entries []BatchEntry `json:"entries"`
}

type Response struct {
	ID        string    `json:"id"`
	VariantID string    `json:"variant_id"`
	Note      *string   `json:"note,omitempty"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

var (
	ErrEmptyBatch      = errors.New("empty_batch")
	ErrBatchTooLarge   = errors.New("batch_too_large")
	ErrInvalidID       = errors.New("invalid_id")
	ErrVariantNotFound = errors.New("variant_not_found")
	ErrUnauthenticated = errors.New("unauthenticated")
)
