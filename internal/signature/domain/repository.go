package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	LatestSetting(ctx context.Context, db *gorm.DB) (*Setting, error)
	SaveSetting(ctx context.Context, db *gorm.DB, setting *Setting) error
	CreateSignature(ctx context.Context, db *gorm.DB, signature *QuoteSignature) error
	ListByQuote(ctx context.Context, db *gorm.DB, quoteID int64) ([]QuoteSignature, error)
}
