package repository

import (
	"context"

	"github.com/colorhaus/colorhaus/internal/signature/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) LatestSetting(ctx context.Context, db *gorm.DB) (*domain.Setting, error) {
	var setting domain.Setting
	err := db.WithContext(ctx).Raw(
		`SELECT id, provider, api_key, endpoint, created_at, updated_at
		 FROM signature_settings ORDER BY updated_at DESC LIMIT 1`,
	).Scan(&setting).Error
	if err != nil {
		return nil, err
	}
	if setting.ID == 0 {
		return nil, nil
	}
	return &setting, nil
}

func (r *repo) SaveSetting(ctx context.Context, db *gorm.DB, setting *domain.Setting) error {
	return db.WithContext(ctx).Save(setting).Error
}

func (r *repo) CreateSignature(ctx context.Context, db *gorm.DB, signature *domain.QuoteSignature) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO quote_signatures (id, quote_id, provider, reference, digest, signed_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		signature.ID,
		signature.QuoteID,
		signature.Provider,
		signature.Reference,
		signature.Digest,
		signature.SignedAt,
		signature.CreatedAt,
	).Error
}

func (r *repo) ListByQuote(ctx context.Context, db *gorm.DB, quoteID int64) ([]domain.QuoteSignature, error) {
	var items []domain.QuoteSignature
	err := db.WithContext(ctx).Raw(
		`SELECT id, quote_id, provider, reference, digest, signed_at, created_at
		 FROM quote_signatures WHERE quote_id = ? ORDER BY signed_at ASC`,
		quoteID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
