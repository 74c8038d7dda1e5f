package repository

import (
	"context"

	"github.com/colorhaus/colorhaus/internal/samplerequest/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, request *domain.SampleRequest) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO sample_requests (id, owner_id, variant_id, note, status, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		request.ID,
		request.OwnerID,
		request.VariantID,
		request.Note,
		request.Status,
		request.CreatedAt,
	).Error
}

func (r *repo) ListByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]domain.SampleRequest, error) {
	var items []domain.SampleRequest
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, variant_id, note, status, created_at
		 FROM sample_requests WHERE owner_id = ? ORDER BY created_at DESC`,
		ownerID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
