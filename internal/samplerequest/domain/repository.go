package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, request *SampleRequest) error
	ListByOwner(ctx context.Context, db *gorm.DB, ownerID int64) ([]SampleRequest, error)
}
