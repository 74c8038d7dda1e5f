package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, color *Color) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Color, error)
	List(ctx context.Context, db *gorm.DB, filter ListRequest) ([]Color, int64, error)
	Update(ctx context.Context, db *gorm.DB, color *Color) error
	CountVariantRefs(ctx context.Context, db *gorm.DB, id int64) (int64, error)
}
