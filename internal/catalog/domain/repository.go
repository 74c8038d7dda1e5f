package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, product *Product) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Product, error)
	FindByCode(ctx context.Context, db *gorm.DB, code string) (*Product, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter) ([]Product, int64, error)
	Update(ctx context.Context, db *gorm.DB, product *Product) error

	CreateVariant(ctx context.Context, db *gorm.DB, variant *ProductVariant) error
	FindVariantByID(ctx context.Context, db *gorm.DB, id int64) (*ProductVariant, error)
	ListVariants(ctx context.Context, db *gorm.DB, productID int64, includeArchived bool) ([]ProductVariant, error)
	UpdateVariant(ctx context.Context, db *gorm.DB, variant *ProductVariant) error
}

// ReferenceRepository is the single fetch path for catalog reference rows.
type ReferenceRepository interface {
	Categories(ctx context.Context, db *gorm.DB, includeArchived bool) ([]Category, error)
	Finishes(ctx context.Context, db *gorm.DB, includeArchived bool) ([]Finish, error)
	Textures(ctx context.Context, db *gorm.DB, includeArchived bool) ([]Texture, error)
	FindCategory(ctx context.Context, db *gorm.DB, id int64) (*Category, error)
	FindFinish(ctx context.Context, db *gorm.DB, id int64) (*Finish, error)
	FindTexture(ctx context.Context, db *gorm.DB, id int64) (*Texture, error)
}
