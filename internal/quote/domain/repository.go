package domain

import (
	"context"

	"gorm.io/gorm"
)

type ListFilter struct {
	OwnerID int64
	Status  string
}

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, quote *Quote) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Quote, error)
	List(ctx context.Context, db *gorm.DB, filter ListFilter, offset, limit int) ([]Quote, int64, error)
	Update(ctx context.Context, db *gorm.DB, quote *Quote) error
	Delete(ctx context.Context, db *gorm.DB, id int64) error

	CreateItem(ctx context.Context, db *gorm.DB, item *QuoteItem) error
	FindItemByID(ctx context.Context, db *gorm.DB, id int64) (*QuoteItem, error)
	ListItems(ctx context.Context, db *gorm.DB, quoteID int64) ([]QuoteItem, error)
	DeleteItem(ctx context.Context, db *gorm.DB, id int64) error
	DeleteItemsByQuote(ctx context.Context, db *gorm.DB, quoteID int64) error
}
