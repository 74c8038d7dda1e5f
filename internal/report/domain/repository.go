package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	ListSales(ctx context.Context, db *gorm.DB, from, to time.Time) ([]SalesRecord, error)
	ListConversions(ctx context.Context, db *gorm.DB, from, to time.Time) ([]ConversionRecord, error)
	ListInventory(ctx context.Context, db *gorm.DB) ([]InventoryRecord, error)
}
