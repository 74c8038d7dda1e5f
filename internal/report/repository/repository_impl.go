package repository

import (
	"context"
	"time"

	"github.com/colorhaus/colorhaus/internal/report/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) ListSales(ctx context.Context, db *gorm.DB, from, to time.Time) ([]domain.SalesRecord, error) {
	var items []domain.SalesRecord
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_name, category, color_name, texture_name, quantity, total_value, cost, occurred_at
		 FROM sales_records WHERE occurred_at >= ? AND occurred_at < ?
		 ORDER BY occurred_at ASC, id ASC`,
		from,
		to,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListConversions(ctx context.Context, db *gorm.DB, from, to time.Time) ([]domain.ConversionRecord, error) {
	var items []domain.ConversionRecord
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_name, views, purchases, occurred_at
		 FROM conversion_records WHERE occurred_at >= ? AND occurred_at < ?
		 ORDER BY occurred_at ASC, id ASC`,
		from,
		to,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) ListInventory(ctx context.Context, db *gorm.DB) ([]domain.InventoryRecord, error) {
	var items []domain.InventoryRecord
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_name, color_name, stock, updated_at
		 FROM inventory_records ORDER BY product_name ASC, color_name ASC`,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
