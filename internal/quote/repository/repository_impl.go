package repository

import (
	"context"

	"github.com/colorhaus/colorhaus/internal/quote/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, quote *domain.Quote) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO quotes (id, owner_id, status, customer_name, customer_email, customer_phone,
		 customer_address, customer_postal_code, subtotal, discount, total, signature_ref, signed_at, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		quote.ID,
		quote.OwnerID,
		quote.Status,
		quote.CustomerName,
		quote.CustomerEmail,
		quote.CustomerPhone,
		quote.CustomerAddress,
		quote.CustomerPostalCode,
		quote.Subtotal,
		quote.Discount,
		quote.Total,
		quote.SignatureRef,
		quote.SignedAt,
		quote.CreatedAt,
		quote.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Quote, error) {
	var q domain.Quote
	err := db.WithContext(ctx).Raw(
		`SELECT id, owner_id, status, customer_name, customer_email, customer_phone,
		 customer_address, customer_postal_code, subtotal, discount, total, signature_ref, signed_at, created_at, updated_at
		 FROM quotes WHERE id = ?`,
		id,
	).Scan(&q).Error
	if err != nil {
		return nil, err
	}
	if q.ID == 0 {
		return nil, nil
	}
	return &q, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter, offset, limit int) ([]domain.Quote, int64, error) {
	stmt := db.WithContext(ctx).Model(&domain.Quote{})

	if filter.OwnerID != 0 {
		stmt = stmt.Where("owner_id = ?", filter.OwnerID)
	}
	if filter.Status != "" {
		stmt = stmt.Where("status = ?", filter.Status)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Quote
	if err := stmt.Order("created_at DESC").Offset(offset).Limit(limit).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, quote *domain.Quote) error {
	if quote == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE quotes
		 SET status = ?, customer_name = ?, customer_email = ?, customer_phone = ?,
		 customer_address = ?, customer_postal_code = ?, subtotal = ?, discount = ?, total = ?,
		 signature_ref = ?, signed_at = ?, updated_at = ?
		 WHERE id = ?`,
		quote.Status,
		quote.CustomerName,
		quote.CustomerEmail,
		quote.CustomerPhone,
		quote.CustomerAddress,
		quote.CustomerPostalCode,
		quote.Subtotal,
		quote.Discount,
		quote.Total,
		quote.SignatureRef,
		quote.SignedAt,
		quote.UpdatedAt,
		quote.ID,
	).Error
}

func (r *repo) Delete(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM quotes WHERE id = ?`, id).Error
}

func (r *repo) CreateItem(ctx context.Context, db *gorm.DB, item *domain.QuoteItem) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO quote_items (id, quote_id, variant_id, quantity, price_at_time, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		item.ID,
		item.QuoteID,
		item.VariantID,
		item.Quantity,
		item.PriceAtTime,
		item.CreatedAt,
	).Error
}

func (r *repo) FindItemByID(ctx context.Context, db *gorm.DB, id int64) (*domain.QuoteItem, error) {
	var item domain.QuoteItem
	err := db.WithContext(ctx).Raw(
		`SELECT id, quote_id, variant_id, quantity, price_at_time, created_at
		 FROM quote_items WHERE id = ?`,
		id,
	).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *repo) ListItems(ctx context.Context, db *gorm.DB, quoteID int64) ([]domain.QuoteItem, error) {
	var items []domain.QuoteItem
	err := db.WithContext(ctx).Raw(
		`SELECT id, quote_id, variant_id, quantity, price_at_time, created_at
		 FROM quote_items WHERE quote_id = ? ORDER BY created_at ASC, id ASC`,
		quoteID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) DeleteItem(ctx context.Context, db *gorm.DB, id int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM quote_items WHERE id = ?`, id).Error
}

func (r *repo) DeleteItemsByQuote(ctx context.Context, db *gorm.DB, quoteID int64) error {
	return db.WithContext(ctx).Exec(`DELETE FROM quote_items WHERE quote_id = ?`, quoteID).Error
}
