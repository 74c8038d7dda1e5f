package repository

import (
	"context"
	"strings"

	"github.com/colorhaus/colorhaus/internal/catalog/domain"
	"github.com/colorhaus/colorhaus/pkg/db/option"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO products (id, code, name, description, category_id, finish_id, technical_data, archived, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		product.ID,
		product.Code,
		product.Name,
		product.Description,
		product.CategoryID,
		product.FinishID,
		product.TechnicalData,
		product.Archived,
		product.CreatedAt,
		product.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, description, category_id, finish_id, technical_data, archived, created_at, updated_at
		 FROM products WHERE id = ?`,
		id,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindByCode(ctx context.Context, db *gorm.DB, code string) (*domain.Product, error) {
	var p domain.Product
	err := db.WithContext(ctx).Raw(
		`SELECT id, code, name, description, category_id, finish_id, technical_data, archived, created_at, updated_at
		 FROM products WHERE code = ?`,
		code,
	).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListFilter) ([]domain.Product, int64, error) {
	stmt := db.WithContext(ctx).Model(&domain.Product{})

	if filter.CategoryID != 0 {
		stmt = stmt.Where("category_id = ?", filter.CategoryID)
	}
	if filter.FinishID != 0 {
		stmt = stmt.Where("finish_id = ?", filter.FinishID)
	}
	if filter.ColorID != 0 {
		stmt = stmt.Where("id IN (SELECT product_id FROM product_variants WHERE color_id = ?)", filter.ColorID)
	}
	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		stmt = stmt.Where("LOWER(code) LIKE ? OR LOWER(name) LIKE ?", pattern, pattern)
	}
	if !filter.IncludeArchived {
		stmt = stmt.Where("archived = ?", false)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	stmt = option.WithSortBy(option.WithQuerySortBy(filter.SortBy, filter.OrderBy, map[string]bool{
		"created_at": true,
		"updated_at": true,
		"name":       true,
		"code":       true,
	})).Apply(stmt)

	var items []domain.Product
	if err := filter.Apply(stmt).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, product *domain.Product) error {
	if product == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE products
		 SET name = ?, description = ?, technical_data = ?, archived = ?, updated_at = ?
		 WHERE id = ?`,
		product.Name,
		product.Description,
		product.TechnicalData,
		product.Archived,
		product.UpdatedAt,
		product.ID,
	).Error
}

func (r *repo) CreateVariant(ctx context.Context, db *gorm.DB, variant *domain.ProductVariant) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO product_variants (id, product_id, texture_id, color_id, sku, price, image_url, archived, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		variant.ID,
		variant.ProductID,
		variant.TextureID,
		variant.ColorID,
		variant.SKU,
		variant.Price,
		variant.ImageURL,
		variant.Archived,
		variant.CreatedAt,
		variant.UpdatedAt,
	).Error
}

func (r *repo) FindVariantByID(ctx context.Context, db *gorm.DB, id int64) (*domain.ProductVariant, error) {
	var v domain.ProductVariant
	err := db.WithContext(ctx).Raw(
		`SELECT id, product_id, texture_id, color_id, sku, price, image_url, archived, created_at, updated_at
		 FROM product_variants WHERE id = ?`,
		id,
	).Scan(&v).Error
	if err != nil {
		return nil, err
	}
	if v.ID == 0 {
		return nil, nil
	}
	return &v, nil
}

func (r *repo) ListVariants(ctx context.Context, db *gorm.DB, productID int64, includeArchived bool) ([]domain.ProductVariant, error) {
	stmt := db.WithContext(ctx).
		Model(&domain.ProductVariant{}).
		Where("product_id = ?", productID)
	if !includeArchived {
		stmt = stmt.Where("archived = ?", false)
	}

	var items []domain.ProductVariant
	if err := stmt.Order("created_at ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *repo) UpdateVariant(ctx context.Context, db *gorm.DB, variant *domain.ProductVariant) error {
	if variant == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE product_variants
		 SET price = ?, image_url = ?, archived = ?, updated_at = ?
		 WHERE id = ?`,
		variant.Price,
		variant.ImageURL,
		variant.Archived,
		variant.UpdatedAt,
		variant.ID,
	).Error
}
