package repository

import (
	"context"
	"strings"

	"github.com/colorhaus/colorhaus/internal/color/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, color *domain.Color) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO colors (id, name, hex, ral, pantone, archived, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		color.ID,
		color.Name,
		color.Hex,
		color.RAL,
		color.Pantone,
		color.Archived,
		color.CreatedAt,
		color.UpdatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Color, error) {
	var c domain.Color
	err := db.WithContext(ctx).Raw(
		`SELECT id, name, hex, ral, pantone, archived, created_at, updated_at
		 FROM colors WHERE id = ?`,
		id,
	).Scan(&c).Error
	if err != nil {
		return nil, err
	}
	if c.ID == 0 {
		return nil, nil
	}
	return &c, nil
}

func (r *repo) List(ctx context.Context, db *gorm.DB, filter domain.ListRequest) ([]domain.Color, int64, error) {
	stmt := db.WithContext(ctx).Model(&domain.Color{})

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		stmt = stmt.Where("LOWER(name) LIKE ? OR LOWER(hex) LIKE ?", pattern, pattern)
	}
	if !filter.IncludeArchived {
		stmt = stmt.Where("archived = ?", false)
	}

	var total int64
	if err := stmt.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var items []domain.Color
	if err := filter.Apply(stmt.Order("name ASC")).Find(&items).Error; err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func (r *repo) Update(ctx context.Context, db *gorm.DB, color *domain.Color) error {
	if color == nil {
		return gorm.ErrInvalidData
	}
	return db.WithContext(ctx).Exec(
		`UPDATE colors
		 SET name = ?, hex = ?, ral = ?, pantone = ?, archived = ?, updated_at = ?
		 WHERE id = ?`,
		color.Name,
		color.Hex,
		color.RAL,
		color.Pantone,
		color.Archived,
		color.UpdatedAt,
		color.ID,
	).Error
}

func (r *repo) CountVariantRefs(ctx context.Context, db *gorm.DB, id int64) (int64, error) {
	var count int64
	err := db.WithContext(ctx).Raw(
		`SELECT COUNT(1) FROM product_variants WHERE color_id = ?`,
		id,
	).Scan(&count).Error
	if err != nil {
		return 0, err
	}
	return count, nil
}
