package repository

import (
	"context"

	"github.com/colorhaus/colorhaus/internal/catalog/domain"
	"gorm.io/gorm"
)

type referenceRepo struct{}

func ProvideReference() domain.ReferenceRepository {
	return &referenceRepo{}
}

func (r *referenceRepo) Categories(ctx context.Context, db *gorm.DB, includeArchived bool) ([]domain.Category, error) {
	var items []domain.Category
	stmt := db.WithContext(ctx).Model(&domain.Category{})
	if !includeArchived {
		stmt = stmt.Where("archived = ?", false)
	}
	if err := stmt.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *referenceRepo) Finishes(ctx context.Context, db *gorm.DB, includeArchived bool) ([]domain.Finish, error) {
	var items []domain.Finish
	stmt := db.WithContext(ctx).Model(&domain.Finish{})
	if !includeArchived {
		stmt = stmt.Where("archived = ?", false)
	}
	if err := stmt.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *referenceRepo) Textures(ctx context.Context, db *gorm.DB, includeArchived bool) ([]domain.Texture, error) {
	var items []domain.Texture
	stmt := db.WithContext(ctx).Model(&domain.Texture{})
	if !includeArchived {
		stmt = stmt.Where("archived = ?", false)
	}
	if err := stmt.Order("name ASC").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *referenceRepo) FindCategory(ctx context.Context, db *gorm.DB, id int64) (*domain.Category, error) {
	var item domain.Category
	err := db.WithContext(ctx).Raw(`SELECT id, name, archived, created_at, updated_at FROM categories WHERE id = ?`, id).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *referenceRepo) FindFinish(ctx context.Context, db *gorm.DB, id int64) (*domain.Finish, error) {
	var item domain.Finish
	err := db.WithContext(ctx).Raw(`SELECT id, name, archived, created_at, updated_at FROM finishes WHERE id = ?`, id).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}

func (r *referenceRepo) FindTexture(ctx context.Context, db *gorm.DB, id int64) (*domain.Texture, error) {
	var item domain.Texture
	err := db.WithContext(ctx).Raw(`SELECT id, name, archived, created_at, updated_at FROM textures WHERE id = ?`, id).Scan(&item).Error
	if err != nil {
		return nil, err
	}
	if item.ID == 0 {
		return nil, nil
	}
	return &item, nil
}
