package repository

import (
	"context"

	"github.com/colorhaus/colorhaus/internal/dosage/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, formula *domain.DosageFormula) error {
	return db.WithContext(ctx).Exec(
		`INSERT INTO dosage_formulas (id, quote_id, variant_id, base_percent, pigments, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		formula.ID,
		formula.QuoteID,
		formula.VariantID,
		formula.BasePercent,
		formula.Pigments,
		formula.CreatedAt,
	).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.DosageFormula, error) {
	var f domain.DosageFormula
	err := db.WithContext(ctx).Raw(
		`SELECT id, quote_id, variant_id, base_percent, pigments, created_at
		 FROM dosage_formulas WHERE id = ?`,
		id,
	).Scan(&f).Error
	if err != nil {
		return nil, err
	}
	if f.ID == 0 {
		return nil, nil
	}
	return &f, nil
}

func (r *repo) ListByQuote(ctx context.Context, db *gorm.DB, quoteID int64) ([]domain.DosageFormula, error) {
	var items []domain.DosageFormula
	err := db.WithContext(ctx).Raw(
		`SELECT id, quote_id, variant_id, base_percent, pigments, created_at
		 FROM dosage_formulas WHERE quote_id = ? ORDER BY created_at ASC`,
		quoteID,
	).Scan(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}
