package domain

import (
	"context"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, formula *DosageFormula) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*DosageFormula, error)
	ListByQuote(ctx context.Context, db *gorm.DB, quoteID int64) ([]DosageFormula, error)
}
