package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

// MaxPigments bounds the pigment lines of a tinting formula.
const MaxPigments = 3

type Pigment struct {
	Name    string          `json:"name"`
	Percent decimal.Decimal `json:"percent"`
}

// DosageFormula is the tinting recipe generated for a quoted variant.
// Immutable once created.
type DosageFormula struct {
	ID          int64                        `json:"id" gorm:"primaryKey"`
	QuoteID     int64                        `json:"quote_id" gorm:"not null;index"`
	VariantID   int64                        `json:"variant_id" gorm:"not null;index"`
	BasePercent decimal.Decimal              `json:"base_percent" gorm:"type:numeric(5,2);not null"`
	Pigments    datatypes.JSONSlice[Pigment] `json:"pigments" gorm:"type:jsonb"`
	CreatedAt   time.Time                    `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (DosageFormula) TableName() string { return "dosage_formulas" }
