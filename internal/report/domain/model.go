package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// SalesRecord is one completed sale, denormalized for reporting.
type SalesRecord struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	ProductName string          `json:"product_name" gorm:"type:text;not null"`
	Category    string          `json:"category" gorm:"type:text;not null"`
	ColorName   string          `json:"color_name" gorm:"type:text;not null"`
	TextureName string          `json:"texture_name" gorm:"type:text;not null"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	TotalValue  decimal.Decimal `json:"total_value" gorm:"type:numeric(12,2);not null"`
	Cost        decimal.Decimal `json:"cost" gorm:"type:numeric(12,2);not null"`
	OccurredAt  time.Time       `json:"occurred_at" gorm:"not null;index"`
}

func (SalesRecord) TableName() string { return "sales_records" }

// ConversionRecord tracks storefront views against purchases.
type ConversionRecord struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ProductName string    `json:"product_name" gorm:"type:text;not null"`
	Views       int64     `json:"views" gorm:"not null"`
	Purchases   int64     `json:"purchases" gorm:"not null"`
	OccurredAt  time.Time `json:"occurred_at" gorm:"not null;index"`
}

func (ConversionRecord) TableName() string { return "conversion_records" }

// InventoryRecord is the current stock level per product and color.
type InventoryRecord struct {
	ID          int64     `json:"id" gorm:"primaryKey"`
	ProductName string    `json:"product_name" gorm:"type:text;not null"`
	ColorName   string    `json:"color_name" gorm:"type:text;not null"`
	Stock       int       `json:"stock" gorm:"not null"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"not null"`
}

func (InventoryRecord) TableName() string { return "inventory_records" }
