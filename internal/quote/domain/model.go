package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusDraft    = "draft"
	StatusSent     = "sent"
	StatusApproved = "approved"
	StatusSigned   = "signed"
	StatusArchived = "archived"
)

// transitions holds the allowed forward moves per trigger target.
var transitions = map[string]map[string]bool{
	StatusSent:     {StatusDraft: true},
	StatusApproved: {StatusSent: true},
	StatusSigned:   {StatusSent: true, StatusApproved: true},
	StatusArchived: {StatusDraft: true, StatusSent: true, StatusApproved: true, StatusSigned: true},
}

// CanTransition reports whether a quote may move from one status to another.
func CanTransition(from, to string) bool {
	allowed, ok := transitions[to]
	if !ok {
		return false
	}
	return allowed[from]
}

// ValidStatus reports whether the value is a known lifecycle status.
func ValidStatus(status string) bool {
	switch status {
	case StatusDraft, StatusSent, StatusApproved, StatusSigned, StatusArchived:
		return true
	}
	return false
}

type Quote struct {
	ID                 int64           `json:"id" gorm:"primaryKey"`
	OwnerID            int64           `json:"owner_id" gorm:"not null;index"`
	Status             string          `json:"status" gorm:"type:text;not null;default:draft;index"`
	CustomerName       string          `json:"customer_name" gorm:"type:text;not null"`
	CustomerEmail      string          `json:"customer_email" gorm:"type:text"`
	CustomerPhone      string          `json:"customer_phone" gorm:"type:text"`
	CustomerAddress    string          `json:"customer_address" gorm:"type:text"`
	CustomerPostalCode string          `json:"customer_postal_code" gorm:"type:text"`
	Subtotal           decimal.Decimal `json:"subtotal" gorm:"type:numeric(12,2);not null"`
	Discount           decimal.Decimal `json:"discount" gorm:"type:numeric(12,2);not null"`
	Total              decimal.Decimal `json:"total" gorm:"type:numeric(12,2);not null"`
	SignatureRef       *string         `json:"signature_ref,omitempty" gorm:"type:text"`
	SignedAt           *time.Time      `json:"signed_at,omitempty"`
	CreatedAt          time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt          time.Time       `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Quote) TableName() string { return "quotes" }

type QuoteItem struct {
	ID          int64           `json:"id" gorm:"primaryKey"`
	QuoteID     int64           `json:"quote_id" gorm:"not null;index"`
	VariantID   int64           `json:"variant_id" gorm:"not null;index"`
	Quantity    int             `json:"quantity" gorm:"not null"`
	PriceAtTime decimal.Decimal `json:"price_at_time" gorm:"type:numeric(12,2);not null"`
	CreatedAt   time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (QuoteItem) TableName() string { return "quote_items" }

// LineTotal is the item contribution to the quote subtotal.
func (i QuoteItem) LineTotal() decimal.Decimal {
	return i.PriceAtTime.Mul(decimal.NewFromInt(int64(i.Quantity)))
}
