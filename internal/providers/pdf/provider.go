package pdf

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// MissingVariantLabel replaces the product name of a line whose variant
// no longer resolves.
const MissingVariantLabel = "[produit indisponible]"

type QuoteDocument struct {
	Number     string
	IssuedAt   time.Time
	Customer   CustomerBlock
	Items      []LineItem
	Subtotal   decimal.Decimal
	Discount   decimal.Decimal
	Total      decimal.Decimal
	SignedRef  *string
	SignedDate *time.Time
}

type CustomerBlock struct {
	Name       string
	Email      string
	Phone      string
	Address    string
	PostalCode string
}

type LineItem struct {
	ProductName string
	SKU         string
	Quantity    int
	UnitPrice   decimal.Decimal
	LineTotal   decimal.Decimal
	Missing     bool
}

type Provider interface {
	RenderQuote(ctx context.Context, doc QuoteDocument) ([]byte, error)
}
