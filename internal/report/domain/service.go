package domain

import (
	"context"
	"errors"
	"time"
)

const (
	PeriodWeek    = "week"
	PeriodMonth   = "month"
	PeriodQuarter = "quarter"
	PeriodYear    = "year"
)

// ValidPeriod reports whether the value names a supported report window.
func ValidPeriod(period string) bool {
	switch period {
	case PeriodWeek, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	}
	return false
}

type Service interface {
	Generate(ctx context.Context, req GenerateRequest) (*ReportData, error)
	Inventory(ctx context.Context) ([]InventoryItem, error)
}

type Filters struct {
	Product  string `form:"product" json:"product,omitempty"`
	Category string `form:"category" json:"category,omitempty"`
	Color    string `form:"color" json:"color,omitempty"`
}

type GenerateRequest struct {
	Period  string `form:"period"`
	Filters Filters
}

type Summary struct {
	TotalRevenue   string `json:"total_revenue"`
	TotalCost      string `json:"total_cost"`
	TotalProfit    string `json:"total_profit"`
	ProfitMargin   string `json:"profit_margin"`
	ConversionRate string `json:"conversion_rate"`
}

type DimensionTotal struct {
	Name    string `json:"name"`
	Revenue string `json:"revenue"`
}

type ReportData struct {
	Period     string           `json:"period"`
	From       time.Time        `json:"from"`
	To         time.Time        `json:"to"`
	Filters    Filters          `json:"filters"`
	Summary    Summary          `json:"summary"`
	TopProduct string           `json:"top_product"`
	TopColor   string           `json:"top_color"`
	TopTexture string           `json:"top_texture"`
	ByProduct  []DimensionTotal `json:"by_product"`
	ByColor    []DimensionTotal `json:"by_color"`
	ByTexture  []DimensionTotal `json:"by_texture"`
	SalesCount int              `json:"sales_count"`
}

type InventoryItem struct {
	ProductName string    `json:"product_name"`
	ColorName   string    `json:"color_name"`
	Stock       int       `json:"stock"`
	UpdatedAt   time.Time `json:"updated_at"`
}

var ErrInvalidPeriod = errors.New("invalid_period")
