package service

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/colorhaus/colorhaus/internal/cache"
	"github.com/colorhaus/colorhaus/internal/clock"
	"github.com/colorhaus/colorhaus/internal/observability/metrics"
	"github.com/colorhaus/colorhaus/internal/report/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	Repo    domain.Repository
	Clock   clock.Clock
	Cache   *cache.ReportCache `optional:"true"`
	Metrics *metrics.Metrics   `optional:"true"`
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	clock   clock.Clock
	cache   *cache.ReportCache
	metrics *metrics.Metrics
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("report.service"),
		repo:    p.Repo,
		clock:   p.Clock,
		cache:   p.Cache,
		metrics: p.Metrics,
	}
}

func (s *Service) Generate(ctx context.Context, req domain.GenerateRequest) (*domain.ReportData, error) {
	period := strings.ToLower(strings.TrimSpace(req.Period))
	if !domain.ValidPeriod(period) {
		return nil, domain.ErrInvalidPeriod
	}

	filters := domain.Filters{
		Product:  strings.TrimSpace(req.Filters.Product),
		Category: strings.TrimSpace(req.Filters.Category),
		Color:    strings.TrimSpace(req.Filters.Color),
	}

	key := cacheKey(period, filters)
	if payload, ok := s.cache.Get(ctx, key); ok {
		var cached domain.ReportData
		if err := json.Unmarshal(payload, &cached); err == nil {
			s.metrics.RecordReportGenerated(ctx, period, true)
			return &cached, nil
		}
		s.log.Warn("discarding unreadable cached report", zap.String("key", key))
	}

	to := s.clock.Now()
	from := periodStart(period, to)

	sales, err := s.repo.ListSales(ctx, s.db, from, to)
	if err != nil {
		return nil, err
	}
	conversions, err := s.repo.ListConversions(ctx, s.db, from, to)
	if err != nil {
		return nil, err
	}

	report := aggregate(period, from, to, filters, sales, conversions)

	if payload, err := json.Marshal(report); err == nil {
		s.cache.Set(ctx, key, payload)
	}

	s.metrics.RecordReportGenerated(ctx, period, false)
	return report, nil
}

func (s *Service) Inventory(ctx context.Context) ([]domain.InventoryItem, error) {
	records, err := s.repo.ListInventory(ctx, s.db)
	if err != nil {
		return nil, err
	}

	items := make([]domain.InventoryItem, 0, len(records))
	for _, record := range records {
		items = append(items, domain.InventoryItem{
			ProductName: record.ProductName,
			ColorName:   record.ColorName,
			Stock:       record.Stock,
			UpdatedAt:   record.UpdatedAt,
		})
	}
	return items, nil
}

// aggregate folds the period's records into a report. It is a pure
// function of its inputs; identical inputs yield identical output.
func aggregate(period string, from, to time.Time, filters domain.Filters, sales []domain.SalesRecord, conversions []domain.ConversionRecord) *domain.ReportData {
	revenue := decimal.Zero
	cost := decimal.Zero
	salesCount := 0

	byProduct := newDimension()
	byColor := newDimension()
	byTexture := newDimension()

	for _, record := range sales {
		if !matches(filters, record) {
			continue
		}
		revenue = revenue.Add(record.TotalValue)
		cost = cost.Add(record.Cost)
		salesCount++

		byProduct.add(record.ProductName, record.TotalValue)
		byColor.add(record.ColorName, record.TotalValue)
		byTexture.add(record.TextureName, record.TotalValue)
	}

	profit := revenue.Sub(cost)
	margin := decimal.Zero
	if revenue.IsPositive() {
		margin = profit.Div(revenue).Mul(hundred)
	}

	var views, purchases int64
	for _, record := range conversions {
		if filters.Product != "" && !containsFold(record.ProductName, filters.Product) {
			continue
		}
		views += record.Views
		purchases += record.Purchases
	}
	conversionRate := decimal.Zero
	if views > 0 {
		conversionRate = decimal.NewFromInt(purchases).Div(decimal.NewFromInt(views)).Mul(hundred)
	}

	return &domain.ReportData{
		Period:  period,
		From:    from,
		To:      to,
		Filters: filters,
		Summary: domain.Summary{
			TotalRevenue:   revenue.StringFixed(2),
			TotalCost:      cost.StringFixed(2),
			TotalProfit:    profit.StringFixed(2),
			ProfitMargin:   margin.StringFixed(2),
			ConversionRate: conversionRate.StringFixed(2),
		},
		TopProduct: byProduct.top(),
		TopColor:   byColor.top(),
		TopTexture: byTexture.top(),
		ByProduct:  byProduct.totals(),
		ByColor:    byColor.totals(),
		ByTexture:  byTexture.totals(),
		SalesCount: salesCount,
	}
}

func matches(filters domain.Filters, record domain.SalesRecord) bool {
	if filters.Product != "" && !containsFold(record.ProductName, filters.Product) {
		return false
	}
	if filters.Category != "" && !containsFold(record.Category, filters.Category) {
		return false
	}
	if filters.Color != "" && !containsFold(record.ColorName, filters.Color) {
		return false
	}
	return true
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// dimension accumulates revenue per name, preserving first-seen order so
// argmax ties resolve to the earliest entry.
type dimension struct {
	order  []string
	values map[string]decimal.Decimal
}

func newDimension() *dimension {
	return &dimension{values: make(map[string]decimal.Decimal)}
}

func (d *dimension) add(name string, value decimal.Decimal) {
	if _, ok := d.values[name]; !ok {
		d.order = append(d.order, name)
	}
	d.values[name] = d.values[name].Add(value)
}

func (d *dimension) top() string {
	best := ""
	bestValue := decimal.Zero
	for _, name := range d.order {
		if best == "" || d.values[name].GreaterThan(bestValue) {
			best = name
			bestValue = d.values[name]
		}
	}
	return best
}

func (d *dimension) totals() []domain.DimensionTotal {
	out := make([]domain.DimensionTotal, 0, len(d.order))
	for _, name := range d.order {
		out = append(out, domain.DimensionTotal{Name: name, Revenue: d.values[name].StringFixed(2)})
	}
	return out
}

func periodStart(period string, now time.Time) time.Time {
	switch period {
	case domain.PeriodWeek:
		return now.AddDate(0, 0, -7)
	case domain.PeriodMonth:
		return now.AddDate(0, -1, 0)
	case domain.PeriodQuarter:
		return now.AddDate(0, -3, 0)
	case domain.PeriodYear:
		return now.AddDate(-1, 0, 0)
	}
	return now
}

func cacheKey(period string, filters domain.Filters) string {
	parts := []string{"report", period,
		strings.ToLower(filters.Product),
		strings.ToLower(filters.Category),
		strings.ToLower(filters.Color),
	}
	return strings.Join(parts, ":")
}
