package service

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/colorhaus/colorhaus/internal/clock"
	"github.com/colorhaus/colorhaus/internal/report/domain"
	"github.com/colorhaus/colorhaus/internal/report/repository"
	"github.com/colorhaus/colorhaus/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupReport(t *testing.T) (*gorm.DB, domain.Service, *clock.FakeClock) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("new test db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&domain.SalesRecord{},
		&domain.ConversionRecord{},
		&domain.InventoryRecord{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}
	if err := dbConn.Exec(`DELETE FROM sales_records`).Error; err != nil {
		t.Fatalf("reset sales: %v", err)
	}
	if err := dbConn.Exec(`DELETE FROM conversion_records`).Error; err != nil {
		t.Fatalf("reset conversions: %v", err)
	}

	fake := clock.NewFakeClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	svc := New(Params{DB: dbConn, Log: zap.NewNop(), Repo: repository.Provide(), Clock: fake})
	return dbConn, svc, fake
}

func money(v string) decimal.Decimal {
	d, err := decimal.NewFromString(v)
	if err != nil {
		panic(err)
	}
	return d
}

func seedSampleSales(t *testing.T, dbConn *gorm.DB, at time.Time) {
	t.Helper()

	rows := []domain.SalesRecord{
		{ID: 1, ProductName: "Blanc Perle", Category: "Interior", ColorName: "White", TextureName: "Smooth", Quantity: 40, TotalValue: money("1200"), Cost: money("800"), OccurredAt: at},
		{ID: 2, ProductName: "Gris Orage", Category: "Interior", ColorName: "Grey", TextureName: "Smooth", Quantity: 25, TotalValue: money("750"), Cost: money("500"), OccurredAt: at.Add(time.Hour)},
		{ID: 3, ProductName: "Bleu Canard", Category: "Exterior", ColorName: "Blue", TextureName: "Textured", Quantity: 16, TotalValue: money("640"), Cost: money("400"), OccurredAt: at.Add(2 * time.Hour)},
		{ID: 4, ProductName: "Blanc Perle", Category: "Interior", ColorName: "White", TextureName: "Velvet", Quantity: 48, TotalValue: money("1440"), Cost: money("960"), OccurredAt: at.Add(3 * time.Hour)},
		{ID: 5, ProductName: "Vert Sauge", Category: "Exterior", ColorName: "Green", TextureName: "Textured", Quantity: 30, TotalValue: money("1050"), Cost: money("700"), OccurredAt: at.Add(4 * time.Hour)},
	}
	for i := range rows {
		if err := dbConn.Create(&rows[i]).Error; err != nil {
			t.Fatalf("seed sales row %d: %v", i, err)
		}
	}
}

func TestReportSummaryFromSampleData(t *testing.T) {
	dbConn, svc, fake := setupReport(t)
	seedSampleSales(t, dbConn, fake.Now().AddDate(0, 0, -2))

	conversions := []domain.ConversionRecord{
		{ID: 1, ProductName: "Blanc Perle", Views: 500, Purchases: 60, OccurredAt: fake.Now().AddDate(0, 0, -2)},
		{ID: 2, ProductName: "Vert Sauge", Views: 300, Purchases: 40, OccurredAt: fake.Now().AddDate(0, 0, -1)},
	}
	for i := range conversions {
		if err := dbConn.Create(&conversions[i]).Error; err != nil {
			t.Fatalf("seed conversion: %v", err)
		}
	}

	report, err := svc.Generate(context.Background(), domain.GenerateRequest{Period: domain.PeriodWeek})
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	if report.Summary.TotalRevenue != "5080.00" {
		t.Fatalf("expected revenue 5080.00, got %s", report.Summary.TotalRevenue)
	}
	if report.Summary.TotalCost != "3360.00" {
		t.Fatalf("expected cost 3360.00, got %s", report.Summary.TotalCost)
	}
	if report.Summary.TotalProfit != "1720.00" {
		t.Fatalf("expected profit 1720.00, got %s", report.Summary.TotalProfit)
	}
	if report.Summary.ProfitMargin != "33.86" {
		t.Fatalf("expected margin 33.86, got %s", report.Summary.ProfitMargin)
	}
	if report.Summary.ConversionRate != "12.50" {
		t.Fatalf("expected conversion 12.50, got %s", report.Summary.ConversionRate)
	}
	if report.TopProduct != "Blanc Perle" {
		t.Fatalf("expected top product Blanc Perle, got %s", report.TopProduct)
	}
	if report.TopTexture != "Smooth" {
		t.Fatalf("expected top texture Smooth, got %s", report.TopTexture)
	}
	if report.SalesCount != 5 {
		t.Fatalf("expected 5 sales, got %d", report.SalesCount)
	}
}

func TestReportZeroGuards(t *testing.T) {
	_, svc, _ := setupReport(t)

	report, err := svc.Generate(context.Background(), domain.GenerateRequest{Period: domain.PeriodWeek})
	if err != nil {
		t.Fatalf("generate empty: %v", err)
	}
	if report.Summary.ProfitMargin != "0.00" {
		t.Fatalf("expected margin 0.00 with no revenue, got %s", report.Summary.ProfitMargin)
	}
	if report.Summary.ConversionRate != "0.00" {
		t.Fatalf("expected conversion 0.00 with no views, got %s", report.Summary.ConversionRate)
	}
	if report.TopProduct != "" {
		t.Fatalf("expected empty top product, got %s", report.TopProduct)
	}
}

func TestReportFiltersAndPeriodBounds(t *testing.T) {
	dbConn, svc, fake := setupReport(t)
	seedSampleSales(t, dbConn, fake.Now().AddDate(0, 0, -2))

	old := domain.SalesRecord{ID: 6, ProductName: "Ancien Produit", Category: "Interior", ColorName: "White", TextureName: "Smooth", Quantity: 1, TotalValue: money("9999"), Cost: money("1"), OccurredAt: fake.Now().AddDate(0, 0, -40)}
	if err := dbConn.Create(&old).Error; err != nil {
		t.Fatalf("seed old record: %v", err)
	}

	report, err := svc.Generate(context.Background(), domain.GenerateRequest{
		Period:  domain.PeriodWeek,
		Filters: domain.Filters{Product: "blanc"},
	})
	if err != nil {
		t.Fatalf("generate filtered: %v", err)
	}
	if report.Summary.TotalRevenue != "2640.00" {
		t.Fatalf("expected filtered revenue 2640.00, got %s", report.Summary.TotalRevenue)
	}
	if report.SalesCount != 2 {
		t.Fatalf("expected 2 matching sales, got %d", report.SalesCount)
	}

	monthly, err := svc.Generate(context.Background(), domain.GenerateRequest{Period: domain.PeriodMonth})
	if err != nil {
		t.Fatalf("generate monthly: %v", err)
	}
	if monthly.SalesCount != 5 {
		t.Fatalf("expected 40-day-old record outside month window, got %d sales", monthly.SalesCount)
	}
}

func TestReportTopTieBreakFirstEncountered(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sales := []domain.SalesRecord{
		{ID: 1, ProductName: "Alpha", Category: "Interior", ColorName: "Red", TextureName: "Smooth", TotalValue: money("100"), Cost: money("50"), OccurredAt: now},
		{ID: 2, ProductName: "Beta", Category: "Interior", ColorName: "Blue", TextureName: "Smooth", TotalValue: money("100"), Cost: money("50"), OccurredAt: now},
	}

	report := aggregate(domain.PeriodWeek, now.AddDate(0, 0, -7), now, domain.Filters{}, sales, nil)
	if report.TopProduct != "Alpha" {
		t.Fatalf("expected first-encountered tie winner Alpha, got %s", report.TopProduct)
	}
}

func TestReportDeterministic(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	sales := []domain.SalesRecord{
		{ID: 1, ProductName: "Alpha", Category: "Interior", ColorName: "Red", TextureName: "Smooth", TotalValue: money("120.50"), Cost: money("60"), OccurredAt: now},
		{ID: 2, ProductName: "Beta", Category: "Exterior", ColorName: "Blue", TextureName: "Velvet", TotalValue: money("80"), Cost: money("20"), OccurredAt: now},
	}
	conversions := []domain.ConversionRecord{
		{ID: 1, ProductName: "Alpha", Views: 10, Purchases: 3, OccurredAt: now},
	}

	from := now.AddDate(0, 0, -7)
	first := aggregate(domain.PeriodWeek, from, now, domain.Filters{}, sales, conversions)
	second := aggregate(domain.PeriodWeek, from, now, domain.Filters{}, sales, conversions)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("expected identical reports for identical inputs")
	}
}

func TestReportInvalidPeriod(t *testing.T) {
	_, svc, _ := setupReport(t)
	if _, err := svc.Generate(context.Background(), domain.GenerateRequest{Period: "decade"}); !errors.Is(err, domain.ErrInvalidPeriod) {
		t.Fatalf("expected invalid_period, got %v", err)
	}
}
