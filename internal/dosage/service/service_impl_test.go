package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	catalogrepository "github.com/colorhaus/colorhaus/internal/catalog/repository"
	"github.com/colorhaus/colorhaus/internal/dosage/domain"
	"github.com/colorhaus/colorhaus/internal/dosage/repository"
	quotedomain "github.com/colorhaus/colorhaus/internal/quote/domain"
	quoterepository "github.com/colorhaus/colorhaus/internal/quote/repository"
	"github.com/colorhaus/colorhaus/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type dosageFixture struct {
	svc       domain.Service
	quoteID   string
	variantID string
}

func setupDosage(t *testing.T) *dosageFixture {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("new test db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&catalogdomain.ProductVariant{},
		&quotedomain.Quote{},
		&domain.DosageFormula{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	node, err := snowflake.NewNode(4)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}

	now := time.Now().UTC()
	variant := catalogdomain.ProductVariant{
		ID:        node.Generate().Int64(),
		ProductID: node.Generate().Int64(),
		TextureID: node.Generate().Int64(),
		ColorID:   node.Generate().Int64(),
		SKU:       "dos-" + node.Generate().String(),
		Price:     decimal.NewFromInt(20),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := dbConn.Create(&variant).Error; err != nil {
		t.Fatalf("seed variant: %v", err)
	}

	quote := quotedomain.Quote{
		ID:           node.Generate().Int64(),
		OwnerID:      node.Generate().Int64(),
		Status:       quotedomain.StatusDraft,
		CustomerName: "Dosage Test",
		Subtotal:     decimal.Zero,
		Discount:     decimal.Zero,
		Total:        decimal.Zero,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := dbConn.Create(&quote).Error; err != nil {
		t.Fatalf("seed quote: %v", err)
	}

	svc := New(Params{
		DB:      dbConn,
		Log:     zap.NewNop(),
		GenID:   node,
		Repo:    repository.Provide(),
		Quotes:  quoterepository.Provide(),
		Catalog: catalogrepository.Provide(),
	})

	return &dosageFixture{
		svc:       svc,
		quoteID:   snowflake.ID(quote.ID).String(),
		variantID: snowflake.ID(variant.ID).String(),
	}
}

func TestDosageCreateRequiresExactTotal(t *testing.T) {
	f := setupDosage(t)
	ctx := context.Background()

	created, err := f.svc.Create(ctx, domain.CreateRequest{
		QuoteID:     f.quoteID,
		VariantID:   f.variantID,
		BasePercent: "70",
		Pigments: []domain.PigmentInput{
			{Name: "Oxide Red", Percent: "20"},
			{Name: "Carbon Black", Percent: "10"},
		},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.BasePercent != "70.00" {
		t.Fatalf("expected base 70.00, got %s", created.BasePercent)
	}
	if len(created.Pigments) != 2 {
		t.Fatalf("expected 2 pigments, got %d", len(created.Pigments))
	}

	if _, err := f.svc.Create(ctx, domain.CreateRequest{
		QuoteID:     f.quoteID,
		VariantID:   f.variantID,
		BasePercent: "70",
		Pigments:    []domain.PigmentInput{{Name: "Oxide Red", Percent: "20"}},
	}); !errors.Is(err, domain.ErrInvalidDosageTotal) {
		t.Fatalf("expected invalid_dosage_total for 90, got %v", err)
	}

	if _, err := f.svc.Create(ctx, domain.CreateRequest{
		QuoteID:     f.quoteID,
		VariantID:   f.variantID,
		BasePercent: "70",
		Pigments:    []domain.PigmentInput{{Name: "Oxide Red", Percent: "40"}},
	}); !errors.Is(err, domain.ErrInvalidDosageTotal) {
		t.Fatalf("expected invalid_dosage_total for 110, got %v", err)
	}
}

func TestDosageCreateValidation(t *testing.T) {
	f := setupDosage(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, domain.CreateRequest{
		QuoteID:     f.quoteID,
		VariantID:   f.variantID,
		BasePercent: "40",
		Pigments: []domain.PigmentInput{
			{Name: "A", Percent: "15"},
			{Name: "B", Percent: "15"},
			{Name: "C", Percent: "15"},
			{Name: "D", Percent: "15"},
		},
	}); !errors.Is(err, domain.ErrTooManyPigments) {
		t.Fatalf("expected too_many_pigments, got %v", err)
	}

	if _, err := f.svc.Create(ctx, domain.CreateRequest{
		QuoteID:     f.quoteID,
		VariantID:   f.variantID,
		BasePercent: "90",
		Pigments:    []domain.PigmentInput{{Name: "", Percent: "10"}},
	}); !errors.Is(err, domain.ErrInvalidPigmentName) {
		t.Fatalf("expected invalid_pigment_name, got %v", err)
	}

	if _, err := f.svc.Create(ctx, domain.CreateRequest{
		QuoteID:     f.quoteID,
		VariantID:   f.variantID,
		BasePercent: "110",
		Pigments:    []domain.PigmentInput{{Name: "A", Percent: "-10"}},
	}); !errors.Is(err, domain.ErrInvalidPercent) {
		t.Fatalf("expected invalid_percent, got %v", err)
	}
}

func TestDosageListByQuote(t *testing.T) {
	f := setupDosage(t)
	ctx := context.Background()

	if _, err := f.svc.Create(ctx, domain.CreateRequest{
		QuoteID:     f.quoteID,
		VariantID:   f.variantID,
		BasePercent: "100",
	}); err != nil {
		t.Fatalf("create base-only formula: %v", err)
	}

	items, err := f.svc.ListByQuote(ctx, f.quoteID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) == 0 {
		t.Fatalf("expected formulas, got none")
	}
}
