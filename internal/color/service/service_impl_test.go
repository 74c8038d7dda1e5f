package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	"github.com/colorhaus/colorhaus/internal/color/domain"
	"github.com/colorhaus/colorhaus/internal/color/repository"
	"github.com/colorhaus/colorhaus/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupColorDB(t *testing.T) (*gorm.DB, *snowflake.Node) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("new test db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&domain.Color{},
		&catalogdomain.ProductVariant{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}
	return dbConn, node
}

func newColorService(dbConn *gorm.DB, node *snowflake.Node) domain.Service {
	return New(Params{DB: dbConn, Log: zap.NewNop(), GenID: node, Repo: repository.Provide()})
}

func TestColorCreateValidation(t *testing.T) {
	dbConn, node := setupColorDB(t)
	svc := newColorService(dbConn, node)
	ctx := context.Background()

	if _, err := svc.Create(ctx, domain.CreateRequest{Name: "", Hex: "#112233"}); !errors.Is(err, domain.ErrInvalidName) {
		t.Fatalf("expected invalid_name, got %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateRequest{Name: "Sage", Hex: "112233"}); !errors.Is(err, domain.ErrInvalidHex) {
		t.Fatalf("expected invalid_hex, got %v", err)
	}
	if _, err := svc.Create(ctx, domain.CreateRequest{Name: "Sage", Hex: "#11223G"}); !errors.Is(err, domain.ErrInvalidHex) {
		t.Fatalf("expected invalid_hex for bad digit, got %v", err)
	}

	created, err := svc.Create(ctx, domain.CreateRequest{Name: "  Sage  ", Hex: "#aabbcc"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.Name != "Sage" {
		t.Fatalf("expected trimmed name, got %q", created.Name)
	}
	if created.Hex != "#AABBCC" {
		t.Fatalf("expected normalized hex, got %q", created.Hex)
	}
}

func TestColorUpdateBlockedWhenReferenced(t *testing.T) {
	dbConn, node := setupColorDB(t)
	svc := newColorService(dbConn, node)
	ctx := context.Background()

	created, err := svc.Create(ctx, domain.CreateRequest{Name: "Terracotta", Hex: "#C8552D"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	newName := "Burnt Terracotta"
	updated, err := svc.Update(ctx, domain.UpdateRequest{ID: created.ID, Name: &newName})
	if err != nil {
		t.Fatalf("update unreferenced: %v", err)
	}
	if updated.Name != newName {
		t.Fatalf("expected updated name, got %q", updated.Name)
	}

	colorID, err := snowflake.ParseString(created.ID)
	if err != nil {
		t.Fatalf("parse color id: %v", err)
	}
	now := time.Now().UTC()
	variant := catalogdomain.ProductVariant{
		ID:        node.Generate().Int64(),
		ProductID: node.Generate().Int64(),
		TextureID: node.Generate().Int64(),
		ColorID:   colorID.Int64(),
		SKU:       "test-terracotta-mat",
		Price:     decimal.NewFromInt(10),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := dbConn.Create(&variant).Error; err != nil {
		t.Fatalf("seed variant: %v", err)
	}

	if _, err := svc.Update(ctx, domain.UpdateRequest{ID: created.ID, Name: &newName}); !errors.Is(err, domain.ErrColorReferenced) {
		t.Fatalf("expected color_referenced, got %v", err)
	}

	archived, err := svc.Archive(ctx, created.ID)
	if err != nil {
		t.Fatalf("archive referenced color: %v", err)
	}
	if !archived.Archived {
		t.Fatalf("expected archived flag set")
	}
}

func TestColorListFilters(t *testing.T) {
	dbConn, node := setupColorDB(t)
	svc := newColorService(dbConn, node)
	ctx := context.Background()

	for _, name := range []string{"Nordic Blue", "Nordic Green"} {
		if _, err := svc.Create(ctx, domain.CreateRequest{Name: name, Hex: "#001122"}); err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
	}
	hidden, err := svc.Create(ctx, domain.CreateRequest{Name: "Nordic Grey", Hex: "#334455"})
	if err != nil {
		t.Fatalf("create archived: %v", err)
	}
	if _, err := svc.Archive(ctx, hidden.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	list, err := svc.List(ctx, domain.ListRequest{Search: "nordic"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 active colors, got %d", len(list.Items))
	}

	all, err := svc.List(ctx, domain.ListRequest{Search: "nordic", IncludeArchived: true})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("expected 3 colors including archived, got %d", len(all.Items))
	}
	if all.Page.Total != 3 {
		t.Fatalf("expected total 3, got %d", all.Page.Total)
	}
}
