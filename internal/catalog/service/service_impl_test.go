package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/colorhaus/colorhaus/internal/catalog/domain"
	"github.com/colorhaus/colorhaus/internal/catalog/repository"
	colordomain "github.com/colorhaus/colorhaus/internal/color/domain"
	colorrepository "github.com/colorhaus/colorhaus/internal/color/repository"
	"github.com/colorhaus/colorhaus/pkg/db"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type catalogFixture struct {
	db         *gorm.DB
	node       *snowflake.Node
	svc        domain.Service
	categoryID string
	finishID   string
	textureID  string
	colorID    string
}

func setupCatalog(t *testing.T) *catalogFixture {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("new test db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&domain.Category{},
		&domain.Finish{},
		&domain.Texture{},
		&domain.Product{},
		&domain.ProductVariant{},
		&colordomain.Color{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	node, err := snowflake.NewNode(2)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}

	now := time.Now().UTC()
	category := domain.Category{ID: node.Generate().Int64(), Name: "Interior walls", CreatedAt: now, UpdatedAt: now}
	finish := domain.Finish{ID: node.Generate().Int64(), Name: "Matte", CreatedAt: now, UpdatedAt: now}
	texture := domain.Texture{ID: node.Generate().Int64(), Name: "Smooth", CreatedAt: now, UpdatedAt: now}
	color := colordomain.Color{ID: node.Generate().Int64(), Name: "Ocean Blue", Hex: "#1F4E79", CreatedAt: now, UpdatedAt: now}
	if err := dbConn.Create(&category).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	if err := dbConn.Create(&finish).Error; err != nil {
		t.Fatalf("seed finish: %v", err)
	}
	if err := dbConn.Create(&texture).Error; err != nil {
		t.Fatalf("seed texture: %v", err)
	}
	if err := dbConn.Create(&color).Error; err != nil {
		t.Fatalf("seed color: %v", err)
	}

	svc := New(Params{
		DB:        dbConn,
		Log:       zap.NewNop(),
		GenID:     node,
		Repo:      repository.Provide(),
		Reference: repository.ProvideReference(),
		Colors:    colorrepository.Provide(),
	})

	return &catalogFixture{
		db:         dbConn,
		node:       node,
		svc:        svc,
		categoryID: snowflake.ID(category.ID).String(),
		finishID:   snowflake.ID(finish.ID).String(),
		textureID:  snowflake.ID(texture.ID).String(),
		colorID:    snowflake.ID(color.ID).String(),
	}
}

func (f *catalogFixture) createProduct(t *testing.T, code, name string) *domain.Response {
	t.Helper()
	created, err := f.svc.Create(context.Background(), domain.CreateRequest{
		Code:       code,
		Name:       name,
		CategoryID: f.categoryID,
		FinishID:   f.finishID,
	})
	if err != nil {
		t.Fatalf("create product %s: %v", code, err)
	}
	return created
}

func TestProductCreateAndDuplicateCode(t *testing.T) {
	f := setupCatalog(t)
	ctx := context.Background()

	created := f.createProduct(t, "LAV-2001", "Lavender Dream")
	if created.Code != "LAV-2001" {
		t.Fatalf("expected code kept, got %q", created.Code)
	}

	if _, err := f.svc.Create(ctx, domain.CreateRequest{
		Code:       "LAV-2001",
		Name:       "Duplicate",
		CategoryID: f.categoryID,
		FinishID:   f.finishID,
	}); !errors.Is(err, domain.ErrDuplicateCode) {
		t.Fatalf("expected duplicate_code, got %v", err)
	}

	if _, err := f.svc.Create(ctx, domain.CreateRequest{
		Code:       "LAV-2002",
		Name:       "Bad category",
		CategoryID: snowflake.ID(f.node.Generate().Int64()).String(),
		FinishID:   f.finishID,
	}); !errors.Is(err, domain.ErrCategoryNotFound) {
		t.Fatalf("expected category_not_found, got %v", err)
	}
}

func TestProductListSearchAndArchive(t *testing.T) {
	f := setupCatalog(t)
	ctx := context.Background()

	f.createProduct(t, "VEL-3001", "Velvet Touch")
	f.createProduct(t, "VEL-3002", "Velvet Shine")
	hidden := f.createProduct(t, "VEL-3003", "Velvet Night")
	if _, err := f.svc.Archive(ctx, hidden.ID); err != nil {
		t.Fatalf("archive: %v", err)
	}

	list, err := f.svc.List(ctx, domain.ListRequest{Search: "velvet"})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list.Items) != 2 {
		t.Fatalf("expected 2 active products, got %d", len(list.Items))
	}

	byCode, err := f.svc.List(ctx, domain.ListRequest{Search: "vel-3002"})
	if err != nil {
		t.Fatalf("list by code: %v", err)
	}
	if len(byCode.Items) != 1 || byCode.Items[0].Code != "VEL-3002" {
		t.Fatalf("expected code search to match VEL-3002, got %+v", byCode.Items)
	}

	all, err := f.svc.List(ctx, domain.ListRequest{Search: "velvet", IncludeArchived: true})
	if err != nil {
		t.Fatalf("list all: %v", err)
	}
	if all.Page.Total != 3 {
		t.Fatalf("expected total 3, got %d", all.Page.Total)
	}
}

func TestVariantCreateGeneratesSKU(t *testing.T) {
	f := setupCatalog(t)
	ctx := context.Background()

	product := f.createProduct(t, "SKU-4001", "Coastal Collection")

	variant, err := f.svc.CreateVariant(ctx, domain.CreateVariantRequest{
		ProductID: product.ID,
		TextureID: f.textureID,
		ColorID:   f.colorID,
		Price:     "24.90",
	})
	if err != nil {
		t.Fatalf("create variant: %v", err)
	}
	if variant.SKU != "sku-4001-ocean-blue-smooth" {
		t.Fatalf("unexpected sku %q", variant.SKU)
	}
	if variant.Price != "24.90" {
		t.Fatalf("expected price 24.90, got %q", variant.Price)
	}

	if _, err := f.svc.CreateVariant(ctx, domain.CreateVariantRequest{
		ProductID: product.ID,
		TextureID: f.textureID,
		ColorID:   f.colorID,
		Price:     "-1",
	}); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected invalid_price, got %v", err)
	}

	variants, err := f.svc.ListVariants(ctx, product.ID, false)
	if err != nil {
		t.Fatalf("list variants: %v", err)
	}
	if len(variants) != 1 {
		t.Fatalf("expected 1 variant, got %d", len(variants))
	}

	archived, err := f.svc.ArchiveVariant(ctx, variant.ID)
	if err != nil {
		t.Fatalf("archive variant: %v", err)
	}
	if !archived.Archived {
		t.Fatalf("expected archived variant")
	}
	remaining, err := f.svc.ListVariants(ctx, product.ID, false)
	if err != nil {
		t.Fatalf("list after archive: %v", err)
	}
	if len(remaining) != 0 {
		t.Fatalf("expected 0 active variants, got %d", len(remaining))
	}
}

func TestReferencesListing(t *testing.T) {
	f := setupCatalog(t)

	refs, err := f.svc.References(context.Background(), false)
	if err != nil {
		t.Fatalf("references: %v", err)
	}
	if len(refs.Categories) == 0 || len(refs.Finishes) == 0 || len(refs.Textures) == 0 {
		t.Fatalf("expected seeded reference rows, got %+v", refs)
	}
}
