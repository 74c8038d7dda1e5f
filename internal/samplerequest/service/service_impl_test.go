package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	catalogrepository "github.com/colorhaus/colorhaus/internal/catalog/repository"
	"github.com/colorhaus/colorhaus/internal/samplerequest/domain"
	"github.com/colorhaus/colorhaus/internal/samplerequest/repository"
	"github.com/colorhaus/colorhaus/internal/usercontext"
	"github.com/colorhaus/colorhaus/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func setupSampleRequests(t *testing.T) (*gorm.DB, domain.Service, *snowflake.Node, string, context.Context) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("new test db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&catalogdomain.ProductVariant{},
		&domain.SampleRequest{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	node, err := snowflake.NewNode(5)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}

	now := time.Now().UTC()
	variant := catalogdomain.ProductVariant{
		ID:        node.Generate().Int64(),
		ProductID: node.Generate().Int64(),
		TextureID: node.Generate().Int64(),
		ColorID:   node.Generate().Int64(),
		SKU:       "sample-" + node.Generate().String(),
		Price:     decimal.NewFromInt(5),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := dbConn.Create(&variant).Error; err != nil {
		t.Fatalf("seed variant: %v", err)
	}

	svc := New(Params{
		DB:      dbConn,
		Log:     zap.NewNop(),
		GenID:   node,
		Repo:    repository.Provide(),
		Catalog: catalogrepository.Provide(),
	})

	ownerCtx := usercontext.WithProfile(context.Background(), snowflake.ID(node.Generate().Int64()), false)
	return dbConn, svc, node, snowflake.ID(variant.ID).String(), ownerCtx
}

func TestSampleRequestBatchAllOrNothing(t *testing.T) {
	dbConn, svc, node, variantID, ownerCtx := setupSampleRequests(t)

	missing := snowflake.ID(node.Generate().Int64()).String()
	if _, err := svc.CreateBatch(ownerCtx, domain.BatchRequest{Entries: []domain.BatchEntry{
		{VariantID: variantID},
		{VariantID: missing},
	}}); !errors.Is(err, domain.ErrVariantNotFound) {
		t.Fatalf("expected variant_not_found, got %v", err)
	}

	ownerID, _ := usercontext.ProfileIDFromContext(ownerCtx)
	var count int64
	if err := dbConn.Model(&domain.SampleRequest{}).Where("owner_id = ?", ownerID.Int64()).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected no rows after failed batch, got %d", count)
	}

	created, err := svc.CreateBatch(ownerCtx, domain.BatchRequest{Entries: []domain.BatchEntry{
		{VariantID: variantID},
		{VariantID: variantID},
	}})
	if err != nil {
		t.Fatalf("create valid batch: %v", err)
	}
	if len(created) != 2 {
		t.Fatalf("expected 2 requests, got %d", len(created))
	}

	own, err := svc.ListOwn(ownerCtx)
	if err != nil {
		t.Fatalf("list own: %v", err)
	}
	if len(own) != 2 {
		t.Fatalf("expected 2 own requests, got %d", len(own))
	}
}

func TestSampleRequestBatchValidation(t *testing.T) {
	_, svc, _, variantID, ownerCtx := setupSampleRequests(t)

	if _, err := svc.CreateBatch(ownerCtx, domain.BatchRequest{}); !errors.Is(err, domain.ErrEmptyBatch) {
		t.Fatalf("expected empty_batch, got %v", err)
	}

	entries := make([]domain.BatchEntry, domain.MaxBatchSize+1)
	for i := range entries {
		entries[i] = domain.BatchEntry{VariantID: variantID}
	}
	if _, err := svc.CreateBatch(ownerCtx, domain.BatchRequest{Entries: entries}); !errors.Is(err, domain.ErrBatchTooLarge) {
		t.Fatalf("expected batch_too_large, got %v", err)
	}

	if _, err := svc.CreateBatch(context.Background(), domain.BatchRequest{Entries: []domain.BatchEntry{{VariantID: variantID}}}); !errors.Is(err, domain.ErrUnauthenticated) {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}
