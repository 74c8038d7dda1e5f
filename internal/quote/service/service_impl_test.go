package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	catalogrepository "github.com/colorhaus/colorhaus/internal/catalog/repository"
	"github.com/colorhaus/colorhaus/internal/providers/pdf"
	"github.com/colorhaus/colorhaus/internal/quote/domain"
	"github.com/colorhaus/colorhaus/internal/quote/repository"
	signaturedomain "github.com/colorhaus/colorhaus/internal/signature/domain"
	signatureprovider "github.com/colorhaus/colorhaus/internal/signature/provider"
	signaturerepository "github.com/colorhaus/colorhaus/internal/signature/repository"
	signatureservice "github.com/colorhaus/colorhaus/internal/signature/service"
	"github.com/colorhaus/colorhaus/internal/usercontext"
	"github.com/colorhaus/colorhaus/pkg/db"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type quoteFixture struct {
	db       *gorm.DB
	node     *snowflake.Node
	svc      domain.Service
	ownerCtx context.Context
	otherCtx context.Context
	adminCtx context.Context
	variantA string
	variantB string
}

func setupQuote(t *testing.T) *quoteFixture {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("new test db: %v", err)
	}
	if err := dbConn.AutoMigrate(
		&catalogdomain.Product{},
		&catalogdomain.ProductVariant{},
		&domain.Quote{},
		&domain.QuoteItem{},
		&signaturedomain.Setting{},
		&signaturedomain.QuoteSignature{},
	); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	node, err := snowflake.NewNode(3)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}

	now := time.Now().UTC()
	product := catalogdomain.Product{
		ID:         node.Generate().Int64(),
		Code:       "QT-" + node.Generate().String(),
		Name:       "Silk Finish",
		CategoryID: node.Generate().Int64(),
		FinishID:   node.Generate().Int64(),
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := dbConn.Create(&product).Error; err != nil {
		t.Fatalf("seed product: %v", err)
	}

	variantA := catalogdomain.ProductVariant{
		ID:        node.Generate().Int64(),
		ProductID: product.ID,
		TextureID: node.Generate().Int64(),
		ColorID:   node.Generate().Int64(),
		SKU:       "qt-a-" + node.Generate().String(),
		Price:     decimal.NewFromInt(10),
		CreatedAt: now,
		UpdatedAt: now,
	}
	variantB := catalogdomain.ProductVariant{
		ID:        node.Generate().Int64(),
		ProductID: product.ID,
		TextureID: node.Generate().Int64(),
		ColorID:   node.Generate().Int64(),
		SKU:       "qt-b-" + node.Generate().String(),
		Price:     decimal.NewFromInt(5),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := dbConn.Create(&variantA).Error; err != nil {
		t.Fatalf("seed variant a: %v", err)
	}
	if err := dbConn.Create(&variantB).Error; err != nil {
		t.Fatalf("seed variant b: %v", err)
	}

	signatures := signatureservice.New(signatureservice.Params{
		DB:        dbConn,
		Log:       zap.NewNop(),
		GenID:     node,
		Repo:      signaturerepository.Provide(),
		Processor: signatureprovider.NewLocalProcessor(),
	})

	svc := New(Params{
		DB:         dbConn,
		Log:        zap.NewNop(),
		GenID:      node,
		Repo:       repository.Provide(),
		Catalog:    catalogrepository.Provide(),
		Signatures: signatures,
		Renderer:   pdf.New(),
	})

	ownerID := snowflake.ID(node.Generate().Int64())
	otherID := snowflake.ID(node.Generate().Int64())
	adminID := snowflake.ID(node.Generate().Int64())

	return &quoteFixture{
		db:       dbConn,
		node:     node,
		svc:      svc,
		ownerCtx: usercontext.WithProfile(context.Background(), ownerID, false),
		otherCtx: usercontext.WithProfile(context.Background(), otherID, false),
		adminCtx: usercontext.WithProfile(context.Background(), adminID, true),
		variantA: variantA.SKU,
		variantB: variantB.SKU,
	}
}

func (f *quoteFixture) variantID(t *testing.T, sku string) string {
	t.Helper()
	var v catalogdomain.ProductVariant
	if err := f.db.Where("sku = ?", sku).First(&v).Error; err != nil {
		t.Fatalf("load variant %s: %v", sku, err)
	}
	return snowflake.ID(v.ID).String()
}

func (f *quoteFixture) newDraft(t *testing.T, ctx context.Context) *domain.Response {
	t.Helper()
	created, err := f.svc.Create(ctx, domain.CreateRequest{
		Customer: domain.CustomerInput{Name: "Claire Fontaine", Email: "claire@example.com"},
	})
	if err != nil {
		t.Fatalf("create quote: %v", err)
	}
	return created
}

func (f *quoteFixture) addItem(t *testing.T, ctx context.Context, quoteID, variantID string, qty int) *domain.Response {
	t.Helper()
	resp, err := f.svc.AddItem(ctx, domain.AddItemRequest{QuoteID: quoteID, VariantID: variantID, Quantity: qty})
	if err != nil {
		t.Fatalf("add item: %v", err)
	}
	return resp
}

func TestQuoteTotals(t *testing.T) {
	f := setupQuote(t)
	q := f.newDraft(t, f.ownerCtx)

	f.addItem(t, f.ownerCtx, q.ID, f.variantID(t, f.variantA), 2)
	resp := f.addItem(t, f.ownerCtx, q.ID, f.variantID(t, f.variantB), 1)
	if resp.Subtotal != "25.00" {
		t.Fatalf("expected subtotal 25.00, got %s", resp.Subtotal)
	}

	discount := "3"
	updated, err := f.svc.Update(f.ownerCtx, domain.UpdateRequest{ID: q.ID, Discount: &discount})
	if err != nil {
		t.Fatalf("set discount: %v", err)
	}
	if updated.Total != "22.00" {
		t.Fatalf("expected total 22.00, got %s", updated.Total)
	}
	if updated.Discount != "3.00" {
		t.Fatalf("expected discount 3.00, got %s", updated.Discount)
	}
}

func TestQuoteSubtotalOrderIndependent(t *testing.T) {
	f := setupQuote(t)

	first := f.newDraft(t, f.ownerCtx)
	f.addItem(t, f.ownerCtx, first.ID, f.variantID(t, f.variantA), 2)
	respA := f.addItem(t, f.ownerCtx, first.ID, f.variantID(t, f.variantB), 1)

	second := f.newDraft(t, f.ownerCtx)
	f.addItem(t, f.ownerCtx, second.ID, f.variantID(t, f.variantB), 1)
	respB := f.addItem(t, f.ownerCtx, second.ID, f.variantID(t, f.variantA), 2)

	if respA.Subtotal != respB.Subtotal {
		t.Fatalf("expected order-independent subtotal, got %s vs %s", respA.Subtotal, respB.Subtotal)
	}
}

func TestQuoteDiscountValidation(t *testing.T) {
	f := setupQuote(t)
	q := f.newDraft(t, f.ownerCtx)
	f.addItem(t, f.ownerCtx, q.ID, f.variantID(t, f.variantB), 1)

	tooBig := "10"
	if _, err := f.svc.Update(f.ownerCtx, domain.UpdateRequest{ID: q.ID, Discount: &tooBig}); !errors.Is(err, domain.ErrInvalidDiscount) {
		t.Fatalf("expected invalid_discount for oversized value, got %v", err)
	}

	negative := "-1"
	if _, err := f.svc.Update(f.ownerCtx, domain.UpdateRequest{ID: q.ID, Discount: &negative}); !errors.Is(err, domain.ErrInvalidDiscount) {
		t.Fatalf("expected invalid_discount for negative value, got %v", err)
	}
}

func TestQuoteDiscountClampedOnItemRemoval(t *testing.T) {
	f := setupQuote(t)
	q := f.newDraft(t, f.ownerCtx)
	withItems := f.addItem(t, f.ownerCtx, q.ID, f.variantID(t, f.variantA), 2)

	discount := "15"
	if _, err := f.svc.Update(f.ownerCtx, domain.UpdateRequest{ID: q.ID, Discount: &discount}); err != nil {
		t.Fatalf("set discount: %v", err)
	}

	resp, err := f.svc.RemoveItem(f.ownerCtx, q.ID, withItems.Items[0].ID)
	if err != nil {
		t.Fatalf("remove item: %v", err)
	}
	if resp.Subtotal != "0.00" {
		t.Fatalf("expected subtotal 0.00, got %s", resp.Subtotal)
	}
	if resp.Discount != "0.00" {
		t.Fatalf("expected clamped discount 0.00, got %s", resp.Discount)
	}
	if resp.Total != "0.00" {
		t.Fatalf("expected total 0.00, got %s", resp.Total)
	}
}

func TestQuoteLifecycleGuards(t *testing.T) {
	f := setupQuote(t)
	q := f.newDraft(t, f.ownerCtx)
	f.addItem(t, f.ownerCtx, q.ID, f.variantID(t, f.variantA), 1)

	if _, err := f.svc.Approve(f.ownerCtx, q.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected invalid_transition for draft approve, got %v", err)
	}
	if _, err := f.svc.Sign(f.ownerCtx, q.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected invalid_transition for draft sign, got %v", err)
	}

	sent, err := f.svc.Send(f.ownerCtx, q.ID)
	if err != nil {
		t.Fatalf("send: %v", err)
	}
	if sent.Status != domain.StatusSent {
		t.Fatalf("expected sent, got %s", sent.Status)
	}
	if _, err := f.svc.Send(f.ownerCtx, q.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected invalid_transition for double send, got %v", err)
	}

	if _, err := f.svc.Update(f.ownerCtx, domain.UpdateRequest{ID: q.ID, Customer: &domain.CustomerInput{Name: "Edit"}}); !errors.Is(err, domain.ErrQuoteNotEditable) {
		t.Fatalf("expected quote_not_editable after send, got %v", err)
	}

	approved, err := f.svc.Approve(f.ownerCtx, q.ID)
	if err != nil {
		t.Fatalf("approve: %v", err)
	}
	if approved.Status != domain.StatusApproved {
		t.Fatalf("expected approved, got %s", approved.Status)
	}

	signed, err := f.svc.Sign(f.ownerCtx, q.ID)
	if err != nil {
		t.Fatalf("sign: %v", err)
	}
	if signed.Status != domain.StatusSigned {
		t.Fatalf("expected signed, got %s", signed.Status)
	}
	if signed.SignatureRef == nil || *signed.SignatureRef == "" {
		t.Fatalf("expected signature reference on signed quote")
	}
	if signed.SignedAt == nil {
		t.Fatalf("expected signed_at on signed quote")
	}

	archived, err := f.svc.Archive(f.ownerCtx, q.ID)
	if err != nil {
		t.Fatalf("archive: %v", err)
	}
	if archived.Status != domain.StatusArchived {
		t.Fatalf("expected archived, got %s", archived.Status)
	}
	if _, err := f.svc.Send(f.ownerCtx, q.ID); !errors.Is(err, domain.ErrInvalidTransition) {
		t.Fatalf("expected invalid_transition from archived, got %v", err)
	}
}

func TestQuoteSignFromSent(t *testing.T) {
	f := setupQuote(t)
	q := f.newDraft(t, f.ownerCtx)
	f.addItem(t, f.ownerCtx, q.ID, f.variantID(t, f.variantB), 1)

	if _, err := f.svc.Send(f.ownerCtx, q.ID); err != nil {
		t.Fatalf("send: %v", err)
	}
	signed, err := f.svc.Sign(f.ownerCtx, q.ID)
	if err != nil {
		t.Fatalf("sign from sent: %v", err)
	}
	if signed.Status != domain.StatusSigned {
		t.Fatalf("expected signed, got %s", signed.Status)
	}
}

func TestQuoteOwnershipAndAdmin(t *testing.T) {
	f := setupQuote(t)
	q := f.newDraft(t, f.ownerCtx)

	if _, err := f.svc.Get(f.otherCtx, q.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden for other profile, got %v", err)
	}
	if _, err := f.svc.Get(f.adminCtx, q.ID); err != nil {
		t.Fatalf("expected admin access, got %v", err)
	}

	if err := f.svc.Delete(f.ownerCtx, q.ID); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected forbidden delete for owner, got %v", err)
	}
}

func TestQuoteDeleteCascades(t *testing.T) {
	f := setupQuote(t)
	q := f.newDraft(t, f.ownerCtx)
	f.addItem(t, f.ownerCtx, q.ID, f.variantID(t, f.variantA), 1)
	f.addItem(t, f.ownerCtx, q.ID, f.variantID(t, f.variantB), 2)

	if err := f.svc.Delete(f.adminCtx, q.ID); err != nil {
		t.Fatalf("admin delete: %v", err)
	}

	quoteID, err := snowflake.ParseString(q.ID)
	if err != nil {
		t.Fatalf("parse quote id: %v", err)
	}
	var itemCount int64
	if err := f.db.Model(&domain.QuoteItem{}).Where("quote_id = ?", quoteID.Int64()).Count(&itemCount).Error; err != nil {
		t.Fatalf("count items: %v", err)
	}
	if itemCount != 0 {
		t.Fatalf("expected 0 items after delete, got %d", itemCount)
	}
	if _, err := f.svc.Get(f.adminCtx, q.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected not_found after delete, got %v", err)
	}
}

func TestQuoteRenderWithMissingVariant(t *testing.T) {
	f := setupQuote(t)
	q := f.newDraft(t, f.ownerCtx)
	resp := f.addItem(t, f.ownerCtx, q.ID, f.variantID(t, f.variantA), 1)

	variantID, err := snowflake.ParseString(resp.Items[0].VariantID)
	if err != nil {
		t.Fatalf("parse variant id: %v", err)
	}
	if err := f.db.Exec(`DELETE FROM product_variants WHERE id = ?`, variantID.Int64()).Error; err != nil {
		t.Fatalf("drop variant: %v", err)
	}

	rendered, err := f.svc.Render(f.ownerCtx, q.ID)
	if err != nil {
		t.Fatalf("render with missing variant: %v", err)
	}
	if len(rendered) == 0 {
		t.Fatalf("expected non-empty document")
	}
}
