package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	"github.com/colorhaus/colorhaus/internal/observability/metrics"
	"github.com/colorhaus/colorhaus/internal/providers/pdf"
	"github.com/colorhaus/colorhaus/internal/quote/domain"
	signaturedomain "github.com/colorhaus/colorhaus/internal/signature/domain"
	"github.com/colorhaus/colorhaus/internal/usercontext"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB         *gorm.DB
	Log        *zap.Logger
	GenID      *snowflake.Node
	Repo       domain.Repository
	Catalog    catalogdomain.Repository
	Signatures signaturedomain.Service
	Renderer   pdf.Provider
	Metrics    *metrics.Metrics `optional:"true"`
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	repo       domain.Repository
	catalog    catalogdomain.Repository
	signatures signaturedomain.Service
	renderer   pdf.Provider
	metrics    *metrics.Metrics
	genID      *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("quote.service"),
		repo:       p.Repo,
		catalog:    p.Catalog,
		signatures: p.Signatures,
		renderer:   p.Renderer,
		metrics:    p.Metrics,
		genID:      p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	ownerID, ok := usercontext.ProfileIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	name := strings.TrimSpace(req.Customer.Name)
	if name == "" {
		return nil, domain.ErrInvalidCustomer
	}

	now := time.Now().UTC()
	q := &domain.Quote{
		ID:                 s.genID.Generate().Int64(),
		OwnerID:            ownerID.Int64(),
		Status:             domain.StatusDraft,
		CustomerName:       name,
		CustomerEmail:      strings.TrimSpace(req.Customer.Email),
		CustomerPhone:      strings.TrimSpace(req.Customer.Phone),
		CustomerAddress:    strings.TrimSpace(req.Customer.Address),
		CustomerPostalCode: strings.TrimSpace(req.Customer.PostalCode),
		Subtotal:           decimal.Zero,
		Discount:           decimal.Zero,
		Total:              decimal.Zero,
		CreatedAt:          now,
		UpdatedAt:          now,
	}
	if err := s.repo.Create(ctx, s.db, q); err != nil {
		return nil, err
	}

	s.metrics.RecordQuoteCreated(ctx)
	return s.respond(ctx, s.db, q)
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	q, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.respond(ctx, s.db, q)
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	actorID, ok := usercontext.ProfileIDFromContext(ctx)
	if !ok || actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	status := strings.TrimSpace(req.Status)
	if status != "" && !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidStatus
	}

	filter := domain.ListFilter{Status: status}
	if !usercontext.IsAdmin(ctx) {
		filter.OwnerID = actorID.Int64()
	}

	page := req.Normalize()
	items, total, err := s.repo.List(ctx, s.db, filter, page.Offset(), page.PageSize)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		r, err := s.respond(ctx, s.db, &items[i])
		if err != nil {
			return nil, err
		}
		resp = append(resp, *r)
	}
	return &domain.ListResponse{Items: resp, Page: page.Info(total)}, nil
}

func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	q, err := s.load(ctx, req.ID)
	if err != nil {
		return nil, err
	}
	if q.Status != domain.StatusDraft {
		return nil, domain.ErrQuoteNotEditable
	}

	if req.Customer != nil {
		name := strings.TrimSpace(req.Customer.Name)
		if name == "" {
			return nil, domain.ErrInvalidCustomer
		}
		q.CustomerName = name
		q.CustomerEmail = strings.TrimSpace(req.Customer.Email)
		q.CustomerPhone = strings.TrimSpace(req.Customer.Phone)
		q.CustomerAddress = strings.TrimSpace(req.Customer.Address)
		q.CustomerPostalCode = strings.TrimSpace(req.Customer.PostalCode)
	}

	var discount *decimal.Decimal
	if req.Discount != nil {
		parsed, err := decimal.NewFromString(strings.TrimSpace(*req.Discount))
		if err != nil {
			return nil, domain.ErrInvalidDiscount
		}
		rounded := parsed.Round(2)
		discount = &rounded
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if discount != nil {
			q.Discount = *discount
		}
		if err := s.recompute(ctx, tx, q, false); err != nil {
			return err
		}
		q.UpdatedAt = time.Now().UTC()
		return s.repo.Update(ctx, tx, q)
	})
	if err != nil {
		return nil, err
	}

	return s.respond(ctx, s.db, q)
}

func (s *Service) AddItem(ctx context.Context, req domain.AddItemRequest) (*domain.Response, error) {
	q, err := s.load(ctx, req.QuoteID)
	if err != nil {
		return nil, err
	}
	if q.Status != domain.StatusDraft {
		return nil, domain.ErrQuoteNotEditable
	}
	if req.Quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	variantID, err := parseID(req.VariantID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	variant, err := s.catalog.FindVariantByID(ctx, s.db, variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil || variant.Archived {
		return nil, domain.ErrVariantNotFound
	}

	item := &domain.QuoteItem{
		ID:          s.genID.Generate().Int64(),
		QuoteID:     q.ID,
		VariantID:   variant.ID,
		Quantity:    req.Quantity,
		PriceAtTime: variant.Price,
		CreatedAt:   time.Now().UTC(),
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.CreateItem(ctx, tx, item); err != nil {
			return err
		}
		if err := s.recompute(ctx, tx, q, true); err != nil {
			return err
		}
		q.UpdatedAt = time.Now().UTC()
		return s.repo.Update(ctx, tx, q)
	})
	if err != nil {
		return nil, err
	}

	return s.respond(ctx, s.db, q)
}

func (s *Service) RemoveItem(ctx context.Context, quoteID, itemID string) (*domain.Response, error) {
	q, err := s.load(ctx, quoteID)
	if err != nil {
		return nil, err
	}
	if q.Status != domain.StatusDraft {
		return nil, domain.ErrQuoteNotEditable
	}

	id, err := parseID(itemID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	item, err := s.repo.FindItemByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if item == nil || item.QuoteID != q.ID {
		return nil, domain.ErrItemNotFound
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteItem(ctx, tx, item.ID); err != nil {
			return err
		}
		if err := s.recompute(ctx, tx, q, true); err != nil {
			return err
		}
		q.UpdatedAt = time.Now().UTC()
		return s.repo.Update(ctx, tx, q)
	})
	if err != nil {
		return nil, err
	}

	return s.respond(ctx, s.db, q)
}

func (s *Service) Send(ctx context.Context, id string) (*domain.Response, error) {
	return s.transition(ctx, id, domain.StatusSent)
}

func (s *Service) Approve(ctx context.Context, id string) (*domain.Response, error) {
	return s.transition(ctx, id, domain.StatusApproved)
}

func (s *Service) Archive(ctx context.Context, id string) (*domain.Response, error) {
	return s.transition(ctx, id, domain.StatusArchived)
}

func (s *Service) Sign(ctx context.Context, id string) (*domain.Response, error) {
	q, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(q.Status, domain.StatusSigned) {
		return nil, domain.ErrInvalidTransition
	}

	document, err := s.render(ctx, q)
	if err != nil {
		return nil, err
	}

	sig, err := s.signatures.Sign(ctx, q.ID, document)
	if err != nil {
		return nil, err
	}

	from := q.Status
	q.Status = domain.StatusSigned
	q.SignatureRef = &sig.Reference
	signedAt := sig.SignedAt
	q.SignedAt = &signedAt
	q.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, q); err != nil {
		return nil, err
	}

	s.metrics.RecordQuoteTransition(ctx, from, domain.StatusSigned)
	return s.respond(ctx, s.db, q)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if !usercontext.IsAdmin(ctx) {
		return domain.ErrForbidden
	}

	quoteID, err := parseID(id)
	if err != nil {
		return domain.ErrInvalidID
	}
	q, err := s.repo.FindByID(ctx, s.db, quoteID)
	if err != nil {
		return err
	}
	if q == nil {
		return domain.ErrNotFound
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.repo.DeleteItemsByQuote(ctx, tx, q.ID); err != nil {
			return err
		}
		return s.repo.Delete(ctx, tx, q.ID)
	})
}

func (s *Service) Render(ctx context.Context, id string) ([]byte, error) {
	q, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.render(ctx, q)
}

func (s *Service) transition(ctx context.Context, id, to string) (*domain.Response, error) {
	q, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if !domain.CanTransition(q.Status, to) {
		return nil, domain.ErrInvalidTransition
	}

	from := q.Status
	q.Status = to
	q.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, q); err != nil {
		return nil, err
	}

	s.metrics.RecordQuoteTransition(ctx, from, to)
	return s.respond(ctx, s.db, q)
}

// load resolves the quote and checks the actor may act on it.
func (s *Service) load(ctx context.Context, id string) (*domain.Quote, error) {
	actorID, ok := usercontext.ProfileIDFromContext(ctx)
	if !ok || actorID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	quoteID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	q, err := s.repo.FindByID(ctx, s.db, quoteID)
	if err != nil {
		return nil, err
	}
	if q == nil {
		return nil, domain.ErrNotFound
	}
	if q.OwnerID != actorID.Int64() && !usercontext.IsAdmin(ctx) {
		return nil, domain.ErrForbidden
	}
	return q, nil
}

// recompute refreshes subtotal and total from the current item set. With
// clampDiscount, a discount larger than the new subtotal is reduced to it;
// otherwise it is rejected.
func (s *Service) recompute(ctx context.Context, tx *gorm.DB, q *domain.Quote, clampDiscount bool) error {
	items, err := s.repo.ListItems(ctx, tx, q.ID)
	if err != nil {
		return err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}
	q.Subtotal = subtotal.Round(2)

	if q.Discount.IsNegative() {
		return domain.ErrInvalidDiscount
	}
	if q.Discount.GreaterThan(q.Subtotal) {
		if !clampDiscount {
			return domain.ErrInvalidDiscount
		}
		q.Discount = q.Subtotal
	}

	q.Total = q.Subtotal.Sub(q.Discount).Round(2)
	return nil
}

func (s *Service) render(ctx context.Context, q *domain.Quote) ([]byte, error) {
	items, err := s.repo.ListItems(ctx, s.db, q.ID)
	if err != nil {
		return nil, err
	}

	doc := pdf.QuoteDocument{
		Number:   "Q-" + snowflake.ID(q.ID).String(),
		IssuedAt: q.CreatedAt,
		Customer: pdf.CustomerBlock{
			Name:       q.CustomerName,
			Email:      q.CustomerEmail,
			Phone:      q.CustomerPhone,
			Address:    q.CustomerAddress,
			PostalCode: q.CustomerPostalCode,
		},
		Subtotal:   q.Subtotal,
		Discount:   q.Discount,
		Total:      q.Total,
		SignedRef:  q.SignatureRef,
		SignedDate: q.SignedAt,
	}

	for _, item := range items {
		line := pdf.LineItem{
			Quantity:  item.Quantity,
			UnitPrice: item.PriceAtTime,
			LineTotal: item.LineTotal(),
		}
		variant, err := s.catalog.FindVariantByID(ctx, s.db, item.VariantID)
		if err != nil {
			return nil, err
		}
		if variant == nil {
			line.Missing = true
		} else {
			line.SKU = variant.SKU
			product, err := s.catalog.FindByID(ctx, s.db, variant.ProductID)
			if err != nil {
				return nil, err
			}
			if product == nil {
				line.Missing = true
			} else {
				line.ProductName = product.Name
			}
		}
		doc.Items = append(doc.Items, line)
	}

	rendered, err := s.renderer.RenderQuote(ctx, doc)
	if err != nil {
		return nil, err
	}

	s.metrics.RecordDocumentRendered(ctx, "quote")
	return rendered, nil
}

func (s *Service) respond(ctx context.Context, db *gorm.DB, q *domain.Quote) (*domain.Response, error) {
	items, err := s.repo.ListItems(ctx, db, q.ID)
	if err != nil {
		return nil, err
	}

	resp := &domain.Response{
		ID:      snowflake.ID(q.ID).String(),
		OwnerID: snowflake.ID(q.OwnerID).String(),
		Status:  q.Status,
		Customer: domain.CustomerInput{
			Name:       q.CustomerName,
			Email:      q.CustomerEmail,
			Phone:      q.CustomerPhone,
			Address:    q.CustomerAddress,
			PostalCode: q.CustomerPostalCode,
		},
		Items:        make([]domain.ItemResponse, 0, len(items)),
		Subtotal:     q.Subtotal.StringFixed(2),
		Discount:     q.Discount.StringFixed(2),
		Total:        q.Total.StringFixed(2),
		SignatureRef: q.SignatureRef,
		SignedAt:     q.SignedAt,
		CreatedAt:    q.CreatedAt,
		UpdatedAt:    q.UpdatedAt,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, domain.ItemResponse{
			ID:          snowflake.ID(item.ID).String(),
			VariantID:   snowflake.ID(item.VariantID).String(),
			Quantity:    item.Quantity,
			PriceAtTime: item.PriceAtTime.StringFixed(2),
			LineTotal:   item.LineTotal().StringFixed(2),
			CreatedAt:   item.CreatedAt,
		})
	}
	return resp, nil
}

func parseID(value string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}
