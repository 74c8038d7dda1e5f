package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	"github.com/colorhaus/colorhaus/internal/dosage/domain"
	quotedomain "github.com/colorhaus/colorhaus/internal/quote/domain"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var hundred = decimal.NewFromInt(100)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Quotes  quotedomain.Repository
	Catalog catalogdomain.Repository
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	quotes  quotedomain.Repository
	catalog catalogdomain.Repository
	genID   *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("dosage.service"),
		repo:    p.Repo,
		quotes:  p.Quotes,
		catalog: p.Catalog,
		genID:   p.GenID,
	}
}

// Create validates that base and pigment percentages sum to exactly 100
// before persisting. Formulas never change after creation.
func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	quoteID, err := parseID(req.QuoteID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	variantID, err := parseID(req.VariantID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	quote, err := s.quotes.FindByID(ctx, s.db, quoteID)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrQuoteNotFound
	}
	variant, err := s.catalog.FindVariantByID(ctx, s.db, variantID)
	if err != nil {
		return nil, err
	}
	if variant == nil {
		return nil, domain.ErrVariantNotFound
	}

	base, err := decimal.NewFromString(strings.TrimSpace(req.BasePercent))
	if err != nil || base.IsNegative() {
		return nil, domain.ErrInvalidPercent
	}

	if len(req.Pigments) > domain.MaxPigments {
		return nil, domain.ErrTooManyPigments
	}

	total := base
	pigments := make([]domain.Pigment, 0, len(req.Pigments))
	for _, p := range req.Pigments {
		name := strings.TrimSpace(p.Name)
		if name == "" {
			return nil, domain.ErrInvalidPigmentName
		}
		percent, err := decimal.NewFromString(strings.TrimSpace(p.Percent))
		if err != nil || !percent.IsPositive() {
			return nil, domain.ErrInvalidPercent
		}
		pigments = append(pigments, domain.Pigment{Name: name, Percent: percent})
		total = total.Add(percent)
	}

	if !total.Equal(hundred) {
		return nil, domain.ErrInvalidDosageTotal
	}

	formula := &domain.DosageFormula{
		ID:          s.genID.Generate().Int64(),
		QuoteID:     quoteID,
		VariantID:   variantID,
		BasePercent: base,
		Pigments:    datatypes.NewJSONSlice(pigments),
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, s.db, formula); err != nil {
		return nil, err
	}

	resp := toResponse(formula)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	formulaID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	formula, err := s.repo.FindByID(ctx, s.db, formulaID)
	if err != nil {
		return nil, err
	}
	if formula == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(formula)
	return &resp, nil
}

func (s *Service) ListByQuote(ctx context.Context, quoteID string) ([]domain.Response, error) {
	id, err := parseID(quoteID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	quote, err := s.quotes.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		return nil, domain.ErrQuoteNotFound
	}

	items, err := s.repo.ListByQuote(ctx, s.db, id)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}
	return resp, nil
}

func toResponse(f *domain.DosageFormula) domain.Response {
	resp := domain.Response{
		ID:          snowflake.ID(f.ID).String(),
		QuoteID:     snowflake.ID(f.QuoteID).String(),
		VariantID:   snowflake.ID(f.VariantID).String(),
		BasePercent: f.BasePercent.StringFixed(2),
		Pigments:    make([]domain.PigmentResponse, 0, len(f.Pigments)),
		CreatedAt:   f.CreatedAt,
	}
	for _, p := range f.Pigments {
		resp.Pigments = append(resp.Pigments, domain.PigmentResponse{
			Name:    p.Name,
			Percent: p.Percent.StringFixed(2),
		})
	}
	return resp
}

func parseID(value string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}
