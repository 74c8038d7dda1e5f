package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/colorhaus/colorhaus/internal/color/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

var hexPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

type Params struct {
	fx.In

	DB    *gorm.DB
	Log   *zap.Logger
	GenID *snowflake.Node
	Repo  domain.Repository
}

type Service struct {
	db    *gorm.DB
	log   *zap.Logger
	repo  domain.Repository
	genID *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:    p.DB,
		log:   p.Log.Named("color.service"),
		repo:  p.Repo,
		genID: p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	hex := strings.TrimSpace(req.Hex)
	if !hexPattern.MatchString(hex) {
		return nil, domain.ErrInvalidHex
	}

	now := time.Now().UTC()
	c := &domain.Color{
		ID:        s.genID.Generate().Int64(),
		Name:      name,
		Hex:       strings.ToUpper(hex),
		RAL:       normalizePtr(req.RAL),
		Pantone:   normalizePtr(req.Pantone),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Create(ctx, s.db, c); err != nil {
		return nil, err
	}

	resp := toResponse(c)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	colorID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, colorID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) List(ctx context.Context, req domain.ListRequest) (*domain.ListResponse, error) {
	filter := req
	filter.Search = strings.TrimSpace(req.Search)

	items, total, err := s.repo.List(ctx, s.db, filter)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}
	return &domain.ListResponse{Items: resp, Page: filter.Info(total)}, nil
}

// Update rejects edits to colors already referenced by a variant.
func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	colorID, err := snowflake.ParseString(strings.TrimSpace(req.ID))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, colorID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	refs, err := s.repo.CountVariantRefs(ctx, s.db, item.ID)
	if err != nil {
		return nil, err
	}
	if refs > 0 {
		return nil, domain.ErrColorReferenced
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Hex != nil {
		hex := strings.TrimSpace(*req.Hex)
		if !hexPattern.MatchString(hex) {
			return nil, domain.ErrInvalidHex
		}
		item.Hex = strings.ToUpper(hex)
	}
	if req.RAL != nil {
		item.RAL = normalizePtr(req.RAL)
	}
	if req.Pantone != nil {
		item.Pantone = normalizePtr(req.Pantone)
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Archive(ctx context.Context, id string) (*domain.Response, error) {
	colorID, err := snowflake.ParseString(strings.TrimSpace(id))
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, colorID.Int64())
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.Archived = true
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func toResponse(c *domain.Color) domain.Response {
	return domain.Response{
		ID:        snowflake.ID(c.ID).String(),
		Name:      c.Name,
		Hex:       c.Hex,
		RAL:       c.RAL,
		Pantone:   c.Pantone,
		Archived:  c.Archived,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

func normalizePtr(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
