package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/colorhaus/colorhaus/internal/catalog/domain"
	colordomain "github.com/colorhaus/colorhaus/internal/color/domain"
	"github.com/colorhaus/colorhaus/pkg/db"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Reference domain.ReferenceRepository
	Colors    colordomain.Repository
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      domain.Repository
	reference domain.ReferenceRepository
	colors    colordomain.Repository
	genID     *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("catalog.service"),
		repo:      p.Repo,
		reference: p.Reference,
		colors:    p.Colors,
		genID:     p.GenID,
	}
}

func (s *Service) Create(ctx context.Context, req domain.CreateRequest) (*domain.Response, error) {
	code := strings.TrimSpace(req.Code)
	if code == "" {
		return nil, domain.ErrInvalidCode
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, domain.ErrInvalidName
	}

	categoryID, err := parseID(req.CategoryID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	finishID, err := parseID(req.FinishID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	category, err := s.reference.FindCategory(ctx, s.db, categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, domain.ErrCategoryNotFound
	}
	finish, err := s.reference.FindFinish(ctx, s.db, finishID)
	if err != nil {
		return nil, err
	}
	if finish == nil {
		return nil, domain.ErrFinishNotFound
	}

	existing, err := s.repo.FindByCode(ctx, s.db, code)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrDuplicateCode
	}

	description := strings.TrimSpace(ptrToString(req.Description))
	var descriptionPtr *string
	if description != "" {
		descriptionPtr = &description
	}

	now := time.Now().UTC()
	p := &domain.Product{
		ID:          s.genID.Generate().Int64(),
		Code:        code,
		Name:        name,
		Description: descriptionPtr,
		CategoryID:  categoryID,
		FinishID:    finishID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if req.TechnicalData != nil {
		p.TechnicalData = datatypes.JSONMap(req.TechnicalData)
	}
	if err := s.repo.Create(ctx, s.db, p); err != nil {
		if db.IsDuplicateKeyErr(err) {
			return nil, domain.ErrDuplicateCode
		}
		return nil, err
	}

	resp := toResponse(p)
	return &resp, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Response, error) {
	productID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID)
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
	filter := domain.ListFilter{
		Search:          strings.TrimSpace(req.Search),
		IncludeArchived: req.IncludeArchived,
		SortBy:          strings.TrimSpace(req.SortBy),
		OrderBy:         strings.TrimSpace(req.OrderBy),
		Request:         req.Request,
	}

	var err error
	if filter.CategoryID, err = parseOptionalID(req.CategoryID); err != nil {
		return nil, domain.ErrInvalidID
	}
	if filter.FinishID, err = parseOptionalID(req.FinishID); err != nil {
		return nil, domain.ErrInvalidID
	}
	if filter.ColorID, err = parseOptionalID(req.ColorID); err != nil {
		return nil, domain.ErrInvalidID
	}

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

// Update touches descriptive fields only; code and references stay fixed.
func (s *Service) Update(ctx context.Context, req domain.UpdateRequest) (*domain.Response, error) {
	productID, err := parseID(req.ID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.ErrInvalidName
		}
		item.Name = name
	}
	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			item.Description = nil
		} else {
			item.Description = &description
		}
	}
	if req.TechnicalData != nil {
		item.TechnicalData = datatypes.JSONMap(req.TechnicalData)
	}

	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toResponse(item)
	return &resp, nil
}

func (s *Service) Archive(ctx context.Context, id string) (*domain.Response, error) {
	productID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindByID(ctx, s.db, productID)
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

func (s *Service) CreateVariant(ctx context.Context, req domain.CreateVariantRequest) (*domain.VariantResponse, error) {
	productID, err := parseID(req.ProductID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	textureID, err := parseID(req.TextureID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}
	colorID, err := parseID(req.ColorID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil || price.IsNegative() {
		return nil, domain.ErrInvalidPrice
	}

	product, err := s.repo.FindByID(ctx, s.db, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}
	texture, err := s.reference.FindTexture(ctx, s.db, textureID)
	if err != nil {
		return nil, err
	}
	if texture == nil {
		return nil, domain.ErrTextureNotFound
	}
	color, err := s.colors.FindByID(ctx, s.db, colorID)
	if err != nil {
		return nil, err
	}
	if color == nil {
		return nil, domain.ErrColorNotFound
	}

	now := time.Now().UTC()
	v := &domain.ProductVariant{
		ID:        s.genID.Generate().Int64(),
		ProductID: product.ID,
		TextureID: texture.ID,
		ColorID:   color.ID,
		SKU:       slug.Make(product.Code + " " + color.Name + " " + texture.Name),
		Price:     price.Round(2),
		ImageURL:  normalizePtr(req.ImageURL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.CreateVariant(ctx, s.db, v); err != nil {
		return nil, err
	}

	resp := toVariantResponse(v)
	return &resp, nil
}

func (s *Service) GetVariant(ctx context.Context, id string) (*domain.VariantResponse, error) {
	variantID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindVariantByID(ctx, s.db, variantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	resp := toVariantResponse(item)
	return &resp, nil
}

func (s *Service) ListVariants(ctx context.Context, productID string, includeArchived bool) ([]domain.VariantResponse, error) {
	id, err := parseID(productID)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	product, err := s.repo.FindByID(ctx, s.db, id)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.ErrNotFound
	}

	items, err := s.repo.ListVariants(ctx, s.db, id, includeArchived)
	if err != nil {
		return nil, err
	}

	resp := make([]domain.VariantResponse, 0, len(items))
	for i := range items {
		resp = append(resp, toVariantResponse(&items[i]))
	}
	return resp, nil
}

func (s *Service) ArchiveVariant(ctx context.Context, id string) (*domain.VariantResponse, error) {
	variantID, err := parseID(id)
	if err != nil {
		return nil, domain.ErrInvalidID
	}

	item, err := s.repo.FindVariantByID(ctx, s.db, variantID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}

	item.Archived = true
	item.UpdatedAt = time.Now().UTC()
	if err := s.repo.UpdateVariant(ctx, s.db, item); err != nil {
		return nil, err
	}

	resp := toVariantResponse(item)
	return &resp, nil
}

func (s *Service) References(ctx context.Context, includeArchived bool) (*domain.ReferenceResponse, error) {
	categories, err := s.reference.Categories(ctx, s.db, includeArchived)
	if err != nil {
		return nil, err
	}
	finishes, err := s.reference.Finishes(ctx, s.db, includeArchived)
	if err != nil {
		return nil, err
	}
	textures, err := s.reference.Textures(ctx, s.db, includeArchived)
	if err != nil {
		return nil, err
	}

	resp := &domain.ReferenceResponse{
		Categories: make([]domain.ReferenceItem, 0, len(categories)),
		Finishes:   make([]domain.ReferenceItem, 0, len(finishes)),
		Textures:   make([]domain.ReferenceItem, 0, len(textures)),
	}
	for _, item := range categories {
		resp.Categories = append(resp.Categories, domain.ReferenceItem{ID: snowflake.ID(item.ID).String(), Name: item.Name, Archived: item.Archived})
	}
	for _, item := range finishes {
		resp.Finishes = append(resp.Finishes, domain.ReferenceItem{ID: snowflake.ID(item.ID).String(), Name: item.Name, Archived: item.Archived})
	}
	for _, item := range textures {
		resp.Textures = append(resp.Textures, domain.ReferenceItem{ID: snowflake.ID(item.ID).String(), Name: item.Name, Archived: item.Archived})
	}
	return resp, nil
}

func toResponse(p *domain.Product) domain.Response {
	resp := domain.Response{
		ID:          snowflake.ID(p.ID).String(),
		Code:        p.Code,
		Name:        p.Name,
		Description: p.Description,
		CategoryID:  snowflake.ID(p.CategoryID).String(),
		FinishID:    snowflake.ID(p.FinishID).String(),
		Archived:    p.Archived,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if len(p.TechnicalData) > 0 {
		resp.TechnicalData = map[string]any(p.TechnicalData)
	}
	return resp
}

func toVariantResponse(v *domain.ProductVariant) domain.VariantResponse {
	return domain.VariantResponse{
		ID:        snowflake.ID(v.ID).String(),
		ProductID: snowflake.ID(v.ProductID).String(),
		TextureID: snowflake.ID(v.TextureID).String(),
		ColorID:   snowflake.ID(v.ColorID).String(),
		SKU:       v.SKU,
		Price:     v.Price.StringFixed(2),
		ImageURL:  v.ImageURL,
		Archived:  v.Archived,
		CreatedAt: v.CreatedAt,
		UpdatedAt: v.UpdatedAt,
	}
}

func parseID(value string) (int64, error) {
	id, err := snowflake.ParseString(strings.TrimSpace(value))
	if err != nil {
		return 0, err
	}
	return id.Int64(), nil
}

func parseOptionalID(value string) (int64, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, nil
	}
	return parseID(trimmed)
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

func ptrToString(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}
