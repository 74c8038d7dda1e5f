package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	"github.com/colorhaus/colorhaus/internal/samplerequest/domain"
	"github.com/colorhaus/colorhaus/internal/usercontext"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB      *gorm.DB
	Log     *zap.Logger
	GenID   *snowflake.Node
	Repo    domain.Repository
	Catalog catalogdomain.Repository
}

type Service struct {
	db      *gorm.DB
	log     *zap.Logger
	repo    domain.Repository
	catalog catalogdomain.Repository
	genID   *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:      p.DB,
		log:     p.Log.Named("samplerequest.service"),
		repo:    p.Repo,
		catalog: p.Catalog,
		genID:   p.GenID,
	}
}

// CreateBatch validates every entry before writing any of them. One bad
// entry rejects the whole batch.
func (s *Service) CreateBatch(ctx context.Context, req domain.BatchRequest) ([]domain.Response, error) {
	ownerID, ok := usercontext.ProfileIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	if len(req.Entries) == 0 {
		return nil, domain.ErrEmptyBatch
	}
	if len(req.Entries) > domain.MaxBatchSize {
		return nil, domain.ErrBatchTooLarge
	}

	now := time.Now().UTC()
	requests := make([]*domain.SampleRequest, 0, len(req.Entries))
	for _, entry := range req.Entries {
		variantID, err := snowflake.ParseString(strings.TrimSpace(entry.VariantID))
		if err != nil {
			return nil, domain.ErrInvalidID
		}
		variant, err := s.catalog.FindVariantByID(ctx, s.db, variantID.Int64())
		if err != nil {
			return nil, err
		}
		if variant == nil || variant.Archived {
			return nil, domain.ErrVariantNotFound
		}

		var note *string
		if entry.Note != nil {
			trimmed := strings.TrimSpace(*entry.Note)
			if trimmed != "" {
				note = &trimmed
			}
		}
		requests = append(requests, &domain.SampleRequest{
			ID:        s.genID.Generate().Int64(),
			OwnerID:   ownerID.Int64(),
			VariantID: variant.ID,
			Note:      note,
			Status:    domain.StatusPending,
			CreatedAt: now,
		})
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, request := range requests {
			if err := s.repo.Create(ctx, tx, request); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(requests))
	for _, request := range requests {
		resp = append(resp, toResponse(request))
	}
	return resp, nil
}

func (s *Service) ListOwn(ctx context.Context) ([]domain.Response, error) {
	ownerID, ok := usercontext.ProfileIDFromContext(ctx)
	if !ok || ownerID == 0 {
		return nil, domain.ErrUnauthenticated
	}

	items, err := s.repo.ListByOwner(ctx, s.db, ownerID.Int64())
	if err != nil {
		return nil, err
	}

	resp := make([]domain.Response, 0, len(items))
	for i := range items {
		resp = append(resp, toResponse(&items[i]))
	}
	return resp, nil
}

func toResponse(r *domain.SampleRequest) domain.Response {
	return domain.Response{
		ID:        snowflake.ID(r.ID).String(),
		VariantID: snowflake.ID(r.VariantID).String(),
		Note:      r.Note,
		Status:    r.Status,
		CreatedAt: r.CreatedAt,
	}
}
