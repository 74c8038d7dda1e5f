package service

import (
	"context"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/colorhaus/colorhaus/internal/signature/domain"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type Params struct {
	fx.In

	DB        *gorm.DB
	Log       *zap.Logger
	GenID     *snowflake.Node
	Repo      domain.Repository
	Processor domain.Processor
}

type Service struct {
	db        *gorm.DB
	log       *zap.Logger
	repo      domain.Repository
	processor domain.Processor
	genID     *snowflake.Node
}

func New(p Params) domain.Service {
	return &Service{
		db:        p.DB,
		log:       p.Log.Named("signature.service"),
		repo:      p.Repo,
		processor: p.Processor,
		genID:     p.GenID,
	}
}

func (s *Service) Settings(ctx context.Context) (*domain.SettingsResponse, error) {
	setting, err := s.repo.LatestSetting(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, domain.ErrNotConfigured
	}
	return &domain.SettingsResponse{
		Provider:  setting.Provider,
		Endpoint:  setting.Endpoint,
		UpdatedAt: setting.UpdatedAt,
	}, nil
}

func (s *Service) UpdateSettings(ctx context.Context, req domain.UpdateSettingsRequest) (*domain.SettingsResponse, error) {
	provider := strings.ToLower(strings.TrimSpace(req.Provider))
	if !domain.ValidProvider(provider) {
		return nil, domain.ErrInvalidProvider
	}
	apiKey := strings.TrimSpace(req.APIKey)
	if apiKey == "" {
		return nil, domain.ErrInvalidAPIKey
	}
	endpoint := strings.TrimSpace(req.Endpoint)
	if endpoint == "" {
		return nil, domain.ErrInvalidEndpoint
	}

	now := time.Now().UTC()
	setting, err := s.repo.LatestSetting(ctx, s.db)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		setting = &domain.Setting{
			ID:        s.genID.Generate().Int64(),
			CreatedAt: now,
		}
	}
	setting.Provider = provider
	setting.APIKey = apiKey
	setting.Endpoint = endpoint
	setting.UpdatedAt = now

	if err := s.repo.SaveSetting(ctx, s.db, setting); err != nil {
		return nil, err
	}

	s.log.Info("signature settings updated", zap.String("provider", provider))
	return &domain.SettingsResponse{
		Provider:  setting.Provider,
		Endpoint:  setting.Endpoint,
		UpdatedAt: setting.UpdatedAt,
	}, nil
}

func (s *Service) Sign(ctx context.Context, quoteID int64, document []byte) (*domain.SignatureResponse, error) {
	provider := "local"
	if setting, err := s.repo.LatestSetting(ctx, s.db); err != nil {
		return nil, err
	} else if setting != nil {
		provider = setting.Provider
	}

	receipt, err := s.processor.Submit(ctx, domain.SubmitRequest{
		QuoteID:  quoteID,
		Provider: provider,
		Document: document,
	})
	if err != nil {
		return nil, err
	}

	record := &domain.QuoteSignature{
		ID:        s.genID.Generate().Int64(),
		QuoteID:   quoteID,
		Provider:  provider,
		Reference: receipt.Reference,
		Digest:    receipt.Digest,
		SignedAt:  receipt.SignedAt,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.CreateSignature(ctx, s.db, record); err != nil {
		return nil, err
	}

	s.log.Info("quote signed",
		zap.Int64("quote_id", quoteID),
		zap.String("provider", provider),
		zap.String("reference", receipt.Reference),
	)
	return toResponse(record), nil
}

func (s *Service) ListByQuote(ctx context.Context, quoteID int64) ([]domain.SignatureResponse, error) {
	items, err := s.repo.ListByQuote(ctx, s.db, quoteID)
	if err != nil {
		return nil, err
	}
	resp := make([]domain.SignatureResponse, 0, len(items))
	for i := range items {
		resp = append(resp, *toResponse(&items[i]))
	}
	return resp, nil
}

func toResponse(sig *domain.QuoteSignature) *domain.SignatureResponse {
	return &domain.SignatureResponse{
		ID:        snowflake.ID(sig.ID).String(),
		QuoteID:   snowflake.ID(sig.QuoteID).String(),
		Provider:  sig.Provider,
		Reference: sig.Reference,
		Digest:    sig.Digest,
		SignedAt:  sig.SignedAt,
	}
}
