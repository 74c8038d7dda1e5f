package service

import (
	"context"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"net/mail"
	"strings"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/colorhaus/colorhaus/internal/clock"
	"github.com/colorhaus/colorhaus/internal/config"
	"github.com/colorhaus/colorhaus/internal/profile/domain"
	"github.com/colorhaus/colorhaus/internal/profile/password"
	"go.uber.org/fx"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	sessionTokenBytes = 32

	minPasswordLength = 8
)

type Params struct {
	fx.In

	Cfg      config.Config
	DB       *gorm.DB
	Log      *zap.Logger
	GenID    *snowflake.Node
	Clock    clock.Clock
	Repo     domain.Repository
	Sessions domain.SessionRepository
}

type Service struct {
	db         *gorm.DB
	log        *zap.Logger
	repo       domain.Repository
	sessions   domain.SessionRepository
	genID      *snowflake.Node
	clock      clock.Clock
	sessionTTL time.Duration
}

func New(p Params) domain.Service {
	ttl := time.Duration(p.Cfg.SessionTTLHours) * time.Hour
	if ttl <= 0 {
		ttl = 72 * time.Hour
	}
	return &Service{
		db:         p.DB,
		log:        p.Log.Named("profile.service"),
		repo:       p.Repo,
		sessions:   p.Sessions,
		genID:      p.GenID,
		clock:      p.Clock,
		sessionTTL: ttl,
	}
}

func (s *Service) Register(ctx context.Context, req domain.RegisterRequest) (*domain.ProfileView, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidEmail
	}
	if len(strings.TrimSpace(req.Password)) < minPasswordLength {
		return nil, domain.ErrInvalidPassword
	}

	existing, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrProfileExists
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		return nil, err
	}

	displayName := strings.TrimSpace(req.DisplayName)
	if displayName == "" {
		displayName = defaultDisplayName(email)
	}

	now := s.clock.Now()
	profile := &domain.Profile{
		ID:           s.genID.Generate().Int64(),
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: hashed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Create(ctx, s.db, profile); err != nil {
		return nil, err
	}

	s.log.Info("profile registered", zap.String("email", email))
	view := toView(profile)
	return &view, nil
}

func (s *Service) Login(ctx context.Context, req domain.LoginRequest) (*domain.LoginResult, error) {
	email, err := normalizeEmail(req.Email)
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}
	if strings.TrimSpace(req.Password) == "" {
		return nil, domain.ErrInvalidCredentials
	}

	profile, err := s.repo.FindByEmail(ctx, s.db, email)
	if err != nil {
		return nil, err
	}
	if profile == nil || !password.Verify(req.Password, profile.PasswordHash) {
		return nil, domain.ErrInvalidCredentials
	}

	rawToken, err := newSessionToken()
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	session := &domain.Session{
		ID:               s.genID.Generate().Int64(),
		ProfileID:        profile.ID,
		SessionTokenHash: hashToken(rawToken),
		UserAgent:        strings.TrimSpace(req.UserAgent),
		IPAddress:        strings.TrimSpace(req.IPAddress),
		ExpiresAt:        now.Add(s.sessionTTL),
		CreatedAt:        now,
		LastSeenAt:       now,
	}
	if err := s.sessions.Create(ctx, s.db, session); err != nil {
		return nil, err
	}

	return &domain.LoginResult{
		Profile:   toView(profile),
		RawToken:  rawToken,
		ExpiresAt: session.ExpiresAt,
	}, nil
}

func (s *Service) Logout(ctx context.Context, rawToken string) error {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return domain.ErrInvalidSession
	}

	session, err := s.sessions.FindByTokenHash(ctx, s.db, hashToken(token))
	if err != nil {
		return err
	}
	if session == nil {
		return domain.ErrInvalidSession
	}

	return s.sessions.Revoke(ctx, s.db, session.ID, s.clock.Now())
}

// Authenticate resolves a raw cookie token into the session and its
// profile, rejecting expired or revoked sessions.
func (s *Service) Authenticate(ctx context.Context, rawToken string) (*domain.AuthContext, error) {
	token := strings.TrimSpace(rawToken)
	if token == "" {
		return nil, domain.ErrInvalidSession
	}

	session, err := s.sessions.FindByTokenHash(ctx, s.db, hashToken(token))
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, domain.ErrInvalidSession
	}

	now := s.clock.Now()
	if session.RevokedAt != nil || !session.ExpiresAt.After(now) {
		return nil, domain.ErrInvalidSession
	}

	profile, err := s.repo.FindByID(ctx, s.db, session.ProfileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrInvalidSession
	}

	if err := s.sessions.TouchLastSeen(ctx, s.db, session.ID, now); err != nil {
		s.log.Warn("session last_seen update failed", zap.Error(err))
	}

	return &domain.AuthContext{Session: session, Profile: profile}, nil
}

func (s *Service) CurrentProfile(ctx context.Context, profileID int64) (*domain.ProfileView, error) {
	profile, err := s.repo.FindByID(ctx, s.db, profileID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, domain.ErrProfileNotFound
	}
	view := toView(profile)
	return &view, nil
}

func toView(p *domain.Profile) domain.ProfileView {
	return domain.ProfileView{
		ID:          snowflake.ID(p.ID).String(),
		Email:       p.Email,
		DisplayName: p.DisplayName,
		Admin:       p.Admin,
		CreatedAt:   p.CreatedAt,
	}
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.ToLower(strings.TrimSpace(email))
	if trimmed == "" {
		return "", domain.ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return "", domain.ErrInvalidEmail
	}
	return trimmed, nil
}

func defaultDisplayName(email string) string {
	local, _, found := strings.Cut(email, "@")
	if !found || local == "" {
		return email
	}
	return local
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}

func hashToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
