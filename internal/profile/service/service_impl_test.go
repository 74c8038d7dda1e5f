package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/colorhaus/colorhaus/internal/clock"
	"github.com/colorhaus/colorhaus/internal/config"
	"github.com/colorhaus/colorhaus/internal/profile/domain"
	"github.com/colorhaus/colorhaus/internal/profile/repository"
	"github.com/colorhaus/colorhaus/pkg/db"
	"go.uber.org/zap"
)

func setupProfiles(t *testing.T) (domain.Service, *clock.FakeClock) {
	t.Helper()

	dbConn, err := db.NewTest()
	if err != nil {
		t.Fatalf("new test db: %v", err)
	}
	if err := dbConn.AutoMigrate(&domain.Profile{}, &domain.Session{}); err != nil {
		t.Fatalf("auto migrate: %v", err)
	}

	node, err := snowflake.NewNode(6)
	if err != nil {
		t.Fatalf("new snowflake node: %v", err)
	}

	fake := clock.NewFakeClock(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	svc := New(Params{
		Cfg:      config.Config{SessionTTLHours: 72},
		DB:       dbConn,
		Log:      zap.NewNop(),
		GenID:    node,
		Clock:    fake,
		Repo:     repository.Provide(),
		Sessions: repository.ProvideSession(),
	})
	return svc, fake
}

func TestProfileRegisterValidation(t *testing.T) {
	svc, _ := setupProfiles(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{Email: "not-an-email", Password: "long-enough-pw"}); !errors.Is(err, domain.ErrInvalidEmail) {
		t.Fatalf("expected invalid_email, got %v", err)
	}
	if _, err := svc.Register(ctx, domain.RegisterRequest{Email: "short@colorhaus.test", Password: "short"}); !errors.Is(err, domain.ErrInvalidPassword) {
		t.Fatalf("expected invalid_password, got %v", err)
	}

	view, err := svc.Register(ctx, domain.RegisterRequest{Email: "Anna@Colorhaus.Test", Password: "paint-it-blue"})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if view.Email != "anna@colorhaus.test" {
		t.Fatalf("expected lowercased email, got %q", view.Email)
	}
	if view.DisplayName != "anna" {
		t.Fatalf("expected display name from email local part, got %q", view.DisplayName)
	}

	if _, err := svc.Register(ctx, domain.RegisterRequest{Email: "anna@colorhaus.test", Password: "paint-it-blue"}); !errors.Is(err, domain.ErrProfileExists) {
		t.Fatalf("expected profile_exists, got %v", err)
	}
}

func TestProfileLoginAndAuthenticate(t *testing.T) {
	svc, fake := setupProfiles(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{Email: "bruno@colorhaus.test", Password: "matte-finish-9"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	if _, err := svc.Login(ctx, domain.LoginRequest{Email: "bruno@colorhaus.test", Password: "wrong-password"}); !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid_credentials, got %v", err)
	}

	result, err := svc.Login(ctx, domain.LoginRequest{Email: "bruno@colorhaus.test", Password: "matte-finish-9"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if result.RawToken == "" {
		t.Fatal("expected a raw session token")
	}
	if !result.ExpiresAt.Equal(fake.Now().Add(72 * time.Hour)) {
		t.Fatalf("unexpected expiry %v", result.ExpiresAt)
	}

	auth, err := svc.Authenticate(ctx, result.RawToken)
	if err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if auth.Profile.Email != "bruno@colorhaus.test" {
		t.Fatalf("unexpected profile %q", auth.Profile.Email)
	}

	if _, err := svc.Authenticate(ctx, "bogus-token"); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected invalid_session, got %v", err)
	}
}

func TestProfileSessionExpiryAndLogout(t *testing.T) {
	svc, fake := setupProfiles(t)
	ctx := context.Background()

	if _, err := svc.Register(ctx, domain.RegisterRequest{Email: "carla@colorhaus.test", Password: "gloss-coat-77"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	expired, err := svc.Login(ctx, domain.LoginRequest{Email: "carla@colorhaus.test", Password: "gloss-coat-77"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	fake.Advance(73 * time.Hour)
	if _, err := svc.Authenticate(ctx, expired.RawToken); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected invalid_session after expiry, got %v", err)
	}

	active, err := svc.Login(ctx, domain.LoginRequest{Email: "carla@colorhaus.test", Password: "gloss-coat-77"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if _, err := svc.Authenticate(ctx, active.RawToken); err != nil {
		t.Fatalf("authenticate: %v", err)
	}
	if err := svc.Logout(ctx, active.RawToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Authenticate(ctx, active.RawToken); !errors.Is(err, domain.ErrInvalidSession) {
		t.Fatalf("expected invalid_session after logout, got %v", err)
	}
}
