package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	colordomain "github.com/colorhaus/colorhaus/internal/color/domain"
	"github.com/colorhaus/colorhaus/internal/config"
	profiledomain "github.com/colorhaus/colorhaus/internal/profile/domain"
	"github.com/colorhaus/colorhaus/internal/profile/session"
	quotedomain "github.com/colorhaus/colorhaus/internal/quote/domain"
	"github.com/colorhaus/colorhaus/internal/usercontext"
	"github.com/gin-gonic/gin"
)

type fakeProfileService struct {
	authCalls int
	profile   *profiledomain.Profile
	authErr   error
}

func (f *fakeProfileService) Register(ctx context.Context, req profiledomain.RegisterRequest) (*profiledomain.ProfileView, error) {
	_ = ctx
	_ = req
	return nil, nil
}

func (f *fakeProfileService) Login(ctx context.Context, req profiledomain.LoginRequest) (*profiledomain.LoginResult, error) {
	_ = ctx
	_ = req
	return nil, nil
}

func (f *fakeProfileService) Logout(ctx context.Context, rawToken string) error {
	_ = ctx
	_ = rawToken
	return nil
}

func (f *fakeProfileService) Authenticate(ctx context.Context, rawToken string) (*profiledomain.AuthContext, error) {
	f.authCalls++
	_ = ctx
	_ = rawToken
	if f.authErr != nil {
		return nil, f.authErr
	}
	return &profiledomain.AuthContext{Profile: f.profile}, nil
}

func (f *fakeProfileService) CurrentProfile(ctx context.Context, profileID int64) (*profiledomain.ProfileView, error) {
	_ = ctx
	_ = profileID
	return nil, nil
}

func newTestServer(profileSvc profiledomain.Service) *Server {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(ErrorHandlingMiddleware())
	return &Server{
		engine:     engine,
		cfg:        config.Config{},
		sessions:   session.NewManager(config.Config{}),
		profileSvc: profileSvc,
	}
}

func TestErrorMapping(t *testing.T) {
	s := newTestServer(&fakeProfileService{})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", colordomain.ErrInvalidHex, http.StatusBadRequest},
		{"unauthorized", profiledomain.ErrInvalidSession, http.StatusUnauthorized},
		{"forbidden", quotedomain.ErrForbidden, http.StatusForbidden},
		{"not_found", quotedomain.ErrNotFound, http.StatusNotFound},
		{"conflict", quotedomain.ErrInvalidTransition, http.StatusConflict},
	}
	for _, tc := range cases {
		route := "/fail/" + tc.name
		failErr := tc.err
		s.engine.GET(route, func(c *gin.Context) {
			AbortWithError(c, failErr)
		})

		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, route, nil)
		s.engine.ServeHTTP(rec, req)

		if rec.Code != tc.status {
			t.Fatalf("%s: expected status %d, got %d", tc.name, tc.status, rec.Code)
		}

		var body errorResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("%s: decode body: %v", tc.name, err)
		}
		if body.Error.Type == "" {
			t.Fatalf("%s: expected an error type", tc.name)
		}
	}
}

func TestAuthRequiredRejectsMissingCookie(t *testing.T) {
	fake := &fakeProfileService{}
	s := newTestServer(fake)
	s.engine.GET("/private", s.AuthRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	s.engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if fake.authCalls != 0 {
		t.Fatalf("expected no authenticate call without cookie, got %d", fake.authCalls)
	}
}

func TestAuthRequiredResolvesProfile(t *testing.T) {
	fake := &fakeProfileService{
		profile: &profiledomain.Profile{
			ID:        4242,
			Email:     "owner@colorhaus.test",
			Admin:     true,
			CreatedAt: time.Now().UTC(),
		},
	}
	s := newTestServer(fake)

	var sawAdmin bool
	var sawID int64
	s.engine.GET("/private", s.AuthRequired(), func(c *gin.Context) {
		id, _ := usercontext.ProfileIDFromContext(c.Request.Context())
		sawID = id.Int64()
		sawAdmin = usercontext.IsAdmin(c.Request.Context())
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/private", nil)
	req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: "raw-token"})
	s.engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if fake.authCalls != 1 {
		t.Fatalf("expected one authenticate call, got %d", fake.authCalls)
	}
	if sawID != 4242 {
		t.Fatalf("expected profile id 4242 in context, got %d", sawID)
	}
	if !sawAdmin {
		t.Fatal("expected admin flag in context")
	}
}

func TestAdminRequiredBlocksNonAdmin(t *testing.T) {
	fake := &fakeProfileService{
		profile: &profiledomain.Profile{ID: 7, Email: "member@colorhaus.test"},
	}
	s := newTestServer(fake)
	s.engine.GET("/admin-only", s.AuthRequired(), s.AdminRequired(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: session.DefaultCookieName, Value: "raw-token"})
	s.engine.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}
