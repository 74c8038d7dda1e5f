package server

import (
	"context"
	"net/http"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/colorhaus/colorhaus/internal/cache"
	"github.com/colorhaus/colorhaus/internal/catalog"
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	"github.com/colorhaus/colorhaus/internal/clock"
	"github.com/colorhaus/colorhaus/internal/color"
	colordomain "github.com/colorhaus/colorhaus/internal/color/domain"
	"github.com/colorhaus/colorhaus/internal/config"
	"github.com/colorhaus/colorhaus/internal/dosage"
	dosagedomain "github.com/colorhaus/colorhaus/internal/dosage/domain"
	"github.com/colorhaus/colorhaus/internal/observability"
	obsmiddleware "github.com/colorhaus/colorhaus/internal/observability/logger"
	obsmetrics "github.com/colorhaus/colorhaus/internal/observability/metrics"
	obstracing "github.com/colorhaus/colorhaus/internal/observability/tracing"
	"github.com/colorhaus/colorhaus/internal/profile"
	profiledomain "github.com/colorhaus/colorhaus/internal/profile/domain"
	"github.com/colorhaus/colorhaus/internal/profile/session"
	"github.com/colorhaus/colorhaus/internal/providers/pdf"
	"github.com/colorhaus/colorhaus/internal/quote"
	quotedomain "github.com/colorhaus/colorhaus/internal/quote/domain"
	"github.com/colorhaus/colorhaus/internal/report"
	reportdomain "github.com/colorhaus/colorhaus/internal/report/domain"
	"github.com/colorhaus/colorhaus/internal/samplerequest"
	samplerequestdomain "github.com/colorhaus/colorhaus/internal/samplerequest/domain"
	"github.com/colorhaus/colorhaus/internal/signature"
	signaturedomain "github.com/colorhaus/colorhaus/internal/signature/domain"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("http.server",
	config.Module,
	clock.Module,
	cache.Module,
	fx.Provide(registerGin),
	profile.Module,
	color.Module,
	catalog.Module,
	pdf.Module,
	signature.Module,
	quote.Module,
	dosage.Module,
	report.Module,
	samplerequest.Module,
	fx.Invoke(NewServer),
	fx.Invoke(run),
)

func NewEngine(obsCfg observability.Config) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(obsmiddleware.GinMiddleware(obsmiddleware.MiddlewareConfig{
		Debug:           obsCfg.Debug(),
		ErrorClassifier: classifyErrorForLog,
	}))
	r.Use(obstracing.GinMiddleware())
	r.Use(ErrorHandlingMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return r
}

func registerGin(obsCfg observability.Config) *gin.Engine {
	return NewEngine(obsCfg)
}

func run(lc fx.Lifecycle, cfg config.Config, r *gin.Engine) {
	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					panic(err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}

type Server struct {
	engine           *gin.Engine
	cfg              config.Config
	db               *gorm.DB
	sessions         *session.Manager
	genID            *snowflake.Node
	profileSvc       profiledomain.Service
	colorSvc         colordomain.Service
	catalogSvc       catalogdomain.Service
	quoteSvc         quotedomain.Service
	dosageSvc        dosagedomain.Service
	reportSvc        reportdomain.Service
	signatureSvc     signaturedomain.Service
	sampleRequestSvc samplerequestdomain.Service
	obsMetrics       *obsmetrics.Metrics
}

type ServerParams struct {
	fx.In

	Gin              *gin.Engine
	Cfg              config.Config
	DB               *gorm.DB
	Sessions         *session.Manager
	GenID            *snowflake.Node
	ProfileSvc       profiledomain.Service
	ColorSvc         colordomain.Service
	CatalogSvc       catalogdomain.Service
	QuoteSvc         quotedomain.Service
	DosageSvc        dosagedomain.Service
	ReportSvc        reportdomain.Service
	SignatureSvc     signaturedomain.Service
	SampleRequestSvc samplerequestdomain.Service
	ObsMetrics       *obsmetrics.Metrics `optional:"true"`
}

func NewServer(p ServerParams) *Server {
	svc := &Server{
		engine:           p.Gin,
		cfg:              p.Cfg,
		db:               p.DB,
		sessions:         p.Sessions,
		genID:            p.GenID,
		profileSvc:       p.ProfileSvc,
		colorSvc:         p.ColorSvc,
		catalogSvc:       p.CatalogSvc,
		quoteSvc:         p.QuoteSvc,
		dosageSvc:        p.DosageSvc,
		reportSvc:        p.ReportSvc,
		signatureSvc:     p.SignatureSvc,
		sampleRequestSvc: p.SampleRequestSvc,
		obsMetrics:       p.ObsMetrics,
	}

	svc.registerAuthRoutes()
	svc.registerAPIRoutes()
	svc.registerAdminRoutes()

	return svc
}

func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerAuthRoutes() {
	auth := s.engine.Group("/auth")

	auth.POST("/register", s.Register)
	auth.POST("/login", s.Login)
	auth.POST("/logout", s.Logout)
	auth.GET("/me", s.AuthRequired(), s.Me)
}

func (s *Server) registerAPIRoutes() {
	api := s.engine.Group("/api")

	// -------- References --------
	api.GET("/references", s.ListReferences)

	// -------- Colors --------
	api.GET("/colors", s.ListColors)
	api.GET("/colors/:id", s.GetColorByID)

	// -------- Products --------
	api.GET("/products", s.ListProducts)
	api.GET("/products/:id", s.GetProductByID)
	api.GET("/products/:id/variants", s.ListProductVariants)
	api.GET("/variants/:id", s.GetVariantByID)

	// -------- Quotes --------
	api.POST("/quotes", s.AuthRequired(), s.CreateQuote)
	api.GET("/quotes", s.AuthRequired(), s.ListQuotes)
	api.GET("/quotes/:id", s.AuthRequired(), s.GetQuoteByID)
	api.PATCH("/quotes/:id", s.AuthRequired(), s.UpdateQuote)
	api.POST("/quotes/:id/items", s.AuthRequired(), s.AddQuoteItem)
	api.DELETE("/quotes/:id/items/:itemId", s.AuthRequired(), s.RemoveQuoteItem)
	api.POST("/quotes/:id/send", s.AuthRequired(), s.SendQuote)
	api.POST("/quotes/:id/approve", s.AuthRequired(), s.ApproveQuote)
	api.POST("/quotes/:id/sign", s.AuthRequired(), s.SignQuote)
	api.POST("/quotes/:id/archive", s.AuthRequired(), s.ArchiveQuote)
	api.GET("/quotes/:id/document", s.AuthRequired(), s.RenderQuoteDocument)
	api.GET("/quotes/:id/signatures", s.AuthRequired(), s.ListQuoteSignatures)

	// -------- Dosage formulas --------
	api.POST("/quotes/:id/dosages", s.AuthRequired(), s.CreateDosageFormula)
	api.GET("/quotes/:id/dosages", s.AuthRequired(), s.ListQuoteDosageFormulas)
	api.GET("/dosages/:id", s.AuthRequired(), s.GetDosageFormulaByID)

	// -------- Sample requests --------
	api.POST("/sample-requests", s.AuthRequired(), s.CreateSampleRequests)
	api.GET("/sample-requests", s.AuthRequired(), s.ListSampleRequests)
}

func (s *Server) registerAdminRoutes() {
	admin := s.engine.Group("/admin", s.AuthRequired(), s.AdminRequired())

	admin.POST("/colors", s.CreateColor)
	admin.PATCH("/colors/:id", s.UpdateColor)
	admin.POST("/colors/:id/archive", s.ArchiveColor)

	admin.POST("/products", s.CreateProduct)
	admin.PATCH("/products/:id", s.UpdateProduct)
	admin.POST("/products/:id/archive", s.ArchiveProduct)
	admin.POST("/products/:id/variants", s.CreateProductVariant)
	admin.POST("/variants/:id/archive", s.ArchiveProductVariant)

	admin.DELETE("/quotes/:id", s.DeleteQuote)
	admin.GET("/quotes/:id/render", s.RenderQuoteDocument)

	admin.GET("/reports", s.GenerateReport)
	admin.GET("/reports/inventory", s.ReportInventory)

	admin.GET("/signature-settings", s.GetSignatureSettings)
	admin.PUT("/signature-settings", s.UpdateSignatureSettings)
}
