package migration

import (
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	colordomain "github.com/colorhaus/colorhaus/internal/color/domain"
	"github.com/colorhaus/colorhaus/internal/config"
	dosagedomain "github.com/colorhaus/colorhaus/internal/dosage/domain"
	profiledomain "github.com/colorhaus/colorhaus/internal/profile/domain"
	quotedomain "github.com/colorhaus/colorhaus/internal/quote/domain"
	reportdomain "github.com/colorhaus/colorhaus/internal/report/domain"
	samplerequestdomain "github.com/colorhaus/colorhaus/internal/samplerequest/domain"
	"github.com/colorhaus/colorhaus/internal/seed"
	signaturedomain "github.com/colorhaus/colorhaus/internal/signature/domain"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

var Module = fx.Module("migrations",
	fx.Invoke(func(conn *gorm.DB, cfg config.Config) error {
		if cfg.DBType == "postgres" {
			sqlDB, err := conn.DB()
			if err != nil {
				return err
			}
			if err := RunMigrations(sqlDB); err != nil {
				return err
			}
		} else {
			// Non-postgres targets (local sqlite) skip versioned migrations.
			if err := conn.AutoMigrate(
				&profiledomain.Profile{},
				&profiledomain.Session{},
				&catalogdomain.Category{},
				&catalogdomain.Finish{},
				&catalogdomain.Texture{},
				&colordomain.Color{},
				&catalogdomain.Product{},
				&catalogdomain.ProductVariant{},
				&quotedomain.Quote{},
				&quotedomain.QuoteItem{},
				&dosagedomain.DosageFormula{},
				&signaturedomain.Setting{},
				&signaturedomain.QuoteSignature{},
				&reportdomain.SalesRecord{},
				&reportdomain.ConversionRecord{},
				&reportdomain.InventoryRecord{},
				&samplerequestdomain.SampleRequest{},
			); err != nil {
				return err
			}
		}

		if cfg.SeedDemoData {
			return seed.EnsureDemoData(conn)
		}
		return seed.EnsureAdmin(conn)
	}),
)
