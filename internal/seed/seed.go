package seed

import (
	"context"
	"errors"
	"time"

	"github.com/bwmarrin/snowflake"
	catalogdomain "github.com/colorhaus/colorhaus/internal/catalog/domain"
	colordomain "github.com/colorhaus/colorhaus/internal/color/domain"
	profiledomain "github.com/colorhaus/colorhaus/internal/profile/domain"
	"github.com/colorhaus/colorhaus/internal/profile/password"
	reportdomain "github.com/colorhaus/colorhaus/internal/report/domain"
	"github.com/gosimple/slug"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultAdminEmail    = "admin@colorhaus.test"
	defaultAdminPassword = "colorhaus"
	defaultAdminDisplay  = "Colorhaus Admin"
)

// EnsureAdmin seeds the back-office admin profile when none exists.
func EnsureAdmin(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		_, err := ensureAdminTx(ctx, tx, node)
		return err
	})
}

// EnsureDemoData seeds the admin profile, a small catalog and the sample
// reporting records used in development environments.
func EnsureDemoData(db *gorm.DB) error {
	if db == nil {
		return errors.New("seed database handle is required")
	}

	node, err := snowflake.NewNode(1)
	if err != nil {
		return err
	}

	ctx := context.Background()
	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := ensureAdminTx(ctx, tx, node); err != nil {
			return err
		}
		if err := ensureCatalogTx(ctx, tx, node); err != nil {
			return err
		}
		return ensureReportingTx(ctx, tx, node)
	})
}

func ensureAdminTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) (*profiledomain.Profile, error) {
	var profile profiledomain.Profile
	err := tx.WithContext(ctx).Where("email = ?", defaultAdminEmail).First(&profile).Error
	if err == nil {
		return &profile, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := password.Hash(defaultAdminPassword)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	profile = profiledomain.Profile{
		ID:           node.Generate().Int64(),
		Email:        defaultAdminEmail,
		DisplayName:  defaultAdminDisplay,
		PasswordHash: hashed,
		Admin:        true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := tx.WithContext(ctx).Create(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func ensureCatalogTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&catalogdomain.Category{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()

	category := catalogdomain.Category{ID: node.Generate().Int64(), Name: "Interior walls", CreatedAt: now, UpdatedAt: now}
	finish := catalogdomain.Finish{ID: node.Generate().Int64(), Name: "Matte", CreatedAt: now, UpdatedAt: now}
	textures := []catalogdomain.Texture{
		{ID: node.Generate().Int64(), Name: "Smooth", CreatedAt: now, UpdatedAt: now},
		{ID: node.Generate().Int64(), Name: "Textured", CreatedAt: now, UpdatedAt: now},
	}
	colors := []colordomain.Color{
		{ID: node.Generate().Int64(), Name: "Blanc Perle", Hex: "#F4F1EA", CreatedAt: now, UpdatedAt: now},
		{ID: node.Generate().Int64(), Name: "Gris Orage", Hex: "#5B6670", CreatedAt: now, UpdatedAt: now},
		{ID: node.Generate().Int64(), Name: "Bleu Canard", Hex: "#046A77", CreatedAt: now, UpdatedAt: now},
		{ID: node.Generate().Int64(), Name: "Vert Sauge", Hex: "#9CAF88", CreatedAt: now, UpdatedAt: now},
	}

	if err := tx.WithContext(ctx).Create(&category).Error; err != nil {
		return err
	}
	if err := tx.WithContext(ctx).Create(&finish).Error; err != nil {
		return err
	}
	if err := tx.WithContext(ctx).Create(&textures).Error; err != nil {
		return err
	}
	if err := tx.WithContext(ctx).Create(&colors).Error; err != nil {
		return err
	}

	product := catalogdomain.Product{
		ID:         node.Generate().Int64(),
		Code:       "CH-1001",
		Name:       "Velours Mural",
		CategoryID: category.ID,
		FinishID:   finish.ID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := tx.WithContext(ctx).Create(&product).Error; err != nil {
		return err
	}

	variants := make([]catalogdomain.ProductVariant, 0, len(colors))
	for _, c := range colors {
		variants = append(variants, catalogdomain.ProductVariant{
			ID:        node.Generate().Int64(),
			ProductID: product.ID,
			TextureID: textures[0].ID,
			ColorID:   c.ID,
			SKU:       slug.Make(product.Code + " " + c.Name + " " + textures[0].Name),
			Price:     decimal.NewFromFloat(24.90),
			CreatedAt: now,
			UpdatedAt: now,
		})
	}
	return tx.WithContext(ctx).Create(&variants).Error
}

func ensureReportingTx(ctx context.Context, tx *gorm.DB, node *snowflake.Node) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&reportdomain.SalesRecord{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	now := time.Now().UTC()
	sales := []reportdomain.SalesRecord{
		{ID: node.Generate().Int64(), ProductName: "Blanc Perle", Category: "Interior walls", ColorName: "Blanc Perle", TextureName: "Smooth", Quantity: 48, TotalValue: decimal.NewFromInt(1200), Cost: decimal.NewFromInt(800), OccurredAt: now.AddDate(0, 0, -6)},
		{ID: node.Generate().Int64(), ProductName: "Gris Orage", Category: "Interior walls", ColorName: "Gris Orage", TextureName: "Smooth", Quantity: 30, TotalValue: decimal.NewFromInt(750), Cost: decimal.NewFromInt(500), OccurredAt: now.AddDate(0, 0, -5)},
		{ID: node.Generate().Int64(), ProductName: "Bleu Canard", Category: "Interior walls", ColorName: "Bleu Canard", TextureName: "Textured", Quantity: 25, TotalValue: decimal.NewFromInt(640), Cost: decimal.NewFromInt(400), OccurredAt: now.AddDate(0, 0, -4)},
		{ID: node.Generate().Int64(), ProductName: "Blanc Perle", Category: "Interior walls", ColorName: "Blanc Perle", TextureName: "Smooth", Quantity: 57, TotalValue: decimal.NewFromInt(1440), Cost: decimal.NewFromInt(960), OccurredAt: now.AddDate(0, 0, -3)},
		{ID: node.Generate().Int64(), ProductName: "Vert Sauge", Category: "Interior walls", ColorName: "Vert Sauge", TextureName: "Smooth", Quantity: 42, TotalValue: decimal.NewFromInt(1050), Cost: decimal.NewFromInt(700), OccurredAt: now.AddDate(0, 0, -2)},
	}
	if err := tx.WithContext(ctx).Create(&sales).Error; err != nil {
		return err
	}

	conversions := []reportdomain.ConversionRecord{
		{ID: node.Generate().Int64(), ProductName: "Blanc Perle", Views: 500, Purchases: 60, OccurredAt: now.AddDate(0, 0, -4)},
		{ID: node.Generate().Int64(), ProductName: "Gris Orage", Views: 300, Purchases: 40, OccurredAt: now.AddDate(0, 0, -3)},
	}
	if err := tx.WithContext(ctx).Create(&conversions).Error; err != nil {
		return err
	}

	inventory := []reportdomain.InventoryRecord{
		{ID: node.Generate().Int64(), ProductName: "Velours Mural", ColorName: "Blanc Perle", Stock: 120, UpdatedAt: now},
		{ID: node.Generate().Int64(), ProductName: "Velours Mural", ColorName: "Gris Orage", Stock: 64, UpdatedAt: now},
		{ID: node.Generate().Int64(), ProductName: "Velours Mural", ColorName: "Bleu Canard", Stock: 32, UpdatedAt: now},
	}
	return tx.WithContext(ctx).Create(&inventory).Error
}
