package domain

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Category struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Archived  bool      `json:"archived" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Category) TableName() string { return "categories" }

type Finish struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Archived  bool      `json:"archived" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Finish) TableName() string { return "finishes" }

type Texture struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Archived  bool      `json:"archived" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Texture) TableName() string { return "textures" }

type Product struct {
	ID            int64             `json:"id" gorm:"primaryKey"`
	Code          string            `json:"code" gorm:"type:text;not null;uniqueIndex:ux_products_code"`
	Name          string            `json:"name" gorm:"type:text;not null"`
	Description   *string           `json:"description,omitempty" gorm:"type:text"`
	CategoryID    int64             `json:"category_id" gorm:"not null;index"`
	FinishID      int64             `json:"finish_id" gorm:"not null;index"`
	TechnicalData datatypes.JSONMap `json:"technical_data,omitempty" gorm:"type:jsonb"`
	Archived      bool              `json:"archived" gorm:"not null;default:false"`
	CreatedAt     time.Time         `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt     time.Time         `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Product) TableName() string { return "products" }

type ProductVariant struct {
	ID        int64           `json:"id" gorm:"primaryKey"`
	ProductID int64           `json:"product_id" gorm:"not null;index"`
	TextureID int64           `json:"texture_id" gorm:"not null;index"`
	ColorID   int64           `json:"color_id" gorm:"not null;index"`
	SKU       string          `json:"sku" gorm:"column:sku;type:text;not null;uniqueIndex:ux_product_variants_sku"`
	Price     decimal.Decimal `json:"price" gorm:"type:numeric(12,2);not null"`
	ImageURL  *string         `json:"image_url,omitempty" gorm:"type:text"`
	Archived  bool            `json:"archived" gorm:"not null;default:false"`
	CreatedAt time.Time       `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time       `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (ProductVariant) TableName() string { return "product_variants" }
