package domain

import "time"

const (
	ProviderDocuseal = "docuseal"
	ProviderSignwell = "signwell"
)

// ValidProvider reports whether the value names a supported e-sign provider.
func ValidProvider(provider string) bool {
	switch provider {
	case ProviderDocuseal, ProviderSignwell:
		return true
	}
	return false
}

// Setting is the per-installation e-sign provider configuration.
type Setting struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Provider  string    `json:"provider" gorm:"type:text;not null"`
	APIKey    string    `json:"api_key" gorm:"column:api_key;type:text;not null"`
	Endpoint  string    `json:"endpoint" gorm:"type:text;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Setting) TableName() string { return "signature_settings" }

// QuoteSignature records a completed signing, immutable once written.
type QuoteSignature struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	QuoteID   int64     `json:"quote_id" gorm:"not null;index"`
	Provider  string    `json:"provider" gorm:"type:text;not null"`
	Reference string    `json:"reference" gorm:"type:text;not null"`
	Digest    string    `json:"digest" gorm:"type:text;not null"`
	SignedAt  time.Time `json:"signed_at" gorm:"not null"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (QuoteSignature) TableName() string { return "quote_signatures" }
