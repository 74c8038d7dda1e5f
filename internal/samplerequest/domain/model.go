package domain

import "time"

const (
	StatusPending = "pending"
	StatusShipped = "shipped"
)

type SampleRequest struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	OwnerID   int64     `json:"owner_id" gorm:"not null;index"`
	VariantID int64     `json:"variant_id" gorm:"not null;index"`
	Note      *string   `json:"note,omitempty" gorm:"type:text"`
	Status    string    `json:"status" gorm:"type:text;not null;default:pending"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (SampleRequest) TableName() string { return "sample_requests" }
