package domain

import "time"

type Color struct {
	ID        int64     `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"type:text;not null"`
	Hex       string    `json:"hex" gorm:"type:text;not null"`
	RAL       *string   `json:"ral,omitempty" gorm:"column:ral;type:text"`
	Pantone   *string   `json:"pantone,omitempty" gorm:"type:text"`
	Archived  bool      `json:"archived" gorm:"not null;default:false"`
	CreatedAt time.Time `json:"created_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
	UpdatedAt time.Time `json:"updated_at" gorm:"not null;default:CURRENT_TIMESTAMP"`
}

func (Color) TableName() string { return "colors" }
