package domain

import (
	"context"
	"time"

	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, db *gorm.DB, profile *Profile) error
	FindByID(ctx context.Context, db *gorm.DB, id int64) (*Profile, error)
	FindByEmail(ctx context.Context, db *gorm.DB, email string) (*Profile, error)
}

type SessionRepository interface {
	Create(ctx context.Context, db *gorm.DB, session *Session) error
	FindByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*Session, error)
	Revoke(ctx context.Context, db *gorm.DB, id int64, at time.Time) error
	TouchLastSeen(ctx context.Context, db *gorm.DB, id int64, at time.Time) error
}
