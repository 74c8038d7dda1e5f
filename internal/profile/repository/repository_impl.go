package repository

import (
	"context"
	"time"

	"github.com/colorhaus/colorhaus/internal/profile/domain"
	"gorm.io/gorm"
)

type repo struct{}

func Provide() domain.Repository {
	return &repo{}
}

func (r *repo) Create(ctx context.Context, db *gorm.DB, profile *domain.Profile) error {
	return db.WithContext(ctx).Exec(`
		INSERT INTO profiles (id, email, display_name, password_hash, admin, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, profile.ID, profile.Email, profile.DisplayName, profile.PasswordHash, profile.Admin,
		profile.CreatedAt, profile.UpdatedAt).Error
}

func (r *repo) FindByID(ctx context.Context, db *gorm.DB, id int64) (*domain.Profile, error) {
	var p domain.Profile
	err := db.WithContext(ctx).Raw(`
		SELECT id, email, display_name, password_hash, admin, created_at, updated_at
		FROM profiles
		WHERE id = ?
	`, id).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

func (r *repo) FindByEmail(ctx context.Context, db *gorm.DB, email string) (*domain.Profile, error) {
	var p domain.Profile
	err := db.WithContext(ctx).Raw(`
		SELECT id, email, display_name, password_hash, admin, created_at, updated_at
		FROM profiles
		WHERE email = ?
	`, email).Scan(&p).Error
	if err != nil {
		return nil, err
	}
	if p.ID == 0 {
		return nil, nil
	}
	return &p, nil
}

type sessionRepo struct{}

func ProvideSession() domain.SessionRepository {
	return &sessionRepo{}
}

func (r *sessionRepo) Create(ctx context.Context, db *gorm.DB, session *domain.Session) error {
	return db.WithContext(ctx).Exec(`
		INSERT INTO sessions (id, profile_id, session_token_hash, user_agent, ip_address, expires_at, revoked_at, created_at, last_seen_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, session.ID, session.ProfileID, session.SessionTokenHash, session.UserAgent, session.IPAddress,
		session.ExpiresAt, session.RevokedAt, session.CreatedAt, session.LastSeenAt).Error
}

func (r *sessionRepo) FindByTokenHash(ctx context.Context, db *gorm.DB, tokenHash string) (*domain.Session, error) {
	var s domain.Session
	err := db.WithContext(ctx).Raw(`
		SELECT id, profile_id, session_token_hash, user_agent, ip_address, expires_at, revoked_at, created_at, last_seen_at
		FROM sessions
		WHERE session_token_hash = ?
	`, tokenHash).Scan(&s).Error
	if err != nil {
		return nil, err
	}
	if s.ID == 0 {
		return nil, nil
	}
	return &s, nil
}

func (r *sessionRepo) Revoke(ctx context.Context, db *gorm.DB, id int64, at time.Time) error {
	return db.WithContext(ctx).Exec(`
		UPDATE sessions SET revoked_at = ? WHERE id = ? AND revoked_at IS NULL
	`, at, id).Error
}

func (r *sessionRepo) TouchLastSeen(ctx context.Context, db *gorm.DB, id int64, at time.Time) error {
	return db.WithContext(ctx).Exec(`
		UPDATE sessions SET last_seen_at = ? WHERE id = ?
	`, at, id).Error
}
