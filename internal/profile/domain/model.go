package domain

import "time"

// Profile is an account able to own quotes and sample requests.
type Profile struct {
	ID           int64     `json:"id" gorm:"primaryKey"`
	Email        string    `json:"email" gorm:"uniqueIndex:ux_profiles_email"`
	DisplayName  string    `json:"display_name"`
	PasswordHash string    `json:"-"`
	Admin        bool      `json:"admin" gorm:"default:false"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}

// Session stores only the SHA-256 hash of the opaque token handed to
// the client. The raw token never touches the database.
type Session struct {
	ID               int64      `json:"id" gorm:"primaryKey"`
	ProfileID        int64      `json:"profile_id" gorm:"index"`
	SessionTokenHash string     `json:"-" gorm:"uniqueIndex:ux_sessions_token_hash"`
	UserAgent        string     `json:"user_agent"`
	IPAddress        string     `json:"ip_address"`
	ExpiresAt        time.Time  `json:"expires_at"`
	RevokedAt        *time.Time `json:"revoked_at,omitempty"`
	CreatedAt        time.Time  `json:"created_at"`
	LastSeenAt       time.Time  `json:"last_seen_at"`
}

func (Session) TableName() string {
	return "sessions"
}
