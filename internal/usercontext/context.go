package usercontext

import (
	"context"
	"strings"

	"github.com/bwmarrin/snowflake"
)

// ProfileKey is the request context key for the authenticated profile ID.
type ProfileKey struct{}

// AdminKey is the request context key for the admin flag.
type AdminKey struct{}

// WithProfile stores the authenticated profile in the context.
func WithProfile(ctx context.Context, profileID snowflake.ID, admin bool) context.Context {
	ctx = context.WithValue(ctx, ProfileKey{}, profileID)
	return context.WithValue(ctx, AdminKey{}, admin)
}

// ProfileIDFromContext returns the authenticated profile ID, if set.
func ProfileIDFromContext(ctx context.Context) (snowflake.ID, bool) {
	if ctx == nil {
		return 0, false
	}

	value := ctx.Value(ProfileKey{})
	switch typed := value.(type) {
	case int64:
		return snowflake.ID(typed), true
	case snowflake.ID:
		return typed, true
	case string:
		parsed, err := snowflake.ParseString(strings.TrimSpace(typed))
		if err == nil {
			return parsed, true
		}
	}
	return 0, false
}

// IsAdmin reports whether the authenticated profile carries the admin flag.
func IsAdmin(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	admin, _ := ctx.Value(AdminKey{}).(bool)
	return admin
}
