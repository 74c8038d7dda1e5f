package option

import (
	"strings"

	"gorm.io/gorm"
)

// Option mutates a gorm statement before execution.
type Option interface {
	Apply(stmt *gorm.DB) *gorm.DB
}

type sortBy struct {
	clause string
}

func (o sortBy) Apply(stmt *gorm.DB) *gorm.DB {
	if o.clause == "" {
		return stmt
	}
	return stmt.Order(o.clause)
}

// WithSortBy orders results by a pre-validated clause.
func WithSortBy(clause string) Option {
	return sortBy{clause: clause}
}

// WithQuerySortBy builds an order clause from query params, restricted to
// the allowed column set. Unknown columns fall back to created_at.
func WithQuerySortBy(column, direction string, allowed map[string]bool) string {
	column = strings.TrimSpace(strings.ToLower(column))
	if column == "" || !allowed[column] {
		column = "created_at"
	}

	direction = strings.TrimSpace(strings.ToUpper(direction))
	if direction != "DESC" {
		direction = "ASC"
	}

	return column + " " + direction
}
