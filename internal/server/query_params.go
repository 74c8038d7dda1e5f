package server

import (
	"strconv"
	"strings"
)

func parseBoolParam(value string) bool {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return false
	}
	parsed, err := strconv.ParseBool(trimmed)
	if err != nil {
		return false
	}
	return parsed
}
