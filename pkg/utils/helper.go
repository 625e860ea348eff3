package utils

import (
	"strconv"
	"strings"
)

// ParseOptionalInt returns nil for empty or non-numeric input
func ParseOptionalInt(value string) *int {
	value = strings.TrimSpace(value)
	if value == "" {
		return nil
	}

	result, err := strconv.Atoi(value)
	if err != nil {
		return nil
	}

	return &result
}
