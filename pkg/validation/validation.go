package validation

import (
	"strconv"
	"strings"
)

// IsNotEmpty checks if string is not empty after trimming
func IsNotEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// TrimAndValidate trims string and validates it's not empty
func TrimAndValidate(s string) (string, bool) {
	trimmed := strings.TrimSpace(s)
	return trimmed, trimmed != ""
}

// ParsePositiveID parses a base-10 identifier in 1..MaxInt64, the range a BIGINT column holds.
func ParsePositiveID(s string) (uint, bool) {
	id, err := strconv.ParseUint(strings.TrimSpace(s), 10, 63)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

// NormalizeCity produces the case-insensitive lookup form of a city name.
func NormalizeCity(city string) string {
	return strings.ToLower(strings.TrimSpace(city))
}
