package transaction

import (
	"strconv"
	"strings"
)

// ValidateAmount reports whether raw is a canonical positive base-10 integer
// token and returns its value.
//
// Canonical means the formatted value reproduces the input exactly, which
// rejects leading zeros, a leading plus sign, and any embedded whitespace.
// Negative and fractional tokens are rejected outright.
func ValidateAmount(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}

	if strings.ContainsAny(raw, "-.") {
		return 0, false
	}

	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	if value <= 0 {
		return 0, false
	}

	if strconv.FormatInt(value, 10) != raw {
		return 0, false
	}

	return value, true
}
