package util

import (
	"fmt"
	"strconv"
)

// ParseUint converts a path/query id to uint, rejecting non-numeric input
// so a malformed id never silently resolves to record 0.
func ParseUint(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", s)
	}
	return uint(id), nil
}
