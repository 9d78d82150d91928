package utils

import (
	"fmt"
	"strconv"
)

// ParseID parses a URL path identifier into an int64 surrogate key
func ParseID(value string) (int64, error) {
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid id %q", value)
	}
	return id, nil
}
