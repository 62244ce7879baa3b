package util

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

// ParsePage reads a 1-based page number from a query value.
// Missing or non-integer values mean the first page. Values beyond the int
// range saturate so they still read as a page past the end.
func ParsePage(raw string) int {
	page, err := strconv.Atoi(strings.TrimSpace(raw))
	if errors.Is(err, strconv.ErrRange) {
		if strings.HasPrefix(strings.TrimSpace(raw), "-") {
			return math.MinInt
		}
		return math.MaxInt
	}
	if err != nil {
		return 1
	}
	return page
}
