package search

import (
	"errors"
	"fmt"
	"sort"
)

// ErrInvalidTop is returned when the requested number of results is not
// positive.
var ErrInvalidTop = errors.New("top must be positive")

// ValidateTop checks the number of results requested.
func ValidateTop(topN int) error {
	if topN < 1 {
		return fmt.Errorf("%w, got %d", ErrInvalidTop, topN)
	}
	return nil
}

// Rank sorts results by score (descending) and keeps the first topN.
// Equal scores keep their discovery order.
func Rank(results []SearchResult, topN int) ([]SearchResult, error) {
	if err := ValidateTop(topN); err != nil {
		return nil, err
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	if len(results) > topN {
		results = results[:topN]
	}
	return results, nil
}
