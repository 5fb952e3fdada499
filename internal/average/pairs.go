package average

import (
	"fmt"
	"strings"
	"valet/internal/domain"
)

// ParsePairs turns "FROM/TO" entries into cache keys over the given window.
func ParsePairs(pairs []string, weeks int) ([]domain.AverageKey, error) {
	keys := make([]domain.AverageKey, 0, len(pairs))
	for _, raw := range pairs {
		from, to, ok := strings.Cut(strings.TrimSpace(raw), "/")
		if !ok {
			return nil, fmt.Errorf("invalid pair %q, expected FROM/TO", raw)
		}
		from, to = strings.ToUpper(strings.TrimSpace(from)), strings.ToUpper(strings.TrimSpace(to))
		if err := ValidateInput(weeks, from, to); err != nil {
			return nil, fmt.Errorf("invalid pair %q: %w", raw, err)
		}
		keys = append(keys, domain.AverageKey{From: from, To: to, Weeks: weeks})
	}
	return keys, nil
}
