package redis

import (
	"context"
	"errors"
	"strings"

	"github.com/MrSnakeDoc/voyage/internal/domain"
)

// SearchCap bounds the number of entries a history search returns.
const SearchCap = 50

// SearchHistory returns history entries whose title or URL contains q as
// a case-insensitive substring. Results follow index order (newest
// first) with no relevance ranking. An empty q matches every entry; that
// is documented edge behavior, not a fault.
//
// The scan walks the history index directly instead of going through
// List so the search cap is independent of the listing cap.
func (s *Store) SearchHistory(ctx context.Context, q string) ([]*domain.HistoryEntry, error) {
	ids, err := allIDs(ctx, s, History)
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(q)
	matches := make([]*domain.HistoryEntry, 0, SearchCap)
	for _, id := range ids {
		if len(matches) == SearchCap {
			break
		}

		entry, err := getRecord[*domain.HistoryEntry](ctx, s, History, id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				continue
			}
			return nil, err
		}

		if strings.Contains(strings.ToLower(entry.Title), needle) ||
			strings.Contains(strings.ToLower(entry.URL), needle) {
			matches = append(matches, entry)
		}
	}

	return matches, nil
}
