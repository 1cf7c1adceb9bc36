package calendar

import (
	"context"

	"github.com/jonathan/chief-of-staff/internal/types"
)

// Source is implemented by every calendar backend.
type Source interface {
	Fetch(ctx context.Context) ([]types.CalendarEntry, error)
}

// CSVSource adapts a CSV file on disk to the Source interface.
type CSVSource struct {
	Path string
}

// Fetch loads and parses the CSV file.
func (s CSVSource) Fetch(_ context.Context) ([]types.CalendarEntry, error) {
	return LoadCSV(s.Path)
}

// MultiSource combines several sources, deduplicating by entry ID.
type MultiSource []Source

// Fetch merges all underlying sources in order.
func (m MultiSource) Fetch(ctx context.Context) ([]types.CalendarEntry, error) {
	return Merge(ctx, m...)
}

// Merge fetches from all sources in order and combines the results,
// dropping entries whose ID was already seen. Source order therefore
// decides which copy of a duplicated event wins.
func Merge(ctx context.Context, sources ...Source) ([]types.CalendarEntry, error) {
	seen := make(map[string]bool)
	var merged []types.CalendarEntry

	for _, source := range sources {
		entries, err := source.Fetch(ctx)
		if err != nil {
			return nil, err
		}
		for _, entry := range entries {
			if seen[entry.ID] {
				continue
			}
			seen[entry.ID] = true
			merged = append(merged, entry)
		}
	}

	return merged, nil
}
