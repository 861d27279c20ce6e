package store

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/mlahtinen/savekeeper/internal/domain"
)

// List returns the saves in loc ordered by capture time ascending, ties
// broken by name. A missing collection directory means no saves yet, not
// an error. Entries without a readable marker are skipped with a warning;
// the marker is the source of truth for identity and ordering.
func (s *Store) List(ctx context.Context, loc domain.Location) ([]domain.Save, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	dir := s.collectionDir(loc)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", dir, domain.ErrStoreUnavailable)
	}

	var saves []domain.Save
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		save, err := s.get(loc, e.Name())
		if err != nil {
			s.log.Warn().Str("save", e.Name()).Err(err).Msg("skipping save with unreadable marker")
			continue
		}
		saves = append(saves, save)
	}

	sort.Slice(saves, func(i, j int) bool {
		if !saves[i].CreatedAt.Equal(saves[j].CreatedAt) {
			return saves[i].CreatedAt.Before(saves[j].CreatedAt)
		}
		return saves[i].Name < saves[j].Name
	})
	return saves, nil
}
