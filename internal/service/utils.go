package service

import (
	"context"

	"github.com/Mondacars0165/PokeTest/internal/domain"
)

// pageLoader fetches the page at cursor and merges it after current
type pageLoader func(ctx context.Context, current []domain.DisplayEntry, cursor domain.PageCursor) (PageResult, error)

// fetchAll follows Next cursors from first until the catalog is exhausted.
// On error nothing partial is returned.
func fetchAll(
	ctx context.Context,
	first domain.PageCursor,
	load pageLoader,
	onProgress domain.ProgressFunc,
) ([]domain.DisplayEntry, error) {
	var all []domain.DisplayEntry
	cursor := &first

	for cursor != nil {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		res, err := load(ctx, all, *cursor)
		if err != nil {
			return nil, err
		}
		all = res.Entries

		if onProgress != nil {
			onProgress(len(all), res.Count)
		}

		if res.Added == 0 {
			break
		}
		cursor = res.Next
	}

	return all, nil
}
