package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/Mondacars0165/PokeTest/internal/library"
	"github.com/Mondacars0165/PokeTest/internal/search"
	"github.com/Mondacars0165/PokeTest/internal/sprite"
)

const defaultPageSize = 100

var (
	// ErrEmptyQuery is returned when a search has nothing to look up
	ErrEmptyQuery = errors.New("empty search query")

	// ErrNothingLoaded is returned when a random pick has no entries to pick from
	ErrNothingLoaded = errors.New("no entries loaded")
)

// PageResult is the outcome of merging one page into the display list
type PageResult struct {
	Entries []domain.DisplayEntry // The full next display list
	Added   int                   // Entries appended by this page
	Count   int                   // Total entries in the catalog
	Next    *domain.PageCursor    // nil once the catalog is exhausted
}

// CatalogService composes the catalog client, the image resolver and the
// list synchroniser. It holds no display state: callers pass the current
// list in and apply the returned list on their own rendering path.
type CatalogService struct {
	repo     domain.CatalogRepository
	resolver sprite.Resolver
	pageSize int
	intn     func(n int) int
	logger   *slog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(repo domain.CatalogRepository, resolver sprite.Resolver, pageSize int, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	if pageSize <= 0 {
		pageSize = defaultPageSize
	}
	return &CatalogService{
		repo:     repo,
		resolver: resolver,
		pageSize: pageSize,
		intn:     rand.IntN,
		logger:   logger,
	}
}

// FirstPage returns the cursor of the first listing page
func (s *CatalogService) FirstPage() domain.PageCursor {
	return domain.PageCursor{Offset: 0, Limit: s.pageSize}
}

// LoadPage fetches the page at cursor and merges it after current.
// current is never modified; on error the caller keeps showing it.
func (s *CatalogService) LoadPage(ctx context.Context, current []domain.DisplayEntry, cursor domain.PageCursor) (PageResult, error) {
	page, err := s.repo.FetchList(ctx, cursor)
	if err != nil {
		s.logger.Error("failed to load page", "offset", cursor.Offset, "limit", cursor.Limit, "kind", domain.Kind(err), "error", err)
		return PageResult{}, err
	}

	next, err := library.Merge(current, page.Entries, s.resolver.FromReference)
	if err != nil {
		s.logger.Error("failed to merge page", "offset", cursor.Offset, "kind", domain.Kind(err), "error", err)
		return PageResult{}, err
	}

	s.logger.Debug("loaded page", "offset", cursor.Offset, "added", len(page.Entries), "total", len(next))
	return PageResult{
		Entries: next,
		Added:   len(page.Entries),
		Count:   page.Count,
		Next:    page.Next,
	}, nil
}

// LoadAll pages through the whole listing, reporting progress after each page
func (s *CatalogService) LoadAll(ctx context.Context, onProgress domain.ProgressFunc) ([]domain.DisplayEntry, error) {
	return fetchAll(ctx, s.FirstPage(), func(ctx context.Context, current []domain.DisplayEntry, cursor domain.PageCursor) (PageResult, error) {
		return s.LoadPage(ctx, current, cursor)
	}, onProgress)
}

// Search classifies raw user input and fetches the matching detail record
func (s *CatalogService) Search(ctx context.Context, raw string) (domain.DetailRecord, error) {
	query := strings.TrimSpace(raw)
	if query == "" {
		return domain.DetailRecord{}, ErrEmptyQuery
	}

	q := search.Classify(query)
	s.logger.Debug("searching", "query", query, "by", q.Kind.String())

	var (
		record domain.DetailRecord
		err    error
	)
	switch q.Kind {
	case search.ByID:
		record, err = s.repo.FetchDetailByID(ctx, q.ID)
	default:
		// Catalog slugs are lowercase
		record, err = s.repo.FetchDetailByName(ctx, strings.ToLower(q.Name))
	}
	if err != nil {
		s.logger.Error("search failed", "query", query, "kind", domain.Kind(err), "error", err)
		return domain.DetailRecord{}, err
	}
	return record, nil
}

// Detail fetches the detail record for a row the user selected
func (s *CatalogService) Detail(ctx context.Context, entry domain.DisplayEntry) (domain.DetailRecord, error) {
	record, err := s.repo.FetchDetailByName(ctx, entry.Name)
	if err != nil {
		s.logger.Error("failed to load detail", "name", entry.Name, "kind", domain.Kind(err), "error", err)
		return domain.DetailRecord{}, err
	}
	return record, nil
}

// Random fetches the detail record of a randomly chosen loaded entry, by ID
func (s *CatalogService) Random(ctx context.Context, entries []domain.DisplayEntry) (domain.DetailRecord, error) {
	if len(entries) == 0 {
		return domain.DetailRecord{}, ErrNothingLoaded
	}
	entry := entries[s.intn(len(entries))]

	idStr, err := sprite.ExtractID(entry.ReferenceURL)
	if err != nil {
		s.logger.Error("random pick has no id", "name", entry.Name, "error", err)
		return domain.DetailRecord{}, err
	}
	id, err := strconv.Atoi(idStr)
	if err != nil {
		return domain.DetailRecord{}, fmt.Errorf("%w: %w", domain.ErrDerivation, err)
	}

	record, err := s.repo.FetchDetailByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to load random detail", "id", id, "kind", domain.Kind(err), "error", err)
		return domain.DetailRecord{}, err
	}
	return record, nil
}

// Suggest returns loaded names close to a query that was not found
func (s *CatalogService) Suggest(query string, entries []domain.DisplayEntry) []string {
	names := make([]string, len(entries))
	for i, e := range entries {
		names[i] = e.Name
	}
	return search.Suggest(query, names)
}

// ArtworkURL returns the hashed-name artwork link for name.
// The identifier is a pseudo-ID, not the catalog ID, so the link is usually dead.
func (s *CatalogService) ArtworkURL(name string) string {
	return s.resolver.FromName(name)
}
