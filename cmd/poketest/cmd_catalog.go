package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/Mondacars0165/PokeTest/internal/domain"
	"github.com/Mondacars0165/PokeTest/internal/sprite"
	"github.com/spf13/cobra"
)

var (
	listOffset int
	listLimit  int
	listAll    bool
)

// listCmd prints one listing page, or the whole catalog with --all
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "Print catalog entries with their sprite URLs",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		svc := newCatalogService()
		out := cmd.OutOrStdout()

		if listAll {
			entries, err := svc.LoadAll(ctx, func(loaded, total int) {
				fmt.Fprintf(cmd.ErrOrStderr(), "\rloaded %d/%d", loaded, total)
			})
			fmt.Fprintln(cmd.ErrOrStderr())
			if err != nil {
				return fmt.Errorf("listing catalog: %w", err)
			}
			printEntries(out, entries)
			return nil
		}

		limit := listLimit
		if limit <= 0 {
			limit = cfg.Catalog.PageSize
		}
		res, err := svc.LoadPage(ctx, nil, domain.PageCursor{Offset: listOffset, Limit: limit})
		if err != nil {
			return fmt.Errorf("listing catalog: %w", err)
		}
		printEntries(out, res.Entries)
		if res.Next != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%d of %d shown; next page: --offset %d --limit %d\n",
				len(res.Entries), res.Count, res.Next.Offset, res.Next.Limit)
		}
		return nil
	},
}

// showCmd prints the detail record for a number or name
var showCmd = &cobra.Command{
	Use:   "show <number|name>",
	Short: "Print the detail record of one entry",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Catalog.Timeout)
		defer cancel()

		svc := newCatalogService()
		record, err := svc.Search(ctx, args[0])
		if err != nil {
			if domain.IsNotFound(err) {
				if hint := suggestFromFirstPage(cmd.Context(), args[0]); hint != "" {
					return fmt.Errorf("%q not found, did you mean %s?", args[0], hint)
				}
				return fmt.Errorf("%q not found", args[0])
			}
			return fmt.Errorf("searching %q: %w", args[0], err)
		}

		printDetail(cmd.OutOrStdout(), record, svc.ArtworkURL(record.Name))
		return nil
	},
}

func init() {
	listCmd.Flags().IntVar(&listOffset, "offset", 0, "index of the first entry")
	listCmd.Flags().IntVar(&listLimit, "limit", 0, "entries per page (default catalog.page_size)")
	listCmd.Flags().BoolVar(&listAll, "all", false, "follow pages until the catalog is exhausted")
}

// suggestFromFirstPage returns close names from the first listing page
func suggestFromFirstPage(ctx context.Context, query string) string {
	ctx, cancel := context.WithTimeout(ctx, cfg.Catalog.Timeout)
	defer cancel()

	svc := newCatalogService()
	res, err := svc.LoadPage(ctx, nil, svc.FirstPage())
	if err != nil {
		return ""
	}
	return strings.Join(svc.Suggest(query, res.Entries), ", ")
}

func printEntries(w io.Writer, entries []domain.DisplayEntry) {
	for _, e := range entries {
		id, _ := sprite.ExtractID(e.ReferenceURL)
		fmt.Fprintf(w, "%5s  %-24s %s\n", id, e.Name, e.ImageURL)
	}
}

func printDetail(w io.Writer, r domain.DetailRecord, artworkURL string) {
	fmt.Fprintf(w, "#%d %s\n", r.ID, r.Name)
	fmt.Fprintf(w, "  types:      %s\n", strings.Join(r.Types, ", "))
	fmt.Fprintf(w, "  abilities:  %s\n", strings.Join(r.Abilities, ", "))
	fmt.Fprintf(w, "  height:     %s\n", r.FormattedHeight())
	fmt.Fprintf(w, "  weight:     %s\n", r.FormattedWeight())
	if r.BaseExperience > 0 {
		fmt.Fprintf(w, "  base exp:   %d\n", r.BaseExperience)
	}
	fmt.Fprintf(w, "  moves:      %d\n", len(r.Moves))
	if r.SpriteURL != "" {
		fmt.Fprintf(w, "  sprite:     %s\n", r.SpriteURL)
	}
	if r.ShinySpriteURL != "" {
		fmt.Fprintf(w, "  shiny:      %s\n", r.ShinySpriteURL)
	}
	fmt.Fprintf(w, "  artwork:    %s (pseudo-id, may not resolve)\n", artworkURL)
}
