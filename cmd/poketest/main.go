package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/Mondacars0165/PokeTest/internal/adapter"
	"github.com/Mondacars0165/PokeTest/internal/adapter/source/pokeapi"
	"github.com/Mondacars0165/PokeTest/internal/service"
	"github.com/Mondacars0165/PokeTest/internal/sprite"
	"github.com/Mondacars0165/PokeTest/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags
var Version = "dev"

var (
	// Global flags
	configPath string
	verbose    bool

	// Set up by PersistentPreRunE
	cfg       *adapter.Config
	logger    *slog.Logger
	logCloser io.Closer
)

// rootCmd launches the terminal UI
var rootCmd = &cobra.Command{
	Use:     "poketest",
	Short:   "Browse and search the PokeAPI catalog from the terminal",
	Version: Version,
	Long: `poketest lists, searches and shows entries of the public PokeAPI catalog.

Run without arguments to start the interactive browser.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = adapter.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if verbose {
			cfg.Logging.Level = "DEBUG"
		}

		logger, logCloser, err = adapter.SetupLogger(&cfg.Logging)
		if err != nil {
			// Fall back to null logger if file logging fails
			logger = adapter.NullLogger()
			logCloser = nil
		}
		slog.SetDefault(logger)
		logger.Info("starting poketest", "version", Version, "command", cmd.Name())
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logCloser != nil {
			_ = logCloser.Close()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default "+adapter.DefaultConfigDir()+"/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(listCmd, showCmd, configCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newCatalogService wires the client and resolver from configuration
func newCatalogService() *service.CatalogService {
	client := pokeapi.NewClient(pokeapi.Options{
		BaseURL:           cfg.Catalog.BaseURL,
		Timeout:           cfg.Catalog.Timeout,
		RequestsPerSecond: cfg.Catalog.RequestsPerSecond,
	}, logger)
	resolver := sprite.NewResolver(cfg.Catalog.SpriteBase, cfg.Catalog.ArtworkBase)
	return service.NewCatalogService(client, resolver, cfg.Catalog.PageSize, logger)
}

func runTUI() error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("the browser needs an interactive terminal; try 'poketest list' or 'poketest show'")
	}

	catalog := newCatalogService()
	opener := adapter.NewImageOpener(cfg.UI.ImageViewer, nil, logger)

	model := tui.NewModel(catalog, opener, tui.Options{
		PrefetchThreshold: cfg.UI.PrefetchThreshold,
		RequestTimeout:    cfg.Catalog.Timeout + time.Second,
		ShowClock:         cfg.UI.ShowClock,
		Logger:            logger,
	})

	p := tea.NewProgram(model, tea.WithAltScreen())

	logger.Info("starting TUI")
	if _, err := p.Run(); err != nil {
		logger.Error("TUI error", "error", err)
		return fmt.Errorf("TUI error: %w", err)
	}

	logger.Info("shutting down")
	return nil
}
