package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gerunddev/notemark/internal/config"
	"github.com/gerunddev/notemark/internal/logger"
	"github.com/gerunddev/notemark/internal/notes"
	"github.com/gerunddev/notemark/internal/store"
	"github.com/gerunddev/notemark/internal/styles"
	"github.com/gerunddev/notemark/internal/tui"
	"github.com/spf13/cobra"
)

// Version is reported by the version command
const Version = "0.1.0"

type rootOptions struct {
	configPath string
	debug      bool
}

// app bundles what every note command needs
type app struct {
	cfg   *config.Config
	log   *logger.Logger
	notes *notes.Model
}

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, styles.ErrorStyle.Render("✗ "+err.Error()))
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "notemark",
		Short:         "notemark: notes with inline markup",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default "+config.ConfigPath()+")")
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable debug logging to stderr")

	cmd.AddCommand(
		addCmd(opts),
		listCmd(opts),
		showCmd(opts),
		editCmd(opts),
		deleteCmd(opts),
		searchCmd(opts),
		previewCmd(opts),
		markersCmd(),
		exportCmd(opts),
		importCmd(opts),
		tuiCmd(opts),
		versionCmd(),
	)
	return cmd
}

func tuiCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Browse and edit notes interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd, opts)
		},
	}
}

func runTUI(cmd *cobra.Command, opts *rootOptions) error {
	a, cleanup, err := openApp(cmd.Context(), opts)
	if err != nil {
		return err
	}
	defer cleanup()

	return tui.Run(a.notes)
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "notemark v%s\n", Version)
		},
	}
}

// openApp loads config, sets up logging, opens the store and loads notes.
func openApp(ctx context.Context, opts *rootOptions) (*app, func(), error) {
	if opts.configPath != "" {
		path := opts.configPath
		config.ConfigPath = func() string { return path }
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, closeLog := setupLogger(cfg, opts.debug)
	log.ConfigLoaded(cfg.StoreBackend, cfg.StorePath, cfg.AppKey)

	st, err := store.Open(store.Config{Backend: cfg.StoreBackend, Path: cfg.StorePath})
	if err != nil {
		closeLog()
		return nil, nil, fmt.Errorf("failed to open store: %w", err)
	}
	log.StoreOpened(cfg.StoreBackend, cfg.StorePath)

	model, err := notes.Load(ctx, st, cfg.AppKey)
	if err != nil {
		log.StoreError("load notes", err)
		_ = st.Close()
		closeLog()
		return nil, nil, err
	}
	model.SetLogger(log)
	model.OnListChanged(func(list []notes.Note) {
		log.Debug("note list changed", "count", len(list))
	})

	cleanup := func() {
		if err := st.Close(); err != nil {
			log.StoreError("close", err)
		}
		closeLog()
	}

	return &app{cfg: cfg, log: log, notes: model}, cleanup, nil
}

func setupLogger(cfg *config.Config, debug bool) (*logger.Logger, func()) {
	noop := func() {}

	if cfg.LogFile == "" {
		if debug {
			return logger.NewWithLevel(os.Stderr, logger.DebugLevel), noop
		}
		return logger.Discard(), noop
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
		return logger.Discard(), noop
	}
	l, cleanup, err := logger.NewFileLogger(cfg.LogFile, debug)
	if err != nil {
		return logger.Discard(), noop
	}
	return l, cleanup
}
