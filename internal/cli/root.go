// Package cli implements the gardenlog command-line interface. Commands go
// through the same garden and settings stores the app UI consumes, so every
// state operation is exercised end to end from here.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pottingshed/gardenlog/internal/garden"
	"github.com/pottingshed/gardenlog/internal/settings"
	"github.com/pottingshed/gardenlog/internal/sqlite"
	"github.com/pottingshed/gardenlog/pkg/types"
)

// rootFlags holds global flag values shared by all subcommands.
type rootFlags struct {
	configDir string
	dataDir   string
	jsonMode  bool
}

// App wires the stores together for one command invocation. It is built once
// in PersistentPreRunE and passed by reference to every subcommand, so there
// is exactly one owner of truth and no ambient global state.
type App struct {
	logger   *slog.Logger
	db       *sqlite.Store
	Garden   *garden.Store
	Settings *settings.Store
}

// open initializes persistence and seeds the in-memory stores. A database
// that fails to open degrades the session to memory-only instead of failing
// the command; the error is logged and commands still run.
func (a *App) open(flags *rootFlags) error {
	// A .env in the working directory can supply the GARDENLOG_* overrides.
	_ = godotenv.Load()

	a.logger = slog.New(slog.NewTextHandler(os.Stderr, nil))

	dataDir, err := resolveDataDir(flags)
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}

	db := sqlite.NewStore()
	if err := db.Open(types.Config{DataDir: dataDir}); err != nil {
		a.logger.Error("opening database failed, running memory-only",
			slog.String("error", err.Error()))
	} else {
		a.db = db
	}

	// A typed-nil *sqlite.Store must not become a non-nil interface.
	if a.db != nil {
		a.Garden = garden.NewStore(a.db, a.logger)
		a.Settings = settings.NewStore(a.db, a.logger)
	} else {
		a.Garden = garden.NewStore(nil, a.logger)
		a.Settings = settings.NewStore(nil, a.logger)
	}
	a.Garden.Load()
	a.Settings.Load()
	return nil
}

// close flushes pending writes and releases the database.
func (a *App) close() {
	if a.Garden != nil {
		a.Garden.Close()
	}
	if a.Settings != nil {
		a.Settings.Close()
	}
	if a.db != nil {
		_ = a.db.Close()
	}
}

// NewRootCmd creates the top-level "gardenlog" command with global flags and
// all subcommands registered.
func NewRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &App{}

	root := &cobra.Command{
		Use:          "gardenlog",
		Short:        "Track what is growing in your garden",
		Long:         "Gardenlog tracks garden areas, the plants growing in them,\ntheir growth stages, and a per-plant journal, all stored locally.",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Name() == "version" {
				return nil
			}
			return app.open(flags)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			app.close()
			return nil
		},
	}

	root.PersistentFlags().StringVar(&flags.configDir, "config-dir", "", "configuration directory (default: platform config dir)")
	root.PersistentFlags().StringVar(&flags.dataDir, "data-dir", "", "data directory (default: platform data dir)")
	root.PersistentFlags().BoolVar(&flags.jsonMode, "json", false, "output in JSON format")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newInitCmd(app))
	root.AddCommand(newAreaCmd(app, flags))
	root.AddCommand(newPlantCmd(app, flags))
	root.AddCommand(newNoteCmd(app))
	root.AddCommand(newCatalogCmd(app, flags))
	root.AddCommand(newSettingsCmd(app, flags))
	root.AddCommand(newKVCmd(app))

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
