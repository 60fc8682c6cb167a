// Package cli implements the cobra commands of tierctl, a terminal editor
// for the tier list stored in the local database.
package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/meur/tierboard/internal/storage"
	"github.com/meur/tierboard/internal/tierlist"
)

// options holds the persistent flags shared by all subcommands
type options struct {
	dbPath  string
	origin  string
	verbose bool
}

// NewRootCommand creates the tierctl root command
func NewRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "tierctl",
		Short: "Edit the local tier list from the terminal",
		Long: `tierctl edits the tier list persisted in the local database, the same
snapshot the tierboard server loads at startup.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.dbPath, "db", envOr("DB_PATH", "./tierboard.db"), "SQLite database path")
	rootCmd.PersistentFlags().StringVar(&opts.origin, "origin", envOr("PUBLIC_ORIGIN", "http://localhost:8080"), "Public origin used in share links")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newShowCommand(opts),
		newAddCommand(opts),
		newDeleteCommand(opts),
		newMoveCommand(opts),
		newReorderCommand(opts),
		newResetCommand(opts),
		newShareCommand(opts),
	)

	return rootCmd
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// openBoard opens the database and the board persisted in it. The caller
// closes the returned store.
func (o *options) openBoard(cmd *cobra.Command) (*storage.Store, *tierlist.Board, error) {
	store, err := storage.New(o.dbPath)
	if err != nil {
		return nil, nil, err
	}
	return store, tierlist.Open(store, o.logger(cmd)), nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
