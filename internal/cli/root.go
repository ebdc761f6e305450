// Package cli implements shopctl, the operator command line for the shop
// database.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"musicshop/internal/config"
	"musicshop/internal/database"
	"musicshop/internal/service"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	DB      string // sqlite file; empty means use the environment configuration
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for shopctl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "shopctl",
		Short: "shopctl - MusicShop operator tool",
		Long:  "Seed, inspect and back up the MusicShop inventory and order pipeline.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.DB, "db", "", "sqlite database file (default: DB_* environment)")

	// Add subcommands
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewExportCommand(opts))
	cmd.AddCommand(NewSeedCommand(opts))
	cmd.AddCommand(NewSKUCommand(opts))
	cmd.AddCommand(NewLandedCostCommand(opts))
	cmd.AddCommand(NewLowStockCommand(opts))
	cmd.AddCommand(NewSetStatusCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}

func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// openServices connects to the shop database. The returned func closes it.
func openServices(opts *RootOptions, f *OutputFormatter) (*service.Services, func(), error) {
	var dbCfg config.DatabaseConfig
	if opts.DB != "" {
		dbCfg = config.DatabaseConfig{Driver: config.DriverSQLite, Path: opts.DB}
	} else {
		cfg, err := config.Load()
		if err != nil {
			return nil, nil, WrapExitError(ExitCommandError, "invalid configuration", err)
		}
		dbCfg = cfg.Database
	}
	dbCfg.LogLevel = "silent"
	if opts.Verbose {
		dbCfg.LogLevel = "info"
	}

	f.VerboseLog("Opening %s database %s", dbCfg.Driver, dbCfg.Path)
	db, err := database.NewConnection(dbCfg)
	if err != nil {
		return nil, nil, WrapExitError(ExitCommandError, "cannot open database", err)
	}

	closeFn := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return service.NewServices(db, nil), closeFn, nil
}
