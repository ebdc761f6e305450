package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"musicshop/internal/snapshot"
)

// SnapshotSummary is printed after import and export.
type SnapshotSummary struct {
	Dir       string   `json:"dir"`
	Products  int      `json:"products"`
	Orders    int      `json:"orders"`
	Discarded []string `json:"discarded,omitempty"`
}

// NewImportCommand creates the import command.
func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <dir>",
		Short: "Replace the database contents with a snapshot directory",
		Long: `Load musicshop_products.json, musicshop_orders.json and musicshop_config.json
from <dir> and replace the stored catalog, orders and settings.

Missing or malformed files are replaced by empty defaults, but the command
refuses to run when none of the three files can be used. Stock is restored
as written; imported orders do not move stock.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)

			snap, report := snapshot.LoadReport(args[0])
			if !report.Usable() {
				return f.Fail(WrapExitError(ExitCommandError, "nothing imported from "+args[0], snapshot.ErrNothingToImport))
			}
			for _, key := range report.Discarded {
				f.VerboseLog("Discarded malformed %s", snapshot.FileName(key))
			}
			f.VerboseLog("Loaded %d products and %d orders from %s", len(snap.Products), len(snap.Orders), args[0])

			svc, closeFn, err := openServices(rootOpts, f)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			if err := svc.Snapshots.Import(cmd.Context(), snap); err != nil {
				return f.Fail(WrapExitError(ExitFailure, "import failed", err))
			}

			summary := SnapshotSummary{
				Dir:       args[0],
				Products:  len(snap.Products),
				Orders:    len(snap.Orders),
				Discarded: report.Discarded,
			}
			return f.Result(fmt.Sprintf("Imported %d products and %d orders from %s", summary.Products, summary.Orders, summary.Dir), summary)
		},
	}
}

// NewExportCommand creates the export command.
func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "export <dir>",
		Short: "Write the database contents as a snapshot directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			svc, closeFn, err := openServices(rootOpts, f)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			snap, err := svc.Snapshots.Export(cmd.Context())
			if err != nil {
				return f.Fail(WrapExitError(ExitFailure, "export failed", err))
			}
			if err := snapshot.Save(args[0], snap); err != nil {
				return f.Fail(WrapExitError(ExitCommandError, "cannot write snapshot", err))
			}

			summary := SnapshotSummary{Dir: args[0], Products: len(snap.Products), Orders: len(snap.Orders)}
			return f.Result(fmt.Sprintf("Exported %d products and %d orders to %s", summary.Products, summary.Orders, summary.Dir), summary)
		},
	}
}
