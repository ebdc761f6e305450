package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"musicshop/internal/model"
)

// NewSetStatusCommand creates the set-status command.
func NewSetStatusCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <order-id> <status>",
		Short: "Move an order to a new pipeline status",
		Long: `Move an order to quote, pending, ready, completed or cancelled.

Stock is adjusted the same way as through the API: confirming a quote takes
its items out of stock, cancelling a confirmed order puts them back.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)

			status, err := model.ParseOrderStatus(args[1])
			if err != nil {
				return f.Fail(WrapExitError(ExitCommandError, "invalid status", err))
			}

			svc, closeFn, err := openServices(rootOpts, f)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			res, err := svc.Orders.ChangeStatus(cmd.Context(), args[0], status)
			if err != nil {
				return f.Fail(WrapExitError(ExitFailure, "status change rejected", err))
			}

			for _, m := range res.StockMovements {
				f.VerboseLog("%s %+d -> %d", m.SKU, m.Delta, m.StockAfter)
			}
			return f.Result(fmt.Sprintf("Order %s is now %s (%d stock movements)", res.Order.ID, res.Order.Status, len(res.StockMovements)), res)
		},
	}
}
