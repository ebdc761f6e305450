package cli

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"musicshop/internal/service"
)

// NewSKUCommand creates the sku command.
func NewSKUCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sku <brand> [color]",
		Short: "Propose a SKU for a new product",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			svc, closeFn, err := openServices(rootOpts, f)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			req := service.GenerateSKURequest{Brand: args[0]}
			if len(args) == 2 {
				req.Color = args[1]
			}
			res, err := svc.Inventory.GenerateSKU(cmd.Context(), req)
			if err != nil {
				return f.Fail(WrapExitError(ExitFailure, "cannot generate sku", err))
			}

			text := res.SKU
			if res.Exists {
				text += " (already in use)"
			}
			return f.Result(text, res)
		},
	}
}

// NewLandedCostCommand creates the landed-cost command.
func NewLandedCostCommand(rootOpts *RootOptions) *cobra.Command {
	var sku string

	cmd := &cobra.Command{
		Use:   "landed-cost [<unit-cost-usd> <weight>]",
		Short: "Price an imported unit with the stored cost settings",
		Args: func(cmd *cobra.Command, args []string) error {
			if sku != "" {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(2)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)

			var req service.LandedCostRequest
			if sku == "" {
				var err error
				if req.UnitCost, err = strconv.ParseFloat(args[0], 64); err != nil {
					return f.Fail(WrapExitError(ExitCommandError, "invalid unit cost", err))
				}
				if req.Weight, err = strconv.ParseFloat(args[1], 64); err != nil {
					return f.Fail(WrapExitError(ExitCommandError, "invalid weight", err))
				}
			}

			svc, closeFn, err := openServices(rootOpts, f)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			var res service.LandedCostResponse
			if sku != "" {
				res, err = svc.Settings.ProductLandedCost(cmd.Context(), sku)
			} else {
				res, err = svc.Settings.LandedCost(cmd.Context(), req)
			}
			if err != nil {
				return f.Fail(WrapExitError(ExitFailure, "cannot compute landed cost", err))
			}

			return f.Result(strconv.FormatFloat(res.LandedCost, 'f', 2, 64), res)
		},
	}

	cmd.Flags().StringVar(&sku, "sku", "", "use cost and weight of a catalog product")
	return cmd
}

// NewLowStockCommand creates the low-stock command.
func NewLowStockCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "low-stock",
		Short: "List products at or below their minimum stock",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)
			svc, closeFn, err := openServices(rootOpts, f)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			stats, err := svc.Statistics.GetStatistics(cmd.Context(), time.Time{}, time.Time{})
			if err != nil {
				return f.Fail(WrapExitError(ExitFailure, "cannot read catalog", err))
			}

			if len(stats.LowStock) == 0 {
				return f.Result("No products below minimum stock", stats.LowStock)
			}
			var b strings.Builder
			for _, a := range stats.LowStock {
				fmt.Fprintf(&b, "%-10s %4d / min %-4d %s\n", a.SKU, a.Stock, a.MinStock, a.Name)
			}
			return f.Result(strings.TrimRight(b.String(), "\n"), stats.LowStock)
		},
	}
}
