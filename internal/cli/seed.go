package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"musicshop/internal/service"
)

// SeedFile is the YAML layout accepted by the seed command.
type SeedFile struct {
	Products []SeedProduct `yaml:"products"`
	Settings *SeedSettings `yaml:"settings,omitempty"`
}

// SeedProduct is one catalog entry. A blank SKU is generated from brand and
// color.
type SeedProduct struct {
	SKU      string  `yaml:"sku"`
	Name     string  `yaml:"name"`
	Brand    string  `yaml:"brand"`
	Color    string  `yaml:"color"`
	CostUSD  float64 `yaml:"cost_usd"`
	Weight   float64 `yaml:"weight"`
	Stock    int     `yaml:"stock"`
	MinStock *int    `yaml:"min_stock"`
	MaxStock *int    `yaml:"max_stock"`
	Price    float64 `yaml:"price"`
}

type SeedSettings struct {
	ExchangeRate *float64 `yaml:"exchange_rate"`
	CourierRate  *float64 `yaml:"courier_rate"`
	Packaging    *float64 `yaml:"packaging"`
}

// SeedResult lists the SKUs written.
type SeedResult struct {
	SKUs            []string `json:"skus"`
	SettingsUpdated bool     `json:"settings_updated"`
}

// ParseSeedFile decodes a seed document, rejecting unknown fields.
func ParseSeedFile(data []byte) (SeedFile, error) {
	var seed SeedFile
	dec := yaml.NewDecoder(strings.NewReader(string(data)))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil {
		return SeedFile{}, err
	}
	return seed, nil
}

// NewSeedCommand creates the seed command.
func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed <catalog.yaml>",
		Short: "Add or replace catalog products from a YAML file",
		Long: `Add or replace catalog products listed in a YAML file.

Products without a sku get one generated from brand and color, in file order.
An optional settings section updates the cost configuration.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f := newFormatter(rootOpts, cmd)

			data, err := os.ReadFile(args[0])
			if err != nil {
				return f.Fail(WrapExitError(ExitCommandError, "cannot read seed file", err))
			}
			seed, err := ParseSeedFile(data)
			if err != nil {
				return f.Fail(WrapExitError(ExitCommandError, "invalid seed file", err))
			}

			svc, closeFn, err := openServices(rootOpts, f)
			if err != nil {
				return f.Fail(err)
			}
			defer closeFn()

			ctx := cmd.Context()
			result := SeedResult{SKUs: []string{}}
			for i, p := range seed.Products {
				code := strings.TrimSpace(p.SKU)
				if code == "" {
					gen, err := svc.Inventory.GenerateSKU(ctx, service.GenerateSKURequest{Brand: p.Brand, Color: p.Color})
					if err != nil {
						return f.Fail(WrapExitError(ExitFailure, fmt.Sprintf("product %d (%s)", i+1, p.Name), err))
					}
					if gen.Exists {
						return f.Fail(WrapExitError(ExitFailure, fmt.Sprintf("product %d (%s)", i+1, p.Name),
							fmt.Errorf("generated sku %s is already taken, set one explicitly", gen.SKU)))
					}
					code = gen.SKU
				}

				_, err := svc.Inventory.SaveProduct(ctx, service.SaveProductRequest{
					SKU:      code,
					Name:     p.Name,
					Brand:    p.Brand,
					Color:    p.Color,
					CostUSD:  p.CostUSD,
					Weight:   p.Weight,
					Stock:    p.Stock,
					MinStock: p.MinStock,
					MaxStock: p.MaxStock,
					Price:    p.Price,
				})
				if err != nil {
					return f.Fail(WrapExitError(ExitFailure, fmt.Sprintf("product %d (%s)", i+1, p.Name), err))
				}
				f.VerboseLog("Saved %s %s", code, p.Name)
				result.SKUs = append(result.SKUs, code)
			}

			if seed.Settings != nil {
				_, err := svc.Settings.UpdateConfig(ctx, service.UpdateSettingsRequest{
					ExchangeRate: seed.Settings.ExchangeRate,
					CourierRate:  seed.Settings.CourierRate,
					Packaging:    seed.Settings.Packaging,
				})
				if err != nil {
					return f.Fail(WrapExitError(ExitFailure, "settings", err))
				}
				result.SettingsUpdated = true
			}

			return f.Result(fmt.Sprintf("Seeded %d products: %s", len(result.SKUs), strings.Join(result.SKUs, ", ")), result)
		},
	}
}
