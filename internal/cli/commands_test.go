package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicshop/internal/model"
	"musicshop/internal/service"
	"musicshop/internal/snapshot"
)

const seedFile = "testdata/catalog.yaml"

type rawResponse struct {
	Status string          `json:"status"`
	Data   json.RawMessage `json:"data"`
	Error  string          `json:"error"`
}

// runShopctl executes the root command against the given sqlite file.
func runShopctl(t *testing.T, db string, args ...string) (string, error) {
	t.Helper()

	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(append([]string{"--db", db}, args...))

	err := cmd.Execute()
	return buf.String(), err
}

func runJSON(t *testing.T, db string, out interface{}, args ...string) rawResponse {
	t.Helper()

	stdout, err := runShopctl(t, db, append([]string{"--format", "json"}, args...)...)
	var resp rawResponse
	require.NoError(t, json.Unmarshal([]byte(stdout), &resp), stdout)
	if err == nil && out != nil {
		require.NoError(t, json.Unmarshal(resp.Data, out))
	}
	return resp
}

func tempDB(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "shop.db")
}

func TestSeedCommand(t *testing.T) {
	db := tempDB(t)

	var result SeedResult
	resp := runJSON(t, db, &result, "seed", seedFile)
	require.Equal(t, "ok", resp.Status, resp.Error)

	assert.Equal(t, []string{"YAB1001", "RE010", "CAW1003"}, result.SKUs)
	assert.True(t, result.SettingsUpdated)

	out, err := runShopctl(t, db, "landed-cost", "--sku", "RE010")
	require.NoError(t, err)
	// 550 * 58 + 14 * 250 + 50
	assert.Equal(t, "35450.00\n", out)
}

func TestSeedCommandRejectsUnknownFields(t *testing.T) {
	_, err := ParseSeedFile([]byte("products:\n  - name: Yamaha\n    colour: Red\n"))
	require.Error(t, err)

	seed, err := ParseSeedFile([]byte("products:\n  - name: Yamaha\n    brand: Yamaha\n    min_stock: 0\n"))
	require.NoError(t, err)
	require.Len(t, seed.Products, 1)
	require.NotNil(t, seed.Products[0].MinStock)
	assert.Equal(t, 0, *seed.Products[0].MinStock)
	assert.Nil(t, seed.Products[0].MaxStock)
	assert.Nil(t, seed.Settings)
}

func TestSeedCommandMissingFile(t *testing.T) {
	out, err := runShopctl(t, tempDB(t), "seed", "testdata/nope.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, "cannot read seed file")
}

func TestSKUCommand(t *testing.T) {
	db := tempDB(t)

	out, err := runShopctl(t, db, "sku", "Redmond")
	require.NoError(t, err)
	assert.Equal(t, "RE001\n", out)

	_, err = runShopctl(t, db, "seed", seedFile)
	require.NoError(t, err)

	var res service.GenerateSKUResponse
	resp := runJSON(t, db, &res, "sku", "Yamaha", "Black")
	require.Equal(t, "ok", resp.Status)
	assert.Equal(t, "YAB2004", res.SKU)
	assert.False(t, res.Exists)
}

func TestSKUCommandBrandTooShort(t *testing.T) {
	out, err := runShopctl(t, tempDB(t), "sku", "R")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error: cannot generate sku")
}

func TestLandedCostCommand(t *testing.T) {
	db := tempDB(t)

	// 10 * 60.5 + 0.5 * 250 + 50 with the default settings
	out, err := runShopctl(t, db, "landed-cost", "10", "0.5")
	require.NoError(t, err)
	assert.Equal(t, "780.00\n", out)

	var res service.LandedCostResponse
	resp := runJSON(t, db, &res, "landed-cost", "10", "0.5")
	require.Equal(t, "ok", resp.Status)
	assert.InDelta(t, 780.0, res.LandedCost, 1e-9)
	assert.Equal(t, model.DefaultAppConfig().ExchangeRate, res.Config.ExchangeRate)
}

func TestLandedCostCommandErrors(t *testing.T) {
	db := tempDB(t)

	_, err := runShopctl(t, db, "landed-cost", "10")
	require.Error(t, err)

	_, err = runShopctl(t, db, "landed-cost", "--sku", "RE001", "10", "1")
	require.Error(t, err)

	_, err = runShopctl(t, db, "landed-cost", "ten", "1")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = runShopctl(t, db, "landed-cost", "--sku", "NOPE")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestLowStockCommand(t *testing.T) {
	db := tempDB(t)

	out, err := runShopctl(t, db, "low-stock")
	require.NoError(t, err)
	assert.Equal(t, "No products below minimum stock\n", out)

	_, err = runShopctl(t, db, "seed", seedFile)
	require.NoError(t, err)

	var alerts []model.StockAlert
	resp := runJSON(t, db, &alerts, "low-stock")
	require.Equal(t, "ok", resp.Status)
	require.Len(t, alerts, 1)
	assert.Equal(t, "RE010", alerts[0].SKU)
	assert.Equal(t, 1, alerts[0].Stock)
	assert.Equal(t, 2, alerts[0].MinStock)

	out, err = runShopctl(t, db, "low-stock")
	require.NoError(t, err)
	assert.Contains(t, out, "RE010")
	assert.Contains(t, out, "Roland FP-30")
}

func TestExportImportCommands(t *testing.T) {
	src := tempDB(t)
	_, err := runShopctl(t, src, "seed", seedFile)
	require.NoError(t, err)

	dir := t.TempDir()
	var exported SnapshotSummary
	resp := runJSON(t, src, &exported, "export", dir)
	require.Equal(t, "ok", resp.Status, resp.Error)
	assert.Equal(t, 3, exported.Products)
	assert.Equal(t, 0, exported.Orders)

	for _, key := range []string{snapshot.KeyProducts, snapshot.KeyOrders, snapshot.KeyConfig} {
		assert.FileExists(t, filepath.Join(dir, snapshot.FileName(key)))
	}

	dst := tempDB(t)
	out, err := runShopctl(t, dst, "import", dir)
	require.NoError(t, err)
	assert.Equal(t, "Imported 3 products and 0 orders from "+dir+"\n", out)

	out, err = runShopctl(t, dst, "landed-cost", "--sku", "RE010")
	require.NoError(t, err)
	assert.Equal(t, "35450.00\n", out)
}

func TestImportCommandMissingDirectoryKeepsData(t *testing.T) {
	db := tempDB(t)
	_, err := runShopctl(t, db, "seed", seedFile)
	require.NoError(t, err)

	resp := runJSON(t, db, nil, "import", filepath.Join(t.TempDir(), "absent"))
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, snapshot.ErrNothingToImport.Error())

	_, err = runShopctl(t, db, "import", filepath.Join(t.TempDir(), "absent"))
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	var exported SnapshotSummary
	resp = runJSON(t, db, &exported, "export", t.TempDir())
	require.Equal(t, "ok", resp.Status)
	assert.Equal(t, 3, exported.Products)
}

func TestImportCommandAllFilesMalformed(t *testing.T) {
	db := tempDB(t)
	_, err := runShopctl(t, db, "seed", seedFile)
	require.NoError(t, err)

	dir := t.TempDir()
	for _, key := range []string{snapshot.KeyProducts, snapshot.KeyOrders, snapshot.KeyConfig} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, snapshot.FileName(key)), []byte("{broken"), 0o644))
	}

	_, err = runShopctl(t, db, "import", dir)
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	out, err := runShopctl(t, db, "landed-cost", "--sku", "RE010")
	require.NoError(t, err)
	assert.Equal(t, "35450.00\n", out)
}

func TestImportCommandReportsDiscardedFiles(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, snapshot.FileName(snapshot.KeyProducts)),
		[]byte(`[{"sku":"RE001","name":"Roland FP-30","brand":"Roland","stock":2}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, snapshot.FileName(snapshot.KeyOrders)), []byte("nope"), 0o644))

	var summary SnapshotSummary
	resp := runJSON(t, tempDB(t), &summary, "import", dir)
	require.Equal(t, "ok", resp.Status, resp.Error)
	assert.Equal(t, 1, summary.Products)
	assert.Equal(t, 0, summary.Orders)
	assert.Equal(t, []string{snapshot.KeyOrders}, summary.Discarded)
}

func TestSetStatusCommand(t *testing.T) {
	dir := t.TempDir()
	orderID := "2b7f0c4e-6d9a-4c3e-8f7b-1a2b3c4d5e6f"
	require.NoError(t, snapshot.Save(dir, snapshot.Snapshot{
		Products: []model.Product{
			{SKU: "RE001", Name: "Roland FP-30", Brand: "Roland", Stock: 5, MinStock: 2, MaxStock: 20, Price: 8000},
		},
		Orders: []model.Order{{
			ID:           orderID,
			CustomerName: "Ana",
			Date:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
			Items:        []model.OrderItem{{SKU: "RE001", Name: "Roland FP-30", Quantity: 2, Price: 8000, Total: 16000}},
			Total:        16000,
			Status:       model.OrderStatusQuote,
		}},
		Config: model.DefaultAppConfig(),
	}))

	db := tempDB(t)
	_, err := runShopctl(t, db, "import", dir)
	require.NoError(t, err)

	var res service.OrderResult
	resp := runJSON(t, db, &res, "set-status", orderID, "pending")
	require.Equal(t, "ok", resp.Status, resp.Error)
	assert.Equal(t, model.OrderStatusPending, res.Order.Status)
	require.Len(t, res.StockMovements, 1)
	assert.Equal(t, -2, res.StockMovements[0].Delta)
	assert.Equal(t, 3, res.StockMovements[0].StockAfter)

	out, err := runShopctl(t, db, "set-status", orderID, "quote")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "status change rejected")

	out, err = runShopctl(t, db, "set-status", orderID, "cancelled")
	require.NoError(t, err)
	assert.Equal(t, "Order "+orderID+" is now cancelled (1 stock movements)\n", out)
}

func TestSetStatusCommandErrors(t *testing.T) {
	db := tempDB(t)

	_, err := runShopctl(t, db, "set-status", "abc", "shipped")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	resp := runJSON(t, db, nil, "set-status", "missing", "pending")
	assert.Equal(t, "error", resp.Status)
	assert.Contains(t, resp.Error, "order not found")
}
