package snapshot

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicshop/internal/model"
)

func sampleSnapshot() Snapshot {
	return Snapshot{
		Products: []model.Product{
			{SKU: "RE001", Name: "Roland FP-30", Brand: "Roland", CostUSD: 100, Weight: 1, Stock: 5, MinStock: 2, MaxStock: 20, Price: 8000},
			{SKU: "YAB1002", Name: "Yamaha Pacifica", Brand: "Yamaha", Color: "Black", Stock: -1, Price: 15000},
		},
		Orders: []model.Order{
			{
				ID:           "2b7f0c4e-6d9a-4c3e-8f7b-1a2b3c4d5e6f",
				CustomerName: "Ana",
				Date:         time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
				Items: []model.OrderItem{
					{SKU: "RE001", Name: "Roland FP-30", Quantity: 2, Price: 8000, Total: 16000},
				},
				Total:  16000,
				Status: model.OrderStatusPending,
			},
		},
		Config: model.AppConfig{ExchangeRate: 58, CourierRate: 300, Packaging: 40},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	snap := sampleSnapshot()

	require.NoError(t, Save(dir, snap))
	for _, key := range []string{KeyProducts, KeyOrders, KeyConfig} {
		assert.FileExists(t, filepath.Join(dir, FileName(key)))
	}

	assert.Equal(t, snap, Load(dir))
}

func TestLoadMissingDirectory(t *testing.T) {
	assert.Equal(t, Empty(), Load(filepath.Join(t.TempDir(), "nothing-here")))
}

func TestLoadDiscardsOnlyTheMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	snap := sampleSnapshot()
	require.NoError(t, Save(dir, snap))
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(KeyOrders)), []byte("{not json"), 0o644))

	got := Load(dir)
	assert.Equal(t, snap.Products, got.Products)
	assert.Equal(t, snap.Config, got.Config)
	assert.Empty(t, got.Orders)
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name string
		doc  Document
		want Snapshot
	}{
		{
			name: "null documents",
			doc:  Document{Products: json.RawMessage("null"), Orders: json.RawMessage(" null "), Config: json.RawMessage("null")},
			want: Empty(),
		},
		{
			name: "wrong shape",
			doc:  Document{Products: json.RawMessage(`{"sku":"X"}`), Orders: json.RawMessage(`"x"`), Config: json.RawMessage(`[1,2]`)},
			want: Empty(),
		},
		{
			name: "product without sku",
			doc:  Document{Products: json.RawMessage(`[{"name":"Nameless"}]`)},
			want: Empty(),
		},
		{
			name: "duplicate sku",
			doc:  Document{Products: json.RawMessage(`[{"sku":"A1"},{"sku":"A1"}]`)},
			want: Empty(),
		},
		{
			name: "unknown order status",
			doc:  Document{Orders: json.RawMessage(`[{"id":"o1","status":"shipped","items":[]}]`)},
			want: Empty(),
		},
		{
			name: "partial config keeps defaults",
			doc:  Document{Config: json.RawMessage(`{"exchangeRate":61}`)},
			want: Snapshot{
				Products: []model.Product{},
				Orders:   []model.Order{},
				Config:   model.AppConfig{ExchangeRate: 61, CourierRate: 250, Packaging: 50},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Decode(tt.doc))
		})
	}
}

func TestDecodeOrderDatesInUTC(t *testing.T) {
	snap := Decode(Document{Orders: json.RawMessage(`[
		{"id":"o1","customerName":"Ana","date":"2026-01-31T22:30:00-05:00","status":"completed","items":[]},
		{"id":"o2","customerName":"Bo","date":"2026-02-01T01:00:00Z","status":"completed","items":[]}
	]`)})
	require.Len(t, snap.Orders, 2)

	assert.Equal(t, time.UTC, snap.Orders[0].Date.Location())
	assert.Equal(t, "2026-02-01T03:30:00Z", snap.Orders[0].Date.Format(time.RFC3339))
	assert.Equal(t, "2026-02-01T01:00:00Z", snap.Orders[1].Date.Format(time.RFC3339))
}

func TestDecodeReport(t *testing.T) {
	tests := []struct {
		name   string
		doc    Document
		want   Report
		usable bool
	}{
		{
			name: "nothing present",
			doc:  Document{},
			want: Report{Decoded: []string{}},
		},
		{
			name: "null documents count as absent",
			doc:  Document{Products: json.RawMessage("null"), Orders: json.RawMessage("null")},
			want: Report{Decoded: []string{}},
		},
		{
			name: "everything malformed",
			doc:  Document{Products: json.RawMessage(`{`), Orders: json.RawMessage(`"x"`), Config: json.RawMessage(`[1]`)},
			want: Report{Decoded: []string{}, Discarded: []string{KeyProducts, KeyOrders, KeyConfig}},
		},
		{
			name:   "one usable document",
			doc:    Document{Products: json.RawMessage(`[{"sku":"A1"}]`), Orders: json.RawMessage(`nope`)},
			want:   Report{Decoded: []string{KeyProducts}, Discarded: []string{KeyOrders}},
			usable: true,
		},
		{
			name:   "empty arrays are usable",
			doc:    Document{Products: json.RawMessage(`[]`), Orders: json.RawMessage(`[]`), Config: json.RawMessage(`{}`)},
			want:   Report{Decoded: []string{KeyProducts, KeyOrders, KeyConfig}},
			usable: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, report := DecodeReport(tt.doc)
			assert.Equal(t, tt.want, report)
			assert.Equal(t, tt.usable, report.Usable())
		})
	}
}

func TestLoadReportMissingDirectory(t *testing.T) {
	snap, report := LoadReport(filepath.Join(t.TempDir(), "nothing-here"))
	assert.Equal(t, Empty(), snap)
	assert.False(t, report.Usable())
}

func TestDecodeOrderWithoutItems(t *testing.T) {
	snap := Decode(Document{Orders: json.RawMessage(`[{"id":"o1","customerName":"Bo","status":"quote"}]`)})
	require.Len(t, snap.Orders, 1)
	assert.NotNil(t, snap.Orders[0].Items)
	assert.Empty(t, snap.Orders[0].Items)
}

func TestEncodeUsesStorageFieldNames(t *testing.T) {
	doc, err := Encode(sampleSnapshot())
	require.NoError(t, err)

	var products []map[string]interface{}
	require.NoError(t, json.Unmarshal(doc.Products, &products))
	assert.Contains(t, products[0], "costUsd")
	assert.Contains(t, products[0], "minStock")
	assert.NotContains(t, products[0], "color")

	var orders []map[string]interface{}
	require.NoError(t, json.Unmarshal(doc.Orders, &orders))
	assert.Contains(t, orders[0], "customerName")

	empty, err := Encode(Snapshot{})
	require.NoError(t, err)
	assert.JSONEq(t, "[]", string(empty.Products))
	assert.JSONEq(t, "[]", string(empty.Orders))
}
