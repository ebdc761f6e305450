// Package snapshot reads and writes the three JSON documents that hold the
// shop state: the catalog, the orders and the cost configuration. Each
// document is independent; a broken one never prevents the others loading.
package snapshot

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"musicshop/internal/model"
)

// Storage keys, also used as file names with a .json suffix
const (
	KeyProducts = "musicshop_products"
	KeyOrders   = "musicshop_orders"
	KeyConfig   = "musicshop_config"
)

// Snapshot is the decoded shop state
type Snapshot struct {
	Products []model.Product `json:"products"`
	Orders   []model.Order   `json:"orders"`
	Config   model.AppConfig `json:"config"`
}

// Document carries the three raw documents, keyed by their storage names
type Document struct {
	Products json.RawMessage `json:"musicshop_products" swaggertype:"array,object"`
	Orders   json.RawMessage `json:"musicshop_orders" swaggertype:"array,object"`
	Config   json.RawMessage `json:"musicshop_config" swaggertype:"object"`
}

// Empty is the state of a shop that has never saved anything
func Empty() Snapshot {
	return Snapshot{
		Products: []model.Product{},
		Orders:   []model.Order{},
		Config:   model.DefaultAppConfig(),
	}
}

// ErrNothingToImport is returned when no document could be used
var ErrNothingToImport = errors.New("no usable snapshot document")

// Report lists the documents that were decoded and the ones present but
// discarded. Absent documents appear in neither.
type Report struct {
	Decoded   []string `json:"decoded"`
	Discarded []string `json:"discarded,omitempty"`
}

// Usable reports whether at least one document was decoded
func (r Report) Usable() bool {
	return len(r.Decoded) > 0
}

func (r *Report) note(key string, raw json.RawMessage, ok bool) {
	switch {
	case ok:
		r.Decoded = append(r.Decoded, key)
	case !isAbsent(raw):
		r.Discarded = append(r.Discarded, key)
	}
}

// Decode turns raw documents into state. Missing or malformed parts fall
// back to their empty value and are logged.
func Decode(doc Document) Snapshot {
	snap, _ := DecodeReport(doc)
	return snap
}

// DecodeReport is Decode that also tells which parts were used
func DecodeReport(doc Document) (Snapshot, Report) {
	snap := Empty()
	report := Report{Decoded: []string{}}

	products, ok := decodeProducts(doc.Products)
	if ok {
		snap.Products = products
	}
	report.note(KeyProducts, doc.Products, ok)

	orders, ok := decodeOrders(doc.Orders)
	if ok {
		snap.Orders = orders
	}
	report.note(KeyOrders, doc.Orders, ok)

	cfg, ok := decodeConfig(doc.Config)
	if ok {
		snap.Config = cfg
	}
	report.note(KeyConfig, doc.Config, ok)

	return snap, report
}

// Encode renders the state as raw documents
func Encode(snap Snapshot) (Document, error) {
	var doc Document
	var err error

	products := snap.Products
	if products == nil {
		products = []model.Product{}
	}
	if doc.Products, err = json.Marshal(products); err != nil {
		return Document{}, fmt.Errorf("encode products: %w", err)
	}

	orders := snap.Orders
	if orders == nil {
		orders = []model.Order{}
	}
	if doc.Orders, err = json.Marshal(orders); err != nil {
		return Document{}, fmt.Errorf("encode orders: %w", err)
	}

	if doc.Config, err = json.Marshal(snap.Config); err != nil {
		return Document{}, fmt.Errorf("encode config: %w", err)
	}
	return doc, nil
}

// Load reads the three documents from dir. It never fails: unreadable files
// are logged and treated as absent.
func Load(dir string) Snapshot {
	return Decode(Read(dir))
}

// LoadReport is Load that also tells which files were used
func LoadReport(dir string) (Snapshot, Report) {
	return DecodeReport(Read(dir))
}

// Read returns the raw documents found in dir; missing files stay nil
func Read(dir string) Document {
	return Document{
		Products: readFile(dir, KeyProducts),
		Orders:   readFile(dir, KeyOrders),
		Config:   readFile(dir, KeyConfig),
	}
}

// Save writes the three documents into dir, replacing each file atomically
func Save(dir string, snap Snapshot) error {
	doc, err := Encode(snap)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create snapshot dir: %w", err)
	}

	parts := []struct {
		key  string
		data json.RawMessage
	}{
		{KeyProducts, doc.Products},
		{KeyOrders, doc.Orders},
		{KeyConfig, doc.Config},
	}
	for _, p := range parts {
		if err := writeFile(dir, p.key, p.data); err != nil {
			return err
		}
	}
	return nil
}

// FileName returns the file a storage key is kept in
func FileName(key string) string {
	return key + ".json"
}

func readFile(dir, key string) json.RawMessage {
	data, err := os.ReadFile(filepath.Join(dir, FileName(key)))
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			log.Printf("snapshot: cannot read %s: %v", key, err)
		}
		return nil
	}
	return data
}

func writeFile(dir, key string, data []byte) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return fmt.Errorf("format %s: %w", key, err)
	}
	buf.WriteByte('\n')

	tmp, err := os.CreateTemp(dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := os.Rename(tmp.Name(), filepath.Join(dir, FileName(key))); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	return nil
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func decodeProducts(raw json.RawMessage) ([]model.Product, bool) {
	if isAbsent(raw) {
		return nil, false
	}
	var products []model.Product
	if err := json.Unmarshal(raw, &products); err != nil {
		log.Printf("snapshot: discarding malformed %s: %v", KeyProducts, err)
		return nil, false
	}
	seen := make(map[string]bool, len(products))
	for i, p := range products {
		if p.SKU == "" {
			log.Printf("snapshot: discarding %s: product %d has no sku", KeyProducts, i)
			return nil, false
		}
		if seen[p.SKU] {
			log.Printf("snapshot: discarding %s: duplicate sku %s", KeyProducts, p.SKU)
			return nil, false
		}
		seen[p.SKU] = true
	}
	return products, true
}

func decodeOrders(raw json.RawMessage) ([]model.Order, bool) {
	if isAbsent(raw) {
		return nil, false
	}
	var orders []model.Order
	if err := json.Unmarshal(raw, &orders); err != nil {
		log.Printf("snapshot: discarding malformed %s: %v", KeyOrders, err)
		return nil, false
	}
	seen := make(map[string]bool, len(orders))
	for i, o := range orders {
		if o.ID == "" || seen[o.ID] {
			log.Printf("snapshot: discarding %s: order %d has a missing or duplicate id", KeyOrders, i)
			return nil, false
		}
		seen[o.ID] = true
		if _, err := model.ParseOrderStatus(string(o.Status)); err != nil {
			log.Printf("snapshot: discarding %s: order %s: %v", KeyOrders, o.ID, err)
			return nil, false
		}
		// stored dates compare as text, so every order is kept in UTC
		orders[i].Date = o.Date.UTC()
		if orders[i].Items == nil {
			orders[i].Items = []model.OrderItem{}
		}
	}
	return orders, true
}

func decodeConfig(raw json.RawMessage) (model.AppConfig, bool) {
	if isAbsent(raw) {
		return model.AppConfig{}, false
	}
	// fields missing from the document keep their defaults
	cfg := model.DefaultAppConfig()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		log.Printf("snapshot: discarding malformed %s: %v", KeyConfig, err)
		return model.AppConfig{}, false
	}
	return cfg, true
}
