// Package sku derives human-readable catalog codes of the form
// BRAND + [COLOR VARIANT] + SEQUENCE, e.g. RM + B1 + 021 = RMB1021.
package sku

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"

	"musicshop/internal/model"
)

// ErrBrandTooShort is returned when the brand cannot supply two characters
var ErrBrandTooShort = errors.New("brand must have at least 2 characters")

// Generate builds a candidate SKU for a new product. It does not check that
// the result is unused; see Exists.
func Generate(brand, color string, existing []model.Product) (string, error) {
	b := []rune(norm.NFC.String(strings.TrimSpace(brand)))
	if len(b) < 2 {
		return "", ErrBrandTooShort
	}
	brandID := cases.Upper(language.Und).String(string(b[:2]))

	colorID := ""
	if letter, ok := firstLetter(color); ok {
		variant := 1
		for _, p := range existing {
			if !sameText(p.Brand, brand) {
				continue
			}
			if l, ok := firstLetter(p.Color); ok && l == letter {
				variant++
			}
		}
		colorID = fmt.Sprintf("%s%d", letter, variant)
	}

	return fmt.Sprintf("%s%s%03d", brandID, colorID, len(existing)+1), nil
}

// Exists reports whether sku is already used, ignoring case
func Exists(sku string, products []model.Product) bool {
	for _, p := range products {
		if sameText(p.SKU, sku) {
			return true
		}
	}
	return false
}

// firstLetter returns the upper-cased first character of a non-blank value
func firstLetter(s string) (string, bool) {
	r := []rune(norm.NFC.String(strings.TrimSpace(s)))
	if len(r) == 0 {
		return "", false
	}
	return cases.Upper(language.Und).String(string(r[0])), true
}

// sameText compares case-insensitively. Casers are stateful, so one is built
// per call.
func sameText(a, b string) bool {
	fold := cases.Fold()
	return fold.String(norm.NFC.String(strings.TrimSpace(a))) == fold.String(norm.NFC.String(strings.TrimSpace(b)))
}
