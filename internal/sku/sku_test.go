package sku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"musicshop/internal/model"
)

func TestGenerateBrandOnly(t *testing.T) {
	got, err := Generate("Redmond", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "RE001", got)
}

func TestGenerateSequenceCountsWholeCatalog(t *testing.T) {
	existing := []model.Product{
		{SKU: "RE001", Brand: "Redmond"},
		{SKU: "RE002", Brand: "Redmond"},
	}

	got, err := Generate("Redmond", "", existing)
	require.NoError(t, err)
	assert.Equal(t, "RE003", got)
}

func TestGenerateColorVariant(t *testing.T) {
	existing := []model.Product{
		{SKU: "CAW1001", Brand: "Casio", Color: "white"},
	}

	got, err := Generate("Casio", "White", existing)
	require.NoError(t, err)
	assert.Equal(t, "CAW2002", got)
}

func TestGenerateColorVariantMatchesBrandAndLetter(t *testing.T) {
	existing := []model.Product{
		{Brand: "Roland", Color: "Black"},
		{Brand: "roland", Color: "blue"},
		{Brand: "Roland", Color: "Red"},
		{Brand: "Yamaha", Color: "Black"},
		{Brand: "Roland"},
	}

	got, err := Generate("ROLAND", "Burgundy", existing)
	require.NoError(t, err)
	assert.Equal(t, "ROB3006", got)
}

func TestGenerateBlankColorIsIgnored(t *testing.T) {
	got, err := Generate("Fender", "   ", []model.Product{{Brand: "Fender", Color: "Sunburst"}})
	require.NoError(t, err)
	assert.Equal(t, "FE002", got)
}

func TestGenerateUnicodeBrand(t *testing.T) {
	got, err := Generate("ñandú", "ébano", nil)
	require.NoError(t, err)
	assert.Equal(t, "ÑAÉ1001", got)
}

func TestGenerateBrandTooShort(t *testing.T) {
	for _, brand := range []string{"", "R", "  Y  "} {
		_, err := Generate(brand, "", nil)
		assert.ErrorIs(t, err, ErrBrandTooShort, "brand %q", brand)
	}
}

func TestGenerateDoesNotMutateInput(t *testing.T) {
	existing := []model.Product{{SKU: "RE001", Brand: "Redmond", Color: "Black"}}
	_, err := Generate("Redmond", "Black", existing)
	require.NoError(t, err)
	assert.Equal(t, []model.Product{{SKU: "RE001", Brand: "Redmond", Color: "Black"}}, existing)
}

func TestExists(t *testing.T) {
	products := []model.Product{{SKU: "RMB1021"}, {SKU: "CAW1002"}}

	assert.True(t, Exists("rmb1021", products))
	assert.True(t, Exists("CAW1002", products))
	assert.False(t, Exists("RMB1022", products))
	assert.False(t, Exists("RMB1021", nil))
}
