// Package pagination turns page/limit query values into the offsets used by
// the catalog and order lists.
package pagination

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultPage  = 1
	DefaultLimit = 20  // one screen of the inventory table
	MaxLimit     = 100 // larger exports go through export.csv
	MinLimit     = 1
)

// Params is a clamped page request
type Params struct {
	Page   int
	Limit  int
	Offset int
}

// Parse reads ?page= and ?limit=. Missing or non-numeric values fall back to
// the defaults instead of failing the request.
func Parse(c *gin.Context) Params {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil {
		page = DefaultPage
	}
	limit, err := strconv.Atoi(c.Query("limit"))
	if err != nil {
		limit = DefaultLimit
	}
	return Normalize(page, limit)
}

// Normalize clamps page and limit for callers outside HTTP, such as the
// services and shopctl
func Normalize(page, limit int) Params {
	switch {
	case limit < MinLimit:
		limit = DefaultLimit
	case limit > MaxLimit:
		limit = MaxLimit
	}
	page = max(page, DefaultPage)

	return Params{Page: page, Limit: limit, Offset: (page - 1) * limit}
}
