package handler

import (
	"net/http"

	"musicshop/internal/service"
	"musicshop/internal/snapshot"
	"musicshop/pkg/response"

	"github.com/gin-gonic/gin"
)

type SnapshotHandler struct {
	snapshotService service.SnapshotService
}

func NewSnapshotHandler(snapshotService service.SnapshotService) *SnapshotHandler {
	return &SnapshotHandler{snapshotService: snapshotService}
}

func (h *SnapshotHandler) RegisterRoutes(router *gin.RouterGroup) {
	snap := router.Group("/api/snapshot")
	{
		snap.GET("", h.ExportSnapshot)
		snap.PUT("", h.ImportSnapshot)
	}
}

// ExportSnapshot returns the products, orders and config documents
// @Summary      Export snapshot
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  response.Response{data=snapshot.Document}
// @Failure      500  {object}  response.Response
// @Router       /api/snapshot [get]
func (h *SnapshotHandler) ExportSnapshot(c *gin.Context) {
	snap, err := h.snapshotService.Export(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	doc, err := snapshot.Encode(snap)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, doc))
}

// ImportSnapshot replaces the whole shop state
// @Summary      Import snapshot
// @Description  Replaces catalog, orders and config. Malformed documents are discarded and replaced by empty defaults; a payload with no usable document is rejected. No stock changes are applied.
// @Tags         snapshot
// @Accept       json
// @Produce      json
// @Param        payload  body      snapshot.Document  true  "Snapshot documents"
// @Success      200      {object}  response.Response{data=object}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/snapshot [put]
func (h *SnapshotHandler) ImportSnapshot(c *gin.Context) {
	var doc snapshot.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		respondBadRequest(c, err)
		return
	}

	snap, report := snapshot.DecodeReport(doc)
	if !report.Usable() {
		respondBadRequest(c, snapshot.ErrNothingToImport)
		return
	}
	if err := h.snapshotService.Import(c.Request.Context(), snap); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, map[string]interface{}{
		"products":  len(snap.Products),
		"orders":    len(snap.Orders),
		"decoded":   report.Decoded,
		"discarded": report.Discarded,
	}))
}
