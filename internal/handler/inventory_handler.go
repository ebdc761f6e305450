package handler

import (
	"bytes"
	"net/http"

	"musicshop/internal/service"
	"musicshop/pkg/pagination"
	"musicshop/pkg/response"

	"github.com/gin-gonic/gin"
)

type InventoryHandler struct {
	inventoryService service.InventoryService
}

func NewInventoryHandler(inventoryService service.InventoryService) *InventoryHandler {
	return &InventoryHandler{inventoryService: inventoryService}
}

func (h *InventoryHandler) RegisterRoutes(router *gin.RouterGroup) {
	inventory := router.Group("/api/products")
	{
		inventory.GET("", h.GetProducts)
		inventory.PUT("", h.SaveProduct)
		inventory.GET("/export.csv", h.ExportCSV)
		inventory.POST("/sku", h.GenerateSKU)
		inventory.GET("/:sku", h.GetProduct)
		inventory.DELETE("/:sku", h.DeleteProduct)
	}
}

// GetProducts handles retrieving the paginated catalog
// @Summary      Get products
// @Description  Retrieves a paginated list of products with stock flags and landed cost
// @Tags         inventory
// @Produce      json
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Param        search  query     string  false  "Search by name, SKU or brand"
// @Success      200    {object}  response.Response{data=object}
// @Failure      500    {object}  response.Response
// @Router       /api/products [get]
func (h *InventoryHandler) GetProducts(c *gin.Context) {
	p := pagination.Parse(c)
	search := c.Query("search")

	products, total, err := h.inventoryService.GetProducts(c.Request.Context(), p.Page, p.Limit, search)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paged("products", products, total, p.Page, p.Limit))
}

// GetProduct returns one product by SKU
// @Summary      Get product
// @Tags         inventory
// @Produce      json
// @Param        sku  path      string  true  "Product SKU"
// @Success      200  {object}  response.Response{data=service.ProductResponse}
// @Failure      404  {object}  response.Response
// @Router       /api/products/{sku} [get]
func (h *InventoryHandler) GetProduct(c *gin.Context) {
	product, err := h.inventoryService.GetProduct(c.Request.Context(), c.Param("sku"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, product))
}

// SaveProduct creates a product or replaces the one with the same SKU
// @Summary      Save product
// @Description  Inserts a product, or replaces every field of the existing product with the same SKU
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        payload  body      service.SaveProductRequest  true  "Product"
// @Success      200      {object}  response.Response{data=service.ProductResponse}
// @Failure      400      {object}  response.Response
// @Failure      500      {object}  response.Response
// @Router       /api/products [put]
func (h *InventoryHandler) SaveProduct(c *gin.Context) {
	var req service.SaveProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	product, err := h.inventoryService.SaveProduct(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, product))
}

// DeleteProduct removes a product from the catalog
// @Summary      Delete product
// @Description  Deletes a product by SKU. Orders referencing it are kept.
// @Tags         inventory
// @Produce      json
// @Param        sku  path      string  true  "Product SKU"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /api/products/{sku} [delete]
func (h *InventoryHandler) DeleteProduct(c *gin.Context) {
	if err := h.inventoryService.DeleteProduct(c.Request.Context(), c.Param("sku")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Product deleted successfully"))
}

// GenerateSKU proposes a SKU for a new product
// @Summary      Generate SKU
// @Description  Builds a SKU from brand, optional color and catalog size, and reports whether it is taken
// @Tags         inventory
// @Accept       json
// @Produce      json
// @Param        payload  body      service.GenerateSKURequest  true  "Brand and color"
// @Success      200      {object}  response.Response{data=service.GenerateSKUResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/products/sku [post]
func (h *InventoryHandler) GenerateSKU(c *gin.Context) {
	var req service.GenerateSKURequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res, err := h.inventoryService.GenerateSKU(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// ExportCSV downloads the catalog as CSV
// @Summary      Export catalog
// @Tags         inventory
// @Produce      text/csv
// @Success      200  {string}  string
// @Failure      500  {object}  response.Response
// @Router       /api/products/export.csv [get]
func (h *InventoryHandler) ExportCSV(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.inventoryService.ExportCSV(c.Request.Context(), &buf); err != nil {
		respondError(c, err)
		return
	}
	c.Header("Content-Disposition", `attachment; filename="musicshop_inventory.csv"`)
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}
