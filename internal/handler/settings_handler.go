package handler

import (
	"net/http"

	"musicshop/internal/service"
	"musicshop/pkg/response"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	settingsService service.SettingsService
}

func NewSettingsHandler(settingsService service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

func (h *SettingsHandler) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	{
		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.UpdateSettings)
		api.POST("/landed-cost", h.LandedCost)
	}
}

// GetSettings returns the cost configuration
// @Summary      Get settings
// @Tags         settings
// @Produce      json
// @Success      200  {object}  response.Response{data=model.AppConfig}
// @Failure      500  {object}  response.Response
// @Router       /api/settings [get]
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	cfg, err := h.settingsService.GetConfig(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cfg))
}

// UpdateSettings changes exchange rate, courier rate or packaging fee
// @Summary      Update settings
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.UpdateSettingsRequest  true  "Fields to change"
// @Success      200      {object}  response.Response{data=model.AppConfig}
// @Failure      400      {object}  response.Response
// @Router       /api/settings [put]
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req service.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	cfg, err := h.settingsService.UpdateConfig(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, cfg))
}

// LandedCost prices an imported unit with the stored configuration
// @Summary      Landed cost
// @Description  unit_cost*exchange_rate + weight*courier_rate + packaging
// @Tags         settings
// @Accept       json
// @Produce      json
// @Param        payload  body      service.LandedCostRequest  true  "Unit cost (USD) and weight"
// @Success      200      {object}  response.Response{data=service.LandedCostResponse}
// @Failure      400      {object}  response.Response
// @Router       /api/landed-cost [post]
func (h *SettingsHandler) LandedCost(c *gin.Context) {
	var req service.LandedCostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res, err := h.settingsService.LandedCost(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}
