package handler

import (
	"net/http"
	"time"

	"musicshop/internal/service"
	"musicshop/pkg/response"

	"github.com/gin-gonic/gin"
)

type StatisticsHandler struct {
	statisticsService service.StatisticsService
	revenueService    service.RevenueService
}

func NewStatisticsHandler(statisticsService service.StatisticsService, revenueService service.RevenueService) *StatisticsHandler {
	return &StatisticsHandler{statisticsService: statisticsService, revenueService: revenueService}
}

func (h *StatisticsHandler) RegisterRoutes(router *gin.RouterGroup) {
	statsGroup := router.Group("/api/statistics")
	{
		statsGroup.GET("", h.GetStatistics)
		statsGroup.GET("/revenue", h.GetRevenue)
	}
}

// @Summary      Get Dashboard Statistics
// @Description  Catalog totals, stock alerts, order counts and values per status, top selling items
// @Tags         statistics
// @Produce      json
// @Param        start_date query string false "Start Date (RFC3339), open when omitted"
// @Param        end_date   query string false "End Date (RFC3339), open when omitted"
// @Success      200 {object} response.Response{data=model.StatisticsResponse}
// @Failure      400 {object} response.Response "Invalid date format"
// @Failure      500 {object} response.Response
// @Router       /api/statistics [get]
func (h *StatisticsHandler) GetStatistics(c *gin.Context) {
	startDate, endDate, ok := parseDateRange(c)
	if !ok {
		return
	}

	stats, err := h.statisticsService.GetStatistics(c.Request.Context(), startDate, endDate)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, stats))
}

// @Summary      Get Revenue
// @Description  Completed order revenue grouped by week, month, quarter or year
// @Tags         statistics
// @Produce      json
// @Param        group_by   query string false "week, month, quarter or year (default month)"
// @Param        start_date query string false "Start Date (RFC3339), open when omitted"
// @Param        end_date   query string false "End Date (RFC3339), open when omitted"
// @Success      200 {object} response.Response{data=[]service.RevenueDataPoint}
// @Failure      400 {object} response.Response "Invalid date format"
// @Failure      500 {object} response.Response
// @Router       /api/statistics/revenue [get]
func (h *StatisticsHandler) GetRevenue(c *gin.Context) {
	startDate, endDate, ok := parseDateRange(c)
	if !ok {
		return
	}

	points, err := h.revenueService.GetRevenue(c.Request.Context(), service.RevenueFilter{
		GroupBy:   c.DefaultQuery("group_by", "month"),
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Success(http.StatusOK, points))
}

// parseDateRange reads the optional start_date and end_date query values.
// It writes a 400 and returns false when either is malformed.
func parseDateRange(c *gin.Context) (time.Time, time.Time, bool) {
	var startDate, endDate time.Time
	var err error

	if s := c.Query("start_date"); s != "" {
		startDate, err = time.Parse(time.RFC3339, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid start_date format, expected RFC3339"))
			return time.Time{}, time.Time{}, false
		}
	}
	if s := c.Query("end_date"); s != "" {
		endDate, err = time.Parse(time.RFC3339, s)
		if err != nil {
			c.JSON(http.StatusBadRequest, response.Error(http.StatusBadRequest, "invalid end_date format, expected RFC3339"))
			return time.Time{}, time.Time{}, false
		}
	}
	return startDate.UTC(), endDate.UTC(), true
}
