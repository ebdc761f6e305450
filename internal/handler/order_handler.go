package handler

import (
	"net/http"

	"musicshop/internal/service"
	"musicshop/pkg/pagination"
	"musicshop/pkg/response"

	"github.com/gin-gonic/gin"
)

type OrderHandler struct {
	orderService service.OrderService
}

func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

func (h *OrderHandler) RegisterRoutes(router *gin.RouterGroup) {
	orders := router.Group("/api/orders")
	{
		orders.GET("", h.ListOrders)
		orders.POST("", h.CreateOrder)
		orders.GET("/:id", h.GetOrder)
		orders.PATCH("/:id", h.UpdateOrder)
		orders.DELETE("/:id", h.DeleteOrder)
		orders.POST("/:id/advance", h.AdvanceOrder)
		orders.POST("/:id/move", h.MoveOrder)
	}
}

// ListOrders lists orders newest first
// @Summary      List orders
// @Tags         orders
// @Produce      json
// @Param        tab     query     string  false  "quotes, active, history or all (default)"
// @Param        search  query     string  false  "Customer name or order id"
// @Param        page    query     int     false  "Page number (default 1)"
// @Param        limit   query     int     false  "Number of items per page (default 20)"
// @Success      200     {object}  response.Response{data=object}
// @Failure      400     {object}  response.Response
// @Failure      500     {object}  response.Response
// @Router       /api/orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	p := pagination.Parse(c)

	orders, total, err := h.orderService.ListOrders(c.Request.Context(), service.OrderListFilter{
		Tab:    service.OrderTab(c.Query("tab")),
		Search: c.Query("search"),
		Page:   p.Page,
		Limit:  p.Limit,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, response.Paged("orders", orders, total, p.Page, p.Limit))
}

// CreateOrder stores a new quote or confirmed order
// @Summary      Create order
// @Description  Creates an order. Orders created as pending take their items out of stock immediately.
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        payload  body      service.CreateOrderRequest  true  "Order"
// @Success      201      {object}  response.Response{data=service.OrderResult}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response "Unknown SKU"
// @Failure      500      {object}  response.Response
// @Router       /api/orders [post]
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req service.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res, err := h.orderService.CreateOrder(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.Success(http.StatusCreated, res))
}

// GetOrder returns one order with its items
// @Summary      Get order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.Response{data=model.Order}
// @Failure      404  {object}  response.Response
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	order, err := h.orderService.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, order))
}

// UpdateOrder changes the status and/or customer name
// @Summary      Update order
// @Description  Moves the order to a new status, applying the stock change the move implies
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                      true  "Order ID"
// @Param        payload  body      service.UpdateOrderRequest  true  "Changes"
// @Success      200      {object}  response.Response{data=service.OrderResult}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response "Transition not allowed"
// @Router       /api/orders/{id} [patch]
func (h *OrderHandler) UpdateOrder(c *gin.Context) {
	var req service.UpdateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res, err := h.orderService.UpdateOrder(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// DeleteOrder removes an order without touching stock
// @Summary      Delete order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.Response
// @Failure      404  {object}  response.Response
// @Router       /api/orders/{id} [delete]
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	if err := h.orderService.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, "Order deleted successfully"))
}

// AdvanceOrder moves an order one step along the pipeline
// @Summary      Advance order
// @Tags         orders
// @Produce      json
// @Param        id   path      string  true  "Order ID"
// @Success      200  {object}  response.Response{data=service.OrderResult}
// @Failure      404  {object}  response.Response
// @Failure      409  {object}  response.Response
// @Router       /api/orders/{id}/advance [post]
func (h *OrderHandler) AdvanceOrder(c *gin.Context) {
	res, err := h.orderService.AdvanceOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}

// MoveOrder drops an order onto a board column
// @Summary      Move order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Param        id       path      string                    true  "Order ID"
// @Param        payload  body      service.MoveOrderRequest  true  "Target column"
// @Success      200      {object}  response.Response{data=service.OrderResult}
// @Failure      400      {object}  response.Response
// @Failure      404      {object}  response.Response
// @Failure      409      {object}  response.Response
// @Router       /api/orders/{id}/move [post]
func (h *OrderHandler) MoveOrder(c *gin.Context) {
	var req service.MoveOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err)
		return
	}

	res, err := h.orderService.MoveOrder(c.Request.Context(), c.Param("id"), req.Column)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.Success(http.StatusOK, res))
}
