package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nanduks/driver_logistics_app/internal/core/domain"
	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
	"github.com/nanduks/driver_logistics_app/internal/middleware"
)

// orderHandler handles order dispatch and lifecycle requests.
type orderHandler struct {
	orderService portssvc.OrderSvcFacade
}

func newOrderHandler(os portssvc.OrderSvcFacade) *orderHandler {
	return &orderHandler{orderService: os}
}

// registerOrderRoutes registers the bearer-protected order routes. Assignment
// is restricted to admin users inside the service.
func registerOrderRoutes(rg *gin.RouterGroup, orderService portssvc.OrderSvcFacade) {
	h := newOrderHandler(orderService)

	orders := rg.Group("/orders")
	{
		orders.POST("/assign", h.assignOrder)
		orders.PATCH("/:id/status", h.updateStatus)
		orders.GET("", h.listOrders)
	}
}

// assignOrder godoc
// @Summary Assign an order to a driver
// @Description Dispatches a new order on behalf of the authenticated admin. The driver must be available.
// @Tags orders
// @Accept json
// @Produce json
// @Param order body dto.AssignOrderRequest true "Order details"
// @Success 201 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Driver unavailable or invalid payload"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Caller is not an admin"
// @Failure 404 {object} ErrorResponse "Driver not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/assign [post]
func (h *orderHandler) assignOrder(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	adminUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	// The service re-checks the role against the store.
	if role, ok := middleware.GetUserRoleFromContext(c); !ok || role != string(domain.RoleAdmin) {
		c.JSON(http.StatusForbidden, ErrorResponse{Error: "Admin access required"})
		return
	}

	var req dto.AssignOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.AssignOrder(c.Request.Context(), adminUserID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Order assigned",
		slog.String("order_id", order.OrderID),
		slog.String("driver_id", order.DriverID),
		slog.String("admin_user_id", adminUserID))
	c.JSON(http.StatusCreated, dto.ToOrderResponse(order))
}

// updateStatus godoc
// @Summary Update the status of the bearer's order
// @Description Moves the order through its lifecycle. Delivery frees the driver and bumps their completed count.
// @Tags orders
// @Accept json
// @Produce json
// @Param id path string true "Order ID"
// @Param status body dto.UpdateOrderStatusRequest true "New status"
// @Success 200 {object} dto.OrderResponse
// @Failure 400 {object} ErrorResponse "Transition not allowed"
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Order belongs to another driver"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders/{id}/status [patch]
func (h *orderHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	driverID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	orderID := c.Param("id")
	var req dto.UpdateOrderStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	order, err := h.orderService.UpdateOrderStatus(c.Request.Context(), driverID, orderID, domain.OrderStatus(req.Status))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Order status updated",
		slog.String("order_id", order.OrderID),
		slog.String("status", string(order.Status)))
	c.JSON(http.StatusOK, dto.ToOrderResponse(order))
}

// listOrders godoc
// @Summary List the bearer's orders
// @Description Returns a page of the driver's orders, newest first.
// @Tags orders
// @Produce json
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListOrdersResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /orders [get]
func (h *orderHandler) listOrders(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	driverID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var params dto.ListOrdersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	orders, err := h.orderService.ListOrdersForDriver(c.Request.Context(), driverID, params.Limit, params.Offset)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToListOrdersResponse(orders))
}
