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

// vehicleHandler handles vehicle registration requests.
type vehicleHandler struct {
	vehicleService portssvc.VehicleSvcFacade
}

func newVehicleHandler(vs portssvc.VehicleSvcFacade) *vehicleHandler {
	return &vehicleHandler{vehicleService: vs}
}

// registerVehicleRoutes registers the bearer-protected vehicle routes.
func registerVehicleRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleSvcFacade) {
	h := newVehicleHandler(vehicleService)

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.registerVehicle)
		vehicles.GET("/me", h.getMyVehicle)
		vehicles.PATCH("/:id/status", h.updateStatus)
	}
}

// registerVehicle godoc
// @Summary Register the bearer's vehicle
// @Description Registers a vehicle for the authenticated driver. The vehicle number must be unique.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param vehicle body dto.RegisterVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Vehicle number already registered"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles [post]
func (h *vehicleHandler) registerVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RegisterVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	vehicle, err := h.vehicleService.RegisterVehicle(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Vehicle registered",
		slog.String("user_id", userID),
		slog.String("vehicle_id", vehicle.VehicleID))
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle))
}

// getMyVehicle godoc
// @Summary Get the bearer's vehicle
// @Tags vehicles
// @Produce json
// @Success 200 {object} dto.VehicleResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No vehicle registered"
// @Security BearerAuth
// @Router /vehicles/me [get]
func (h *vehicleHandler) getMyVehicle(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vehicle, err := h.vehicleService.GetVehicleForUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}

// updateStatus godoc
// @Summary Update the status of the bearer's vehicle
// @Description Moves the vehicle between active, inactive and in_maintenance. Only the owning driver may change it.
// @Tags vehicles
// @Accept json
// @Produce json
// @Param id path string true "Vehicle ID"
// @Param status body dto.UpdateVehicleStatusRequest true "New status"
// @Success 200 {object} dto.VehicleResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse "Vehicle belongs to another driver"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /vehicles/{id}/status [patch]
func (h *vehicleHandler) updateStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	vehicleID := c.Param("id")
	var req dto.UpdateVehicleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	vehicle, err := h.vehicleService.UpdateVehicleStatus(c.Request.Context(), userID, vehicleID, domain.VehicleStatus(req.Status))
	if err != nil {
		respondError(c, logger, err)
		return
	}

	logger.Info("Vehicle status updated",
		slog.String("vehicle_id", vehicle.VehicleID),
		slog.String("status", string(vehicle.Status)))
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle))
}
