package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nanduks/driver_logistics_app/internal/core/ports/services"
	"github.com/nanduks/driver_logistics_app/internal/dto"
	"github.com/nanduks/driver_logistics_app/internal/middleware"
)

// locationHandler handles driver position reports.
type locationHandler struct {
	locationService portssvc.LocationSvcFacade
}

func newLocationHandler(ls portssvc.LocationSvcFacade) *locationHandler {
	return &locationHandler{locationService: ls}
}

// registerLocationRoutes registers the bearer-protected location routes.
func registerLocationRoutes(rg *gin.RouterGroup, locationService portssvc.LocationSvcFacade) {
	h := newLocationHandler(locationService)

	locations := rg.Group("/locations")
	{
		locations.POST("", h.recordLocation)
		locations.GET("/latest", h.latestLocation)
	}
}

// recordLocation godoc
// @Summary Report the bearer's position
// @Description Appends a location point and updates the driver's current coordinates.
// @Tags locations
// @Accept json
// @Produce json
// @Param location body dto.RecordLocationRequest true "Position report"
// @Success 201 {object} dto.LocationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /locations [post]
func (h *locationHandler) recordLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	var req dto.RecordLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request body: " + err.Error()})
		return
	}

	location, err := h.locationService.RecordLocation(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToLocationResponse(location))
}

// latestLocation godoc
// @Summary Get the bearer's latest reported position
// @Tags locations
// @Produce json
// @Success 200 {object} dto.LocationResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "No position reported yet"
// @Security BearerAuth
// @Router /locations/latest [get]
func (h *locationHandler) latestLocation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Unauthorized"})
		return
	}

	location, err := h.locationService.GetLatestLocation(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToLocationResponse(location))
}
