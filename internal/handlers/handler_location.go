package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/storebooks/cash_position_app/internal/core/ports/services"
	"github.com/storebooks/cash_position_app/internal/dto"
	"github.com/storebooks/cash_position_app/internal/middleware"
)

// cashLocationHandler handles HTTP requests related to cash locations.
type cashLocationHandler struct {
	locationService portssvc.CashLocationSvcFacade
}

func newCashLocationHandler(ls portssvc.CashLocationSvcFacade) *cashLocationHandler {
	return &cashLocationHandler{
		locationService: ls,
	}
}

// registerCashLocationRoutes registers routes related to cash locations.
func registerCashLocationRoutes(rg *gin.RouterGroup, locationService portssvc.CashLocationSvcFacade) {
	h := newCashLocationHandler(locationService)

	locations := rg.Group("/cash-locations")
	{
		locations.GET("", h.listCashLocations)
	}
}

// listCashLocations godoc
// @Summary List cash locations
// @Description Returns the company's cash locations sorted by store then name
// @Tags cash locations
// @Produce json
// @Param X-Company-ID header string true "Company scope"
// @Success 200 {array} dto.CashLocationResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list cash locations"
// @Security BearerAuth
// @Router /cash-locations [get]
func (h *cashLocationHandler) listCashLocations(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	locations, err := h.locationService.ListCashLocations(c.Request.Context(), companyID)
	if err != nil {
		logger.Error("Failed to list cash locations", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list cash locations"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListCashLocationResponse(locations))
}
