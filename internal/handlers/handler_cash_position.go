package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	"github.com/storebooks/cash_position_app/internal/core/domain"
	portssvc "github.com/storebooks/cash_position_app/internal/core/ports/services"
	"github.com/storebooks/cash_position_app/internal/dto"
	"github.com/storebooks/cash_position_app/internal/middleware"
)

// cashPositionHandler handles HTTP requests for the cash position
// matrix and the per-cell reconciliation drill-down.
type cashPositionHandler struct {
	cashPositionService portssvc.CashPositionSvcFacade
}

func newCashPositionHandler(cps portssvc.CashPositionSvcFacade) *cashPositionHandler {
	return &cashPositionHandler{
		cashPositionService: cps,
	}
}

// RegisterCashPositionRoutes registers routes related to cash positions.
func RegisterCashPositionRoutes(rg *gin.RouterGroup, cashPositionService portssvc.CashPositionSvcFacade) {
	h := newCashPositionHandler(cashPositionService)

	positions := rg.Group("/cash-positions")
	{
		positions.GET("", h.getCashPosition)
		positions.GET("/:locationID/days/:date", h.getCellDetail)
		positions.GET("/:locationID/movements", h.listMovements)
	}
}

// getCashPosition godoc
// @Summary Get the cash position matrix
// @Description Aggregates movements into the date x location flow matrix with derived current balances
// @Tags cash positions
// @Produce json
// @Param X-Company-ID header string true "Company scope"
// @Param startDate query string true "Range start (YYYY-MM-DD)"
// @Param endDate query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} dto.CashPositionResponse
// @Failure 400 {object} ErrorResponse "Invalid date range"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to build cash position"
// @Security BearerAuth
// @Router /cash-positions [get]
func (h *cashPositionHandler) getCashPosition(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	startDate, err := time.Parse(domain.LocalDateLayout, c.Query("startDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "startDate must be YYYY-MM-DD"})
		return
	}
	endDate, err := time.Parse(domain.LocalDateLayout, c.Query("endDate"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "endDate must be YYYY-MM-DD"})
		return
	}

	matrix, err := h.cashPositionService.BuildCashPosition(c.Request.Context(), companyID, startDate, endDate)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to build cash position", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to build cash position"})
		return
	}

	c.JSON(http.StatusOK, dto.ToCashPositionResponse(matrix))
}

// getCellDetail godoc
// @Summary Get the reconciliation drill-down for one cell
// @Description Returns the discrepancy report, ledger balance rows, denomination changes and journal lines for one location and local date. Sections backed by failed fetches are flagged unavailable.
// @Tags cash positions
// @Produce json
// @Param X-Company-ID header string true "Company scope"
// @Param locationID path string true "Cash location ID"
// @Param date path string true "Local date (YYYY-MM-DD)"
// @Success 200 {object} dto.CashPositionDetailResponse
// @Failure 400 {object} ErrorResponse "Invalid date"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 500 {object} ErrorResponse "Failed to reconcile"
// @Security BearerAuth
// @Router /cash-positions/{locationID}/days/{date} [get]
func (h *cashPositionHandler) getCellDetail(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	locationID := c.Param("locationID")
	localDate := c.Param("date")

	detail, err := h.cashPositionService.ReconcileCell(c.Request.Context(), companyID, locationID, localDate)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Cash location not found"})
		default:
			logger.Error("Failed to reconcile cell",
				slog.String("location_id", locationID),
				slog.String("local_date", localDate),
				slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to reconcile cash position cell"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToCashPositionDetailResponse(detail))
}

// listMovements godoc
// @Summary List a location's raw movements
// @Description Returns one location's movements newest first with token pagination
// @Tags cash positions
// @Produce json
// @Param X-Company-ID header string true "Company scope"
// @Param locationID path string true "Cash location ID"
// @Param limit query int false "Page size" default(50)
// @Param nextToken query string false "Pagination token from the previous page"
// @Success 200 {object} dto.MovementListResponse
// @Failure 400 {object} ErrorResponse "Invalid pagination token"
// @Failure 500 {object} ErrorResponse "Failed to list movements"
// @Security BearerAuth
// @Router /cash-positions/{locationID}/movements [get]
func (h *cashPositionHandler) listMovements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	companyID, ok := companyIDFromRequest(c)
	if !ok {
		return
	}

	locationID := c.Param("locationID")
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	nextToken := c.Query("nextToken")

	movements, token, err := h.cashPositionService.ListMovements(c.Request.Context(), companyID, locationID, limit, nextToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to list movements", slog.String("location_id", locationID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list movements"})
		return
	}

	c.JSON(http.StatusOK, dto.MovementListResponse{Movements: movements, NextToken: token})
}
