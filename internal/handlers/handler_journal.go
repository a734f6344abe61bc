package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/storebooks/cash_position_app/internal/apperrors"
	portssvc "github.com/storebooks/cash_position_app/internal/core/ports/services"
	"github.com/storebooks/cash_position_app/internal/dto"
	"github.com/storebooks/cash_position_app/internal/middleware"
)

// journalHandler handles HTTP requests for the journal drill-down.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers routes related to journals.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := rg.Group("/journals")
	{
		journals.GET("/:journalID", h.getJournal)
	}
}

// getJournal godoc
// @Summary Get a journal's lines and totals
// @Description Returns all lines of one journal with debit/credit/net totals
// @Tags journals
// @Produce json
// @Param journalID path string true "Journal ID"
// @Success 200 {object} dto.JournalDetailResponse
// @Failure 404 {object} ErrorResponse "Journal not found"
// @Failure 500 {object} ErrorResponse "Failed to get journal"
// @Security BearerAuth
// @Router /journals/{journalID} [get]
func (h *journalHandler) getJournal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	journalID := c.Param("journalID")

	lines, totals, err := h.journalService.GetJournalLines(c.Request.Context(), journalID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Journal not found"})
			return
		}
		logger.Error("Failed to get journal", slog.String("journal_id", journalID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get journal"})
		return
	}

	c.JSON(http.StatusOK, dto.JournalDetailResponse{
		JournalID: journalID,
		Lines:     lines,
		Totals:    totals,
	})
}
