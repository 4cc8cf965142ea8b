package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/trip_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trip_ledger_app/internal/core/services"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
	"github.com/SscSPs/trip_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ledgerEventName names the server-sent events of the ledger stream.
const ledgerEventName = "ledger"

// ledgerHandler serves the derived views of a trip's expenses.
type ledgerHandler struct {
	expenseService portssvc.ExpenseSvcFacade
}

// newLedgerHandler creates a new ledgerHandler.
func newLedgerHandler(es portssvc.ExpenseSvcFacade) *ledgerHandler {
	return &ledgerHandler{
		expenseService: es,
	}
}

// registerLedgerRoutes registers ledger routes under a single trip group.
func registerLedgerRoutes(trip *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newLedgerHandler(expenseService)

	ledger := trip.Group("/ledger")
	{
		ledger.GET("/summary", h.getSummary)
		ledger.GET("/settlements", h.getSettlements)
		ledger.POST("/split-preview", h.previewSplit)
	}
}

// registerLedgerStreamRoute registers the live ledger stream. The group's
// auth may read the token from the query string.
func registerLedgerStreamRoute(trip *gin.RouterGroup, expenseService portssvc.ExpenseSvcFacade) {
	h := newLedgerHandler(expenseService)
	trip.GET("/ledger/stream", h.streamLedger)
}

// getSummary godoc
// @Summary Get the expense summary of a trip
// @Description Totals by category and member balances, measured against the trip budget.
// @Tags ledger
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Success 200 {object} dto.ExpenseSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to build summary"
// @Security BearerAuth
// @Router /trips/{trip_id}/ledger/summary [get]
func (h *ledgerHandler) getSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	summary, err := h.expenseService.GetExpenseSummary(c.Request.Context(), c.Param("trip_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to build summary")
		return
	}

	c.JSON(http.StatusOK, dto.ToExpenseSummaryResponse(summary))
}

// getSettlements godoc
// @Summary Get the settlement plan of a trip
// @Description Lists the payments that bring every member balance to zero.
// @Tags ledger
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Success 200 {object} dto.SettlementsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to plan settlements"
// @Security BearerAuth
// @Router /trips/{trip_id}/ledger/settlements [get]
func (h *ledgerHandler) getSettlements(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	settlements, err := h.expenseService.GetSettlements(c.Request.Context(), c.Param("trip_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to plan settlements")
		return
	}

	c.JSON(http.StatusOK, dto.ToSettlementsResponse(settlements))
}

// previewSplit godoc
// @Summary Preview an equal split
// @Description Shows the shares an amount would be split into, without recording anything.
// @Tags ledger
// @Accept  json
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Param   preview body dto.SplitPreviewRequest true "Amount and participants"
// @Success 200 {object} dto.SplitPreviewResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to preview split"
// @Security BearerAuth
// @Router /trips/{trip_id}/ledger/split-preview [post]
func (h *ledgerHandler) previewSplit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.SplitPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for PreviewSplit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	splits, err := h.expenseService.PreviewEqualSplit(c.Request.Context(), c.Param("trip_id"), req.Amount, req.Participants, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to preview split")
		return
	}

	c.JSON(http.StatusOK, dto.ToSplitPreviewResponse(req.Amount, splits))
}

// streamLedger godoc
// @Summary Stream the ledger of a trip
// @Description Server-sent events. A "ledger" event carries a fresh snapshot on connect and after every expense change.
// @Description Browsers may pass the token as the access_token query parameter.
// @Tags ledger
// @Produce  text/event-stream
// @Param   trip_id path string true "Trip ID"
// @Success 200 {object} dto.LedgerSnapshotResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 503 {object} map[string]string "Live updates unavailable"
// @Security BearerAuth
// @Router /trips/{trip_id}/ledger/stream [get]
func (h *ledgerHandler) streamLedger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	tripID := c.Param("trip_id")

	snapshots, err := h.expenseService.WatchLedger(c.Request.Context(), tripID, userID)
	if err != nil {
		if errors.Is(err, services.ErrFeedUnavailable) {
			logger.Warn("Ledger stream requested without a feed", slog.String("trip_id", tripID))
			c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Live updates unavailable"})
			return
		}
		respondServiceError(c, err, "Failed to open ledger stream")
		return
	}

	logger.Info("Ledger stream opened", slog.String("trip_id", tripID))
	c.Header("Cache-Control", "no-cache")
	c.Header("X-Accel-Buffering", "no")

	c.Stream(func(w io.Writer) bool {
		snap, open := <-snapshots
		if !open {
			return false
		}
		c.SSEvent(ledgerEventName, dto.ToLedgerSnapshotResponse(&snap))
		return true
	})
	logger.Info("Ledger stream closed", slog.String("trip_id", tripID))
}
