package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/trip_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
	"github.com/SscSPs/trip_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// activityHandler handles HTTP requests for the itinerary of a trip.
type activityHandler struct {
	activityService portssvc.ActivitySvcFacade
}

// registerActivityRoutes registers itinerary routes under a single trip group.
func registerActivityRoutes(trip *gin.RouterGroup, activityService portssvc.ActivitySvcFacade) {
	h := &activityHandler{activityService: activityService}

	activities := trip.Group("/activities")
	{
		activities.POST("", h.createActivity)
		activities.GET("", h.listActivities)
		activities.GET("/:activity_id", h.getActivity)
		activities.PUT("/:activity_id", h.updateActivity)
		activities.DELETE("/:activity_id", h.deleteActivity)
	}
}

// createActivity godoc
// @Summary Add an itinerary entry
// @Description Adds an activity to the trip. Without an order it goes after the last entry of its day.
// @Tags activities
// @Accept  json
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Param   activity body dto.CreateActivityRequest true "Activity details"
// @Success 201 {object} dto.ActivityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to create activity"
// @Security BearerAuth
// @Router /trips/{trip_id}/activities [post]
func (h *activityHandler) createActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateActivity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	activity, err := h.activityService.CreateActivity(c.Request.Context(), c.Param("trip_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to create activity")
		return
	}

	c.JSON(http.StatusCreated, dto.ToActivityResponse(activity))
}

// listActivities godoc
// @Summary List the itinerary of a trip
// @Description Retrieves every activity ordered by date, then order.
// @Tags activities
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Success 200 {object} dto.ListActivitiesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to list activities"
// @Security BearerAuth
// @Router /trips/{trip_id}/activities [get]
func (h *activityHandler) listActivities(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	activities, err := h.activityService.ListActivities(c.Request.Context(), c.Param("trip_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list activities")
		return
	}

	c.JSON(http.StatusOK, dto.ListActivitiesResponse{Activities: dto.ToActivityResponses(activities)})
}

// getActivity godoc
// @Summary Get an itinerary entry
// @Tags activities
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Param   activity_id path string true "Activity ID"
// @Success 200 {object} dto.ActivityResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Activity not found"
// @Failure 500 {object} map[string]string "Failed to retrieve activity"
// @Security BearerAuth
// @Router /trips/{trip_id}/activities/{activity_id} [get]
func (h *activityHandler) getActivity(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	activity, err := h.activityService.GetActivity(c.Request.Context(), c.Param("trip_id"), c.Param("activity_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve activity")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

// updateActivity godoc
// @Summary Update an itinerary entry
// @Tags activities
// @Accept  json
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Param   activity_id path string true "Activity ID"
// @Param   activity body dto.UpdateActivityRequest true "Fields to update"
// @Success 200 {object} dto.ActivityResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Activity not found"
// @Failure 500 {object} map[string]string "Failed to update activity"
// @Security BearerAuth
// @Router /trips/{trip_id}/activities/{activity_id} [put]
func (h *activityHandler) updateActivity(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateActivityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateActivity", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	activity, err := h.activityService.UpdateActivity(c.Request.Context(), c.Param("trip_id"), c.Param("activity_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update activity")
		return
	}

	c.JSON(http.StatusOK, dto.ToActivityResponse(activity))
}

// deleteActivity godoc
// @Summary Delete an itinerary entry
// @Tags activities
// @Param   trip_id path string true "Trip ID"
// @Param   activity_id path string true "Activity ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Activity not found"
// @Failure 500 {object} map[string]string "Failed to delete activity"
// @Security BearerAuth
// @Router /trips/{trip_id}/activities/{activity_id} [delete]
func (h *activityHandler) deleteActivity(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.activityService.DeleteActivity(c.Request.Context(), c.Param("trip_id"), c.Param("activity_id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete activity")
		return
	}

	c.Status(http.StatusNoContent)
}
