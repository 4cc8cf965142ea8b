package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	portssvc "github.com/SscSPs/trip_ledger_app/internal/core/ports/services"
	"github.com/SscSPs/trip_ledger_app/internal/dto"
	"github.com/SscSPs/trip_ledger_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// tripHandler handles HTTP requests related to trips and their members.
type tripHandler struct {
	tripService portssvc.TripSvcFacade
}

// newTripHandler creates a new tripHandler.
func newTripHandler(ts portssvc.TripSvcFacade) *tripHandler {
	return &tripHandler{
		tripService: ts,
	}
}

// registerTripRoutes registers trip and membership routes. It returns the
// group of a single trip so expense and ledger routes can nest under it.
func registerTripRoutes(rg *gin.RouterGroup, tripService portssvc.TripSvcFacade) *gin.RouterGroup {
	h := newTripHandler(tripService)

	trips := rg.Group("/trips")
	{
		trips.POST("", h.createTrip)
		trips.GET("", h.listTrips)
	}

	trip := rg.Group("/trips/:trip_id")
	{
		trip.GET("", h.getTrip)
		trip.PUT("", h.updateTrip)
		trip.DELETE("", h.deleteTrip)

		trip.POST("/members", h.addMember)
		trip.DELETE("/members/:user_id", h.removeMember)
		trip.PUT("/members/:user_id/role", h.updateMemberRole)
		trip.POST("/invitation", h.respondToInvitation)
	}
	return trip
}

// createTrip godoc
// @Summary Create a new trip
// @Description Creates a trip in the planning state. The caller becomes its admin.
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   trip body dto.CreateTripRequest true "Trip details"
// @Success 201 {object} dto.TripResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create trip"
// @Security BearerAuth
// @Router /trips [post]
func (h *tripHandler) createTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c)
	if !ok {
		return
	}
	profile := middleware.GetUserProfileFromContext(c)
	creator := domain.TripMember{
		UserID:      creatorUserID,
		Email:       strings.ToLower(profile.Email),
		DisplayName: profile.Name,
	}

	logger.Info("Received request to create trip", slog.String("trip_name", req.Name), slog.String("currency_code", req.CurrencyCode))

	trip, err := h.tripService.CreateTrip(c.Request.Context(), req, creator)
	if err != nil {
		respondServiceError(c, err, "Failed to create trip")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTripResponse(trip))
}

// listTrips godoc
// @Summary List trips for current user
// @Description Retrieves the trips the authenticated user belongs to or is invited to.
// @Tags trips
// @Produce  json
// @Success 200 {object} dto.ListTripsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list trips"
// @Security BearerAuth
// @Router /trips [get]
func (h *tripHandler) listTrips(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	trips, err := h.tripService.ListUserTrips(c.Request.Context(), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to list trips")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTripsResponse(trips))
}

// getTrip godoc
// @Summary Get a trip by ID
// @Description Retrieves a trip with its members.
// @Tags trips
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Success 200 {object} dto.TripResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to retrieve trip"
// @Security BearerAuth
// @Router /trips/{trip_id} [get]
func (h *tripHandler) getTrip(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	trip, err := h.tripService.GetTrip(c.Request.Context(), c.Param("trip_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve trip")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// updateTrip godoc
// @Summary Update a trip
// @Description Updates the given fields of a trip. Admins only.
// @Tags trips
// @Accept  json
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Param   trip body dto.UpdateTripRequest true "Fields to update"
// @Success 200 {object} dto.TripResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to update trip"
// @Security BearerAuth
// @Router /trips/{trip_id} [put]
func (h *tripHandler) updateTrip(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateTripRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateTrip", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	trip, err := h.tripService.UpdateTrip(c.Request.Context(), c.Param("trip_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update trip")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripResponse(trip))
}

// deleteTrip godoc
// @Summary Delete a trip
// @Description Deletes a trip with all of its expenses. Admins only.
// @Tags trips
// @Param   trip_id path string true "Trip ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 500 {object} map[string]string "Failed to delete trip"
// @Security BearerAuth
// @Router /trips/{trip_id} [delete]
func (h *tripHandler) deleteTrip(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.tripService.DeleteTrip(c.Request.Context(), c.Param("trip_id"), userID); err != nil {
		respondServiceError(c, err, "Failed to delete trip")
		return
	}

	c.Status(http.StatusNoContent)
}

// addMember godoc
// @Summary Invite a user to a trip
// @Description Adds a pending member to the trip. Admins only.
// @Tags trip-members
// @Accept  json
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Param   member body dto.AddTripMemberRequest true "Member details"
// @Success 201 {object} dto.TripMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trip not found"
// @Failure 409 {object} map[string]string "Already a member"
// @Failure 500 {object} map[string]string "Failed to add member"
// @Security BearerAuth
// @Router /trips/{trip_id}/members [post]
func (h *tripHandler) addMember(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddTripMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddTripMember", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	member, err := h.tripService.AddTripMember(c.Request.Context(), c.Param("trip_id"), req, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to add member")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTripMemberResponse(member))
}

// removeMember godoc
// @Summary Remove a member from a trip
// @Description Admins may remove anyone; members may remove themselves. The last admin cannot be removed.
// @Tags trip-members
// @Param   trip_id path string true "Trip ID"
// @Param   user_id path string true "User ID of the member"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Last admin"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trip or member not found"
// @Failure 500 {object} map[string]string "Failed to remove member"
// @Security BearerAuth
// @Router /trips/{trip_id}/members/{user_id} [delete]
func (h *tripHandler) removeMember(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	err := h.tripService.RemoveTripMember(c.Request.Context(), c.Param("trip_id"), c.Param("user_id"), userID)
	if err != nil {
		respondServiceError(c, err, "Failed to remove member")
		return
	}

	c.Status(http.StatusNoContent)
}

// updateMemberRole godoc
// @Summary Change a member's role
// @Description Promotes or demotes a member. Admins only.
// @Tags trip-members
// @Accept  json
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Param   user_id path string true "User ID of the member"
// @Param   role body dto.UpdateMemberRoleRequest true "New role"
// @Success 200 {object} dto.TripMemberResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Forbidden"
// @Failure 404 {object} map[string]string "Trip or member not found"
// @Failure 500 {object} map[string]string "Failed to update member role"
// @Security BearerAuth
// @Router /trips/{trip_id}/members/{user_id}/role [put]
func (h *tripHandler) updateMemberRole(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateMemberRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateMemberRole", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	member, err := h.tripService.UpdateMemberRole(c.Request.Context(), c.Param("trip_id"), c.Param("user_id"), req.Role, userID)
	if err != nil {
		respondServiceError(c, err, "Failed to update member role")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripMemberResponse(member))
}

// respondToInvitation godoc
// @Summary Accept or decline a trip invitation
// @Tags trip-members
// @Accept  json
// @Produce  json
// @Param   trip_id path string true "Trip ID"
// @Param   answer body dto.RespondToInvitationRequest true "Answer"
// @Success 200 {object} dto.TripMemberResponse
// @Failure 400 {object} map[string]string "Invalid input or no pending invitation"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Invitation not found"
// @Failure 500 {object} map[string]string "Failed to respond to invitation"
// @Security BearerAuth
// @Router /trips/{trip_id}/invitation [post]
func (h *tripHandler) respondToInvitation(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.RespondToInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for RespondToInvitation", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	member, err := h.tripService.RespondToInvitation(c.Request.Context(), c.Param("trip_id"), userID, *req.Accept)
	if err != nil {
		respondServiceError(c, err, "Failed to respond to invitation")
		return
	}

	c.JSON(http.StatusOK, dto.ToTripMemberResponse(member))
}
