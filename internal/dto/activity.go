package dto

import (
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// CreateActivityRequest defines the data needed to add an itinerary entry.
// Times use the 24h HH:MM format. Order defaults to the end of the day.
type CreateActivityRequest struct {
	Title        string                  `json:"title" binding:"required,max=200"`
	Description  string                  `json:"description" binding:"max=2000"`
	ActivityDate time.Time               `json:"activityDate" binding:"required"`
	StartTime    string                  `json:"startTime"`
	EndTime      string                  `json:"endTime"`
	Location     string                  `json:"location" binding:"max=500"`
	Latitude     *float64                `json:"lat" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64                `json:"lng" binding:"omitempty,min=-180,max=180"`
	Cost         *decimal.Decimal        `json:"cost"`
	Category     domain.ActivityCategory `json:"category" binding:"required,activity_category"`
	Order        *int                    `json:"order" binding:"omitempty,min=0"`
}

// UpdateActivityRequest defines the fields of an activity that can be changed.
// Nil fields are left untouched. An empty time or location clears it.
type UpdateActivityRequest struct {
	Title        *string                  `json:"title,omitempty" binding:"omitempty,min=1,max=200"`
	Description  *string                  `json:"description,omitempty" binding:"omitempty,max=2000"`
	ActivityDate *time.Time               `json:"activityDate,omitempty"`
	StartTime    *string                  `json:"startTime,omitempty"`
	EndTime      *string                  `json:"endTime,omitempty"`
	Location     *string                  `json:"location,omitempty" binding:"omitempty,max=500"`
	Latitude     *float64                 `json:"lat,omitempty" binding:"omitempty,min=-90,max=90"`
	Longitude    *float64                 `json:"lng,omitempty" binding:"omitempty,min=-180,max=180"`
	Cost         *decimal.Decimal         `json:"cost,omitempty"`
	Category     *domain.ActivityCategory `json:"category,omitempty" binding:"omitempty,activity_category"`
	Order        *int                     `json:"order,omitempty" binding:"omitempty,min=0"`
}

// ActivityResponse defines the data returned for an itinerary entry.
type ActivityResponse struct {
	ActivityID    string                  `json:"activityID"`
	TripID        string                  `json:"tripID"`
	Title         string                  `json:"title"`
	Description   string                  `json:"description,omitempty"`
	ActivityDate  time.Time               `json:"activityDate"`
	StartTime     string                  `json:"startTime,omitempty"`
	EndTime       string                  `json:"endTime,omitempty"`
	Location      string                  `json:"location,omitempty"`
	Latitude      *float64                `json:"lat,omitempty"`
	Longitude     *float64                `json:"lng,omitempty"`
	Cost          string                  `json:"cost,omitempty"`
	Category      domain.ActivityCategory `json:"category"`
	Order         int                     `json:"order"`
	CreatedAt     time.Time               `json:"createdAt"`
	CreatedBy     string                  `json:"createdBy"`
	LastUpdatedAt time.Time               `json:"lastUpdatedAt"`
	LastUpdatedBy string                  `json:"lastUpdatedBy"`
}

// ListActivitiesResponse wraps the itinerary of a trip.
type ListActivitiesResponse struct {
	Activities []ActivityResponse `json:"activities"`
}

// ToActivityResponse converts a domain.Activity to ActivityResponse DTO.
func ToActivityResponse(a *domain.Activity) ActivityResponse {
	resp := ActivityResponse{
		ActivityID:    a.ActivityID,
		TripID:        a.TripID,
		Title:         a.Title,
		Description:   a.Description,
		ActivityDate:  a.ActivityDate,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		Location:      a.Location,
		Latitude:      a.Latitude,
		Longitude:     a.Longitude,
		Category:      a.Category,
		Order:         a.Order,
		CreatedAt:     a.CreatedAt,
		CreatedBy:     a.CreatedBy,
		LastUpdatedAt: a.LastUpdatedAt,
		LastUpdatedBy: a.LastUpdatedBy,
	}
	if a.Cost != nil {
		resp.Cost = utils.FormatMoney(*a.Cost)
	}
	return resp
}

// ToActivityResponses converts a slice of domain.Activity to []ActivityResponse.
func ToActivityResponses(activities []domain.Activity) []ActivityResponse {
	responses := make([]ActivityResponse, len(activities))
	for i := range activities {
		responses[i] = ToActivityResponse(&activities[i])
	}
	return responses
}
