package dto

import (
	"time"

	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

// --- Trip DTOs ---

// CreateTripRequest defines data for creating a new trip.
type CreateTripRequest struct {
	Name         string          `json:"name" binding:"required,max=200"`
	Destination  *string         `json:"destination,omitempty" binding:"omitempty,max=200"`
	StartDate    time.Time       `json:"startDate" binding:"required"`
	EndDate      time.Time       `json:"endDate" binding:"required"`
	Budget       decimal.Decimal `json:"budget"`
	CurrencyCode string          `json:"currencyCode" binding:"required,iso4217"`
	Description  string          `json:"description" binding:"max=2000"`
	CoverImage   string          `json:"coverImage" binding:"omitempty,url"`
}

// UpdateTripRequest defines the fields of a trip that can be changed.
// Nil fields are left untouched. The currency is fixed at creation.
type UpdateTripRequest struct {
	Name        *string            `json:"name,omitempty" binding:"omitempty,min=1,max=200"`
	Destination *string            `json:"destination,omitempty" binding:"omitempty,max=200"`
	StartDate   *time.Time         `json:"startDate,omitempty"`
	EndDate     *time.Time         `json:"endDate,omitempty"`
	Budget      *decimal.Decimal   `json:"budget,omitempty"`
	Description *string            `json:"description,omitempty" binding:"omitempty,max=2000"`
	CoverImage  *string            `json:"coverImage,omitempty" binding:"omitempty,url"`
	Status      *domain.TripStatus `json:"status,omitempty" binding:"omitempty,trip_status"`
}

// TripResponse defines data returned for a trip.
type TripResponse struct {
	TripID        string               `json:"tripID"`
	Name          string               `json:"name"`
	Destination   *string              `json:"destination,omitempty"`
	StartDate     time.Time            `json:"startDate"`
	EndDate       time.Time            `json:"endDate"`
	Budget        string               `json:"budget"`
	CurrencyCode  string               `json:"currencyCode"`
	Description   string               `json:"description"`
	CoverImage    string               `json:"coverImage,omitempty"`
	Status        domain.TripStatus    `json:"status"`
	Members       []TripMemberResponse `json:"members"`
	CreatedAt     time.Time            `json:"createdAt"`
	CreatedBy     string               `json:"createdBy"` // UserID
	LastUpdatedAt time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy string               `json:"lastUpdatedBy"` // UserID
}

// ToTripResponse converts domain.Trip to DTO.
func ToTripResponse(t *domain.Trip) TripResponse {
	members := make([]TripMemberResponse, len(t.Members))
	for i := range t.Members {
		members[i] = ToTripMemberResponse(&t.Members[i])
	}
	return TripResponse{
		TripID:        t.TripID,
		Name:          t.Name,
		Destination:   t.Destination,
		StartDate:     t.StartDate,
		EndDate:       t.EndDate,
		Budget:        utils.FormatMoney(t.Budget),
		CurrencyCode:  t.CurrencyCode,
		Description:   t.Description,
		CoverImage:    t.CoverImage,
		Status:        t.Status,
		Members:       members,
		CreatedAt:     t.CreatedAt,
		CreatedBy:     t.CreatedBy,
		LastUpdatedAt: t.LastUpdatedAt,
		LastUpdatedBy: t.LastUpdatedBy,
	}
}

// ListTripsResponse wraps a list of trips.
type ListTripsResponse struct {
	Trips []TripResponse `json:"trips"`
}

// ToListTripsResponse converts a slice of domain.Trip to DTO.
func ToListTripsResponse(ts []domain.Trip) ListTripsResponse {
	list := make([]TripResponse, len(ts))
	for i := range ts {
		list[i] = ToTripResponse(&ts[i])
	}
	return ListTripsResponse{Trips: list}
}

// --- Trip Membership DTOs ---

// AddTripMemberRequest defines data for inviting a user to a trip.
type AddTripMemberRequest struct {
	UserID      string          `json:"userID" binding:"required"`
	Email       string          `json:"email" binding:"omitempty,email"`
	DisplayName string          `json:"displayName" binding:"max=100"`
	Role        domain.TripRole `json:"role" binding:"omitempty,trip_role"`
}

// UpdateMemberRoleRequest defines data for changing a member's role.
type UpdateMemberRoleRequest struct {
	Role domain.TripRole `json:"role" binding:"required,trip_role"`
}

// RespondToInvitationRequest defines the caller's answer to a trip invitation.
type RespondToInvitationRequest struct {
	Accept *bool `json:"accept" binding:"required"`
}

// TripMemberResponse defines data returned about a trip member.
type TripMemberResponse struct {
	UserID      string              `json:"userID"`
	Email       string              `json:"email,omitempty"`
	DisplayName string              `json:"displayName"`
	Role        domain.TripRole     `json:"role"`
	Status      domain.MemberStatus `json:"status"`
	JoinedAt    time.Time           `json:"joinedAt"`
}

// ToTripMemberResponse converts domain.TripMember to DTO.
func ToTripMemberResponse(m *domain.TripMember) TripMemberResponse {
	return TripMemberResponse{
		UserID:      m.UserID,
		Email:       m.Email,
		DisplayName: m.Name(),
		Role:        m.Role,
		Status:      m.Status,
		JoinedAt:    m.JoinedAt,
	}
}
