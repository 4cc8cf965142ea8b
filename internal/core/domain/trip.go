package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TripStatus tracks where a trip is in its lifecycle.
type TripStatus string

const (
	TripPlanning  TripStatus = "planning"
	TripUpcoming  TripStatus = "upcoming"
	TripOngoing   TripStatus = "ongoing"
	TripCompleted TripStatus = "completed"
)

// IsValid reports whether s is a known trip status.
func (s TripStatus) IsValid() bool {
	switch s {
	case TripPlanning, TripUpcoming, TripOngoing, TripCompleted:
		return true
	}
	return false
}

// Trip is a collaboratively planned journey. Expenses are recorded against it
// and its Budget is the ceiling the expense summary is measured against.
type Trip struct {
	TripID       string          `json:"tripID"`      // Primary Key (UUID)
	Name         string          `json:"name"`        // User-defined name
	Destination  *string         `json:"destination"` // Optional, can be decided after creation
	StartDate    time.Time       `json:"startDate"`
	EndDate      time.Time       `json:"endDate"`
	Budget       decimal.Decimal `json:"budget"`
	CurrencyCode string          `json:"currencyCode"` // All expenses of the trip share this currency
	Description  string          `json:"description"`
	CoverImage   string          `json:"coverImage"`
	Status       TripStatus      `json:"status"`
	Members      []TripMember    `json:"members"`
	AuditFields
}

// TripRole defines the possible roles a user can have within a trip.
type TripRole string

const (
	RoleAdmin  TripRole = "admin"
	RoleMember TripRole = "member"
)

// IsValid reports whether r is a known trip role.
func (r TripRole) IsValid() bool {
	return r == RoleAdmin || r == RoleMember
}

// MemberStatus is the state of a trip invitation.
type MemberStatus string

const (
	MemberPending  MemberStatus = "pending"
	MemberAccepted MemberStatus = "accepted"
	MemberDeclined MemberStatus = "declined"
)

// TripMember represents the membership of a user in a trip.
type TripMember struct {
	TripID      string       `json:"tripID"`
	UserID      string       `json:"userID"`
	Email       string       `json:"email"`
	DisplayName string       `json:"displayName"`
	Role        TripRole     `json:"role"`
	Status      MemberStatus `json:"status"`
	JoinedAt    time.Time    `json:"joinedAt"`
}

// Name returns the label used for the member in splits and settlements.
func (m TripMember) Name() string {
	if m.DisplayName != "" {
		return m.DisplayName
	}
	return m.Email
}

// AcceptedParticipants returns the members who accepted the invitation, in
// membership order, as split participants.
func (t *Trip) AcceptedParticipants() []Participant {
	participants := make([]Participant, 0, len(t.Members))
	for _, m := range t.Members {
		if m.Status != MemberAccepted {
			continue
		}
		participants = append(participants, Participant{UserID: m.UserID, UserName: m.Name()})
	}
	return participants
}

// AdminCount returns how many members hold the admin role.
func (t *Trip) AdminCount() int {
	n := 0
	for _, m := range t.Members {
		if m.Role == RoleAdmin {
			n++
		}
	}
	return n
}

// FindMember returns the membership of userID, if any.
func (t *Trip) FindMember(userID string) (TripMember, bool) {
	for _, m := range t.Members {
		if m.UserID == userID {
			return m, true
		}
	}
	return TripMember{}, false
}
