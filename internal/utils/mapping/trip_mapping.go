package mapping

import (
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/models"
)

// ToModelTrip converts a domain Trip to a model Trip. Members are stored separately.
func ToModelTrip(d domain.Trip) models.Trip {
	return models.Trip{
		TripID:       d.TripID,
		Name:         d.Name,
		Destination:  d.Destination,
		StartDate:    d.StartDate,
		EndDate:      d.EndDate,
		Budget:       d.Budget,
		CurrencyCode: d.CurrencyCode,
		Description:  d.Description,
		CoverImage:   d.CoverImage,
		Status:       string(d.Status),
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainTrip converts a model Trip and its member rows to a domain Trip
func ToDomainTrip(m models.Trip, members []models.TripMember) domain.Trip {
	return domain.Trip{
		TripID:       m.TripID,
		Name:         m.Name,
		Destination:  m.Destination,
		StartDate:    m.StartDate,
		EndDate:      m.EndDate,
		Budget:       m.Budget,
		CurrencyCode: m.CurrencyCode,
		Description:  m.Description,
		CoverImage:   m.CoverImage,
		Status:       domain.TripStatus(m.Status),
		Members:      ToDomainTripMemberSlice(members),
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelTripMember converts a domain TripMember to a model TripMember
func ToModelTripMember(d domain.TripMember) models.TripMember {
	return models.TripMember{
		TripID:      d.TripID,
		UserID:      d.UserID,
		Email:       d.Email,
		DisplayName: d.DisplayName,
		Role:        string(d.Role),
		Status:      string(d.Status),
		JoinedAt:    d.JoinedAt,
	}
}

// ToDomainTripMember converts a model TripMember to a domain TripMember
func ToDomainTripMember(m models.TripMember) domain.TripMember {
	return domain.TripMember{
		TripID:      m.TripID,
		UserID:      m.UserID,
		Email:       m.Email,
		DisplayName: m.DisplayName,
		Role:        domain.TripRole(m.Role),
		Status:      domain.MemberStatus(m.Status),
		JoinedAt:    m.JoinedAt,
	}
}

func ToDomainTripMemberSlice(ms []models.TripMember) []domain.TripMember {
	ds := make([]domain.TripMember, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainTripMember(m)
	}
	return ds
}
