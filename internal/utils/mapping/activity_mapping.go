package mapping

import (
	"github.com/SscSPs/trip_ledger_app/internal/core/domain"
	"github.com/SscSPs/trip_ledger_app/internal/models"
	"github.com/shopspring/decimal"
)

// ToModelActivity converts a domain Activity to a model Activity
func ToModelActivity(d domain.Activity) models.Activity {
	var cost decimal.NullDecimal
	if d.Cost != nil {
		cost = decimal.NewNullDecimal(*d.Cost)
	}

	return models.Activity{
		ActivityID:   d.ActivityID,
		TripID:       d.TripID,
		Title:        d.Title,
		Description:  d.Description,
		ActivityDate: d.ActivityDate,
		StartTime:    d.StartTime,
		EndTime:      d.EndTime,
		Location:     d.Location,
		Latitude:     d.Latitude,
		Longitude:    d.Longitude,
		Cost:         cost,
		Category:     string(d.Category),
		Position:     d.Order,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainActivity converts a model Activity to a domain Activity
func ToDomainActivity(m models.Activity) domain.Activity {
	var cost *decimal.Decimal
	if m.Cost.Valid {
		c := m.Cost.Decimal
		cost = &c
	}

	return domain.Activity{
		ActivityID:   m.ActivityID,
		TripID:       m.TripID,
		Title:        m.Title,
		Description:  m.Description,
		ActivityDate: m.ActivityDate,
		StartTime:    m.StartTime,
		EndTime:      m.EndTime,
		Location:     m.Location,
		Latitude:     m.Latitude,
		Longitude:    m.Longitude,
		Cost:         cost,
		Category:     domain.ActivityCategory(m.Category),
		Order:        m.Position,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainActivities converts a slice of model Activity to domain Activity
func ToDomainActivities(ms []models.Activity) []domain.Activity {
	activities := make([]domain.Activity, len(ms))
	for i, m := range ms {
		activities[i] = ToDomainActivity(m)
	}
	return activities
}
