package domain

import "time"

// AuditFields records who created an entity and who changed it last.
// Times are stored in UTC.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID
}

// NewAuditFields stamps an entity created by userID at now.
func NewAuditFields(userID string, now time.Time) AuditFields {
	now = now.UTC()
	return AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}
}

// Touch records a change by userID at now. The creation stamp is kept.
func (a *AuditFields) Touch(userID string, now time.Time) {
	a.LastUpdatedAt = now.UTC()
	a.LastUpdatedBy = userID
}
