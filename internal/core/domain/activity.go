package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ActivityCategory tags an itinerary entry.
type ActivityCategory string

const (
	ActivityAccommodation ActivityCategory = "accommodation"
	ActivityTransport     ActivityCategory = "transport"
	ActivityFood          ActivityCategory = "food"
	ActivitySightseeing   ActivityCategory = "activity"
	ActivityOther         ActivityCategory = "other"
)

// IsValid reports whether c is a known activity category.
func (c ActivityCategory) IsValid() bool {
	switch c {
	case ActivityAccommodation, ActivityTransport, ActivityFood, ActivitySightseeing, ActivityOther:
		return true
	}
	return false
}

// ClockLayout is the wall-clock format of activity start and end times.
const ClockLayout = "15:04"

// Activity is one entry of a trip's itinerary. Activities of a day are
// shown by ActivityDate, then Order.
type Activity struct {
	ActivityID   string           `json:"activityID"`
	TripID       string           `json:"tripID"`
	Title        string           `json:"title"`
	Description  string           `json:"description"`
	ActivityDate time.Time        `json:"activityDate"`
	StartTime    string           `json:"startTime"` // HH:MM, empty when unset
	EndTime      string           `json:"endTime"`   // HH:MM, empty when unset
	Location     string           `json:"location"`
	Latitude     *float64         `json:"lat,omitempty"`
	Longitude    *float64         `json:"lng,omitempty"`
	Cost         *decimal.Decimal `json:"cost,omitempty"`
	Category     ActivityCategory `json:"category"`
	Order        int              `json:"order"`
	AuditFields
}
