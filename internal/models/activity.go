package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Activity is a row of the activities table.
type Activity struct {
	ActivityID   string              `db:"activity_id"`
	TripID       string              `db:"trip_id"`
	Title        string              `db:"title"`
	Description  string              `db:"description"`
	ActivityDate time.Time           `db:"activity_date"`
	StartTime    string              `db:"start_time"`
	EndTime      string              `db:"end_time"`
	Location     string              `db:"location"`
	Latitude     *float64            `db:"latitude"`
	Longitude    *float64            `db:"longitude"`
	Cost         decimal.NullDecimal `db:"cost"`
	Category     string              `db:"category"`
	Position     int                 `db:"position"`
	AuditFields
}
