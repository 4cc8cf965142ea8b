package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Trip is a row of the trips table.
type Trip struct {
	TripID       string          `db:"trip_id"`
	Name         string          `db:"name"`
	Destination  *string         `db:"destination"` // Nullable
	StartDate    time.Time       `db:"start_date"`
	EndDate      time.Time       `db:"end_date"`
	Budget       decimal.Decimal `db:"budget"`
	CurrencyCode string          `db:"currency_code"`
	Description  string          `db:"description"`
	CoverImage   string          `db:"cover_image"`
	Status       string          `db:"status"`
	AuditFields
}

// TripMember is a row of the trip_members table.
type TripMember struct {
	TripID      string    `db:"trip_id"`
	UserID      string    `db:"user_id"`
	Email       string    `db:"email"`
	DisplayName string    `db:"display_name"`
	Role        string    `db:"role"`
	Status      string    `db:"status"`
	JoinedAt    time.Time `db:"joined_at"`
}
