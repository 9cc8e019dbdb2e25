package model

import (
	"fieldserve/shared/model"
	"time"
)

const (
	TableWindows = "provider_availability_windows"
	EntityWindow = "availability_window"

	TableLeaves = "provider_leaves"
	EntityLeave = "leave"

	TableProviderServices     = "provider_services"
	TableProviderServiceAreas = "provider_service_areas"

	FieldID           = "id"
	FieldProviderID   = "provider_id"
	FieldPincode      = "pincode"
	FieldBusinessDate = "business_date"
	FieldCheckedInAt  = "checked_in_at"
	FieldCheckedOutAt = "checked_out_at"
	FieldStartDate    = "start_date"
	FieldEndDate      = "end_date"
	FieldStatus       = "status"

	// OpenWindowConstraint allows one open window per provider and business date.
	OpenWindowConstraint = "provider_availability_windows_open_key"
)

const (
	LeaveStatusActive    = "active"
	LeaveStatusCancelled = "cancelled"
)

// Window is a provider's check-in at a pincode for one business date.
type Window struct {
	ID           string     `db:"id"`
	ProviderID   string     `db:"provider_id"`
	Pincode      string     `db:"pincode"`
	BusinessDate time.Time  `db:"business_date"`
	CheckedInAt  time.Time  `db:"checked_in_at"`
	CheckedOutAt *time.Time `db:"checked_out_at"`
	model.Metadata
}

func (w Window) IsOpen() bool {
	return w.CheckedOutAt == nil
}

type Leave struct {
	ID         string    `db:"id"`
	ProviderID string    `db:"provider_id"`
	StartDate  time.Time `db:"start_date"`
	EndDate    time.Time `db:"end_date"`
	Reason     string    `db:"reason"`
	Status     string    `db:"status"`
	model.Metadata
}

// Covers reports whether an active leave includes date. Both ends are inclusive.
func (l Leave) Covers(date time.Time) bool {
	day := date.Format(time.DateOnly)

	return l.Status == LeaveStatusActive &&
		l.StartDate.Format(time.DateOnly) <= day &&
		day <= l.EndDate.Format(time.DateOnly)
}

// WorklistItem is a booking that needs a new provider because of a leave.
type WorklistItem struct {
	BookingID        string    `db:"id"`
	CustomerID       string    `db:"customer_id"`
	ServiceID        string    `db:"service_id"`
	Pincode          string    `db:"pincode"`
	Status           string    `db:"status"`
	PreferredDate    time.Time `db:"preferred_date"`
	PreferredStartAt time.Time `db:"preferred_start_at"`
}

// ProviderLoad counts a provider's slot-holding bookings on one date.
type ProviderLoad struct {
	ProviderID string `db:"provider_id"`
	Total      int    `db:"total"`
}

// ActiveProvider is a ranked candidate for assignment.
type ActiveProvider struct {
	ProviderID     string
	Pincode        string
	CheckedInAt    time.Time
	ActiveBookings int
}
