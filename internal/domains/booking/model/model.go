package model

import (
	pricingModel "fieldserve/internal/domains/pricing/model"
	"fieldserve/shared/model"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	TableHistory  = "booking_status_history"
	EntityHistory = "booking_status_history"

	FieldID                    = "id"
	FieldCustomerID            = "customer_id"
	FieldServiceID             = "service_id"
	FieldPincode               = "pincode"
	FieldAssignedProviderID    = "assigned_provider_id"
	FieldAssignedAdminID       = "assigned_admin_id"
	FieldStatus                = "status"
	FieldPreferredDate         = "preferred_date"
	FieldPreferredStartAt      = "preferred_start_at"
	FieldPreferredEndAt        = "preferred_end_at"
	FieldFinalPrice            = "final_price"
	FieldFinalBreakdown        = "final_breakdown"
	FieldAssignedAt            = "assigned_at"
	FieldStartedAt             = "started_at"
	FieldCompletedAt           = "completed_at"
	FieldCancelledAt           = "cancelled_at"
	FieldCancelledBy           = "cancelled_by"
	FieldCancelledByRole       = "cancelled_by_role"
	FieldCancellationReason    = "cancellation_reason"
	FieldHoldReason            = "hold_reason"
	FieldRejectReason          = "reject_reason"
	FieldRescheduleStartAt     = "reschedule_start_at"
	FieldRescheduleEndAt       = "reschedule_end_at"
	FieldRescheduleRequestedAt = "reschedule_requested_at"
	FieldRescheduleExpiresAt   = "reschedule_expires_at"
	FieldRating                = "rating"
	FieldFeedback              = "feedback"
	FieldBookingID             = "booking_id"
	FieldCreatedAt             = "created_at"

	// ProviderSlotConstraint backs the per-provider lock against double booking.
	ProviderSlotConstraint = "bookings_provider_slot_key"
)

type Booking struct {
	ID                    string                       `db:"id"`
	CustomerID            string                       `db:"customer_id"`
	ServiceID             string                       `db:"service_id"`
	ServiceTypeID         *string                      `db:"service_type_id"`
	Pincode               string                       `db:"pincode"`
	Address               string                       `db:"address"`
	AssignedProviderID    *string                      `db:"assigned_provider_id"`
	AssignedAdminID       *string                      `db:"assigned_admin_id"`
	Status                Status                       `db:"status"`
	PreferredDate         time.Time                    `db:"preferred_date"`
	PreferredStartAt      time.Time                    `db:"preferred_start_at"`
	PreferredEndAt        time.Time                    `db:"preferred_end_at"`
	DiscountCode          string                       `db:"discount_code"`
	EstimatedPrice        decimal.Decimal              `db:"estimated_price"`
	PriceBreakdown        pricingModel.PriceBreakdown  `db:"price_breakdown"`
	FinalPrice            decimal.NullDecimal          `db:"final_price"`
	FinalBreakdown        *pricingModel.PriceBreakdown `db:"final_breakdown"`
	AssignedAt            *time.Time                   `db:"assigned_at"`
	StartedAt             *time.Time                   `db:"started_at"`
	CompletedAt           *time.Time                   `db:"completed_at"`
	CancelledAt           *time.Time                   `db:"cancelled_at"`
	CancelledBy           *string                      `db:"cancelled_by"`
	CancelledByRole       *string                      `db:"cancelled_by_role"`
	CancellationReason    *string                      `db:"cancellation_reason"`
	HoldReason            *string                      `db:"hold_reason"`
	RejectReason          *string                      `db:"reject_reason"`
	RescheduleStartAt     *time.Time                   `db:"reschedule_start_at"`
	RescheduleEndAt       *time.Time                   `db:"reschedule_end_at"`
	RescheduleRequestedAt *time.Time                   `db:"reschedule_requested_at"`
	RescheduleExpiresAt   *time.Time                   `db:"reschedule_expires_at"`
	Rating                *int                         `db:"rating"`
	Feedback              *string                      `db:"feedback"`
	model.Metadata
}

// ProviderID returns the assigned provider or "".
func (b Booking) ProviderID() string {
	if b.AssignedProviderID == nil {
		return ""
	}

	return *b.AssignedProviderID
}

// RescheduleExpired reports whether a pending reschedule proposal lapsed before now.
func (b Booking) RescheduleExpired(now time.Time) bool {
	return b.Status == StatusRescheduleRequested &&
		b.RescheduleExpiresAt != nil &&
		now.After(*b.RescheduleExpiresAt)
}

// EffectiveStatus is the status reads report: an expired proposal reads as cancelled.
func (b Booking) EffectiveStatus(now time.Time) Status {
	if b.RescheduleExpired(now) {
		return StatusCancelled
	}

	return b.Status
}

// History is one audit row per committed transition.
type History struct {
	ID         string    `db:"id"`
	BookingID  string    `db:"booking_id"`
	FromStatus Status    `db:"from_status"`
	ToStatus   Status    `db:"to_status"`
	ActorID    string    `db:"actor_id"`
	ActorRole  string    `db:"actor_role"`
	Reason     string    `db:"reason"`
	ProviderID *string   `db:"provider_id"`
	CreatedAt  time.Time `db:"created_at"`
}

// StatusCount is one row of the dashboard aggregate.
type StatusCount struct {
	Status Status `db:"status"`
	Total  int    `db:"total"`
}
