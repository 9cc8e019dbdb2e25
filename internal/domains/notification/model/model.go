package model

import (
	"time"
)

type EventType string

const (
	EventBookingCreated            EventType = "booking.created"
	EventBookingAssigned           EventType = "booking.assigned"
	EventBookingStarted            EventType = "booking.started"
	EventBookingCompleted          EventType = "booking.completed"
	EventBookingCancelled          EventType = "booking.cancelled"
	EventBookingOnHold             EventType = "booking.on_hold"
	EventBookingRejected           EventType = "booking.rejected"
	EventBookingRescheduleProposed EventType = "booking.reschedule_proposed"
	EventBookingRescheduled        EventType = "booking.rescheduled"
	EventBookingRated              EventType = "booking.rated"
	EventLeaveReassignment         EventType = "leave.reassignment_required"
	EventInvoiceIssued             EventType = "invoice.issued"
	EventCreditNoteIssued          EventType = "credit_note.issued"
	EventCreditNoteApplied         EventType = "credit_note.applied"
	EventCreditNoteCancelled       EventType = "credit_note.cancelled"
)

// Event is the JSON value published on the notification topic. AggregateID is the message key.
type Event struct {
	Type        EventType      `json:"type"`
	AggregateID string         `json:"aggregate_id"`
	ActorID     string         `json:"actor_id,omitempty"`
	ActorRole   string         `json:"actor_role,omitempty"`
	OccurredAt  time.Time      `json:"occurred_at"`
	Payload     map[string]any `json:"payload,omitempty"`
}
