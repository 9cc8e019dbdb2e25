package model

import (
	"fieldserve/shared/failure"
	"slices"
	"strings"
	"unicode"
)

type Status string

const (
	StatusPending             Status = "pending"
	StatusAssigned            Status = "assigned"
	StatusInProgress          Status = "in_progress"
	StatusCompleted           Status = "completed"
	StatusCancelled           Status = "cancelled"
	StatusOnHold              Status = "on_hold"
	StatusRescheduleRequested Status = "reschedule_requested"
	StatusRejected            Status = "rejected"
)

// Operation names a transition request. It labels history rows and metrics.
type Operation string

const (
	OpCreate            Operation = "create"
	OpAssign            Operation = "assign"
	OpStart             Operation = "start"
	OpComplete          Operation = "complete"
	OpCancel            Operation = "cancel"
	OpHold              Operation = "hold"
	OpResume            Operation = "resume"
	OpReject            Operation = "reject"
	OpProposeReschedule Operation = "propose_reschedule"
	OpRespondReschedule Operation = "respond_reschedule"
	OpExpireReschedule  Operation = "expire_reschedule"
	OpRate              Operation = "rate"
)

var transitions = map[Status][]Status{
	StatusPending:             {StatusAssigned, StatusOnHold, StatusCancelled},
	StatusAssigned:            {StatusAssigned, StatusInProgress, StatusOnHold, StatusRescheduleRequested, StatusCancelled},
	StatusInProgress:          {StatusCompleted, StatusRescheduleRequested, StatusCancelled},
	StatusOnHold:              {StatusAssigned, StatusRejected, StatusCancelled},
	StatusRescheduleRequested: {StatusAssigned, StatusRescheduleRequested, StatusCancelled},
}

// sources narrows the table per operation, e.g. a plain assign may not accept a reschedule.
var sources = map[Operation][]Status{
	OpAssign:            {StatusPending, StatusAssigned, StatusOnHold},
	OpStart:             {StatusAssigned},
	OpComplete:          {StatusInProgress},
	OpCancel:            {StatusPending, StatusAssigned, StatusInProgress, StatusOnHold, StatusRescheduleRequested},
	OpHold:              {StatusPending, StatusAssigned},
	OpResume:            {StatusOnHold},
	OpReject:            {StatusOnHold},
	OpProposeReschedule: {StatusAssigned, StatusInProgress, StatusRescheduleRequested},
	OpRespondReschedule: {StatusRescheduleRequested},
	OpExpireReschedule:  {StatusRescheduleRequested},
}

// ActiveStatuses hold a provider's time slot.
var ActiveStatuses = []Status{StatusAssigned, StatusInProgress, StatusRescheduleRequested}

// ProviderStatuses keep a provider on the booking. On-hold bookings release the slot but not
// the provider, so a provider's leave must still reach them.
var ProviderStatuses = []Status{StatusAssigned, StatusInProgress, StatusRescheduleRequested, StatusOnHold}

func AllStatuses() []Status {
	return []Status{
		StatusPending,
		StatusAssigned,
		StatusInProgress,
		StatusCompleted,
		StatusCancelled,
		StatusOnHold,
		StatusRescheduleRequested,
		StatusRejected,
	}
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRejected
}

func (s Status) IsActive() bool {
	return slices.Contains(ActiveStatuses, s)
}

// HoldsProvider reports whether a booking in s keeps its assigned provider pending work.
func (s Status) HoldsProvider() bool {
	return slices.Contains(ProviderStatuses, s)
}

func (s Status) CanTransitionTo(next Status) bool {
	return slices.Contains(transitions[s], next)
}

// CheckTransition fails with InvalidTransition unless op may move a booking from -> to.
func CheckTransition(op Operation, from, to Status) error {
	if slices.Contains(sources[op], from) && from.CanTransitionTo(to) {
		return nil
	}

	return failure.InvalidTransition(EntityName, string(from), strings.ReplaceAll(string(op), "_", " ")) // nolint:wrapcheck
}

// ParseStatus accepts snake, kebab, camel and spaced spellings, e.g. "InProgress" or "in-progress".
func ParseStatus(value string) (Status, error) {
	var b strings.Builder

	normalized := strings.TrimSpace(value)
	if normalized == strings.ToUpper(normalized) {
		normalized = strings.ToLower(normalized)
	}

	for i, r := range normalized {
		switch {
		case r == '-' || r == ' ':
			b.WriteRune('_')
		case unicode.IsUpper(r):
			if i > 0 && !strings.HasSuffix(b.String(), "_") {
				b.WriteRune('_')
			}

			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	status := Status(b.String())
	if !slices.Contains(AllStatuses(), status) {
		return "", failure.Newf(failure.KindInvalidInput, "unknown booking status %q", value) // nolint:wrapcheck
	}

	return status, nil
}
