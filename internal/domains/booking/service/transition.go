package service

import (
	"context"
	"errors"
	"fieldserve/infras/postgres"
	"fieldserve/internal/domains/booking/model"
	notificationModel "fieldserve/internal/domains/notification/model"
	"fieldserve/shared"
	"fieldserve/shared/actor"
	"fieldserve/shared/constant"
	"fieldserve/shared/failure"
	"fieldserve/shared/lock"
	"fieldserve/shared/timezone"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// change is what an operation writes once its guard passed.
type change struct {
	fields map[string]any
	reason string
	event  notificationModel.EventType
}

// decideFunc inspects the locked row and returns the columns to write besides status.
type decideFunc func(ctx context.Context, tx *sqlx.Tx, current model.Booking, now time.Time) (change, error)

// transition moves booking id to status to. The row is locked for the whole transaction, so
// concurrent operations on one booking are serialized. A lapsed reschedule proposal is
// cancelled and committed first, and the requested operation then fails.
func (s *serviceImpl) transition(ctx context.Context, id string, op model.Operation, to model.Status, decide decideFunc) (model.Booking, error) {
	caller := actor.FromContext(ctx)
	now := timezone.Now()

	var (
		from    model.Status
		updated model.Booking
		event   notificationModel.EventType
		expired bool
	)

	err := s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		expired = false

		current, err := s.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		from = current.Status

		if current.RescheduleExpired(now) {
			expired = true

			updated, err = s.apply(ctx, tx, current, model.StatusCancelled, change{
				fields: cancellation(actor.System, reasonRescheduleExpired, now),
				reason: reasonRescheduleExpired,
			}, actor.System, now)

			return err
		}

		if err = model.CheckTransition(op, current.Status, to); err != nil {
			return err // nolint:wrapcheck
		}

		ch, err := decide(ctx, tx, current, now)
		if err != nil {
			return err
		}

		event = ch.event

		updated, err = s.apply(ctx, tx, current, to, ch, caller, now)

		return err
	})
	if postgres.IsUniqueViolation(err, model.ProviderSlotConstraint) {
		err = failure.New(failure.KindProviderUnavailable, "provider already has a booking in that window") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Str("operation", string(op)).Msg("booking transition failed")
		s.metrics.TransitionFailed(string(op), string(failure.KindOf(err)))

		return updated, err // nolint:wrapcheck
	}

	if expired {
		s.afterCommit(ctx, model.OpExpireReschedule, from, updated, actor.System, notificationModel.EventBookingCancelled)
		s.metrics.TransitionFailed(string(op), string(failure.KindInvalidTransition))

		return updated, failure.Newf(failure.KindInvalidTransition, "cannot %s booking: %s", // nolint:wrapcheck
			strings.ReplaceAll(string(op), "_", " "), reasonRescheduleExpired)
	}

	s.afterCommit(ctx, op, from, updated, caller, event)

	return updated, nil
}

// apply writes status plus ch.fields, records history and returns the row as committed.
func (s *serviceImpl) apply(ctx context.Context, tx *sqlx.Tx, current model.Booking, to model.Status, ch change, by actor.Actor, now time.Time) (model.Booking, error) {
	fields := make(map[string]any, len(ch.fields)+3)
	for key, value := range ch.fields {
		fields[key] = value
	}

	fields[model.FieldStatus] = to
	fields[constant.FieldModifiedAt] = now
	fields[constant.FieldModifiedBy] = by.ID

	if err := s.repo.UpdateTx(ctx, tx, fields, current.ID); err != nil {
		return current, fmt.Errorf("failed to update booking: %w", err)
	}

	updated, err := s.lockBooking(ctx, tx, current.ID)
	if err != nil {
		return current, err
	}

	if err = s.repo.InsertHistoryTx(ctx, tx, newHistory(current.ID, current.Status, to, by, ch.reason, updated.AssignedProviderID, now)); err != nil {
		return current, fmt.Errorf("failed to record booking history: %w", err)
	}

	return updated, nil
}

// assignUnderLock serializes every operation that lands a booking on providerID's schedule.
func (s *serviceImpl) assignUnderLock(ctx context.Context, id string, op model.Operation, providerID string, decide decideFunc) (model.Booking, error) {
	waitStarted := time.Now()
	release, err := s.locker.Acquire(ctx, lock.ProviderKey(providerID), s.cfg.Booking.AssignLockTTL, s.cfg.Booking.AssignLockWait)
	s.metrics.AssignmentLockWait(time.Since(waitStarted).Seconds())

	if errors.Is(err, lock.ErrNotAcquired) {
		s.metrics.TransitionFailed(string(op), string(failure.KindProviderUnavailable))

		return model.Booking{}, failure.Newf(failure.KindProviderUnavailable, "provider %s is busy with another assignment", providerID) // nolint:wrapcheck
	}

	if err != nil {
		return model.Booking{}, fmt.Errorf("failed to lock provider: %w", err)
	}
	defer release()

	return s.transition(ctx, id, op, model.StatusAssigned, decide)
}

// storedProvider reads the assigned provider from storage, skipping the cache, to pick the
// provider lock before the row lock. Decisions re-check it with sameProvider.
func (s *serviceImpl) storedProvider(ctx context.Context, id string) (model.Booking, string, error) {
	booking, err := s.repo.Get(ctx, id)
	if err != nil {
		return booking, "", fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, "", failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return booking, booking.ProviderID(), nil
}

// sameProvider fails with Conflict when the locked row no longer names the provider whose lock is held.
func sameProvider(current model.Booking, locked string) error {
	if current.ProviderID() != locked {
		return failure.Newf(failure.KindConflict, "booking %s changed provider, retry the request", current.ID) // nolint:wrapcheck
	}

	return nil
}

// guard fails with ProviderUnavailable unless providerID may take booking in the given window.
func (s *serviceImpl) guard(ctx context.Context, tx *sqlx.Tx, booking model.Booking, providerID string, date, start, end time.Time) error {
	if err := s.matcher.CanServe(ctx, providerID, booking.ServiceID, booking.Pincode, date); err != nil {
		return err // nolint:wrapcheck
	}

	overlapping, err := s.repo.CountOverlappingTx(ctx, tx, providerID, booking.ID, start, end)
	if err != nil {
		return err // nolint:wrapcheck
	}

	if overlapping > 0 {
		return failure.Newf(failure.KindProviderUnavailable, "provider %s already has a booking in that window", providerID) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) lockBooking(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	booking, err := s.repo.GetForUpdateTx(ctx, tx, id)
	if err != nil {
		return booking, fmt.Errorf("failed to lock booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) afterCommit(ctx context.Context, op model.Operation, from model.Status, booking model.Booking, by actor.Actor, event notificationModel.EventType) {
	s.metrics.Transition(string(op), string(from), string(booking.Status))
	s.invalidate(ctx, booking.ID)

	if event == constant.Empty {
		return
	}

	s.dispatcher.Publish(ctx, notificationModel.Event{
		Type:        event,
		AggregateID: booking.ID,
		ActorID:     by.ID,
		ActorRole:   by.Role,
		OccurredAt:  booking.ModifiedAt,
		Payload: map[string]any{
			"operation":   string(op),
			"from":        string(from),
			"to":          string(booking.Status),
			"customer_id": booking.CustomerID,
			"provider_id": booking.ProviderID(),
		},
	})
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBooking, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete booking from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBooking)
	}()
}

func newHistory(bookingID string, from, to model.Status, by actor.Actor, reason string, providerID *string, at time.Time) model.History {
	return model.History{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		FromStatus: from,
		ToStatus:   to,
		ActorID:    by.ID,
		ActorRole:  by.Role,
		Reason:     reason,
		ProviderID: providerID,
		CreatedAt:  at,
	}
}
