package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fieldserve/config"
	"fieldserve/infras/metrics"
	"fieldserve/infras/otel"
	"fieldserve/infras/postgres"
	availabilityService "fieldserve/internal/domains/availability/service"
	billingService "fieldserve/internal/domains/billing/service"
	"fieldserve/internal/domains/booking/model"
	"fieldserve/internal/domains/booking/model/dto"
	"fieldserve/internal/domains/booking/repository"
	notificationModel "fieldserve/internal/domains/notification/model"
	notificationService "fieldserve/internal/domains/notification/service"
	pricingDto "fieldserve/internal/domains/pricing/model/dto"
	pricingService "fieldserve/internal/domains/pricing/service"
	refdataService "fieldserve/internal/domains/refdata/service"
	"fieldserve/shared"
	"fieldserve/shared/actor"
	"fieldserve/shared/cache"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/failure"
	"fieldserve/shared/lock"
	sharedModel "fieldserve/shared/model"
	"fieldserve/shared/money"
	"fieldserve/shared/timezone"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

const (
	cacheGetBooking    = "booking:get"
	cacheGetAllBooking = "booking:gets"

	reasonRescheduleExpired  = "reschedule proposal expired"
	reasonRescheduleDeclined = "reschedule declined"
)

// Lifecycle drives bookings through their status machine. Every transition runs in one
// transaction together with its history row; side effects happen after commit.
type Lifecycle interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Assign(ctx context.Context, id string, req dto.AssignBookingRequest) (dto.BookingResponse, error)
	Start(ctx context.Context, id string) (dto.BookingResponse, error)
	Complete(ctx context.Context, id string, req dto.CompleteBookingRequest) (dto.BookingResponse, error)
	Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (dto.BookingResponse, error)
	Hold(ctx context.Context, id string, req dto.HoldBookingRequest) (dto.BookingResponse, error)
	Resume(ctx context.Context, id string, req dto.ResumeBookingRequest) (dto.BookingResponse, error)
	Reject(ctx context.Context, id string, req dto.RejectBookingRequest) (dto.BookingResponse, error)
	ProposeReschedule(ctx context.Context, id string, req dto.ProposeRescheduleRequest) (dto.BookingResponse, error)
	RespondReschedule(ctx context.Context, id string, req dto.RespondRescheduleRequest) (dto.BookingResponse, error)
	Rate(ctx context.Context, id string, req dto.RateBookingRequest) (dto.BookingResponse, error)

	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBookingsResponse, error)
	GetMine(ctx context.Context, params gDto.QueryParams) (dto.GetBookingsResponse, error)
	GetHistory(ctx context.Context, id string) ([]dto.HistoryResponse, error)
	Dashboard(ctx context.Context, providerID string) (dto.DashboardResponse, error)
}

type serviceImpl struct {
	repo       repository.Booking
	transactor postgres.Transactor
	lookup     refdataService.Lookup
	quoter     pricingService.Quoter
	matcher    availabilityService.Matcher
	ledger     billingService.Ledger
	locker     lock.Locker
	dispatcher notificationService.Dispatcher
	metrics    metrics.Recorder
	cfg        *config.Config
	cache      cache.RedisCache
	otel       otel.Otel
}

func New(
	repo repository.Booking,
	transactor postgres.Transactor,
	lookup refdataService.Lookup,
	quoter pricingService.Quoter,
	matcher availabilityService.Matcher,
	ledger billingService.Ledger,
	locker lock.Locker,
	dispatcher notificationService.Dispatcher,
	recorder metrics.Recorder,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Lifecycle {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		lookup:     lookup,
		quoter:     quoter,
		matcher:    matcher,
		ledger:     ledger,
		locker:     locker,
		dispatcher: dispatcher,
		metrics:    recorder,
		cfg:        cfg,
		cache:      cache,
		otel:       otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := actor.FromContext(ctx)
	now := timezone.Now()

	customerID := req.CustomerID
	if customerID == constant.Empty {
		customerID = caller.ID
	}

	date, start, end, err := req.Window()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = checkWindow(date, start, end, now); err != nil {
		return res, err
	}

	if _, err = s.lookup.ResolveCustomer(ctx, customerID); err != nil {
		return res, err // nolint:wrapcheck
	}

	available, err := s.matcher.IsAvailable(ctx, req.ServiceID, req.Pincode, timezone.BusinessDate(now))
	if err != nil {
		return res, fmt.Errorf("failed to check availability: %w", err)
	}

	if !available {
		return res, failure.Newf(failure.KindProviderUnavailable, // nolint:wrapcheck
			"no provider is available for service %s at pincode %s", req.ServiceID, req.Pincode)
	}

	breakdown, err := s.quoter.Quote(ctx, pricingDto.QuoteRequest{
		ServiceID:     req.ServiceID,
		ServiceTypeID: req.ServiceTypeID,
		Pincode:       req.Pincode,
		PreferredDate: req.PreferredDate,
		DiscountCode:  req.DiscountCode,
	})
	if err != nil {
		return res, err // nolint:wrapcheck
	}

	booking := model.Booking{
		ID:               uuid.NewString(),
		CustomerID:       customerID,
		ServiceID:        req.ServiceID,
		Pincode:          req.Pincode,
		Address:          req.Address,
		Status:           model.StatusPending,
		PreferredDate:    date,
		PreferredStartAt: start,
		PreferredEndAt:   end,
		DiscountCode:     req.DiscountCode,
		EstimatedPrice:   breakdown.FinalPrice,
		PriceBreakdown:   breakdown,
		Metadata:         sharedModel.NewMetadata(caller.ID, now),
	}

	if req.ServiceTypeID != constant.Empty {
		booking.ServiceTypeID = &req.ServiceTypeID
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, booking); err != nil {
			return fmt.Errorf("failed to insert booking: %w", err)
		}

		return s.repo.InsertHistoryTx(ctx, tx, newHistory(booking.ID, "", model.StatusPending, caller, "", nil, now)) // nolint:wrapcheck
	})
	if err != nil {
		log.Error().Err(err).Str("serviceID", req.ServiceID).Msg("failed to create booking")
		s.metrics.TransitionFailed(string(model.OpCreate), string(failure.KindOf(err)))

		return res, err // nolint:wrapcheck
	}

	s.afterCommit(ctx, model.OpCreate, "", booking, caller, notificationModel.EventBookingCreated)

	res.FromModel(booking, now)

	return res, nil
}

func checkWindow(date, start, end, now time.Time) error {
	if !end.After(start) {
		return failure.BadRequestFromString("preferred end time must be after start time") // nolint:wrapcheck
	}

	if date.Before(timezone.BusinessDate(now)) {
		return failure.BadRequestFromString("preferred date must not be in the past") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Assign(ctx context.Context, id string, req dto.AssignBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Assign")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := actor.FromContext(ctx)

	return s.respond(s.assignUnderLock(ctx, id, model.OpAssign, req.ProviderID,
		func(ctx context.Context, tx *sqlx.Tx, current model.Booking, now time.Time) (change, error) {
			if err := s.guard(ctx, tx, current, req.ProviderID, current.PreferredDate, current.PreferredStartAt, current.PreferredEndAt); err != nil {
				return change{}, err
			}

			return change{
				fields: map[string]any{
					model.FieldAssignedProviderID: req.ProviderID,
					model.FieldAssignedAdminID:    caller.ID,
					model.FieldAssignedAt:         now,
				},
				event: notificationModel.EventBookingAssigned,
			}, nil
		}))
}

func (s *serviceImpl) Start(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := actor.FromContext(ctx)

	return s.respond(s.transition(ctx, id, model.OpStart, model.StatusInProgress,
		func(_ context.Context, _ *sqlx.Tx, current model.Booking, now time.Time) (change, error) {
			if current.ProviderID() != caller.ID {
				return change{}, failure.Forbidden("only the assigned provider can start this booking") // nolint:wrapcheck
			}

			if now.Before(current.PreferredStartAt) {
				log.Warn().Str("bookingID", current.ID).Time("preferredStartAt", current.PreferredStartAt).
					Msg("booking started before its preferred window")
			}

			return change{
				fields: map[string]any{model.FieldStartedAt: now},
				event:  notificationModel.EventBookingStarted,
			}, nil
		}))
}

func (s *serviceImpl) Complete(ctx context.Context, id string, req dto.CompleteBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var finalBase *decimal.Decimal

	if req.FinalBasePrice != constant.Empty {
		parsed, err := money.ParseAmount(req.FinalBasePrice)
		if err != nil {
			return res, failure.BadRequest(err) // nolint:wrapcheck
		}

		finalBase = &parsed
	}

	booking, err := s.transition(ctx, id, model.OpComplete, model.StatusCompleted,
		func(_ context.Context, _ *sqlx.Tx, current model.Booking, now time.Time) (change, error) {
			breakdown := current.PriceBreakdown

			if finalBase != nil {
				repriced, err := pricingService.Reprice(s.quoter.Config(), current.PriceBreakdown, *finalBase)
				if err != nil {
					return change{}, err // nolint:wrapcheck
				}

				breakdown = repriced
			}

			return change{
				fields: map[string]any{
					model.FieldFinalPrice:     breakdown.FinalPrice,
					model.FieldFinalBreakdown: breakdown,
					model.FieldCompletedAt:    now,
				},
				event: notificationModel.EventBookingCompleted,
			}, nil
		})
	if err != nil {
		return res, err
	}

	if _, err := s.ledger.IssueInvoice(ctx, booking.ID); err != nil {
		log.Error().Err(err).Str("bookingID", booking.ID).Msg("failed to issue invoice for completed booking")
	}

	res.FromModel(booking, timezone.Now())

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string, req dto.CancelBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := actor.FromContext(ctx)

	return s.respond(s.transition(ctx, id, model.OpCancel, model.StatusCancelled,
		func(_ context.Context, _ *sqlx.Tx, _ model.Booking, now time.Time) (change, error) {
			return change{
				fields: cancellation(caller, req.Reason, now),
				reason: req.Reason,
				event:  notificationModel.EventBookingCancelled,
			}, nil
		}))
}

func cancellation(by actor.Actor, reason string, now time.Time) map[string]any {
	return map[string]any{
		model.FieldCancelledAt:        now,
		model.FieldCancelledBy:        by.ID,
		model.FieldCancelledByRole:    by.Role,
		model.FieldCancellationReason: reason,
		model.FieldAssignedProviderID: nil,
	}
}

func (s *serviceImpl) Hold(ctx context.Context, id string, req dto.HoldBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Hold")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.respond(s.transition(ctx, id, model.OpHold, model.StatusOnHold,
		func(context.Context, *sqlx.Tx, model.Booking, time.Time) (change, error) {
			return change{
				fields: map[string]any{model.FieldHoldReason: req.Reason},
				reason: req.Reason,
				event:  notificationModel.EventBookingOnHold,
			}, nil
		}))
}

func (s *serviceImpl) Resume(ctx context.Context, id string, req dto.ResumeBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resume")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	providerID := req.ProviderID
	kept := providerID == constant.Empty

	if kept {
		if _, providerID, err = s.storedProvider(ctx, id); err != nil {
			return res, err
		}

		if providerID == constant.Empty {
			return res, failure.BadRequestFromString("provider_id is required to resume an unassigned booking") // nolint:wrapcheck
		}
	}

	return s.respond(s.assignUnderLock(ctx, id, model.OpResume, providerID,
		func(ctx context.Context, tx *sqlx.Tx, current model.Booking, now time.Time) (change, error) {
			if kept {
				if err := sameProvider(current, providerID); err != nil {
					return change{}, err
				}
			}

			if err := s.guard(ctx, tx, current, providerID, current.PreferredDate, current.PreferredStartAt, current.PreferredEndAt); err != nil {
				return change{}, err
			}

			return change{
				fields: map[string]any{
					model.FieldAssignedProviderID: providerID,
					model.FieldAssignedAt:         now,
					model.FieldHoldReason:         nil,
				},
				event: notificationModel.EventBookingAssigned,
			}, nil
		}))
}

func (s *serviceImpl) Reject(ctx context.Context, id string, req dto.RejectBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	return s.respond(s.transition(ctx, id, model.OpReject, model.StatusRejected,
		func(context.Context, *sqlx.Tx, model.Booking, time.Time) (change, error) {
			return change{
				fields: map[string]any{
					model.FieldRejectReason:       req.Reason,
					model.FieldAssignedProviderID: nil,
				},
				reason: req.Reason,
				event:  notificationModel.EventBookingRejected,
			}, nil
		}))
}

func (s *serviceImpl) ProposeReschedule(ctx context.Context, id string, req dto.ProposeRescheduleRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ProposeReschedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date, start, end, err := req.Window()
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = checkWindow(date, start, end, timezone.Now()); err != nil {
		return res, err
	}

	return s.respond(s.transition(ctx, id, model.OpProposeReschedule, model.StatusRescheduleRequested,
		func(_ context.Context, _ *sqlx.Tx, _ model.Booking, now time.Time) (change, error) {
			return change{
				fields: map[string]any{
					model.FieldRescheduleStartAt:     start,
					model.FieldRescheduleEndAt:       end,
					model.FieldRescheduleRequestedAt: now,
					model.FieldRescheduleExpiresAt:   now.Add(s.cfg.Booking.RescheduleResponseWindow),
				},
				reason: req.Reason,
				event:  notificationModel.EventBookingRescheduleProposed,
			}, nil
		}))
}

func (s *serviceImpl) RespondReschedule(ctx context.Context, id string, req dto.RespondRescheduleRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RespondReschedule")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := actor.FromContext(ctx)

	onlyCustomer := func(current model.Booking) error {
		if current.CustomerID != caller.ID {
			return failure.Forbidden("only the booking's customer can respond to a reschedule") // nolint:wrapcheck
		}

		return nil
	}

	if req.Accept == nil {
		return res, failure.BadRequestFromString("accept is required") // nolint:wrapcheck
	}

	if !*req.Accept {
		reason := req.Reason
		if reason == constant.Empty {
			reason = reasonRescheduleDeclined
		}

		return s.respond(s.transition(ctx, id, model.OpRespondReschedule, model.StatusCancelled,
			func(_ context.Context, _ *sqlx.Tx, current model.Booking, now time.Time) (change, error) {
				if err := onlyCustomer(current); err != nil {
					return change{}, err
				}

				return change{
					fields: cancellation(caller, reason, now),
					reason: reason,
					event:  notificationModel.EventBookingCancelled,
				}, nil
			}))
	}

	stored, providerID, err := s.storedProvider(ctx, id)
	if err != nil {
		return res, err
	}

	if providerID == constant.Empty {
		return res, failure.InvalidTransition(model.EntityName, string(stored.EffectiveStatus(timezone.Now())), "accept reschedule of") // nolint:wrapcheck
	}

	return s.respond(s.assignUnderLock(ctx, id, model.OpRespondReschedule, providerID,
		func(ctx context.Context, tx *sqlx.Tx, current model.Booking, _ time.Time) (change, error) {
			if err := onlyCustomer(current); err != nil {
				return change{}, err
			}

			if err := sameProvider(current, providerID); err != nil {
				return change{}, err
			}

			if current.RescheduleStartAt == nil || current.RescheduleEndAt == nil {
				return change{}, failure.BadRequestFromString("booking has no reschedule proposal") // nolint:wrapcheck
			}

			start, end := *current.RescheduleStartAt, *current.RescheduleEndAt
			date := timezone.BusinessDate(start)

			if err := s.guard(ctx, tx, current, providerID, date, start, end); err != nil {
				return change{}, err
			}

			return change{
				fields: map[string]any{
					model.FieldPreferredDate:         date,
					model.FieldPreferredStartAt:      start,
					model.FieldPreferredEndAt:        end,
					model.FieldRescheduleStartAt:     nil,
					model.FieldRescheduleEndAt:       nil,
					model.FieldRescheduleRequestedAt: nil,
					model.FieldRescheduleExpiresAt:   nil,
				},
				reason: req.Reason,
				event:  notificationModel.EventBookingRescheduled,
			}, nil
		}))
}

func (s *serviceImpl) Rate(ctx context.Context, id string, req dto.RateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Rate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller := actor.FromContext(ctx)
	now := timezone.Now()

	var booking model.Booking

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		current, err := s.lockBooking(ctx, tx, id)
		if err != nil {
			return err
		}

		switch {
		case current.Status != model.StatusCompleted:
			return failure.InvalidTransition(model.EntityName, string(current.EffectiveStatus(now)), string(model.OpRate)) // nolint:wrapcheck
		case current.CustomerID != caller.ID:
			return failure.Forbidden("only the booking's customer can rate it") // nolint:wrapcheck
		case current.Rating != nil:
			return failure.Conflict("booking has already been rated") // nolint:wrapcheck
		}

		if err = s.repo.UpdateTx(ctx, tx, map[string]any{
			model.FieldRating:        req.Rating,
			model.FieldFeedback:      req.Feedback,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: caller.ID,
		}, id); err != nil {
			return fmt.Errorf("failed to rate booking: %w", err)
		}

		booking = current
		booking.Rating = &req.Rating
		booking.Feedback = &req.Feedback
		booking.ModifiedAt = now
		booking.ModifiedBy = caller.ID

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to rate booking")
		s.metrics.TransitionFailed(string(model.OpRate), string(failure.KindOf(err)))

		return res, err // nolint:wrapcheck
	}

	s.invalidate(ctx, id)
	s.dispatcher.Publish(ctx, notificationModel.Event{
		Type:        notificationModel.EventBookingRated,
		AggregateID: id,
		ActorID:     caller.ID,
		ActorRole:   caller.Role,
		OccurredAt:  now,
		Payload: map[string]any{
			"rating":      req.Rating,
			"provider_id": booking.ProviderID(),
		},
	})

	res.FromModel(booking, now)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.load(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(booking, timezone.Now())

	return res, nil
}

// load caches the stored row rather than the response, so reschedule expiry is always
// evaluated at read time.
func (s *serviceImpl) load(ctx context.Context, id string) (booking model.Booking, err error) {
	cacheKey := shared.BuildCacheKey(cacheGetBooking, id)

	if err = s.cache.Get(ctx, cacheKey, &booking); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for booking")

		return booking, nil
	}

	booking, err = s.repo.Get(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(model.EntityName) // nolint:wrapcheck
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, booking, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save booking to cache")
		}
	}()

	return booking, nil
}

type bookingPage struct {
	Bookings []model.Booking `json:"bookings"`
	Total    int             `json:"total"`
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBooking, params, filter)

	var page bookingPage

	if err = s.cache.Get(ctx, cacheKey, &page); err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for bookings")

		res.FromModels(page.Bookings, page.Total, params.Limit, timezone.Now())

		return res, nil
	}

	page.Total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	page.Bookings, err = s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(page.Bookings, page.Total, params.Limit, timezone.Now())

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, page, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save bookings to cache")
		}
	}()

	return res, nil
}

// GetMine lists bookings the caller placed or is assigned to.
func (s *serviceImpl) GetMine(ctx context.Context, params gDto.QueryParams) (res dto.GetBookingsResponse, err error) {
	caller := actor.FromContext(ctx)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorOr,
		Filters: []any{
			gDto.Filter{Field: model.FieldCustomerID, Value: caller.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
			gDto.Filter{Field: model.FieldAssignedProviderID, Value: caller.ID, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		},
	}

	return s.GetAll(ctx, params, filter)
}

func (s *serviceImpl) GetHistory(ctx context.Context, id string) (res []dto.HistoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetHistory")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if _, err = s.load(ctx, id); err != nil {
		return res, err
	}

	history, err := s.repo.GetHistory(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("bookingID", id).Msg("failed to get booking history")

		return res, fmt.Errorf("failed to get booking history: %w", err)
	}

	res = make([]dto.HistoryResponse, len(history))
	for i, row := range history {
		res[i].FromModel(row)
	}

	return res, nil
}

func (s *serviceImpl) Dashboard(ctx context.Context, providerID string) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	counts, err := s.repo.CountByStatus(ctx, providerID, timezone.Now())
	if err != nil {
		log.Error().Err(err).Str("providerID", providerID).Msg("failed to count bookings by status")

		return res, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	res.FromModels(providerID, counts)

	return res, nil
}

func (s *serviceImpl) respond(booking model.Booking, err error) (res dto.BookingResponse, _ error) {
	if err != nil {
		return res, err
	}

	res.FromModel(booking, timezone.Now())

	return res, nil
}
