package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"cmp"
	"context"
	"errors"
	"fieldserve/config"
	"fieldserve/infras/otel"
	"fieldserve/infras/postgres"
	"fieldserve/internal/domains/availability/model"
	"fieldserve/internal/domains/availability/model/dto"
	"fieldserve/internal/domains/availability/repository"
	notificationModel "fieldserve/internal/domains/notification/model"
	notificationService "fieldserve/internal/domains/notification/service"
	refdataService "fieldserve/internal/domains/refdata/service"
	"fieldserve/shared/actor"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/failure"
	"fieldserve/shared/lock"
	sharedModel "fieldserve/shared/model"
	"fieldserve/shared/timezone"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

// Matcher tracks where providers are working and whether they may take a booking.
type Matcher interface {
	CheckIn(ctx context.Context, req dto.CheckInRequest) (dto.WindowResponse, error)
	CheckOut(ctx context.Context, req dto.CheckOutRequest) (dto.WindowResponse, error)
	IsAvailable(ctx context.Context, serviceID, pincode string, date time.Time) (bool, error)
	ActiveProviders(ctx context.Context, pincode string, date time.Time) ([]model.ActiveProvider, error)
	// CanServe returns ProviderUnavailable naming the first unmet condition.
	CanServe(ctx context.Context, providerID, serviceID, pincode string, date time.Time) error
	CreateLeave(ctx context.Context, req dto.CreateLeaveRequest) (dto.LeaveResponse, error)
	CancelLeave(ctx context.Context, id string) error
	GetLeaves(ctx context.Context, params gDto.QueryParams, providerID string) (dto.GetLeavesResponse, error)
	GetWindows(ctx context.Context, params gDto.QueryParams, providerID string) (dto.GetWindowsResponse, error)
}

type serviceImpl struct {
	repo       repository.Availability
	transactor postgres.Transactor
	lookup     refdataService.Lookup
	locker     lock.Locker
	dispatcher notificationService.Dispatcher
	cfg        *config.Config
	otel       otel.Otel
}

func New(
	repo repository.Availability,
	transactor postgres.Transactor,
	lookup refdataService.Lookup,
	locker lock.Locker,
	dispatcher notificationService.Dispatcher,
	cfg *config.Config,
	otel otel.Otel,
) Matcher {
	return &serviceImpl{
		repo:       repo,
		transactor: transactor,
		lookup:     lookup,
		locker:     locker,
		dispatcher: dispatcher,
		cfg:        cfg,
		otel:       otel,
	}
}

func (s *serviceImpl) CheckIn(ctx context.Context, req dto.CheckInRequest) (res dto.WindowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckIn")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date, err := dto.BusinessDateOrToday(req.BusinessDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if _, err = s.lookup.ResolveProvider(ctx, req.ProviderID); err != nil {
		return res, err // nolint:wrapcheck
	}

	if _, err = s.lookup.ResolveLocation(ctx, req.Pincode); err != nil {
		return res, err // nolint:wrapcheck
	}

	now := timezone.Now()
	window := model.Window{
		ID:           uuid.NewString(),
		ProviderID:   req.ProviderID,
		Pincode:      req.Pincode,
		BusinessDate: date,
		CheckedInAt:  now,
		Metadata:     sharedModel.NewMetadata(actor.FromContext(ctx).ID, now),
	}

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		open, err := s.repo.GetOpenWindowForUpdateTx(ctx, tx, req.ProviderID, date)
		if err != nil {
			return fmt.Errorf("failed to get open window: %w", err)
		}

		if open.ID != constant.Empty {
			return failure.Newf(failure.KindAlreadyCheckedIn, "provider already checked in at %s", open.Pincode) // nolint:wrapcheck
		}

		if err = s.repo.InsertWindowTx(ctx, tx, window); err != nil {
			return fmt.Errorf("failed to insert window: %w", err)
		}

		return nil
	})
	if postgres.IsUniqueViolation(err, model.OpenWindowConstraint) {
		return res, failure.New(failure.KindAlreadyCheckedIn, "provider already checked in") // nolint:wrapcheck
	}

	if err != nil {
		log.Error().Err(err).Str("providerID", req.ProviderID).Msg("failed to check in")

		return res, err // nolint:wrapcheck
	}

	res.FromModel(window)

	return res, nil
}

func (s *serviceImpl) CheckOut(ctx context.Context, req dto.CheckOutRequest) (res dto.WindowResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckOut")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	date, err := dto.BusinessDateOrToday(req.BusinessDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	now := timezone.Now()
	actorID := actor.FromContext(ctx).ID

	var window model.Window

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		window, err = s.repo.GetOpenWindowForUpdateTx(ctx, tx, req.ProviderID, date)
		if err != nil {
			return fmt.Errorf("failed to get open window: %w", err)
		}

		if window.ID == constant.Empty {
			return failure.New(failure.KindNoOpenWindow, "provider has no open window for the date") // nolint:wrapcheck
		}

		update := map[string]any{
			model.FieldCheckedOutAt:  now,
			constant.FieldModifiedAt: now,
			constant.FieldModifiedBy: actorID,
		}

		if err = s.repo.UpdateWindowTx(ctx, tx, update, window.ID); err != nil {
			return fmt.Errorf("failed to close window: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("providerID", req.ProviderID).Msg("failed to check out")

		return res, err // nolint:wrapcheck
	}

	window.CheckedOutAt = &now
	res.FromModel(window)

	return res, nil
}

// candidates returns the open windows at pincode on date whose provider has no leave covering it.
func (s *serviceImpl) candidates(ctx context.Context, pincode string, date time.Time) ([]model.Window, error) {
	windows, err := s.repo.GetOpenWindows(ctx, pincode, date)
	if err != nil {
		return nil, fmt.Errorf("failed to get open windows: %w", err)
	}

	if len(windows) == 0 {
		return nil, nil
	}

	onLeave, err := s.repo.GetProvidersOnLeave(ctx, providerIDs(windows), date)
	if err != nil {
		return nil, fmt.Errorf("failed to get providers on leave: %w", err)
	}

	return slices.DeleteFunc(windows, func(w model.Window) bool {
		return slices.Contains(onLeave, w.ProviderID)
	}), nil
}

func (s *serviceImpl) IsAvailable(ctx context.Context, serviceID, pincode string, date time.Time) (available bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".IsAvailable")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	windows, err := s.candidates(ctx, pincode, date)
	if err != nil {
		log.Error().Err(err).Str("pincode", pincode).Msg("failed to check availability")

		return false, err
	}

	if len(windows) == 0 {
		return false, nil
	}

	offering, err := s.repo.GetProvidersOffering(ctx, serviceID, providerIDs(windows))
	if err != nil {
		log.Error().Err(err).Str("serviceID", serviceID).Msg("failed to get providers offering service")

		return false, fmt.Errorf("failed to get providers offering service: %w", err)
	}

	return len(offering) > 0, nil
}

func (s *serviceImpl) ActiveProviders(ctx context.Context, pincode string, date time.Time) (res []model.ActiveProvider, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ActiveProviders")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	windows, err := s.candidates(ctx, pincode, date)
	if err != nil {
		log.Error().Err(err).Str("pincode", pincode).Msg("failed to get active providers")

		return nil, err
	}

	if len(windows) == 0 {
		return []model.ActiveProvider{}, nil
	}

	loads, err := s.repo.GetProviderLoads(ctx, providerIDs(windows), date)
	if err != nil {
		log.Error().Err(err).Str("pincode", pincode).Msg("failed to get provider loads")

		return nil, fmt.Errorf("failed to get provider loads: %w", err)
	}

	byProvider := make(map[string]int, len(loads))
	for _, load := range loads {
		byProvider[load.ProviderID] = load.Total
	}

	res = make([]model.ActiveProvider, 0, len(windows))
	for _, window := range windows {
		res = append(res, model.ActiveProvider{
			ProviderID:     window.ProviderID,
			Pincode:        window.Pincode,
			CheckedInAt:    window.CheckedInAt,
			ActiveBookings: byProvider[window.ProviderID],
		})
	}

	slices.SortStableFunc(res, func(a, b model.ActiveProvider) int {
		if c := cmp.Compare(a.ActiveBookings, b.ActiveBookings); c != 0 {
			return c
		}

		return a.CheckedInAt.Compare(b.CheckedInAt)
	})

	return res, nil
}

func (s *serviceImpl) CanServe(ctx context.Context, providerID, serviceID, pincode string, date time.Time) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CanServe")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	offers, err := s.repo.OffersService(ctx, providerID, serviceID)
	if err != nil {
		return fmt.Errorf("failed to check provider services: %w", err)
	}

	if !offers {
		return failure.New(failure.KindProviderUnavailable, "provider does not offer this service") // nolint:wrapcheck
	}

	serves, err := s.repo.ServesPincode(ctx, providerID, pincode)
	if err != nil {
		return fmt.Errorf("failed to check provider service area: %w", err)
	}

	if !serves {
		return failure.New(failure.KindProviderUnavailable, "provider does not serve this pincode") // nolint:wrapcheck
	}

	onLeave, err := s.repo.GetProvidersOnLeave(ctx, []string{providerID}, date)
	if err != nil {
		return fmt.Errorf("failed to check provider leave: %w", err)
	}

	if len(onLeave) > 0 {
		return failure.New(failure.KindProviderUnavailable, "provider is on leave on this date") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) CreateLeave(ctx context.Context, req dto.CreateLeaveRequest) (res dto.LeaveResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateLeave")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	start, err := timezone.ParseBusinessDate(req.StartDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	end, err := timezone.ParseBusinessDate(req.EndDate)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if end.Before(start) {
		return res, failure.BadRequestFromString("end_date must not be before start_date") // nolint:wrapcheck
	}

	if _, err = s.lookup.ResolveProvider(ctx, req.ProviderID); err != nil {
		return res, err // nolint:wrapcheck
	}

	release, err := s.locker.Acquire(ctx, lock.ProviderKey(req.ProviderID), s.cfg.Booking.AssignLockTTL, s.cfg.Booking.AssignLockWait)
	if errors.Is(err, lock.ErrNotAcquired) {
		return res, failure.Conflict("provider schedule is being changed, retry shortly") // nolint:wrapcheck
	}

	if err != nil {
		return res, fmt.Errorf("failed to lock provider: %w", err)
	}
	defer release()

	act := actor.FromContext(ctx)
	now := timezone.Now()
	leave := model.Leave{
		ID:         uuid.NewString(),
		ProviderID: req.ProviderID,
		StartDate:  start,
		EndDate:    end,
		Reason:     req.Reason,
		Status:     model.LeaveStatusActive,
		Metadata:   sharedModel.NewMetadata(act.ID, now),
	}

	var worklist []model.WorklistItem

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertLeaveTx(ctx, tx, leave); err != nil {
			return fmt.Errorf("failed to insert leave: %w", err)
		}

		worklist, err = s.repo.GetAssignedBookingsTx(ctx, tx, req.ProviderID, start, end)
		if err != nil {
			return fmt.Errorf("failed to get reassignment worklist: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("providerID", req.ProviderID).Msg("failed to create leave")

		return res, err // nolint:wrapcheck
	}

	if len(worklist) > 0 {
		bookingIDs := make([]string, len(worklist))
		for i, item := range worklist {
			bookingIDs[i] = item.BookingID
		}

		log.Info().Str("providerID", req.ProviderID).Int("bookings", len(worklist)).Msg("leave requires reassignment")

		s.dispatcher.Publish(ctx, notificationModel.Event{
			Type:        notificationModel.EventLeaveReassignment,
			AggregateID: leave.ID,
			ActorID:     act.ID,
			ActorRole:   act.Role,
			OccurredAt:  now,
			Payload: map[string]any{
				"provider_id": req.ProviderID,
				"booking_ids": bookingIDs,
			},
		})
	}

	res.FromModel(leave, worklist)

	return res, nil
}

func (s *serviceImpl) CancelLeave(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CancelLeave")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	actorID := actor.FromContext(ctx).ID

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		leave, err := s.repo.GetLeaveForUpdateTx(ctx, tx, id)
		if err != nil {
			return fmt.Errorf("failed to get leave: %w", err)
		}

		if leave.ID == constant.Empty {
			return failure.NotFound(model.EntityLeave) // nolint:wrapcheck
		}

		if leave.Status == model.LeaveStatusCancelled {
			return failure.Conflict("leave is already cancelled") // nolint:wrapcheck
		}

		update := map[string]any{
			model.FieldStatus:        model.LeaveStatusCancelled,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: actorID,
		}

		if err = s.repo.UpdateLeaveTx(ctx, tx, update, id); err != nil {
			return fmt.Errorf("failed to cancel leave: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Str("leaveID", id).Msg("failed to cancel leave")

		return err // nolint:wrapcheck
	}

	return nil
}

func providerFilter(providerID, table string) gDto.FilterGroup {
	if providerID == constant.Empty {
		return gDto.FilterGroup{}
	}

	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldProviderID, Value: providerID, Operator: gDto.FilterOperatorEq, Table: table},
		},
	}
}

func (s *serviceImpl) GetLeaves(ctx context.Context, params gDto.QueryParams, providerID string) (res dto.GetLeavesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetLeaves")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := providerFilter(providerID, model.TableLeaves)

	leaves, err := s.repo.GetLeaves(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get leaves")

		return res, fmt.Errorf("failed to get leaves: %w", err)
	}

	total, err := s.repo.CountLeaves(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count leaves")

		return res, fmt.Errorf("failed to count leaves: %w", err)
	}

	res.FromModels(leaves, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) GetWindows(ctx context.Context, params gDto.QueryParams, providerID string) (res dto.GetWindowsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetWindows")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := providerFilter(providerID, model.TableWindows)

	windows, err := s.repo.GetWindows(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability windows")

		return res, fmt.Errorf("failed to get availability windows: %w", err)
	}

	total, err := s.repo.CountWindows(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count availability windows")

		return res, fmt.Errorf("failed to count availability windows: %w", err)
	}

	res.FromModels(windows, total, params.Limit)

	return res, nil
}

func providerIDs(windows []model.Window) []string {
	ids := make([]string, 0, len(windows))
	for _, window := range windows {
		if !slices.Contains(ids, window.ProviderID) {
			ids = append(ids, window.ProviderID)
		}
	}

	return ids
}
