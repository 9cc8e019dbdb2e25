package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fieldserve/config"
	otelMocks "fieldserve/infras/otel/mocks"
	postgresMocks "fieldserve/infras/postgres/mocks"
	availabilityMocks "fieldserve/internal/domains/availability/mocks"
	"fieldserve/internal/domains/availability/model"
	"fieldserve/internal/domains/availability/model/dto"
	"fieldserve/internal/domains/availability/repository"
	"fieldserve/internal/domains/availability/service"
	notificationMocks "fieldserve/internal/domains/notification/mocks"
	notificationModel "fieldserve/internal/domains/notification/model"
	refdataMocks "fieldserve/internal/domains/refdata/mocks"
	refdataModel "fieldserve/internal/domains/refdata/model"
	"fieldserve/shared/failure"
	"fieldserve/shared/lock"
	"fieldserve/shared/timezone"
)

const (
	pincode   = "560001"
	serviceID = "svc-clean"
)

type fixture struct {
	svc        service.Matcher
	repo       *availabilityMocks.MockAvailability
	lookup     *refdataMocks.MockLookup
	dispatcher *notificationMocks.MockDispatcher
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.AssignLockTTL = time.Second
	cfg.Booking.AssignLockWait = 100 * time.Millisecond

	return cfg
}

func passThroughTransactor(ctrl *gomock.Controller) *postgresMocks.MockTransactor {
	transactor := postgresMocks.NewMockTransactor(ctrl)
	transactor.EXPECT().
		WithTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, fn func(*sqlx.Tx) error) error {
			return fn(nil)
		}).
		AnyTimes()

	return transactor
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       availabilityMocks.NewMockAvailability(ctrl),
		lookup:     refdataMocks.NewMockLookup(ctrl),
		dispatcher: notificationMocks.NewMockDispatcher(ctrl),
	}

	f.svc = service.New(f.repo, passThroughTransactor(ctrl), f.lookup, lock.NewLocal(), f.dispatcher, newConfig(), otelMocks.NewOtel())

	return f
}

func mustDate(t *testing.T, value string) time.Time {
	t.Helper()

	date, err := timezone.ParseBusinessDate(value)
	require.NoError(t, err)

	return date
}

func TestMatcher_CheckIn(t *testing.T) {
	date := "2026-10-20"

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantKind  failure.Kind
		wantErr   bool
	}{
		{
			name: "success",
			setupMock: func(f fixture) {
				f.lookup.EXPECT().ResolveProvider(gomock.Any(), "p1").Return(refdataModel.Provider{ID: "p1", Active: true}, nil)
				f.lookup.EXPECT().ResolveLocation(gomock.Any(), pincode).Return(refdataModel.Location{Pincode: pincode, Active: true}, nil)
				f.repo.EXPECT().GetOpenWindowForUpdateTx(gomock.Any(), gomock.Any(), "p1", gomock.Any()).Return(model.Window{}, nil)
				f.repo.EXPECT().InsertWindowTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "open window exists",
			setupMock: func(f fixture) {
				f.lookup.EXPECT().ResolveProvider(gomock.Any(), "p1").Return(refdataModel.Provider{ID: "p1", Active: true}, nil)
				f.lookup.EXPECT().ResolveLocation(gomock.Any(), pincode).Return(refdataModel.Location{Pincode: pincode, Active: true}, nil)
				f.repo.EXPECT().GetOpenWindowForUpdateTx(gomock.Any(), gomock.Any(), "p1", gomock.Any()).
					Return(model.Window{ID: "w1", ProviderID: "p1", Pincode: pincode}, nil)
			},
			wantErr:  true,
			wantKind: failure.KindAlreadyCheckedIn,
		},
		{
			name: "concurrent check-in hits the unique index",
			setupMock: func(f fixture) {
				f.lookup.EXPECT().ResolveProvider(gomock.Any(), "p1").Return(refdataModel.Provider{ID: "p1", Active: true}, nil)
				f.lookup.EXPECT().ResolveLocation(gomock.Any(), pincode).Return(refdataModel.Location{Pincode: pincode, Active: true}, nil)
				f.repo.EXPECT().GetOpenWindowForUpdateTx(gomock.Any(), gomock.Any(), "p1", gomock.Any()).Return(model.Window{}, nil)
				f.repo.EXPECT().InsertWindowTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505", Constraint: model.OpenWindowConstraint})
			},
			wantErr:  true,
			wantKind: failure.KindAlreadyCheckedIn,
		},
		{
			name: "unknown pincode",
			setupMock: func(f fixture) {
				f.lookup.EXPECT().ResolveProvider(gomock.Any(), "p1").Return(refdataModel.Provider{ID: "p1", Active: true}, nil)
				f.lookup.EXPECT().ResolveLocation(gomock.Any(), pincode).
					Return(refdataModel.Location{}, failure.New(failure.KindInvalidInput, "unknown pincode"))
			},
			wantErr:  true,
			wantKind: failure.KindInvalidInput,
		},
		{
			name: "storage error",
			setupMock: func(f fixture) {
				f.lookup.EXPECT().ResolveProvider(gomock.Any(), "p1").Return(refdataModel.Provider{ID: "p1", Active: true}, nil)
				f.lookup.EXPECT().ResolveLocation(gomock.Any(), pincode).Return(refdataModel.Location{Pincode: pincode, Active: true}, nil)
				f.repo.EXPECT().GetOpenWindowForUpdateTx(gomock.Any(), gomock.Any(), "p1", gomock.Any()).
					Return(model.Window{}, errors.New("db down"))
			},
			wantErr:  true,
			wantKind: failure.KindInternal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.CheckIn(context.Background(), dto.CheckInRequest{ProviderID: "p1", Pincode: pincode, BusinessDate: date})

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.True(t, res.Open)
			assert.Equal(t, date, res.BusinessDate)
			assert.Equal(t, pincode, res.Pincode)
		})
	}
}

func TestMatcher_CheckOut(t *testing.T) {
	t.Run("closes the open window", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetOpenWindowForUpdateTx(gomock.Any(), gomock.Any(), "p1", gomock.Any()).
			Return(model.Window{ID: "w1", ProviderID: "p1", Pincode: pincode}, nil)
		f.repo.EXPECT().UpdateWindowTx(gomock.Any(), gomock.Any(), gomock.Any(), "w1").
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ string) error {
				assert.Contains(t, mod, model.FieldCheckedOutAt)

				return nil
			})

		res, err := f.svc.CheckOut(context.Background(), dto.CheckOutRequest{ProviderID: "p1"})

		require.NoError(t, err)
		assert.False(t, res.Open)
		assert.NotEmpty(t, res.CheckedOutAt)
	})

	t.Run("no open window", func(t *testing.T) {
		f := newFixture(t)

		f.repo.EXPECT().GetOpenWindowForUpdateTx(gomock.Any(), gomock.Any(), "p1", gomock.Any()).Return(model.Window{}, nil)

		_, err := f.svc.CheckOut(context.Background(), dto.CheckOutRequest{ProviderID: "p1"})

		assert.True(t, failure.IsKind(err, failure.KindNoOpenWindow))
	})
}

func TestMatcher_ActiveProviders_RankedByLoadThenCheckIn(t *testing.T) {
	f := newFixture(t)
	date := mustDate(t, "2026-10-20")
	base := date.Add(8 * time.Hour)

	f.repo.EXPECT().GetOpenWindows(gomock.Any(), pincode, date).Return([]model.Window{
		{ProviderID: "p1", Pincode: pincode, CheckedInAt: base},
		{ProviderID: "p2", Pincode: pincode, CheckedInAt: base.Add(time.Minute)},
		{ProviderID: "p3", Pincode: pincode, CheckedInAt: base.Add(2 * time.Minute)},
		{ProviderID: "p4", Pincode: pincode, CheckedInAt: base.Add(3 * time.Minute)},
	}, nil)
	f.repo.EXPECT().GetProvidersOnLeave(gomock.Any(), []string{"p1", "p2", "p3", "p4"}, date).Return([]string{"p4"}, nil)
	f.repo.EXPECT().GetProviderLoads(gomock.Any(), []string{"p1", "p2", "p3"}, date).
		Return([]model.ProviderLoad{{ProviderID: "p1", Total: 2}, {ProviderID: "p3", Total: 1}}, nil)

	res, err := f.svc.ActiveProviders(context.Background(), pincode, date)

	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, "p2", res[0].ProviderID)
	assert.Equal(t, "p3", res[1].ProviderID)
	assert.Equal(t, "p1", res[2].ProviderID)
	assert.Equal(t, 2, res[2].ActiveBookings)
}

func TestMatcher_IsAvailable_NoWindows(t *testing.T) {
	f := newFixture(t)
	date := mustDate(t, "2026-10-20")

	f.repo.EXPECT().GetOpenWindows(gomock.Any(), pincode, date).Return(nil, nil)

	available, err := f.svc.IsAvailable(context.Background(), serviceID, pincode, date)

	require.NoError(t, err)
	assert.False(t, available)
}

func TestMatcher_CanServe(t *testing.T) {
	date := mustDate(t, "2026-10-20")

	tests := []struct {
		name      string
		setupMock func(repo *availabilityMocks.MockAvailability)
		wantErr   bool
	}{
		{
			name: "eligible",
			setupMock: func(repo *availabilityMocks.MockAvailability) {
				repo.EXPECT().OffersService(gomock.Any(), "p1", serviceID).Return(true, nil)
				repo.EXPECT().ServesPincode(gomock.Any(), "p1", pincode).Return(true, nil)
				repo.EXPECT().GetProvidersOnLeave(gomock.Any(), []string{"p1"}, date).Return(nil, nil)
			},
		},
		{
			name: "does not offer the service",
			setupMock: func(repo *availabilityMocks.MockAvailability) {
				repo.EXPECT().OffersService(gomock.Any(), "p1", serviceID).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "outside service area",
			setupMock: func(repo *availabilityMocks.MockAvailability) {
				repo.EXPECT().OffersService(gomock.Any(), "p1", serviceID).Return(true, nil)
				repo.EXPECT().ServesPincode(gomock.Any(), "p1", pincode).Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "on leave",
			setupMock: func(repo *availabilityMocks.MockAvailability) {
				repo.EXPECT().OffersService(gomock.Any(), "p1", serviceID).Return(true, nil)
				repo.EXPECT().ServesPincode(gomock.Any(), "p1", pincode).Return(true, nil)
				repo.EXPECT().GetProvidersOnLeave(gomock.Any(), []string{"p1"}, date).Return([]string{"p1"}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f.repo)

			err := f.svc.CanServe(context.Background(), "p1", serviceID, pincode, date)

			if tt.wantErr {
				assert.True(t, failure.IsKind(err, failure.KindProviderUnavailable))

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestMatcher_CreateLeave(t *testing.T) {
	t.Run("returns the worklist and publishes a reassignment event", func(t *testing.T) {
		f := newFixture(t)

		f.lookup.EXPECT().ResolveProvider(gomock.Any(), "p1").Return(refdataModel.Provider{ID: "p1", Active: true}, nil)
		f.repo.EXPECT().InsertLeaveTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().GetAssignedBookingsTx(gomock.Any(), gomock.Any(), "p1", gomock.Any(), gomock.Any()).
			Return([]model.WorklistItem{{BookingID: "b1", Status: "assigned"}, {BookingID: "b2", Status: "on_hold"}}, nil)
		f.dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).
			Do(func(_ context.Context, events ...notificationModel.Event) {
				require.Len(t, events, 1)
				assert.Equal(t, notificationModel.EventLeaveReassignment, events[0].Type)
				assert.Equal(t, []string{"b1", "b2"}, events[0].Payload["booking_ids"])
			})

		res, err := f.svc.CreateLeave(context.Background(), dto.CreateLeaveRequest{
			ProviderID: "p1", StartDate: "2026-10-20", EndDate: "2026-10-21", Reason: "family",
		})

		require.NoError(t, err)
		assert.Equal(t, model.LeaveStatusActive, res.Status)
		assert.Len(t, res.Worklist, 2)
	})

	t.Run("no worklist means no event", func(t *testing.T) {
		f := newFixture(t)

		f.lookup.EXPECT().ResolveProvider(gomock.Any(), "p1").Return(refdataModel.Provider{ID: "p1", Active: true}, nil)
		f.repo.EXPECT().InsertLeaveTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.repo.EXPECT().GetAssignedBookingsTx(gomock.Any(), gomock.Any(), "p1", gomock.Any(), gomock.Any()).Return(nil, nil)

		res, err := f.svc.CreateLeave(context.Background(), dto.CreateLeaveRequest{
			ProviderID: "p1", StartDate: "2026-10-20", EndDate: "2026-10-20", Reason: "sick",
		})

		require.NoError(t, err)
		assert.Empty(t, res.Worklist)
	})

	t.Run("end before start", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.CreateLeave(context.Background(), dto.CreateLeaveRequest{
			ProviderID: "p1", StartDate: "2026-10-21", EndDate: "2026-10-20", Reason: "sick",
		})

		assert.True(t, failure.IsKind(err, failure.KindInvalidInput))
	})
}

func TestMatcher_CancelLeave(t *testing.T) {
	tests := []struct {
		name     string
		leave    model.Leave
		wantKind failure.Kind
		wantErr  bool
	}{
		{name: "active leave", leave: model.Leave{ID: "l1", Status: model.LeaveStatusActive}},
		{name: "not found", leave: model.Leave{}, wantErr: true, wantKind: failure.KindNotFound},
		{name: "already cancelled", leave: model.Leave{ID: "l1", Status: model.LeaveStatusCancelled}, wantErr: true, wantKind: failure.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			f.repo.EXPECT().GetLeaveForUpdateTx(gomock.Any(), gomock.Any(), "l1").Return(tt.leave, nil)

			if !tt.wantErr {
				f.repo.EXPECT().UpdateLeaveTx(gomock.Any(), gomock.Any(), gomock.Any(), "l1").Return(nil)
			}

			err := f.svc.CancelLeave(context.Background(), "l1")

			if tt.wantErr {
				assert.Equal(t, tt.wantKind, failure.KindOf(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}

// memoryRepo keeps windows and leaves in memory. Methods it does not override panic.
type memoryRepo struct {
	repository.Availability

	mu      sync.Mutex
	windows []model.Window
	leaves  []model.Leave
	offers  map[string][]string
}

func (m *memoryRepo) GetOpenWindowForUpdateTx(_ context.Context, _ *sqlx.Tx, providerID string, date time.Time) (model.Window, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, w := range m.windows {
		if w.ProviderID == providerID && w.BusinessDate.Equal(date) && w.IsOpen() {
			return w, nil
		}
	}

	return model.Window{}, nil
}

func (m *memoryRepo) InsertWindowTx(_ context.Context, _ *sqlx.Tx, window model.Window) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.windows = append(m.windows, window)

	return nil
}

func (m *memoryRepo) GetOpenWindows(_ context.Context, pincode string, date time.Time) ([]model.Window, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var res []model.Window

	for _, w := range m.windows {
		if w.Pincode == pincode && w.BusinessDate.Equal(date) && w.IsOpen() {
			res = append(res, w)
		}
	}

	return res, nil
}

func (m *memoryRepo) GetProvidersOnLeave(_ context.Context, providerIDs []string, date time.Time) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var res []string

	for _, id := range providerIDs {
		for _, leave := range m.leaves {
			if leave.ProviderID == id && leave.Covers(date) {
				res = append(res, id)

				break
			}
		}
	}

	return res, nil
}

func (m *memoryRepo) GetProvidersOffering(_ context.Context, serviceID string, providerIDs []string) ([]string, error) {
	var res []string

	for _, id := range providerIDs {
		for _, offered := range m.offers[id] {
			if offered == serviceID {
				res = append(res, id)
			}
		}
	}

	return res, nil
}

func (m *memoryRepo) GetProviderLoads(context.Context, []string, time.Time) ([]model.ProviderLoad, error) {
	return nil, nil
}

func (m *memoryRepo) InsertLeaveTx(_ context.Context, _ *sqlx.Tx, leave model.Leave) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.leaves = append(m.leaves, leave)

	return nil
}

func (m *memoryRepo) GetAssignedBookingsTx(context.Context, *sqlx.Tx, string, time.Time, time.Time) ([]model.WorklistItem, error) {
	return nil, nil
}

func TestMatcher_LeaveRemovesOnlyThatProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	lookup := refdataMocks.NewMockLookup(ctrl)
	lookup.EXPECT().ResolveProvider(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, id string) (refdataModel.Provider, error) {
			return refdataModel.Provider{ID: id, Active: true}, nil
		}).
		AnyTimes()
	lookup.EXPECT().ResolveLocation(gomock.Any(), pincode).
		Return(refdataModel.Location{Pincode: pincode, Active: true}, nil).
		AnyTimes()

	repo := &memoryRepo{offers: map[string][]string{
		"p1": {serviceID},
		"p2": {serviceID},
	}}

	svc := service.New(repo, passThroughTransactor(ctrl), lookup, lock.NewLocal(),
		notificationMocks.NewMockDispatcher(ctrl), newConfig(), otelMocks.NewOtel())

	ctx := context.Background()
	day := "2026-10-20"
	date := mustDate(t, day)

	for _, providerID := range []string{"p1", "p2"} {
		_, err := svc.CheckIn(ctx, dto.CheckInRequest{ProviderID: providerID, Pincode: pincode, BusinessDate: day})
		require.NoError(t, err)
	}

	_, err := svc.CheckIn(ctx, dto.CheckInRequest{ProviderID: "p1", Pincode: pincode, BusinessDate: day})
	assert.True(t, failure.IsKind(err, failure.KindAlreadyCheckedIn))

	_, err = svc.CreateLeave(ctx, dto.CreateLeaveRequest{ProviderID: "p1", StartDate: day, EndDate: day, Reason: "sick"})
	require.NoError(t, err)

	available, err := svc.IsAvailable(ctx, serviceID, pincode, date)
	require.NoError(t, err)
	assert.True(t, available)

	active, err := svc.ActiveProviders(ctx, pincode, date)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "p2", active[0].ProviderID)

	_, err = svc.CreateLeave(ctx, dto.CreateLeaveRequest{ProviderID: "p2", StartDate: day, EndDate: day, Reason: "sick"})
	require.NoError(t, err)

	available, err = svc.IsAvailable(ctx, serviceID, pincode, date)
	require.NoError(t, err)
	assert.False(t, available)

	nextDay := date.AddDate(0, 0, 1)
	available, err = svc.IsAvailable(ctx, serviceID, pincode, nextDay)
	require.NoError(t, err)
	assert.False(t, available, "no windows were opened for the next day")
}
