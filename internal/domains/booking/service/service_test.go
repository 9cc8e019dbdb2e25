package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"fieldserve/config"
	"fieldserve/infras/metrics"
	otelMocks "fieldserve/infras/otel/mocks"
	postgresMocks "fieldserve/infras/postgres/mocks"
	availabilityMocks "fieldserve/internal/domains/availability/mocks"
	billingMocks "fieldserve/internal/domains/billing/mocks"
	billingDto "fieldserve/internal/domains/billing/model/dto"
	bookingMocks "fieldserve/internal/domains/booking/mocks"
	"fieldserve/internal/domains/booking/model"
	"fieldserve/internal/domains/booking/model/dto"
	"fieldserve/internal/domains/booking/service"
	notificationMocks "fieldserve/internal/domains/notification/mocks"
	pricingMocks "fieldserve/internal/domains/pricing/mocks"
	pricingModel "fieldserve/internal/domains/pricing/model"
	refdataMocks "fieldserve/internal/domains/refdata/mocks"
	refdataModel "fieldserve/internal/domains/refdata/model"
	"fieldserve/shared/actor"
	cacheMocks "fieldserve/shared/cache/mocks"
	"fieldserve/shared/constant"
	"fieldserve/shared/failure"
	"fieldserve/shared/lock"
	"fieldserve/shared/timezone"
)

const (
	bookingID  = "booking-1"
	customerID = "customer-1"
	providerID = "provider-1"
	serviceID  = "svc-clean"
	pincode    = "560001"
)

var errCacheMiss = errors.New("cache miss")

var (
	admin    = actor.Actor{ID: "admin-1", Role: constant.RoleAdmin}
	customer = actor.Actor{ID: customerID, Role: constant.RoleCustomer}
	provider = actor.Actor{ID: providerID, Role: constant.RoleProvider}
)

type fixture struct {
	svc        service.Lifecycle
	repo       *bookingMocks.MockBooking
	lookup     *refdataMocks.MockLookup
	quoter     *pricingMocks.MockQuoter
	matcher    *availabilityMocks.MockMatcher
	ledger     *billingMocks.MockLedger
	dispatcher *notificationMocks.MockDispatcher
}

func newConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Booking.RescheduleResponseWindow = 48 * time.Hour
	cfg.Booking.AssignLockTTL = 5 * time.Second
	cfg.Booking.AssignLockWait = 5 * time.Second
	cfg.Cache.TTL = 60

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

func quietCache(ctrl *gomock.Controller) *cacheMocks.MockRedisCache {
	cache := cacheMocks.NewMockRedisCache(ctrl)
	cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errCacheMiss).AnyTimes()
	cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return cache
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)

	f := fixture{
		repo:       bookingMocks.NewMockBooking(ctrl),
		lookup:     refdataMocks.NewMockLookup(ctrl),
		quoter:     pricingMocks.NewMockQuoter(ctrl),
		matcher:    availabilityMocks.NewMockMatcher(ctrl),
		ledger:     billingMocks.NewMockLedger(ctrl),
		dispatcher: notificationMocks.NewMockDispatcher(ctrl),
	}

	f.dispatcher.EXPECT().Publish(gomock.Any(), gomock.Any()).AnyTimes()

	f.svc = service.New(f.repo, passThroughTransactor(ctrl), f.lookup, f.quoter, f.matcher, f.ledger,
		lock.NewLocal(), f.dispatcher, metrics.NewNoop(), newConfig(), quietCache(ctrl), otelMocks.NewOtel())

	return f
}

func as(a actor.Actor) context.Context {
	return actor.WithContext(context.Background(), a)
}

func bookingIn(status model.Status) model.Booking {
	start := timezone.BusinessDate(timezone.Now()).AddDate(0, 0, 1).Add(10 * time.Hour)

	b := model.Booking{
		ID:               bookingID,
		CustomerID:       customerID,
		ServiceID:        serviceID,
		Pincode:          pincode,
		Status:           status,
		PreferredDate:    timezone.BusinessDate(start),
		PreferredStartAt: start,
		PreferredEndAt:   start.Add(2 * time.Hour),
		PriceBreakdown:   pricingModel.PriceBreakdown{FinalPrice: decimal.NewFromInt(1180)},
	}

	if status != model.StatusPending {
		p := providerID
		b.AssignedProviderID = &p
	}

	return b
}

// expectCommit stubs the write path: update, re-read as after, history.
func (f fixture) expectCommit(before model.Booking, after model.Booking, check func(mod map[string]any)) {
	gomock.InOrder(
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), before.ID).Return(before, nil),
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), before.ID).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ string) error {
				if check != nil {
					check(mod)
				}

				return nil
			}),
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), before.ID).Return(after, nil),
		f.repo.EXPECT().InsertHistoryTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, history model.History) error {
				if history.FromStatus != before.Status || history.ToStatus != after.Status {
					return errors.New("unexpected history row")
				}

				return nil
			}),
	)
}

func TestInvalidTransitionWritesNothing(t *testing.T) {
	tests := []struct {
		name   string
		status model.Status
		call   func(svc service.Lifecycle) error
	}{
		{
			name:   "start a pending booking",
			status: model.StatusPending,
			call: func(svc service.Lifecycle) error {
				_, err := svc.Start(as(provider), bookingID)

				return err
			},
		},
		{
			name:   "complete an assigned booking",
			status: model.StatusAssigned,
			call: func(svc service.Lifecycle) error {
				_, err := svc.Complete(as(admin), bookingID, dto.CompleteBookingRequest{})

				return err
			},
		},
		{
			name:   "hold an in-progress booking",
			status: model.StatusInProgress,
			call: func(svc service.Lifecycle) error {
				_, err := svc.Hold(as(admin), bookingID, dto.HoldBookingRequest{Reason: "payment check"})

				return err
			},
		},
		{
			name:   "cancel a completed booking",
			status: model.StatusCompleted,
			call: func(svc service.Lifecycle) error {
				_, err := svc.Cancel(as(customer), bookingID, dto.CancelBookingRequest{Reason: "changed mind"})

				return err
			},
		},
		{
			name:   "reject a pending booking",
			status: model.StatusPending,
			call: func(svc service.Lifecycle) error {
				_, err := svc.Reject(as(admin), bookingID, dto.RejectBookingRequest{Reason: "out of area"})

				return err
			},
		},
		{
			name:   "assign a rejected booking",
			status: model.StatusRejected,
			call: func(svc service.Lifecycle) error {
				_, err := svc.Assign(as(admin), bookingID, dto.AssignBookingRequest{ProviderID: providerID})

				return err
			},
		},
		{
			name:   "propose reschedule for a pending booking",
			status: model.StatusPending,
			call: func(svc service.Lifecycle) error {
				_, err := svc.ProposeReschedule(as(provider), bookingID, dto.ProposeRescheduleRequest{
					PreferredDate:      timezone.Format(timezone.Today().AddDate(0, 0, 2), constant.BusinessDateFormat),
					PreferredStartTime: "09:00",
					PreferredEndTime:   "11:00",
				})

				return err
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), bookingID).Return(bookingIn(tt.status), nil)

			err := tt.call(f.svc)
			require.Error(t, err)
			assert.Equal(t, failure.KindInvalidTransition, failure.KindOf(err))
		})
	}
}

func TestNotFound(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), "missing").Return(model.Booking{}, nil)

	_, err := f.svc.Hold(as(admin), "missing", dto.HoldBookingRequest{Reason: "check"})
	require.Error(t, err)
	assert.Equal(t, failure.KindNotFound, failure.KindOf(err))
}

func TestAssign(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		before := bookingIn(model.StatusPending)
		after := bookingIn(model.StatusAssigned)

		f.matcher.EXPECT().CanServe(gomock.Any(), providerID, serviceID, pincode, before.PreferredDate).Return(nil)
		f.repo.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), providerID, bookingID, before.PreferredStartAt, before.PreferredEndAt).Return(0, nil)
		f.expectCommit(before, after, func(mod map[string]any) {
			assert.Equal(t, model.StatusAssigned, mod[model.FieldStatus])
			assert.Equal(t, providerID, mod[model.FieldAssignedProviderID])
			assert.Equal(t, admin.ID, mod[model.FieldAssignedAdminID])
		})

		res, err := f.svc.Assign(as(admin), bookingID, dto.AssignBookingRequest{ProviderID: providerID})
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusAssigned), res.Status)
		assert.Equal(t, providerID, res.AssignedProviderID)
	})

	t.Run("provider not eligible", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), bookingID).Return(bookingIn(model.StatusPending), nil)
		f.matcher.EXPECT().CanServe(gomock.Any(), providerID, serviceID, pincode, gomock.Any()).
			Return(failure.New(failure.KindProviderUnavailable, "provider is on leave"))

		_, err := f.svc.Assign(as(admin), bookingID, dto.AssignBookingRequest{ProviderID: providerID})
		require.Error(t, err)
		assert.Equal(t, failure.KindProviderUnavailable, failure.KindOf(err))
	})

	t.Run("overlapping booking", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), bookingID).Return(bookingIn(model.StatusPending), nil)
		f.matcher.EXPECT().CanServe(gomock.Any(), providerID, serviceID, pincode, gomock.Any()).Return(nil)
		f.repo.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), providerID, bookingID, gomock.Any(), gomock.Any()).Return(1, nil)

		_, err := f.svc.Assign(as(admin), bookingID, dto.AssignBookingRequest{ProviderID: providerID})
		require.Error(t, err)
		assert.Equal(t, failure.KindProviderUnavailable, failure.KindOf(err))
	})

	t.Run("slot index backstop", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), bookingID).Return(bookingIn(model.StatusPending), nil)
		f.matcher.EXPECT().CanServe(gomock.Any(), providerID, serviceID, pincode, gomock.Any()).Return(nil)
		f.repo.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), providerID, bookingID, gomock.Any(), gomock.Any()).Return(0, nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), bookingID).
			Return(&pq.Error{Code: "23505", Constraint: model.ProviderSlotConstraint})

		_, err := f.svc.Assign(as(admin), bookingID, dto.AssignBookingRequest{ProviderID: providerID})
		require.Error(t, err)
		assert.Equal(t, failure.KindProviderUnavailable, failure.KindOf(err))
	})
}

func TestStart(t *testing.T) {
	t.Run("assigned provider", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit(bookingIn(model.StatusAssigned), bookingIn(model.StatusInProgress), func(mod map[string]any) {
			assert.Contains(t, mod, model.FieldStartedAt)
		})

		res, err := f.svc.Start(as(provider), bookingID)
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusInProgress), res.Status)
	})

	t.Run("another provider", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), bookingID).Return(bookingIn(model.StatusAssigned), nil)

		_, err := f.svc.Start(as(actor.Actor{ID: "provider-2", Role: constant.RoleProvider}), bookingID)
		require.Error(t, err)
		assert.Equal(t, failure.KindForbidden, failure.KindOf(err))
	})
}

func TestComplete(t *testing.T) {
	t.Run("reprices and invoices", func(t *testing.T) {
		f := newFixture(t)
		before := bookingIn(model.StatusInProgress)
		before.PriceBreakdown = pricingModel.PriceBreakdown{
			BasePrice:    decimal.NewFromInt(1000),
			TaxRate:      decimal.NewFromInt(18),
			Jurisdiction: pricingModel.JurisdictionInterState,
		}

		f.quoter.EXPECT().Config().Return(pricingModel.Config{Precision: 2})
		f.expectCommit(before, bookingIn(model.StatusCompleted), func(mod map[string]any) {
			final, ok := mod[model.FieldFinalPrice].(decimal.Decimal)
			require.True(t, ok)
			assert.Equal(t, "1416.00", final.StringFixed(2))
		})
		f.ledger.EXPECT().IssueInvoice(gomock.Any(), bookingID).Return(billingDto.InvoiceResponse{Number: "INV-1"}, nil)

		res, err := f.svc.Complete(as(admin), bookingID, dto.CompleteBookingRequest{FinalBasePrice: "1200"})
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusCompleted), res.Status)
	})

	t.Run("final price finer than a paisa", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.Complete(as(admin), bookingID, dto.CompleteBookingRequest{FinalBasePrice: "1200.005"})
		require.Error(t, err)
		assert.Equal(t, failure.KindInvalidInput, failure.KindOf(err))
	})

	t.Run("invoice failure does not fail completion", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit(bookingIn(model.StatusInProgress), bookingIn(model.StatusCompleted), nil)
		f.ledger.EXPECT().IssueInvoice(gomock.Any(), bookingID).Return(billingDto.InvoiceResponse{}, errors.New("sequence table locked"))

		_, err := f.svc.Complete(as(admin), bookingID, dto.CompleteBookingRequest{})
		require.NoError(t, err)
	})
}

func TestCancelClearsProvider(t *testing.T) {
	f := newFixture(t)
	f.expectCommit(bookingIn(model.StatusAssigned), bookingIn(model.StatusCancelled), func(mod map[string]any) {
		assert.Nil(t, mod[model.FieldAssignedProviderID])
		assert.Equal(t, customer.Role, mod[model.FieldCancelledByRole])
		assert.Equal(t, "changed plans", mod[model.FieldCancellationReason])
	})

	_, err := f.svc.Cancel(as(customer), bookingID, dto.CancelBookingRequest{Reason: "changed plans"})
	require.NoError(t, err)
}

func TestProposeReschedule(t *testing.T) {
	f := newFixture(t)
	f.expectCommit(bookingIn(model.StatusAssigned), bookingIn(model.StatusRescheduleRequested), func(mod map[string]any) {
		requested, ok := mod[model.FieldRescheduleRequestedAt].(time.Time)
		require.True(t, ok)

		expires, ok := mod[model.FieldRescheduleExpiresAt].(time.Time)
		require.True(t, ok)
		assert.Equal(t, 48*time.Hour, expires.Sub(requested))
	})

	_, err := f.svc.ProposeReschedule(as(provider), bookingID, dto.ProposeRescheduleRequest{
		PreferredDate:      timezone.Format(timezone.Today().AddDate(0, 0, 3), constant.BusinessDateFormat),
		PreferredStartTime: "14:00",
		PreferredEndTime:   "16:00",
	})
	require.NoError(t, err)
}

func proposal(expiresIn time.Duration) model.Booking {
	b := bookingIn(model.StatusRescheduleRequested)
	start := b.PreferredStartAt.AddDate(0, 0, 2)
	end := start.Add(2 * time.Hour)
	expires := timezone.Now().Add(expiresIn)

	b.RescheduleStartAt = &start
	b.RescheduleEndAt = &end
	b.RescheduleExpiresAt = &expires

	return b
}

func TestRespondReschedule(t *testing.T) {
	accept, decline := true, false

	t.Run("accept moves the window", func(t *testing.T) {
		f := newFixture(t)
		before := proposal(time.Hour)

		f.repo.EXPECT().Get(gomock.Any(), bookingID).Return(before, nil)
		f.matcher.EXPECT().CanServe(gomock.Any(), providerID, serviceID, pincode, timezone.BusinessDate(*before.RescheduleStartAt)).Return(nil)
		f.repo.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), providerID, bookingID, *before.RescheduleStartAt, *before.RescheduleEndAt).Return(0, nil)
		f.expectCommit(before, bookingIn(model.StatusAssigned), func(mod map[string]any) {
			assert.Equal(t, *before.RescheduleStartAt, mod[model.FieldPreferredStartAt])
			assert.Nil(t, mod[model.FieldRescheduleExpiresAt])
		})

		res, err := f.svc.RespondReschedule(as(customer), bookingID, dto.RespondRescheduleRequest{Accept: &accept})
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusAssigned), res.Status)
	})

	t.Run("decline cancels", func(t *testing.T) {
		f := newFixture(t)
		f.expectCommit(proposal(time.Hour), bookingIn(model.StatusCancelled), func(mod map[string]any) {
			assert.Equal(t, "reschedule declined", mod[model.FieldCancellationReason])
		})

		res, err := f.svc.RespondReschedule(as(customer), bookingID, dto.RespondRescheduleRequest{Accept: &decline})
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusCancelled), res.Status)
	})

	t.Run("only the customer responds", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), bookingID).Return(proposal(time.Hour), nil)

		_, err := f.svc.RespondReschedule(as(provider), bookingID, dto.RespondRescheduleRequest{Accept: &decline})
		require.Error(t, err)
		assert.Equal(t, failure.KindForbidden, failure.KindOf(err))
	})

	t.Run("missing answer is refused", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.svc.RespondReschedule(as(customer), bookingID, dto.RespondRescheduleRequest{Reason: "works for me"})
		require.Error(t, err)
		assert.Equal(t, failure.KindInvalidInput, failure.KindOf(err))
	})

	t.Run("provider changed while waiting for the lock", func(t *testing.T) {
		f := newFixture(t)
		locked := proposal(time.Hour)
		other := "provider-2"
		locked.AssignedProviderID = &other

		f.repo.EXPECT().Get(gomock.Any(), bookingID).Return(proposal(time.Hour), nil)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), bookingID).Return(locked, nil)

		_, err := f.svc.RespondReschedule(as(customer), bookingID, dto.RespondRescheduleRequest{Accept: &accept})
		require.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.KindOf(err))
	})

	t.Run("expired proposal is cancelled and refused", func(t *testing.T) {
		f := newFixture(t)
		before := proposal(-time.Minute)

		f.repo.EXPECT().Get(gomock.Any(), bookingID).Return(before, nil)
		f.expectCommit(before, bookingIn(model.StatusCancelled), func(mod map[string]any) {
			assert.Equal(t, model.StatusCancelled, mod[model.FieldStatus])
			assert.Equal(t, actor.System.ID, mod[model.FieldCancelledBy])
			assert.Equal(t, "reschedule proposal expired", mod[model.FieldCancellationReason])
		})

		_, err := f.svc.RespondReschedule(as(customer), bookingID, dto.RespondRescheduleRequest{Accept: &accept})
		require.Error(t, err)
		assert.Equal(t, failure.KindInvalidTransition, failure.KindOf(err))
	})
}

func TestResume(t *testing.T) {
	t.Run("keeps the stored provider", func(t *testing.T) {
		f := newFixture(t)
		before := bookingIn(model.StatusOnHold)

		f.repo.EXPECT().Get(gomock.Any(), bookingID).Return(before, nil)
		f.matcher.EXPECT().CanServe(gomock.Any(), providerID, serviceID, pincode, before.PreferredDate).Return(nil)
		f.repo.EXPECT().CountOverlappingTx(gomock.Any(), gomock.Any(), providerID, bookingID, before.PreferredStartAt, before.PreferredEndAt).Return(0, nil)
		f.expectCommit(before, bookingIn(model.StatusAssigned), func(mod map[string]any) {
			assert.Equal(t, providerID, mod[model.FieldAssignedProviderID])
		})

		res, err := f.svc.Resume(as(admin), bookingID, dto.ResumeBookingRequest{})
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusAssigned), res.Status)
	})

	t.Run("provider changed while waiting for the lock", func(t *testing.T) {
		f := newFixture(t)
		locked := bookingIn(model.StatusOnHold)
		other := "provider-2"
		locked.AssignedProviderID = &other

		f.repo.EXPECT().Get(gomock.Any(), bookingID).Return(bookingIn(model.StatusOnHold), nil)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), bookingID).Return(locked, nil)

		_, err := f.svc.Resume(as(admin), bookingID, dto.ResumeBookingRequest{})
		require.Error(t, err)
		assert.Equal(t, failure.KindConflict, failure.KindOf(err))
	})

	t.Run("unassigned booking needs a provider", func(t *testing.T) {
		f := newFixture(t)
		unassigned := bookingIn(model.StatusOnHold)
		unassigned.AssignedProviderID = nil

		f.repo.EXPECT().Get(gomock.Any(), bookingID).Return(unassigned, nil)

		_, err := f.svc.Resume(as(admin), bookingID, dto.ResumeBookingRequest{})
		require.Error(t, err)
		assert.Equal(t, failure.KindInvalidInput, failure.KindOf(err))
	})
}

func TestGet_ReportsExpiredProposalAsCancelled(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().Get(gomock.Any(), bookingID).Return(proposal(-time.Minute), nil)

	res, err := f.svc.Get(as(customer), bookingID)
	require.NoError(t, err)
	assert.Equal(t, string(model.StatusCancelled), res.Status)
	assert.Equal(t, "reschedule proposal expired", res.CancellationReason)
}

func TestRate(t *testing.T) {
	rated := bookingIn(model.StatusCompleted)
	rating := 4
	rated.Rating = &rating

	tests := []struct {
		name     string
		booking  model.Booking
		caller   actor.Actor
		wantKind failure.Kind
	}{
		{name: "completed booking", booking: bookingIn(model.StatusCompleted), caller: customer},
		{name: "not completed", booking: bookingIn(model.StatusInProgress), caller: customer, wantKind: failure.KindInvalidTransition},
		{name: "someone else", booking: bookingIn(model.StatusCompleted), caller: provider, wantKind: failure.KindForbidden},
		{name: "rated twice", booking: rated, caller: customer, wantKind: failure.KindConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), bookingID).Return(tt.booking, nil)

			if tt.wantKind == "" {
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), bookingID).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, mod map[string]any, _ string) error {
						assert.Equal(t, 5, mod[model.FieldRating])

						return nil
					})
			}

			res, err := f.svc.Rate(as(tt.caller), bookingID, dto.RateBookingRequest{Rating: 5, Feedback: "spotless"})
			if tt.wantKind != "" {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, failure.KindOf(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 5, res.Rating)
			assert.Equal(t, "spotless", res.Feedback)
		})
	}
}

func TestCreate(t *testing.T) {
	tomorrow := timezone.Format(timezone.Today().AddDate(0, 0, 1), constant.BusinessDateFormat)
	req := dto.CreateBookingRequest{
		ServiceID:          serviceID,
		Pincode:            pincode,
		Address:            "12 MG Road",
		PreferredDate:      tomorrow,
		PreferredStartTime: "10:00",
		PreferredEndTime:   "12:00",
	}

	t.Run("success", func(t *testing.T) {
		f := newFixture(t)
		f.lookup.EXPECT().ResolveCustomer(gomock.Any(), customerID).Return(refdataModel.Customer{ID: customerID}, nil)
		f.matcher.EXPECT().IsAvailable(gomock.Any(), serviceID, pincode, timezone.Today()).Return(true, nil)
		f.quoter.EXPECT().Quote(gomock.Any(), gomock.Any()).
			Return(pricingModel.PriceBreakdown{FinalPrice: decimal.RequireFromString("1180")}, nil)
		f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, b model.Booking) error {
				assert.Equal(t, model.StatusPending, b.Status)
				assert.Equal(t, customerID, b.CustomerID)
				assert.Nil(t, b.AssignedProviderID)

				return nil
			})
		f.repo.EXPECT().InsertHistoryTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.Create(as(customer), req)
		require.NoError(t, err)
		assert.Equal(t, string(model.StatusPending), res.Status)
		assert.Equal(t, "1180.00", res.EstimatedPrice)
	})

	t.Run("no provider available", func(t *testing.T) {
		f := newFixture(t)
		f.lookup.EXPECT().ResolveCustomer(gomock.Any(), customerID).Return(refdataModel.Customer{ID: customerID}, nil)
		f.matcher.EXPECT().IsAvailable(gomock.Any(), serviceID, pincode, gomock.Any()).Return(false, nil)

		_, err := f.svc.Create(as(customer), req)
		require.Error(t, err)
		assert.Equal(t, failure.KindProviderUnavailable, failure.KindOf(err))
	})

	t.Run("date in the past", func(t *testing.T) {
		f := newFixture(t)
		past := req
		past.PreferredDate = timezone.Format(timezone.Today().AddDate(0, 0, -1), constant.BusinessDateFormat)

		_, err := f.svc.Create(as(customer), past)
		require.Error(t, err)
		assert.Equal(t, failure.KindInvalidInput, failure.KindOf(err))
	})

	t.Run("end before start", func(t *testing.T) {
		f := newFixture(t)
		inverted := req
		inverted.PreferredStartTime = "12:00"
		inverted.PreferredEndTime = "10:00"

		_, err := f.svc.Create(as(customer), inverted)
		require.Error(t, err)
		assert.Equal(t, failure.KindInvalidInput, failure.KindOf(err))
	})
}

func TestDashboard(t *testing.T) {
	f := newFixture(t)
	f.repo.EXPECT().CountByStatus(gomock.Any(), providerID, gomock.Any()).Return([]model.StatusCount{
		{Status: model.StatusAssigned, Total: 2},
		{Status: model.StatusCompleted, Total: 5},
	}, nil)

	res, err := f.svc.Dashboard(as(admin), providerID)
	require.NoError(t, err)
	assert.Equal(t, 7, res.Total)
	assert.Equal(t, 2, res.Counts[string(model.StatusAssigned)])
	assert.Equal(t, 0, res.Counts[string(model.StatusOnHold)])
}
