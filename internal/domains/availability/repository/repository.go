package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fieldserve/infras/otel"
	"fieldserve/infras/postgres"
	"fieldserve/internal/domains/availability/model"
	bookingModel "fieldserve/internal/domains/booking/model"
	"fieldserve/shared"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/logger"
	gRepo "fieldserve/shared/repository"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Availability interface {
	InsertWindowTx(ctx context.Context, tx *sqlx.Tx, window model.Window) error
	GetOpenWindowForUpdateTx(ctx context.Context, tx *sqlx.Tx, providerID string, date time.Time) (model.Window, error)
	UpdateWindowTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, id string) error
	GetWindows(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Window, error)
	CountWindows(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetOpenWindows(ctx context.Context, pincode string, date time.Time) ([]model.Window, error)

	GetProvidersOffering(ctx context.Context, serviceID string, providerIDs []string) ([]string, error)
	GetProvidersOnLeave(ctx context.Context, providerIDs []string, date time.Time) ([]string, error)
	GetProviderLoads(ctx context.Context, providerIDs []string, date time.Time) ([]model.ProviderLoad, error)
	OffersService(ctx context.Context, providerID, serviceID string) (bool, error)
	ServesPincode(ctx context.Context, providerID, pincode string) (bool, error)

	InsertLeaveTx(ctx context.Context, tx *sqlx.Tx, leave model.Leave) error
	GetLeave(ctx context.Context, id string) (model.Leave, error)
	GetLeaveForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Leave, error)
	UpdateLeaveTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, id string) error
	GetLeaves(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Leave, error)
	CountLeaves(ctx context.Context, filter gDto.FilterGroup) (int, error)
	GetAssignedBookingsTx(ctx context.Context, tx *sqlx.Tx, providerID string, start, end time.Time) ([]model.WorklistItem, error)
}

type repositoryImpl struct {
	windows gRepo.Repository[model.Window]
	leaves  gRepo.Repository[model.Leave]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Availability {
	return &repositoryImpl{
		windows: gRepo.NewRepository[model.Window](model.EntityWindow, model.TableWindows, model.FieldID, db, otel),
		leaves:  gRepo.NewRepository[model.Leave](model.EntityLeave, model.TableLeaves, model.FieldID, db, otel),
		db:      db,
		otel:    otel,
	}
}

func openWindowFilter(providerID string, date time.Time) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldProviderID, Value: providerID, Operator: gDto.FilterOperatorEq, Table: model.TableWindows},
			gDto.Filter{Field: model.FieldBusinessDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableWindows},
			gDto.Filter{Field: model.FieldCheckedOutAt, Operator: gDto.FilterIsNull, Table: model.TableWindows},
		},
	}
}

func (r *repositoryImpl) InsertWindowTx(ctx context.Context, tx *sqlx.Tx, window model.Window) error {
	return r.windows.InsertTx(ctx, tx, window) //nolint:wrapcheck
}

func (r *repositoryImpl) GetOpenWindowForUpdateTx(ctx context.Context, tx *sqlx.Tx, providerID string, date time.Time) (model.Window, error) {
	return r.windows.GetForUpdateTx(ctx, tx, openWindowFilter(providerID, date)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateWindowTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, id string) error {
	return r.windows.UpdateTx(ctx, tx, mod, shared.FilterByID(id, model.FieldID, model.TableWindows)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetWindows(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Window, error) {
	return r.windows.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountWindows(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.windows.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetOpenWindows(ctx context.Context, pincode string, date time.Time) ([]model.Window, error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldPincode, Value: pincode, Operator: gDto.FilterOperatorEq, Table: model.TableWindows},
			gDto.Filter{Field: model.FieldBusinessDate, Value: date, Operator: gDto.FilterOperatorEq, Table: model.TableWindows},
			gDto.Filter{Field: model.FieldCheckedOutAt, Operator: gDto.FilterIsNull, Table: model.TableWindows},
		},
	}

	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableWindows, model.FieldCheckedInAt),
		SortDir: gDto.SortDirAsc,
	}

	return r.windows.GetAll(ctx, params, filter) //nolint:wrapcheck
}

// selectIn runs a query with one IN (?) list against the read connection.
func (r *repositoryImpl) selectIn(ctx context.Context, name string, dest any, query string, args ...any) error {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+name)
	defer scope.End()

	query, inArgs, err := sqlx.In(query, args...)
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to build query (%s): %w", name, err)
	}

	query = r.db.Read.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	if err = r.db.Read.SelectContext(ctx, dest, query, inArgs...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to query (%s): %w", name, err)
	}

	return nil
}

func (r *repositoryImpl) GetProvidersOffering(ctx context.Context, serviceID string, providerIDs []string) ([]string, error) {
	if len(providerIDs) == 0 {
		return nil, nil
	}

	var ids []string

	err := r.selectIn(ctx, "GetProvidersOffering", &ids,
		`SELECT provider_id FROM provider_services WHERE service_id = ? AND provider_id IN (?)`,
		serviceID, providerIDs)

	return ids, err
}

func (r *repositoryImpl) GetProvidersOnLeave(ctx context.Context, providerIDs []string, date time.Time) ([]string, error) {
	if len(providerIDs) == 0 {
		return nil, nil
	}

	var ids []string

	err := r.selectIn(ctx, "GetProvidersOnLeave", &ids,
		`SELECT DISTINCT provider_id FROM provider_leaves
		WHERE status = ? AND start_date <= ? AND end_date >= ? AND provider_id IN (?)`,
		model.LeaveStatusActive, date, date, providerIDs)

	return ids, err
}

func (r *repositoryImpl) GetProviderLoads(ctx context.Context, providerIDs []string, date time.Time) ([]model.ProviderLoad, error) {
	if len(providerIDs) == 0 {
		return nil, nil
	}

	var loads []model.ProviderLoad

	err := r.selectIn(ctx, "GetProviderLoads", &loads,
		`SELECT assigned_provider_id AS provider_id, COUNT(*) AS total FROM bookings
		WHERE preferred_date = ? AND status IN (?) AND assigned_provider_id IN (?)
		GROUP BY assigned_provider_id`,
		date, bookingModel.ActiveStatuses, providerIDs)

	return loads, err
}

func (r *repositoryImpl) exists(ctx context.Context, name, query string, args ...any) (bool, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+name)
	defer scope.End()

	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var exist bool

	if err := r.db.Read.GetContext(ctx, &exist, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return false, fmt.Errorf("failed to query (%s): %w", name, err)
	}

	return exist, nil
}

func (r *repositoryImpl) OffersService(ctx context.Context, providerID, serviceID string) (bool, error) {
	return r.exists(ctx, "OffersService",
		`SELECT EXISTS(SELECT 1 FROM provider_services WHERE provider_id = $1 AND service_id = $2)`,
		providerID, serviceID)
}

func (r *repositoryImpl) ServesPincode(ctx context.Context, providerID, pincode string) (bool, error) {
	return r.exists(ctx, "ServesPincode",
		`SELECT EXISTS(SELECT 1 FROM provider_service_areas WHERE provider_id = $1 AND pincode = $2)`,
		providerID, pincode)
}

func (r *repositoryImpl) InsertLeaveTx(ctx context.Context, tx *sqlx.Tx, leave model.Leave) error {
	return r.leaves.InsertTx(ctx, tx, leave) //nolint:wrapcheck
}

func (r *repositoryImpl) GetLeave(ctx context.Context, id string) (model.Leave, error) {
	return r.leaves.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableLeaves)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetLeaveForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Leave, error) {
	return r.leaves.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableLeaves)) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateLeaveTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, id string) error {
	return r.leaves.UpdateTx(ctx, tx, mod, shared.FilterByID(id, model.FieldID, model.TableLeaves)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetLeaves(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Leave, error) {
	return r.leaves.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountLeaves(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.leaves.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAssignedBookingsTx(ctx context.Context, tx *sqlx.Tx, providerID string, start, end time.Time) ([]model.WorklistItem, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".GetAssignedBookingsTx")
	defer scope.End()

	query, args, err := sqlx.In(
		`SELECT id, customer_id, service_id, pincode, status, preferred_date, preferred_start_at FROM bookings
		WHERE assigned_provider_id = ? AND preferred_date BETWEEN ? AND ? AND status IN (?)
		ORDER BY preferred_start_at`,
		providerID, start, end, bookingModel.ProviderStatuses)
	if err != nil {
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to build worklist query: %w", err)
	}

	query = tx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var items []model.WorklistItem

	if err = tx.SelectContext(ctx, &items, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to get assigned bookings: %w", err)
	}

	return items, nil
}
