package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"fieldserve/infras/otel"
	"fieldserve/infras/postgres"
	"fieldserve/internal/domains/booking/model"
	"fieldserve/shared"
	"fieldserve/shared/constant"
	gDto "fieldserve/shared/dto"
	"fieldserve/shared/logger"
	gRepo "fieldserve/shared/repository"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
)

type Booking interface {
	InsertTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error
	Get(ctx context.Context, id string) (model.Booking, error)
	GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	UpdateTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, id string) error
	InsertHistoryTx(ctx context.Context, tx *sqlx.Tx, history model.History) error
	GetHistory(ctx context.Context, bookingID string) ([]model.History, error)
	// CountOverlappingTx counts the provider's slot-holding bookings other than excludeID that intersect [start, end).
	CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, providerID, excludeID string, start, end time.Time) (int, error)
	CountByStatus(ctx context.Context, providerID string, now time.Time) ([]model.StatusCount, error)
}

type repositoryImpl struct {
	gRepo.Repository[model.Booking]
	history gRepo.Repository[model.History]
	db      *postgres.Connection
	otel    otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Booking {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Booking](model.EntityName, model.TableName, model.FieldID, db, otel),
		history:    gRepo.NewRepository[model.History](model.EntityHistory, model.TableHistory, model.FieldID, db, otel),
		db:         db,
		otel:       otel,
	}
}

func (r *repositoryImpl) InsertTx(ctx context.Context, tx *sqlx.Tx, booking model.Booking) error {
	return r.Repository.InsertTx(ctx, tx, booking) //nolint:wrapcheck
}

func (r *repositoryImpl) Get(ctx context.Context, id string) (model.Booking, error) {
	return r.Repository.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetForUpdateTx(ctx context.Context, tx *sqlx.Tx, id string) (model.Booking, error) {
	return r.Repository.GetForUpdateTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter gDto.FilterGroup) ([]model.Booking, error) {
	return r.Repository.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) Count(ctx context.Context, filter gDto.FilterGroup) (int, error) {
	return r.Repository.Count(ctx, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) UpdateTx(ctx context.Context, tx *sqlx.Tx, mod map[string]any, id string) error {
	return r.Repository.UpdateTx(ctx, tx, mod, shared.FilterByID(id, model.FieldID, model.TableName)) //nolint:wrapcheck
}

func (r *repositoryImpl) InsertHistoryTx(ctx context.Context, tx *sqlx.Tx, history model.History) error {
	return r.history.InsertTx(ctx, tx, history) //nolint:wrapcheck
}

func (r *repositoryImpl) GetHistory(ctx context.Context, bookingID string) ([]model.History, error) {
	filter := shared.FilterByID(bookingID, model.FieldBookingID, model.TableHistory)
	params := gDto.QueryParams{
		SortBy:  fmt.Sprintf("%s.%s", model.TableHistory, model.FieldCreatedAt),
		SortDir: gDto.SortDirAsc,
	}

	return r.history.GetAll(ctx, params, filter) //nolint:wrapcheck
}

func (r *repositoryImpl) CountOverlappingTx(ctx context.Context, tx *sqlx.Tx, providerID, excludeID string, start, end time.Time) (int, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountOverlappingTx")
	defer scope.End()

	query, args, err := sqlx.In(
		`SELECT COUNT(*) FROM bookings
		WHERE assigned_provider_id = ? AND id <> ? AND status IN (?)
		AND preferred_start_at < ? AND preferred_end_at > ?`,
		providerID, excludeID, model.ActiveStatuses, end, start)
	if err != nil {
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to build overlap query: %w", err)
	}

	query = tx.Rebind(query)
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var total int

	if err = tx.GetContext(ctx, &total, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return 0, fmt.Errorf("failed to count overlapping bookings: %w", err)
	}

	return total, nil
}

// CountByStatus reports a lapsed reschedule proposal as cancelled, matching what reads return.
func (r *repositoryImpl) CountByStatus(ctx context.Context, providerID string, now time.Time) ([]model.StatusCount, error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".CountByStatus")
	defer scope.End()

	query := `SELECT
		CASE WHEN status = $1 AND reschedule_expires_at < $2 THEN $3 ELSE status END AS status,
		COUNT(*) AS total
		FROM bookings`
	args := []any{model.StatusRescheduleRequested, now, model.StatusCancelled}

	if providerID != constant.Empty {
		query += ` WHERE assigned_provider_id = $4`
		args = append(args, providerID)
	}

	query += ` GROUP BY 1`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	var counts []model.StatusCount

	if err := r.db.Read.SelectContext(ctx, &counts, query, args...); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to count bookings by status: %w", err)
	}

	return counts, nil
}
