package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=./mocks/repository_mock.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"hotelier/infras/otel"
	"hotelier/infras/postgres"
	paymentModel "hotelier/internal/domains/payment/model"
	"hotelier/internal/domains/report/model"
	reservationModel "hotelier/internal/domains/reservation/model"
	"hotelier/shared/constant"
	"hotelier/shared/logger"
)

// Report aggregations always run against the read connection.
type Report interface {
	Occupancy(ctx context.Context, from, to time.Time) ([]model.OccupancyRow, error)
	Revenue(ctx context.Context, from, to time.Time, groupBy string) ([]model.RevenueRow, error)
	RevenueByMethod(ctx context.Context, from, to time.Time) ([]model.RevenueMethodRow, error)
	ReservationsByStatus(ctx context.Context, from, to time.Time) ([]model.ReservationStatusRow, error)
}

type repositoryImpl struct {
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Report {
	return &repositoryImpl{
		db:   db,
		otel: otel,
	}
}

func (repo *repositoryImpl) Occupancy(ctx context.Context, from, to time.Time) (rows []model.OccupancyRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Report.Occupancy")
	defer scope.End()

	query := `SELECT
		d::date AS date,
		(
			SELECT COUNT(*) FROM reservations r
			WHERE r.check_in_date <= d
			AND r.check_out_date > d
			AND r.status IN (:confirmed, :checked_in, :checked_out)
		) AS occupied_rooms,
		(SELECT COUNT(*) FROM rooms) AS total_rooms
	FROM generate_series(:from_date, :to_date, '1 day'::interval) AS d
	ORDER BY date`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"from_date":   from,
		"to_date":     to,
		"confirmed":   reservationModel.StatusConfirmed,
		"checked_in":  reservationModel.StatusCheckedIn,
		"checked_out": reservationModel.StatusCheckedOut,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query occupancy report: %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query occupancy report: %w", err)
	}

	return rows, nil
}

func (repo *repositoryImpl) Revenue(ctx context.Context, from, to time.Time, groupBy string) (rows []model.RevenueRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Report.Revenue")
	defer scope.End()

	periodFormat := "YYYY-MM-DD"
	if groupBy == model.GroupByMonth {
		periodFormat = "YYYY-MM"
	}

	query := `SELECT
		to_char(p.paid_at, :period_format) AS period,
		COALESCE(SUM(p.amount), 0) AS gross_amount,
		COALESCE(SUM(p.refunded_amount), 0) AS refunded_amount,
		COUNT(*) AS payment_count
	FROM payments p
	WHERE p.paid_at >= :from_date
	AND p.paid_at < :to_date
	AND p.status IN (:completed, :refunded, :partially_refunded)
	GROUP BY period
	ORDER BY period`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"period_format":      periodFormat,
		"from_date":          from,
		"to_date":            to,
		"completed":          paymentModel.StatusCompleted,
		"refunded":           paymentModel.StatusRefunded,
		"partially_refunded": paymentModel.StatusPartiallyRefunded,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query revenue report: %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query revenue report: %w", err)
	}

	return rows, nil
}

func (repo *repositoryImpl) RevenueByMethod(ctx context.Context, from, to time.Time) (rows []model.RevenueMethodRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Report.RevenueByMethod")
	defer scope.End()

	query := `SELECT
		p.method AS method,
		COALESCE(SUM(p.amount), 0) AS gross_amount
	FROM payments p
	WHERE p.paid_at >= :from_date
	AND p.paid_at < :to_date
	AND p.status IN (:completed, :refunded, :partially_refunded)
	GROUP BY p.method
	ORDER BY p.method`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"from_date":          from,
		"to_date":            to,
		"completed":          paymentModel.StatusCompleted,
		"refunded":           paymentModel.StatusRefunded,
		"partially_refunded": paymentModel.StatusPartiallyRefunded,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query revenue by method: %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query revenue by method: %w", err)
	}

	return rows, nil
}

func (repo *repositoryImpl) ReservationsByStatus(ctx context.Context, from, to time.Time) (rows []model.ReservationStatusRow, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".Report.ReservationsByStatus")
	defer scope.End()

	query := `SELECT
		r.status AS status,
		COUNT(*) AS total
	FROM reservations r
	WHERE r.created_at >= :from_date
	AND r.created_at < :to_date
	GROUP BY r.status
	ORDER BY r.status`
	scope.SetAttribute(constant.OtelQueryAttributeKey, query)

	args := map[string]any{
		"from_date": from,
		"to_date":   to,
	}

	prepare, err := repo.db.Read.PrepareNamedContext(ctx, query)
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query reservation report: %w", err)
	}
	defer prepare.Close()

	if err = prepare.SelectContext(ctx, &rows, args); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to query reservation report: %w", err)
	}

	return rows, nil
}
