package service

import (
	"context"
	"fmt"
	"time"

	"hotelier/config"
	"hotelier/infras/otel"
	"hotelier/internal/domains/report/model"
	"hotelier/internal/domains/report/model/dto"
	"hotelier/internal/domains/report/repository"
	reservationModel "hotelier/internal/domains/reservation/model"
	"hotelier/shared"
	"hotelier/shared/cache"
	"hotelier/shared/constant"
	"hotelier/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheOccupancyReport    = "report:occupancy"
	cacheRevenueReport      = "report:revenue"
	cacheReservationsReport = "report:reservations"
)

type Report interface {
	Occupancy(ctx context.Context, from, to string) (dto.OccupancyReportResponse, error)
	Revenue(ctx context.Context, from, to, groupBy string) (dto.RevenueReportResponse, error)
	Reservations(ctx context.Context, from, to string) (dto.ReservationsReportResponse, error)
}

type serviceImpl struct {
	repo  repository.Report
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Report, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Report {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// parseRange turns the from/to day strings into an inclusive start and an
// exclusive end. An empty range defaults to the last 30 days.
func parseRange(from, to string) (time.Time, time.Time, error) {
	if from == constant.Empty && to == constant.Empty {
		end := time.Now().Truncate(24 * time.Hour).AddDate(0, 0, 1)

		return end.AddDate(0, 0, -30), end, nil
	}

	if from == constant.Empty || to == constant.Empty {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("from and to must be provided together") // nolint:wrapcheck
	}

	start, err := time.Parse(constant.DayFormat, from)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("from must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	end, err := time.Parse(constant.DayFormat, to)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("to must use the YYYY-MM-DD format") // nolint:wrapcheck
	}

	if end.Before(start) {
		return time.Time{}, time.Time{}, failure.BadRequestFromString("to must not be before from") // nolint:wrapcheck
	}

	return start, end.AddDate(0, 0, 1), nil
}

func (s *serviceImpl) Occupancy(ctx context.Context, from, to string) (res dto.OccupancyReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Occupancy")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := parseRange(from, to)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheOccupancyReport, start.Format(constant.DayFormat), end.Format(constant.DayFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for occupancy report")

		return res, nil
	}

	// The series end is the last inclusive day, not the exclusive bound.
	rows, err := s.repo.Occupancy(ctx, start, end.AddDate(0, 0, -1))
	if err != nil {
		log.Error().Err(err).Msg("failed to build occupancy report")

		return res, fmt.Errorf("failed to build occupancy report: %w", err)
	}

	res.FromRows(rows, start.Format(constant.DayFormat), end.AddDate(0, 0, -1).Format(constant.DayFormat))

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save occupancy report to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Revenue(ctx context.Context, from, to, groupBy string) (res dto.RevenueReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Revenue")
	defer scope.End()
	defer scope.TraceIfError(err)

	if groupBy == constant.Empty {
		groupBy = model.GroupByDay
	}

	if groupBy != model.GroupByDay && groupBy != model.GroupByMonth {
		return res, failure.BadRequestFromString("group_by must be day or month") // nolint:wrapcheck
	}

	start, end, err := parseRange(from, to)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheRevenueReport, groupBy, start.Format(constant.DayFormat), end.Format(constant.DayFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for revenue report")

		return res, nil
	}

	rows, err := s.repo.Revenue(ctx, start, end, groupBy)
	if err != nil {
		log.Error().Err(err).Msg("failed to build revenue report")

		return res, fmt.Errorf("failed to build revenue report: %w", err)
	}

	methods, err := s.repo.RevenueByMethod(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to build revenue breakdown")

		return res, fmt.Errorf("failed to build revenue breakdown: %w", err)
	}

	res.FromRows(rows, methods, start.Format(constant.DayFormat), end.AddDate(0, 0, -1).Format(constant.DayFormat), groupBy)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save revenue report to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Reservations(ctx context.Context, from, to string) (res dto.ReservationsReportResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reservations")
	defer scope.End()
	defer scope.TraceIfError(err)

	start, end, err := parseRange(from, to)
	if err != nil {
		return res, err
	}

	cacheKey := shared.BuildCacheKey(cacheReservationsReport, start.Format(constant.DayFormat), end.Format(constant.DayFormat))

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations report")

		return res, nil
	}

	rows, err := s.repo.ReservationsByStatus(ctx, start, end)
	if err != nil {
		log.Error().Err(err).Msg("failed to build reservations report")

		return res, fmt.Errorf("failed to build reservations report: %w", err)
	}

	res.FromRows(rows, start.Format(constant.DayFormat), end.AddDate(0, 0, -1).Format(constant.DayFormat), reservationModel.StatusCancelled)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations report to cache")
		}
	}()

	return res, nil
}
