package report

import (
	"net/http"

	"hotelier/infras/otel"
	"hotelier/internal/domains/report/service"
	"hotelier/shared/constant"
	"hotelier/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Report
	otel    otel.Otel
}

func New(service service.Report, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/reports", func(routerGroup chi.Router) {
		routerGroup.Get("/occupancy", handler.GetOccupancyReport)
		routerGroup.Get("/revenue", handler.GetRevenueReport)
		routerGroup.Get("/reservations", handler.GetReservationsReport)
	})
}

// GetOccupancyReport returns the daily room occupancy over a date range.
// @Summary Occupancy report
// @Description Daily occupied room counts and occupancy rate over a date range. Defaults to the last 30 days.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.OccupancyReportResponse] "Occupancy report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/occupancy [get]
// @Security BearerAuth
func (handler *Handler) GetOccupancyReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetOccupancyReport")
	defer scope.End()

	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)

	res, err := handler.service.Occupancy(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get occupancy report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Occupancy report retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetRevenueReport returns payment revenue grouped by day or month.
// @Summary Revenue report
// @Description Gross, refunded and net revenue grouped by day or month, with a per-method breakdown.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Param group_by query string false "Grouping: day or month" default(day)
// @Success 200 {object} response.Data[dto.RevenueReportResponse] "Revenue report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/revenue [get]
// @Security BearerAuth
func (handler *Handler) GetRevenueReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenueReport")
	defer scope.End()

	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)
	groupBy := r.URL.Query().Get(constant.RequestParamGroupBy)

	res, err := handler.service.Revenue(ctx, from, to, groupBy)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue report retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}

// GetReservationsReport returns reservation counts per status.
// @Summary Reservations report
// @Description Reservation counts per status and the cancellation rate over a date range.
// @Tags Report
// @Accept json
// @Produce json
// @Param from query string false "Start date (YYYY-MM-DD)"
// @Param to query string false "End date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.ReservationsReportResponse] "Reservations report"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/reports/reservations [get]
// @Security BearerAuth
func (handler *Handler) GetReservationsReport(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReservationsReport")
	defer scope.End()

	from := r.URL.Query().Get(constant.RequestParamFrom)
	to := r.URL.Query().Get(constant.RequestParamTo)

	res, err := handler.service.Reservations(ctx, from, to)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get reservations report")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reservations report retrieved successfully")

	response.WithJSON(w, http.StatusOK, res)
}
