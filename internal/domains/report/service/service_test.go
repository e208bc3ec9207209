package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	"hotelier/internal/domains/report/model"
	reportMocks "hotelier/internal/domains/report/repository/mocks"
	"hotelier/internal/domains/report/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/failure"
)

func newReportService(t *testing.T) (service.Report, *reportMocks.MockReport) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := reportMocks.NewMockReport(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}

	svc := service.New(mockRepo, cfg, mockCache, mockOtel)

	return svc, mockRepo
}

func TestReportService_Occupancy(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func(t *testing.T, repo *reportMocks.MockReport)
		wantErr   bool
		wantCode  int
		check     func(t *testing.T, from, to string)
	}{
		{
			name: "defaults to the last 30 days when no range is given",
			from: "",
			to:   "",
			setupMock: func(t *testing.T, repo *reportMocks.MockReport) {
				t.Helper()

				repo.EXPECT().
					Occupancy(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, from, to time.Time) ([]model.OccupancyRow, error) {
						assert.Equal(t, 29*24*time.Hour, to.Sub(from))

						return []model.OccupancyRow{}, nil
					})
			},
			wantErr: false,
		},
		{
			name: "explicit range keeps the last day inclusive",
			from: "2026-08-01",
			to:   "2026-08-03",
			setupMock: func(t *testing.T, repo *reportMocks.MockReport) {
				t.Helper()

				repo.EXPECT().
					Occupancy(gomock.Any(), time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC)).
					Return([]model.OccupancyRow{
						{Date: time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), OccupiedRooms: 4, TotalRooms: 10},
						{Date: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC), OccupiedRooms: 5, TotalRooms: 10},
						{Date: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC), OccupiedRooms: 10, TotalRooms: 10},
					}, nil)
			},
			wantErr: false,
			check: func(t *testing.T, from, to string) {
				t.Helper()

				assert.Equal(t, "2026-08-01", from)
				assert.Equal(t, "2026-08-03", to)
			},
		},
		{
			name:      "rejects from without to",
			from:      "2026-08-01",
			to:        "",
			setupMock: func(_ *testing.T, _ *reportMocks.MockReport) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "rejects to without from",
			from:      "",
			to:        "2026-08-03",
			setupMock: func(_ *testing.T, _ *reportMocks.MockReport) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "rejects a malformed from date",
			from:      "01-08-2026",
			to:        "2026-08-03",
			setupMock: func(_ *testing.T, _ *reportMocks.MockReport) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "rejects to before from",
			from:      "2026-08-03",
			to:        "2026-08-01",
			setupMock: func(_ *testing.T, _ *reportMocks.MockReport) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newReportService(t)
			tt.setupMock(t, mockRepo)

			result, err := svc.Occupancy(context.Background(), tt.from, tt.to)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)

			if tt.check != nil {
				tt.check(t, result.From, result.To)
			}
		})
	}
}

func TestReportService_Revenue(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		groupBy   string
		setupMock func(repo *reportMocks.MockReport)
		wantErr   bool
		wantCode  int
	}{
		{
			name:    "explicit range uses an exclusive upper bound",
			from:    "2026-08-01",
			to:      "2026-08-03",
			groupBy: "",
			setupMock: func(repo *reportMocks.MockReport) {
				repo.EXPECT().
					Revenue(gomock.Any(), time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC), model.GroupByDay).
					Return([]model.RevenueRow{
						{Period: "2026-08-01", GrossAmount: 50000, RefundedAmount: 10000, PaymentCount: 2},
					}, nil)
				repo.EXPECT().
					RevenueByMethod(gomock.Any(), time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)).
					Return([]model.RevenueMethodRow{
						{Method: "card", GrossAmount: 50000},
					}, nil)
			},
			wantErr: false,
		},
		{
			name:      "rejects an unknown group_by",
			from:      "2026-08-01",
			to:        "2026-08-03",
			groupBy:   "week",
			setupMock: func(_ *reportMocks.MockReport) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo := newReportService(t)
			tt.setupMock(mockRepo)

			result, err := svc.Revenue(context.Background(), tt.from, tt.to, tt.groupBy)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, model.GroupByDay, result.GroupBy)
			assert.Equal(t, "2026-08-01", result.From)
			assert.Equal(t, "2026-08-03", result.To)
			assert.Equal(t, int64(50000), result.TotalGross)
			assert.Equal(t, int64(40000), result.TotalNet)
		})
	}
}

func TestReportService_Reservations(t *testing.T) {
	svc, mockRepo := newReportService(t)

	mockRepo.EXPECT().
		ReservationsByStatus(gomock.Any(), time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC), time.Date(2026, 8, 4, 0, 0, 0, 0, time.UTC)).
		Return([]model.ReservationStatusRow{
			{Status: "confirmed", Total: 3},
			{Status: "cancelled", Total: 1},
		}, nil)

	result, err := svc.Reservations(context.Background(), "2026-08-01", "2026-08-03")

	assert.NoError(t, err)
	assert.Equal(t, "2026-08-01", result.From)
	assert.Equal(t, "2026-08-03", result.To)
	assert.Equal(t, 4, result.Total)
	assert.Equal(t, 1, result.ByStatus["cancelled"])
	assert.InDelta(t, 0.25, result.CancellationRate, 0.0001)
}
