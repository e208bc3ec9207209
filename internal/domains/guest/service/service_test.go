package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	auditMocks "hotelier/internal/domains/auditlog/mocks"
	"hotelier/internal/domains/guest/model"
	"hotelier/internal/domains/guest/model/dto"
	guestMocks "hotelier/internal/domains/guest/repository/mocks"
	"hotelier/internal/domains/guest/service"
	reservationModel "hotelier/internal/domains/reservation/model"
	reservationMocks "hotelier/internal/domains/reservation/repository/mocks"
	cacheMocks "hotelier/shared/cache/mocks"
	gDto "hotelier/shared/dto"
	"hotelier/shared/failure"
)

func newGuestService(t *testing.T) (service.Guest, *guestMocks.MockGuest, *reservationMocks.MockReservation) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := guestMocks.NewMockGuest(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockAudit := auditMocks.NewMockAuditLog(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockReservationRepo, cfg, mockCache, mockOtel, mockAudit)

	return svc, mockRepo, mockReservationRepo
}

func TestGuestService_Create(t *testing.T) {
	req := dto.CreateGuestRequest{
		FirstName: "Amelia",
		LastName:  "Tan",
		Email:     "amelia.tan@example.com",
	}

	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate email",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "existence check fails",
			setupMock: func(repo *guestMocks.MockGuest) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("db error"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newGuestService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, req.Email, res.Email)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestGuestService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *guestMocks.MockGuest, reservationRepo *reservationMocks.MockReservation)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func(repo *guestMocks.MockGuest, reservationRepo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{ID: "guest-id-123"}, nil)
				reservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "guest not found",
			setupMock: func(repo *guestMocks.MockGuest, reservationRepo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "guest has reservations",
			setupMock: func(repo *guestMocks.MockGuest, reservationRepo *reservationMocks.MockReservation) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Guest{ID: "guest-id-123"}, nil)
				reservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockReservationRepo := newGuestService(t)
			tt.setupMock(mockRepo, mockReservationRepo)

			err := svc.Delete(context.Background(), "guest-id-123")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGuestService_GetReservations(t *testing.T) {
	t.Run("guest not found", func(t *testing.T) {
		svc, mockRepo, _ := newGuestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{}, nil)

		_, err := svc.GetReservations(context.Background(), "missing-id", gDto.QueryParams{Page: 1, Limit: 10})

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("returns booking history", func(t *testing.T) {
		svc, mockRepo, mockReservationRepo := newGuestService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Guest{ID: "guest-id-123"}, nil)
		mockReservationRepo.EXPECT().
			Count(gomock.Any(), gomock.Any()).
			Return(2, nil)
		mockReservationRepo.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]reservationModel.Reservation{
				{ID: "reservation-id-1", GuestID: "guest-id-123", Status: reservationModel.StatusCheckedOut},
				{ID: "reservation-id-2", GuestID: "guest-id-123", Status: reservationModel.StatusConfirmed},
			}, nil)

		res, err := svc.GetReservations(context.Background(), "guest-id-123", gDto.QueryParams{Page: 1, Limit: 10})

		assert.NoError(t, err)
		assert.Len(t, res.Reservations, 2)
		assert.Equal(t, 2, res.TotalData)
	})
}
