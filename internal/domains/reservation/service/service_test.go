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
	guestModel "hotelier/internal/domains/guest/model"
	guestMocks "hotelier/internal/domains/guest/repository/mocks"
	"hotelier/internal/domains/reservation/model"
	"hotelier/internal/domains/reservation/model/dto"
	reservationMocks "hotelier/internal/domains/reservation/repository/mocks"
	"hotelier/internal/domains/reservation/service"
	roomModel "hotelier/internal/domains/room/model"
	roomMocks "hotelier/internal/domains/room/repository/mocks"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

type reservationMockSet struct {
	repo      *reservationMocks.MockReservation
	guestRepo *guestMocks.MockGuest
	roomRepo  *roomMocks.MockRoom
}

func newReservationService(t *testing.T) (service.Reservation, reservationMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	set := reservationMockSet{
		repo:      reservationMocks.NewMockReservation(ctrl),
		guestRepo: guestMocks.NewMockGuest(ctrl),
		roomRepo:  roomMocks.NewMockRoom(ctrl),
	}

	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockAudit := auditMocks.NewMockAuditLog(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{}

	svc := service.New(set.repo, set.guestRepo, set.roomRepo, cfg, mockCache, mockOtel, mockAudit)

	return svc, set
}

func availableRoom() roomModel.Room {
	return roomModel.Room{
		ID:        "room-id-123",
		Number:    "101",
		Floor:     1,
		Status:    roomModel.StatusAvailable,
		BasePrice: 10000,
	}
}

func TestReservationService_Create(t *testing.T) {
	tests := []struct {
		name       string
		req        dto.CreateReservationRequest
		setupMock  func(set reservationMockSet)
		wantErr    bool
		wantCode   int
		wantAmount int64
	}{
		{
			name: "successful reservation",
			req: dto.CreateReservationRequest{
				GuestID:      "guest-id-123",
				RoomID:       "room-id-123",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-04",
			},
			setupMock: func(set reservationMockSet) {
				set.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "guest-id-123", FirstName: "Test", LastName: "Guest"}, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				set.repo.EXPECT().
					ExistOverlapping(gomock.Any(), "room-id-123", gomock.Any(), gomock.Any(), "").
					Return(false, nil)

				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr:    false,
			wantAmount: 30000,
		},
		{
			name: "malformed dates",
			req: dto.CreateReservationRequest{
				GuestID:      "guest-id-123",
				RoomID:       "room-id-123",
				CheckInDate:  "01-09-2026",
				CheckOutDate: "04-09-2026",
			},
			setupMock: func(reservationMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "check-out not after check-in",
			req: dto.CreateReservationRequest{
				GuestID:      "guest-id-123",
				RoomID:       "room-id-123",
				CheckInDate:  "2026-09-04",
				CheckOutDate: "2026-09-04",
			},
			setupMock: func(reservationMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "guest not found",
			req: dto.CreateReservationRequest{
				GuestID:      "missing-guest",
				RoomID:       "room-id-123",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-04",
			},
			setupMock: func(set reservationMockSet) {
				set.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room under maintenance",
			req: dto.CreateReservationRequest{
				GuestID:      "guest-id-123",
				RoomID:       "room-id-123",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-04",
			},
			setupMock: func(set reservationMockSet) {
				set.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "guest-id-123"}, nil)

				room := availableRoom()
				room.Status = roomModel.StatusMaintenance

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(room, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "overlapping reservation",
			req: dto.CreateReservationRequest{
				GuestID:      "guest-id-123",
				RoomID:       "room-id-123",
				CheckInDate:  "2026-09-01",
				CheckOutDate: "2026-09-04",
			},
			setupMock: func(set reservationMockSet) {
				set.guestRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(guestModel.Guest{ID: "guest-id-123"}, nil)

				set.roomRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(availableRoom(), nil)

				set.repo.EXPECT().
					ExistOverlapping(gomock.Any(), "room-id-123", gomock.Any(), gomock.Any(), "").
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newReservationService(t)
			tt.setupMock(set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "actor-id")
			result, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
				assert.Equal(t, model.StatusPending, result.Status)
				assert.Equal(t, tt.wantAmount, result.TotalAmount)
			}
		})
	}
}

func TestReservationService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		from      string
		to        string
		setupMock func(set reservationMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "pending to confirmed",
			from: model.StatusPending,
			to:   model.StatusConfirmed,
			setupMock: func(set reservationMockSet) {
				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "confirmed to checked_in occupies the room",
			from: model.StatusConfirmed,
			to:   model.StatusCheckedIn,
			setupMock: func(set reservationMockSet) {
				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.roomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusOccupied, req[roomModel.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "checked_in to checked_out frees the room",
			from: model.StatusCheckedIn,
			to:   model.StatusCheckedOut,
			setupMock: func(set reservationMockSet) {
				set.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				set.roomRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.Equal(t, roomModel.StatusAvailable, req[roomModel.FieldStatus])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name:      "checked_in cannot be cancelled",
			from:      model.StatusCheckedIn,
			to:        model.StatusCancelled,
			setupMock: func(reservationMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusConflict,
		},
		{
			name:      "checked_out is terminal",
			from:      model.StatusCheckedOut,
			to:        model.StatusConfirmed,
			setupMock: func(reservationMockSet) {},
			wantErr:   true,
			wantCode:  http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newReservationService(t)

			set.repo.EXPECT().
				Get(gomock.Any(), gomock.Any()).
				Return(model.Reservation{ID: "reservation-id-123", RoomID: "room-id-123", Status: tt.from}, nil)

			tt.setupMock(set)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "actor-id")
			err := svc.UpdateStatus(ctx, dto.UpdateReservationStatusRequest{Status: tt.to}, "reservation-id-123")

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantCode != 0 {
					assert.Equal(t, tt.wantCode, failure.GetCode(err))
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
