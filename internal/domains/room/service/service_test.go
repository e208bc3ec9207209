package service_test

import (
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"hotelier/config"
	"hotelier/infras/otel/mocks"
	s3Mocks "hotelier/infras/s3/mocks"
	auditMocks "hotelier/internal/domains/auditlog/mocks"
	reservationMocks "hotelier/internal/domains/reservation/repository/mocks"
	"hotelier/internal/domains/room/model"
	"hotelier/internal/domains/room/model/dto"
	roomMocks "hotelier/internal/domains/room/repository/mocks"
	"hotelier/internal/domains/room/service"
	roomtypeModel "hotelier/internal/domains/roomtype/model"
	roomtypeMocks "hotelier/internal/domains/roomtype/repository/mocks"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/failure"
)

type roomMockSet struct {
	repo            *roomMocks.MockRoom
	roomTypeRepo    *roomtypeMocks.MockRoomType
	reservationRepo *reservationMocks.MockReservation
	s3              *s3Mocks.MockS3
}

func newRoomService(t *testing.T) (service.Room, roomMockSet) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	set := roomMockSet{
		repo:            roomMocks.NewMockRoom(ctrl),
		roomTypeRepo:    roomtypeMocks.NewMockRoomType(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		s3:              s3Mocks.NewMockS3(ctrl),
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

	svc := service.New(set.repo, set.roomTypeRepo, set.reservationRepo, cfg, mockCache, mockOtel, set.s3, mockAudit)

	return svc, set
}

func TestRoomService_Create(t *testing.T) {
	req := dto.CreateRoomRequest{
		Number:     "204",
		Floor:      2,
		RoomTypeID: "room-type-id-123",
	}

	tests := []struct {
		name      string
		setupMock func(set roomMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(set roomMockSet) {
				set.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomtypeModel.RoomType{ID: "room-type-id-123", Name: "Deluxe King", BasePrice: 25000}, nil)
				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				set.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room type not found",
			setupMock: func(set roomMockSet) {
				set.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomtypeModel.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "duplicate room number",
			setupMock: func(set roomMockSet) {
				set.roomTypeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(roomtypeModel.RoomType{ID: "room-type-id-123"}, nil)
				set.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newRoomService(t)
			tt.setupMock(set)

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, req.Number, res.Number)
				assert.Equal(t, model.StatusAvailable, res.Status)
				assert.Equal(t, "Deluxe King", res.TypeName)
				assert.Equal(t, int64(25000), res.BasePrice)
			}
		})
	}
}

func TestRoomService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(set roomMockSet)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func(set roomMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-id-123", Number: "204"}, nil)
				set.reservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				set.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room not found",
			setupMock: func(set roomMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room has reservation history",
			setupMock: func(set roomMockSet) {
				set.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Room{ID: "room-id-123"}, nil)
				set.reservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, set := newRoomService(t)
			tt.setupMock(set)

			err := svc.Delete(context.Background(), "room-id-123")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRoomService_UploadPhoto(t *testing.T) {
	t.Run("room not found", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{}, nil)

		req := dto.UploadPhotoRequest{
			Photo: &multipart.FileHeader{Filename: "room-204.jpg"},
		}

		_, err := svc.UploadPhoto(context.Background(), req, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful upload", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-id-123", Number: "204"}, nil)
		set.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), "room-204.jpg").
			Return("https://cdn.example.com/rooms/room-204.jpg", nil)
		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, fields map[string]any, _ any) error {
				assert.Equal(t, "https://cdn.example.com/rooms/room-204.jpg", fields[model.FieldPhotoURL])

				return nil
			})

		req := dto.UploadPhotoRequest{
			Photo: &multipart.FileHeader{Filename: "room-204.jpg"},
		}

		res, err := svc.UploadPhoto(context.Background(), req, "room-id-123")

		assert.NoError(t, err)
		assert.Equal(t, "https://cdn.example.com/rooms/room-204.jpg", res.URL)
		assert.Equal(t, "room-204.jpg", res.FileName)
	})

	t.Run("upload failure", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-id-123"}, nil)
		set.s3.EXPECT().
			UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("storage unavailable"))

		req := dto.UploadPhotoRequest{
			Photo: &multipart.FileHeader{Filename: "room-204.jpg"},
		}

		_, err := svc.UploadPhoto(context.Background(), req, "room-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})
}

func TestRoomService_DeletePhoto(t *testing.T) {
	t.Run("room has no photo", func(t *testing.T) {
		svc, set := newRoomService(t)

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-id-123"}, nil)

		err := svc.DeletePhoto(context.Background(), "room-id-123")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful photo removal", func(t *testing.T) {
		svc, set := newRoomService(t)

		photoURL := "https://cdn.example.com/rooms/room-204.jpg"

		set.repo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.Room{ID: "room-id-123", PhotoURL: &photoURL}, nil)
		set.repo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, fields map[string]any, _ any) error {
				assert.Nil(t, fields[model.FieldPhotoURL])

				return nil
			})
		set.s3.EXPECT().
			GetObjectNameFromURL(gomock.Any(), photoURL).
			Return("room-204.jpg").
			AnyTimes()
		set.s3.EXPECT().
			DeleteFile(gomock.Any(), gomock.Any(), gomock.Any(), "room-204.jpg").
			Return(nil).
			AnyTimes()

		err := svc.DeletePhoto(context.Background(), "room-id-123")

		assert.NoError(t, err)
	})
}
