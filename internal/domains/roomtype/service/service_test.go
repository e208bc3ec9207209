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
	roomMocks "hotelier/internal/domains/room/repository/mocks"
	"hotelier/internal/domains/roomtype/model"
	"hotelier/internal/domains/roomtype/model/dto"
	roomtypeMocks "hotelier/internal/domains/roomtype/repository/mocks"
	"hotelier/internal/domains/roomtype/service"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/failure"
)

func newRoomTypeService(t *testing.T) (service.RoomType, *roomtypeMocks.MockRoomType, *roomMocks.MockRoom) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := roomtypeMocks.NewMockRoomType(ctrl)
	mockRoomRepo := roomMocks.NewMockRoom(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	mockAudit := auditMocks.NewMockAuditLog(ctrl)
	mockOtel := mocks.NewOtel()

	mockCache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).AnyTimes()
	mockCache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockCache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	mockAudit.EXPECT().Record(gomock.Any(), gomock.Any()).AnyTimes()

	cfg := &config.Config{}

	svc := service.New(mockRepo, mockRoomRepo, cfg, mockCache, mockOtel, mockAudit)

	return svc, mockRepo, mockRoomRepo
}

func TestRoomTypeService_Create(t *testing.T) {
	req := dto.CreateRoomTypeRequest{
		Name:         "Deluxe King",
		BasePrice:    25000,
		MaxOccupancy: 2,
		Amenities:    []string{"wifi", "minibar"},
	}

	tests := []struct {
		name      string
		setupMock func(repo *roomtypeMocks.MockRoomType)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful creation",
			setupMock: func(repo *roomtypeMocks.MockRoomType) {
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
			name: "duplicate name",
			setupMock: func(repo *roomtypeMocks.MockRoomType) {
				repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "existence check fails",
			setupMock: func(repo *roomtypeMocks.MockRoomType) {
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
			svc, mockRepo, _ := newRoomTypeService(t)
			tt.setupMock(mockRepo)

			res, err := svc.Create(context.Background(), req)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
				assert.Equal(t, req.Name, res.Name)
				assert.Equal(t, req.BasePrice, res.BasePrice)
				assert.NotEmpty(t, res.ID)
			}
		})
	}
}

func TestRoomTypeService_Update(t *testing.T) {
	t.Run("room type not found", func(t *testing.T) {
		svc, mockRepo, _ := newRoomTypeService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{}, nil)

		err := svc.Update(context.Background(), dto.UpdateRoomTypeRequest{Name: "Suite"}, "missing-id")

		assert.Error(t, err)
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("successful update", func(t *testing.T) {
		svc, mockRepo, _ := newRoomTypeService(t)

		mockRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(model.RoomType{ID: "room-type-id-123", Name: "Deluxe King"}, nil)
		mockRepo.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ any, fields map[string]any, _ any) error {
				assert.Equal(t, "Suite", fields[model.FieldName])

				return nil
			})

		err := svc.Update(context.Background(), dto.UpdateRoomTypeRequest{Name: "Suite"}, "room-type-id-123")

		assert.NoError(t, err)
	})
}

func TestRoomTypeService_Delete(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(repo *roomtypeMocks.MockRoomType, roomRepo *roomMocks.MockRoom)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful deletion",
			setupMock: func(repo *roomtypeMocks.MockRoomType, roomRepo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomType{ID: "room-type-id-123"}, nil)
				roomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
				repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "room type not found",
			setupMock: func(repo *roomtypeMocks.MockRoomType, roomRepo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomType{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "room type still assigned to rooms",
			setupMock: func(repo *roomtypeMocks.MockRoomType, roomRepo *roomMocks.MockRoom) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RoomType{ID: "room-type-id-123"}, nil)
				roomRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockRoomRepo := newRoomTypeService(t)
			tt.setupMock(mockRepo, mockRoomRepo)

			err := svc.Delete(context.Background(), "room-type-id-123")

			if tt.wantErr {
				assert.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
