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
	"hotelier/internal/domains/payment/model"
	"hotelier/internal/domains/payment/model/dto"
	paymentMocks "hotelier/internal/domains/payment/repository/mocks"
	"hotelier/internal/domains/payment/service"
	reservationModel "hotelier/internal/domains/reservation/model"
	reservationMocks "hotelier/internal/domains/reservation/repository/mocks"
	cacheMocks "hotelier/shared/cache/mocks"
	"hotelier/shared/constant"
	"hotelier/shared/failure"
)

func newPaymentService(t *testing.T) (service.Payment, *paymentMocks.MockPayment, *reservationMocks.MockReservation) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := paymentMocks.NewMockPayment(ctrl)
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

func completedPayment() model.Payment {
	return model.Payment{
		ID:            "payment-id-123",
		ReservationID: "reservation-id-123",
		Amount:        40000,
		Method:        model.MethodCard,
		Status:        model.StatusCompleted,
	}
}

func TestPaymentService_Create(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.CreatePaymentRequest
		setupMock func(repo *paymentMocks.MockPayment, reservationRepo *reservationMocks.MockReservation)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "successful payment",
			req: dto.CreatePaymentRequest{
				ReservationID: "reservation-id-123",
				Amount:        40000,
				Method:        model.MethodCard,
			},
			setupMock: func(repo *paymentMocks.MockPayment, reservationRepo *reservationMocks.MockReservation) {
				reservationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservationModel.Reservation{
						ID:             "reservation-id-123",
						Status:         reservationModel.StatusConfirmed,
						GuestID:        "guest-id-123",
						GuestFirstName: "Amelia",
						GuestLastName:  "Tan",
					}, nil)

				repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ any, payment model.Payment) error {
						assert.Equal(t, "guest-id-123", payment.GuestID)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			req: dto.CreatePaymentRequest{
				ReservationID: "missing-id",
				Amount:        40000,
				Method:        model.MethodCard,
			},
			setupMock: func(_ *paymentMocks.MockPayment, reservationRepo *reservationMocks.MockReservation) {
				reservationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservationModel.Reservation{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "cancelled reservation",
			req: dto.CreatePaymentRequest{
				ReservationID: "reservation-id-123",
				Amount:        40000,
				Method:        model.MethodCash,
			},
			setupMock: func(_ *paymentMocks.MockPayment, reservationRepo *reservationMocks.MockReservation) {
				reservationRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(reservationModel.Reservation{ID: "reservation-id-123", Status: reservationModel.StatusCancelled}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, mockReservationRepo := newPaymentService(t)
			tt.setupMock(mockRepo, mockReservationRepo)

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
				assert.Equal(t, "guest-id-123", result.GuestID)
				assert.Equal(t, "Amelia Tan", result.GuestName)
			}
		})
	}
}

func TestPaymentService_UpdateStatus(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.UpdatePaymentStatusRequest
		setupMock func(repo *paymentMocks.MockPayment)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "pending payment completes",
			req:  dto.UpdatePaymentStatusRequest{Status: model.StatusCompleted},
			setupMock: func(repo *paymentMocks.MockPayment) {
				payment := completedPayment()
				payment.Status = model.StatusPending

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "pending payment fails",
			req:  dto.UpdatePaymentStatusRequest{Status: model.StatusFailed},
			setupMock: func(repo *paymentMocks.MockPayment) {
				payment := completedPayment()
				payment.Status = model.StatusPending

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "completed payment cannot move again",
			req:  dto.UpdatePaymentStatusRequest{Status: model.StatusFailed},
			setupMock: func(repo *paymentMocks.MockPayment) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedPayment(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "payment not found",
			req:  dto.UpdatePaymentStatusRequest{Status: model.StatusCompleted},
			setupMock: func(repo *paymentMocks.MockPayment) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newPaymentService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "actor-id")
			err := svc.UpdateStatus(ctx, tt.req, "payment-id-123")

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

func TestPaymentService_Refund(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RefundPaymentRequest
		setupMock func(repo *paymentMocks.MockPayment)
		wantErr   bool
		wantCode  int
	}{
		{
			name: "full refund",
			req:  dto.RefundPaymentRequest{Amount: 40000},
			setupMock: func(repo *paymentMocks.MockPayment) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedPayment(), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.Equal(t, model.StatusRefunded, req[model.FieldStatus])
						assert.Equal(t, int64(40000), req[model.FieldRefundedAmount])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "partial refund",
			req:  dto.RefundPaymentRequest{Amount: 10000},
			setupMock: func(repo *paymentMocks.MockPayment) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedPayment(), nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.Equal(t, model.StatusPartiallyRefunded, req[model.FieldStatus])
						assert.Equal(t, int64(10000), req[model.FieldRefundedAmount])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "second partial refund exhausts the balance",
			req:  dto.RefundPaymentRequest{Amount: 30000},
			setupMock: func(repo *paymentMocks.MockPayment) {
				payment := completedPayment()
				payment.Status = model.StatusPartiallyRefunded
				payment.RefundedAmount = 10000

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)

				repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, req map[string]any, _ any) error {
						assert.Equal(t, model.StatusRefunded, req[model.FieldStatus])
						assert.Equal(t, int64(40000), req[model.FieldRefundedAmount])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "refund on a pending payment is rejected",
			req:  dto.RefundPaymentRequest{Amount: 40000},
			setupMock: func(repo *paymentMocks.MockPayment) {
				payment := completedPayment()
				payment.Status = model.StatusPending

				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(payment, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "refund exceeding the remaining balance is rejected",
			req:  dto.RefundPaymentRequest{Amount: 50000},
			setupMock: func(repo *paymentMocks.MockPayment) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(completedPayment(), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "payment not found",
			req:  dto.RefundPaymentRequest{Amount: 40000},
			setupMock: func(repo *paymentMocks.MockPayment) {
				repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, mockRepo, _ := newPaymentService(t)
			tt.setupMock(mockRepo)

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "actor-id")
			err := svc.Refund(ctx, tt.req, "payment-id-123")

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
