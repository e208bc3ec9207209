package dto

import (
	"strings"

	"hotelier/internal/domains/payment/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreatePaymentRequest struct {
	ReservationID string `json:"reservation_id" validate:"required,uuid"`
	Amount        int64  `json:"amount"         validate:"required,gt=0"`
	Method        string `json:"method"         validate:"required,oneof=cash card bank_transfer online"`
}

func (c *CreatePaymentRequest) ToModel(user string) model.Payment {
	return model.Payment{
		ID:            uuid.NewString(),
		ReservationID: c.ReservationID,
		Amount:        c.Amount,
		Method:        c.Method,
		Status:        model.StatusPending,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdatePaymentStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=completed failed"`
}

type RefundPaymentRequest struct {
	Amount int64 `json:"amount" validate:"required,gt=0"`
}

type PaymentResponse struct {
	ID             string  `json:"id"`
	ReservationID  string  `json:"reservation_id"`
	GuestID        string  `json:"guest_id"`
	GuestName      string  `json:"guest_name"`
	Amount         int64   `json:"amount"`
	RefundedAmount int64   `json:"refunded_amount"`
	Method         string  `json:"method"`
	Status         string  `json:"status"`
	PaidAt         *string `json:"paid_at,omitempty"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(model model.Payment) {
	r.ID = model.ID
	r.ReservationID = model.ReservationID
	r.GuestID = model.GuestID
	r.GuestName = strings.TrimSpace(model.GuestFirstName + " " + model.GuestLastName)
	r.Amount = model.Amount
	r.RefundedAmount = model.RefundedAmount
	r.Method = model.Method
	r.Status = model.Status

	if model.PaidAt != nil {
		paidAt := timezone.Format(*model.PaidAt, constant.DateFormat)
		r.PaidAt = &paidAt
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}
