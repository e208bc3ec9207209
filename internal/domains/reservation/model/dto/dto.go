package dto

import (
	"strings"
	"time"

	"hotelier/internal/domains/reservation/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	GuestID      string  `json:"guest_id"       validate:"required,uuid"`
	RoomID       string  `json:"room_id"        validate:"required,uuid"`
	CheckInDate  string  `json:"check_in_date"  validate:"required"`
	CheckOutDate string  `json:"check_out_date" validate:"required"`
	Notes        *string `json:"notes"          validate:"omitempty,max=500"`
}

// ParseDates parses both stay dates in the YYYY-MM-DD layout.
func (c *CreateReservationRequest) ParseDates() (checkIn, checkOut time.Time, err error) {
	checkIn, err = time.Parse(constant.DayFormat, c.CheckInDate)
	if err != nil {
		return checkIn, checkOut, err
	}

	checkOut, err = time.Parse(constant.DayFormat, c.CheckOutDate)

	return checkIn, checkOut, err
}

func (c *CreateReservationRequest) ToModel(user string, checkIn, checkOut time.Time, totalAmount int64) model.Reservation {
	return model.Reservation{
		ID:           uuid.NewString(),
		GuestID:      c.GuestID,
		RoomID:       c.RoomID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Status:       model.StatusPending,
		TotalAmount:  totalAmount,
		Notes:        c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateReservationRequest struct {
	RoomID       string  `json:"room_id"        validate:"omitempty,uuid"`
	CheckInDate  string  `json:"check_in_date"  validate:"omitempty"`
	CheckOutDate string  `json:"check_out_date" validate:"omitempty"`
	Notes        *string `db:"notes"            json:"notes" validate:"omitempty,max=500"`
}

type UpdateReservationStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending confirmed checked_in checked_out cancelled"`
}

type ReservationResponse struct {
	ID           string  `json:"id"`
	GuestID      string  `json:"guest_id"`
	GuestName    string  `json:"guest_name"`
	RoomID       string  `json:"room_id"`
	RoomNumber   string  `json:"room_number"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	Status       string  `json:"status"`
	TotalAmount  int64   `json:"total_amount"`
	Notes        *string `json:"notes,omitempty"`
	gDto.Metadata
}

func (r *ReservationResponse) FromModel(model model.Reservation) {
	r.ID = model.ID
	r.GuestID = model.GuestID
	r.GuestName = strings.TrimSpace(model.GuestFirstName + " " + model.GuestLastName)
	r.RoomID = model.RoomID
	r.RoomNumber = model.RoomNumber
	r.CheckInDate = model.CheckInDate.Format(constant.DayFormat)
	r.CheckOutDate = model.CheckOutDate.Format(constant.DayFormat)
	r.Status = model.Status
	r.TotalAmount = model.TotalAmount
	r.Notes = model.Notes
	r.Metadata.FromModel(model.Metadata)
}

type GetReservationsResponse struct {
	Reservations []ReservationResponse `json:"reservations"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetReservationsResponse) FromModels(models []model.Reservation, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Reservations = make([]ReservationResponse, len(models))
	for i, mod := range models {
		r.Reservations[i].FromModel(mod)
	}
}
