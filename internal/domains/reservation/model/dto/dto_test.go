package dto_test

import (
	"testing"
	"time"

	"hotelier/internal/domains/reservation/model"
	"hotelier/internal/domains/reservation/model/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/stretchr/testify/assert"
)

func TestCreateReservationRequest_ParseDates(t *testing.T) {
	tests := []struct {
		name     string
		checkIn  string
		checkOut string
		wantErr  bool
	}{
		{
			name:     "valid dates",
			checkIn:  "2026-09-01",
			checkOut: "2026-09-04",
			wantErr:  false,
		},
		{
			name:     "malformed check in",
			checkIn:  "01-09-2026",
			checkOut: "2026-09-04",
			wantErr:  true,
		},
		{
			name:     "malformed check out",
			checkIn:  "2026-09-01",
			checkOut: "next friday",
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := dto.CreateReservationRequest{
				CheckInDate:  tt.checkIn,
				CheckOutDate: tt.checkOut,
			}

			checkIn, checkOut, err := req.ParseDates()
			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.True(t, checkOut.After(checkIn))
		})
	}
}

func TestCreateReservationRequest_ToModel(t *testing.T) {
	notes := "late arrival"
	req := dto.CreateReservationRequest{
		GuestID:      "guest-id",
		RoomID:       "room-id",
		CheckInDate:  "2026-09-01",
		CheckOutDate: "2026-09-04",
		Notes:        &notes,
	}

	checkIn := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	checkOut := time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC)

	userID := "test-user-id"
	reservation := req.ToModel(userID, checkIn, checkOut, 30000)

	assert.NotEmpty(t, reservation.ID, "expected ID to be generated")
	assert.Equal(t, req.GuestID, reservation.GuestID)
	assert.Equal(t, req.RoomID, reservation.RoomID)
	assert.Equal(t, checkIn, reservation.CheckInDate)
	assert.Equal(t, checkOut, reservation.CheckOutDate)
	assert.Equal(t, model.StatusPending, reservation.Status)
	assert.Equal(t, int64(30000), reservation.TotalAmount)
	assert.Equal(t, &notes, reservation.Notes)
	assert.Equal(t, userID, reservation.CreatedBy)
	assert.Equal(t, userID, reservation.ModifiedBy)
	assert.False(t, reservation.CreatedAt.IsZero(), "expected CreatedAt to be set")
	assert.False(t, reservation.ModifiedAt.IsZero(), "expected ModifiedAt to be set")
}

func TestReservationResponse_FromModel(t *testing.T) {
	now := timezone.Now()
	reservation := model.Reservation{
		ID:             "test-id",
		GuestID:        "guest-id",
		GuestFirstName: "Amelia",
		GuestLastName:  "Tan",
		RoomID:         "room-id",
		RoomNumber:     "204",
		CheckInDate:    time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		CheckOutDate:   time.Date(2026, 9, 4, 0, 0, 0, 0, time.UTC),
		Status:         model.StatusConfirmed,
		TotalAmount:    30000,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	var response dto.ReservationResponse
	response.FromModel(reservation)

	assert.Equal(t, reservation.ID, response.ID)
	assert.Equal(t, "Amelia Tan", response.GuestName)
	assert.Equal(t, "204", response.RoomNumber)
	assert.Equal(t, "2026-09-01", response.CheckInDate)
	assert.Equal(t, "2026-09-04", response.CheckOutDate)
	assert.Equal(t, model.StatusConfirmed, response.Status)
	assert.Equal(t, int64(30000), response.TotalAmount)
	assert.Nil(t, response.Notes)
	assert.Equal(t, reservation.CreatedBy, response.CreatedBy)
}

func TestGetReservationsResponse_FromModels(t *testing.T) {
	now := timezone.Now()
	reservations := []model.Reservation{
		{
			ID:           "test-id-1",
			Status:       model.StatusPending,
			TotalAmount:  10000,
			CheckInDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 9, 2, 0, 0, 0, 0, time.UTC),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "test-user",
				ModifiedBy: "test-user",
			},
		},
		{
			ID:           "test-id-2",
			Status:       model.StatusCheckedOut,
			TotalAmount:  45000,
			CheckInDate:  time.Date(2026, 9, 3, 0, 0, 0, 0, time.UTC),
			CheckOutDate: time.Date(2026, 9, 6, 0, 0, 0, 0, time.UTC),
			Metadata: gModel.Metadata{
				CreatedAt:  now,
				ModifiedAt: now,
				CreatedBy:  "test-user",
				ModifiedBy: "test-user",
			},
		},
	}

	var response dto.GetReservationsResponse
	response.FromModels(reservations, 25, 10)

	assert.Len(t, response.Reservations, 2)
	assert.Equal(t, 25, response.TotalData)
	assert.Equal(t, 3, response.TotalPage)
	assert.Equal(t, "test-id-1", response.Reservations[0].ID)
	assert.Equal(t, "test-id-2", response.Reservations[1].ID)
}
