package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "reservations"
	EntityName = "reservation"

	FieldID           = "id"
	FieldGuestID      = "guest_id"
	FieldRoomID       = "room_id"
	FieldCheckInDate  = "check_in_date"
	FieldCheckOutDate = "check_out_date"
	FieldStatus       = "status"
	FieldTotalAmount  = "total_amount"
	FieldNotes        = "notes"
)

const (
	StatusPending    = "pending"
	StatusConfirmed  = "confirmed"
	StatusCheckedIn  = "checked_in"
	StatusCheckedOut = "checked_out"
	StatusCancelled  = "cancelled"
)

// transitions is the allowed status machine. Cancellation is only possible
// before check-in; a checked-out reservation is terminal.
var transitions = map[string][]string{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCheckedIn, StatusCancelled},
	StatusCheckedIn: {StatusCheckedOut},
}

// CanTransition reports whether a reservation may move from one status to another.
func CanTransition(from, to string) bool {
	for _, allowed := range transitions[from] {
		if allowed == to {
			return true
		}
	}

	return false
}

type Reservation struct {
	ID             string    `db:"id"`
	GuestID        string    `db:"guest_id"`
	RoomID         string    `db:"room_id"`
	CheckInDate    time.Time `db:"check_in_date"`
	CheckOutDate   time.Time `db:"check_out_date"`
	Status         string    `db:"status"`
	TotalAmount    int64     `db:"total_amount"`
	Notes          *string   `db:"notes"`
	RoomNumber     string    `db:"room_number"      table:"rooms"  column:"number"`
	GuestFirstName string    `db:"guest_first_name" table:"guests" column:"first_name"`
	GuestLastName  string    `db:"guest_last_name"  table:"guests" column:"last_name"`
	model.Metadata
}

func (Reservation) GetJoinQuery() string {
	return "JOIN rooms ON rooms.id = reservations.room_id JOIN guests ON guests.id = reservations.guest_id"
}

// Nights returns the length of stay in whole days.
func (r *Reservation) Nights() int64 {
	return int64(r.CheckOutDate.Sub(r.CheckInDate).Hours() / 24)
}
