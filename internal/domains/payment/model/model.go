package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID             = "id"
	FieldReservationID  = "reservation_id"
	FieldAmount         = "amount"
	FieldRefundedAmount = "refunded_amount"
	FieldMethod         = "method"
	FieldStatus         = "status"
	FieldPaidAt         = "paid_at"
)

const (
	StatusPending           = "pending"
	StatusCompleted         = "completed"
	StatusFailed            = "failed"
	StatusRefunded          = "refunded"
	StatusPartiallyRefunded = "partially_refunded"
)

const (
	MethodCash         = "cash"
	MethodCard         = "card"
	MethodBankTransfer = "bank_transfer"
	MethodOnline       = "online"
)

type Payment struct {
	ID             string     `db:"id"`
	ReservationID  string     `db:"reservation_id"`
	Amount         int64      `db:"amount"`
	RefundedAmount int64      `db:"refunded_amount"`
	Method         string     `db:"method"`
	Status         string     `db:"status"`
	PaidAt         *time.Time `db:"paid_at"`
	GuestID        string     `db:"guest_id"         table:"reservations" column:"guest_id"`
	GuestFirstName string     `db:"guest_first_name" table:"guests"       column:"first_name"`
	GuestLastName  string     `db:"guest_last_name"  table:"guests"       column:"last_name"`
	model.Metadata
}

func (Payment) GetJoinQuery() string {
	return "JOIN reservations ON reservations.id = payments.reservation_id JOIN guests ON guests.id = reservations.guest_id"
}

// RemainingBalance is the refundable portion left on a completed payment.
func (p *Payment) RemainingBalance() int64 {
	return p.Amount - p.RefundedAmount
}
