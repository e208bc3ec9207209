package model

import "time"

const (
	EntityName = "report"

	GroupByDay   = "day"
	GroupByMonth = "month"
)

type OccupancyRow struct {
	Date          time.Time `db:"date"`
	OccupiedRooms int       `db:"occupied_rooms"`
	TotalRooms    int       `db:"total_rooms"`
}

type RevenueRow struct {
	Period         string `db:"period"`
	GrossAmount    int64  `db:"gross_amount"`
	RefundedAmount int64  `db:"refunded_amount"`
	PaymentCount   int    `db:"payment_count"`
}

type RevenueMethodRow struct {
	Method      string `db:"method"`
	GrossAmount int64  `db:"gross_amount"`
}

type ReservationStatusRow struct {
	Status string `db:"status"`
	Total  int    `db:"total"`
}
