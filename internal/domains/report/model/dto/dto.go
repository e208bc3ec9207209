package dto

import (
	"hotelier/internal/domains/report/model"
	"hotelier/shared/constant"
)

type OccupancyEntry struct {
	Date          string  `json:"date"`
	OccupiedRooms int     `json:"occupied_rooms"`
	TotalRooms    int     `json:"total_rooms"`
	OccupancyRate float64 `json:"occupancy_rate"`
}

type OccupancyReportResponse struct {
	From    string           `json:"from"`
	To      string           `json:"to"`
	Entries []OccupancyEntry `json:"entries"`
}

func (r *OccupancyReportResponse) FromRows(rows []model.OccupancyRow, from, to string) {
	r.From = from
	r.To = to

	r.Entries = make([]OccupancyEntry, len(rows))
	for i, row := range rows {
		rate := 0.0
		if row.TotalRooms > 0 {
			rate = float64(row.OccupiedRooms) / float64(row.TotalRooms)
		}

		r.Entries[i] = OccupancyEntry{
			Date:          row.Date.Format(constant.DayFormat),
			OccupiedRooms: row.OccupiedRooms,
			TotalRooms:    row.TotalRooms,
			OccupancyRate: rate,
		}
	}
}

type RevenueEntry struct {
	Period         string `json:"period"`
	GrossAmount    int64  `json:"gross_amount"`
	RefundedAmount int64  `json:"refunded_amount"`
	NetAmount      int64  `json:"net_amount"`
	PaymentCount   int    `json:"payment_count"`
}

type RevenueReportResponse struct {
	From       string           `json:"from"`
	To         string           `json:"to"`
	GroupBy    string           `json:"group_by"`
	TotalGross int64            `json:"total_gross"`
	TotalNet   int64            `json:"total_net"`
	ByMethod   map[string]int64 `json:"by_method"`
	Entries    []RevenueEntry   `json:"entries"`
}

func (r *RevenueReportResponse) FromRows(rows []model.RevenueRow, methods []model.RevenueMethodRow, from, to, groupBy string) {
	r.From = from
	r.To = to
	r.GroupBy = groupBy
	r.ByMethod = make(map[string]int64, len(methods))

	for _, method := range methods {
		r.ByMethod[method.Method] = method.GrossAmount
	}

	r.Entries = make([]RevenueEntry, len(rows))
	for i, row := range rows {
		net := row.GrossAmount - row.RefundedAmount

		r.Entries[i] = RevenueEntry{
			Period:         row.Period,
			GrossAmount:    row.GrossAmount,
			RefundedAmount: row.RefundedAmount,
			NetAmount:      net,
			PaymentCount:   row.PaymentCount,
		}

		r.TotalGross += row.GrossAmount
		r.TotalNet += net
	}
}

type ReservationsReportResponse struct {
	From             string         `json:"from"`
	To               string         `json:"to"`
	Total            int            `json:"total"`
	ByStatus         map[string]int `json:"by_status"`
	CancellationRate float64        `json:"cancellation_rate"`
}

func (r *ReservationsReportResponse) FromRows(rows []model.ReservationStatusRow, from, to, cancelledStatus string) {
	r.From = from
	r.To = to
	r.ByStatus = make(map[string]int, len(rows))

	cancelled := 0

	for _, row := range rows {
		r.ByStatus[row.Status] = row.Total
		r.Total += row.Total

		if row.Status == cancelledStatus {
			cancelled = row.Total
		}
	}

	if r.Total > 0 {
		r.CancellationRate = float64(cancelled) / float64(r.Total)
	}
}
