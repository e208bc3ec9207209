package model

import "hotelier/shared/model"

const (
	TableName  = "guests"
	EntityName = "guest"

	FieldID        = "id"
	FieldUserID    = "user_id"
	FieldFirstName = "first_name"
	FieldLastName  = "last_name"
	FieldEmail     = "email"
	FieldPhone     = "phone"
	FieldAddress   = "address"
	FieldCity      = "city"
	FieldCountry   = "country"
	FieldIDNumber  = "id_number"
)

type Guest struct {
	ID        string  `db:"id"`
	UserID    *string `db:"user_id"`
	FirstName string  `db:"first_name"`
	LastName  string  `db:"last_name"`
	Email     string  `db:"email"`
	Phone     *string `db:"phone"`
	Address   *string `db:"address"`
	City      *string `db:"city"`
	Country   *string `db:"country"`
	IDNumber  *string `db:"id_number"`
	model.Metadata
}
