package model

import (
	"time"

	"hotelier/shared/model"
)

const (
	TableName  = "staff"
	EntityName = "staff"

	FieldID         = "id"
	FieldUserID     = "user_id"
	FieldDepartment = "department"
	FieldPosition   = "position"
	FieldHireDate   = "hire_date"
	FieldActive     = "active"
)

type Staff struct {
	ID         string    `db:"id"`
	UserID     string    `db:"user_id"`
	Department string    `db:"department"`
	Position   string    `db:"position"`
	HireDate   time.Time `db:"hire_date"`
	Active     bool      `db:"active"`
	model.Metadata
}
