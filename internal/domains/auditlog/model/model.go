package model

import "hotelier/shared/model"

const (
	TableName  = "audit_logs"
	EntityName = "audit_log"

	FieldID        = "id"
	FieldTableName = "table_name"
	FieldRecordID  = "record_id"
	FieldAction    = "action"
	FieldOldValues = "old_values"
	FieldNewValues = "new_values"
	FieldActor     = "actor"
)

const (
	ActionCreate = "create"
	ActionUpdate = "update"
	ActionDelete = "delete"
)

type AuditLog struct {
	ID        string  `db:"id"`
	TableName string  `db:"table_name"`
	RecordID  string  `db:"record_id"`
	Action    string  `db:"action"`
	OldValues *string `db:"old_values"`
	NewValues *string `db:"new_values"`
	Actor     string  `db:"actor"`
	model.Metadata
}
