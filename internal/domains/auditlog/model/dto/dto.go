package dto

import (
	"encoding/json"

	"hotelier/internal/domains/auditlog/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// RecordEntry is what mutating services hand to the audit recorder.
// OldValues and NewValues are marshalled to JSON before persisting.
type RecordEntry struct {
	TableName string
	RecordID  string
	Action    string
	OldValues any
	NewValues any
}

func (e *RecordEntry) ToModel(actor string) model.AuditLog {
	if actor == constant.Empty {
		actor = constant.ContextSystem
	}

	return model.AuditLog{
		ID:        uuid.NewString(),
		TableName: e.TableName,
		RecordID:  e.RecordID,
		Action:    e.Action,
		OldValues: marshalValues(e.OldValues),
		NewValues: marshalValues(e.NewValues),
		Actor:     actor,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

func marshalValues(values any) *string {
	if values == nil {
		return nil
	}

	raw, err := json.Marshal(values)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal audit values")

		return nil
	}

	str := string(raw)

	return &str
}

type AuditLogResponse struct {
	ID        string  `json:"id"`
	TableName string  `json:"table_name"`
	RecordID  string  `json:"record_id"`
	Action    string  `json:"action"`
	OldValues *string `json:"old_values,omitempty"`
	NewValues *string `json:"new_values,omitempty"`
	Actor     string  `json:"actor"`
	CreatedAt string  `json:"created_at"`
}

func (r *AuditLogResponse) FromModel(model model.AuditLog) {
	r.ID = model.ID
	r.TableName = model.TableName
	r.RecordID = model.RecordID
	r.Action = model.Action
	r.OldValues = model.OldValues
	r.NewValues = model.NewValues
	r.Actor = model.Actor
	r.CreatedAt = timezone.Format(model.CreatedAt, constant.DateFormat)
}

type GetAuditLogsResponse struct {
	AuditLogs []AuditLogResponse `json:"audit_logs"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetAuditLogsResponse) FromModels(models []model.AuditLog, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.AuditLogs = make([]AuditLogResponse, len(models))
	for i, mod := range models {
		r.AuditLogs[i].FromModel(mod)
	}
}
