package dto

import (
	"time"

	"hotelier/internal/domains/staff/model"
	"hotelier/shared"
	"hotelier/shared/constant"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	UserID     string `json:"user_id"    validate:"required,uuid"`
	Department string `json:"department" validate:"required,max=100"`
	Position   string `json:"position"   validate:"required,max=100"`
	HireDate   string `json:"hire_date"  validate:"required"`
}

func (c *CreateStaffRequest) ToModel(user string) (model.Staff, error) {
	hireDate, err := time.Parse(constant.DayFormat, c.HireDate)
	if err != nil {
		return model.Staff{}, err
	}

	return model.Staff{
		ID:         uuid.NewString(),
		UserID:     c.UserID,
		Department: c.Department,
		Position:   c.Position,
		HireDate:   hireDate,
		Active:     true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}, nil
}

type UpdateStaffRequest struct {
	Department string `db:"department" json:"department" validate:"omitempty,max=100"`
	Position   string `db:"position"   json:"position"   validate:"omitempty,max=100"`
}

type StaffResponse struct {
	ID         string `json:"id"`
	UserID     string `json:"user_id"`
	Department string `json:"department"`
	Position   string `json:"position"`
	HireDate   string `json:"hire_date"`
	Active     bool   `json:"active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.Staff) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.Department = model.Department
	r.Position = model.Position
	r.HireDate = model.HireDate.Format(constant.DayFormat)
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
