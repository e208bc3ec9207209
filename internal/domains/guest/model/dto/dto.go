package dto

import (
	"hotelier/internal/domains/guest/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateGuestRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=100"`
	LastName  string  `json:"last_name"  validate:"required,max=100"`
	Email     string  `json:"email"      validate:"required,email,max=100"`
	Phone     *string `json:"phone"      validate:"omitempty,max=20"`
	Address   *string `json:"address"    validate:"omitempty,max=255"`
	City      *string `json:"city"       validate:"omitempty,max=100"`
	Country   *string `json:"country"    validate:"omitempty,max=100"`
	IDNumber  *string `json:"id_number"  validate:"omitempty,max=50"`
}

func (c *CreateGuestRequest) ToModel(user string) model.Guest {
	return model.Guest{
		ID:        uuid.NewString(),
		FirstName: c.FirstName,
		LastName:  c.LastName,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		City:      c.City,
		Country:   c.Country,
		IDNumber:  c.IDNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateGuestRequest struct {
	FirstName string  `db:"first_name" json:"first_name" validate:"omitempty,max=100"`
	LastName  string  `db:"last_name"  json:"last_name"  validate:"omitempty,max=100"`
	Email     string  `db:"email"      json:"email"      validate:"omitempty,email,max=100"`
	Phone     *string `db:"phone"      json:"phone"      validate:"omitempty,max=20"`
	Address   *string `db:"address"    json:"address"    validate:"omitempty,max=255"`
	City      *string `db:"city"       json:"city"       validate:"omitempty,max=100"`
	Country   *string `db:"country"    json:"country"    validate:"omitempty,max=100"`
	IDNumber  *string `db:"id_number"  json:"id_number"  validate:"omitempty,max=50"`
}

type GuestResponse struct {
	ID        string  `json:"id"`
	UserID    *string `json:"user_id,omitempty"`
	FirstName string  `json:"first_name"`
	LastName  string  `json:"last_name"`
	Email     string  `json:"email"`
	Phone     *string `json:"phone,omitempty"`
	Address   *string `json:"address,omitempty"`
	City      *string `json:"city,omitempty"`
	Country   *string `json:"country,omitempty"`
	IDNumber  *string `json:"id_number,omitempty"`
	gDto.Metadata
}

func (r *GuestResponse) FromModel(model model.Guest) {
	r.ID = model.ID
	r.UserID = model.UserID
	r.FirstName = model.FirstName
	r.LastName = model.LastName
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.City = model.City
	r.Country = model.Country
	r.IDNumber = model.IDNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetGuestsResponse struct {
	Guests    []GuestResponse `json:"guests"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetGuestsResponse) FromModels(models []model.Guest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Guests = make([]GuestResponse, len(models))
	for i, mod := range models {
		r.Guests[i].FromModel(mod)
	}
}
