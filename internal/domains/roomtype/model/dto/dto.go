package dto

import (
	"encoding/json"

	"hotelier/internal/domains/roomtype/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type CreateRoomTypeRequest struct {
	Name         string   `json:"name"          validate:"required,max=100"`
	Description  *string  `json:"description"   validate:"omitempty,max=500"`
	BasePrice    int64    `json:"base_price"    validate:"required,gt=0"`
	MaxOccupancy int      `json:"max_occupancy" validate:"required,gt=0"`
	Amenities    []string `json:"amenities"     validate:"omitempty,dive,max=100"`
}

func (c *CreateRoomTypeRequest) ToModel(user string) model.RoomType {
	return model.RoomType{
		ID:           uuid.NewString(),
		Name:         c.Name,
		Description:  c.Description,
		BasePrice:    c.BasePrice,
		MaxOccupancy: c.MaxOccupancy,
		Amenities:    marshalAmenities(c.Amenities),
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomTypeRequest struct {
	Name         string   `db:"name"          json:"name"          validate:"omitempty,max=100"`
	Description  *string  `db:"description"   json:"description"   validate:"omitempty,max=500"`
	BasePrice    int64    `db:"base_price"    json:"base_price"    validate:"omitempty,gt=0"`
	MaxOccupancy int      `db:"max_occupancy" json:"max_occupancy" validate:"omitempty,gt=0"`
	Amenities    []string `json:"amenities"   validate:"omitempty,dive,max=100"`
}

// MarshalAmenities exposes the JSON encoding used for the amenities column so
// the service can fold amenity updates into a field map.
func MarshalAmenities(amenities []string) string {
	return marshalAmenities(amenities)
}

type RoomTypeResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  *string  `json:"description,omitempty"`
	BasePrice    int64    `json:"base_price"`
	MaxOccupancy int      `json:"max_occupancy"`
	Amenities    []string `json:"amenities"`
	gDto.Metadata
}

func (r *RoomTypeResponse) FromModel(model model.RoomType) {
	r.ID = model.ID
	r.Name = model.Name
	r.Description = model.Description
	r.BasePrice = model.BasePrice
	r.MaxOccupancy = model.MaxOccupancy
	r.Amenities = unmarshalAmenities(model.Amenities)
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomTypesResponse struct {
	RoomTypes []RoomTypeResponse `json:"room_types"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetRoomTypesResponse) FromModels(models []model.RoomType, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.RoomTypes = make([]RoomTypeResponse, len(models))
	for i, mod := range models {
		r.RoomTypes[i].FromModel(mod)
	}
}

func marshalAmenities(amenities []string) string {
	if amenities == nil {
		amenities = []string{}
	}

	raw, err := json.Marshal(amenities)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal amenities")

		return "[]"
	}

	return string(raw)
}

func unmarshalAmenities(amenities string) []string {
	result := []string{}

	if amenities == "" {
		return result
	}

	if err := json.Unmarshal([]byte(amenities), &result); err != nil {
		log.Error().Err(err).Msg("failed to unmarshal amenities")
	}

	return result
}
