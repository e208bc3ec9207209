package dto

import (
	"mime/multipart"

	"hotelier/internal/domains/room/model"
	"hotelier/shared"
	gDto "hotelier/shared/dto"
	gModel "hotelier/shared/model"
	"hotelier/shared/timezone"

	"github.com/google/uuid"
)

type CreateRoomRequest struct {
	Number     string `json:"number"       validate:"required,max=20"`
	Floor      int    `json:"floor"        validate:"required"`
	Status     string `json:"status"       validate:"omitempty,oneof=available occupied maintenance out_of_service"`
	RoomTypeID string `json:"room_type_id" validate:"required,uuid"`
}

func (c *CreateRoomRequest) ToModel(user string) model.Room {
	status := c.Status
	if status == "" {
		status = model.StatusAvailable
	}

	return model.Room{
		ID:         uuid.NewString(),
		Number:     c.Number,
		Floor:      c.Floor,
		Status:     status,
		RoomTypeID: c.RoomTypeID,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateRoomRequest struct {
	Number     string `db:"number"       json:"number"       validate:"omitempty,max=20"`
	Floor      int    `db:"floor"        json:"floor"        validate:"omitempty"`
	Status     string `db:"status"       json:"status"       validate:"omitempty,oneof=available occupied maintenance out_of_service"`
	RoomTypeID string `db:"room_type_id" json:"room_type_id" validate:"omitempty,uuid"`
}

type UploadPhotoRequest struct {
	PhotoFile multipart.File
	Photo     *multipart.FileHeader `validate:"required,mimetypes=image/jpeg image/png image/webp,maxfilesize=5"`
}

type UploadPhotoResponse struct {
	URL      string `json:"url"`
	FileName string `json:"file_name"`
}

func (r *UploadPhotoResponse) FromUpload(url, fileName string) {
	r.URL = url
	r.FileName = fileName
}

type RoomResponse struct {
	ID         string  `json:"id"`
	Number     string  `json:"number"`
	Floor      int     `json:"floor"`
	Status     string  `json:"status"`
	RoomTypeID string  `json:"room_type_id"`
	TypeName   string  `json:"type_name"`
	BasePrice  int64   `json:"base_price"`
	PhotoURL   *string `json:"photo_url,omitempty"`
	gDto.Metadata
}

func (r *RoomResponse) FromModel(model model.Room) {
	r.ID = model.ID
	r.Number = model.Number
	r.Floor = model.Floor
	r.Status = model.Status
	r.RoomTypeID = model.RoomTypeID
	r.TypeName = model.TypeName
	r.BasePrice = model.BasePrice
	r.PhotoURL = model.PhotoURL
	r.Metadata.FromModel(model.Metadata)
}

type GetRoomsResponse struct {
	Rooms     []RoomResponse `json:"rooms"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetRoomsResponse) FromModels(models []model.Room, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Rooms = make([]RoomResponse, len(models))
	for i, mod := range models {
		r.Rooms[i].FromModel(mod)
	}
}
