package model

import "hotelier/shared/model"

const (
	TableName  = "rooms"
	EntityName = "room"

	FieldID         = "id"
	FieldNumber     = "number"
	FieldFloor      = "floor"
	FieldStatus     = "status"
	FieldRoomTypeID = "room_type_id"
	FieldPhotoURL   = "photo_url"
)

const (
	StatusAvailable    = "available"
	StatusOccupied     = "occupied"
	StatusMaintenance  = "maintenance"
	StatusOutOfService = "out_of_service"
)

type Room struct {
	ID         string  `db:"id"`
	Number     string  `db:"number"`
	Floor      int     `db:"floor"`
	Status     string  `db:"status"`
	RoomTypeID string  `db:"room_type_id"`
	PhotoURL   *string `db:"photo_url"`
	TypeName   string  `db:"type_name"  table:"room_types" column:"name"`
	BasePrice  int64   `db:"base_price" table:"room_types"`
	model.Metadata
}

func (Room) GetJoinQuery() string {
	return "JOIN room_types ON room_types.id = rooms.room_type_id"
}
