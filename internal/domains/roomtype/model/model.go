package model

import "hotelier/shared/model"

const (
	TableName  = "room_types"
	EntityName = "room_type"

	FieldID           = "id"
	FieldName         = "name"
	FieldDescription  = "description"
	FieldBasePrice    = "base_price"
	FieldMaxOccupancy = "max_occupancy"
	FieldAmenities    = "amenities"
)

// RoomType describes a bookable category of rooms. BasePrice is the nightly
// rate in the smallest currency unit (cents). Amenities holds a JSON array.
type RoomType struct {
	ID           string  `db:"id"`
	Name         string  `db:"name"`
	Description  *string `db:"description"`
	BasePrice    int64   `db:"base_price"`
	MaxOccupancy int     `db:"max_occupancy"`
	Amenities    string  `db:"amenities"`
	model.Metadata
}
