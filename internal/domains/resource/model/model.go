package model

import (
	"catalog/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "resources"
	EntityName = "resource"

	FieldID        = "id"
	FieldName      = "name"
	FieldType      = "type"
	FieldCapacity  = "capacity"
	FieldFloor     = "floor"
	FieldLocationX = "location_x"
	FieldLocationY = "location_y"
	FieldAmenities = "amenities"
	FieldStatus    = "status"

	StatusAvailable   = "AVAILABLE"
	StatusMaintenance = "MAINTENANCE"
	StatusUnavailable = "UNAVAILABLE"

	TypeSeat      = "SEAT"
	TypeRoom      = "ROOM"
	TypeDesk      = "DESK"
	TypeEquipment = "EQUIPMENT"
)

type Resource struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Type      string         `db:"type"`
	Capacity  int            `db:"capacity"`
	Floor     int            `db:"floor"`
	LocationX *float64       `db:"location_x"`
	LocationY *float64       `db:"location_y"`
	Amenities pq.StringArray `db:"amenities"`
	Status    string         `db:"status"`
	model.Metadata
}
