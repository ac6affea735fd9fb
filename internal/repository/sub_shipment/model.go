package sub_shipment

import (
	"time"

	"github.com/google/uuid"
)

type SubShipmentDB struct {
	ID              uuid.UUID
	ShipmentOrderID uuid.UUID
	Sequence        int
	FromWarehouseID uuid.UUID
	ToWarehouseID   uuid.UUID
	ShipperID       *uuid.UUID
	Status          string
	StartTime       *time.Time
	EndTime         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SubShipmentModifyDB struct {
	ID        *uuid.UUID
	ShipperID *uuid.UUID
	Status    *string
	StartTime *time.Time
	EndTime   *time.Time
}
