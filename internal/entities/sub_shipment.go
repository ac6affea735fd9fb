package entities

import (
	"time"

	"github.com/google/uuid"
)

// SubShipmentOrder одно плечо маршрута между двумя складами.
type SubShipmentOrder struct {
	ID              uuid.UUID
	ShipmentOrderID uuid.UUID
	Sequence        int
	FromWarehouseID uuid.UUID
	ToWarehouseID   uuid.UUID
	ShipperID       *uuid.UUID
	Status          ShipmentStatusType
	StartTime       *time.Time
	EndTime         *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type SubShipmentModify struct {
	ID        *uuid.UUID
	ShipperID *uuid.UUID
	Status    *ShipmentStatusType
	StartTime *time.Time
	EndTime   *time.Time
}

type RoutePlan struct {
	WarehousePath []uuid.UUID
	ShipperIDs    []uuid.UUID
}
