package dto

import (
	"time"

	"github.com/google/uuid"
	"shipping/internal/entities"
)

type RoutePlan struct {
	WarehousePath []uuid.UUID `json:"warehouse_path" validate:"required,min=1,dive,required"`
	ShipperIDs    []uuid.UUID `json:"shipper_ids" validate:"dive,required"`
}

func (p RoutePlan) ToEntity() entities.RoutePlan {
	return entities.RoutePlan{
		WarehousePath: p.WarehousePath,
		ShipperIDs:    p.ShipperIDs,
	}
}

type LegStatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

type SubShipment struct {
	ID              uuid.UUID  `json:"id"`
	ShipmentID      uuid.UUID  `json:"shipment_id"`
	Sequence        int        `json:"sequence"`
	FromWarehouseID uuid.UUID  `json:"from_warehouse_id"`
	ToWarehouseID   uuid.UUID  `json:"to_warehouse_id"`
	ShipperID       *uuid.UUID `json:"shipper_id,omitempty"`
	Status          string     `json:"status"`
	StartTime       *time.Time `json:"start_time,omitempty"`
	EndTime         *time.Time `json:"end_time,omitempty"`
}

func FromSubShipment(leg *entities.SubShipmentOrder) SubShipment {
	return SubShipment{
		ID:              leg.ID,
		ShipmentID:      leg.ShipmentOrderID,
		Sequence:        leg.Sequence,
		FromWarehouseID: leg.FromWarehouseID,
		ToWarehouseID:   leg.ToWarehouseID,
		ShipperID:       leg.ShipperID,
		Status:          leg.Status.String(),
		StartTime:       leg.StartTime,
		EndTime:         leg.EndTime,
	}
}

func FromSubShipments(legs []entities.SubShipmentOrder) []SubShipment {
	out := make([]SubShipment, 0, len(legs))
	for i := range legs {
		out = append(out, FromSubShipment(&legs[i]))
	}
	return out
}
