package shipment

import (
	"time"

	"github.com/google/uuid"
)

type ShipmentDB struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	ShipperID         *uuid.UUID
	WarehouseID       uuid.UUID
	PickupAddress     string
	DeliveryAddress   string
	CodAmount         int64
	ShippingFee       int64
	WeightGrams       int
	Status            string
	TrackingCode      string
	LabelCode         string
	CarrierStatusCode string
	EstimatedDelivery time.Time
	DeliveredAt       *time.Time
	ReturnedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type ShipmentModifyDB struct {
	ID                *uuid.UUID
	OrderID           *uuid.UUID
	ShipperID         *uuid.UUID
	WarehouseID       *uuid.UUID
	PickupAddress     *string
	DeliveryAddress   *string
	CodAmount         *int64
	ShippingFee       *int64
	WeightGrams       *int
	Status            *string
	TrackingCode      *string
	LabelCode         *string
	CarrierStatusCode *string
	EstimatedDelivery *time.Time
	DeliveredAt       *time.Time
	ReturnedAt        *time.Time
}
