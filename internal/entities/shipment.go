package entities

import (
	"time"

	"github.com/google/uuid"
)

type ShipmentOrder struct {
	ID                uuid.UUID
	OrderID           uuid.UUID
	ShipperID         *uuid.UUID
	WarehouseID       uuid.UUID
	PickupAddress     string
	DeliveryAddress   string
	CodAmount         int64
	ShippingFee       int64
	WeightGrams       int
	Status            ShipmentStatusType
	TrackingCode      string
	LabelCode         string
	CarrierStatusCode string
	EstimatedDelivery time.Time
	DeliveredAt       *time.Time
	ReturnedAt        *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	// Legs заполняется только при чтении карточки отправления.
	Legs []SubShipmentOrder
}

func (s *ShipmentOrder) IsRegistered() bool {
	return s.TrackingCode != ""
}

type ShipmentStatusType string

const (
	ShipmentPending    ShipmentStatusType = "PENDING"
	ShipmentRegistered ShipmentStatusType = "REGISTERED"
	ShipmentPickingUp  ShipmentStatusType = "PICKING_UP"
	ShipmentInTransit  ShipmentStatusType = "IN_TRANSIT"
	ShipmentDelivered  ShipmentStatusType = "DELIVERED"
	ShipmentReturning  ShipmentStatusType = "RETURNING"
	ShipmentReturned   ShipmentStatusType = "RETURNED"
	ShipmentCancelled  ShipmentStatusType = "CANCELLED"
)

func (s ShipmentStatusType) String() string {
	return string(s)
}

var ShipmentStatuses = []ShipmentStatusType{
	ShipmentPending,
	ShipmentRegistered,
	ShipmentPickingUp,
	ShipmentInTransit,
	ShipmentDelivered,
	ShipmentReturning,
	ShipmentReturned,
	ShipmentCancelled,
}

type ShipmentModify struct {
	ID                *uuid.UUID
	OrderID           *uuid.UUID
	ShipperID         *uuid.UUID
	WarehouseID       *uuid.UUID
	PickupAddress     *string
	DeliveryAddress   *string
	CodAmount         *int64
	ShippingFee       *int64
	WeightGrams       *int
	Status            *ShipmentStatusType
	TrackingCode      *string
	LabelCode         *string
	CarrierStatusCode *string
	EstimatedDelivery *time.Time
	DeliveredAt       *time.Time
	ReturnedAt        *time.Time
}

type ShipmentCreate struct {
	OrderID     uuid.UUID
	WarehouseID uuid.UUID
	ShipperID   *uuid.UUID
	WeightGrams *int
}

type ShipmentFilter struct {
	Status      *ShipmentStatusType
	WarehouseID *uuid.UUID
	ShipperID   *uuid.UUID
	Registered  *bool
	Limit       uint64
}

// ShipmentStatusChanged публикуется после фиксации смены статуса.
type ShipmentStatusChanged struct {
	ShipmentID   uuid.UUID
	OrderID      uuid.UUID
	Status       ShipmentStatusType
	TrackingCode string
	OccurredAt   time.Time
}
