package dto

import (
	"time"

	"github.com/google/uuid"
	"shipping/internal/entities"
)

type ShipmentCreate struct {
	OrderID     uuid.UUID  `json:"order_id" validate:"required"`
	WarehouseID uuid.UUID  `json:"warehouse_id" validate:"required"`
	ShipperID   *uuid.UUID `json:"shipper_id,omitempty"`
	WeightGrams *int       `json:"weight_grams,omitempty" validate:"omitempty,gte=0"`
}

func (c ShipmentCreate) ToEntity() entities.ShipmentCreate {
	return entities.ShipmentCreate{
		OrderID:     c.OrderID,
		WarehouseID: c.WarehouseID,
		ShipperID:   c.ShipperID,
		WeightGrams: c.WeightGrams,
	}
}

type ShipmentStatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

type ShipperAssign struct {
	ShipperID uuid.UUID `json:"shipper_id" validate:"required"`
}

type Shipment struct {
	ID                uuid.UUID     `json:"id"`
	OrderID           uuid.UUID     `json:"order_id"`
	WarehouseID       uuid.UUID     `json:"warehouse_id"`
	ShipperID         *uuid.UUID    `json:"shipper_id,omitempty"`
	Status            string        `json:"status"`
	PickupAddress     string        `json:"pickup_address"`
	DeliveryAddress   string        `json:"delivery_address"`
	CodAmount         int64         `json:"cod_amount"`
	ShippingFee       int64         `json:"shipping_fee"`
	WeightGrams       int           `json:"weight_grams"`
	TrackingCode      string        `json:"tracking_code,omitempty"`
	LabelCode         string        `json:"label_code,omitempty"`
	CarrierStatusCode string        `json:"carrier_status_code,omitempty"`
	EstimatedDelivery time.Time     `json:"estimated_delivery"`
	DeliveredAt       *time.Time    `json:"delivered_at,omitempty"`
	ReturnedAt        *time.Time    `json:"returned_at,omitempty"`
	CreatedAt         time.Time     `json:"created_at"`
	UpdatedAt         time.Time     `json:"updated_at"`
	Legs              []SubShipment `json:"legs,omitempty"`
}

func FromShipment(s *entities.ShipmentOrder) Shipment {
	var legs []SubShipment
	if len(s.Legs) > 0 {
		legs = FromSubShipments(s.Legs)
	}

	return Shipment{
		ID:                s.ID,
		OrderID:           s.OrderID,
		WarehouseID:       s.WarehouseID,
		ShipperID:         s.ShipperID,
		Status:            s.Status.String(),
		PickupAddress:     s.PickupAddress,
		DeliveryAddress:   s.DeliveryAddress,
		CodAmount:         s.CodAmount,
		ShippingFee:       s.ShippingFee,
		WeightGrams:       s.WeightGrams,
		TrackingCode:      s.TrackingCode,
		LabelCode:         s.LabelCode,
		CarrierStatusCode: s.CarrierStatusCode,
		EstimatedDelivery: s.EstimatedDelivery,
		DeliveredAt:       s.DeliveredAt,
		ReturnedAt:        s.ReturnedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
		Legs:              legs,
	}
}

func FromShipments(shipments []entities.ShipmentOrder) []Shipment {
	out := make([]Shipment, 0, len(shipments))
	for i := range shipments {
		out = append(out, FromShipment(&shipments[i]))
	}
	return out
}

type ShipmentLog struct {
	ID            uuid.UUID  `json:"id"`
	SubShipmentID *uuid.UUID `json:"sub_shipment_id,omitempty"`
	Status        string     `json:"status"`
	Note          string     `json:"note"`
	CreatedAt     time.Time  `json:"created_at"`
}

func FromShipmentLogs(logs []entities.ShipmentLog) []ShipmentLog {
	out := make([]ShipmentLog, 0, len(logs))
	for _, l := range logs {
		out = append(out, ShipmentLog{
			ID:            l.ID,
			SubShipmentID: l.SubShipmentOrderID,
			Status:        l.Status.String(),
			Note:          l.Note,
			CreatedAt:     l.CreatedAt,
		})
	}
	return out
}
