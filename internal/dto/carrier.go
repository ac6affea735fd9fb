package dto

import (
	"github.com/google/uuid"
	"shipping/internal/entities"
)

// CarrierCallback тело вебхука GHTK и сообщения из топика статусов, partner_id это id отправления.
type CarrierCallback struct {
	PartnerID uuid.UUID     `json:"partner_id" validate:"required"`
	LabelID   string        `json:"label_id"`
	StatusID  CarrierStatus `json:"status_id" validate:"required"`
}

func (c CarrierCallback) ToEntity() entities.CarrierCallback {
	return entities.CarrierCallback{
		ShipmentID: c.PartnerID,
		LabelCode:  c.LabelID,
		StatusCode: c.StatusID.String(),
	}
}

type CarrierRegistration struct {
	ShipmentID        uuid.UUID `json:"shipment_id"`
	TrackingCode      string    `json:"tracking_code"`
	LabelCode         string    `json:"label_code,omitempty"`
	CarrierStatusCode string    `json:"carrier_status_code,omitempty"`
}

func FromCarrierRegistration(r *entities.CarrierRegistration) CarrierRegistration {
	return CarrierRegistration{
		ShipmentID:        r.ShipmentOrderID,
		TrackingCode:      r.TrackingCode,
		LabelCode:         r.LabelCode,
		CarrierStatusCode: r.CarrierStatusCode,
	}
}
