package entities

import (
	"time"

	"github.com/google/uuid"
)

type ShipmentLog struct {
	ID                 uuid.UUID
	ShipmentOrderID    uuid.UUID
	SubShipmentOrderID *uuid.UUID
	Status             ShipmentStatusType
	Note               string
	CreatedAt          time.Time
}
