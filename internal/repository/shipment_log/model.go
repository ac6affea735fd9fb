package shipment_log

import (
	"time"

	"github.com/google/uuid"
)

type ShipmentLogDB struct {
	ID                 uuid.UUID
	ShipmentOrderID    uuid.UUID
	SubShipmentOrderID *uuid.UUID
	Status             string
	Note               string
	CreatedAt          time.Time
}
