package entities

import "github.com/google/uuid"

type CarrierRegistration struct {
	ShipmentOrderID   uuid.UUID
	TrackingCode      string
	LabelCode         string
	CarrierStatusCode string
}

// CarrierPickupRequest всё, что перевозчику нужно для заявки на забор.
type CarrierPickupRequest struct {
	PartnerID       string
	PickName        string
	PickPhone       string
	PickAddress     Address
	ReceiverName    string
	ReceiverPhone   string
	DeliveryAddress string
	// ReceiverAddress разобранный адрес покупателя, если он есть в заказе.
	ReceiverAddress *Address
	CodAmount       int64
	Value           int64
	WeightGrams     int
	Freeship        bool
	Products        []CarrierProduct
}

type CarrierProduct struct {
	Name        string
	WeightKg    float64
	Quantity    int
	ProductCode string
}

type CarrierCallback struct {
	ShipmentID uuid.UUID
	LabelCode  string
	StatusCode string
}
