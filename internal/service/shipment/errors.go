package shipment

import "errors"

var (
	ErrShipmentNotFound   = errors.New("shipment not found")
	ErrDuplicateShipment  = errors.New("shipment already exists for order")
	ErrOrderNotConfirmed  = errors.New("order is not confirmed")
	ErrInvalidWarehouse   = errors.New("invalid warehouse")
	ErrInvalidShipper     = errors.New("invalid shipper")
	ErrShopNotFound       = errors.New("shop not found")
	ErrInvalidWeight      = errors.New("invalid weight")
	ErrInvalidStatus      = errors.New("invalid shipment status")
	ErrAddressUnavailable = errors.New("address unavailable")
	ErrRelayedShipment    = errors.New("shipment status is derived from its legs")
	ErrShipmentFinished   = errors.New("shipment is in a terminal status")
)
