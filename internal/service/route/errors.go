package route

import "errors"

var (
	ErrEmptyRoute          = errors.New("route must contain at least one warehouse")
	ErrInvalidRoute        = errors.New("invalid route")
	ErrRouteAlreadyPlanned = errors.New("route already planned")
	ErrShipmentNotPending  = errors.New("route can be planned only for a pending shipment")
	ErrLegNotFound         = errors.New("sub-shipment not found")
	ErrInvalidStatus       = errors.New("invalid sub-shipment status")
	ErrLegOutOfOrder       = errors.New("previous sub-shipment is not delivered yet")
)
