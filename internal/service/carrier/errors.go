package carrier

import "errors"

var (
	ErrAlreadyRegistered    = errors.New("shipment already registered with carrier")
	ErrCarrierUnreachable   = errors.New("carrier unreachable")
	ErrCarrierRejected      = errors.New("carrier rejected request")
	ErrUnknownCarrierStatus = errors.New("unknown carrier status code")
	ErrOverweight           = errors.New("shipment exceeds carrier weight limit")
	ErrNotRegisterable      = errors.New("shipment cannot be registered in its current status")
)
