package carrier_status

import (
	"fmt"
	"strings"

	"shipping/internal/entities"
	"shipping/internal/service/carrier"
)

// Коды статусов GHTK, которые мы понимаем. Остальные игнорируются выше по стеку.
const (
	codePickingUp = "2"
	codeInTransit = "3"
	codeDelivered = "5"
	codeCancelled = "6"
)

type Mapper struct {
	codes map[string]entities.ShipmentStatusType
}

func New() *Mapper {
	return &Mapper{
		codes: map[string]entities.ShipmentStatusType{
			codePickingUp: entities.ShipmentPickingUp,
			codeInTransit: entities.ShipmentInTransit,
			codeDelivered: entities.ShipmentDelivered,
			codeCancelled: entities.ShipmentCancelled,
		},
	}
}

func (m *Mapper) Map(code string) (entities.ShipmentStatusType, error) {
	status, ok := m.codes[strings.TrimSpace(code)]
	if !ok {
		return "", fmt.Errorf("%w: %q", carrier.ErrUnknownCarrierStatus, code)
	}
	return status, nil
}
