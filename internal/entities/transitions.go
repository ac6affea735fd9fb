package entities

import "shipping/pkg/statemachine"

// Таблицы переходов. Всё, чего здесь нет, запрещено.
var (
	OrderTransitions = statemachine.New(map[OrderStatusType][]OrderStatusType{
		OrderPending:         {OrderConfirmed, OrderCancelled},
		OrderConfirmed:       {OrderPacked, OrderCancelled},
		OrderPacked:          {OrderShipping},
		OrderShipping:        {OrderDelivered},
		OrderDelivered:       {OrderReturnRequested},
		OrderReturnRequested: {OrderReturned},
		OrderCancelled:       {},
		OrderReturned:        {},
	})

	ShipmentTransitions = statemachine.New(shipmentEdges())

	// у плеч те же правила, что и у отправления
	SubShipmentTransitions = statemachine.New(shipmentEdges())
)

func shipmentEdges() map[ShipmentStatusType][]ShipmentStatusType {
	return map[ShipmentStatusType][]ShipmentStatusType{
		ShipmentPending:    {ShipmentRegistered, ShipmentCancelled},
		ShipmentRegistered: {ShipmentPickingUp, ShipmentCancelled},
		ShipmentPickingUp:  {ShipmentInTransit},
		ShipmentInTransit:  {ShipmentDelivered, ShipmentReturning},
		ShipmentReturning:  {ShipmentReturned},
		ShipmentDelivered:  {},
		ShipmentReturned:   {},
		ShipmentCancelled:  {},
	}
}
