package route

import (
	"sort"

	"shipping/internal/entities"
)

// DeriveAggregateStatus вычисляет статус отправления по его плечам.
// Порядок sequence главный: более позднее плечо не перекрывает недоставленное раннее.
// Возврат на любом плече поднимается на всё отправление.
func DeriveAggregateStatus(legs []entities.SubShipmentOrder) entities.ShipmentStatusType {
	if len(legs) == 0 {
		return entities.ShipmentPending
	}
	ordered := sortedBySequence(legs)

	current := firstUndelivered(ordered)
	if current == nil {
		return entities.ShipmentDelivered
	}

	var returning, returned bool
	for _, leg := range ordered {
		switch leg.Status {
		case entities.ShipmentCancelled:
			return entities.ShipmentCancelled
		case entities.ShipmentReturning:
			returning = true
		case entities.ShipmentReturned:
			returned = true
		}
	}

	switch {
	case returning:
		return entities.ShipmentReturning
	case returned:
		return entities.ShipmentReturned
	}
	return current.Status
}

// firstUndelivered первое по sequence плечо не в DELIVERED, legs уже отсортированы.
func firstUndelivered(legs []entities.SubShipmentOrder) *entities.SubShipmentOrder {
	for i := range legs {
		if legs[i].Status != entities.ShipmentDelivered {
			return &legs[i]
		}
	}
	return nil
}

// activeLeg плечо, которое сейчас везут. nil, если маршрут закончен доставкой, отменой или возвратом.
func activeLeg(legs []entities.SubShipmentOrder) *entities.SubShipmentOrder {
	leg := firstUndelivered(legs)
	if leg == nil || entities.SubShipmentTransitions.IsTerminal(leg.Status) {
		return nil
	}
	return leg
}

// predecessor плечо с sequence на единицу меньше, nil для первого.
func predecessor(legs []entities.SubShipmentOrder, leg *entities.SubShipmentOrder) *entities.SubShipmentOrder {
	for i := range legs {
		if legs[i].Sequence == leg.Sequence-1 {
			return &legs[i]
		}
	}
	return nil
}

func sortedBySequence(legs []entities.SubShipmentOrder) []entities.SubShipmentOrder {
	ordered := make([]entities.SubShipmentOrder, len(legs))
	copy(ordered, legs)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Sequence < ordered[j].Sequence
	})
	return ordered
}
