package dto

import "shipping/internal/entities"

type StatusCounts struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

type Statistics struct {
	Shipments StatusCounts `json:"shipments"`
	Orders    StatusCounts `json:"orders"`
}

func FromStatistics(shipments *entities.ShipmentStatistics, orders *entities.OrderStatistics) Statistics {
	return Statistics{
		Shipments: StatusCounts{Total: shipments.Total, ByStatus: stringKeys(shipments.ByStatus)},
		Orders:    StatusCounts{Total: orders.Total, ByStatus: stringKeys(orders.ByStatus)},
	}
}

func stringKeys[S ~string](counts map[S]int) map[string]int {
	out := make(map[string]int, len(counts))
	for k, v := range counts {
		out[string(k)] = v
	}
	return out
}
