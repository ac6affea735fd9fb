package entities

type ShipmentStatistics struct {
	Total    int
	ByStatus map[ShipmentStatusType]int
}

type OrderStatistics struct {
	Total    int
	ByStatus map[OrderStatusType]int
}
