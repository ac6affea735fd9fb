package shipment

import "shipping/internal/entities"

func ToDomain(s *ShipmentDB) *entities.ShipmentOrder {
	if s == nil {
		return nil
	}
	return &entities.ShipmentOrder{
		ID:                s.ID,
		OrderID:           s.OrderID,
		ShipperID:         s.ShipperID,
		WarehouseID:       s.WarehouseID,
		PickupAddress:     s.PickupAddress,
		DeliveryAddress:   s.DeliveryAddress,
		CodAmount:         s.CodAmount,
		ShippingFee:       s.ShippingFee,
		WeightGrams:       s.WeightGrams,
		Status:            entities.ShipmentStatusType(s.Status),
		TrackingCode:      s.TrackingCode,
		LabelCode:         s.LabelCode,
		CarrierStatusCode: s.CarrierStatusCode,
		EstimatedDelivery: s.EstimatedDelivery,
		DeliveredAt:       s.DeliveredAt,
		ReturnedAt:        s.ReturnedAt,
		CreatedAt:         s.CreatedAt,
		UpdatedAt:         s.UpdatedAt,
	}
}

func ToDomainList(models []ShipmentDB) []entities.ShipmentOrder {
	out := make([]entities.ShipmentOrder, 0, len(models))
	for i := range models {
		out = append(out, *ToDomain(&models[i]))
	}
	return out
}

func FromDomainModify(m *entities.ShipmentModify) *ShipmentModifyDB {
	if m == nil {
		return nil
	}
	modifyDB := &ShipmentModifyDB{
		ID:                m.ID,
		OrderID:           m.OrderID,
		ShipperID:         m.ShipperID,
		WarehouseID:       m.WarehouseID,
		PickupAddress:     m.PickupAddress,
		DeliveryAddress:   m.DeliveryAddress,
		CodAmount:         m.CodAmount,
		ShippingFee:       m.ShippingFee,
		WeightGrams:       m.WeightGrams,
		TrackingCode:      m.TrackingCode,
		LabelCode:         m.LabelCode,
		CarrierStatusCode: m.CarrierStatusCode,
		EstimatedDelivery: m.EstimatedDelivery,
		DeliveredAt:       m.DeliveredAt,
		ReturnedAt:        m.ReturnedAt,
	}
	if m.Status != nil {
		status := string(*m.Status)
		modifyDB.Status = &status
	}
	return modifyDB
}
