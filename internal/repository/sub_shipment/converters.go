package sub_shipment

import "shipping/internal/entities"

func ToDomain(s *SubShipmentDB) *entities.SubShipmentOrder {
	if s == nil {
		return nil
	}
	return &entities.SubShipmentOrder{
		ID:              s.ID,
		ShipmentOrderID: s.ShipmentOrderID,
		Sequence:        s.Sequence,
		FromWarehouseID: s.FromWarehouseID,
		ToWarehouseID:   s.ToWarehouseID,
		ShipperID:       s.ShipperID,
		Status:          entities.ShipmentStatusType(s.Status),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
		CreatedAt:       s.CreatedAt,
		UpdatedAt:       s.UpdatedAt,
	}
}

func FromDomain(s *entities.SubShipmentOrder) *SubShipmentDB {
	if s == nil {
		return nil
	}
	return &SubShipmentDB{
		ID:              s.ID,
		ShipmentOrderID: s.ShipmentOrderID,
		Sequence:        s.Sequence,
		FromWarehouseID: s.FromWarehouseID,
		ToWarehouseID:   s.ToWarehouseID,
		ShipperID:       s.ShipperID,
		Status:          string(s.Status),
		StartTime:       s.StartTime,
		EndTime:         s.EndTime,
	}
}

func FromDomainModify(m *entities.SubShipmentModify) *SubShipmentModifyDB {
	if m == nil {
		return nil
	}
	modifyDB := &SubShipmentModifyDB{
		ID:        m.ID,
		ShipperID: m.ShipperID,
		StartTime: m.StartTime,
		EndTime:   m.EndTime,
	}
	if m.Status != nil {
		status := string(*m.Status)
		modifyDB.Status = &status
	}
	return modifyDB
}
