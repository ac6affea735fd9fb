package directory

import (
	"shipping/internal/entities"
	"shipping/internal/repository"
)

func warehouseToDomain(w *WarehouseDB) *entities.Warehouse {
	return &entities.Warehouse{
		ID:        w.ID,
		CompanyID: w.CompanyID,
		Name:      w.Name,
		Address:   *repository.AddressToDomain(&w.Address),
		Phone:     w.Phone,
		Active:    w.Active,
	}
}

func shipperToDomain(s *ShipperDB) *entities.Shipper {
	return &entities.Shipper{
		ID:        s.ID,
		CompanyID: s.CompanyID,
		Name:      s.Name,
		Phone:     s.Phone,
		Active:    s.Active,
	}
}

func shopToDomain(s *ShopDB) *entities.Shop {
	return &entities.Shop{
		ID:      s.ID,
		Name:    s.Name,
		Phone:   s.Phone,
		Address: repository.AddressToDomain(s.Address),
	}
}
