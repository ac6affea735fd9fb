package directory

import (
	"github.com/google/uuid"
	"shipping/internal/repository"
)

type WarehouseDB struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Address   repository.AddressDB
	Phone     string
	Active    bool
}

type ShipperDB struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Phone     string
	Active    bool
}

type ShopDB struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Address *repository.AddressDB
}
