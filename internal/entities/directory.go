package entities

import "github.com/google/uuid"

type Warehouse struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Address   Address
	Phone     string
	Active    bool
}

type Shipper struct {
	ID        uuid.UUID
	CompanyID uuid.UUID
	Name      string
	Phone     string
	Active    bool
}

type Shop struct {
	ID      uuid.UUID
	Name    string
	Phone   string
	Address *Address
}
