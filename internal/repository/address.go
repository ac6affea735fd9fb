package repository

import "shipping/internal/entities"

// AddressDB хранится в JSONB-колонках orders, shops и warehouses.
type AddressDB struct {
	Street   string `json:"street"`
	Commune  string `json:"commune"`
	District string `json:"district"`
	City     string `json:"city"`
}

func AddressToDomain(a *AddressDB) *entities.Address {
	if a == nil {
		return nil
	}
	return &entities.Address{
		Street:   a.Street,
		Commune:  a.Commune,
		District: a.District,
		City:     a.City,
	}
}

func AddressFromDomain(a *entities.Address) *AddressDB {
	if a == nil {
		return nil
	}
	return &AddressDB{
		Street:   a.Street,
		Commune:  a.Commune,
		District: a.District,
		City:     a.City,
	}
}
