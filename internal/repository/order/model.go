package order

import (
	"time"

	"github.com/google/uuid"
	"shipping/internal/repository"
)

type OrderDB struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	Status          string
	ShopAddress     *repository.AddressDB
	ShippingAddress *repository.AddressDB
	LegacyAddress   string
	CustomerName    string
	CustomerPhone   string
	PaymentMethod   string
	TotalAmount     int64
	ShippingFee     int64
	Discount        int64
	FinalAmount     int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type OrderItemDB struct {
	ID          uuid.UUID
	VariantID   uuid.UUID
	ProductName string
	WeightKg    float64
	Quantity    int
	Price       int64
}
