package entities

import (
	"time"

	"github.com/google/uuid"
)

type Order struct {
	ID              uuid.UUID
	ShopID          uuid.UUID
	Status          OrderStatusType
	ShopAddress     *Address
	ShippingAddress *Address
	// LegacyAddress заполнялся старым checkout'ом одной строкой, до появления адресной книги.
	LegacyAddress string
	CustomerName  string
	CustomerPhone string
	PaymentMethod PaymentMethodType
	Items         []OrderItem
	TotalAmount   int64
	ShippingFee   int64
	Discount      int64
	FinalAmount   int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type OrderItem struct {
	ID          uuid.UUID
	VariantID   uuid.UUID
	ProductName string
	WeightKg    float64
	Quantity    int
	Price       int64
}

type OrderStatusType string

const (
	OrderPending         OrderStatusType = "PENDING"
	OrderConfirmed       OrderStatusType = "CONFIRMED"
	OrderPacked          OrderStatusType = "PACKED"
	OrderShipping        OrderStatusType = "SHIPPING"
	OrderDelivered       OrderStatusType = "DELIVERED"
	OrderCancelled       OrderStatusType = "CANCELLED"
	OrderReturnRequested OrderStatusType = "RETURN_REQUESTED"
	OrderReturned        OrderStatusType = "RETURNED"
)

func (s OrderStatusType) String() string {
	return string(s)
}

var OrderStatuses = []OrderStatusType{
	OrderPending,
	OrderConfirmed,
	OrderPacked,
	OrderShipping,
	OrderDelivered,
	OrderCancelled,
	OrderReturnRequested,
	OrderReturned,
}

type PaymentMethodType string

const (
	PaymentCOD    PaymentMethodType = "COD"
	PaymentOnline PaymentMethodType = "ONLINE"
)

func (p PaymentMethodType) String() string {
	return string(p)
}

type OrderModify struct {
	ID     *uuid.UUID
	Status *OrderStatusType
}
