package dto

import (
	"time"

	"github.com/google/uuid"
	"shipping/internal/entities"
)

type OrderStatusUpdate struct {
	Status string `json:"status" validate:"required"`
}

type Order struct {
	ID              uuid.UUID   `json:"id"`
	ShopID          uuid.UUID   `json:"shop_id"`
	Status          string      `json:"status"`
	CustomerName    string      `json:"customer_name"`
	CustomerPhone   string      `json:"customer_phone"`
	ShippingAddress string      `json:"shipping_address"`
	PaymentMethod   string      `json:"payment_method"`
	Items           []OrderItem `json:"items"`
	TotalAmount     int64       `json:"total_amount"`
	ShippingFee     int64       `json:"shipping_fee"`
	Discount        int64       `json:"discount"`
	FinalAmount     int64       `json:"final_amount"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID          uuid.UUID `json:"id"`
	VariantID   uuid.UUID `json:"variant_id"`
	ProductName string    `json:"product_name"`
	WeightKg    float64   `json:"weight_kg"`
	Quantity    int       `json:"quantity"`
	Price       int64     `json:"price"`
}

func FromOrder(order *entities.Order) Order {
	address := order.ShippingAddress.String()
	if address == "" {
		address = order.LegacyAddress
	}

	items := make([]OrderItem, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, OrderItem{
			ID:          item.ID,
			VariantID:   item.VariantID,
			ProductName: item.ProductName,
			WeightKg:    item.WeightKg,
			Quantity:    item.Quantity,
			Price:       item.Price,
		})
	}

	return Order{
		ID:              order.ID,
		ShopID:          order.ShopID,
		Status:          order.Status.String(),
		CustomerName:    order.CustomerName,
		CustomerPhone:   order.CustomerPhone,
		ShippingAddress: address,
		PaymentMethod:   order.PaymentMethod.String(),
		Items:           items,
		TotalAmount:     order.TotalAmount,
		ShippingFee:     order.ShippingFee,
		Discount:        order.Discount,
		FinalAmount:     order.FinalAmount,
		CreatedAt:       order.CreatedAt,
		UpdatedAt:       order.UpdatedAt,
	}
}

func FromOrders(orders []entities.Order) []Order {
	out := make([]Order, 0, len(orders))
	for i := range orders {
		out = append(out, FromOrder(&orders[i]))
	}
	return out
}
