package order

import (
	"shipping/internal/entities"
	"shipping/internal/repository"
)

func ToDomain(o *OrderDB, items []OrderItemDB) *entities.Order {
	if o == nil {
		return nil
	}
	return &entities.Order{
		ID:              o.ID,
		ShopID:          o.ShopID,
		Status:          entities.OrderStatusType(o.Status),
		ShopAddress:     repository.AddressToDomain(o.ShopAddress),
		ShippingAddress: repository.AddressToDomain(o.ShippingAddress),
		LegacyAddress:   o.LegacyAddress,
		CustomerName:    o.CustomerName,
		CustomerPhone:   o.CustomerPhone,
		PaymentMethod:   entities.PaymentMethodType(o.PaymentMethod),
		Items:           ToItemsDomain(items),
		TotalAmount:     o.TotalAmount,
		ShippingFee:     o.ShippingFee,
		Discount:        o.Discount,
		FinalAmount:     o.FinalAmount,
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
}

func ToItemsDomain(items []OrderItemDB) []entities.OrderItem {
	if len(items) == 0 {
		return nil
	}
	out := make([]entities.OrderItem, 0, len(items))
	for _, it := range items {
		out = append(out, entities.OrderItem{
			ID:          it.ID,
			VariantID:   it.VariantID,
			ProductName: it.ProductName,
			WeightKg:    it.WeightKg,
			Quantity:    it.Quantity,
			Price:       it.Price,
		})
	}
	return out
}
