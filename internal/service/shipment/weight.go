package shipment

import (
	"math"

	"shipping/internal/entities"
)

// DefaultWeightGrams подставляется, когда у товаров заказа не заполнен вес.
const DefaultWeightGrams = 1000

// DeriveWeightGrams сумма weightKg*quantity по позициям, в граммах с округлением.
func DeriveWeightGrams(items []entities.OrderItem) int {
	var kg float64
	for _, it := range items {
		kg += it.WeightKg * float64(it.Quantity)
	}
	grams := int(math.Round(kg * 1000))
	if grams <= 0 {
		return DefaultWeightGrams
	}
	return grams
}

func resolveWeight(items []entities.OrderItem, override *int) (int, error) {
	if override == nil || *override == 0 {
		return DeriveWeightGrams(items), nil
	}
	if *override < 0 {
		return 0, ErrInvalidWeight
	}
	return *override, nil
}
