package delivery_estimate

import "time"

const (
	defaultTransitDays  = 3
	defaultDeliveryHour = 18
)

type DeliveryTimeFactory struct {
	transitDays  int
	deliveryHour int
	location     *time.Location
}

// New с нулевыми значениями берёт дефолты: 3 дня, 18:00, UTC.
func New(transitDays, deliveryHour int, location *time.Location) *DeliveryTimeFactory {
	if transitDays <= 0 {
		transitDays = defaultTransitDays
	}
	if deliveryHour <= 0 || deliveryHour > 23 {
		deliveryHour = defaultDeliveryHour
	}
	if location == nil {
		location = time.UTC
	}
	return &DeliveryTimeFactory{
		transitDays:  transitDays,
		deliveryHour: deliveryHour,
		location:     location,
	}
}

func (d *DeliveryTimeFactory) EstimateDelivery(baseTime time.Time) time.Time {
	local := baseTime.In(d.location).AddDate(0, 0, d.transitDays)
	return time.Date(local.Year(), local.Month(), local.Day(), d.deliveryHour, 0, 0, 0, d.location)
}
