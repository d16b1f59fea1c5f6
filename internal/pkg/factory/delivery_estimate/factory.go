package delivery_estimate

import "time"

const defaultEstimate = time.Minute * 15

type DeliveryTimeFactory struct {
	estimate time.Duration
}

func New(estimate time.Duration) *DeliveryTimeFactory {
	if estimate <= 0 {
		estimate = defaultEstimate
	}
	return &DeliveryTimeFactory{estimate: estimate}
}

// Calculate возвращает ожидаемое время доставки от базового момента.
// Та же величина задает окно занятости ресторана и TTL блокировки.
func (d *DeliveryTimeFactory) Calculate(baseTime time.Time) time.Time {
	return baseTime.Add(d.estimate)
}
