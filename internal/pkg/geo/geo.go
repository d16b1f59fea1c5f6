// Package geo содержит расчет дистанции по сфере для выбора
// ближайшего ресторана к адресу доставки.
package geo

import "math"

const earthRadiusKm = 6371.0

// Haversine возвращает дистанцию в километрах между двумя точками,
// заданными в градусах широты/долготы.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	rLat1 := degreesToRadians(lat1)
	rLon1 := degreesToRadians(lon1)
	rLat2 := degreesToRadians(lat2)
	rLon2 := degreesToRadians(lon2)

	dLat := rLat2 - rLat1
	dLon := rLon2 - rLon1
	a := math.Pow(math.Sin(dLat/2), 2) + math.Cos(rLat1)*math.Cos(rLat2)*math.Pow(math.Sin(dLon/2), 2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusKm * c
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
