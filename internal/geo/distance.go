package geo

import "math"

// Средний радиус Земли в метрах
const earthRadiusMeters = 6371000.0

// DistanceMeters вычисляет расстояние по большому кругу (формула гаверсинусов)
// между двумя точками в метрах. Единственная каноническая функция расстояния:
// и проверка геозоны, и антифрод обязаны использовать ее, чтобы исключить
// расхождения в единицах измерения.
func DistanceMeters(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := radians(lat2 - lat1)
	dLon := radians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(radians(lat1))*math.Cos(radians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMeters * c
}

func radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
