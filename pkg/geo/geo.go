package geo

import "math"

// Радиус Земли в километрах (сферическая аппроксимация)
const earthRadiusKm = 6371

// Средняя скорость машины скорой помощи при выезде, км/ч
const averageSpeedKmh = 60

// DistanceKm вычисляет расстояние по дуге большого круга между двумя
// точками по формуле гаверсинусов. Чистая функция, симметрична по аргументам.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// EstimatedArrivalMinutes оценивает время прибытия в минутах при постоянной
// скорости 60 км/ч. Округляет вверх, чтобы никогда не занижать оценку.
func EstimatedArrivalMinutes(distanceKm float64) int {
	timeHours := distanceKm / averageSpeedKmh
	return int(math.Ceil(timeHours * 60))
}

func toRadians(degrees float64) float64 {
	return degrees * (math.Pi / 180)
}
