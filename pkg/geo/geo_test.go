package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDistanceKm_SamePoint(t *testing.T) {
	d := DistanceKm(30.0444, 31.2357, 30.0444, 31.2357)
	assert.Equal(t, 0.0, d)
}

func TestDistanceKm_Symmetric(t *testing.T) {
	// Каир -> Александрия и обратно
	d1 := DistanceKm(30.0444, 31.2357, 31.2001, 29.9187)
	d2 := DistanceKm(31.2001, 29.9187, 30.0444, 31.2357)
	assert.InDelta(t, d1, d2, 1e-9)
}

func TestDistanceKm_KnownDistance(t *testing.T) {
	// Каир -> Александрия, около 180 км по прямой
	d := DistanceKm(30.0444, 31.2357, 31.2001, 29.9187)
	assert.InDelta(t, 180, d, 5)
}

func TestEstimatedArrivalMinutes(t *testing.T) {
	// При 60 км/ч расстояние в км численно равно минутам
	assert.Equal(t, 60, EstimatedArrivalMinutes(60))
	assert.Equal(t, 0, EstimatedArrivalMinutes(0))
	// Округление всегда вверх
	assert.Equal(t, 3, EstimatedArrivalMinutes(2.1))
}

func TestEstimatedArrivalMinutes_Monotonic(t *testing.T) {
	prev := 0
	for km := 0.0; km <= 100; km += 0.7 {
		eta := EstimatedArrivalMinutes(km)
		assert.GreaterOrEqual(t, eta, prev)
		assert.GreaterOrEqual(t, eta, 0)
		prev = eta
	}
}
