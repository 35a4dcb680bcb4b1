package smath

import (
	"math"
	"sort"
)

// Sum ...
func Sum(data []float64) (result float64) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float64) float64 {
	count := float64(len(data))
	if count == 0 {
		return 0
	}
	return Sum(data) / count
}

// Median ...
func Median(data []float64) (median float64) {
	count := float64(len(data))
	if count == 0 {
		return 0.0
	}

	sort.Float64s(data)
	median = (data[int((count-1)*0.5)] + data[int(count*0.5)]) * 0.5
	if int(count)%2 != 0 {
		median = data[int(count*0.5)]
	}

	return
}

// Variance ...
func Variance(data []float64) (variance float64) {
	count := float64(len(data))
	if count == 0 {
		return 0.0
	}
	mean := Sum(data) / count

	for _, number := range data {
		variance += math.Pow(number-mean, 2)
	}
	return variance / count
}

// StandardDeviation ...
func StandardDeviation(data []float64) float64 {
	return math.Sqrt(Variance(data))
}
