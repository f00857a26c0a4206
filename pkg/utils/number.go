package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// Percentage retorna part/total em pontos percentuais com duas casas; total zero resulta em 0
func Percentage(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(float64(part) / float64(total) * 100)
}

// Average retorna sum/count com duas casas; count zero resulta em 0
func Average(sum float64, count int) float64 {
	if count <= 0 {
		return 0
	}
	return RoundWithTwoDecimalPlace(sum / float64(count))
}
