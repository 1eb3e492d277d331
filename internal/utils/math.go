// internal/utils/math.go
package utils

import "math"

// RoundInt округляет до ближайшего целого (половины — от нуля)
func RoundInt(v float64) int {
	return int(math.Round(v))
}
