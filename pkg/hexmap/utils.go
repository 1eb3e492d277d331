package hexmap

import "math"

// Вспомогательные функции
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

func axialRound(q, r float64) Hex {
	x, z := q, r
	y := -x - z
	rx, ry, rz := math.Round(x), math.Round(y), math.Round(z)
	dx, dy, dz := math.Abs(rx-x), math.Abs(ry-y), math.Abs(rz-z)
	if dx > dy && dx > dz {
		rx = -ry - rz
	} else if dy <= dz {
		rz = -rx - ry
	}
	return Hex{Q: int(rx), R: int(rz)}
}

// Константа √3 для вычислений
const Sqrt3 = 1.7320508075688772935274463415059
