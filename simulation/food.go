package simulation

import (
	"math/rand/v2"

	"gonum.org/v1/gonum/spatial/r2"
)

// Food is a piece of food somewhere in the unit square.
type Food struct {
	Position r2.Vec
}

// RandomFood places food uniformly in [0, 1)², drawing x then y.
func RandomFood(rng *rand.Rand) Food {
	return Food{Position: randomPosition(rng)}
}

func randomPosition(rng *rand.Rand) r2.Vec {
	x := rng.Float64()
	y := rng.Float64()
	return r2.Vec{X: x, Y: y}
}
