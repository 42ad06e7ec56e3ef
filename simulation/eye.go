package simulation

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Eye splits an animal's field of view into cells and reports how close food is in each.
type Eye struct {
	FOVRange float64
	FOVAngle float64
	Cells    int
}

// NewEye creates an eye from its configuration.
func NewEye(cfg EyeConfig) Eye {
	return Eye{FOVRange: cfg.FOVRange, FOVAngle: cfg.FOVAngle, Cells: cfg.Cells}
}

// ProcessVision returns one value per cell. Each food within range and angle adds
// (FOVRange - distance) / FOVRange to the cell it falls into, so closer food weighs more.
func (e Eye) ProcessVision(position r2.Vec, rotation float64, foods []Food) []float32 {
	cells := make([]float32, e.Cells)

	for _, food := range foods {
		v := r2.Sub(food.Position, position)
		dist := r2.Norm(v)
		if dist >= e.FOVRange {
			continue
		}

		angle := wrapAngle(math.Atan2(v.Y, v.X) - rotation)
		if angle < -e.FOVAngle/2 || angle > e.FOVAngle/2 {
			continue
		}

		// Shift into [0, FOVAngle] and bucket; the right edge belongs to the last cell.
		angle += e.FOVAngle / 2
		cell := int(angle / e.FOVAngle * float64(e.Cells))
		cell = min(cell, e.Cells-1)

		cells[cell] += float32((e.FOVRange - dist) / e.FOVRange)
	}

	return cells
}

// wrapAngle maps an angle to [-π, π].
func wrapAngle(a float64) float64 {
	return math.Remainder(a, 2*math.Pi)
}
