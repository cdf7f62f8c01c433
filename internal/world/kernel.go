package world

import "math"

// Kernel is a parametrized stamp shape used to carve open space around a
// walker position. Radius controls its extent and squareness blends the
// silhouette between a circle (0) and a square (1).
//
// An offset (dx,dy) is covered iff
//
//	max(|dx|,|dy|)*squareness + sqrt(dx²+dy²)*(1-squareness) <= radius
//
// This formula is the sole determinant of the carved tunnel silhouette; the
// covered set is precomputed once at construction.
type Kernel struct {
	Radius     float64
	Squareness float64

	offsets []Position
}

// NewKernel builds a kernel from radius and squareness. Squareness is
// clamped into [0, 1] and radius to a minimum of zero, so the walker can
// perturb parameters without bounds bookkeeping here.
func NewKernel(radius, squareness float64) *Kernel {
	radius = math.Max(radius, 0)
	squareness = math.Min(math.Max(squareness, 0), 1)

	k := &Kernel{
		Radius:     radius,
		Squareness: squareness,
	}

	extent := int(math.Ceil(radius))
	for dy := -extent; dy <= extent; dy++ {
		for dx := -extent; dx <= extent; dx++ {
			if k.Covers(dx, dy) {
				k.offsets = append(k.offsets, Position{X: dx, Y: dy})
			}
		}
	}
	return k
}

// Covers reports whether the relative offset lies inside the kernel shape.
func (k *Kernel) Covers(dx, dy int) bool {
	cheb := math.Max(math.Abs(float64(dx)), math.Abs(float64(dy)))
	euclid := math.Sqrt(float64(dx*dx + dy*dy))
	return cheb*k.Squareness+euclid*(1-k.Squareness) <= k.Radius
}

// Offsets returns the precomputed set of covered relative offsets. The
// returned slice must not be modified.
func (k *Kernel) Offsets() []Position {
	return k.offsets
}

// Size returns the number of covered offsets.
func (k *Kernel) Size() int {
	return len(k.offsets)
}
