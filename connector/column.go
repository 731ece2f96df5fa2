package connector

import (
	"fmt"
	"math"

	"github.com/rok-office/cwdetails/geometry"
)

// CheckVertical fails with ErrNotVertical when the axis from p1 to p2 drifts
// more than tol in x or y.
func CheckVertical(p1, p2 geometry.Point3, tol float64) error {
	if math.Abs(p1.X-p2.X) > tol {
		return fmt.Errorf("%w in x direction", ErrNotVertical)
	}
	if math.Abs(p1.Y-p2.Y) > tol {
		return fmt.Errorf("%w in y direction", ErrNotVertical)
	}
	return nil
}

// OrderByZ returns the lower end first. Ties keep p2 first.
func OrderByZ(p1, p2 geometry.Point3) (lower, upper geometry.Point3) {
	if p1.Z < p2.Z {
		return p1, p2
	}
	return p2, p1
}

type Direction int

const (
	Positive Direction = iota
	Negative
)

// MovePoint offsets p by distance along v, forwards or backwards.
func MovePoint(dir Direction, p geometry.Point3, distance float64, v geometry.Vector3) geometry.Point3 {
	switch dir {
	case Positive:
		return p.Vector().Add(v.Mul(distance)).Point()
	case Negative:
		return p.Vector().Sub(v.Mul(distance)).Point()
	}
	panic(fmt.Sprintf("connector: unknown direction %d", dir))
}
