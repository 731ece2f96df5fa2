// Package vect3 is the tuple form of the geometry algebra: stateless
// functions over plain [3]float64 values.
//
// Two behaviors intentionally differ from geometry.Vector3: Normalized does
// not guard against the zero vector (the result is NaN), and AngleRad
// normalizes both inputs, so it is symmetric.
package vect3

import (
	"math"

	"github.com/rok-office/cwdetails/geometry"
)

// Tuple is an ordered x, y, z triple.
type Tuple [3]float64

func (t Tuple) vector() geometry.Vector3 {
	return geometry.Vector3FromArray(t)
}

func fromVector(v geometry.Vector3) Tuple {
	return v.Array()
}

// Divide divides every component of v by f.
func Divide(v Tuple, f float64) Tuple {
	return Tuple{v[0] / f, v[1] / f, v[2] / f}
}

func Add(u, v Tuple) Tuple {
	return fromVector(u.vector().Add(v.vector()))
}

func Subtract(u, v Tuple) Tuple {
	return fromVector(u.vector().Sub(v.vector()))
}

// Pow is v · v.
func Pow(v Tuple) float64 {
	return Dot(v, v)
}

func Cross(u, v Tuple) Tuple {
	return fromVector(u.vector().Cross(v.vector()))
}

func Dot(u, v Tuple) float64 {
	return u.vector().Dot(v.vector())
}

func Length(v Tuple) float64 {
	return v.vector().Length()
}

func LengthSqrd(v Tuple) float64 {
	return v.vector().LengthSqrd()
}

func Scale(v Tuple, f float64) Tuple {
	return fromVector(v.vector().Mul(f))
}

// Normalized returns v with unit length. A zero v yields NaN components.
func Normalized(v Tuple) Tuple {
	return fromVector(v.vector().NormalizedUnchecked())
}

// AngleRad is the angle between u and v in [0, π].
func AngleRad(u, v Tuple) float64 {
	return u.vector().SymmetricAngleRad(v.vector())
}

func AngleDeg(u, v Tuple) float64 {
	return AngleRad(u, v) * (180 / math.Pi)
}

func Reverse(v Tuple) Tuple {
	return fromVector(v.vector().Neg())
}

// Bisector sums the unit forms of u and v. The result is not normalized.
func Bisector(u, v Tuple) Tuple {
	return Add(Normalized(u), Normalized(v))
}

// Rotate turns v by angle radians around the unit vector axis.
func Rotate(v Tuple, angle float64, axis Tuple) Tuple {
	return fromVector(v.vector().Rotate(angle, axis.vector()))
}
