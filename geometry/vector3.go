// Package geometry holds the 3D vector and point types used to place
// connector hardware along timber elements.
package geometry

import (
	"fmt"
	"math"
)

// Vector3 is a displacement or direction.
//
// Methods with value receivers return new vectors. AddAssign, SubAssign,
// MulAssign, Scale and Normalize change the receiver and return it so calls
// can be chained.
type Vector3 struct {
	xyz
}

func NewVector3(x, y, z float64) Vector3 {
	return Vector3{xyz{X: x, Y: y, Z: z}}
}

func Vector3FromArray(a [3]float64) Vector3 {
	return NewVector3(a[0], a[1], a[2])
}

func (v Vector3) Copy() Vector3 {
	return NewVector3(v.X, v.Y, v.Z)
}

func (v Vector3) Equal(o Vector3) bool {
	return v.xyz == o.xyz
}

// Point reinterprets the vector as a position.
func (v Vector3) Point() Point3 {
	return NewPoint3(v.X, v.Y, v.Z)
}

func (v Vector3) String() string {
	return fmt.Sprintf("Vector3: <%v, %v, %v>", v.X, v.Y, v.Z)
}

// IsZero reports whether all three components are exactly zero.
func (v Vector3) IsZero() bool {
	return v.X == 0 && v.Y == 0 && v.Z == 0
}

func (v Vector3) Add(o Vector3) Vector3 {
	return NewVector3(v.X+o.X, v.Y+o.Y, v.Z+o.Z)
}

func (v *Vector3) AddAssign(o Vector3) *Vector3 {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
	return v
}

func (v Vector3) Sub(o Vector3) Vector3 {
	return NewVector3(v.X-o.X, v.Y-o.Y, v.Z-o.Z)
}

func (v *Vector3) SubAssign(o Vector3) *Vector3 {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
	return v
}

// Mul returns the vector scaled by s.
func (v Vector3) Mul(s float64) Vector3 {
	return NewVector3(v.X*s, v.Y*s, v.Z*s)
}

// MulScalar is Mul with the scalar on the left.
func MulScalar(s float64, v Vector3) Vector3 {
	return v.Mul(s)
}

func (v *Vector3) MulAssign(s float64) *Vector3 {
	v.X *= s
	v.Y *= s
	v.Z *= s
	return v
}

// Neg returns the reversed vector.
func (v Vector3) Neg() Vector3 {
	return NewVector3(-v.X, -v.Y, -v.Z)
}

// LengthSqrd is cheaper than Length when only comparing magnitudes.
func (v Vector3) LengthSqrd() float64 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vector3) Length() float64 {
	return math.Sqrt(v.LengthSqrd())
}

func (v Vector3) Dot(o Vector3) float64 {
	return v.X*o.X + v.Y*o.Y + v.Z*o.Z
}

// Cross returns v × o (right handed). Cross is not commutative.
func (v Vector3) Cross(o Vector3) Vector3 {
	return NewVector3(
		v.Y*o.Z-v.Z*o.Y,
		v.Z*o.X-v.X*o.Z,
		v.X*o.Y-v.Y*o.X,
	)
}

// Scale multiplies v in place by f.
func (v *Vector3) Scale(f float64) *Vector3 {
	return v.MulAssign(f)
}

// Normalize turns v into a unit vector in place.
func (v *Vector3) Normalize() (*Vector3, error) {
	d := v.Length()
	if d == 0 {
		return v, ErrZeroVector
	}
	v.X /= d
	v.Y /= d
	v.Z /= d
	return v, nil
}

// Normalized returns a unit copy of v and leaves v untouched.
func (v Vector3) Normalized() (Vector3, error) {
	d := v.Length()
	if d == 0 {
		return Vector3{}, ErrZeroVector
	}
	return NewVector3(v.X/d, v.Y/d, v.Z/d), nil
}

// NormalizedUnchecked divides by the length without a zero check, so the
// zero vector comes back as NaN components.
func (v Vector3) NormalizedUnchecked() Vector3 {
	d := v.Length()
	return NewVector3(v.X/d, v.Y/d, v.Z/d)
}

// AngleRad returns acos(v · unit(o)) in [0, π]. Only o is normalized: for a
// non unit receiver the result differs from o.AngleRad(v).
func (v Vector3) AngleRad(o Vector3) (float64, error) {
	n, err := o.Normalized()
	if err != nil {
		return 0, err
	}
	return math.Acos(clampUnit(v.Dot(n))), nil
}

func (v Vector3) AngleDeg(o Vector3) (float64, error) {
	rad, err := v.AngleRad(o)
	if err != nil {
		return 0, err
	}
	return rad * (180 / math.Pi), nil
}

// SymmetricAngleRad normalizes both vectors before taking the angle. Zero
// inputs yield NaN.
func (v Vector3) SymmetricAngleRad(o Vector3) float64 {
	return math.Acos(clampUnit(v.NormalizedUnchecked().Dot(o.NormalizedUnchecked())))
}

func (v Vector3) SymmetricAngleDeg(o Vector3) float64 {
	return v.SymmetricAngleRad(o) * (180 / math.Pi)
}

// Rotate turns v by angle radians around axis using Rodrigues' formula.
// axis must already be a unit vector.
func (v Vector3) Rotate(angle float64, axis Vector3) Vector3 {
	c := math.Cos(angle)
	s := math.Sin(angle)
	return v.Mul(c).
		Add(axis.Cross(v).Mul(s)).
		Add(axis.Mul(v.Dot(axis) * (1 - c)))
}

// clampUnit keeps rounding noise from pushing a cosine outside [-1, 1].
func clampUnit(d float64) float64 {
	if d < -1 {
		return -1
	} else if d > 1 {
		return 1
	}
	return d
}
