package geometry

import "fmt"

// Point3 is a location. It carries the component contract only; subtract
// two points via Vector() to get a displacement.
type Point3 struct {
	xyz
}

func NewPoint3(x, y, z float64) Point3 {
	return Point3{xyz{X: x, Y: y, Z: z}}
}

func Point3FromArray(a [3]float64) Point3 {
	return NewPoint3(a[0], a[1], a[2])
}

func (p Point3) Copy() Point3 {
	return NewPoint3(p.X, p.Y, p.Z)
}

func (p Point3) Equal(o Point3) bool {
	return p.xyz == o.xyz
}

// Vector reinterprets the position as a displacement from the origin.
func (p Point3) Vector() Vector3 {
	return NewVector3(p.X, p.Y, p.Z)
}

func (p Point3) String() string {
	return fmt.Sprintf("Point3: <%v, %v, %v>", p.X, p.Y, p.Z)
}
