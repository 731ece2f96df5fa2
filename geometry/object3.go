package geometry

import "iter"

// xyz is the component storage shared by Vector3 and Point3.
type xyz struct {
	X float64
	Y float64
	Z float64
}

// Len is always 3.
func (c xyz) Len() int {
	return 3
}

// At returns the component at position i (0=x, 1=y, 2=z).
func (c xyz) At(i int) (float64, error) {
	switch i {
	case 0:
		return c.X, nil
	case 1:
		return c.Y, nil
	case 2:
		return c.Z, nil
	}
	return 0, &IndexError{Index: i}
}

// SetAt overwrites the component at position i.
func (c *xyz) SetAt(i int, val float64) error {
	switch i {
	case 0:
		c.X = val
	case 1:
		c.Y = val
	case 2:
		c.Z = val
	default:
		return &IndexError{Index: i}
	}
	return nil
}

// All yields x, y and z in that order. Every call starts over at x.
func (c xyz) All() iter.Seq[float64] {
	return func(yield func(float64) bool) {
		if !yield(c.X) {
			return
		}
		if !yield(c.Y) {
			return
		}
		yield(c.Z)
	}
}

// Array unpacks the components for tuple style callers.
func (c xyz) Array() [3]float64 {
	return [3]float64{c.X, c.Y, c.Z}
}
