package connector

import "errors"

var (
	ErrNotVertical         = errors.New("column is not vertical")
	ErrDegenerateColumn    = errors.New("column has zero length")
	ErrUnsupportedDiameter = errors.New("unsupported dowel diameter")
)
