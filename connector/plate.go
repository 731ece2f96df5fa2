package connector

import (
	"fmt"
	"math"
)

// WebPlateLength is the web plate length needed for a dowel of diameter d
// (SIA 265): 8d of end distance plus 1.5d of edge distance, each rounded up
// to a multiple of 5.
func WebPlateLength(d float64) float64 {
	return math.Ceil(d*8/5)*5 + math.Ceil(d*1.5/5)*5
}

// WebPlateThickness picks the plate thickness for dowels between 8 and 15.
func WebPlateThickness(d float64) (float64, error) {
	switch {
	case 8 <= d && d <= 10:
		return 10, nil
	case 10 < d && d <= 12:
		return 12, nil
	case 12 < d && d <= 15:
		return 15, nil
	}
	return 0, fmt.Errorf("%w: %v", ErrUnsupportedDiameter, d)
}
