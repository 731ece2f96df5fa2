package connector

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/rok-office/cwdetails/geometry"
	"github.com/rok-office/cwdetails/geometry/vect3"
)

// Settings controls how a base detail is laid out.
type Settings struct {
	VerticalTolerance float64
	DowelDiameter     float64
	DowelConnector    string
	DowelInset        float64
}

// Dowel is a standard connector between two points.
type Dowel struct {
	Connector string
	Start     geometry.Point3
	End       geometry.Point3
}

// Placement is the hardware planned for one column.
type Placement struct {
	ID       uuid.UUID
	Element  ElementID
	Axis     geometry.Vector3
	WebPlate Panel
	Dowel    Dowel
}

// Plan lays out a web plate slotted into the foot of a vertical column and
// a dowel through column and plate near the top of the plate.
func Plan(s Settings, c Column) (Placement, error) {
	if err := CheckVertical(c.P1, c.P2, s.VerticalTolerance); err != nil {
		return Placement{}, err
	}
	lower, upper := OrderByZ(c.P1, c.P2)

	span := upper.Vector().Sub(lower.Vector())
	if span.IsZero() {
		return Placement{}, ErrDegenerateColumn
	}
	axis := geometry.Vector3FromArray(vect3.Normalized(span.Array()))

	length := WebPlateLength(s.DowelDiameter)
	thickness, err := WebPlateThickness(s.DowelDiameter)
	if err != nil {
		return Placement{}, err
	}
	if s.DowelInset >= length {
		return Placement{}, fmt.Errorf("dowel inset %v does not fit a %v plate", s.DowelInset, length)
	}

	start := MovePoint(Positive, lower, thickness, axis)
	plate := Panel{
		Width:     c.Height,
		Thickness: thickness,
		Length:    length,
		P1:        start,
		XL:        c.XL,
		ZL:        c.YL,
	}

	dowelAt := MovePoint(Positive, start, length-s.DowelInset, axis)
	dowel := Dowel{
		Connector: s.DowelConnector,
		Start:     MovePoint(Positive, dowelAt, c.Width*0.5, c.YL),
		End:       MovePoint(Negative, dowelAt, c.Width*0.5, c.YL),
	}

	return Placement{
		ID:       uuid.New(),
		Element:  c.ID,
		Axis:     axis,
		WebPlate: plate,
		Dowel:    dowel,
	}, nil
}
