package connector

import (
	"context"

	"github.com/rok-office/cwdetails/geometry"
)

type ElementID uint64

// Column is what the host reports about a timber element. P1 and P2 are the
// ends of the element axis, XL, YL and ZL its local axes.
type Column struct {
	ID     ElementID
	P1     geometry.Point3
	P2     geometry.Point3
	XL     geometry.Vector3
	YL     geometry.Vector3
	ZL     geometry.Vector3
	Width  float64
	Height float64
}

// Panel is a rectangular plate. P1 lies on the start of its axis, Length
// runs along XL, Width along ZL × XL and Thickness along ZL.
type Panel struct {
	Width     float64
	Thickness float64
	Length    float64
	P1        geometry.Point3
	XL        geometry.Vector3
	ZL        geometry.Vector3
}

// Host is the CAD environment the detailer reads elements from and creates
// hardware in. Implementations are not expected to be safe for concurrent
// use.
type Host interface {
	ActiveElementIDs(ctx context.Context) ([]ElementID, error)
	Column(ctx context.Context, id ElementID) (Column, error)
	CreateRectangularPanel(ctx context.Context, p Panel) (ElementID, error)
	// SubtractElements cuts the soft elements with the hard ones.
	SubtractElements(ctx context.Context, hard, soft []ElementID) error
	CreateStandardConnector(ctx context.Context, name string, start, end geometry.Point3) (ElementID, error)
	SetName(ctx context.Context, id ElementID, name string) error
}
