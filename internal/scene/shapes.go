// Package scene turns host elements into wireframes and projects them onto
// a screen.
package scene

import (
	"math"

	"github.com/rok-office/cwdetails/geometry"
	"github.com/rok-office/cwdetails/internal/hostsim"
)

type Segment struct {
	A geometry.Point3
	B geometry.Point3
}

type Shape struct {
	Element  hostsim.Element
	Segments []Segment
}

// Box returns the 12 edges of a box whose axis starts at origin and runs
// length along xl. The cross section is centered on the axis: width along
// yl and height along zl.
func Box(origin geometry.Point3, xl, yl, zl geometry.Vector3, length, width, height float64) []Segment {
	o := origin.Vector()
	along := xl.Mul(length)
	hy := yl.Mul(width / 2)
	hz := zl.Mul(height / 2)

	// corners of the start section, counter clockwise
	section := [4]geometry.Vector3{
		o.Sub(hy).Sub(hz),
		o.Add(hy).Sub(hz),
		o.Add(hy).Add(hz),
		o.Sub(hy).Add(hz),
	}

	segments := make([]Segment, 0, 12)
	for i, c := range section {
		next := section[(i+1)%4]
		segments = append(segments,
			Segment{c.Point(), next.Point()},
			Segment{c.Add(along).Point(), next.Add(along).Point()},
			Segment{c.Point(), c.Add(along).Point()},
		)
	}
	return segments
}

// FromHost builds one wireframe per element.
func FromHost(elements []hostsim.Element) []Shape {
	shapes := make([]Shape, 0, len(elements))
	for _, e := range elements {
		var segments []Segment
		switch e.Kind {
		case hostsim.KindColumn:
			c := e.Column
			length := c.P2.Vector().Sub(c.P1.Vector()).Length()
			segments = Box(c.P1, c.XL, c.YL, c.ZL, length, c.Width, c.Height)
		case hostsim.KindPanel:
			p := e.Panel
			segments = Box(p.P1, p.XL, p.ZL.Cross(p.XL), p.ZL, p.Length, p.Width, p.Thickness)
		case hostsim.KindConnector:
			segments = []Segment{{e.Start, e.End}}
		}
		shapes = append(shapes, Shape{Element: e, Segments: segments})
	}
	return shapes
}

// Bounds returns the center and radius of a sphere holding every segment
// end. An empty scene is centered on the origin with radius 1.
func Bounds(shapes []Shape) (geometry.Point3, float64) {
	lo := geometry.NewVector3(math.Inf(1), math.Inf(1), math.Inf(1))
	hi := geometry.NewVector3(math.Inf(-1), math.Inf(-1), math.Inf(-1))
	n := 0
	for _, s := range shapes {
		for _, seg := range s.Segments {
			for _, p := range [2]geometry.Point3{seg.A, seg.B} {
				lo = geometry.NewVector3(math.Min(lo.X, p.X), math.Min(lo.Y, p.Y), math.Min(lo.Z, p.Z))
				hi = geometry.NewVector3(math.Max(hi.X, p.X), math.Max(hi.Y, p.Y), math.Max(hi.Z, p.Z))
				n++
			}
		}
	}
	if n == 0 {
		return geometry.NewPoint3(0, 0, 0), 1
	}

	center := lo.Add(hi).Mul(0.5)
	radius := hi.Sub(lo).Length() / 2
	if radius == 0 {
		radius = 1
	}
	return center.Point(), radius
}
