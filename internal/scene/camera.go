package scene

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/rok-office/cwdetails/geometry"
)

const (
	nearPlane = 1.0
	maxPitch  = math.Pi/2 - 0.01
)

var (
	worldUp = geometry.NewVector3(0, 0, 1)
	yAxis   = geometry.NewVector3(0, 1, 0)
)

// Camera orbits a target point. Z is up.
type Camera struct {
	Target   geometry.Point3
	Distance float64
	Yaw      float64
	Pitch    float64
	FovY     float64
}

// NewCamera frames a sphere of the given center and radius.
func NewCamera(center geometry.Point3, radius float64) *Camera {
	fov := mgl64.DegToRad(45)
	return &Camera{
		Target:   center,
		Distance: radius / math.Sin(fov/2) * 1.1,
		Yaw:      -math.Pi / 4,
		Pitch:    math.Pi / 8,
		FovY:     fov,
	}
}

func (c *Camera) Orbit(dyaw, dpitch float64) {
	c.Yaw += dyaw
	c.Pitch = math.Max(-maxPitch, math.Min(maxPitch, c.Pitch+dpitch))
}

// Zoom scales the distance to the target. Factors below 1 move closer.
func (c *Camera) Zoom(factor float64) {
	if factor <= 0 {
		return
	}
	c.Distance = math.Max(nearPlane*2, c.Distance*factor)
}

// Eye is the camera position.
func (c *Camera) Eye() geometry.Point3 {
	dir := geometry.NewVector3(1, 0, 0).
		Rotate(-c.Pitch, yAxis).
		Rotate(c.Yaw, worldUp)
	return c.Target.Vector().Add(dir.Mul(c.Distance)).Point()
}

func toVec3(p geometry.Point3) mgl64.Vec3 {
	return mgl64.Vec3{p.X, p.Y, p.Z}
}

// Projector maps world points to pixels for one frame.
type Projector struct {
	view   mgl64.Mat4
	proj   mgl64.Mat4
	mvp    mgl64.Mat4
	width  int
	height int
}

func (c *Camera) Projector(width, height int) Projector {
	aspect := float64(width) / float64(height)
	view := mgl64.LookAtV(toVec3(c.Eye()), toVec3(c.Target), toVec3(worldUp.Point()))
	proj := mgl64.Perspective(c.FovY, aspect, nearPlane, c.Distance*4)
	return Projector{
		view:   view,
		proj:   proj,
		mvp:    proj.Mul4(view),
		width:  width,
		height: height,
	}
}

// Point returns screen coordinates with y pointing down. ok is false for
// points behind the near plane.
func (p Projector) Point(pt geometry.Point3) (x, y float64, ok bool) {
	clip := p.mvp.Mul4x1(toVec3(pt).Vec4(1))
	if clip[3] < nearPlane {
		return 0, 0, false
	}
	win := mgl64.Project(toVec3(pt), p.view, p.proj, 0, 0, p.width, p.height)
	return win[0], float64(p.height) - win[1], true
}

// Line is a projected segment in screen space.
type Line struct {
	X0, Y0, X1, Y1 float64
}

// Lines projects segments, dropping those with an end behind the camera.
func (p Projector) Lines(segments []Segment) []Line {
	lines := make([]Line, 0, len(segments))
	for _, s := range segments {
		x0, y0, ok0 := p.Point(s.A)
		x1, y1, ok1 := p.Point(s.B)
		if !ok0 || !ok1 {
			continue
		}
		lines = append(lines, Line{x0, y0, x1, y1})
	}
	return lines
}
