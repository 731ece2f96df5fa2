// Package preview shows a detailed host in a window.
package preview

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/rok-office/cwdetails/internal/hostsim"
	"github.com/rok-office/cwdetails/internal/scene"
)

const (
	screenWidth  = 960
	screenHeight = 720
	dragScale    = 1.0 / 200.0
)

var kindColors = map[hostsim.Kind]color.RGBA{
	hostsim.KindColumn:    {R: 205, G: 170, B: 110, A: 255},
	hostsim.KindPanel:     {R: 120, G: 170, B: 230, A: 255},
	hostsim.KindConnector: {R: 230, G: 80, B: 80, A: 255},
}

type Game struct {
	shapes       []scene.Shape
	camera       *scene.Camera
	isDragging   bool
	lastX, lastY int
}

func NewGame(shapes []scene.Shape) *Game {
	center, radius := scene.Bounds(shapes)
	return &Game{
		shapes: shapes,
		camera: scene.NewCamera(center, radius),
	}
}

func (g *Game) Update() error {
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.isDragging = true
		g.lastX, g.lastY = ebiten.CursorPosition()
	}
	if g.isDragging {
		x, y := ebiten.CursorPosition()
		g.camera.Orbit(-float64(x-g.lastX)*dragScale, float64(y-g.lastY)*dragScale)
		g.lastX, g.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		g.isDragging = false
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		g.camera.Zoom(1 - dy*0.1)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 24, G: 24, B: 28, A: 255})

	p := g.camera.Projector(screenWidth, screenHeight)
	for _, s := range g.shapes {
		width := float32(1)
		if s.Element.Kind == hostsim.KindConnector {
			width = 3
		}
		clr := kindColors[s.Element.Kind]
		for _, l := range p.Lines(s.Segments) {
			vector.StrokeLine(screen, float32(l.X0), float32(l.Y0), float32(l.X1), float32(l.Y1), width, clr, true)
		}
	}

	ebitenutil.DebugPrint(screen, fmt.Sprintf("elements: %d  FPS: %0.2f\ndrag to orbit, wheel to zoom", len(g.shapes), ebiten.ActualFPS()))
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

// Run blocks until the window is closed.
func Run(title string, shapes []scene.Shape) error {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle(title)
	return ebiten.RunGame(NewGame(shapes))
}
