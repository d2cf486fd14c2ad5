package ui

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"prowl/geom"
)

// Agents are drawn as isoceles triangles pointing along their heading,
// sized in world units so they scale with the view.
var triangleShape = [3]geom.Vec{
	{X: 0.35, Y: 0},
	{X: -0.2, Y: -0.12},
	{X: -0.2, Y: 0.12},
}

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

var triangleIndices = []uint16{0, 1, 2}

// drawTriangle fills a heading-oriented triangle at pos. heading must be a
// unit vector; a zero heading falls back to +X, matching the simulation's
// treatment of coincident agents.
func drawTriangle(dst *ebiten.Image, pos, heading geom.Vec, toScreen func(geom.Vec) (float32, float32), clr color.RGBA) {
	if heading.IsZero() {
		heading = geom.Vec{X: 1}
	}

	r := float32(clr.R) / 0xff
	g := float32(clr.G) / 0xff
	b := float32(clr.B) / 0xff
	a := float32(clr.A) / 0xff

	var vs [3]ebiten.Vertex
	for i, corner := range triangleShape {
		p := corner.Rotate(heading).Add(pos)
		sx, sy := toScreen(p)
		vs[i] = ebiten.Vertex{
			DstX: sx, DstY: sy,
			SrcX: 1, SrcY: 1,
			ColorR: r, ColorG: g, ColorB: b, ColorA: a,
		}
	}
	dst.DrawTriangles(vs[:], triangleIndices, whiteSubImage, nil)
}
