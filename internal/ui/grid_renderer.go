// internal/ui/grid_renderer.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-path-defense/pkg/geom"
	"go-path-defense/pkg/render"
)

const routeWidth = 4

// GridRenderer draws the static part of the playfield: the cell grid, the
// cells the route blocks and the route itself. The result is cached in an
// image and only rebuilt when RenderMapImage is called again.
type GridRenderer struct {
	palette  render.Palette
	fillImg  *ebiten.Image
	mapImage *ebiten.Image
	fillVs   []ebiten.Vertex
	fillIs   []uint16
	strokeVs []ebiten.Vertex
	strokeIs []uint16
}

func NewGridRenderer(width, height int, palette render.Palette) *GridRenderer {
	fillImg := ebiten.NewImage(1, 1)
	fillImg.Fill(color.White)
	return &GridRenderer{
		palette:  palette,
		fillImg:  fillImg,
		mapImage: ebiten.NewImage(width, height),
		fillVs:   make([]ebiten.Vertex, 0, 8),
		fillIs:   make([]uint16, 0, 12),
		strokeVs: make([]ebiten.Vertex, 0, 64),
		strokeIs: make([]uint16, 0, 96),
	}
}

// RenderMapImage redraws the cached background. blocked is indexed [y][x].
func (r *GridRenderer) RenderMapImage(cellSize float64, blocked [][]bool, route []geom.Vec) {
	r.mapImage.Clear()
	r.mapImage.Fill(r.palette.Background)

	for y, row := range blocked {
		for x, b := range row {
			fill := r.palette.FreeCell
			if b {
				fill = r.palette.Blocked
			}
			r.drawCell(r.mapImage, float64(x)*cellSize, float64(y)*cellSize, cellSize, fill)
		}
	}
	r.drawRoute(r.mapImage, route)
}

func (r *GridRenderer) Draw(screen *ebiten.Image) {
	screen.DrawImage(r.mapImage, nil)
}

func (r *GridRenderer) drawCell(target *ebiten.Image, x, y, size float64, fill color.RGBA) {
	path := vector.Path{}
	path.MoveTo(float32(x), float32(y))
	path.LineTo(float32(x+size), float32(y))
	path.LineTo(float32(x+size), float32(y+size))
	path.LineTo(float32(x), float32(y+size))
	path.Close()

	r.fillVs, r.fillIs = path.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	paint(r.fillVs, fill)
	target.DrawTriangles(r.fillVs, r.fillIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	r.strokeVs, r.strokeIs = path.AppendVerticesAndIndicesForStroke(r.strokeVs[:0], r.strokeIs[:0], &vector.StrokeOptions{
		Width: r.palette.StrokeWidth,
	})
	paint(r.strokeVs, render.LightenColor(fill, 20))
	target.DrawTriangles(r.strokeVs, r.strokeIs, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func (r *GridRenderer) drawRoute(target *ebiten.Image, route []geom.Vec) {
	if len(route) < 2 {
		return
	}
	path := vector.Path{}
	path.MoveTo(float32(route[0].X), float32(route[0].Y))
	for _, p := range route[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    routeWidth,
		LineJoin: vector.LineJoinRound,
		LineCap:  vector.LineCapRound,
	})
	paint(vs, r.palette.Route)
	target.DrawTriangles(vs, is, r.fillImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

func paint(vs []ebiten.Vertex, c color.RGBA) {
	for i := range vs {
		vs[i].SrcX = 0
		vs[i].SrcY = 0
		vs[i].ColorR = float32(c.R) / 255
		vs[i].ColorG = float32(c.G) / 255
		vs[i].ColorB = float32(c.B) / 255
		vs[i].ColorA = float32(c.A) / 255
	}
}
