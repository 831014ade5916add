// Package level owns the path geometry and the placement grid derived from it.
package level

import (
	"fmt"
	"math"

	"go-path-defense/internal/component"
	"go-path-defense/internal/config"
	"go-path-defense/pkg/curve"
	"go-path-defense/pkg/geom"
)

// Cell is one grid square.
type Cell struct {
	Blocked bool
	Turret  *component.Turret
}

// Level is the path, its walking polyline and the grid around it.
type Level struct {
	field  config.FieldConfig
	path   *curve.Path
	linear curve.Linear
	width  int
	height int
	cells  [][]Cell // [y][x]
}

// New builds a level. Fewer than two control points fail with
// curve.ErrInvalidPath.
func New(points []geom.Vec, field config.FieldConfig) (*Level, error) {
	l := &Level{
		field:  field,
		width:  field.CellsX(),
		height: field.CellsY(),
	}
	l.cells = make([][]Cell, l.height)
	for y := range l.cells {
		l.cells[y] = make([]Cell, l.width)
	}
	if err := l.setPath(points); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Level) setPath(points []geom.Vec) error {
	path, err := curve.New(points)
	if err != nil {
		return fmt.Errorf("level: %w", err)
	}
	l.path = path
	l.linear = path.BuildLinear(l.field.LinearSpacing, l.field.LinearStep)
	l.markBlocked()
	return nil
}

// markBlocked recomputes the blocked flag of every cell from the path.
func (l *Level) markBlocked() {
	for y := range l.cells {
		for x := range l.cells[y] {
			l.cells[y][x].Blocked = false
		}
	}
	samples := max(l.field.BlockSamples, 1)
	offsets := l.field.Offsets()
	for i := 0; i <= samples; i++ {
		p := l.path.Evaluate(float64(i) / float64(samples))
		for _, off := range offsets {
			x, y := l.CellAt(p.Add(off))
			if l.inBounds(x, y) {
				l.cells[y][x].Blocked = true
			}
		}
	}
}

// Rebuild replaces the path and recomputes the grid. Turrets standing on
// cells that became blocked are removed from the grid and returned in
// row-major order. On error the level is unchanged.
func (l *Level) Rebuild(points []geom.Vec) ([]*component.Turret, error) {
	if err := l.setPath(points); err != nil {
		return nil, err
	}
	var evicted []*component.Turret
	for y := range l.cells {
		for x := range l.cells[y] {
			c := &l.cells[y][x]
			if c.Blocked && c.Turret != nil {
				evicted = append(evicted, c.Turret)
				c.Turret = nil
			}
		}
	}
	return evicted, nil
}

func (l *Level) Path() *curve.Path { return l.path }

// Linear returns the walking polyline.
func (l *Level) Linear() curve.Linear { return l.linear }

// PositionAt places path progress t on the walking polyline.
func (l *Level) PositionAt(t float64) geom.Vec {
	return l.linear.At(t)
}

func (l *Level) Width() int  { return l.width }
func (l *Level) Height() int { return l.height }

func (l *Level) CellSize() float64 { return l.field.CellSize }

// Bounds returns the playfield size in pixels.
func (l *Level) Bounds() (w, h float64) {
	return l.field.Width, l.field.Height
}

// InField reports whether p lies inside the playfield.
func (l *Level) InField(p geom.Vec) bool {
	return p.X >= 0 && p.Y >= 0 && p.X <= l.field.Width && p.Y <= l.field.Height
}

// InReach is InField grown by the shot margin, so shots can still meet
// enemies that walk just outside the edges.
func (l *Level) InReach(p geom.Vec) bool {
	m := l.field.ShotMargin
	return p.X >= -m && p.Y >= -m && p.X <= l.field.Width+m && p.Y <= l.field.Height+m
}

func (l *Level) inBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.width && y < l.height
}

// CellAt returns the grid coordinates containing pixel p. The result may be
// out of bounds.
func (l *Level) CellAt(p geom.Vec) (int, int) {
	return int(math.Floor(p.X / l.field.CellSize)), int(math.Floor(p.Y / l.field.CellSize))
}

// CellCenter returns the pixel centre of cell (x, y).
func (l *Level) CellCenter(x, y int) geom.Vec {
	cs := l.field.CellSize
	return geom.V((float64(x)+0.5)*cs, (float64(y)+0.5)*cs)
}

// Blocked reports whether (x, y) is too close to the path. Out-of-bounds
// cells count as blocked.
func (l *Level) Blocked(x, y int) bool {
	if !l.inBounds(x, y) {
		return true
	}
	return l.cells[y][x].Blocked
}

// IsPlaceable reports whether a turret may be built on (x, y).
func (l *Level) IsPlaceable(x, y int) bool {
	if !l.inBounds(x, y) {
		return false
	}
	c := l.cells[y][x]
	return !c.Blocked && c.Turret == nil
}

// Get returns the turret on (x, y), or nil.
func (l *Level) Get(x, y int) *component.Turret {
	if !l.inBounds(x, y) {
		return nil
	}
	return l.cells[y][x].Turret
}

// Place puts t on (x, y). It does nothing and returns false when the cell is
// blocked, occupied or out of bounds.
func (l *Level) Place(x, y int, t *component.Turret) bool {
	if t == nil || !l.IsPlaceable(x, y) {
		return false
	}
	l.cells[y][x].Turret = t
	return true
}

// Remove clears (x, y) and returns the turret that stood there.
func (l *Level) Remove(x, y int) *component.Turret {
	if !l.inBounds(x, y) {
		return nil
	}
	t := l.cells[y][x].Turret
	l.cells[y][x].Turret = nil
	return t
}

// Turrets lists every turret in row-major order.
func (l *Level) Turrets() []*component.Turret {
	var out []*component.Turret
	l.ForEachTurret(func(t *component.Turret) {
		out = append(out, t)
	})
	return out
}

// ForEachTurret visits turrets in row-major order.
func (l *Level) ForEachTurret(fn func(t *component.Turret)) {
	for y := range l.cells {
		for x := range l.cells[y] {
			if t := l.cells[y][x].Turret; t != nil {
				fn(t)
			}
		}
	}
}

// ForEachInRadius visits turrets whose cell lies within Chebyshev distance
// r of (cx, cy), in row-major order. Cells outside the grid are skipped.
func (l *Level) ForEachInRadius(cx, cy, r int, fn func(t *component.Turret)) {
	for y := max(cy-r, 0); y <= min(cy+r, l.height-1); y++ {
		for x := max(cx-r, 0); x <= min(cx+r, l.width-1); x++ {
			if t := l.cells[y][x].Turret; t != nil {
				fn(t)
			}
		}
	}
}

// BlockedCells returns a copy of the blocked flags, [y][x].
func (l *Level) BlockedCells() [][]bool {
	out := make([][]bool, l.height)
	for y := range l.cells {
		out[y] = make([]bool, l.width)
		for x := range l.cells[y] {
			out[y][x] = l.cells[y][x].Blocked
		}
	}
	return out
}
