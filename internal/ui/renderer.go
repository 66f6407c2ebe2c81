package ui

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pachinko/internal/game"
	"github.com/diegok/pachinko/internal/geom"
)

const (
	FillChar  = '█'
	RingChar  = 'o'
	LineChar  = '·'
	PointChar = '●'
)

var arrowHeads = [8]rune{'→', '↗', '↑', '↖', '←', '↙', '↓', '↘'}

var statusStyle = tcell.StyleDefault.Background(tcell.ColorDarkGray).Foreground(tcell.ColorWhite)

// Viewport maps world coordinates (y up) onto a grid of terminal cells (y down)
type Viewport struct {
	World      geom.AABB2
	Cols, Rows int
}

// CellSize returns the world extent of one cell
func (v Viewport) CellSize() geom.Vec2 {
	dims := v.World.Dimensions()
	return geom.Vec2{dims.X() / float64(v.Cols), dims.Y() / float64(v.Rows)}
}

// CellCenter returns the world position at the middle of a cell
func (v Viewport) CellCenter(col, row int) geom.Vec2 {
	uv := CursorUV(col, row, v.Cols, v.Rows)
	return v.World.PointAtUV(uv)
}

// Cell returns the cell containing a world position, which may be off screen
func (v Viewport) Cell(p geom.Vec2) (int, int) {
	dims := v.World.Dimensions()
	u := (p.X() - v.World.Mins.X()) / dims.X()
	w := (p.Y() - v.World.Mins.Y()) / dims.Y()
	return int(math.Floor(u * float64(v.Cols))), int(math.Floor((1 - w) * float64(v.Rows)))
}

func (v Viewport) onScreen(col, row int) bool {
	return col >= 0 && col < v.Cols && row >= 0 && row < v.Rows
}

// Renderer rasterises world-space shapes onto the terminal
type Renderer struct {
	screen *Screen
	world  geom.AABB2
	view   Viewport
}

// NewRenderer creates a renderer showing the given world rectangle
func NewRenderer(screen *Screen, world geom.AABB2) *Renderer {
	r := &Renderer{screen: screen, world: world}
	r.resize()
	return r
}

func (r *Renderer) resize() {
	cols, rows := r.screen.Size()
	r.view = Viewport{World: r.world, Cols: cols, Rows: rows}
}

// Viewport returns the current world to cell mapping
func (r *Renderer) Viewport() Viewport {
	return r.view
}

// Frame draws one complete frame of the mode with the status line on top
func (r *Renderer) Frame(mode game.Mode, status string) {
	r.resize()
	r.screen.Clear()
	mode.Render(r)
	r.screen.FillRect(0, 0, r.view.Cols, 1, statusStyle, ' ')
	r.screen.DrawText(0, 0, status, statusStyle)
	r.screen.Show()
}

func styleFor(c colorful.Color) tcell.Style {
	red, green, blue := c.Clamped().RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(red), int32(green), int32(blue)))
}

func (r *Renderer) plot(col, row int, ch rune, style tcell.Style) {
	if r.view.onScreen(col, row) {
		r.screen.SetCell(col, row, style, ch)
	}
}

// fill paints every cell whose centre satisfies contains. Shapes smaller than
// a cell still mark the cell holding their centre.
func (r *Renderer) fill(bounds geom.AABB2, center geom.Vec2, contains func(geom.Vec2) bool, c colorful.Color) {
	style := styleFor(c)
	minCol, maxRow := r.view.Cell(bounds.Mins)
	maxCol, minRow := r.view.Cell(bounds.Maxs)
	minCol, minRow = max(minCol, 0), max(minRow, 0)
	maxCol, maxRow = min(maxCol, r.view.Cols-1), min(maxRow, r.view.Rows-1)

	painted := false
	for row := minRow; row <= maxRow; row++ {
		for col := minCol; col <= maxCol; col++ {
			if contains(r.view.CellCenter(col, row)) {
				r.screen.SetCell(col, row, style, FillChar)
				painted = true
			}
		}
	}
	if !painted {
		col, row := r.view.Cell(center)
		r.plot(col, row, FillChar, style)
	}
}

func boundsOf(points ...geom.Vec2) geom.AABB2 {
	b := geom.AABB2{Mins: points[0], Maxs: points[0]}
	for _, p := range points[1:] {
		b.Mins = geom.Vec2{math.Min(b.Mins.X(), p.X()), math.Min(b.Mins.Y(), p.Y())}
		b.Maxs = geom.Vec2{math.Max(b.Maxs.X(), p.X()), math.Max(b.Maxs.Y(), p.Y())}
	}
	return b
}

func grow(b geom.AABB2, by float64) geom.AABB2 {
	pad := geom.Vec2{by, by}
	return geom.AABB2{Mins: b.Mins.Sub(pad), Maxs: b.Maxs.Add(pad)}
}

func (r *Renderer) FillDisc(d geom.Disc2, c colorful.Color) {
	r.fill(grow(boundsOf(d.Center), d.Radius), d.Center, d.Contains, c)
}

func (r *Renderer) FillCapsule(cp geom.Capsule2, c colorful.Color) {
	center := cp.Start.Add(cp.End).Mul(0.5)
	r.fill(grow(boundsOf(cp.Start, cp.End), cp.Radius), center, cp.Contains, c)
}

func (r *Renderer) FillOBB(b geom.OBB2, c colorful.Color) {
	corners := b.Corners()
	r.fill(boundsOf(corners[:]...), b.Center, b.Contains, c)
}

func (r *Renderer) FillAABB(b geom.AABB2, c colorful.Color) {
	r.fill(b, b.Center(), b.Contains, c)
}

func (r *Renderer) FillTriangle(t geom.Triangle2, c colorful.Color) {
	center := t.Points[0].Add(t.Points[1]).Add(t.Points[2]).Mul(1.0 / 3)
	r.fill(boundsOf(t.Points[:]...), center, t.Contains, c)
}

// Ring traces the disc's rim
func (r *Renderer) Ring(d geom.Disc2, c colorful.Color) {
	style := styleFor(c)
	cell := r.view.CellSize()
	spacing := math.Min(cell.X(), cell.Y())
	steps := max(16, int(2*math.Pi*d.Radius/spacing))
	for i := 0; i < steps; i++ {
		p := d.Center.Add(geom.PolarDegrees(360*float64(i)/float64(steps), d.Radius))
		col, row := r.view.Cell(p)
		r.plot(col, row, RingChar, style)
	}
}

// Line walks the cells between two world points
func (r *Renderer) Line(from, to geom.Vec2, c colorful.Color) {
	r.line(from, to, LineChar, styleFor(c))
}

func (r *Renderer) line(from, to geom.Vec2, ch rune, style tcell.Style) {
	x0, y0 := r.view.Cell(from)
	x1, y1 := r.view.Cell(to)
	dx, dy := abs(x1-x0), -abs(y1-y0)
	sx, sy := sign(x1-x0), sign(y1-y0)
	e := dx + dy
	for {
		r.plot(x0, y0, ch, style)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x0 += sx
		}
		if e2 <= dx {
			e += dx
			y0 += sy
		}
	}
}

// Arrow draws a line with a head at to pointing along from→to
func (r *Renderer) Arrow(from, to geom.Vec2, c colorful.Color) {
	style := styleFor(c)
	r.line(from, to, LineChar, style)
	col, row := r.view.Cell(to)
	r.plot(col, row, ArrowHead(to.Sub(from)), style)
}

// ArrowHead picks the arrow glyph closest to dir
func ArrowHead(dir geom.Vec2) rune {
	angle := math.Atan2(dir.Y(), dir.X())
	octant := int(math.Round(angle/(math.Pi/4))+8) % 8
	return arrowHeads[octant]
}

func (r *Renderer) Point(p geom.Vec2, c colorful.Color) {
	col, row := r.view.Cell(p)
	r.plot(col, row, PointChar, styleFor(c))
}

// Text writes a line of text; row 0 is the status line
func (r *Renderer) Text(row int, text string, c colorful.Color) {
	r.screen.DrawText(0, row, text, styleFor(c))
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
