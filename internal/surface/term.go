package surface

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/daviddao/hlbar/internal/canvas"
	"github.com/daviddao/hlbar/internal/imagecache"
)

// Glyphs used where the raster backend draws shapes.
const (
	DividerRight = "" // left-group divider
	DividerLeft  = "" // right-group divider
	ImageCell    = "▪"
)

type cell struct {
	s         string // "" for the trailing half of a wide rune
	fg, bg    string
	underline bool
}

// Term is a canvas.Surface over a single row of terminal cells. Bar units
// map to cells at CellWidth units per cell, so a bar composed for Width()
// units fills Cols() cells.
type Term struct {
	cols, cellWidth, height int
	images                  *imagecache.Cache

	cells []cell
	pen   string
	stack []string
}

var _ canvas.Surface = (*Term)(nil)

// NewTerm returns a row of cols blank cells for a bar height units tall.
func NewTerm(cols, cellWidth, height int, images *imagecache.Cache) *Term {
	t := &Term{
		cols:      max(cols, 0),
		cellWidth: max(cellWidth, 1),
		height:    height,
		images:    images,
	}
	t.cells = make([]cell, t.cols)
	for i := range t.cells {
		t.cells[i].s = " "
	}
	return t
}

// Width returns the row width in bar units.
func (t *Term) Width() int { return t.cols * t.cellWidth }

// Cols returns the number of cells.
func (t *Term) Cols() int { return t.cols }

// col maps a bar x coordinate to the nearest cell boundary.
func (t *Term) col(x float64) int {
	return int(math.Round(x / float64(t.cellWidth)))
}

func (t *Term) TextWidth(s string) int {
	return runewidth.StringWidth(s) * t.cellWidth
}

// ImageSize rounds the intrinsic width up to whole cells.
func (t *Term) ImageSize(path string) (int, int) {
	if t.images == nil {
		return 0, 0
	}
	w, h := t.images.Size(path)
	if w == 0 {
		return 0, 0
	}
	cells := (w + t.cellWidth - 1) / t.cellWidth
	return cells * t.cellWidth, h
}

func (t *Term) Save() {
	t.stack = append(t.stack, t.pen)
}

func (t *Term) Restore() {
	if n := len(t.stack); n > 0 {
		t.pen = t.stack[n-1]
		t.stack = t.stack[:n-1]
	}
}

func (t *Term) SetPen(c string) {
	t.pen = c
}

func (t *Term) DrawText(x, y, w, h int, s string) {
	c := t.col(float64(x))
	for _, r := range s {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if c+rw > t.cols {
			return
		}
		t.put(c, string(r))
		for i := 1; i < rw; i++ {
			t.put(c+i, "")
		}
		c += rw
	}
}

func (t *Term) DrawTextRight(x, y, w, h int, s string) {
	t.DrawText(x+w-t.TextWidth(s), y, w, h, s)
}

func (t *Term) DrawImage(x, y int, path string) {
	w, _ := t.ImageSize(path)
	from := t.col(float64(x))
	for i := 0; i < w/t.cellWidth; i++ {
		s := " "
		if i == 0 {
			s = ImageCell
		}
		t.put(from+i, s)
	}
}

// FillRect paints the background of the covered cells. Rectangles shorter
// than half the bar height underline the cells instead.
func (t *Term) FillRect(x, y, w, h int, c string) {
	from, to := t.col(float64(x)), t.col(float64(x+w))
	thin := 2*h < t.height
	for i := max(from, 0); i < min(to, t.cols); i++ {
		if thin {
			t.cells[i].underline = true
			t.cells[i].fg = c
		} else {
			t.cells[i].bg = c
		}
	}
}

// FillPolygon paints the background of every cell whose center lies inside
// the polygon on the bar's middle row.
func (t *Term) FillPolygon(pts []canvas.Point, c string) {
	mid := float64(t.height) / 2
	for i := range t.cells {
		cx := (float64(i) + 0.5) * float64(t.cellWidth)
		if inside(pts, cx, mid) {
			t.cells[i].bg = c
		}
	}
}

// StrokePath draws a chevron in the cell under the path's horizontal
// center, pointing the way the path's apex points.
func (t *Term) StrokePath(pts []canvas.Point) {
	if len(pts) < 3 {
		return
	}
	lo, hi := pts[0].X, pts[0].X
	for _, p := range pts[1:] {
		lo, hi = min(lo, p.X), max(hi, p.X)
	}
	glyph := DividerLeft
	if pts[1].X > pts[0].X {
		glyph = DividerRight
	}
	t.put(int((lo+hi)/2)/t.cellWidth, glyph)
}

func (t *Term) put(i int, s string) {
	if i < 0 || i >= t.cols {
		return
	}
	t.cells[i].s = s
	t.cells[i].fg = t.pen
}

// Plain returns the row's text without styling.
func (t *Term) Plain() string {
	var b strings.Builder
	for _, c := range t.cells {
		b.WriteString(c.s)
	}
	return b.String()
}

// String renders the row with lipgloss, one styled run per stretch of cells
// sharing colors.
func (t *Term) String() string {
	var (
		b   strings.Builder
		run strings.Builder
		cur cell
	)
	flush := func() {
		if run.Len() == 0 {
			return
		}
		st := lipgloss.NewStyle().Underline(cur.underline)
		if cur.fg != "" {
			st = st.Foreground(lipgloss.Color(cur.fg))
		}
		if cur.bg != "" {
			st = st.Background(lipgloss.Color(cur.bg))
		}
		b.WriteString(st.Render(run.String()))
		run.Reset()
	}
	for i, c := range t.cells {
		if i == 0 || c.fg != cur.fg || c.bg != cur.bg || c.underline != cur.underline {
			flush()
			cur = c
		}
		run.WriteString(c.s)
	}
	flush()
	return b.String()
}

// inside reports whether (x, y) lies inside the polygon, by ray casting.
func inside(pts []canvas.Point, x, y float64) bool {
	in := false
	for i, j := 0, len(pts)-1; i < len(pts); j, i = i, i+1 {
		a, b := pts[i], pts[j]
		if (a.Y > y) != (b.Y > y) && x < (b.X-a.X)*(y-a.Y)/(b.Y-a.Y)+a.X {
			in = !in
		}
	}
	return in
}
