package canvas

import "unicode/utf8"

// Op is one recorded drawing operation.
type Op struct {
	Kind   string  `json:"kind"`
	X      int     `json:"x,omitempty"`
	Y      int     `json:"y,omitempty"`
	W      int     `json:"w,omitempty"`
	H      int     `json:"h,omitempty"`
	Text   string  `json:"text,omitempty"`
	Path   string  `json:"path,omitempty"`
	Color  string  `json:"color,omitempty"`
	Points []Point `json:"points,omitempty"`
}

// Recorder is a Surface that records every operation instead of drawing.
// Text and image operations carry the pen color in effect when they ran.
type Recorder struct {
	Measurer Measurer
	Ops      []Op

	pen   string
	stack []string
}

// NewRecorder returns a recorder measuring with m and starting with pen.
func NewRecorder(m Measurer, pen string) *Recorder {
	return &Recorder{Measurer: m, pen: pen}
}

func (r *Recorder) TextWidth(s string) int          { return r.Measurer.TextWidth(s) }
func (r *Recorder) ImageSize(path string) (int, int) { return r.Measurer.ImageSize(path) }

func (r *Recorder) Save() {
	r.stack = append(r.stack, r.pen)
}

func (r *Recorder) Restore() {
	if n := len(r.stack); n > 0 {
		r.pen = r.stack[n-1]
		r.stack = r.stack[:n-1]
	}
}

func (r *Recorder) SetPen(color string) {
	r.pen = color
}

// Pen returns the current pen color.
func (r *Recorder) Pen() string {
	return r.pen
}

func (r *Recorder) DrawText(x, y, w, h int, s string) {
	r.Ops = append(r.Ops, Op{Kind: "text", X: x, Y: y, W: w, H: h, Text: s, Color: r.pen})
}

func (r *Recorder) DrawTextRight(x, y, w, h int, s string) {
	r.Ops = append(r.Ops, Op{Kind: "text-right", X: x, Y: y, W: w, H: h, Text: s, Color: r.pen})
}

func (r *Recorder) DrawImage(x, y int, path string) {
	r.Ops = append(r.Ops, Op{Kind: "image", X: x, Y: y, Path: path})
}

func (r *Recorder) FillRect(x, y, w, h int, color string) {
	r.Ops = append(r.Ops, Op{Kind: "rect", X: x, Y: y, W: w, H: h, Color: color})
}

func (r *Recorder) FillPolygon(pts []Point, color string) {
	r.Ops = append(r.Ops, Op{Kind: "polygon", Points: append([]Point(nil), pts...), Color: color})
}

func (r *Recorder) StrokePath(pts []Point) {
	r.Ops = append(r.Ops, Op{Kind: "path", Points: append([]Point(nil), pts...), Color: r.pen})
}

// Filter returns the recorded operations of the given kind.
func (r *Recorder) Filter(kind string) []Op {
	var out []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			out = append(out, op)
		}
	}
	return out
}

// Mono is a fixed-advance measurer: every rune is Advance units wide and
// images have the sizes listed in Images.
type Mono struct {
	Advance int
	Images  map[string][2]int
}

func (m Mono) TextWidth(s string) int {
	return utf8.RuneCountInString(s) * m.Advance
}

func (m Mono) ImageSize(path string) (int, int) {
	sz, ok := m.Images[path]
	if !ok {
		return 0, 0
	}
	return sz[0], sz[1]
}
