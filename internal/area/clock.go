package area

import (
	"fmt"
	"time"

	"github.com/daviddao/hlbar/internal/canvas"
	"github.com/daviddao/hlbar/internal/colorclock"
)

// Clock shows the timestamp on a background swatch whose color follows the
// time of day. Its content is driven only by Tick.
type Clock struct {
	base
	sampler colorclock.Sampler
}

// NewClock returns a clock area sampled at now.
func NewClock(id string, f Float, weight int, style *Style, now time.Time) *Clock {
	c := &Clock{base: newBase(id, KindClock, f, weight, style)}
	c.Tick(now)
	return c
}

// SetText panics: a clock cannot be given text.
func (a *Clock) SetText(string) bool {
	panic(fmt.Errorf("set text of clock area %q: %w", a.id, ErrInvalidOperation))
}

// Tick resamples the clock and reports whether the displayed value changed.
func (a *Clock) Tick(now time.Time) bool {
	a.sampler.Steepness = a.style.Clock
	_, changed := a.sampler.Update(now)
	return changed
}

// Sample returns the last sample.
func (a *Clock) Sample() colorclock.Sample {
	return a.sampler.Last()
}

func (a *Clock) Width(m canvas.Measurer) int {
	return m.TextWidth(a.sampler.Last().Text)
}

// Render fills the swatch so it extends under the neighbouring divider on
// the side facing the bar's center.
func (a *Clock) Render(s canvas.Surface, x, y, h int) {
	sample := a.sampler.Last()
	cw := s.TextWidth(sample.Text)
	arrow := a.style.ArrowWidth

	bx, bw := x, cw+arrow+4+2
	if a.float.LeftGroup() {
		bx -= 2
	} else {
		bx -= arrow + 4
	}
	s.FillRect(bx, y, bw, h, sample.Color)
	s.DrawTextRight(x, y, cw, h, sample.Text)
}
