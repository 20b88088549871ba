// Package colorclock maps the time of day to a dark, saturated background
// color and a display timestamp.
//
// A day is split into eight three-hour windows. Inside each window the hue
// sweeps along a sigmoid schedule with three phase changes, so the color is a
// coarse visual indicator of how far into the current window we are.
package colorclock

import (
	"math"
	"time"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	// Saturation and Lightness are fixed so the swatch is never washed out.
	Saturation = 1.0
	Lightness  = 0.125

	// TimeLayout renders as "Dow YYYY-MM-DD HH:MM:SS".
	TimeLayout = "Mon 2006-01-02 15:04:05"

	cyclesPerDay = 8
)

// Steepness tunes the sigmoid: K is the slope, N widens each phase so
// neighbouring phases overlap slightly.
type Steepness struct {
	K float64
	N float64
}

var (
	// Default is the schedule used by the bar.
	Default = Steepness{K: 14.0, N: 0.07}
	// Sharp has steeper transitions and less overlap.
	Sharp = Steepness{K: 18.0, N: 0.035}
)

// phase is one entry of the phase table: Offset shifts the sigmoid center in
// thirds of the ramp, Shift moves the output in sixths of a turn.
type phase struct {
	Offset float64
	Shift  float64
}

var phases = [4]phase{
	{Offset: 0, Shift: -1},
	{Offset: -1, Shift: 1},
	{Offset: -2, Shift: 3},
	{Offset: -3, Shift: 5},
}

// Preset resolves a steepness preset name. Unknown names return Default and
// false.
func Preset(name string) (Steepness, bool) {
	switch name {
	case "", "default":
		return Default, true
	case "sharp":
		return Sharp, true
	}
	return Default, false
}

// DayFraction returns the local time of day of t as a fraction in [0,1).
func DayFraction(t time.Time) float64 {
	secs := float64(3600*t.Hour()+60*t.Minute()+t.Second()) + float64(t.Nanosecond()/1000)*1e-6
	return secs / (24 * 60 * 60)
}

// Ramp compresses each three-hour window of the day into a falling ramp.
// It is exactly periodic with period 1/8 of a day.
func Ramp(t0 float64) float64 {
	return 1 - math.Mod(t0*cyclesPerDay, 1)
}

// Hue returns the hue in turns, in [0,1), for a ramp value t.
func (s Steepness) Hue(t float64) float64 {
	i := int(math.RoundToEven(t * 3))
	if i < 0 {
		i = 0
	}
	if i >= len(phases) {
		i = len(phases) - 1
	}
	p := phases[i]
	h := (1.0/3.0+s.N)/(1.0+math.Exp(-s.K*(t+p.Offset/3.0))) + p.Shift/6.0 - s.N/2.0
	return h - math.Floor(h)
}

// Color converts a ramp value to a colorful.Color at fixed saturation and
// lightness.
func (s Steepness) Color(t float64) colorful.Color {
	return colorful.Hsl(s.Hue(t)*360, Saturation, Lightness)
}

// Sample is one reading of the clock.
type Sample struct {
	Color string // "#rrggbb"
	Text  string // formatted with TimeLayout
}

// At samples the clock for the given wall-clock time.
func (s Steepness) At(now time.Time) Sample {
	c := s.Color(Ramp(DayFraction(now)))
	return Sample{
		Color: c.Hex(),
		Text:  now.Format(TimeLayout),
	}
}

// Sampler remembers the last sample so callers only signal a change when the
// rendered value actually differs.
type Sampler struct {
	Steepness Steepness

	last Sample
	has  bool
}

// NewSampler returns a sampler using the given steepness.
func NewSampler(s Steepness) *Sampler {
	return &Sampler{Steepness: s}
}

// Update samples now and reports whether the result differs from the
// previous sample.
func (s *Sampler) Update(now time.Time) (Sample, bool) {
	cur := s.Steepness.At(now)
	if s.has && cur == s.last {
		return cur, false
	}
	s.last = cur
	s.has = true
	return cur, true
}

// Last returns the most recent sample.
func (s *Sampler) Last() Sample {
	return s.last
}
