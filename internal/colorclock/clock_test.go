package colorclock

import (
	"math"
	"regexp"
	"testing"
	"time"
)

var hexColor = regexp.MustCompile(`^#[0-9a-f]{6}$`)

func TestRampPeriodic(t *testing.T) {
	for i := 0; i < 200; i++ {
		t0 := float64(i) / 200 * 0.875
		a := Ramp(t0)
		b := Ramp(t0 + 0.125)
		if math.Abs(a-b) > 1e-9 && math.Abs(math.Abs(a-b)-1) > 1e-9 {
			t.Errorf("Ramp(%v) = %v, Ramp(%v) = %v, want equal", t0, a, t0+0.125, b)
		}
	}
}

func TestRampRange(t *testing.T) {
	for i := 0; i < 1000; i++ {
		r := Ramp(float64(i) / 1000)
		if r <= 0 || r > 1 {
			t.Errorf("Ramp(%v) = %v, want in (0,1]", float64(i)/1000, r)
		}
	}
}

func TestHueAndChannelRange(t *testing.T) {
	for _, s := range []Steepness{Default, Sharp} {
		for i := 0; i <= 1000; i++ {
			t0 := float64(i) / 1000
			h := s.Hue(Ramp(t0))
			if h < 0 || h >= 1 {
				t.Fatalf("Hue(%v) = %v, want in [0,1)", t0, h)
			}
			c := s.Color(Ramp(t0))
			for _, ch := range []float64{c.R, c.G, c.B} {
				if v := math.Round(ch * 255); v < 0 || v > 255 {
					t.Fatalf("channel %v out of range at t0=%v", v, t0)
				}
			}
		}
	}
}

func TestColorIsDark(t *testing.T) {
	// Lightness 0.125 at full saturation caps every channel at 0.25.
	for i := 0; i < 100; i++ {
		r, g, b := Default.Color(float64(i) / 100).RGB255()
		for _, ch := range []uint8{r, g, b} {
			if ch > 64 {
				t.Fatalf("channel %d too bright at t=%v", ch, float64(i)/100)
			}
		}
	}
}

func TestHuePhaseBoundaries(t *testing.T) {
	// Each phase starts one third of a turn after the previous one.
	tests := []struct {
		t    float64
		want float64
	}{
		{0.0, 0.0},
		{1.0 / 3.0, 1.0 / 3.0},
		{2.0 / 3.0, 2.0 / 3.0},
	}
	for _, tt := range tests {
		got := Default.Hue(tt.t)
		if math.Abs(got-tt.want) > 0.01 && math.Abs(got-tt.want-1) > 0.01 && math.Abs(got-tt.want+1) > 0.01 {
			t.Errorf("Hue(%v) = %v, want ~%v", tt.t, got, tt.want)
		}
	}
}

func TestDayFraction(t *testing.T) {
	tests := []struct {
		h, m, s int
		want    float64
	}{
		{0, 0, 0, 0},
		{12, 0, 0, 0.5},
		{3, 0, 0, 0.125},
		{18, 0, 0, 0.75},
	}
	for _, tt := range tests {
		tm := time.Date(2024, 3, 1, tt.h, tt.m, tt.s, 0, time.Local)
		if got := DayFraction(tm); math.Abs(got-tt.want) > 1e-12 {
			t.Errorf("DayFraction(%02d:%02d:%02d) = %v, want %v", tt.h, tt.m, tt.s, got, tt.want)
		}
	}
}

func TestAtFormat(t *testing.T) {
	tm := time.Date(2024, 3, 1, 13, 4, 5, 0, time.Local)
	s := Default.At(tm)
	if s.Text != "Fri 2024-03-01 13:04:05" {
		t.Errorf("Text = %q", s.Text)
	}
	if !hexColor.MatchString(s.Color) {
		t.Errorf("Color = %q, want #rrggbb", s.Color)
	}
}

func TestSamplerChangeDetection(t *testing.T) {
	s := NewSampler(Default)
	tm := time.Date(2024, 3, 1, 13, 4, 5, 0, time.Local)

	if _, changed := s.Update(tm); !changed {
		t.Error("first sample should report a change")
	}
	if _, changed := s.Update(tm); changed {
		t.Error("resampling the same instant should not report a change")
	}
	later := tm.Add(400 * time.Millisecond)
	want := Default.At(later) != Default.At(tm)
	if _, changed := s.Update(later); changed != want {
		t.Errorf("sub-second resample changed = %v, want %v", changed, want)
	}
	if _, changed := s.Update(tm.Add(time.Second)); !changed {
		t.Error("new second should report a change")
	}
	if s.Last().Text != "Fri 2024-03-01 13:04:06" {
		t.Errorf("Last().Text = %q", s.Last().Text)
	}
}

func TestPreset(t *testing.T) {
	tests := []struct {
		name string
		want Steepness
		ok   bool
	}{
		{"", Default, true},
		{"default", Default, true},
		{"sharp", Sharp, true},
		{"bogus", Default, false},
	}
	for _, tt := range tests {
		got, ok := Preset(tt.name)
		if got != tt.want || ok != tt.ok {
			t.Errorf("Preset(%q) = %v, %v; want %v, %v", tt.name, got, ok, tt.want, tt.ok)
		}
	}
}
