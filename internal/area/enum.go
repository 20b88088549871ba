package area

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnumValue is returned when a dock, float or kind name is not
// recognized. Callers fall back to a default.
var ErrUnknownEnumValue = errors.New("unknown enum value")

// Float is the side and priority group an area renders in.
//
// Left < LeftHighlight < CenterLeft form the left group, laid out from the
// bar's left edge toward the center. Right < RightHighlight < CenterRight
// form the right group, laid out from the right edge.
type Float int

const (
	Left Float = iota
	LeftHighlight
	CenterLeft
	Right
	RightHighlight
	CenterRight
)

// floatNames maps accepted names to floats. "center" is the legacy spelling
// of center_l and is only accepted here.
var floatNames = map[string]Float{
	"left":     Left,
	"left_hl":  LeftHighlight,
	"center_l": CenterLeft,
	"center":   CenterLeft,
	"right":    Right,
	"right_hl": RightHighlight,
	"center_r": CenterRight,
}

// ParseFloat parses a float name case-insensitively.
func ParseFloat(s string) (Float, error) {
	if f, ok := floatNames[strings.ToLower(s)]; ok {
		return f, nil
	}
	return 0, fmt.Errorf("float %q: %w", s, ErrUnknownEnumValue)
}

func (f Float) String() string {
	switch f {
	case Left:
		return "left"
	case LeftHighlight:
		return "left_hl"
	case CenterLeft:
		return "center_l"
	case Right:
		return "right"
	case RightHighlight:
		return "right_hl"
	case CenterRight:
		return "center_r"
	}
	return "?"
}

// LeftGroup reports whether f belongs to the left super-group.
func (f Float) LeftGroup() bool {
	return f <= CenterLeft
}

// Highlight reports whether f is a highlight class.
func (f Float) Highlight() bool {
	return f == LeftHighlight || f == RightHighlight
}

// Dock selects the horizontal strip of a screen.
type Dock int

const (
	Top Dock = iota
	Bottom
)

// Docks lists every dock in order.
var Docks = []Dock{Top, Bottom}

// ParseDock parses a dock name case-insensitively.
func ParseDock(s string) (Dock, error) {
	switch strings.ToLower(s) {
	case "top":
		return Top, nil
	case "bottom":
		return Bottom, nil
	}
	return 0, fmt.Errorf("dock %q: %w", s, ErrUnknownEnumValue)
}

func (d Dock) String() string {
	switch d {
	case Top:
		return "top"
	case Bottom:
		return "bottom"
	}
	return "?"
}

// Kind selects the area variant.
type Kind int

const (
	KindText Kind = iota
	KindClock
	KindWorkspaces
	KindLayout
)

// ParseKind parses an area kind. Anything unrecognized is a plain text area.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "text":
		return KindText, nil
	case "clock":
		return KindClock, nil
	case "dwm-ws":
		return KindWorkspaces, nil
	case "dwm-lt":
		return KindLayout, nil
	}
	return KindText, fmt.Errorf("kind %q: %w", s, ErrUnknownEnumValue)
}

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindClock:
		return "clock"
	case KindWorkspaces:
		return "dwm-ws"
	case KindLayout:
		return "dwm-lt"
	}
	return "?"
}
