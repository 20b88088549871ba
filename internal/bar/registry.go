// Package bar owns the bars of every screen and the registry of areas
// attached to them.
//
// The registry is mutated only by the command dispatcher and the tick, and
// read by the renderer, all on one goroutine. Changes mark the owning bar
// dirty; the host drains dirty bars once per turn so several notifications
// coalesce into one redraw.
package bar

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/daviddao/hlbar/internal/area"
)

// ErrScreenOutOfRange is returned when an area addresses a screen that does
// not exist.
var ErrScreenOutOfRange = errors.New("screen out of range")

// Key identifies a bar.
type Key struct {
	Screen int
	Dock   area.Dock
}

func (k Key) String() string {
	return fmt.Sprintf("%d/%s", k.Screen, k.Dock)
}

// Bar is one horizontal strip. Areas are kept in insertion order; render
// order is derived by the layout engine.
type Bar struct {
	Key   Key
	areas []area.Area
}

// Areas returns the attached areas in insertion order.
func (b *Bar) Areas() []area.Area {
	return b.areas
}

type entry struct {
	area area.Area
	bar  *Bar
}

// Registry maps area ids to areas and screens to bars.
type Registry struct {
	areas   map[string]entry
	screens [][]*Bar
	dirty   map[Key]bool
}

// NewRegistry creates a registry with a top and bottom bar for each screen.
func NewRegistry(screens int) *Registry {
	r := &Registry{
		areas: make(map[string]entry),
		dirty: make(map[Key]bool),
	}
	for s := range screens {
		bars := make([]*Bar, len(area.Docks))
		for _, d := range area.Docks {
			bars[d] = &Bar{Key: Key{Screen: s, Dock: d}}
		}
		r.screens = append(r.screens, bars)
	}
	return r
}

// Screens returns the number of screens.
func (r *Registry) Screens() int {
	return len(r.screens)
}

// Bar returns the bar at k.
func (r *Registry) Bar(k Key) (*Bar, bool) {
	if k.Screen < 0 || k.Screen >= len(r.screens) || int(k.Dock) >= len(r.screens[k.Screen]) || k.Dock < 0 {
		return nil, false
	}
	return r.screens[k.Screen][k.Dock], true
}

// Bars returns every bar, screen by screen, top before bottom.
func (r *Registry) Bars() []*Bar {
	var out []*Bar
	for _, bars := range r.screens {
		out = append(out, bars...)
	}
	return out
}

// Add registers a under its id and attaches it to the bar at k. An area
// already registered under the same id is detached and replaced.
func (r *Registry) Add(a area.Area, k Key) error {
	b, ok := r.Bar(k)
	if !ok {
		return fmt.Errorf("area %q on screen %d: %w", a.ID(), k.Screen, ErrScreenOutOfRange)
	}
	if old, ok := r.areas[a.ID()]; ok {
		old.bar.areas = slices.DeleteFunc(old.bar.areas, func(x area.Area) bool { return x == old.area })
		r.dirty[old.bar.Key] = true
	}
	b.areas = append(b.areas, a)
	r.areas[a.ID()] = entry{area: a, bar: b}
	r.dirty[k] = true
	return nil
}

// Area looks up an area by id.
func (r *Registry) Area(id string) (area.Area, bool) {
	e, ok := r.areas[id]
	return e.area, ok
}

// Len returns the number of registered areas.
func (r *Registry) Len() int {
	return len(r.areas)
}

// Changed marks the bar owning id dirty.
func (r *Registry) Changed(id string) {
	if e, ok := r.areas[id]; ok {
		r.dirty[e.bar.Key] = true
	}
}

// Invalidate marks every bar dirty.
func (r *Registry) Invalidate() {
	for _, b := range r.Bars() {
		r.dirty[b.Key] = true
	}
}

// Tick advances every ticking area and marks the bars whose content
// changed. It reports whether anything changed.
func (r *Registry) Tick(now time.Time) bool {
	changed := false
	for _, b := range r.Bars() {
		for _, a := range b.areas {
			t, ok := a.(area.Ticker)
			if ok && t.Tick(now) {
				r.dirty[b.Key] = true
				changed = true
			}
		}
	}
	return changed
}

// Dirty reports whether any bar needs a redraw.
func (r *Registry) Dirty() bool {
	return len(r.dirty) > 0
}

// TakeDirty returns the dirty bars in screen/dock order and clears the dirty
// set.
func (r *Registry) TakeDirty() []*Bar {
	var out []*Bar
	for _, b := range r.Bars() {
		if r.dirty[b.Key] {
			out = append(out, b)
		}
	}
	clear(r.dirty)
	return out
}
