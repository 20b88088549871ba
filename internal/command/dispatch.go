// Package command parses and applies the line protocol that drives the bar.
//
//	text <area_id> <raw text>
//	add_area <id> <screen> <top|bottom> <weight> <float> [clock|dwm-ws|dwm-lt]
//	rm_area <id>
//	screen ...
//
// No command failure is fatal: rejected lines are logged and reported to the
// caller, bad enum values fall back to defaults.
package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/daviddao/hlbar/internal/area"
	"github.com/daviddao/hlbar/internal/bar"
	"github.com/daviddao/hlbar/internal/logging"
)

var (
	ErrMalformedCommand = errors.New("malformed command")
	ErrUnknownArea      = errors.New("unknown area")
	ErrUnknownCommand   = errors.New("unknown command")

	ErrScreenOutOfRange = bar.ErrScreenOutOfRange
)

const (
	DefaultDock  = area.Top
	DefaultFloat = area.CenterRight
)

// Dispatcher applies commands to a registry.
type Dispatcher struct {
	reg   *bar.Registry
	style *area.Style
	log   *slog.Logger

	// Now is the clock used to sample new clock areas.
	Now func() time.Time
}

// NewDispatcher returns a dispatcher for reg. New areas share style.
func NewDispatcher(reg *bar.Registry, style *area.Style, log *slog.Logger) *Dispatcher {
	if style == nil {
		style = area.DefaultStyle()
	}
	return &Dispatcher{
		reg:   reg,
		style: style,
		log:   logging.Component(log, "dispatch"),
		Now:   time.Now,
	}
}

// Handle applies one input line. It returns the reason a line was rejected,
// after logging it; blank lines and accepted no-op commands return nil.
func (d *Dispatcher) Handle(line string) error {
	line = strings.TrimRight(line, "\r\n")
	if strings.TrimSpace(line) == "" {
		return nil
	}

	cmd, args, _ := strings.Cut(line, " ")
	var err error
	switch cmd {
	case "text":
		err = d.text(args)
	case "add_area":
		err = d.addArea(args)
	case "rm_area", "screen":
		d.log.Debug("ignoring command", "command", cmd, "args", args)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}

	if err != nil {
		level := slog.LevelWarn
		if errors.Is(err, area.ErrInvalidOperation) {
			level = slog.LevelError
		}
		d.log.Log(context.Background(), level, "command rejected", "line", line, "err", err)
	}
	return err
}

func (d *Dispatcher) text(args string) error {
	id, raw, _ := strings.Cut(args, " ")
	if id == "" {
		return fmt.Errorf("%w: text needs an area id", ErrMalformedCommand)
	}
	a, ok := d.reg.Area(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownArea, id)
	}
	changed, err := setText(a, raw)
	if err != nil {
		return err
	}
	if changed {
		d.reg.Changed(id)
	}
	return nil
}

// setText converts an invalid-operation panic from a into an error. Any
// other panic propagates.
func setText(a area.Area, raw string) (changed bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			e, ok := r.(error)
			if !ok || !errors.Is(e, area.ErrInvalidOperation) {
				panic(r)
			}
			err = e
		}
	}()
	return a.SetText(raw), nil
}

func (d *Dispatcher) addArea(args string) error {
	fields := strings.Fields(args)
	if len(fields) < 5 {
		return fmt.Errorf("%w: add_area needs 5 fields, got %d", ErrMalformedCommand, len(fields))
	}
	id := fields[0]

	screen, err := strconv.Atoi(fields[1])
	if err != nil {
		return fmt.Errorf("%w: screen %q is not a number", ErrMalformedCommand, fields[1])
	}
	weight, err := strconv.Atoi(fields[3])
	if err != nil {
		return fmt.Errorf("%w: weight %q is not a number", ErrMalformedCommand, fields[3])
	}

	dock, err := area.ParseDock(fields[2])
	if err != nil {
		d.log.Warn("falling back to default dock", "area", id, "value", fields[2], "default", DefaultDock)
		dock = DefaultDock
	}
	float, err := area.ParseFloat(fields[4])
	if err != nil {
		d.log.Warn("falling back to default float", "area", id, "value", fields[4], "default", DefaultFloat)
		float = DefaultFloat
	}
	kind := area.KindText
	if len(fields) > 5 {
		if kind, err = area.ParseKind(fields[5]); err != nil {
			d.log.Debug("unknown area kind, using text", "area", id, "value", fields[5])
		}
	}

	var a area.Area
	if kind == area.KindClock {
		a = area.NewClock(id, float, weight, d.style, d.Now())
	} else {
		a = area.New(kind, id, float, weight, d.style)
	}
	if err := d.reg.Add(a, bar.Key{Screen: screen, Dock: dock}); err != nil {
		return err
	}
	d.log.Debug("added area", "area", id, "kind", kind, "screen", screen, "dock", dock, "float", float, "weight", weight)
	return nil
}
