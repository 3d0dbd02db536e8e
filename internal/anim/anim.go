// Package anim describes animations as data.
//
// Views never build timelines imperatively. They pick named Timelines from
// a Catalog and the live client interprets them. Keeping them as values
// means ordering and durations can be checked without a browser.
package anim

import (
	"fmt"
	"strconv"
	"strings"
)

// Trigger says when the client starts a timeline.
type Trigger string

const (
	OnMount  Trigger = "mount"
	OnScroll Trigger = "scroll"
	OnEvent  Trigger = "event"
)

// Step tweens one target from one set of properties to another.
type Step struct {
	Target   string            `json:"target"`
	From     map[string]string `json:"from,omitempty"`
	To       map[string]string `json:"to"`
	Duration float64           `json:"duration"`
	Ease     string            `json:"ease,omitempty"`
	// Position places the step on the timeline: "" appends after the
	// previous step, "-=0.5"/"+=0.5" offset from the previous end, "<"
	// starts with the previous step, and a bare number is absolute.
	Position string  `json:"position,omitempty"`
	Delay    float64 `json:"delay,omitempty"`
	Stagger  float64 `json:"stagger,omitempty"`
	Repeat   int     `json:"repeat,omitempty"`
	Yoyo     bool    `json:"yoyo,omitempty"`
}

// Marker is a named point on a timeline. The client reports it back to the
// server when the playhead crosses it.
type Marker struct {
	Name string `json:"name"`
	// Index is the number of steps that precede the marker; Position is
	// then read relative to the timeline as it stands at that point.
	Index    int    `json:"index"`
	Position string `json:"position,omitempty"`
}

// Timeline is an ordered list of steps.
type Timeline struct {
	Name    string  `json:"name"`
	Trigger Trigger `json:"trigger"`
	// Start is the scroll position for OnScroll timelines, e.g. "top 85%".
	Start   string   `json:"start,omitempty"`
	Scope   string   `json:"scope,omitempty"`
	Steps   []Step   `json:"steps"`
	Markers []Marker `json:"markers,omitempty"`
}

// Span is a step's resolved position on the timeline, in seconds.
type Span struct {
	Start float64
	End   float64
}

// Resolved is a timeline with absolute times.
type Resolved struct {
	Steps    []Span
	Markers  map[string]float64
	Duration float64
}

// active returns how long a step keeps its target busy.
func (s Step) active() float64 {
	d := s.Duration
	if s.Repeat > 0 {
		d *= float64(s.Repeat + 1)
	}
	return s.Delay + d
}

// Resolve computes absolute start and end times for every step and marker.
func (t Timeline) Resolve() (Resolved, error) {
	r := Resolved{
		Steps:   make([]Span, len(t.Steps)),
		Markers: make(map[string]float64, len(t.Markers)),
	}

	var prev Span
	placeMarkers := func(index int) error {
		for _, m := range t.Markers {
			if m.Index != index {
				continue
			}
			at, err := place(m.Position, prev, r.Duration)
			if err != nil {
				return fmt.Errorf("timeline %s marker %s: %w", t.Name, m.Name, err)
			}
			r.Markers[m.Name] = at
		}
		return nil
	}

	for i, step := range t.Steps {
		if err := placeMarkers(i); err != nil {
			return Resolved{}, err
		}
		start, err := place(step.Position, prev, r.Duration)
		if err != nil {
			return Resolved{}, fmt.Errorf("timeline %s step %d: %w", t.Name, i, err)
		}
		span := Span{Start: start, End: start + step.active()}
		r.Steps[i] = span
		prev = span
		if span.End > r.Duration {
			r.Duration = span.End
		}
	}
	if err := placeMarkers(len(t.Steps)); err != nil {
		return Resolved{}, err
	}
	for _, m := range t.Markers {
		if m.Index < 0 || m.Index > len(t.Steps) {
			return Resolved{}, fmt.Errorf("timeline %s marker %s: index %d out of range", t.Name, m.Name, m.Index)
		}
	}
	return r, nil
}

// place converts a position string into an absolute time.
func place(pos string, prev Span, end float64) (float64, error) {
	pos = strings.TrimSpace(pos)
	switch {
	case pos == "":
		return end, nil
	case pos == "<":
		return prev.Start, nil
	case strings.HasPrefix(pos, "-=") || strings.HasPrefix(pos, "+="):
		v, err := strconv.ParseFloat(pos[2:], 64)
		if err != nil {
			return 0, fmt.Errorf("invalid position %q", pos)
		}
		if pos[0] == '-' {
			v = -v
		}
		return clamp(end + v), nil
	default:
		v, err := strconv.ParseFloat(pos, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid position %q", pos)
		}
		return clamp(v), nil
	}
}

func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	return v
}

// MarkerAt returns the absolute time of the named marker.
func (t Timeline) MarkerAt(name string) (float64, bool) {
	r, err := t.Resolve()
	if err != nil {
		return 0, false
	}
	at, ok := r.Markers[name]
	return at, ok
}

// Threshold parses Start into the fraction of the viewport height the
// element's top must cross before a scroll timeline plays. "top 85%" is
// 0.85; an empty Start means the element only has to enter the viewport.
func (t Timeline) Threshold() (float64, error) {
	if t.Start == "" {
		return 1, nil
	}
	edge, pct, ok := strings.Cut(t.Start, " ")
	if !ok || edge != "top" || !strings.HasSuffix(pct, "%") {
		return 0, fmt.Errorf("timeline %s: start %q is not of the form \"top N%%\"", t.Name, t.Start)
	}
	v, err := strconv.ParseFloat(strings.TrimSuffix(pct, "%"), 64)
	if err != nil || v < 0 || v > 100 {
		return 0, fmt.Errorf("timeline %s: start %q is out of range", t.Name, t.Start)
	}
	return v / 100, nil
}
