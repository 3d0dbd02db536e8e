package anim

import (
	"math"
	"testing"
)

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestResolvePositions(t *testing.T) {
	tl := Timeline{
		Name: "t",
		Steps: []Step{
			{Target: "a", Duration: 2},
			{Target: "b", Duration: 1, Position: "-=0.5"},
			{Target: "c", Duration: 1, Position: "<"},
			{Target: "d", Duration: 1, Position: "+=1"},
			{Target: "e", Duration: 0.5, Position: "0.25"},
			{Target: "f", Duration: 1, Repeat: 1},
		},
	}
	r, err := tl.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	want := []Span{
		{0, 2},
		{1.5, 2.5},
		{1.5, 2.5},
		{3.5, 4.5},
		{0.25, 0.75},
		{4.5, 6.5},
	}
	for i, w := range want {
		if !approx(r.Steps[i].Start, w.Start) || !approx(r.Steps[i].End, w.End) {
			t.Errorf("step %d = %+v, want %+v", i, r.Steps[i], w)
		}
	}
	if !approx(r.Duration, 6.5) {
		t.Errorf("Duration = %v, want 6.5", r.Duration)
	}
}

func TestResolveClampsNegativeStart(t *testing.T) {
	tl := Timeline{Name: "t", Steps: []Step{{Duration: 1, Position: "-=5"}}}
	r, err := tl.Resolve()
	if err != nil {
		t.Fatal(err)
	}
	if r.Steps[0].Start != 0 {
		t.Errorf("Start = %v, want 0", r.Steps[0].Start)
	}
}

func TestResolveRejectsBadPosition(t *testing.T) {
	for _, pos := range []string{"-=x", "soon", "+="} {
		tl := Timeline{Name: "t", Steps: []Step{{Duration: 1, Position: pos}}}
		if _, err := tl.Resolve(); err == nil {
			t.Errorf("position %q: expected error", pos)
		}
	}
	tl := Timeline{Name: "t", Markers: []Marker{{Name: "m", Index: 3}}}
	if _, err := tl.Resolve(); err == nil {
		t.Error("out-of-range marker index: expected error")
	}
}

func TestLoadingIntroCompletesBeforeCurtain(t *testing.T) {
	tl, ok := Default().Get(LoadingIntro)
	if !ok {
		t.Fatal("loading intro missing from catalog")
	}
	r, err := tl.Resolve()
	if err != nil {
		t.Fatal(err)
	}

	complete, ok := r.Markers[LoadingComplete]
	if !ok {
		t.Fatal("complete marker missing")
	}
	if !approx(complete, 4.4) {
		t.Errorf("complete marker at %v, want 4.4", complete)
	}

	curtain := r.Steps[len(r.Steps)-1]
	if !approx(curtain.Start, complete) {
		t.Errorf("curtain starts at %v, want it to start at the marker (%v)", curtain.Start, complete)
	}
	if !approx(r.Duration, 5.4) {
		t.Errorf("Duration = %v, want 5.4", r.Duration)
	}
}

func TestDefaultCatalogValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	names := c.Names()
	if len(names) != 8 {
		t.Errorf("expected 8 timelines, got %d: %v", len(names), names)
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Errorf("Names() not sorted: %v", names)
		}
	}
	if _, ok := c.Get("missing"); ok {
		t.Error("Get(missing) should fail")
	}
}

func TestMarkerAt(t *testing.T) {
	tl, _ := Default().Get(LoadingIntro)
	at, ok := tl.MarkerAt(LoadingComplete)
	if !ok || !approx(at, 4.4) {
		t.Errorf("MarkerAt = %v, %v", at, ok)
	}
	if _, ok := tl.MarkerAt("nope"); ok {
		t.Error("unknown marker should not resolve")
	}
}

func TestListenerScope(t *testing.T) {
	var events []string
	s := NewScope(func(l Listener, attached bool) {
		if attached {
			events = append(events, "+"+string(l))
		} else {
			events = append(events, "-"+string(l))
		}
	})

	releaseMove := s.Acquire(PointerMove)
	s.Acquire(Scroll)
	if s.Active() != 2 {
		t.Fatalf("Active() = %d, want 2", s.Active())
	}

	releaseMove()
	releaseMove()
	if s.Active() != 1 {
		t.Fatalf("Active() = %d, want 1", s.Active())
	}

	s.Close()
	if s.Active() != 0 {
		t.Fatalf("Active() after Close = %d", s.Active())
	}

	want := []string{"+pointermove", "+scroll", "-pointermove", "-scroll"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestThreshold(t *testing.T) {
	tests := []struct {
		start   string
		want    float64
		wantErr bool
	}{
		{"", 1, false},
		{"top 85%", 0.85, false},
		{"top 100%", 1, false},
		{"bottom 85%", 0, true},
		{"top 85", 0, true},
		{"top 120%", 0, true},
		{"top abc%", 0, true},
	}
	for _, tt := range tests {
		got, err := Timeline{Name: "t", Start: tt.start}.Threshold()
		if (err != nil) != tt.wantErr {
			t.Errorf("Threshold(%q) err = %v, wantErr %v", tt.start, err, tt.wantErr)
			continue
		}
		if !tt.wantErr && !approx(got, tt.want) {
			t.Errorf("Threshold(%q) = %v, want %v", tt.start, got, tt.want)
		}
	}
}

func TestScrollTimelinesCarryStart(t *testing.T) {
	c := Default()
	for _, name := range []string{SectionReveal, ProductsReveal, TabNavReveal} {
		tl, _ := c.Get(name)
		if tl.Trigger != OnScroll || tl.Start == "" {
			t.Errorf("%s: trigger=%q start=%q", name, tl.Trigger, tl.Start)
		}
	}

	bad := NewCatalog(Timeline{Name: "x", Trigger: OnScroll, Start: "center"})
	if err := bad.Validate(); err == nil {
		t.Error("Validate should reject a malformed scroll start")
	}
}
