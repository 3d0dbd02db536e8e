package theme

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gyansetu/website/internal/db"
)

type failingPersister struct {
	loadErr, saveErr error
	saves            int
}

func (p *failingPersister) Load(context.Context) (string, error) { return "", p.loadErr }

func (p *failingPersister) Save(context.Context, string) error {
	p.saves++
	return p.saveErr
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
	}{
		{"light", Light},
		{"dark", Dark},
		{"", Light},
		{"DARK", Light},
		{"sepia", Light},
	}
	for _, tt := range tests {
		if got := ParseMode(tt.in); got != tt.want {
			t.Errorf("ParseMode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToggleParity(t *testing.T) {
	for n := 0; n < 7; n++ {
		s := NewStore(t.Context(), &MemoryPersister{})
		for i := 0; i < n; i++ {
			s.Toggle()
		}
		want := Light
		if n%2 == 1 {
			want = Dark
		}
		if got := s.Get(); got != want {
			t.Errorf("after %d toggles: got %q, want %q", n, got, want)
		}
	}
}

func TestPersistenceRoundTrip(t *testing.T) {
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer database.Close()

	first := NewStore(t.Context(), NewDBPersister(database, "visitor-1"))
	if first.Get() != Light {
		t.Fatalf("fresh visitor should start light, got %q", first.Get())
	}
	first.Set(Dark)

	// A fresh load sees the saved value.
	restarted := NewStore(t.Context(), NewDBPersister(database, "visitor-1"))
	if restarted.Get() != Dark {
		t.Errorf("after restart: got %q, want dark", restarted.Get())
	}

	// Other visitors are unaffected.
	other := NewStore(t.Context(), NewDBPersister(database, "visitor-2"))
	if other.Get() != Light {
		t.Errorf("other visitor: got %q, want light", other.Get())
	}

	// Only the preference itself is stored.
	var rows int
	if err := database.QueryRow(`SELECT COUNT(*) FROM preferences`).Scan(&rows); err != nil {
		t.Fatalf("count: %v", err)
	}
	if rows != 1 {
		t.Errorf("preferences rows = %d, want 1", rows)
	}
}

func TestInvalidStoredValueFallsBack(t *testing.T) {
	s := NewStore(t.Context(), &MemoryPersister{Value: "neon"})
	if s.Get() != Light {
		t.Errorf("got %q, want light", s.Get())
	}
}

func TestPersistenceFailuresAreSilent(t *testing.T) {
	p := &failingPersister{loadErr: errors.New("disk gone"), saveErr: errors.New("read-only")}
	s := NewStore(t.Context(), p)
	if s.Get() != Light {
		t.Fatalf("load failure should default to light, got %q", s.Get())
	}

	if got := s.Toggle(); got != Dark {
		t.Errorf("Toggle() = %q, want dark", got)
	}
	if s.Get() != Dark {
		t.Errorf("in-memory mode should change despite save failure")
	}
	if p.saves != 1 {
		t.Errorf("expected one save attempt, got %d", p.saves)
	}
}

func TestSubscribe(t *testing.T) {
	s := NewStore(t.Context(), nil)

	var seen []Mode
	unsubscribe := s.Subscribe(func(m Mode) { seen = append(seen, m) })

	s.Toggle()
	s.Toggle()
	s.Set(Light) // no change, no notification
	unsubscribe()
	unsubscribe()
	s.Toggle()

	if len(seen) != 2 || seen[0] != Dark || seen[1] != Light {
		t.Errorf("seen = %v, want [dark light]", seen)
	}
	if s.Subscribers() != 0 {
		t.Errorf("Subscribers() = %d, want 0", s.Subscribers())
	}
}

func TestSetIgnoresInvalidMode(t *testing.T) {
	p := &MemoryPersister{}
	s := NewStore(t.Context(), p)
	s.Set("sepia")
	if s.Get() != Light || p.Value != "" {
		t.Errorf("invalid mode should be ignored, got %q (persisted %q)", s.Get(), p.Value)
	}
}

func TestClosedStoreIgnoresChanges(t *testing.T) {
	s := NewStore(t.Context(), nil)
	calls := 0
	s.Subscribe(func(Mode) { calls++ })
	s.Close()
	s.Toggle()
	if s.Get() != Light || calls != 0 {
		t.Errorf("closed store changed: mode=%q calls=%d", s.Get(), calls)
	}
}

func TestRootClass(t *testing.T) {
	if RootClass(Dark) != "dark" || RootClass(Light) != "light" {
		t.Errorf("unexpected root classes: %q %q", RootClass(Dark), RootClass(Light))
	}
}

func TestRegistrySharesStorePerVisitor(t *testing.T) {
	r := NewRegistry(nil)
	a, releaseA := r.Store(t.Context(), "v1")
	b, releaseB := r.Store(t.Context(), "v1")
	c, releaseC := r.Store(t.Context(), "v2")

	if a != b {
		t.Error("same visitor should share a store")
	}
	if a == c {
		t.Error("different visitors should not share a store")
	}

	// Two tabs: a toggle in one is observed by the other.
	var otherTab Mode
	unsub := b.Subscribe(func(m Mode) { otherTab = m })
	a.Toggle()
	if otherTab != Dark {
		t.Errorf("other tab saw %q, want dark", otherTab)
	}
	unsub()

	releaseA()
	releaseA()
	if r.Len() != 2 {
		t.Errorf("store still held by another caller must stay cached, len=%d", r.Len())
	}
	releaseB()
	if r.Len() != 1 {
		t.Errorf("expected release, len=%d", r.Len())
	}

	r.Close()
	releaseC()
	if r.Len() != 0 {
		t.Errorf("Close should drop all stores, len=%d", r.Len())
	}
}

func TestReleasedHolderDoesNotCloseSharedStore(t *testing.T) {
	r := NewRegistry(nil)
	_, releaseA := r.Store(t.Context(), "v")
	b, releaseB := r.Store(t.Context(), "v")
	defer releaseB()

	releaseA()
	if got := b.Toggle(); got != Dark {
		t.Errorf("Toggle returned %q, want dark", got)
	}
	if got := b.Get(); got != Dark {
		t.Errorf("Get = %q after toggle, want dark", got)
	}

	c, releaseC := r.Store(t.Context(), "v")
	defer releaseC()
	if c != b {
		t.Error("visitor should still have a single store")
	}
}

func TestToggleOnClosedStoreReportsActualMode(t *testing.T) {
	s := NewStore(t.Context(), nil)
	s.Close()
	if got := s.Toggle(); got != Light {
		t.Errorf("Toggle on closed store returned %q, want light", got)
	}
}

func TestConcurrentTogglesPersistInOrder(t *testing.T) {
	p := &MemoryPersister{}
	s := NewStore(t.Context(), p)

	entered := make(chan struct{})
	unblock := make(chan struct{})
	var once sync.Once
	s.Subscribe(func(Mode) {
		once.Do(func() {
			close(entered)
			<-unblock
		})
	})

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		s.Toggle()
	}()
	<-entered
	go func() {
		defer wg.Done()
		s.Toggle()
	}()
	// Give the second toggle a chance to run ahead if it could.
	time.Sleep(20 * time.Millisecond)
	close(unblock)
	wg.Wait()

	if s.Get() != Light {
		t.Errorf("two toggles should return to light, got %q", s.Get())
	}
	if p.Value != string(s.Get()) {
		t.Errorf("in-memory=%s persisted=%s", s.Get(), p.Value)
	}
}

func TestManyConcurrentTogglesKeepParity(t *testing.T) {
	p := &MemoryPersister{}
	s := NewStore(t.Context(), p)

	const n = 51
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			s.Toggle()
		}()
	}
	wg.Wait()

	if s.Get() != Dark {
		t.Errorf("%d toggles from light should end dark, got %q", n, s.Get())
	}
	if p.Value != string(Dark) {
		t.Errorf("persisted %q, want dark", p.Value)
	}
}
