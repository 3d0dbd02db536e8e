package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestCounters(t *testing.T) {
	m := New()
	m.PageRendered("home", "200")
	m.PageRendered("home", "200")
	m.LiveEvent("tab.select", "ok")
	m.SessionOpened()
	m.SessionOpened()
	m.SessionClosed()
	m.ThemeToggled("dark", "live")

	if got := testutil.ToFloat64(m.pageRenders.WithLabelValues("home", "200")); got != 2 {
		t.Errorf("page renders = %v, want 2", got)
	}
	if got := testutil.ToFloat64(m.liveSessions); got != 1 {
		t.Errorf("live sessions = %v, want 1", got)
	}
	if got := testutil.ToFloat64(m.themeToggles.WithLabelValues("dark", "live")); got != 1 {
		t.Errorf("theme toggles = %v, want 1", got)
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics
	m.PageRendered("home", "200")
	m.LiveEvent("mount", "ok")
	m.SessionOpened()
	m.SessionClosed()
	m.ThemeToggled("light", "form")
	m.FileExported()
}

func TestHandler(t *testing.T) {
	m := New()
	m.LiveEvent("mount", "ok")

	w := httptest.NewRecorder()
	m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), `gyansetu_live_events_total{status="ok",type="mount"} 1`) {
		t.Errorf("body missing live event counter:\n%s", w.Body.String())
	}
}
