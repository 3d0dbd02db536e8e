package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestCIReporter(t *testing.T) {
	var buf bytes.Buffer
	r := &CIReporter{Label: "Exporting", Out: &buf}
	r.Start(2)
	r.Update(1, "index.html")
	r.Update(2, "about/index.html")
	r.Finish()

	out := buf.String()
	for _, want := range []string{"Exporting 2 files", "[1/2] index.html", "[2/2] about/index.html", "Exporting complete"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNewReporterCI(t *testing.T) {
	t.Setenv("CI", "true")
	if _, ok := NewReporter("Exporting").(*CIReporter); !ok {
		t.Error("expected CIReporter when CI is set")
	}
}
