package diagnostics_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/rs/zerolog"

	"github.com/goliatone/go-formnote/pkg/diagnostics"
)

func TestFanoutAndCollector(t *testing.T) {
	var first, second diagnostics.Collector
	sink := diagnostics.Fanout(&first, nil, &second)

	sink.Notify("one")
	sink.Notify("two")

	want := []string{"one", "two"}
	if diff := cmp.Diff(want, first.Messages()); diff != "" {
		t.Fatalf("first collector mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, second.Messages()); diff != "" {
		t.Fatalf("second collector mismatch (-want +got):\n%s", diff)
	}

	first.Reset()
	if got := first.Messages(); len(got) != 0 {
		t.Fatalf("expected reset collector to be empty, got %v", got)
	}
}

func TestLogSink(t *testing.T) {
	var buf bytes.Buffer
	sink := diagnostics.NewLogSink(zerolog.New(&buf))

	sink.Notify("schema conflict")

	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) || !strings.Contains(out, "schema conflict") {
		t.Fatalf("unexpected log output: %s", out)
	}
}
