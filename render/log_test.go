package render

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
)

func TestLogging(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	r := &Renderer{Dir: t.TempDir()}
	if _, err := r.Render(context.Background(), smallOptions()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"rendered partial", "rendered Taylor bundle", "tangents=20"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output doesn't contain %q:\n%s", want, out)
		}
	}

	SetLogger(nil)
	buf.Reset()
	if _, err := r.Render(context.Background(), smallOptions()); err != nil {
		t.Fatal(err)
	}
	if buf.Len() != 0 {
		t.Errorf("got log output after disabling logging:\n%s", buf.String())
	}
}
