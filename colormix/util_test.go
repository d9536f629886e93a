package colormix

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

var approx = cmpopts.EquateApprox(0, 1e-12)

func mustColors(t *testing.T, f Func, ts ...float64) []RGBA {
	t.Helper()
	cs, err := f.Colors(ts)
	if err != nil {
		t.Fatalf("Colors(%v): %s", ts, err)
	}
	return cs
}
