package taylor

import (
	"errors"
	"math"
	"testing"
)

func TestTangents(t *testing.T) {
	c := unitCircle()
	as := Linspace(0, 2*math.Pi, 16, false)
	offsets := Linspace(-2, 2, 9, true)
	rows, err := c.Tangents(as, 2, offsets)
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != len(as) {
		t.Fatalf("got %d rows, want %d", len(rows), len(as))
	}
	for i, a := range as {
		tc, err := c.Taylor(a, 2)
		if err != nil {
			t.Fatal(err)
		}
		ts := make([]float64, len(offsets))
		for j, off := range offsets {
			ts[j] = a + off
		}
		diff(t, tc.Evaluate(ts), rows[i])
	}
}

func TestTangentsTouchCurve(t *testing.T) {
	c := unitCircle()
	as := []float64{0.1, 1, 4}
	rows, err := c.Tangents(as, 1, []float64{0})
	if err != nil {
		t.Fatal(err)
	}
	for i, a := range as {
		diff(t, c.Eval(a), rows[i][0], approx(1e-12))
	}
}

func TestTangentsEmpty(t *testing.T) {
	rows, err := unitCircle().Tangents(nil, 3, []float64{0, 1})
	if err != nil {
		t.Fatal(err)
	}
	diff(t, [][]Point{}, rows)

	if _, err := unitCircle().Tangents([]float64{0}, -1, nil); !errors.Is(err, ErrNegativeDegree) {
		t.Errorf("got error %v, want ErrNegativeDegree", err)
	}
}
