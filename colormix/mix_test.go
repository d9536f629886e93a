package colormix

import (
	"math"
	"testing"
)

func TestCosine2(t *testing.T) {
	purple := RGBA{R: 0.5, B: 0.5, A: 1}
	pairs := [][2]Spec{
		{Tuple(1, 0, 0), Tuple(0, 0, 1)},
		{Named("r"), Named("b")},
		{Named("red"), Named("blue")},
		{Named("#ff0000"), Named("#0000ff")},
		{Named("r"), Tuple(0, 0, 1)},
	}
	for _, p := range pairs {
		f, err := Cosine2(p[0], p[1], 0, 1, Normal)
		if err != nil {
			t.Fatalf("Cosine2(%v, %v): %s", p[0], p[1], err)
		}
		diff(t, []RGBA{purple}, mustColors(t, f, 0.5), approx)
	}
}

func TestCosine2Alpha(t *testing.T) {
	f, err := Cosine2(Tuple(1, 0, 0, 0), Tuple(0, 0, 1, 1), 0, 1, Normal)
	if err != nil {
		t.Fatal(err)
	}
	want := []RGBA{
		{R: 1},
		{R: 0.5, B: 0.5, A: 0.5},
		{B: 1, A: 1},
	}
	diff(t, want, mustColors(t, f, 0, 0.5, 1), approx)

	f, err = Cosine2(Tuple(1, 0, 0, 0), Tuple(0, 0, 1, 1), 0, 1, Linear)
	if err != nil {
		t.Fatal(err)
	}
	s := math.Sqrt2 / 2
	want = []RGBA{
		{R: 1},
		{R: s, B: s, A: s},
		{B: 1, A: 1},
	}
	diff(t, want, mustColors(t, f, 0, 0.5, 1), approx)
}

func TestMixBoundaries(t *testing.T) {
	for _, space := range []Space{Normal, Linear} {
		f, err := Mix(Named("gold"), Named("steelblue"), Normalize(-1, 3), space)
		if err != nil {
			t.Fatal(err)
		}
		gold, _ := Parse("gold")
		steel, _ := Parse("steelblue")
		diff(t, []RGBA{gold, steel}, mustColors(t, f, -1, 3), approx)
	}
}

func TestMixUnbounded(t *testing.T) {
	f, err := Mix(Constant(Black), Constant(RGB(0.5, 0.5, 0.5)), Normalize(0, 1), Normal)
	if err != nil {
		t.Fatal(err)
	}
	// weights outside of [0, 1] extrapolate
	diff(t, []RGBA{RGB(1, 1, 1)}, mustColors(t, f, 2), approx)

	f, err = MixBounded(Constant(Black), Constant(RGB(0.5, 0.5, 0.5)), Normalize(0, 1), Normal)
	if err != nil {
		t.Fatal(err)
	}
	diff(t, []RGBA{RGB(0.5, 0.5, 0.5), Black}, mustColors(t, f, 2, -1), approx)
}

func TestMixBoundedLeavesParametersAlone(t *testing.T) {
	identity := Weight(func(ts []float64) []float64 { return ts })
	f, err := MixBounded(Constant(Black), Constant(White), identity, Normal)
	if err != nil {
		t.Fatal(err)
	}
	ts := []float64{-1, 0.5, 2}
	mustColors(t, f, ts...)
	diff(t, []float64{-1, 0.5, 2}, ts)
}

func TestNestedMix(t *testing.T) {
	inner, err := Cosine2(Named("r"), Named("b"), 0, 1, Normal)
	if err != nil {
		t.Fatal(err)
	}
	outer, err := Mix(Function(inner), Constant(White), ConstWeight(0.5), Normal)
	if err != nil {
		t.Fatal(err)
	}
	want := []RGBA{RGB(1, 0.5, 0.5), RGB(0.5, 0.5, 1)}
	diff(t, want, mustColors(t, outer, 0, 1), approx)
}

func TestMixInvalid(t *testing.T) {
	if _, err := Mix(Named("r"), Named("not a color"), ConstWeight(0), Normal); err == nil {
		t.Error("expected error for invalid color")
	}
	if _, err := Mix(Named("r"), Named("b"), nil, Normal); err == nil {
		t.Error("expected error for nil weight")
	}
}

func TestSpaceString(t *testing.T) {
	diff(t, "linear", Linear.String())
	diff(t, "normal", Normal.String())
	diff(t, "Space(7)", Space(7).String())
}
