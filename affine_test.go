package taylor

import (
	"testing"
)

func assertNear(t *testing.T, p0 Point, p1 Point, epsilon float64) {
	t.Helper()
	if d := p1.Sub(p0).Hypot(); d > epsilon {
		t.Fatalf("got %s, expected %s", p0, p1)
	}
}

func TestAffineBasic(t *testing.T) {
	const epsilon = 1e-9
	p := Pt(3, 4)

	assertNear(t, p.Transform(Identity), p, epsilon)
	assertNear(t, p.Transform(Scale(2, 2)), Pt(6, 8), epsilon)
	assertNear(t, p.Transform(FlipY), Pt(3, -4), epsilon)
	assertNear(t, p.Transform(Translate(Vec(5, 6))), Pt(8, 10), epsilon)
	assertNear(t, p.Transform(Identity.ThenScale(2, 3).ThenTranslate(Vec(1, 1))), Pt(7, 13), epsilon)
	assertNear(t, p.Transform(Identity.ThenScale(2, 3).PreTranslate(Vec(1, 1))), Pt(8, 15), epsilon)
}

func TestAffineMul(t *testing.T) {
	const epsilon = 1e-9
	a1 := Affine{1, 2, 3, 4, 5, 6}
	a2 := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(a2).Transform(a1), px.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, py.Transform(a2).Transform(a1), py.Transform(a1.Mul(a2)), epsilon)
	assertNear(t, pxy.Transform(a2).Transform(a1), pxy.Transform(a1.Mul(a2)), epsilon)
}

func TestAffineInvert(t *testing.T) {
	const epsilon = 1e-9
	a := Affine{0.1, 1.2, 2.3, 3.4, 4.5, 5.6}
	aInv := a.Invert()

	px := Pt(1, 0)
	py := Pt(0, 1)
	pxy := Pt(1, 1)

	assertNear(t, px.Transform(aInv).Transform(a), px, epsilon)
	assertNear(t, py.Transform(aInv).Transform(a), py, epsilon)
	assertNear(t, pxy.Transform(aInv).Transform(a), pxy, epsilon)
	assertNear(t, px.Transform(a).Transform(aInv), px, epsilon)
	assertNear(t, py.Transform(a).Transform(aInv), py, epsilon)
	assertNear(t, pxy.Transform(a).Transform(aInv), pxy, epsilon)

	if !Scale(0, 1).Invert().IsNaN() {
		t.Error("inverse of a singular transform isn't NaN")
	}
}

func TestMapRect(t *testing.T) {
	const epsilon = 1e-9
	src := Rect{1, 1, 3, 5}
	dst := Rect{0, 0, 100, 50}
	aff := MapRect(src, dst)
	assertNear(t, Pt(1, 1).Transform(aff), Pt(0, 0), epsilon)
	assertNear(t, Pt(3, 5).Transform(aff), Pt(100, 50), epsilon)
	assertNear(t, Pt(2, 3).Transform(aff), Pt(50, 25), epsilon)
}

func TestWindowToPixels(t *testing.T) {
	const epsilon = 1e-9
	aff := WindowToPixels(Window(-16, 16, -9, 9), Sz(480, 270))
	// y-up window, y-down pixels
	assertNear(t, Pt(-16, 9).Transform(aff), Pt(0, 0), epsilon)
	assertNear(t, Pt(16, -9).Transform(aff), Pt(480, 270), epsilon)
	assertNear(t, Pt(0, 0).Transform(aff), Pt(240, 135), epsilon)
	assertNear(t, Pt(1, 1).Transform(aff), Pt(255, 120), epsilon)
	if d := aff.Determinant(); d >= 0 {
		t.Errorf("got determinant %v, want a reflection", d)
	}
}
