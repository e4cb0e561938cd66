package math

import (
	stdmath "math"
	"math/rand/v2"
	"testing"
)

var (
	inf64    = stdmath.Inf(1)
	nan64    = stdmath.NaN()
	negZero  = stdmath.Copysign(0, -1)
	halfPi64 = stdmath.Pi / 2
)

// sameFloat reports whether a and b are both NaN or have identical bits, so
// that signed zeros are told apart.
func sameFloat(a, b float64) bool {
	if stdmath.IsNaN(a) || stdmath.IsNaN(b) {
		return stdmath.IsNaN(a) && stdmath.IsNaN(b)
	}
	return stdmath.Float64bits(a) == stdmath.Float64bits(b)
}

func TestSpecialCases(t *testing.T) {
	tests := []struct {
		name string
		fn   func(float64) float64
		in   float64
		want float64
	}{
		{"Exp2(0)", Exp2[float64], 0, 1},
		{"Exp2(1)", Exp2[float64], 1, 2},
		{"Exp2(-1)", Exp2[float64], -1, 0.5},
		{"Exp2(+Inf)", Exp2[float64], inf64, inf64},
		{"Exp2(-Inf)", Exp2[float64], -inf64, 0},
		{"Exp2(NaN)", Exp2[float64], nan64, nan64},
		{"Exp2(1024)", Exp2[float64], 1024, inf64},
		{"Exp2(-1074)", Exp2[float64], -1074, 5e-324},
		{"Exp2(-1076)", Exp2[float64], -1076, 0},
		{"Exp(0)", Exp[float64], 0, 1},
		{"Exp(+Inf)", Exp[float64], inf64, inf64},
		{"Exp(-Inf)", Exp[float64], -inf64, 0},
		{"Exp(NaN)", Exp[float64], nan64, nan64},
		{"Exp(710)", Exp[float64], 710, inf64},
		{"Exp(-746)", Exp[float64], -746, 0},
		{"Exp10(0)", Exp10[float64], 0, 1},
		{"Exp10(309)", Exp10[float64], 309, inf64},
		{"Exp10(-324)", Exp10[float64], -324, 0},
		{"Expm1(0)", Expm1[float64], 0, 0},
		{"Expm1(-0)", Expm1[float64], negZero, negZero},
		{"Expm1(+Inf)", Expm1[float64], inf64, inf64},
		{"Expm1(-Inf)", Expm1[float64], -inf64, -1},
		{"Expm1(NaN)", Expm1[float64], nan64, nan64},

		{"Log2(8)", Log2[float64], 8, 3},
		{"Log2(1)", Log2[float64], 1, 0},
		{"Log2(0.25)", Log2[float64], 0.25, -2},
		{"Log2(min subnormal)", Log2[float64], 5e-324, -1074},
		{"Log2(0)", Log2[float64], 0, -inf64},
		{"Log2(-0)", Log2[float64], negZero, -inf64},
		{"Log2(-1)", Log2[float64], -1, nan64},
		{"Log2(+Inf)", Log2[float64], inf64, inf64},
		{"Log2(NaN)", Log2[float64], nan64, nan64},
		{"Log(1)", Log[float64], 1, 0},
		{"Log(0)", Log[float64], 0, -inf64},
		{"Log(-Inf)", Log[float64], -inf64, nan64},
		{"Log10(1)", Log10[float64], 1, 0},
		{"Log10(+Inf)", Log10[float64], inf64, inf64},
		{"Log1p(0)", Log1p[float64], 0, 0},
		{"Log1p(-0)", Log1p[float64], negZero, negZero},
		{"Log1p(-1)", Log1p[float64], -1, -inf64},
		{"Log1p(-2)", Log1p[float64], -2, nan64},
		{"Log1p(+Inf)", Log1p[float64], inf64, inf64},
		{"Log1p(tiny)", Log1p[float64], 1e-300, 1e-300},

		{"Sin(0)", Sin[float64], 0, 0},
		{"Sin(-0)", Sin[float64], negZero, negZero},
		{"Sin(+Inf)", Sin[float64], inf64, nan64},
		{"Sin(NaN)", Sin[float64], nan64, nan64},
		{"Cos(0)", Cos[float64], 0, 1},
		{"Cos(-0)", Cos[float64], negZero, 1},
		{"Cos(-Inf)", Cos[float64], -inf64, nan64},
		{"Tan(0)", Tan[float64], 0, 0},
		{"Tan(-0)", Tan[float64], negZero, negZero},
		{"Tan(+Inf)", Tan[float64], inf64, nan64},

		{"Atan(0)", Atan[float64], 0, 0},
		{"Atan(-0)", Atan[float64], negZero, negZero},
		{"Atan(+Inf)", Atan[float64], inf64, halfPi64},
		{"Atan(-Inf)", Atan[float64], -inf64, -halfPi64},
		{"Atan(NaN)", Atan[float64], nan64, nan64},
		{"Asin(0)", Asin[float64], 0, 0},
		{"Asin(-0)", Asin[float64], negZero, negZero},
		{"Asin(1)", Asin[float64], 1, halfPi64},
		{"Asin(-1)", Asin[float64], -1, -halfPi64},
		{"Asin(1.5)", Asin[float64], 1.5, nan64},
		{"Acos(1)", Acos[float64], 1, 0},
		{"Acos(-1)", Acos[float64], -1, stdmath.Pi},
		{"Acos(-1.5)", Acos[float64], -1.5, nan64},

		{"Sinh(0)", Sinh[float64], 0, 0},
		{"Sinh(-0)", Sinh[float64], negZero, negZero},
		{"Sinh(-Inf)", Sinh[float64], -inf64, -inf64},
		{"Sinh(1000)", Sinh[float64], 1000, inf64},
		{"Cosh(0)", Cosh[float64], 0, 1},
		{"Cosh(-Inf)", Cosh[float64], -inf64, inf64},
		{"Cosh(NaN)", Cosh[float64], nan64, nan64},
		{"Tanh(-0)", Tanh[float64], negZero, negZero},
		{"Tanh(+Inf)", Tanh[float64], inf64, 1},
		{"Tanh(-Inf)", Tanh[float64], -inf64, -1},
		{"Tanh(50)", Tanh[float64], 50, 1},
		{"Asinh(-0)", Asinh[float64], negZero, negZero},
		{"Asinh(-Inf)", Asinh[float64], -inf64, -inf64},
		{"Acosh(1)", Acosh[float64], 1, 0},
		{"Acosh(0.5)", Acosh[float64], 0.5, nan64},
		{"Acosh(+Inf)", Acosh[float64], inf64, inf64},
		{"Atanh(1)", Atanh[float64], 1, inf64},
		{"Atanh(-1)", Atanh[float64], -1, -inf64},
		{"Atanh(-0)", Atanh[float64], negZero, negZero},
		{"Atanh(2)", Atanh[float64], 2, nan64},

		{"Cbrt(0)", Cbrt[float64], 0, 0},
		{"Cbrt(-0)", Cbrt[float64], negZero, negZero},
		{"Cbrt(8)", Cbrt[float64], 8, 2},
		{"Cbrt(-1000)", Cbrt[float64], -1000, -10},
		{"Cbrt(+Inf)", Cbrt[float64], inf64, inf64},
		{"Cbrt(NaN)", Cbrt[float64], nan64, nan64},

		{"Erf(0)", Erf[float64], 0, 0},
		{"Erf(-0)", Erf[float64], negZero, negZero},
		{"Erf(+Inf)", Erf[float64], inf64, 1},
		{"Erf(-Inf)", Erf[float64], -inf64, -1},
		{"Erf(30)", Erf[float64], 30, 1},
		{"Erfc(0)", Erfc[float64], 0, 1},
		{"Erfc(+Inf)", Erfc[float64], inf64, 0},
		{"Erfc(-Inf)", Erfc[float64], -inf64, 2},
		{"Erfc(-30)", Erfc[float64], -30, 2},
		{"Erfc(NaN)", Erfc[float64], nan64, nan64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); !sameFloat(got, tt.want) {
				t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestSpecialCasesFloat32(t *testing.T) {
	inf32 := float32(stdmath.Inf(1))
	tests := []struct {
		name string
		got  float32
		want float32
	}{
		{"Exp2(0)", Exp2[float32](0), 1},
		{"Exp2(1)", Exp2[float32](1), 2},
		{"Exp2(128)", Exp2[float32](128), inf32},
		{"Exp2(-149)", Exp2[float32](-149), 0x1p-149},
		{"Exp2(-151)", Exp2[float32](-151), 0},
		{"Exp(89)", Exp[float32](89), inf32},
		{"Exp(-104)", Exp[float32](-104), 0},
		{"Log2(8)", Log2[float32](8), 3},
		{"Log2(0)", Log2[float32](0), -inf32},
		{"Cbrt(27)", Cbrt[float32](27), 3},
		{"Cbrt(-8)", Cbrt[float32](-8), -2},
		{"Sin(0)", Sin[float32](0), 0},
		{"Cos(0)", Cos[float32](0), 1},
		{"Tanh(10)", Tanh[float32](10), 1},
		{"Erfc(10)", Erfc[float32](10), 0},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestConcreteValues(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
		ulps float64
	}{
		{"Atan(1)", Atan(1.0), stdmath.Pi / 4, 1},
		{"Cbrt(27)", Cbrt(27.0), 3, 1},
		{"Exp10(2)", Exp10(2.0), 100, 1},
		{"Log10(1000)", Log10(1000.0), 3, 1},
		{"Pow(2, 10)", Pow(2.0, 10), 1024, 0},
		{"Pow(10, 2)", Pow(10.0, 2), 100, 2},
		{"Pow(2, 0.5)", Pow(2.0, 0.5), stdmath.Sqrt2, 0},
		{"Atan2(1, -1)", Atan2(1.0, -1), 3 * stdmath.Pi / 4, 2},
		{"Sin(pi/6)", Sin(stdmath.Pi / 6), 0.5, 2},
		{"Cos(pi/3)", Cos(stdmath.Pi / 3), 0.5, 2},
		{"Erf(0.5)", Erf(0.5), stdmath.Erf(0.5), 2},
		{"Erfc(8)", Erfc(8.0), stdmath.Erfc(8), 4},
	}
	for _, tt := range tests {
		if e := ulpError64(tt.got, tt.want); e > tt.ulps {
			t.Errorf("%s = %v, want %v (%.1f ULP)", tt.name, tt.got, tt.want, e)
		}
	}
}

func TestAtan2SpecialCases(t *testing.T) {
	vals := []float64{negZero, 0, -1, 1, -inf64, inf64, nan64, -2.5, 3}
	for _, y := range vals {
		for _, x := range vals {
			got, want := Atan2(y, x), stdmath.Atan2(y, x)
			if stdmath.IsNaN(want) || stdmath.IsInf(x, 0) || stdmath.IsInf(y, 0) || x == 0 || y == 0 {
				if !sameFloat(got, want) {
					t.Errorf("Atan2(%v, %v) = %v, want %v", y, x, got, want)
				}
				continue
			}
			if e := ulpError64(got, want); e > 3 {
				t.Errorf("Atan2(%v, %v) = %v, want %v (%.1f ULP)", y, x, got, want, e)
			}
		}
	}
}

func TestPowSpecialCases(t *testing.T) {
	vals := []float64{negZero, 0, -1, 1, -0.5, 0.5, -2, 2, -3, 3, -2.5, 2.5, -inf64, inf64, nan64}
	for _, x := range vals {
		for _, y := range vals {
			got, want := Pow(x, y), stdmath.Pow(x, y)
			exact := stdmath.IsNaN(want) || stdmath.IsInf(want, 0) || want == 0 ||
				stdmath.IsInf(x, 0) || stdmath.IsInf(y, 0) || x == 0 || y == 0
			if exact {
				if !sameFloat(got, want) {
					t.Errorf("Pow(%v, %v) = %v, want %v", x, y, got, want)
				}
				continue
			}
			if e := ulpError64(got, want); e > 4 {
				t.Errorf("Pow(%v, %v) = %v, want %v (%.1f ULP)", x, y, got, want, e)
			}
		}
	}

	// Odd integer exponents keep the sign of a negative base.
	if got := Pow(-2.0, 3); got != -8 {
		t.Errorf("Pow(-2, 3) = %v, want -8", got)
	}
	if got := Pow(float32(-2), 2); got != 4 {
		t.Errorf("Pow(float32 -2, 2) = %v, want 4", got)
	}
	// Results beyond the range saturate.
	if got := Pow(10.0, 400); !stdmath.IsInf(got, 1) {
		t.Errorf("Pow(10, 400) = %v, want +Inf", got)
	}
	if got := Pow(10.0, -400); got != 0 {
		t.Errorf("Pow(10, -400) = %v, want 0", got)
	}
}

func TestErfcClamp(t *testing.T) {
	if got := Erfc(26.7); got != 0 {
		t.Errorf("Erfc(26.7) = %v, want 0 above the clamp", got)
	}
	if got := Erfc(26.6); got <= 0 {
		t.Errorf("Erfc(26.6) = %v, want a positive subnormal", got)
	}
	if got := Erfc(float32(9.5)); got != 0 {
		t.Errorf("Erfc(float32 9.5) = %v, want 0 above the clamp", got)
	}
	if got := Erfc(float32(9.4)); got <= 0 {
		t.Errorf("Erfc(float32 9.4) = %v, want a positive value", got)
	}
}

func TestKernelProperties(t *testing.T) {
	rng := rand.New(rand.NewPCG(17, 18))
	for range 2000 {
		x := rng.Float64()*20 - 10

		// Odd and even symmetry is exact.
		for _, f := range []struct {
			name string
			fn   func(float64) float64
			odd  bool
		}{
			{"Sin", Sin[float64], true},
			{"Cos", Cos[float64], false},
			{"Tan", Tan[float64], true},
			{"Atan", Atan[float64], true},
			{"Sinh", Sinh[float64], true},
			{"Cosh", Cosh[float64], false},
			{"Tanh", Tanh[float64], true},
			{"Asinh", Asinh[float64], true},
			{"Cbrt", Cbrt[float64], true},
			{"Erf", Erf[float64], true},
		} {
			want := f.fn(x)
			if f.odd {
				want = -want
			}
			if got := f.fn(-x); !sameFloat(got, want) {
				t.Fatalf("%s(-%v) = %v, symmetric value %v", f.name, x, got, want)
			}
		}

		// Bounded ranges.
		if s := Sin(x); s < -1 || s > 1 {
			t.Fatalf("Sin(%v) = %v out of [-1, 1]", x, s)
		}
		if th := Tanh(x); th < -1 || th > 1 {
			t.Fatalf("Tanh(%v) = %v out of [-1, 1]", x, th)
		}
		if e := Erf(x); e < -1 || e > 1 {
			t.Fatalf("Erf(%v) = %v out of [-1, 1]", x, e)
		}
		if c := Erfc(x); c < 0 || c > 2 {
			t.Fatalf("Erfc(%v) = %v out of [0, 2]", x, c)
		}

		// sin^2 + cos^2 stays close to 1.
		s, c := SinCos(x)
		if d := stdmath.Abs(s*s + c*c - 1); d > 4e-15 {
			t.Fatalf("SinCos(%v): sin^2+cos^2-1 = %g", x, d)
		}

		// Exp and Log are near inverses.
		if y := Log(Exp(x)); stdmath.Abs(y-x) > 1e-14 {
			t.Fatalf("Log(Exp(%v)) = %v", x, y)
		}
		if y := Log2(Exp2(x)); stdmath.Abs(y-x) > 1e-14 {
			t.Fatalf("Log2(Exp2(%v)) = %v", x, y)
		}
		if p := rng.Float64()*100 + 0.01; stdmath.Abs(Exp2(Log2(p))-p) > 1e-14*p {
			t.Fatalf("Exp2(Log2(%v)) = %v", p, Exp2(Log2(p)))
		}

		// Cbrt inverts cubing and keeps the sign.
		if r := Cbrt(x); stdmath.Abs(r*r*r-x) > 1e-14*stdmath.Abs(x) || (x != 0 && stdmath.Signbit(r) != stdmath.Signbit(x)) {
			t.Fatalf("Cbrt(%v) = %v", x, r)
		}

		// Erf and Erfc are complements.
		if sum := Erf(x) + Erfc(x); stdmath.Abs(sum-1) > 1e-14 {
			t.Fatalf("Erf(%v) + Erfc(%v) = %v", x, x, sum)
		}
	}
}
