package math

import (
	stdmath "math"
	"math/rand/v2"
	"testing"
)

func TestDecomposeComposeRoundTrip64(t *testing.T) {
	values := []float64{
		0, stdmath.Copysign(0, -1), 1, -1, 0.1, stdmath.Pi,
		stdmath.SmallestNonzeroFloat64, -stdmath.SmallestNonzeroFloat64,
		0x1p-1022, stdmath.Float64frombits(0x000fffffffffffff), stdmath.MaxFloat64,
		stdmath.Inf(1), stdmath.Inf(-1),
		stdmath.Float64frombits(0x7ff8000000000001),
		stdmath.Float64frombits(0xfff0000000000fff),
	}
	rng := rand.New(rand.NewPCG(1, 2))
	for range 10000 {
		values = append(values, stdmath.Float64frombits(rng.Uint64()))
	}
	for _, x := range values {
		s, e, m := Decompose(x)
		got := Compose[float64](s, e, m)
		if stdmath.Float64bits(got) != stdmath.Float64bits(x) {
			t.Fatalf("Compose(Decompose(%#x)) = %#x", stdmath.Float64bits(x), stdmath.Float64bits(got))
		}
	}
}

func TestDecomposeComposeRoundTrip32(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 10000 {
		b := rng.Uint32()
		x := stdmath.Float32frombits(b)
		s, e, m := Decompose(x)
		got := Compose[float32](s, e, m)
		if stdmath.Float32bits(got) != b {
			t.Fatalf("Compose(Decompose(%#x)) = %#x", b, stdmath.Float32bits(got))
		}
	}
}

func TestDecomposeFields(t *testing.T) {
	s, e, m := Decompose(-1.5)
	if s != 1 || e != 1023 || m != 1<<51 {
		t.Errorf("Decompose(-1.5) = (%d, %d, %#x), want (1, 1023, %#x)", s, e, m, uint64(1)<<51)
	}
	s, e, m = Decompose(float32(0.75))
	if s != 0 || e != 126 || m != 1<<22 {
		t.Errorf("Decompose(float32(0.75)) = (%d, %d, %#x), want (0, 126, %#x)", s, e, m, 1<<22)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want Category
	}{
		{"zero", 0, CategoryZero},
		{"negative zero", stdmath.Copysign(0, -1), CategoryZero},
		{"subnormal", stdmath.SmallestNonzeroFloat64, CategorySubnormal},
		{"largest subnormal", stdmath.Float64frombits(0x000fffffffffffff), CategorySubnormal},
		{"smallest normal", 0x1p-1022, CategoryNormal},
		{"one", 1, CategoryNormal},
		{"max", stdmath.MaxFloat64, CategoryNormal},
		{"+inf", stdmath.Inf(1), CategoryInfinite},
		{"-inf", stdmath.Inf(-1), CategoryInfinite},
		{"nan", stdmath.NaN(), CategoryNaN},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.x); got != tt.want {
				t.Errorf("Classify(%v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}

	tests32 := []struct {
		x    float32
		want Category
	}{
		{0, CategoryZero},
		{1e-40, CategorySubnormal},
		{stdmath.Float32frombits(0x007fffff), CategorySubnormal},
		{0x1p-126, CategoryNormal},
		{stdmath.MaxFloat32, CategoryNormal},
		{float32(stdmath.Inf(1)), CategoryInfinite},
		{float32(stdmath.NaN()), CategoryNaN},
	}
	for _, tt := range tests32 {
		if got := Classify(tt.x); got != tt.want {
			t.Errorf("Classify(float32(%v)) = %v, want %v", tt.x, got, tt.want)
		}
	}
	if CategoryNaN.String() != "nan" || Category(42).String() != "unknown" {
		t.Errorf("Category.String: got %q and %q", CategoryNaN, Category(42))
	}
}

func TestFrexp(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	values := []float64{0, 1, -1, 0.5, 3, stdmath.SmallestNonzeroFloat64, 0x1.8p-1070, stdmath.MaxFloat64, stdmath.Inf(-1)}
	for range 5000 {
		values = append(values, stdmath.Float64frombits(rng.Uint64()&^(0x7ff<<52)|uint64(rng.IntN(2047))<<52))
	}
	for _, x := range values {
		frac, exp := Frexp(x)
		wantFrac, wantExp := stdmath.Frexp(x)
		if stdmath.Float64bits(frac) != stdmath.Float64bits(wantFrac) || exp != wantExp {
			t.Fatalf("Frexp(%g) = (%g, %d), want (%g, %d)", x, frac, exp, wantFrac, wantExp)
		}

		f32 := float32(x)
		frac32, exp32 := Frexp(f32)
		wf, we := stdmath.Frexp(float64(f32))
		if !stdmath.IsInf(float64(f32), 0) && (float64(frac32) != wf || exp32 != we) {
			t.Fatalf("Frexp(float32(%g)) = (%g, %d), want (%g, %d)", f32, frac32, exp32, wf, we)
		}
	}
	if f, e := Frexp(stdmath.NaN()); !stdmath.IsNaN(f) || e != 0 {
		t.Errorf("Frexp(NaN) = (%g, %d), want (NaN, 0)", f, e)
	}
}

func TestLdexp(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 8))
	for range 20000 {
		frac := rng.Float64()*4 - 2
		exp := rng.IntN(2300) - 1150
		got := Ldexp(frac, exp)
		want := stdmath.Ldexp(frac, exp)
		if stdmath.Float64bits(got) != stdmath.Float64bits(want) {
			t.Fatalf("Ldexp(%g, %d) = %g, want %g", frac, exp, got, want)
		}

		f32 := float32(frac)
		e32 := rng.IntN(320) - 160
		got32 := Ldexp(f32, e32)
		want32 := float32(stdmath.Ldexp(float64(f32), e32))
		if stdmath.Float32bits(got32) != stdmath.Float32bits(want32) {
			t.Fatalf("Ldexp(float32(%g), %d) = %g, want %g", f32, e32, got32, want32)
		}
	}
}

func TestLdexpClamping(t *testing.T) {
	tests := []struct {
		name string
		frac float64
		exp  int
		want float64
	}{
		{"overflow", 1.5, 1024, stdmath.Inf(1)},
		{"negative overflow", -1, 5000, stdmath.Inf(-1)},
		{"underflow", 1, -1100, 0},
		{"negative underflow", -1, -1100, stdmath.Copysign(0, -1)},
		{"smallest subnormal", 1, -1074, stdmath.SmallestNonzeroFloat64},
		{"half smallest subnormal rounds to even", 1, -1075, 0},
		{"above half rounds up", 1.5, -1075, stdmath.SmallestNonzeroFloat64},
		{"subnormal input", stdmath.SmallestNonzeroFloat64, 1074, 1},
		{"zero", 0, 100, 0},
		{"inf", stdmath.Inf(-1), -3, stdmath.Inf(-1)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Ldexp(tt.frac, tt.exp)
			if stdmath.Float64bits(got) != stdmath.Float64bits(tt.want) {
				t.Errorf("Ldexp(%g, %d) = %g, want %g", tt.frac, tt.exp, got, tt.want)
			}
		})
	}
	if got := Ldexp(stdmath.NaN(), 3); !stdmath.IsNaN(got) {
		t.Errorf("Ldexp(NaN, 3) = %g, want NaN", got)
	}
}
