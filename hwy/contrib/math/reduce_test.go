package math

import (
	stdmath "math"
	"math/rand/v2"
	"testing"
)

func TestReduceExp2(t *testing.T) {
	tests := []struct {
		x        float64
		wantCore float64
		wantTag  int
	}{
		{0, 0, 0},
		{1, 0, 1},
		{2.5, 0.5, 2},
		{-0.25, 0.75, -1},
		{-3, 0, -3},
		{1023.75, 0.75, 1023},
	}
	for _, tt := range tests {
		r := ReduceExp2(tt.x)
		if r.Core != tt.wantCore || r.Tag != tt.wantTag {
			t.Errorf("ReduceExp2(%v) = {%v, %d}, want {%v, %d}", tt.x, r.Core, r.Tag, tt.wantCore, tt.wantTag)
		}
	}
}

func TestReduceLog2(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 4))
	for range 2000 {
		x := stdmath.Exp(rng.Float64()*1400 - 700)
		r := ReduceLog2(x)
		m := r.Core + 1
		if m < stdmath.Sqrt2/2 || m >= stdmath.Sqrt2 {
			t.Fatalf("ReduceLog2(%v): mantissa %v outside [sqrt(0.5), sqrt(2))", x, m)
		}
		if back := stdmath.Ldexp(m, r.Tag); back != x {
			t.Fatalf("ReduceLog2(%v): m*2^e = %v", x, back)
		}
	}

	// Subnormals are normalized first.
	r := ReduceLog2(5e-324)
	if r.Core != 0 || r.Tag != -1074 {
		t.Errorf("ReduceLog2(min subnormal) = {%v, %d}, want {0, -1074}", r.Core, r.Tag)
	}
	r32 := ReduceLog2(float32(3))
	if r32.Tag != 2 || r32.Core != -0.25 {
		t.Errorf("ReduceLog2(float32 3) = {%v, %d}, want {-0.25, 2}", r32.Core, r32.Tag)
	}
}

func TestReduceTrig(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 6))
	for range 5000 {
		x := (rng.Float64()*2 - 1) * 1e4
		r := ReduceTrig(x)
		if r.Tag&1 != 0 || r.Tag < 0 || r.Tag > 6 {
			t.Fatalf("ReduceTrig(%v): tag %d is not an even band", x, r.Tag)
		}
		if stdmath.Abs(r.Core) > stdmath.Pi/4+1e-12 {
			t.Fatalf("ReduceTrig(%v): core %v outside [-pi/4, pi/4]", x, r.Core)
		}
		// The band and residual must reproduce sin(|x|).
		var want float64
		s, c := stdmath.Sincos(r.Core)
		switch r.Tag {
		case 0:
			want = s
		case 2:
			want = c
		case 4:
			want = -s
		case 6:
			want = -c
		}
		if got := stdmath.Sin(stdmath.Abs(x)); stdmath.Abs(got-want) > 1e-12 {
			t.Fatalf("ReduceTrig(%v): band %d residual %v gives %v, want %v", x, r.Tag, r.Core, want, got)
		}
	}
}

func TestReduceAtan(t *testing.T) {
	if r := ReduceAtan(-0.5); r.Core != 0.5 || r.Tag != 0 {
		t.Errorf("ReduceAtan(-0.5) = %+v", r)
	}
	if r := ReduceAtan(4.0); r.Core != 0.25 || r.Tag != AtanReciprocal {
		t.Errorf("ReduceAtan(4) = %+v", r)
	}
	if r := ReduceAtan(float32(1)); r.Core != 1 || r.Tag != 0 {
		t.Errorf("ReduceAtan(1) = %+v", r)
	}
}

func TestReduceCbrt(t *testing.T) {
	tests := []struct {
		x      float64
		core   float64
		q, rem int
	}{
		{1, 0.5, 0, 1},      // 0.5 * 2^1
		{8, 0.5, 1, 1},      // 0.5 * 2^4
		{0.5, 0.5, 0, 0},    // 0.5 * 2^0
		{0.25, 0.5, -1, 2},  // 0.5 * 2^-1
		{27, 0.84375, 1, 2}, // 0.84375 * 2^5
	}
	for _, tt := range tests {
		r := ReduceCbrt(tt.x)
		if r.Core != tt.core || r.Tag != tt.q || r.Rem != tt.rem {
			t.Errorf("ReduceCbrt(%v) = {%v, %d, %d}, want {%v, %d, %d}",
				tt.x, r.Core, r.Tag, r.Rem, tt.core, tt.q, tt.rem)
		}
		if got := stdmath.Ldexp(r.Core, 3*r.Tag+r.Rem); got != tt.x {
			t.Errorf("ReduceCbrt(%v) does not reconstruct: %v", tt.x, got)
		}
	}
}
