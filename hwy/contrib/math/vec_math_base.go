package math

import "github.com/ajroetker/go-vmath/hwy"

// Lane forms of the kernels. Every lane of the result carries exactly the
// bits the scalar kernel returns for the matching input lane, which is what
// lets the bulk transforms finish a buffer with scalar calls.

// Exp2Vec computes 2^x for each lane. The reduction, the polynomial and the
// reconstruction run lane-parallel; out-of-range and NaN lanes are patched
// with the scalar special-case results.
func Exp2Vec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	p := paramsFor[T]()
	n := hwy.Map(v, floor[T])
	poly := p.exp2.EvalVec(hwy.Sub(v, n))
	r := hwy.Map2(poly, n, scaleByExp2[T])
	return hwy.Map2(r, v, func(r, x T) T {
		if isNaN(x) || x >= p.exp2Max || x < p.exp2Min {
			return Exp2(x)
		}
		return r
	})
}

// ExpVec computes e^x for each lane, with the same structure as Exp2Vec.
func ExpVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] {
	p := paramsFor[T]()
	k := hwy.Map(hwy.Mul(v, hwy.Set[T](log2E)), floor[T])
	r := hwy.Sub(hwy.Sub(v, hwy.Mul(k, hwy.Set(p.ln2Hi))), hwy.Mul(k, hwy.Set(p.ln2Lo)))
	poly := p.exp2.EvalVec(hwy.Mul(r, hwy.Set[T](log2E)))
	res := hwy.Map2(poly, k, scaleByExp2[T])
	return hwy.Map2(res, v, func(r, x T) T {
		if isNaN(x) || x > p.expMax || x < p.expMin {
			return Exp(x)
		}
		return r
	})
}

// scaleByExp2 returns m*2^n for an integral n held in a float lane.
func scaleByExp2[T hwy.Floats](m, n T) T {
	if isNaN(n) || isInf(n) {
		return m
	}
	return Ldexp(m, int(n))
}

// Exp10Vec computes 10^x for each lane.
func Exp10Vec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Exp10[T]) }

// Expm1Vec computes e^x - 1 for each lane.
func Expm1Vec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Expm1[T]) }

// LogVec computes ln(x) for each lane.
func LogVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Log[T]) }

// Log2Vec computes log2(x) for each lane.
func Log2Vec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Log2[T]) }

// Log10Vec computes log10(x) for each lane.
func Log10Vec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Log10[T]) }

// Log1pVec computes ln(1+x) for each lane.
func Log1pVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Log1p[T]) }

// PowVec computes x^y lane-wise.
func PowVec[T hwy.Floats](x, y hwy.Vec[T]) hwy.Vec[T] { return hwy.Map2(x, y, Pow[T]) }

// SinVec computes sin(x) for each lane.
func SinVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Sin[T]) }

// CosVec computes cos(x) for each lane.
func CosVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Cos[T]) }

// SinCosVec computes sin(x) and cos(x) for each lane.
func SinCosVec[T hwy.Floats](v hwy.Vec[T]) (sin, cos hwy.Vec[T]) {
	return hwy.Map(v, Sin[T]), hwy.Map(v, Cos[T])
}

// TanVec computes tan(x) for each lane.
func TanVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Tan[T]) }

// AtanVec computes atan(x) for each lane.
func AtanVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Atan[T]) }

// Atan2Vec computes atan2(y, x) lane-wise.
func Atan2Vec[T hwy.Floats](y, x hwy.Vec[T]) hwy.Vec[T] { return hwy.Map2(y, x, Atan2[T]) }

// AsinVec computes asin(x) for each lane.
func AsinVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Asin[T]) }

// AcosVec computes acos(x) for each lane.
func AcosVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Acos[T]) }

// SinhVec computes sinh(x) for each lane.
func SinhVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Sinh[T]) }

// CoshVec computes cosh(x) for each lane.
func CoshVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Cosh[T]) }

// TanhVec computes tanh(x) for each lane.
func TanhVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Tanh[T]) }

// AsinhVec computes asinh(x) for each lane.
func AsinhVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Asinh[T]) }

// AcoshVec computes acosh(x) for each lane.
func AcoshVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Acosh[T]) }

// AtanhVec computes atanh(x) for each lane.
func AtanhVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Atanh[T]) }

// CbrtVec computes cbrt(x) for each lane.
func CbrtVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Cbrt[T]) }

// ErfVec computes erf(x) for each lane.
func ErfVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Erf[T]) }

// ErfcVec computes erfc(x) for each lane.
func ErfcVec[T hwy.Floats](v hwy.Vec[T]) hwy.Vec[T] { return hwy.Map(v, Erfc[T]) }
