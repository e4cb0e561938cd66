package math

// Coefficient tables are float64 literals ordered highest degree first.
// Float32 kernels use a rounded copy (often a shorter tail of the same
// series) built once in params.go.

// =============================================================================
// Exponentials
// =============================================================================

// exp2Coeffs is the Taylor series of 2^f = sum (ln2)^k/k! f^k, k = 16..0,
// accurate on [0, 1). Float32 uses the last 10 terms.
var exp2Coeffs = []float64{
	1.3570247948755148e-16, 3.1324367070884287e-15, 6.778726354822545e-14,
	1.3691488853904128e-12, 2.5678435993488206e-11, 4.4455382718708116e-10,
	7.054911620801123e-09, 1.01780860092397e-07, 1.321548679014431e-06,
	1.5252733804059841e-05, 0.0001540353039338161, 0.0013333558146428443,
	0.009618129107628477, 0.05550410866482158, 0.24022650695910072,
	0.6931471805599453, 1.0,
}

// expm1Coeffs holds 1/(k+1)! for k = 14..0 so that expm1(x) = x*P(x) on
// |x| < 0.5. Float32 uses the last 9 terms.
var expm1Coeffs = []float64{
	7.647163731819816e-13, 1.1470745597729725e-11, 1.6059043836821613e-10,
	2.08767569878681e-09, 2.505210838544172e-08, 2.755731922398589e-07,
	2.7557319223985893e-06, 2.48015873015873e-05, 0.0001984126984126984,
	0.001388888888888889, 0.008333333333333333, 0.041666666666666664,
	0.16666666666666666, 0.5, 1.0,
}

const (
	log2E    = 1.4426950408889634
	log2Ten  = 3.321928094887362
	ln2      = 0.6931471805599453
	sqrtHalf = 0.7071067811865476

	expm1Threshold = 0.5
)

// Float32 constants for Exp, Exp2 and Exp10
const (
	exp2Max_f32 = 128.0
	exp2Min_f32 = -150.0

	expOverflow_f32  = 88.72283905206835
	expUnderflow_f32 = -103.97207708399179

	exp10Overflow_f32  = 38.53183944498959
	exp10Underflow_f32 = -45.15449934959718

	ln2Hi_f32 = 0.693359375
	ln2Lo_f32 = -2.12194440e-4

	lg102Hi_f32 = 3.00781250000000000000e-1
	lg102Lo_f32 = 2.48745663981195213739e-4
)

// Float64 constants for Exp, Exp2 and Exp10
const (
	exp2Max_f64 = 1024.0
	exp2Min_f64 = -1075.0

	expOverflow_f64  = 709.782712893384
	expUnderflow_f64 = -745.1332191019412

	exp10Overflow_f64  = 308.25471555991675
	exp10Underflow_f64 = -323.60724533877976

	ln2Hi_f64 = 6.93147180369123816490e-01
	ln2Lo_f64 = 1.90821492927058770002e-10

	lg102Hi_f64 = 3.01025390625000000000e-1
	lg102Lo_f64 = 4.60503898119521373889e-6
)

// =============================================================================
// Logarithms
// =============================================================================

// logCoeffs is the odd series of atanh: log(m) = 2s*P(s^2) with
// s = (m-1)/(m+1), P holding 1/(2k+1) for k = 9..0. Float32 uses the last 5.
var logCoeffs = []float64{
	0.05263157894736842, 0.058823529411764705, 0.06666666666666667,
	0.07692307692307693, 0.09090909090909091, 0.1111111111111111,
	0.14285714285714285, 0.2, 0.3333333333333333, 1.0,
}

const (
	twoLog2E  = 2.8853900817779268
	twoLog10E = 0.8685889638065036

	log10Of2Hi_f32 = 3.0102920532e-01
	log10Of2Lo_f32 = 7.9034151668e-07

	log10Of2Hi_f64 = 3.01029995663611771306e-01
	log10Of2Lo_f64 = 3.69423907715893078616e-13
)

// =============================================================================
// Trigonometric
// =============================================================================

const (
	fourOverPi = 1.2732395447351628
	piOver2    = 1.5707963267948966
	piOver4    = 0.7853981633974483
	pi         = 3.141592653589793

	// atanMore is the low part of pi/2.
	atanMore = 6.123233995736765886130e-17
	// atanShift is where atan switches to the pi/4 + atan((x-1)/(x+1)) form.
	atanShift = 0.66
)

// Cody-Waite split of pi/4 (float32)
const (
	pi4A_f32 = 0.78515625
	pi4B_f32 = 2.4187564849853515625e-4
	pi4C_f32 = 3.77489497744594108e-8
)

// Cody-Waite split of pi/4 (float64)
const (
	pi4A_f64 = 7.85398125648498535156e-1
	pi4B_f64 = 3.77489470793079817668e-8
	pi4C_f64 = 2.69515142907905952645e-15
)

// sin(z) = z + z*z^2*S(z^2) and cos(z) = 1 - z^2/2 + z^4*C(z^2) on [-pi/4, pi/4].
var (
	sinCoeffs_f32 = []float64{-1.9515295891e-4, 8.3321608736e-3, -1.6666654611e-1}
	cosCoeffs_f32 = []float64{2.443315711809948e-5, -1.388731625493765e-3, 4.166664568298827e-2}

	sinCoeffs_f64 = []float64{
		1.58962301576546568060e-10, -2.50507477628578072866e-8,
		2.75573136213857245213e-6, -1.98412698295895385996e-4,
		8.33333333332211858878e-3, -1.66666666666666307295e-1,
	}
	cosCoeffs_f64 = []float64{
		-1.13585365213876817300e-11, 2.08757008419747316778e-9,
		-2.75573141792967388112e-7, 2.48015872888517045348e-5,
		-1.38888888888730564116e-3, 4.16666666666665929218e-2,
	}
)

// atan(x) = x + x*z*R(z), z = x^2, on [0, 0.66]. R is a (4, 5) rational
// normalized so that the denominator's constant term is 1.
var (
	atanNum = []float64{
		-0.004497856099947953, -0.08305054027661528, -0.38554769756436863,
		-0.6316435536651273, -0.3333333333333322,
	}
	atanDen = []float64{
		0.0051400494588817, 0.12777373906518932, 0.8482469925862886,
		2.225030060738393, 2.49493066099495,
	}
)

// =============================================================================
// Cube root
// =============================================================================

// cbrt(1+t) on t = m-1, m in [0.5, 1): Pade (3, 3) approximant.
var (
	cbrtNum = []float64{0.08641975308641975, 0.7777777777777778, 1.6666666666666667, 1.0}
	cbrtDen = []float64{0.024691358024691357, 0.4444444444444444, 1.3333333333333333}
)

const (
	cbrt2 = 1.2599210498948732
	cbrt4 = 1.5874010519681994
)

// =============================================================================
// Error function
// =============================================================================

// erfCoeffs holds 2/sqrt(pi) * (-1)^n / (n!(2n+1)) for n = 17..0 so that
// erf(x) = x*P(x^2) on |x| <= 1. Float32 uses the last 11 terms.
var erfCoeffs = []float64{
	-9.063970842808673e-17, 1.6342614095367152e-15, -2.7835162072109215e-14,
	4.4632242632864775e-13, -6.7113668551641105e-12, 9.422759064650411e-11,
	-1.2290555301717928e-09, 1.4807192815879218e-08, -1.6365844691234924e-07,
	1.6462114365889248e-06, -1.492565035840625e-05, 0.00012055332981789664,
	-0.0008548327023450853, 0.005223977625442188, -0.026866170645131252,
	0.11283791670955126, -0.37612638903183754, 1.1283791670955126,
}

// erfc(x) = exp(-x^2) * N(u) / (1 + u*D(u)), u = 1/x, for 1 < x < 8.
var (
	erfcMidNum = []float64{
		5.57535335369399327526e2, 1.02755188689515710272e3, 9.34528527171957607540e2,
		5.26445194995477358631e2, 1.96520832956077098242e2, 4.86371970985681366614e1,
		7.46321056442269912687e0, 5.64189564831068821977e-1, 2.46196981473530512524e-10,
	}
	erfcMidDen = []float64{
		5.57535340817727675546e2, 1.65666309194161350182e3, 2.24633760818710981792e3,
		1.82390916687909736289e3, 9.75708501743205489753e2, 3.54937778887819891062e2,
		8.67072140885989742329e1, 1.32281951154744992508e1,
	}
)

// erfc(x) = exp(-x^2)/x * N(u) / (1 + u*D(u)), u = 1/x, for x >= 8.
var (
	erfcTailNum = []float64{
		2.97886665372100240670e0, 7.40974269950448939160e0, 6.16021097993053585195e0,
		5.01905042251180477414e0, 1.27536670759978104416e0, 5.64189583547755073984e-1,
	}
	erfcTailDen = []float64{
		3.36907645100081516050e0, 9.60896809063285878198e0, 1.70814450747565897222e1,
		1.20489539808096656605e1, 9.39603524938001434673e0, 2.26052863220117276590e0,
	}
)

const (
	erfcTailStart = 8.0

	// Beyond sqrt(largest exp argument) exp(-x^2) underflows; erfc is 0.
	erfcClamp_f32 = 9.419280176959827
	erfcClamp_f64 = 26.641747557046326
)

// =============================================================================
// Hyperbolic
// =============================================================================

const (
	// Above these magnitudes tanh rounds to ±1 and sinh/cosh switch to
	// exp(|x|/2)^2 to delay overflow.
	hyperbolicLarge_f32 = 9.0
	hyperbolicLarge_f64 = 22.0

	// Above these magnitudes asinh/acosh use log(2|x|).
	inverseHyperbolicLarge_f32 = 4096.0
	inverseHyperbolicLarge_f64 = 268435456.0
)
