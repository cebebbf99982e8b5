package zfactor

import (
	"math"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/diff/fd"
)

//--------------------------------------
// Hall-Yarborough (1973) によるガス圧縮係数 Z の計算
//--------------------------------------

const (
	DefaultInitialGuess  = 0.001 // 換算密度 y の初期値 [-]
	DefaultTolerance     = 1e-8  // 残差 |f(y)| の許容値 (alpha Ppr < 1 では alpha Ppr に対する相対値)
	DefaultMaxIterations = 100   // 反復回数の上限

	// 数値微分の刻み幅の上限
	derivativeStep = 1e-6
)

// Hall-Yarborough式の求解の設定
type Solver struct {
	InitialGuess  float64 // 換算密度 y の初期値 (0 < y < 1)
	Tolerance     float64 // 残差 |f(y)| の許容値 (alpha Ppr < 1 では alpha Ppr に対する相対値)
	MaxIterations int     // 反復回数の上限
}

// 求解結果
type ZFactorResult struct {
	Y          float64 // 換算密度 y [-]
	Z          float64 // ガス圧縮係数 Z [-]
	Residual   float64 // 収束時の残差 f(y)
	Iterations int     // Newton法の反復回数
}

// 既定値の Solver を返します。
func DefaultSolver() Solver {
	return Solver{
		InitialGuess:  DefaultInitialGuess,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
	}
}

// 既定の設定で擬換算温度 Tpr と擬換算圧力 Ppr に対するガス圧縮係数 Z を求めます。
func SolveZ(Tpr, Ppr float64) (float64, error) {
	res, err := DefaultSolver().Solve(Tpr, Ppr)
	if err != nil {
		return 0, err
	}
	return res.Z, nil
}

// alpha = 0.06125 t exp(-1.2 (1-t)^2)
// 引数:
// t: 擬換算温度の逆数 1/Tpr [-]
func Alpha(t float64) float64 {
	return 0.06125 * t * math.Exp(-1.2*(1-t)*(1-t))
}

// Hall-Yarborough式の残差 f(y)
// 引数:
// y: 換算密度 [-] (0 < y < 1)
// alpha: Alpha(t)
// Ppr: 擬換算圧力 [-]
// t: 擬換算温度の逆数 1/Tpr [-]
func Residual(y, alpha, Ppr, t float64) float64 {
	y2 := y * y
	y3 := y2 * y
	y4 := y3 * y
	t2 := t * t
	t3 := t2 * t
	return -alpha*Ppr +
		(y+y2+y3-y4)/math.Pow(1-y, 3) -
		(14.76*t-9.76*t2+4.58*t3)*y2 +
		(90.7*t-242.2*t2+42.4*t3)*math.Pow(y, 2.18+2.82*t)
}

// 擬換算温度 Tpr と擬換算圧力 Ppr に対してHall-Yarborough式 f(y) = 0 を解き、ガス圧縮係数 Z を求めます。
//
// Notes:
//
//	f(0) = -alpha Ppr < 0, f(1-) = +Inf であるため区間 [lo, hi] を残差の符号で狭めながらNewton法で反復し、
//	Newton法の更新値が区間外となる場合は二分法に切り替えます。y は常に (0, 1) に留まります。
func (s Solver) Solve(Tpr, Ppr float64) (ZFactorResult, error) {
	logger := logging.GetLogger("zfactor")

	fail := func(y, fy float64, iter int, err error) (ZFactorResult, error) {
		return ZFactorResult{}, &SolveError{Tpr: Tpr, Ppr: Ppr, Y: y, Residual: fy, Iterations: iter, Wrapped: err}
	}

	if !isPositiveFinite(Tpr) || !(Ppr >= 0) || math.IsInf(Ppr, 1) {
		return fail(math.NaN(), math.NaN(), 0, ErrComputationDomain)
	}
	if !(s.InitialGuess > 0 && s.InitialGuess < 1) || !(s.Tolerance > 0) || s.MaxIterations <= 0 {
		return fail(s.InitialGuess, math.NaN(), 0, ErrComputationDomain)
	}

	// Ppr = 0 の解は y = 0 であり Z = alpha Ppr / y が定まらない
	if Ppr == 0 {
		return fail(0, 0, 0, ErrComputationDomain)
	}

	t := 1 / Tpr
	alpha := Alpha(t)
	f := func(y float64) float64 {
		return Residual(y, alpha, Ppr, t)
	}

	// f(y) の定数項 alpha Ppr が小さいときは許容値も縮める
	tol := s.Tolerance * math.Min(1, alpha*Ppr)

	lo, hi := 0.0, 1.0
	y := s.InitialGuess
	fy := f(y)
	for iter := 0; ; iter++ {
		if math.IsNaN(fy) {
			return fail(y, fy, iter, ErrComputationDomain)
		}

		if math.Abs(fy) < tol {
			Z := alpha * Ppr / y
			if !(y > 0 && y < 1) || !isPositiveFinite(Z) {
				return fail(y, fy, iter, ErrComputationDomain)
			}
			return ZFactorResult{Y: y, Z: Z, Residual: fy, Iterations: iter}, nil
		}
		if iter == s.MaxIterations {
			logger.Debugf("Hall-Yarborough solver reached %d iterations (Tpr=%g, Ppr=%g)", s.MaxIterations, Tpr, Ppr)
			return fail(y, fy, iter, ErrConvergence)
		}

		if fy < 0 {
			lo = y
		} else {
			hi = y
		}

		// 中心差分の両端が (0, 1) に入るよう刻み幅を縮める
		h := math.Min(derivativeStep, math.Min(y, 1-y)/2)
		dfy := fd.Derivative(f, y, &fd.Settings{
			Formula: fd.Central,
			Step:    h,
		})

		next := y - fy/dfy
		if math.IsNaN(next) || !(next > lo && next < hi) {
			next = (lo + hi) / 2
		}
		logger.Debugf("Hall-Yarborough iteration %d: y=%.10g f(y)=%.3e -> y=%.10g", iter+1, y, fy, next)

		y = next
		fy = f(y)
	}
}
