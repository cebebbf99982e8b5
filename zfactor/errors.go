package zfactor

import (
	"errors"
	"fmt"
)

// 計算エラーの種類
var (
	// ErrInputDomain は入力値が定義域外であることを示します。(比重、圧力、温度、モル分率)
	ErrInputDomain = errors.New("zfactor: input out of domain")

	// ErrMissingInput は必須の入力値が与えられていないことを示します。
	ErrMissingInput = errors.New("zfactor: missing input")

	// ErrComputationDomain は中間量(擬臨界特性値、換算特性値、解 y)が物理的に有効な範囲外であることを示します。
	ErrComputationDomain = errors.New("zfactor: computation out of physical domain")

	// ErrConvergence は反復回数の上限までに残差が許容値を下回らなかったことを示します。
	ErrConvergence = errors.New("zfactor: solver did not converge")
)

// SolveError はHall-Yarborough式の求解失敗時の状態を保持します。
type SolveError struct {
	Tpr        float64 // 擬換算温度 [-]
	Ppr        float64 // 擬換算圧力 [-]
	Y          float64 // 最後の反復での換算密度 y [-]
	Residual   float64 // 最後の反復での残差 f(y)
	Iterations int     // 実行した反復回数
	Wrapped    error
}

func (e *SolveError) Error() string {
	return fmt.Sprintf("%v (Tpr=%g, Ppr=%g, y=%g, f(y)=%g, iterations=%d)",
		e.Wrapped, e.Tpr, e.Ppr, e.Y, e.Residual, e.Iterations)
}

func (e *SolveError) Unwrap() error {
	return e.Wrapped
}
