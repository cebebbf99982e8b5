package zfactor

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Standing-Katz線図との比較 (Tpr=1.5, Ppr=2.0 で Z ≒ 0.82)
func Test_SolveZ(t *testing.T) {
	Z, err := SolveZ(1.5, 2.0)
	require.NoError(t, err)
	assert.InDelta(t, 0.82083, Z, 1.0e-4)

	Z, err = SolveZ(1.5, 0.5)
	require.NoError(t, err)
	assert.InDelta(t, 0.94969, Z, 1.0e-4)

	// 低温・高圧
	Z, err = SolveZ(1.05, 15)
	require.NoError(t, err)
	assert.InDelta(t, 1.75010, Z, 1.0e-3)
}

// 収束時の残差が許容値未満であること
func Test_Solve_Residual(t *testing.T) {
	s := DefaultSolver()
	for _, c := range []struct{ Tpr, Ppr float64 }{
		{1.05, 0.0225},
		{1.2, 5.0},
		{1.5644598, 3.0463425},
		{2.0, 3.0},
		{3.0, 20.0},
	} {
		res, err := s.Solve(c.Tpr, c.Ppr)
		require.NoError(t, err)

		tt := 1 / c.Tpr
		fy := Residual(res.Y, Alpha(tt), c.Ppr, tt)
		assert.Less(t, math.Abs(fy), s.Tolerance)
		assert.Equal(t, fy, res.Residual)
		assert.True(t, res.Y > 0 && res.Y < 1)
		assert.InDelta(t, Alpha(tt)*c.Ppr/res.Y, res.Z, 1.0e-12)
		assert.LessOrEqual(t, res.Iterations, s.MaxIterations)
	}
}

// 初期値を変えても同じ解に収束すること
func Test_Solve_InitialGuess(t *testing.T) {
	s := DefaultSolver()
	res1, err := s.Solve(1.5, 2.0)
	require.NoError(t, err)

	s.InitialGuess = 0.5
	res2, err := s.Solve(1.5, 2.0)
	require.NoError(t, err)

	assert.InDelta(t, res1.Z, res2.Z, 1.0e-6)
}

// 反復回数の上限に達した場合
func Test_Solve_Convergence(t *testing.T) {
	s := DefaultSolver()
	s.MaxIterations = 1

	_, err := s.Solve(1.05, 15)
	assert.ErrorIs(t, err, ErrConvergence)

	var se *SolveError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, 1, se.Iterations)
	assert.Equal(t, 1.05, se.Tpr)
	assert.Equal(t, 15.0, se.Ppr)
	assert.True(t, se.Y > 0 && se.Y < 1)
}

// 物理的に無効な入力
func Test_Solve_Domain(t *testing.T) {
	_, err := SolveZ(0, 1)
	assert.ErrorIs(t, err, ErrComputationDomain)

	_, err = SolveZ(-1.5, 1)
	assert.ErrorIs(t, err, ErrComputationDomain)

	_, err = SolveZ(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrComputationDomain)

	_, err = SolveZ(1.5, -0.1)
	assert.ErrorIs(t, err, ErrComputationDomain)

	// Ppr = 0 の解は y = 0
	_, err = SolveZ(1.5, 0)
	assert.ErrorIs(t, err, ErrComputationDomain)

	s := DefaultSolver()
	s.InitialGuess = 1
	_, err = s.Solve(1.5, 2.0)
	assert.ErrorIs(t, err, ErrComputationDomain)
}

// Tpr を固定して Ppr を増やしたときに Z が連続であること
func Test_Solve_Continuity(t *testing.T) {
	prev := 1.0
	for Ppr := 0.05; Ppr <= 15; Ppr += 0.05 {
		Z, err := SolveZ(1.3, Ppr)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(Z))
		assert.Greater(t, Z, 0.0)
		assert.InDelta(t, prev, Z, 0.05, "Ppr=%g", Ppr)
		prev = Z
	}
}

// 擬換算圧力が非常に小さい場合は理想気体 (Z → 1) に近づくこと
func Test_Solve_SmallPpr(t *testing.T) {
	for _, Ppr := range []float64{1e-6, 1e-7, 1e-8, 1e-10, 1e-12} {
		Z, err := SolveZ(1.2, Ppr)
		require.NoError(t, err, "Ppr=%g", Ppr)
		assert.InDelta(t, 1.0, Z, 1.0e-6, "Ppr=%g", Ppr)
	}

	// 残差は alpha Ppr に対する相対値で評価される
	s := DefaultSolver()
	res, err := s.Solve(1.2, 1e-7)
	require.NoError(t, err)
	tt := 1 / 1.2
	assert.Less(t, math.Abs(res.Residual), s.Tolerance*Alpha(tt)*1e-7)
}
