package zfactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Suttonの相関式のテスト
func Test_PseudoCritical(t *testing.T) {
	pc := PseudoCritical(0.75)

	// 169.2 + 349.5*0.75 - 74.0*0.75^2
	assert.InDelta(t, 389.7, pc.Tpc, 1.0e-9)

	// 756.8 - 131.0*0.75 - 3.6*0.75^2
	assert.InDelta(t, 656.525, pc.Ppc, 1.0e-9)
}

// 非炭化水素を含まない場合は補正なし
func Test_CorrectNonHydrocarbon_NoContaminants(t *testing.T) {
	pc := PseudoCritical(0.75)

	corr, err := CorrectNonHydrocarbon(pc.Tpc, pc.Ppc, 0, 0, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.0, corr.Epsilon)
	assert.Equal(t, pc.Tpc, corr.TpcCorr)
	assert.Equal(t, pc.Ppc, corr.PpcCorr)
}

// Wichert-Azizの補正
func Test_CorrectNonHydrocarbon(t *testing.T) {
	pc := PseudoCritical(0.75)

	corr, err := CorrectNonHydrocarbon(pc.Tpc, pc.Ppc, 0.1, 0.05, 0.02)
	require.NoError(t, err)

	assert.InDelta(t, 13.997395829, corr.Epsilon, 1.0e-6)
	assert.InDelta(t, 375.702604171, corr.TpcCorr, 1.0e-6)
	assert.InDelta(t, 643.571166270, corr.PpcCorr, 1.0e-6)
	assert.Equal(t, pc.Tpc, corr.Tpc)
	assert.Equal(t, pc.Ppc, corr.Ppc)
}

// H2Sのみ (yH2S = 1) の場合は e = 0 となり補正値は有限
func Test_CorrectNonHydrocarbon_PureH2S(t *testing.T) {
	pc := PseudoCritical(0.75)

	corr, err := CorrectNonHydrocarbon(pc.Tpc, pc.Ppc, 1.0, 0, 0)
	require.NoError(t, err)

	assert.InDelta(t, 0.0, corr.Epsilon, 1.0e-12)
	assert.InDelta(t, pc.Tpc, corr.TpcCorr, 1.0e-9)
	assert.InDelta(t, pc.Ppc, corr.PpcCorr, 1.0e-9)
}

// 補正後の擬臨界特性値が負となる場合
func Test_CorrectNonHydrocarbon_NonPositive(t *testing.T) {
	_, err := CorrectNonHydrocarbon(10, 650, 0, 0.5, 0)
	assert.ErrorIs(t, err, ErrComputationDomain)

	_, err = CorrectNonHydrocarbon(389.7, 656.525, -0.1, 0, 0)
	assert.ErrorIs(t, err, ErrComputationDomain)
}
