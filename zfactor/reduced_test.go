package zfactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_FahrenheitToRankine(t *testing.T) {
	assert.InDelta(t, 519.67, FahrenheitToRankine(60), 1.0e-9)
	assert.InDelta(t, 609.67, FahrenheitToRankine(150), 1.0e-9)
}

// 擬換算特性値 (SG=0.75, 2000 psi, 150 °F)
func Test_Reduced(t *testing.T) {
	rp, err := Reduced(2000, 150, 389.7, 656.525)
	require.NoError(t, err)

	assert.InDelta(t, 609.67/389.7, rp.Tpr, 1.0e-12)
	assert.InDelta(t, 2000/656.525, rp.Ppr, 1.0e-12)
	assert.InDelta(t, 1.564459841, rp.Tpr, 1.0e-8)
	assert.InDelta(t, 3.046342485, rp.Ppr, 1.0e-8)
}

// 擬臨界特性値が正でない場合
func Test_Reduced_NonPositive(t *testing.T) {
	_, err := Reduced(2000, 150, 0, 656.525)
	assert.ErrorIs(t, err, ErrComputationDomain)

	_, err = Reduced(2000, 150, 389.7, -1)
	assert.ErrorIs(t, err, ErrComputationDomain)
}
