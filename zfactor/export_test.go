package zfactor

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func Test_ToCSV(t *testing.T) {
	table := &PressureSweepTable{
		Rows:      []SweepRow{{14.7, 0.998}, {200, 0.97}},
		Highlight: 1,
	}

	var buf bytes.Buffer
	table.ToCSV(&buf)
	assert.Equal(t, "Pressure (psi),Z-factor,Input Pressure\n14.7,0.998,0\n200,0.97,1\n", buf.String())
}

func Test_PressureSweepTable_ToText(t *testing.T) {
	table := &PressureSweepTable{
		Rows:      []SweepRow{{14.7, 0.998}, {200, 0.97}},
		Highlight: 1,
	}

	var buf bytes.Buffer
	table.ToText(&buf)
	assert.Contains(t, buf.String(), "Input Pressure: 200 psi, Z = 0.9700")

	table.Highlight = NoHighlight
	buf.Reset()
	table.ToText(&buf)
	assert.Contains(t, buf.String(), "not one of the sampled pressures")
}

func Test_Result_ToText(t *testing.T) {
	res := calculateForTest(t, 2000)

	var buf bytes.Buffer
	res.ToText(&buf)
	assert.Contains(t, buf.String(), "The gas compressibility factor (Z-factor) is: 0.808")
	assert.Contains(t, buf.String(), "The sum of H2S, CO2, and N2 contents is 0.00")
}

func Test_Result_ToYAML(t *testing.T) {
	res := calculateForTest(t, 2000)

	var buf bytes.Buffer
	require.NoError(t, res.ToYAML(&buf))

	var report yamlReport
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	assert.Equal(t, res.Z.Z, report.ZFactor)
	assert.Equal(t, 0.75, report.Inputs.SG)
	require.NotNil(t, report.Highlight)
	assert.Equal(t, 10, *report.Highlight)
	assert.Equal(t, res.Sweep.Rows, report.Table)

	// 強調表示なし
	res = calculateForTest(t, 1500)
	buf.Reset()
	require.NoError(t, res.ToYAML(&buf))
	report = yamlReport{}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &report))
	assert.Nil(t, report.Highlight)
}

func calculateForTest(t *testing.T, P float64) *Result {
	t.Helper()
	gas, err := NewGasComposition(0.75, 0, 0, 0)
	require.NoError(t, err)
	cond, err := NewConditions(P, 150)
	require.NoError(t, err)

	res, err := Calculate(Inputs{Gas: gas, Conditions: cond}, DefaultConfig())
	require.NoError(t, err)
	return res
}
