package zfactor

import (
	"bytes"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// CSV形式
// 列: 圧力 [psi], Z係数 [-], 入力圧力の行であれば1
func (t *PressureSweepTable) ToCSV(buf *bytes.Buffer) {
	buf.WriteString("Pressure (psi)")
	buf.WriteString(",Z-factor")
	buf.WriteString(",Input Pressure")
	buf.WriteString("\n")

	writeFloat := func(v float64) {
		buf.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	for i, row := range t.Rows {
		writeFloat(row.Pressure)
		buf.WriteString(",")
		writeFloat(row.Z)
		if i == t.Highlight {
			buf.WriteString(",1")
		} else {
			buf.WriteString(",0")
		}
		buf.WriteString("\n")
	}
}

// テキスト形式
func (res *Result) ToText(buf *bytes.Buffer) {
	buf.WriteString("Gas Compressibility Factor Calculator\n")
	buf.WriteString("Hall-Yarborough (1973)\n\n")

	gas := res.Inputs.Gas
	cond := res.Inputs.Conditions
	fmt.Fprintf(buf, "Gas Gravity (air):        %g\n", gas.SG)
	fmt.Fprintf(buf, "Pressure (psi):           %g\n", cond.P)
	fmt.Fprintf(buf, "Temperature (deg F):      %g\n", cond.T)
	fmt.Fprintf(buf, "H2S content (mole frac):  %g\n", gas.YH2S)
	fmt.Fprintf(buf, "CO2 content (mole frac):  %g\n", gas.YCO2)
	fmt.Fprintf(buf, "N2 content (mole frac):   %g\n", gas.YN2)
	fmt.Fprintf(buf, "The sum of H2S, CO2, and N2 contents is %.2f\n\n", gas.TotalNonHydrocarbon())

	fmt.Fprintf(buf, "Tpc = %.2f °R, Ppc = %.2f psi\n", res.Corrected.Tpc, res.Corrected.Ppc)
	fmt.Fprintf(buf, "TpcCorr = %.2f °R, PpcCorr = %.2f psi (e = %.3f °R)\n", res.Corrected.TpcCorr, res.Corrected.PpcCorr, res.Corrected.Epsilon)
	fmt.Fprintf(buf, "Tpr = %.4f, Ppr = %.4f\n\n", res.Reduced.Tpr, res.Reduced.Ppr)
	fmt.Fprintf(buf, "The gas compressibility factor (Z-factor) is: %.3f\n\n", res.Z.Z)

	if res.Sweep == nil {
		return
	}
	res.Sweep.ToText(buf)
}

// 圧力-Z係数表のテキスト形式。入力圧力の行には * を付けます。
func (t *PressureSweepTable) ToText(buf *bytes.Buffer) {
	buf.WriteString("  Pressure (psi)  Z-factor\n")
	for i, row := range t.Rows {
		mark := " "
		if i == t.Highlight {
			mark = "*"
		}
		fmt.Fprintf(buf, "%s %14.1f  %8.4f\n", mark, row.Pressure, row.Z)
	}

	if row, ok := t.HighlightRow(); ok {
		fmt.Fprintf(buf, "\nInput Pressure: %g psi, Z = %.4f\n", row.Pressure, row.Z)
	} else {
		buf.WriteString("\nInput Pressure is not one of the sampled pressures\n")
	}
}

type yamlInputs struct {
	SG  float64 `yaml:"sg"`
	P   float64 `yaml:"pressure"`
	T   float64 `yaml:"temperature"`
	H2S float64 `yaml:"h2s"`
	CO2 float64 `yaml:"co2"`
	N2  float64 `yaml:"n2"`
}

type yamlPseudoCritical struct {
	Tpc     float64 `yaml:"tpc"`
	Ppc     float64 `yaml:"ppc"`
	Epsilon float64 `yaml:"epsilon"`
	TpcCorr float64 `yaml:"tpc_corr"`
	PpcCorr float64 `yaml:"ppc_corr"`
}

type yamlReport struct {
	Inputs         yamlInputs         `yaml:"inputs"`
	PseudoCritical yamlPseudoCritical `yaml:"pseudo_critical"`
	Tpr            float64            `yaml:"tpr"`
	Ppr            float64            `yaml:"ppr"`
	Y              float64            `yaml:"y"`
	ZFactor        float64            `yaml:"z_factor"`
	Iterations     int                `yaml:"iterations"`
	Highlight      *int               `yaml:"highlight"`
	ZMin           float64            `yaml:"z_min"`
	ZMax           float64            `yaml:"z_max"`
	Table          []SweepRow         `yaml:"table"`
}

// YAML形式
func (res *Result) ToYAML(buf *bytes.Buffer) error {
	gas := res.Inputs.Gas
	cond := res.Inputs.Conditions
	report := yamlReport{
		Inputs: yamlInputs{
			SG:  gas.SG,
			P:   cond.P,
			T:   cond.T,
			H2S: gas.YH2S,
			CO2: gas.YCO2,
			N2:  gas.YN2,
		},
		PseudoCritical: yamlPseudoCritical{
			Tpc:     res.Corrected.Tpc,
			Ppc:     res.Corrected.Ppc,
			Epsilon: res.Corrected.Epsilon,
			TpcCorr: res.Corrected.TpcCorr,
			PpcCorr: res.Corrected.PpcCorr,
		},
		Tpr:        res.Reduced.Tpr,
		Ppr:        res.Reduced.Ppr,
		Y:          res.Z.Y,
		ZFactor:    res.Z.Z,
		Iterations: res.Z.Iterations,
	}
	if res.Sweep != nil {
		if res.Sweep.Highlight != NoHighlight {
			h := res.Sweep.Highlight
			report.Highlight = &h
		}
		report.ZMin, report.ZMax = res.Sweep.ZRange()
		report.Table = res.Sweep.Rows
	}

	enc := yaml.NewEncoder(buf)
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return err
	}
	return enc.Close()
}
