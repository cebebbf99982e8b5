package zfactor

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

//--------------------------------------
// 入力値の確認
//--------------------------------------

const (
	MinGravity = 0.55 // ガス比重の下限 [-]
	MaxGravity = 1.0  // ガス比重の上限 [-]
)

// ガス組成
type GasComposition struct {
	SG   float64 // ガス比重 (空気=1) [-]
	YH2S float64 // H2Sのモル分率 [-]
	YCO2 float64 // CO2のモル分率 [-]
	YN2  float64 // N2のモル分率 [-]
}

// 圧力・温度条件
type Conditions struct {
	P float64 // 絶対圧力 [psi]
	T float64 // 温度 [°F]
}

// 計算の入力値
type Inputs struct {
	Gas        GasComposition
	Conditions Conditions
}

// 文字列のままの入力値 (空文字列は未入力)
type RawInputs struct {
	SG  string
	P   string
	T   string
	H2S string
	CO2 string
	N2  string
}

// ガス組成を作成します。定義域外の値は ErrInputDomain
func NewGasComposition(SG, yH2S, yCO2, yN2 float64) (GasComposition, error) {
	if !(SG >= MinGravity && SG <= MaxGravity) {
		return GasComposition{}, fmt.Errorf("gas gravity must be between %g and %g, got %g: %w",
			MinGravity, MaxGravity, SG, ErrInputDomain)
	}
	for _, y := range []struct {
		name string
		v    float64
	}{{"H2S", yH2S}, {"CO2", yCO2}, {"N2", yN2}} {
		if !(y.v >= 0 && y.v <= 1) {
			return GasComposition{}, fmt.Errorf("%s content must be between 0 and 1, got %g: %w", y.name, y.v, ErrInputDomain)
		}
	}

	gas := GasComposition{SG: SG, YH2S: yH2S, YCO2: yCO2, YN2: yN2}
	if total := gas.TotalNonHydrocarbon(); total > 1 {
		return GasComposition{}, fmt.Errorf("the sum of H2S, CO2, and N2 contents must not exceed 1, got %.2f: %w",
			total, ErrInputDomain)
	}
	return gas, nil
}

// 圧力・温度条件を作成します。標準状態 (14.7 psi, 60 °F) を下回る値は ErrInputDomain
func NewConditions(P, T float64) (Conditions, error) {
	if !(P >= StandardPressure) || math.IsInf(P, 1) {
		return Conditions{}, fmt.Errorf("pressure must be equal to or above pressure at standard conditions (%g psi), got %g: %w",
			StandardPressure, P, ErrInputDomain)
	}
	if !(T >= StandardTemperature) || math.IsInf(T, 1) {
		return Conditions{}, fmt.Errorf("temperature must be equal to or above temperature at standard conditions (%g deg F), got %g: %w",
			StandardTemperature, T, ErrInputDomain)
	}
	return Conditions{P: P, T: T}, nil
}

// 非炭化水素のモル分率の合計
func (g GasComposition) TotalNonHydrocarbon() float64 {
	return g.YH2S + g.YCO2 + g.YN2
}

// 入力値を再確認します。
func (in Inputs) Validate() error {
	if _, err := NewGasComposition(in.Gas.SG, in.Gas.YH2S, in.Gas.YCO2, in.Gas.YN2); err != nil {
		return err
	}
	if _, err := NewConditions(in.Conditions.P, in.Conditions.T); err != nil {
		return err
	}
	return nil
}

// 文字列の入力値を数値に変換し、定義域を確認します。
// 未入力の項目はまとめて ErrMissingInput として報告します。
func ParseInputs(raw RawInputs) (Inputs, error) {
	fields := []struct {
		name string
		text string
		dst  *float64
	}{
		{"Gas Gravity", raw.SG, new(float64)},
		{"Pressure", raw.P, new(float64)},
		{"Temperature", raw.T, new(float64)},
		{"H2S content", raw.H2S, new(float64)},
		{"CO2 content", raw.CO2, new(float64)},
		{"N2 content", raw.N2, new(float64)},
	}

	var missing []string
	for _, f := range fields {
		text := strings.TrimSpace(f.text)
		if text == "" {
			missing = append(missing, f.name)
			continue
		}
		v, err := strconv.ParseFloat(text, 64)
		if err != nil || math.IsNaN(v) {
			return Inputs{}, fmt.Errorf("please enter a valid number for %s (%q): %w", f.name, f.text, ErrInputDomain)
		}
		*f.dst = v
	}
	if len(missing) > 0 {
		return Inputs{}, fmt.Errorf("please provide values for: %s: %w", strings.Join(missing, ", "), ErrMissingInput)
	}

	gas, err := NewGasComposition(*fields[0].dst, *fields[3].dst, *fields[4].dst, *fields[5].dst)
	if err != nil {
		return Inputs{}, err
	}
	cond, err := NewConditions(*fields[1].dst, *fields[2].dst)
	if err != nil {
		return Inputs{}, err
	}
	return Inputs{Gas: gas, Conditions: cond}, nil
}
