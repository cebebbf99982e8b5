package zfactor

import (
	"fmt"
	"math"
)

//--------------------------------------
// 擬臨界特性値の計算
//--------------------------------------

// 擬臨界特性値 (非炭化水素補正前)
type PseudoCriticalProperties struct {
	Tpc float64 // 擬臨界温度 [°R]
	Ppc float64 // 擬臨界圧力 [psi]
}

// 非炭化水素補正後の擬臨界特性値
type CorrectedProperties struct {
	Tpc     float64 // 補正前の擬臨界温度 [°R]
	Ppc     float64 // 補正前の擬臨界圧力 [psi]
	Epsilon float64 // Wichert-Azizの補正項 e [°R]
	TpcCorr float64 // 補正後の擬臨界温度 [°R]
	PpcCorr float64 // 補正後の擬臨界圧力 [psi]
}

// ガス比重 SG [-] (空気=1) からSuttonの相関式により擬臨界温度 Tpc [°R] と擬臨界圧力 Ppc [psi] を求めます。
func PseudoCritical(SG float64) PseudoCriticalProperties {
	return PseudoCriticalProperties{
		Tpc: 169.2 + 349.5*SG - 74.0*SG*SG,
		Ppc: 756.8 - 131.0*SG - 3.6*SG*SG,
	}
}

// Wichert-Azizの補正項 e [°R]
// 引数:
// yH2S, yCO2, yN2: H2S, CO2, N2のモル分率 [-]
func wichertAzizEpsilon(yH2S, yCO2, yN2 float64) float64 {
	A := yN2 + yCO2
	return 120*(math.Pow(A, 0.9)-math.Pow(A, 1.6)) + 15*(math.Sqrt(yH2S)-math.Pow(yH2S, 4))
}

// 非炭化水素 (H2S, CO2, N2) を含むガスの擬臨界特性値をWichert-Azizの方法で補正します。
// 引数:
// Tpc: 擬臨界温度 [°R]
// Ppc: 擬臨界圧力 [psi]
// yH2S, yCO2, yN2: H2S, CO2, N2のモル分率 [-]
// 戻り値:
// 補正後の擬臨界特性値。補正後の値が正の有限値とならない場合は ErrComputationDomain
func CorrectNonHydrocarbon(Tpc, Ppc, yH2S, yCO2, yN2 float64) (CorrectedProperties, error) {
	if yH2S < 0 || yCO2 < 0 || yN2 < 0 {
		return CorrectedProperties{}, fmt.Errorf("negative mole fraction (H2S=%g, CO2=%g, N2=%g): %w",
			yH2S, yCO2, yN2, ErrComputationDomain)
	}

	// 非炭化水素を含まない場合は補正なし
	if yH2S == 0 && yCO2 == 0 && yN2 == 0 {
		return CorrectedProperties{Tpc: Tpc, Ppc: Ppc, TpcCorr: Tpc, PpcCorr: Ppc}, checkPseudoCritical(Tpc, Ppc)
	}

	e := wichertAzizEpsilon(yH2S, yCO2, yN2)
	TpcCorr := Tpc - e

	denom := Tpc + yH2S*(1-yH2S)*(304.2-TpcCorr)
	if !(denom > 0) || math.IsInf(denom, 0) {
		return CorrectedProperties{}, fmt.Errorf("Wichert-Aziz denominator %g: %w", denom, ErrComputationDomain)
	}
	PpcCorr := Ppc * TpcCorr / denom

	res := CorrectedProperties{
		Tpc:     Tpc,
		Ppc:     Ppc,
		Epsilon: e,
		TpcCorr: TpcCorr,
		PpcCorr: PpcCorr,
	}
	return res, checkPseudoCritical(TpcCorr, PpcCorr)
}

// 擬臨界特性値が正の有限値であることを確認します。
func checkPseudoCritical(Tpc, Ppc float64) error {
	if !isPositiveFinite(Tpc) || !isPositiveFinite(Ppc) {
		return fmt.Errorf("pseudo-critical properties Tpc=%g, Ppc=%g: %w", Tpc, Ppc, ErrComputationDomain)
	}
	return nil
}

func isPositiveFinite(v float64) bool {
	return v > 0 && !math.IsInf(v, 1)
}
