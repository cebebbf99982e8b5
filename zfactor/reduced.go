package zfactor

import (
	"fmt"
	"math"
)

// 華氏温度からランキン温度への換算の加算値 [°R]
const RankineOffset = 459.67

// 擬換算特性値
type ReducedProperties struct {
	Tpr float64 // 擬換算温度 [-]
	Ppr float64 // 擬換算圧力 [-]
}

// 華氏温度 T [°F] をランキン温度 [°R] に換算します。
func FahrenheitToRankine(T float64) float64 {
	return T + RankineOffset
}

// 絶対圧力と温度から擬換算温度 Tpr と擬換算圧力 Ppr を求めます。
// 引数:
// P: 絶対圧力 [psi]
// T: 温度 [°F]
// TpcCorr: 補正後の擬臨界温度 [°R]
// PpcCorr: 補正後の擬臨界圧力 [psi]
// 戻り値:
// 擬換算特性値。TpcCorr, PpcCorr が正でない場合は ErrComputationDomain
func Reduced(P, T, TpcCorr, PpcCorr float64) (ReducedProperties, error) {
	if !(TpcCorr > 0) || !(PpcCorr > 0) {
		return ReducedProperties{}, fmt.Errorf("reduced properties with TpcCorr=%g, PpcCorr=%g: %w",
			TpcCorr, PpcCorr, ErrComputationDomain)
	}

	rp := ReducedProperties{
		Tpr: FahrenheitToRankine(T) / TpcCorr,
		Ppr: P / PpcCorr,
	}
	if math.IsNaN(rp.Tpr) || math.IsInf(rp.Tpr, 0) || math.IsNaN(rp.Ppr) || math.IsInf(rp.Ppr, 0) {
		return ReducedProperties{}, fmt.Errorf("reduced properties Tpr=%g, Ppr=%g: %w",
			rp.Tpr, rp.Ppr, ErrComputationDomain)
	}
	return rp, nil
}
