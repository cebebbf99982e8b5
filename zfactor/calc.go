package zfactor

import (
	"github.com/hhkbp2/go-logging"
)

// 計算結果
type Result struct {
	Inputs    Inputs
	Corrected CorrectedProperties
	Reduced   ReducedProperties
	Z         ZFactorResult
	Sweep     *PressureSweepTable
}

// ガス組成と圧力・温度条件からガス圧縮係数 Z と圧力-Z係数表を計算します。
// 引数:
// in: 入力値 (ParseInputs, NewGasComposition, NewConditions で作成)
// conf: 設定
// 戻り値:
// 計算結果
func Calculate(in Inputs, conf Config) (*Result, error) {
	logger := logging.GetLogger("zfactor")
	logger.Infof("Z係数の計算を実行します")

	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := conf.Validate(); err != nil {
		return nil, err
	}

	gas := in.Gas
	cond := in.Conditions

	// Suttonの相関式による擬臨界特性値
	pc := PseudoCritical(gas.SG)
	logger.Debugf("擬臨界特性値 Tpc=%g °R, Ppc=%g psi", pc.Tpc, pc.Ppc)

	// Wichert-Azizの非炭化水素補正
	corr, err := CorrectNonHydrocarbon(pc.Tpc, pc.Ppc, gas.YH2S, gas.YCO2, gas.YN2)
	if err != nil {
		logger.Debugf("非炭化水素補正に失敗しました: %v", err)
		return nil, err
	}
	logger.Debugf("補正後の擬臨界特性値 e=%g, TpcCorr=%g °R, PpcCorr=%g psi", corr.Epsilon, corr.TpcCorr, corr.PpcCorr)

	// 擬換算特性値
	rp, err := Reduced(cond.P, cond.T, corr.TpcCorr, corr.PpcCorr)
	if err != nil {
		logger.Debugf("擬換算特性値の計算に失敗しました: %v", err)
		return nil, err
	}
	logger.Debugf("擬換算特性値 Tpr=%g, Ppr=%g", rp.Tpr, rp.Ppr)

	// 入力圧力でのZ係数
	z, err := conf.NewSolver().Solve(rp.Tpr, rp.Ppr)
	if err != nil {
		logger.Debugf("Z係数の計算に失敗しました: %v", err)
		return nil, err
	}
	logger.Infof("Z係数 %.4f (反復 %d 回)", z.Z, z.Iterations)

	// 圧力-Z係数表
	table, err := conf.NewSweeper().Sweep(cond.P, rp.Tpr, corr.PpcCorr)
	if err != nil {
		return nil, err
	}

	logger.Infof("計算が終了しました")
	return &Result{
		Inputs:    in,
		Corrected: corr,
		Reduced:   rp,
		Z:         z,
		Sweep:     table,
	}, nil
}
