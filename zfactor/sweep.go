package zfactor

import (
	"fmt"
	"math"
	"runtime"

	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats"
)

//--------------------------------------
// 圧力スイープ (圧力-Z係数表の作成)
//--------------------------------------

const (
	StandardPressure    = 14.7   // 標準状態の圧力 [psi]
	StandardTemperature = 60.0   // 標準状態の温度 [°F]
	DefaultSweepStep    = 200.0  // スイープの圧力刻み [psi]
	DefaultSweepExtent  = 1000.0 // 入力圧力からのスイープ延長 [psi]

	// 入力圧力と一致する行がない場合の Highlight の値
	NoHighlight = -1

	// スイープする圧力の点数の上限
	MaxSweepPoints = 100000
)

// 圧力-Z係数表の1行
type SweepRow struct {
	Pressure float64 `yaml:"pressure"` // 圧力 [psi]
	Z        float64 `yaml:"z"`        // ガス圧縮係数 [-]
}

// 圧力-Z係数表
type PressureSweepTable struct {
	Rows      []SweepRow
	Highlight int // 入力圧力と一致する行の番号 (なければ NoHighlight)
}

// 圧力スイープの設定
type Sweeper struct {
	Solver  Solver
	Step    float64 // 圧力刻み [psi]
	Extent  float64 // 入力圧力からの延長 [psi]
	Workers int     // 並列計算数 (0以下はCPU数)
}

// 既定値の Sweeper を返します。
func DefaultSweeper() Sweeper {
	return Sweeper{
		Solver:  DefaultSolver(),
		Step:    DefaultSweepStep,
		Extent:  DefaultSweepExtent,
		Workers: runtime.NumCPU(),
	}
}

// スイープする圧力の列を作成します。
// 標準状態の圧力 14.7 psi に続き、step の倍数を step から P+extent 以上となる最初の倍数まで並べます。
// 引数:
// P: 入力圧力 [psi]
// step: 圧力刻み [psi]
// extent: 入力圧力からの延長 [psi]
func SweepPressures(P, step, extent float64) []float64 {
	n := int(math.Ceil((P + extent) / step))
	if n < 1 {
		n = 1
	}

	pressures := make([]float64, 0, n+1)
	pressures = append(pressures, StandardPressure)
	for i := 1; i <= n; i++ {
		pressures = append(pressures, float64(i)*step)
	}
	return pressures
}

// 既定の設定で圧力スイープを行います。
func RunPressureSweep(P, Tpr, PpcCorr float64) (*PressureSweepTable, error) {
	return DefaultSweeper().Sweep(P, Tpr, PpcCorr)
}

type sweepResult struct {
	Index int
	Row   SweepRow
	Err   error
}

// 擬換算温度 Tpr を固定し、圧力を変えながらガス圧縮係数 Z を計算して表を作成します。
// 引数:
// P: 入力圧力 [psi]
// Tpr: 擬換算温度 [-]
// PpcCorr: 補正後の擬臨界圧力 [psi]
func (s Sweeper) Sweep(P, Tpr, PpcCorr float64) (*PressureSweepTable, error) {
	logger := logging.GetLogger("zfactor")

	if !(PpcCorr > 0) {
		return nil, fmt.Errorf("pressure sweep with PpcCorr=%g: %w", PpcCorr, ErrComputationDomain)
	}
	if !(s.Step > 0) || !(s.Extent >= 0) {
		return nil, fmt.Errorf("pressure sweep step=%g extent=%g: %w", s.Step, s.Extent, ErrComputationDomain)
	}
	if math.IsNaN(P) || math.IsInf(P, 0) || math.IsInf(s.Extent, 0) {
		return nil, fmt.Errorf("pressure sweep with P=%g, extent=%g: %w", P, s.Extent, ErrComputationDomain)
	}
	if n := (P + s.Extent) / s.Step; n > MaxSweepPoints {
		return nil, fmt.Errorf("pressure sweep with P=%g needs %.0f points (max %d): %w",
			P, math.Ceil(n), MaxSweepPoints, ErrComputationDomain)
	}

	pressures := SweepPressures(P, s.Step, s.Extent)
	logger.Infof("圧力スイープ %d点 (%g - %g psi)", len(pressures), pressures[0], pressures[len(pressures)-1])

	workers := s.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(pressures) {
		workers = len(pressures)
	}

	jobs := make(chan int, len(pressures))
	c := make(chan sweepResult, len(pressures))
	for w := 0; w < workers; w++ {
		go func() {
			for i := range jobs {
				p := pressures[i]
				res, err := s.Solver.Solve(Tpr, p/PpcCorr)
				c <- sweepResult{i, SweepRow{Pressure: p, Z: res.Z}, err}
			}
		}()
	}
	for i := range pressures {
		jobs <- i
	}
	close(jobs)

	rows := make([]SweepRow, len(pressures))
	var firstErr error
	firstIdx := len(pressures)
	for i := 0; i < len(pressures); i++ {
		ret := <-c
		if ret.Err != nil {
			// 最も低い圧力での失敗を報告する
			if ret.Index < firstIdx {
				firstIdx = ret.Index
				firstErr = ret.Err
			}
			continue
		}
		rows[ret.Index] = ret.Row
	}
	if firstErr != nil {
		logger.Debugf("圧力スイープ失敗 %g psi: %v", pressures[firstIdx], firstErr)
		return nil, fmt.Errorf("pressure sweep at %g psi: %w", pressures[firstIdx], firstErr)
	}

	table := &PressureSweepTable{
		Rows:      rows,
		Highlight: NoHighlight,
	}
	// 入力圧力と完全に一致する行のみを強調表示の対象とする
	for i, row := range rows {
		if row.Pressure == P {
			table.Highlight = i
			break
		}
	}

	return table, nil
}

// ガス圧縮係数の列
func (t *PressureSweepTable) Z() []float64 {
	zs := make([]float64, len(t.Rows))
	for i, row := range t.Rows {
		zs[i] = row.Z
	}
	return zs
}

// 強調表示する行。該当する行がない場合は ok = false
func (t *PressureSweepTable) HighlightRow() (row SweepRow, ok bool) {
	if t.Highlight < 0 || t.Highlight >= len(t.Rows) {
		return SweepRow{}, false
	}
	return t.Rows[t.Highlight], true
}

// 表中のガス圧縮係数の最小値と最大値
func (t *PressureSweepTable) ZRange() (min, max float64) {
	if len(t.Rows) == 0 {
		return math.NaN(), math.NaN()
	}
	zs := t.Z()
	return floats.Min(zs), floats.Max(zs)
}
