package zfactor

import (
	"fmt"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"
)

// 求解の設定
type SolverConfig struct {
	InitialGuess  float64 `yaml:"initial_guess"`
	Tolerance     float64 `yaml:"tolerance"`
	MaxIterations int     `yaml:"max_iterations"`
}

// 圧力スイープの設定
type SweepConfig struct {
	Step      float64 `yaml:"step"`
	Extension float64 `yaml:"extension"`
	Workers   int     `yaml:"workers"`
}

// コマンドラインで省略したときのガス組成 (未設定は nil)
type GasConfig struct {
	SG  *float64 `yaml:"sg,omitempty"`
	H2S *float64 `yaml:"h2s,omitempty"`
	CO2 *float64 `yaml:"co2,omitempty"`
	N2  *float64 `yaml:"n2,omitempty"`
}

// 設定ファイル
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Sweep  SweepConfig  `yaml:"sweep"`
	Gas    GasConfig    `yaml:"gas"`
}

// 既定の設定
func DefaultConfig() Config {
	return Config{
		Solver: SolverConfig{
			InitialGuess:  DefaultInitialGuess,
			Tolerance:     DefaultTolerance,
			MaxIterations: DefaultMaxIterations,
		},
		Sweep: SweepConfig{
			Step:      DefaultSweepStep,
			Extension: DefaultSweepExtent,
			Workers:   runtime.NumCPU(),
		},
	}
}

// YAMLの設定ファイルを読み込みます。ファイルにない項目は既定値のままとします。
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}
	return ParseConfig(b)
}

// YAMLの設定を既定値の上に読み込みます。
func ParseConfig(b []byte) (Config, error) {
	conf := DefaultConfig()
	if err := yaml.Unmarshal(b, &conf); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := conf.Validate(); err != nil {
		return Config{}, err
	}
	return conf, nil
}

// 設定値を確認します。
func (c Config) Validate() error {
	if !(c.Solver.InitialGuess > 0 && c.Solver.InitialGuess < 1) {
		return fmt.Errorf("config: solver.initial_guess must be in (0, 1), got %g", c.Solver.InitialGuess)
	}
	if !(c.Solver.Tolerance > 0) {
		return fmt.Errorf("config: solver.tolerance must be positive, got %g", c.Solver.Tolerance)
	}
	if c.Solver.MaxIterations <= 0 {
		return fmt.Errorf("config: solver.max_iterations must be positive, got %d", c.Solver.MaxIterations)
	}
	if !(c.Sweep.Step > 0) {
		return fmt.Errorf("config: sweep.step must be positive, got %g", c.Sweep.Step)
	}
	if !(c.Sweep.Extension >= 0) {
		return fmt.Errorf("config: sweep.extension must not be negative, got %g", c.Sweep.Extension)
	}
	return nil
}

// 設定から Solver を作成します。
func (c Config) NewSolver() Solver {
	return Solver{
		InitialGuess:  c.Solver.InitialGuess,
		Tolerance:     c.Solver.Tolerance,
		MaxIterations: c.Solver.MaxIterations,
	}
}

// 設定から Sweeper を作成します。
func (c Config) NewSweeper() Sweeper {
	return Sweeper{
		Solver:  c.NewSolver(),
		Step:    c.Sweep.Step,
		Extent:  c.Sweep.Extension,
		Workers: c.Sweep.Workers,
	}
}
