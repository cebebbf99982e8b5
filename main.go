// zfactor-go
package main

import (
	"bytes"
	"fmt"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"github.com/udawtr/zfactor-go/zfactor"
)

func main() {
	// コマンドライン引数の処理
	parser := argparse.NewParser("zfactor-go", "Calculates the gas compressibility factor (Z-factor) by the Hall-Yarborough method")

	sg := parser.String("", "sg", &argparse.Options{
		Default: "",
		Help:    "ガス比重 (空気=1, 0.55 - 1.0)"})

	pressure := parser.String("p", "pressure", &argparse.Options{
		Default: "",
		Help:    "絶対圧力 [psi] (14.7以上)"})

	temperature := parser.String("t", "temperature", &argparse.Options{
		Default: "",
		Help:    "温度 [°F] (60以上)"})

	h2s := parser.String("", "h2s", &argparse.Options{
		Default: "",
		Help:    "H2Sのモル分率"})

	co2 := parser.String("", "co2", &argparse.Options{
		Default: "",
		Help:    "CO2のモル分率"})

	n2 := parser.String("", "n2", &argparse.Options{
		Default: "",
		Help:    "N2のモル分率"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "保存ファイルパス"})

	format := parser.Selector("f", "file", []string{"TXT", "CSV", "YAML"}, &argparse.Options{
		Default: "TXT",
		Help:    "出力形式 TXT, CSV or YAML"})

	confPath := parser.String("c", "config", &argparse.Options{
		Default: "",
		Help:    "設定ファイル (YAML)"})

	log := parser.Selector("", "log", []string{"DEBUG", "INFO", "WARN", "ERROR", "CRITICAL"}, &argparse.Options{
		Default: "ERROR",
		Help:    "ログレベルの設定"})

	err := parser.Parse(os.Args)
	if err != nil {
		fmt.Print(parser.Usage(err))
		os.Exit(2)
	}

	// ログレベル設定
	logger := logging.GetLogger("zfactor")
	switch *log {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	}
	defer logging.Shutdown()

	// 設定ファイルの読み込み
	conf := zfactor.DefaultConfig()
	if *confPath != "" {
		logger.Infof("設定ファイル読み込み: %s", *confPath)
		conf, err = zfactor.LoadConfig(*confPath)
		if err != nil {
			exitWithError(logger, err)
		}
	}

	// 入力値の確認 (省略したガス組成は設定ファイルの値を使用)
	in, err := zfactor.ParseInputs(zfactor.RawInputs{
		SG:  orDefault(*sg, conf.Gas.SG),
		P:   *pressure,
		T:   *temperature,
		H2S: orDefault(*h2s, conf.Gas.H2S),
		CO2: orDefault(*co2, conf.Gas.CO2),
		N2:  orDefault(*n2, conf.Gas.N2),
	})
	if err != nil {
		exitWithError(logger, err)
	}

	// 計算
	res, err := zfactor.Calculate(in, conf)
	if err != nil {
		exitWithError(logger, err)
	}

	// 保存
	var buf *bytes.Buffer = bytes.NewBuffer([]byte{})
	switch *format {
	case "CSV":
		res.Sweep.ToCSV(buf)
	case "YAML":
		if err := res.ToYAML(buf); err != nil {
			exitWithError(logger, err)
		}
	default:
		res.ToText(buf)
	}

	if *filename == "" {
		fmt.Print(buf.String())
	} else {
		logger.Infof("保存: %s", *filename)
		err := os.WriteFile(*filename, buf.Bytes(), 0644)
		if err != nil {
			exitWithError(logger, err)
		}
	}
}

// 文字列の入力が空のとき設定ファイルの値を使用します。
func orDefault(text string, v *float64) string {
	if text != "" || v == nil {
		return text
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func exitWithError(logger logging.Logger, err error) {
	logger.Errorf("%v", err)
	fmt.Fprintln(os.Stderr, "Error:", err)
	logging.Shutdown()
	os.Exit(1)
}
