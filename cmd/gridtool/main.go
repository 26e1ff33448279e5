// gridtool 是关卡布局的命令行工具：坐标换算和离线校验
//
// Usage:
//
//	gridtool pixel <coord>...        - 坐标 → 格子中心像素
//	gridtool coord <x> <y>           - 像素 → 坐标
//	gridtool span <start> <end>      - 区域的中心和尺寸
//	gridtool cells <start> <end>     - 区域内的所有格子
//	gridtool validate <layout>...    - 执行布局脚本并校验所有放置
//
// Global flags:
//
//	--grid <path>   - 网格配置文件（默认使用标准 10×18 网格）
//	--verbose       - 输出放置系统的详细日志
package main

import (
	"io"
	stdlog "log"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/decker502/hophop/pkg/config"
	"github.com/decker502/hophop/pkg/grid"
)

var (
	flagGridPath string
	flagVerbose  bool

	activeGrid *grid.Grid
	logger     = log.NewWithOptions(os.Stderr, log.Options{Prefix: "gridtool"})
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "gridtool",
	Short: "Grid coordinate and layout validation tool",
	Long: `gridtool converts between grid coordinates ("B12") and pixels, and runs
level layout scripts headlessly to check every placement against the grid.

Examples:
  gridtool pixel A1 J18
  gridtool coord 150 300
  gridtool span B2 D4
  gridtool validate data/levels/level1.yaml`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagGridPath, "grid", "", "Grid config file (default: standard 10x18 grid)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show placement logs")

	rootCmd.AddCommand(pixelCmd)
	rootCmd.AddCommand(coordCmd)
	rootCmd.AddCommand(spanCmd)
	rootCmd.AddCommand(cellsCmd)
	rootCmd.AddCommand(validateCmd)
}

// setup 配置日志并加载网格
func setup(cmd *cobra.Command, args []string) error {
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
		stdlog.SetOutput(os.Stderr)
	} else {
		// 放置系统使用标准库 log
		stdlog.SetOutput(io.Discard)
	}

	g, err := loadGrid(flagGridPath)
	if err != nil {
		return err
	}
	activeGrid = g
	logger.Debug("grid loaded", "columns", g.Columns(), "rows", g.Rows(), "letters", g.Letters())
	return nil
}

func loadGrid(path string) (*grid.Grid, error) {
	if path == "" {
		return grid.NewDefault(), nil
	}
	cfg, err := config.LoadGridConfig(path)
	if err != nil {
		return nil, err
	}
	return grid.New(cfg)
}
