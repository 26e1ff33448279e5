package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/decker502/hophop/pkg/app"
	"github.com/decker502/hophop/pkg/embedded"
)

var (
	verbose   = flag.Bool("verbose", false, "显示详细调试信息")
	level     = flag.String("level", "", "启动关卡：布局文件路径或关卡名（如 level2）")
	gridPath  = flag.String("grid", "", "网格配置文件路径（默认 data/config/grid.yaml）")
	levelsDir = flag.String("levels", "", "关卡布局目录（默认 data/levels）")
)

func main() {
	flag.Parse()

	// assetsFS 和 dataFS 在 embed.go 中声明
	embedded.Init(assetsFS, dataFS)

	gameApp, err := app.NewApp(app.Config{
		Verbose:        *verbose,
		Level:          *level,
		GridConfigPath: *gridPath,
		LevelsDir:      *levelsDir,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化失败: %v\n", err)
		os.Exit(1)
	}

	w, h := gameApp.Layout(0, 0)
	ebiten.SetWindowSize(w*2, h*2)
	ebiten.SetWindowTitle("Hop Hop Puff - Level Editor")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowClosingHandled(true)

	// 非 verbose 模式下标准日志已被丢弃，错误直接写到 stderr
	if err := ebiten.RunGame(gameApp); err != nil && err != ebiten.Termination {
		fmt.Fprintf(os.Stderr, "运行失败: %v\n", err)
		os.Exit(1)
	}
}
