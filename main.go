// Photo Gallery 桌面端入口
//
// 用法：
//
//	go run . [flags]
//
// 参数：
//
//	--verbose              输出详细日志
//	--animation-delay <s>  容器淡入前的额外延迟（默认 0.5）
//	--assets <dir>         assets/ 所在的父目录（默认当前目录）
//	--fullscreen           全屏启动
//	--no-backdrop          不播放背景视频
//
// 当前目录下的 .env 文件和环境变量 GALLERY_ANIMATION_DELAY、GALLERY_ASSETS
// 提供参数默认值，命令行参数优先。
//
// 快捷键：F11 切换全屏，G 切换网格。
package main

import (
	"flag"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/gonewx/gallery/pkg/app"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/embedded"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
)

const (
	envAnimationDelay = "GALLERY_ANIMATION_DELAY"
	envAssets         = "GALLERY_ASSETS"
)

// envFloat 读取浮点环境变量，缺失或无法解析时返回 def
func envFloat(key string, def float64) float64 {
	raw, ok := os.LookupEnv(key)
	if !ok || raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		log.Printf("[Main] Warning: ignoring %s=%q: %v", key, raw, err)
		return def
	}
	return v
}

// envString 读取字符串环境变量，缺失时返回 def
func envString(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// applyEnvDefaults 用环境变量填充命令行未显式指定的参数
func applyEnvDefaults(explicit map[string]bool, animationDelay *float64, assetDir *string) {
	if !explicit["animation-delay"] {
		*animationDelay = envFloat(envAnimationDelay, *animationDelay)
	}
	if !explicit["assets"] {
		*assetDir = envString(envAssets, *assetDir)
	}
}

func main() {
	verbose := flag.Bool("verbose", false, "Enable verbose logging")
	animationDelay := flag.Float64("animation-delay", config.DefaultAnimationDelay,
		"Extra delay in seconds before the gallery fades in")
	assetDir := flag.String("assets", ".", "Directory containing assets/")
	fullscreen := flag.Bool("fullscreen", false, "Start in fullscreen mode")
	noBackdrop := flag.Bool("no-backdrop", false, "Disable the backdrop video")
	flag.Parse()

	if !*verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	// .env 可选，不存在时只使用系统环境变量
	if err := godotenv.Load(); err == nil {
		log.Printf("[Main] Loaded environment from .env")
	}

	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { explicit[f.Name] = true })
	applyEnvDefaults(explicit, animationDelay, assetDir)

	embedded.Init(dataFS, *assetDir)

	gameApp, err := app.NewApp(app.Config{
		Verbose:         *verbose,
		AnimationDelay:  *animationDelay,
		Fullscreen:      *fullscreen,
		DisableBackdrop: *noBackdrop,
	})
	if err != nil {
		log.Fatalf("画廊初始化失败: %v", err)
	}
	defer gameApp.Close()

	ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(gameApp); err != nil {
		log.Fatal(err)
	}
}
