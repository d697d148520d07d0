//go:build mobile

// Package mobile 提供 ebitenmobile 绑定入口
//
// 此包用于构建 Android (.aar) 和 iOS (.xcframework) 包。
// 使用 ebitenmobile 工具构建时会自动调用 init() 函数。
//
// 此文件仅在使用 -tags mobile 构建时编译。
//
//	# Android
//	ebitenmobile bind -target android -tags mobile -androidapi 23 -javapkg com.gonewx.gallery -o build/android/gallery.aar -v ./mobile
//
//	# iOS (仅 macOS)
//	ebitenmobile bind -target ios -tags mobile -o build/ios/Gallery.xcframework -v ./mobile
package mobile

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2/mobile"

	"github.com/gonewx/gallery/pkg/app"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/embedded"
)

func init() {
	// 移动端把 assets/ 一起嵌入，背景视频没有可用的 ffmpeg
	embedded.InitFS(dataFS, assetsFS)

	cfg := app.Config{
		Verbose:         true,
		AnimationDelay:  config.DefaultAnimationDelay,
		DisableBackdrop: true,
	}

	gameApp, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("画廊初始化失败: %v", err)
	}

	// 注册到 ebitenmobile
	mobile.SetGame(gameApp)
}

// Dummy 是一个空导出函数，确保包被 ebitenmobile 正确识别
func Dummy() {}
