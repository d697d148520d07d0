// Package app 提供画廊应用的核心包装器
//
// 该包将初始化逻辑从 main 包提取出来，使其可以被桌面端和移动端共用。
// 桌面端通过 main.go 调用 NewApp()，移动端通过 mobile/mobile.go 调用。
package app

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"time"

	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/embedded"
	"github.com/gonewx/gallery/pkg/game"
	"github.com/gonewx/gallery/pkg/scenes"
	"github.com/gonewx/gallery/pkg/sysinfo"
	"github.com/gonewx/gallery/pkg/utils"
	"github.com/gonewx/gallery/pkg/video"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/quasilyte/gdata/v2"
)

// preloadTimeout 启动时图片预加载的最长等待时间
const preloadTimeout = 10 * time.Second

// altFontSize 替代文本字号
const altFontSize = 14

// Config 定义应用启动配置
type Config struct {
	// Verbose 启用详细日志输出
	Verbose bool
	// AnimationDelay 容器淡入前的额外延迟（秒）
	AnimationDelay float64
	// Fullscreen 启动时全屏；为 false 时沿用保存的设置
	Fullscreen bool
	// DisableBackdrop 不播放背景视频（移动端没有 ffmpeg）
	DisableBackdrop bool
}

// App 是画廊应用的核心包装器，实现 ebiten.Game 接口
type App struct {
	sceneManager             *game.SceneManager
	settingsManager          *game.SettingsManager
	gallery                  *scenes.GalleryScene
	backdrop                 *video.Backdrop
	verbose                  bool
	pendingWindowSizeReset   bool // 延迟设置窗口大小标志
	windowSizeResetCountdown int  // 延迟帧数
}

// NewApp 创建并初始化画廊应用
//
// 调用此函数前，必须先调用 embedded.Init() 或 embedded.InitFS() 初始化资源。
func NewApp(cfg Config) (*App, error) {
	// 配置日志输出
	if !cfg.Verbose {
		log.SetOutput(io.Discard)
		log.SetFlags(0)
	}

	data, err := config.LoadGalleryData(config.GalleryDataPath)
	if err != nil {
		return nil, fmt.Errorf("画廊数据加载失败: %w", err)
	}
	log.Printf("[App] Loaded %d photos, %d backdrop videos", len(data.Photos), len(data.Videos))

	// 设置持久化（失败时降级为仅内存设置）
	if err := utils.EnsureStorageDir(); err != nil {
		log.Printf("[App] Warning: storage dir unavailable: %v", err)
	}
	gdataManager, err := gdata.Open(gdata.Config{AppName: config.AppName})
	if err != nil {
		log.Printf("[App] Warning: gdata unavailable, settings will not persist: %v", err)
		gdataManager = nil
	}
	settingsManager, err := game.NewSettingsManager(gdataManager)
	if err != nil {
		return nil, fmt.Errorf("设置初始化失败: %w", err)
	}
	settings := settingsManager.GetSettings()
	if cfg.Fullscreen {
		settingsManager.SetFullscreen(true)
	}

	host := sysinfo.Detect(context.Background())

	// 预先并行解码和裁剪照片，上传在场景创建时进行
	resourceManager := game.NewResourceManager()
	paths := make([]string, 0, len(data.Photos))
	for _, photo := range data.Photos {
		paths = append(paths, photo.Src)
	}
	ctx, cancel := context.WithTimeout(context.Background(), preloadTimeout)
	if err := resourceManager.PreloadCardImages(ctx, paths, host.PreloadWorkers()); err != nil {
		log.Printf("[App] Warning: preload interrupted: %v", err)
	}
	cancel()

	altFont, err := resourceManager.LoadFont(altFontSize)
	if err != nil {
		log.Printf("[App] Warning: alt text font unavailable: %v", err)
		altFont = nil
	}

	backdrop, err := newBackdrop(data.Videos, cfg, settings, host)
	if err != nil {
		return nil, fmt.Errorf("背景播放列表无效: %w", err)
	}

	gallery, err := scenes.NewGalleryScene(scenes.GalleryOptions{
		Data:           data,
		AnimationDelay: cfg.AnimationDelay,
		ShowGrid:       settings.ShowGrid && !utils.IsMobile(),
		Resources:      resourceManager,
		AltFont:        altFont,
		Backdrop:       backdrop,
	})
	if err != nil {
		backdrop.Close()
		return nil, fmt.Errorf("画廊场景创建失败: %w", err)
	}

	sceneManager := game.NewSceneManager()
	sceneManager.SwitchTo(gallery)

	if settings.Fullscreen {
		ebiten.SetFullscreen(true)
	}

	return &App{
		sceneManager:    sceneManager,
		settingsManager: settingsManager,
		gallery:         gallery,
		backdrop:        backdrop,
		verbose:         cfg.Verbose,
	}, nil
}

// newBackdrop 创建背景播放器；没有 ffmpeg 或资源不在磁盘上时返回禁用的播放器
func newBackdrop(videos []string, cfg Config, settings *game.GallerySettings, host sysinfo.HostInfo) (*video.Backdrop, error) {
	playlist, err := video.NewPlaylist(videos)
	if err != nil {
		return nil, err
	}

	switch {
	case cfg.DisableBackdrop || !settings.BackdropEnabled:
		log.Printf("[App] Backdrop disabled by configuration")
		return video.NewBackdrop(playlist, nil, 0), nil
	case embedded.AssetRoot() == "":
		log.Printf("[App] Backdrop disabled: assets are not on disk")
		return video.NewBackdrop(playlist, nil, 0), nil
	case !video.FFmpegAvailable():
		log.Printf("[App] Backdrop disabled: %s not found in PATH", video.FFmpegBinary)
		return video.NewBackdrop(playlist, nil, 0), nil
	}

	scale := settings.BackdropScale
	if scale == 0 {
		scale = host.BackdropScale()
	}
	opts := video.FFmpegOptions{
		Width:  int(float64(config.GameWindowWidth) * scale),
		Height: int(float64(config.GameWindowHeight) * scale),
		FPS:    config.BackdropFPS,
		Buffer: config.BackdropFrameBuffer,
	}
	log.Printf("[App] Backdrop decoding at %dx%d, %d fps", opts.Width, opts.Height, config.BackdropFPS)

	open := video.WithResolver(video.NewFFmpegOpener(opts), embedded.ResolvePath)
	backdrop := video.NewBackdrop(playlist, open, config.BackdropFPS)
	logBackdropAdvances(backdrop)
	return backdrop, nil
}

// logBackdropAdvances 记录播放列表的每次切换及原因
func logBackdropAdvances(b *video.Backdrop) {
	b.OnAdvance(func(index int, cause error) {
		if errors.Is(cause, io.EOF) {
			log.Printf("[App] Backdrop advanced to video %d (advance #%d)", index, b.Advances())
			return
		}
		log.Printf("[App] Backdrop skipped to video %d (advance #%d): %v", index, b.Advances(), cause)
	})
}

// Update 更新应用逻辑
// 每个 tick 调用一次（通常每秒 60 次）
func (a *App) Update() error {
	// 延迟设置窗口大小（退出全屏后需要等待几帧才能正确设置）
	if a.pendingWindowSizeReset {
		a.windowSizeResetCountdown--
		if a.windowSizeResetCountdown <= 0 {
			ebiten.SetWindowSize(config.GameWindowWidth, config.GameWindowHeight)
			log.Printf("[App] Delayed SetWindowSize(%d, %d)", config.GameWindowWidth, config.GameWindowHeight)
			a.pendingWindowSizeReset = false
		}
	}

	// F11 切换全屏
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		a.toggleFullscreen()
	}

	// G 切换网格层
	if inpututil.IsKeyJustPressed(ebiten.KeyG) && !utils.IsMobile() {
		show := !a.settingsManager.GetSettings().ShowGrid
		a.settingsManager.SetShowGrid(show)
		a.gallery.SetShowGrid(show)
		a.saveSettings()
	}

	a.sceneManager.Update(config.FixedDeltaTime)
	return nil
}

func (a *App) toggleFullscreen() {
	if ebiten.IsFullscreen() {
		// 退出全屏
		ebiten.SetFullscreen(false)
		if ebiten.IsWindowMaximized() || ebiten.IsWindowMinimized() {
			ebiten.RestoreWindow()
		}
		// 延迟几帧后设置窗口大小，让窗口管理器有时间处理
		a.pendingWindowSizeReset = true
		a.windowSizeResetCountdown = 3
		log.Printf("[App] Exit fullscreen, will reset window size in 3 frames")
	} else {
		ebiten.SetFullscreen(true)
	}

	a.settingsManager.SetFullscreen(ebiten.IsFullscreen())
	a.saveSettings()
}

func (a *App) saveSettings() {
	if err := a.settingsManager.Save(); err != nil {
		log.Printf("[App] Warning: failed to save settings: %v", err)
	}
}

// Draw 绘制画面
// 每帧调用一次
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(color.Black)
	a.sceneManager.Draw(screen)
}

// DrawFinalScreen 实现 FinalScreenDrawer 接口
// 用于控制全屏时的缩放和 letterbox 颜色
func (a *App) DrawFinalScreen(screen ebiten.FinalScreen, offscreen *ebiten.Image, geoM ebiten.GeoM) {
	// 先填充黑色背景（全屏时左右两边为黑色）
	screen.Fill(color.Black)
	// 使用线性滤波绘制画面，提高缩放质量
	op := &ebiten.DrawImageOptions{}
	op.GeoM = geoM
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(offscreen, op)
}

// Layout 返回逻辑屏幕尺寸
// 此尺寸独立于实际窗口大小，Ebitengine 会自动处理缩放
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.GameWindowWidth, config.GameWindowHeight
}

// Close 卸载场景并停止背景解码（窗口关闭时调用）
func (a *App) Close() {
	a.sceneManager.Close()
	a.backdrop.Close()
}

// GetSceneManager 返回场景管理器
func (a *App) GetSceneManager() *game.SceneManager {
	return a.sceneManager
}

// IsVerbose 返回是否启用了详细日志
func (a *App) IsVerbose() bool {
	return a.verbose
}
