package game

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Scene represents a screen of the application (e.g., the gallery).
// Each scene has its own update and rendering logic.
type Scene interface {
	// Update updates the scene logic based on the elapsed time.
	// deltaTime is the time elapsed since the last update in seconds.
	Update(deltaTime float64)

	// Draw renders the scene to the provided screen.
	// screen is the target image where the scene should be drawn.
	Draw(screen *ebiten.Image)
}

// Lifecycle 是一个可选接口，场景在挂载和卸载时得到通知
//
// SceneManager.SwitchTo 会先调用旧场景的 OnExit，再调用新场景的 OnEnter；
// 窗口关闭时 SceneManager.Close 调用当前场景的 OnExit。
// 场景在 OnEnter 中启动计时器、在 OnExit 中取消计时器并释放解码器。
type Lifecycle interface {
	OnEnter()
	OnExit()
}
