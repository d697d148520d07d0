package game

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// SceneManager manages the application's high-level state by controlling which scene is active.
// It ensures only one scene's Update and Draw methods are called at any given time.
type SceneManager struct {
	currentScene Scene
}

// NewSceneManager creates and returns a new SceneManager instance.
// The manager starts with no active scene; use SwitchTo to set the initial scene.
func NewSceneManager() *SceneManager {
	return &SceneManager{}
}

// SwitchTo changes the active scene to the provided scene.
// The old scene is notified via OnExit and the new one via OnEnter when they implement Lifecycle.
func (sm *SceneManager) SwitchTo(scene Scene) {
	if scene == sm.currentScene {
		return
	}
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = scene
	if lc, ok := scene.(Lifecycle); ok {
		lc.OnEnter()
	}
	log.Printf("[SceneManager] Switched to %T", scene)
}

// GetCurrentScene 返回当前活动的场景
//
// 返回：
//   - Scene: 当前场景，如果没有活动场景则返回 nil
func (sm *SceneManager) GetCurrentScene() Scene {
	return sm.currentScene
}

// Close 卸载当前场景（窗口关闭时调用）
func (sm *SceneManager) Close() {
	if lc, ok := sm.currentScene.(Lifecycle); ok {
		lc.OnExit()
	}
	sm.currentScene = nil
}

// Update updates the currently active scene.
// If no scene is active, this method does nothing.
// deltaTime is the time elapsed since the last update in seconds.
func (sm *SceneManager) Update(deltaTime float64) {
	if sm.currentScene != nil {
		sm.currentScene.Update(deltaTime)
	}
}

// Draw renders the currently active scene to the provided screen.
// If no scene is active, this method does nothing.
func (sm *SceneManager) Draw(screen *ebiten.Image) {
	if sm.currentScene != nil {
		sm.currentScene.Draw(screen)
	}
}
