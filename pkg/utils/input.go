// Package utils 提供通用工具函数
package utils

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// PointerState 当前帧的指针快照（鼠标或第一个触点）
type PointerState struct {
	// X, Y 指针屏幕坐标
	X, Y float64
	// Pressed 鼠标左键按下或有活动触摸
	Pressed bool
	// Present 指针是否在屏幕上可用于悬停
	// 鼠标始终为 true；触摸只在手指按下时为 true
	Present bool
}

// PointerSource 指针输入来源
// 系统只依赖此接口，测试中可以注入脚本化的指针序列
type PointerSource interface {
	Pointer() PointerState
}

// EbitenPointer 从 Ebitengine 读取真实输入
type EbitenPointer struct{}

// Pointer 获取指针状态，优先触摸，其次鼠标
func (EbitenPointer) Pointer() PointerState {
	touchIDs := ebiten.AppendTouchIDs(nil)
	if len(touchIDs) > 0 {
		x, y := ebiten.TouchPosition(touchIDs[0])
		return PointerState{X: float64(x), Y: float64(y), Pressed: true, Present: true}
	}

	x, y := ebiten.CursorPosition()
	return PointerState{
		X:       float64(x),
		Y:       float64(y),
		Pressed: ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		Present: !IsMobile(),
	}
}
