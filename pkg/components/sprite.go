package components

import "github.com/hajimehoshi/ebiten/v2"

// SpriteComponent 存储实体的视觉表现
//
// Image 为 nil 表示图片缺失或加载失败，渲染时绘制占位图并显示 AltText。
type SpriteComponent struct {
	Image   *ebiten.Image
	AltText string
	Width   float64
	Height  float64
}
