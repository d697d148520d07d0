package components

import "github.com/gonewx/gallery/pkg/motion"

// LoadingRingComponent 加载覆盖层中的环形缩略卡片
type LoadingRingComponent struct {
	Order int

	// RingX, RingY 环上目标位置相对覆盖层中心的偏移
	RingX, RingY float64

	// Travel 0→1 循环补间：从中心飞到环位置（easeInOut，3s）
	Travel *motion.Tween

	// TargetRotate 环位置对应的外层旋转（order·72°）
	TargetRotate float64

	// Spin 内层自转 0→360（linear，4s，无限循环）
	Spin *motion.Tween

	// Opacity 入场透明度 0→1（0.3s，延迟 order·0.1s）
	Opacity *motion.Tween
}
