package components

import "github.com/gonewx/gallery/pkg/motion"

// CardTransformComponent 卡片的可动画变换
//
// 最终绘制变换 = 舞台原点 + (OffsetX+DragX, OffsetY+DragY)，
// 旋转 = Rotate + HoverRotate（度），缩放 = Scale。
type CardTransformComponent struct {
	// OffsetX, OffsetY 级联入场位移（0 → 描述中的偏移）
	OffsetX *motion.Value
	OffsetY *motion.Value

	// DragX, DragY 拖拽位移，松手后弹回 0
	DragX *motion.Value
	DragY *motion.Value

	// Rotate 静止倾斜（0 → TiltAngle）
	Rotate *motion.Value

	// HoverRotate 悬停附加旋转（0 ↔ ±2°）
	HoverRotate *motion.Value

	// Scale 手势缩放（1 / 1.1 / 1.2）
	Scale *motion.Value
}

// NewCardTransformComponent 创建处于静止位置的变换
func NewCardTransformComponent() *CardTransformComponent {
	return &CardTransformComponent{
		OffsetX:     motion.NewValue(0),
		OffsetY:     motion.NewValue(0),
		DragX:       motion.NewValue(0),
		DragY:       motion.NewValue(0),
		Rotate:      motion.NewValue(0),
		HoverRotate: motion.NewValue(0),
		Scale:       motion.NewValue(1),
	}
}

// Values 返回全部动画值，便于统一推进
func (c *CardTransformComponent) Values() []*motion.Value {
	return []*motion.Value{c.OffsetX, c.OffsetY, c.DragX, c.DragY, c.Rotate, c.HoverRotate, c.Scale}
}

// X 当前总水平位移
func (c *CardTransformComponent) X() float64 { return c.OffsetX.Get() + c.DragX.Get() }

// Y 当前总垂直位移
func (c *CardTransformComponent) Y() float64 { return c.OffsetY.Get() + c.DragY.Get() }

// Rotation 当前总旋转（度）
func (c *CardTransformComponent) Rotation() float64 { return c.Rotate.Get() + c.HoverRotate.Get() }
