package components

import "github.com/gonewx/gallery/pkg/config"

// PhotoCardComponent 照片卡片的静态数据与交互状态
//
// Descriptor 和 TiltAngle 在卡片实体创建时确定，卡片存活期间不再变化；
// 其余字段由 CardGestureSystem 每帧更新。
type PhotoCardComponent struct {
	Descriptor config.PhotoDescriptor

	// TiltAngle 静止倾斜角（度），|TiltAngle| ∈ [1, 4)，符号由方向决定
	TiltAngle float64

	// ChildIndex 在渲染顺序（倒序列表）中的位置，order 最大的卡片为 0
	ChildIndex int

	// AppearDelay 兄弟错峰出现延迟（秒），相对 Loaded 时刻
	AppearDelay float64

	// Appeared 错峰出现是否已发生
	Appeared bool

	// CascadeStarted 入场弹簧是否已经开始运动
	CascadeStarted bool

	// PointerX, PointerY 指针相对卡片布局盒左上角的偏移
	// 指针离开后重置为 (200, 200)
	PointerX, PointerY float64

	// 手势状态
	IsHovered  bool
	IsPressed  bool
	IsDragging bool

	// PressX, PressY 按下时的指针位置（用于拖拽阈值与拖拽位移）
	PressX, PressY float64
}

// EffectiveZIndex 悬停、按下或拖拽时提升到最顶层，否则使用描述中的层级
func (c *PhotoCardComponent) EffectiveZIndex() int {
	if c.IsHovered || c.IsPressed || c.IsDragging {
		return config.RaisedZIndex
	}
	return c.Descriptor.ZIndex
}

// ResetPointer 指针离开时恢复默认偏移
func (c *PhotoCardComponent) ResetPointer() {
	c.PointerX = config.PointerResetX
	c.PointerY = config.PointerResetY
}
