package motion

import "github.com/gonewx/gallery/pkg/utils"

// Animation 可被 Value 驱动的插值过程
type Animation interface {
	Update(dt float64)
	Value() float64
	Velocity() float64
	Target() float64
	Done() bool
}

// Animator 动画能力接口：任意平台的动画实现只需支持弹簧与补间两种过渡
type Animator interface {
	SpringTo(target float64, cfg SpringConfig, delay float64)
	TweenTo(target, duration, delay float64, ease utils.EaseFunc)
}

// Value 一个可动画的标量（位置、旋转、缩放、透明度等）
// 同一时刻最多只有一个动画在驱动它，新动画会从当前值和当前速度接续
type Value struct {
	current float64
	anim    Animation
}

var _ Animator = (*Value)(nil)

// NewValue 创建初始值为 v 的动画值
func NewValue(v float64) *Value {
	return &Value{current: v}
}

// Get 当前值
func (v *Value) Get() float64 { return v.current }

// Set 立即跳到 x 并停止动画
func (v *Value) Set(x float64) {
	v.current = x
	v.anim = nil
}

// SpringTo 用弹簧过渡到 target；目标不变且正在运动时保持当前动画
func (v *Value) SpringTo(target float64, cfg SpringConfig, delay float64) {
	if v.anim != nil && v.anim.Target() == target && !v.anim.Done() {
		return
	}
	velocity := 0.0
	if v.anim != nil {
		velocity = v.anim.Velocity()
	}
	v.anim = NewSpring(v.current, target, velocity, cfg, delay)
}

// TweenTo 用补间过渡到 target
func (v *Value) TweenTo(target, duration, delay float64, ease utils.EaseFunc) {
	if v.anim != nil && v.anim.Target() == target && !v.anim.Done() {
		return
	}
	v.anim = NewTween(v.current, target, duration, delay, ease, false)
}

// Play 使用外部构造的动画（例如循环补间）
func (v *Value) Play(anim Animation) {
	v.anim = anim
}

// Animation 返回当前动画，没有时为 nil
func (v *Value) Animation() Animation { return v.anim }

// Target 当前目标值；静止时为当前值
func (v *Value) Target() float64 {
	if v.anim == nil {
		return v.current
	}
	return v.anim.Target()
}

// IsAnimating 是否有未完成的动画
func (v *Value) IsAnimating() bool {
	return v.anim != nil && !v.anim.Done()
}

// Update 推进动画 dt 秒
func (v *Value) Update(dt float64) {
	if v.anim == nil {
		return
	}
	v.anim.Update(dt)
	v.current = v.anim.Value()
	if v.anim.Done() {
		v.anim = nil
	}
}
