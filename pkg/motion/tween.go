package motion

import (
	"math"

	"github.com/gonewx/gallery/pkg/utils"
)

// Tween 按时长和缓动曲线从 From 过渡到 To
// Loop 为 true 时到达终点后从 From 重新开始（repeatType: loop），永不结束
type Tween struct {
	From, To float64
	Duration float64
	Delay    float64
	Ease     utils.EaseFunc
	Loop     bool

	elapsed float64
}

// NewTween 创建补间；ease 为 nil 时使用线性
func NewTween(from, to, duration, delay float64, ease utils.EaseFunc, loop bool) *Tween {
	if ease == nil {
		ease = utils.EaseLinear
	}
	return &Tween{From: from, To: to, Duration: duration, Delay: delay, Ease: ease, Loop: loop}
}

// Update 推进 dt 秒
func (t *Tween) Update(dt float64) {
	t.elapsed += dt
}

// Progress 原始进度 [0, 1]（未经缓动）
func (t *Tween) Progress() float64 {
	local := t.elapsed - t.Delay
	if local <= 0 {
		return 0
	}
	if t.Duration <= 0 {
		return 1
	}
	if t.Loop {
		return math.Mod(local, t.Duration) / t.Duration
	}
	return utils.Clamp01(local / t.Duration)
}

// Value 当前值
func (t *Tween) Value() float64 {
	return utils.Lerp(t.From, t.To, t.Ease(t.Progress()))
}

// Target 终点值
func (t *Tween) Target() float64 { return t.To }

// Velocity 补间不参与速度衔接，返回 0
func (t *Tween) Velocity() float64 { return 0 }

// Done 非循环补间在时长结束后完成
func (t *Tween) Done() bool {
	return !t.Loop && t.elapsed-t.Delay >= t.Duration
}
