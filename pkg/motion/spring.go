// Package motion 提供画廊使用的插值原语：弹簧、补间以及承载二者的动画值
//
// 所有时间单位为秒，由游戏循环每帧传入 dt 推进，不依赖墙钟。
package motion

import "math"

// SpringConfig 弹簧参数
type SpringConfig struct {
	Stiffness float64
	Damping   float64
	Mass      float64

	// RestDelta 距离目标小于该值且速度足够小时视为静止
	RestDelta float64
	// RestSpeed 速度绝对值上限（单位/秒）
	RestSpeed float64
}

const (
	defaultRestDelta = 0.01
	defaultRestSpeed = 0.05
)

func (c SpringConfig) normalized() SpringConfig {
	if c.Mass <= 0 {
		c.Mass = 1
	}
	if c.RestDelta <= 0 {
		c.RestDelta = defaultRestDelta
	}
	if c.RestSpeed <= 0 {
		c.RestSpeed = defaultRestSpeed
	}
	return c
}

// DampingRatio 阻尼比 ζ = c / (2·√(k·m))
func (c SpringConfig) DampingRatio() float64 {
	c = c.normalized()
	return c.Damping / (2 * math.Sqrt(c.Stiffness*c.Mass))
}

// Spring 从 from 运动到 to 的阻尼弹簧，使用解析解求值，结果与帧率无关
type Spring struct {
	cfg      SpringConfig
	from, to float64
	v0       float64
	delay    float64
	elapsed  float64
	value    float64
	velocity float64
	done     bool
}

// NewSpring 创建弹簧动画
//
// 参数：
//   - from, to: 起点与目标
//   - velocity: 初速度（单位/秒），中途重定向时传入当前速度
//   - delay: 启动延迟（秒），延迟期间保持在 from
func NewSpring(from, to, velocity float64, cfg SpringConfig, delay float64) *Spring {
	s := &Spring{
		cfg:   cfg.normalized(),
		from:  from,
		to:    to,
		v0:    velocity,
		delay: delay,
		value: from,
	}
	if from == to && velocity == 0 {
		s.done = true
	}
	return s
}

// Update 推进 dt 秒
func (s *Spring) Update(dt float64) {
	if s.done {
		return
	}
	s.elapsed += dt
	t := s.elapsed - s.delay
	if t <= 0 {
		return
	}

	s.value = s.position(t)
	const h = 1e-4
	s.velocity = (s.position(t+h) - s.position(math.Max(t-h, 0))) / (t + h - math.Max(t-h, 0))

	if math.Abs(s.to-s.value) <= s.cfg.RestDelta && math.Abs(s.velocity) <= s.cfg.RestSpeed {
		s.value = s.to
		s.velocity = 0
		s.done = true
	}
}

// position 返回启动后 t 秒的位置
func (s *Spring) position(t float64) float64 {
	k, c, m := s.cfg.Stiffness, s.cfg.Damping, s.cfg.Mass
	omega0 := math.Sqrt(k / m)
	zeta := c / (2 * math.Sqrt(k*m))
	y0 := s.from - s.to // 相对目标的初始位移
	v0 := s.v0

	var y float64
	switch {
	case zeta < 1:
		omegaD := omega0 * math.Sqrt(1-zeta*zeta)
		envelope := math.Exp(-zeta * omega0 * t)
		sin, cos := math.Sincos(omegaD * t)
		y = envelope * (y0*cos + (v0+zeta*omega0*y0)/omegaD*sin)
	case zeta == 1:
		y = math.Exp(-omega0*t) * (y0 + (v0+omega0*y0)*t)
	default:
		root := math.Sqrt(zeta*zeta - 1)
		r1 := -omega0 * (zeta - root)
		r2 := -omega0 * (zeta + root)
		c2 := (v0 - r1*y0) / (r2 - r1)
		c1 := y0 - c2
		y = c1*math.Exp(r1*t) + c2*math.Exp(r2*t)
	}
	return s.to + y
}

// Value 当前值
func (s *Spring) Value() float64 { return s.value }

// Velocity 当前速度（单位/秒）
func (s *Spring) Velocity() float64 { return s.velocity }

// Target 目标值
func (s *Spring) Target() float64 { return s.to }

// Started 启动延迟是否已经过去
func (s *Spring) Started() bool { return s.elapsed >= s.delay }

// Done 是否已静止在目标
func (s *Spring) Done() bool { return s.done }
