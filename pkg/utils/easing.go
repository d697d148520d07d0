package utils

import "math"

// Easing Functions (缓动函数)
//
// 所有函数接受一个进度值 t ∈ [0, 1]，返回缓动后的值。
// EaseOut / EaseInOut 与 CSS 同名曲线一致（三次贝塞尔）。

// EaseFunc 缓动函数类型
type EaseFunc func(t float64) float64

// EaseLinear 线性缓动（匀速）
func EaseLinear(t float64) float64 {
	return t
}

// EaseOutQuad 二次方缓出
// 公式：f(t) = 1 - (1-t)²
func EaseOutQuad(t float64) float64 {
	return 1 - (1-t)*(1-t)
}

var (
	// EaseOut cubic-bezier(0, 0, 0.58, 1)，容器淡入使用
	EaseOut = CubicBezier(0, 0, 0.58, 1)

	// EaseInOut cubic-bezier(0.42, 0, 0.58, 1)，加载环往返使用
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

// CubicBezier 构造一条起点 (0,0)、终点 (1,1) 的三次贝塞尔缓动曲线
//
// 先用牛顿迭代由 x 反解参数 s，收敛失败时退回二分查找，再求 y(s)。
func CubicBezier(x1, y1, x2, y2 float64) EaseFunc {
	// 多项式系数：B(s) = ((a*s + b)*s + c)*s
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(s float64) float64 { return ((ax*s+bx)*s + cx) * s }
	sampleY := func(s float64) float64 { return ((ay*s+by)*s + cy) * s }
	sampleDX := func(s float64) float64 { return (3*ax*s+2*bx)*s + cx }

	solve := func(x float64) float64 {
		s := x
		for i := 0; i < 8; i++ {
			err := sampleX(s) - x
			if math.Abs(err) < 1e-7 {
				return s
			}
			d := sampleDX(s)
			if math.Abs(d) < 1e-6 {
				break
			}
			s -= err / d
		}

		lo, hi := 0.0, 1.0
		s = x
		for i := 0; i < 50 && lo < hi; i++ {
			v := sampleX(s)
			if math.Abs(v-x) < 1e-7 {
				break
			}
			if x > v {
				lo = s
			} else {
				hi = s
			}
			s = (lo + hi) / 2
		}
		return s
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return sampleY(solve(t))
	}
}

// Lerp 线性插值
// t=0 返回 a，t=1 返回 b
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 把 t 限制在 [0, 1]
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
