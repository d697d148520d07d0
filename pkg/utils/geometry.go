package utils

import "math"

// DegToRad 角度转弧度
func DegToRad(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToLocal 把屏幕坐标转换到以 (cx, cy) 为中心、旋转 rotationDeg、缩放 scale 的局部坐标系
// 局部原点为矩形中心
func ToLocal(px, py, cx, cy, rotationDeg, scale float64) (float64, float64) {
	dx, dy := px-cx, py-cy
	rad := -DegToRad(rotationDeg)
	sin, cos := math.Sincos(rad)
	lx := dx*cos - dy*sin
	ly := dx*sin + dy*cos
	if scale != 0 {
		lx /= scale
		ly /= scale
	}
	return lx, ly
}

// PointInRotatedRect 判断点是否落在绕中心旋转、缩放后的矩形内
func PointInRotatedRect(px, py, cx, cy, w, h, rotationDeg, scale float64) bool {
	lx, ly := ToLocal(px, py, cx, cy, rotationDeg, scale)
	return math.Abs(lx) <= w/2 && math.Abs(ly) <= h/2
}

// RingOffset 返回第 index 个元素在圆环上的偏移
// 角度 = index * stepDeg，x = cos·radius，y = sin·radius（屏幕坐标 y 向下）
func RingOffset(index int, radius, stepDeg float64) (float64, float64) {
	sin, cos := math.Sincos(DegToRad(float64(index) * stepDeg))
	return cos * radius, sin * radius
}
