package utils

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
)

// CoverFit 计算 object-fit: cover 的源裁剪区域
//
// 返回源图中以中心对齐、宽高比与目标一致的最大矩形。
func CoverFit(src image.Rectangle, dstW, dstH int) image.Rectangle {
	sw, sh := src.Dx(), src.Dy()
	if sw == 0 || sh == 0 || dstW <= 0 || dstH <= 0 {
		return src
	}

	// 比较 sw/sh 与 dstW/dstH，避免浮点误差
	cropW, cropH := sw, sh
	if sw*dstH > sh*dstW {
		cropW = sh * dstW / dstH
	} else {
		cropH = sw * dstH / dstW
	}

	x0 := src.Min.X + (sw-cropW)/2
	y0 := src.Min.Y + (sh-cropH)/2
	return image.Rect(x0, y0, x0+cropW, y0+cropH)
}

// CoverCrop 把源图按 cover 方式裁剪并缩放到 dstW x dstH
func CoverCrop(src image.Image, dstW, dstH int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, dstW, dstH))
	crop := CoverFit(src.Bounds(), dstW, dstH)
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
	return dst
}

// CoverScaleInto 与 CoverCrop 相同，但写入调用方提供的目标图（视频帧复用缓冲区）
func CoverScaleInto(dst *image.RGBA, src image.Image) {
	crop := CoverFit(src.Bounds(), dst.Bounds().Dx(), dst.Bounds().Dy())
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, crop, xdraw.Src, nil)
}

// RoundCorners 就地把图像四角裁成半径为 radius 的圆角（边缘 1px 抗锯齿）
func RoundCorners(img *image.RGBA, radius float64) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if radius <= 0 {
		return
	}
	radius = math.Min(radius, math.Min(w, h)/2)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			coverage := cornerCoverage(float64(x-b.Min.X)+0.5, float64(y-b.Min.Y)+0.5, w, h, radius)
			if coverage >= 1 {
				continue
			}
			i := img.PixOffset(x, y)
			// RGBA 为预乘格式，四个通道同比例缩放
			for c := 0; c < 4; c++ {
				img.Pix[i+c] = uint8(float64(img.Pix[i+c]) * coverage)
			}
		}
	}
}

// cornerCoverage 返回像素中心 (px, py) 在圆角矩形内的覆盖率
func cornerCoverage(px, py, w, h, r float64) float64 {
	cx := math.Min(math.Max(px, r), w-r)
	cy := math.Min(math.Max(py, r), h-r)
	dist := math.Hypot(px-cx, py-cy)
	return Clamp01(r - dist + 0.5)
}

// FillRGBA 用纯色填充图像（占位图使用）
func FillRGBA(img *image.RGBA, c color.RGBA) {
	for i := 0; i < len(img.Pix); i += 4 {
		img.Pix[i+0] = c.R
		img.Pix[i+1] = c.G
		img.Pix[i+2] = c.B
		img.Pix[i+3] = c.A
	}
}

// StrokeRoundedBorder 沿圆角矩形内侧描一圈宽 width 的边框
// c 为预乘颜色，按 source-over 合成到 img 上
func StrokeRoundedBorder(img *image.RGBA, radius, width float64, c color.RGBA) {
	b := img.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	if width <= 0 || w <= 2*width || h <= 2*width {
		return
	}
	radius = math.Min(radius, math.Min(w, h)/2)
	innerRadius := math.Max(radius-width, 0)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px, py := float64(x-b.Min.X)+0.5, float64(y-b.Min.Y)+0.5
			outer := cornerCoverage(px, py, w, h, radius)
			inner := cornerCoverage(px-width, py-width, w-2*width, h-2*width, innerRadius)
			if px < width || py < width || px > w-width || py > h-width {
				inner = 0
			}
			k := Clamp01(outer - inner)
			if k == 0 {
				continue
			}
			i := img.PixOffset(x, y)
			inv := 1 - float64(c.A)/255*k
			img.Pix[i+0] = uint8(float64(c.R)*k + float64(img.Pix[i+0])*inv)
			img.Pix[i+1] = uint8(float64(c.G)*k + float64(img.Pix[i+1])*inv)
			img.Pix[i+2] = uint8(float64(c.B)*k + float64(img.Pix[i+2])*inv)
			img.Pix[i+3] = uint8(float64(c.A)*k + float64(img.Pix[i+3])*inv)
		}
	}
}
