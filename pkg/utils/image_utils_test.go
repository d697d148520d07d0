package utils

import (
	"image"
	"image/color"
	"testing"
)

func TestCoverFit(t *testing.T) {
	tests := []struct {
		name       string
		src        image.Rectangle
		dstW, dstH int
		want       image.Rectangle
	}{
		{"wide source crops sides", image.Rect(0, 0, 400, 200), 100, 100, image.Rect(100, 0, 300, 200)},
		{"tall source crops top and bottom", image.Rect(0, 0, 200, 400), 100, 100, image.Rect(0, 100, 200, 300)},
		{"same aspect keeps all", image.Rect(0, 0, 300, 300), 220, 220, image.Rect(0, 0, 300, 300)},
		{"offset source", image.Rect(10, 10, 410, 210), 100, 100, image.Rect(110, 10, 310, 210)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CoverFit(tt.src, tt.dstW, tt.dstH); got != tt.want {
				t.Errorf("CoverFit = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCoverCropSize(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 640, 480))
	FillRGBA(src, color.RGBA{R: 200, G: 100, B: 50, A: 255})

	dst := CoverCrop(src, 220, 220)
	if dst.Bounds().Dx() != 220 || dst.Bounds().Dy() != 220 {
		t.Fatalf("CoverCrop size = %v, want 220x220", dst.Bounds())
	}
	if got := dst.RGBAAt(110, 110); got.R != 200 || got.A != 255 {
		t.Errorf("center pixel = %v, want source color", got)
	}
}

func TestRoundCorners(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	FillRGBA(img, color.RGBA{R: 255, G: 255, B: 255, A: 255})

	RoundCorners(img, 24)

	if a := img.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(99, 99).A; a != 0 {
		t.Errorf("opposite corner alpha = %d, want 0", a)
	}
	if a := img.RGBAAt(50, 50).A; a != 255 {
		t.Errorf("center alpha = %d, want 255", a)
	}
	if a := img.RGBAAt(50, 0).A; a != 255 {
		t.Errorf("top edge middle alpha = %d, want 255", a)
	}
	// 预乘格式：颜色通道不得超过 alpha
	c := img.RGBAAt(3, 3)
	if c.R > c.A {
		t.Errorf("premultiplied invariant broken: %v", c)
	}
}

func TestStrokeRoundedBorder(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 80, 80))
	FillRGBA(img, color.RGBA{0, 0, 0, 255})
	white := color.RGBA{51, 51, 51, 51} // 白色 20%，预乘

	StrokeRoundedBorder(img, 24, 2, white)

	// 上边中点在边框内，被提亮
	if got := img.RGBAAt(40, 0); got.R == 0 {
		t.Errorf("border pixel not painted: %v", got)
	}
	// 中心不受影响
	if got := img.RGBAAt(40, 40); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("centre pixel changed: %v", got)
	}
	// 距边 5px 处不受影响
	if got := img.RGBAAt(40, 5); got != (color.RGBA{0, 0, 0, 255}) {
		t.Errorf("interior pixel changed: %v", got)
	}
}
