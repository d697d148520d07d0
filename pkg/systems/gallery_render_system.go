package systems

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/gonewx/gallery/pkg/components"
	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/ecs"
	"github.com/gonewx/gallery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	placeholderColor = color.RGBA{41, 37, 36, 255}   // stone-800
	gridLineColor    = color.RGBA{87, 83, 78, 255}   // #57534e
	altTextColor     = color.RGBA{214, 211, 209, 255} // stone-300
)

// GalleryRenderSystem 按层绘制画廊：
//
//	背景视频（50%）→ 黑色遮罩（50%）→ 网格 → 照片卡片 → 加载覆盖层
type GalleryRenderSystem struct {
	entityManager *ecs.EntityManager
	altFont       *text.GoTextFace

	gridImage    *ebiten.Image
	placeholders map[string]*ebiten.Image
}

// NewGalleryRenderSystem 创建渲染系统
// altFont 用于图片加载失败时绘制替代文本，可以为 nil
func NewGalleryRenderSystem(em *ecs.EntityManager, altFont *text.GoTextFace) *GalleryRenderSystem {
	return &GalleryRenderSystem{
		entityManager: em,
		altFont:       altFont,
		placeholders:  make(map[string]*ebiten.Image),
	}
}

// DrawBackdrop 以 cover 方式铺满屏幕绘制背景帧，再叠加黑色遮罩
func (s *GalleryRenderSystem) DrawBackdrop(screen *ebiten.Image, frame *ebiten.Image) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	if frame != nil {
		fb := frame.Bounds()
		crop := utils.CoverFit(fb, sw, sh)
		sub := frame.SubImage(crop).(*ebiten.Image)

		op := &ebiten.DrawImageOptions{}
		op.GeoM.Scale(float64(sw)/float64(crop.Dx()), float64(sh)/float64(crop.Dy()))
		op.ColorScale.ScaleAlpha(config.BackdropOpacity)
		op.Filter = ebiten.FilterLinear
		screen.DrawImage(sub, op)
	}

	dimAlpha := 255 * config.BackdropDimAlpha
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh),
		color.RGBA{0, 0, 0, uint8(dimAlpha)}, false)
}

// DrawGrid 绘制顶部网格带，向下和向两侧淡出
func (s *GalleryRenderSystem) DrawGrid(screen *ebiten.Image) {
	if utils.IsMobile() {
		// 小屏隐藏网格
		return
	}
	if s.gridImage == nil {
		s.gridImage = ebiten.NewImageFromImage(buildGridImage(screen.Bounds().Dx()))
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.GridOverlayTop)
	op.ColorScale.ScaleAlpha(config.GridOverlayAlpha)
	screen.DrawImage(s.gridImage, op)
}

// buildGridImage 生成网格带图像，使用椭圆径向遮罩（中心在顶部中点）
func buildGridImage(width int) *image.RGBA {
	height := int(config.GridOverlayHeight)
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	cell := int(config.GridCellSize)

	rx := 0.8 * float64(width) / 2
	ry := 0.5 * float64(height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if x%cell != 0 && y%cell != 0 {
				continue
			}
			dx := (float64(x) - float64(width)/2) / rx
			dy := float64(y) / ry
			d := math.Hypot(dx, dy)
			// 0.7 以内不透明，1.1 处完全透明
			mask := utils.Clamp01((1.1 - d) / 0.4)
			if mask == 0 {
				continue
			}
			a := uint8(255 * mask)
			i := img.PixOffset(x, y)
			img.Pix[i+0] = uint8(float64(gridLineColor.R) * mask)
			img.Pix[i+1] = uint8(float64(gridLineColor.G) * mask)
			img.Pix[i+2] = uint8(float64(gridLineColor.B) * mask)
			img.Pix[i+3] = a
		}
	}
	return img
}

// DrawCards 按层级顺序绘制全部照片卡片
// opacity 为容器淡入透明度
func (s *GalleryRenderSystem) DrawCards(screen *ebiten.Image, opacity float64) {
	if opacity <= 0 {
		return
	}
	for _, id := range DrawOrder(s.entityManager) {
		transform, _ := ecs.GetComponent[*components.CardTransformComponent](s.entityManager, id)
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}
		img := s.cardImage(sprite)
		cx, cy := CardCenter(transform)
		s.drawCentered(screen, img, sprite.Width, sprite.Height, cx, cy,
			transform.Rotation(), transform.Scale.Get(), opacity)
	}
}

// DrawLoadingOverlay 绘制加载覆盖层（黑色 80%）与环形缩略卡片
func (s *GalleryRenderSystem) DrawLoadingOverlay(screen *ebiten.Image, rings []ecs.EntityID) {
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(sw), float32(sh),
		color.RGBA{0, 0, 0, uint8(255 * config.LoadingOverlayAlpha)}, false)

	centerX, centerY := float64(sw)/2, float64(sh)/2
	for _, id := range rings {
		ring, ok := ecs.GetComponent[*components.LoadingRingComponent](s.entityManager, id)
		if !ok {
			continue
		}
		sprite, ok := ecs.GetComponent[*components.SpriteComponent](s.entityManager, id)
		if !ok {
			continue
		}
		pose := PoseOf(ring)
		if pose.Opacity <= 0 || pose.Scale <= 0 {
			continue
		}
		s.drawCentered(screen, s.cardImage(sprite), sprite.Width, sprite.Height,
			centerX+pose.X, centerY+pose.Y, pose.Rotation(), pose.Scale, pose.Opacity)
	}
}

// drawCentered 绕图像中心缩放、旋转后绘制到 (cx, cy)
// 图像按 w x h 的目标尺寸拉伸
func (s *GalleryRenderSystem) drawCentered(screen, img *ebiten.Image, w, h, cx, cy, rotationDeg, scale, alpha float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w/float64(b.Dx()), h/float64(b.Dy()))
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Rotate(utils.DegToRad(rotationDeg))
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleAlpha(float32(alpha))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// cardImage 返回卡片图像；没有图像时返回带替代文本的占位图
func (s *GalleryRenderSystem) cardImage(sprite *components.SpriteComponent) *ebiten.Image {
	if sprite.Image != nil {
		return sprite.Image
	}
	w, h := int(sprite.Width), int(sprite.Height)
	key := fmt.Sprintf("%s|%dx%d", sprite.AltText, w, h)
	if img, ok := s.placeholders[key]; ok {
		return img
	}

	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	utils.FillRGBA(rgba, placeholderColor)
	utils.RoundCorners(rgba, config.CardCornerRadius*float64(w)/config.CardWidth)
	img := ebiten.NewImageFromImage(rgba)

	if s.altFont != nil && w >= int(config.CardWidth) {
		lines := wrapText(sprite.AltText, s.altFont, float64(w)-32)
		lineHeight := s.altFont.Size * 1.3
		y := (float64(h) - lineHeight*float64(len(lines))) / 2
		for _, line := range lines {
			op := &text.DrawOptions{}
			op.GeoM.Translate(float64(w)/2, y)
			op.PrimaryAlign = text.AlignCenter
			op.ColorScale.ScaleWithColor(altTextColor)
			text.Draw(img, line, s.altFont, op)
			y += lineHeight
		}
	}

	s.placeholders[key] = img
	return img
}

// wrapText 按单词把文本折成不超过 maxWidth 的多行
func wrapText(str string, face text.Face, maxWidth float64) []string {
	words := strings.Fields(str)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	current := words[0]
	for _, word := range words[1:] {
		candidate := current + " " + word
		if width, _ := text.Measure(candidate, face, 0); width > maxWidth {
			lines = append(lines, current)
			current = word
			continue
		}
		current = candidate
	}
	return append(lines, current)
}
