package game

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg" // Register JPEG decoder
	_ "image/png"  // Register PNG decoder
	"log"
	"sync"

	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/embedded"
	"github.com/gonewx/gallery/pkg/utils"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/sync/errgroup"
)

// thumbnailBorder 加载环缩略图的描边（白色 20%，预乘）
var thumbnailBorder = color.RGBA{51, 51, 51, 51}

// ResourceManager 负责图片与字体的加载和缓存
//
// 照片按用途预处理成卡片尺寸（cover 裁剪 + 圆角），缓存键包含尺寸。
// 解码与裁剪可以并行（PreloadCardImages），上传到 GPU 只在游戏线程进行。
type ResourceManager struct {
	mu          sync.Mutex
	sourceCache map[string]image.Image       // 原始解码结果: path -> image
	prepared    map[string]*image.RGBA       // 预处理完成、尚未上传的图像: key -> RGBA
	imageCache  map[string]*ebiten.Image     // 已上传的图像: key -> Image
	fontCache   map[float64]*text.GoTextFace // 内置字体: size -> face
	fontSource  *text.GoTextFaceSource
}

// NewResourceManager 创建资源管理器
func NewResourceManager() *ResourceManager {
	return &ResourceManager{
		sourceCache: make(map[string]image.Image),
		prepared:    make(map[string]*image.RGBA),
		imageCache:  make(map[string]*ebiten.Image),
		fontCache:   make(map[float64]*text.GoTextFace),
	}
}

// cardKey 预处理图像的缓存键
func cardKey(path string, width, height int, border bool) string {
	return fmt.Sprintf("%s@%dx%d:%t", path, width, height, border)
}

// decodeImage 解码图片（带缓存，可并发调用）
func (rm *ResourceManager) decodeImage(path string) (image.Image, error) {
	rm.mu.Lock()
	if img, ok := rm.sourceCache[path]; ok {
		rm.mu.Unlock()
		return img, nil
	}
	rm.mu.Unlock()

	file, err := embedded.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image file %s: %w", path, err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}

	rm.mu.Lock()
	rm.sourceCache[path] = img
	rm.mu.Unlock()
	return img, nil
}

// prepareCard 解码并裁剪为 width x height 的圆角卡片（可并发调用）
func (rm *ResourceManager) prepareCard(path string, width, height int, border bool) (*image.RGBA, error) {
	key := cardKey(path, width, height, border)
	rm.mu.Lock()
	if rgba, ok := rm.prepared[key]; ok {
		rm.mu.Unlock()
		return rgba, nil
	}
	rm.mu.Unlock()

	src, err := rm.decodeImage(path)
	if err != nil {
		return nil, err
	}

	rgba := utils.CoverCrop(src, width, height)
	radius := config.CardCornerRadius * float64(width) / config.CardWidth
	utils.RoundCorners(rgba, radius)
	if border {
		utils.StrokeRoundedBorder(rgba, radius, 2, thumbnailBorder)
	}

	rm.mu.Lock()
	rm.prepared[key] = rgba
	rm.mu.Unlock()
	return rgba, nil
}

// upload 把预处理结果上传为 ebiten 图像（仅游戏线程）
func (rm *ResourceManager) upload(key string, rgba *image.RGBA) *ebiten.Image {
	if img, ok := rm.imageCache[key]; ok {
		return img
	}
	img := ebiten.NewImageFromImage(rgba)
	rm.imageCache[key] = img

	rm.mu.Lock()
	delete(rm.prepared, key)
	rm.mu.Unlock()
	return img
}

// LoadCardImage 加载照片并处理为 width x height 的圆角卡片图像
func (rm *ResourceManager) LoadCardImage(path string, width, height int) (*ebiten.Image, error) {
	key := cardKey(path, width, height, false)
	if img, ok := rm.imageCache[key]; ok {
		return img, nil
	}
	rgba, err := rm.prepareCard(path, width, height, false)
	if err != nil {
		return nil, err
	}
	return rm.upload(key, rgba), nil
}

// LoadThumbnail 加载加载环使用的带描边缩略图，失败时返回 nil
func (rm *ResourceManager) LoadThumbnail(path string, size int) *ebiten.Image {
	key := cardKey(path, size, size, true)
	if img, ok := rm.imageCache[key]; ok {
		return img
	}
	rgba, err := rm.prepareCard(path, size, size, true)
	if err != nil {
		log.Printf("[ResourceManager] Warning: thumbnail %s unavailable: %v", path, err)
		return nil
	}
	return rm.upload(key, rgba)
}

// PreloadCardImages 并行解码并裁剪照片，不上传 GPU
//
// workers <= 0 时不限制并发。单张失败只记录日志，卡片之后会显示替代文本；
// 只有 ctx 取消时返回错误。
func (rm *ResourceManager) PreloadCardImages(ctx context.Context, paths []string, workers int) error {
	g, gctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	for _, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if _, err := rm.prepareCard(path, int(config.CardWidth), int(config.CardHeight), false); err != nil {
				log.Printf("[ResourceManager] Warning: preload %s failed: %v", path, err)
			}
			if _, err := rm.prepareCard(path, int(config.LoadingCardSize), int(config.LoadingCardSize), true); err != nil {
				log.Printf("[ResourceManager] Warning: preload thumbnail %s failed: %v", path, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("preload cancelled: %w", err)
	}
	log.Printf("[ResourceManager] Preloaded %d photos (workers=%d)", len(paths), workers)
	return nil
}

// IsPrepared 图片是否已预处理或已上传
func (rm *ResourceManager) IsPrepared(path string, width, height int) bool {
	key := cardKey(path, width, height, false)
	if _, ok := rm.imageCache[key]; ok {
		return true
	}
	rm.mu.Lock()
	defer rm.mu.Unlock()
	_, ok := rm.prepared[key]
	return ok
}

// LoadFont 返回内置字体（Go Regular）指定字号的字体面
func (rm *ResourceManager) LoadFont(size float64) (*text.GoTextFace, error) {
	if face, exists := rm.fontCache[size]; exists {
		return face, nil
	}

	if rm.fontSource == nil {
		source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
		if err != nil {
			return nil, fmt.Errorf("failed to create font source: %w", err)
		}
		rm.fontSource = source
	}

	face := &text.GoTextFace{
		Source:    rm.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	rm.fontCache[size] = face
	return face, nil
}
