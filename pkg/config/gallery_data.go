package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"sort"

	"github.com/gonewx/gallery/pkg/embedded"
	"gopkg.in/yaml.v3"
)

// GalleryDataPath 嵌入的画廊数据文件
const GalleryDataPath = "data/gallery.yaml"

// Direction 照片倾斜方向
type Direction string

const (
	// DirectionLeft 向左倾斜（逆时针，角度为负）
	DirectionLeft Direction = "left"

	// DirectionRight 向右倾斜（顺时针，角度为正）
	DirectionRight Direction = "right"
)

// Sign 返回方向对应的旋转符号：left → -1，right → +1
func (d Direction) Sign() float64 {
	if d == DirectionLeft {
		return -1
	}
	return 1
}

// PhotoDescriptor 单张照片的静态布局数据，启动后不再修改
type PhotoDescriptor struct {
	ID        int       `yaml:"id"`
	Order     int       `yaml:"order"`     // 从左到右的序号，决定级联延迟
	XOffset   float64   `yaml:"x"`         // 目标 X 偏移（像素）
	YOffset   float64   `yaml:"y"`         // 目标 Y 偏移（像素）
	ZIndex    int       `yaml:"zIndex"`    // 静止层级
	Direction Direction `yaml:"direction"` // 倾斜方向
	Src       string    `yaml:"src"`       // 图片路径
	Alt       string    `yaml:"alt"`       // 替代文本，图片加载失败时显示
}

// GalleryData 画廊数据文件的根结构
type GalleryData struct {
	Videos []string          `yaml:"videos"`
	Photos []PhotoDescriptor `yaml:"photos"`
}

// DefaultGalleryData 返回内置的画廊数据（数据文件缺失时使用）
func DefaultGalleryData() *GalleryData {
	return &GalleryData{
		Videos: []string{
			"/assets/backdrop.mp4",
			"/assets/backdrop-3.mp4",
			"/assets/backdrop-4.mp4",
		},
		Photos: []PhotoDescriptor{
			{ID: 1, Order: 0, XOffset: -320, YOffset: 15, ZIndex: 50, Direction: DirectionLeft,
				Src: "/assets/3.jpg", Alt: "Young man with climbing gear on mountain ledge"},
			{ID: 2, Order: 1, XOffset: -160, YOffset: 32, ZIndex: 40, Direction: DirectionLeft,
				Src: "/assets/1 (2).jpg", Alt: "Man in winter gear with snow-capped mountains"},
			{ID: 3, Order: 2, XOffset: 0, YOffset: 8, ZIndex: 30, Direction: DirectionRight,
				Src: "/assets/yellow-flowers.jpg", Alt: "Man with climbing gear surrounded by yellow flowers"},
			{ID: 4, Order: 3, XOffset: 160, YOffset: 22, ZIndex: 20, Direction: DirectionRight,
				Src: "/assets/2 (2).jpg", Alt: "Friends around black taxi on city street"},
			{ID: 5, Order: 4, XOffset: 320, YOffset: 44, ZIndex: 10, Direction: DirectionLeft,
				Src: "/assets/5.jpg", Alt: "Climber on rocky ledge overlooking deep valley"},
		},
	}
}

// LoadGalleryData 从嵌入资源加载画廊数据
//
// 文件不存在时返回内置默认数据；文件存在但无法解析或校验失败时返回错误。
func LoadGalleryData(path string) (*GalleryData, error) {
	raw, err := embedded.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("[Config] %s not found, using built-in gallery data", path)
			return DefaultGalleryData(), nil
		}
		return nil, fmt.Errorf("failed to read gallery data %s: %w", path, err)
	}
	return ParseGalleryData(raw)
}

// ParseGalleryData 解析并校验画廊数据
// 返回的照片按 Order 升序排列
func ParseGalleryData(raw []byte) (*GalleryData, error) {
	var data GalleryData
	if err := yaml.Unmarshal(raw, &data); err != nil {
		return nil, fmt.Errorf("failed to parse gallery data: %w", err)
	}
	if err := validateGalleryData(&data); err != nil {
		return nil, fmt.Errorf("invalid gallery data: %w", err)
	}
	sort.SliceStable(data.Photos, func(i, j int) bool {
		return data.Photos[i].Order < data.Photos[j].Order
	})
	return &data, nil
}

// validateGalleryData 校验数据完整性
func validateGalleryData(data *GalleryData) error {
	if len(data.Videos) == 0 {
		return fmt.Errorf("at least one backdrop video is required")
	}
	if len(data.Photos) == 0 {
		return fmt.Errorf("at least one photo is required")
	}

	seenOrder := make(map[int]int, len(data.Photos))
	seenID := make(map[int]bool, len(data.Photos))
	for i, photo := range data.Photos {
		if photo.Src == "" {
			return fmt.Errorf("photo %d: src is required", i)
		}
		if photo.Order < 0 {
			return fmt.Errorf("photo %d: order must be >= 0, got %d", i, photo.Order)
		}
		if prev, dup := seenOrder[photo.Order]; dup {
			return fmt.Errorf("photo %d: order %d already used by photo %d", i, photo.Order, prev)
		}
		seenOrder[photo.Order] = i
		if seenID[photo.ID] {
			return fmt.Errorf("photo %d: duplicate id %d", i, photo.ID)
		}
		seenID[photo.ID] = true
		switch photo.Direction {
		case DirectionLeft, DirectionRight:
		default:
			return fmt.Errorf("photo %d: direction must be left or right, got %q", i, photo.Direction)
		}
	}

	for i, video := range data.Videos {
		if video == "" {
			return fmt.Errorf("video %d: empty path", i)
		}
	}
	return nil
}
