// validate_gallery 校验 data/gallery.yaml 并检查引用的资源文件是否存在
//
// 用法：
//
//	go run ./tools/validate_gallery [--data .] [--assets .]
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/gonewx/gallery/pkg/config"
	"github.com/gonewx/gallery/pkg/embedded"
)

var (
	dataDir  = flag.String("data", ".", "Directory containing data/gallery.yaml")
	assetDir = flag.String("assets", ".", "Directory containing assets/")
)

func main() {
	flag.Parse()

	embedded.Init(os.DirFS(*dataDir), *assetDir)

	raw, err := embedded.ReadFile(config.GalleryDataPath)
	if err != nil {
		fmt.Printf("❌ 读取文件失败: %v\n", err)
		os.Exit(1)
	}

	data, err := config.ParseGalleryData(raw)
	if err != nil {
		fmt.Printf("❌ 解析失败: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("✅ YAML 格式正确\n")
	fmt.Printf("✅ 照片数量: %d，背景视频数量: %d\n", len(data.Photos), len(data.Videos))

	missing := 0
	for _, photo := range data.Photos {
		if !embedded.Exists(photo.Src) {
			fmt.Printf("❌ 照片 %d 缺少文件: %s\n", photo.ID, photo.Src)
			missing++
		}
	}
	for i, v := range data.Videos {
		if !embedded.Exists(v) {
			fmt.Printf("❌ 第 %d 个视频缺少文件: %s\n", i+1, v)
			missing++
		}
	}

	if missing == 0 {
		fmt.Printf("✅ 所有引用的资源都存在\n")
	} else {
		fmt.Printf("❌ 有 %d 个资源缺失（运行时会显示替代文本或跳过该视频）\n", missing)
		os.Exit(1)
	}
}
