// Package embedded 提供资源的统一访问接口
//
// data/ 下的配置文件通过 Go embed 编译进二进制（embed.FS 声明在项目根目录 embed.go）；
// assets/ 下的照片和视频体积较大，不嵌入，而是从运行时指定的资源目录读取。
// 调用方只需要使用 "data/..." 或 "assets/..." 前缀的路径，不关心来源。
//
// 使用前必须调用 Init() 初始化。
package embedded

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

var (
	dataFS      fs.FS
	assetsFS    fs.FS
	assetRoot   string
	initialized bool
)

// Init 初始化资源来源
//
// 参数：
//   - data: 嵌入的 data/ 文件系统（测试中可以传入 fstest.MapFS）
//   - assetDir: assets/ 所在的父目录，如 "." 表示当前工作目录下的 assets/
func Init(data fs.FS, assetDir string) {
	if assetDir == "" {
		assetDir = "."
	}
	dataFS = data
	assetRoot = assetDir
	assetsFS = os.DirFS(assetDir)
	initialized = true
}

// InitFS 用两个文件系统初始化（移动端把 assets/ 也嵌入二进制）
// 此时 ResolvePath 不可用
func InitFS(data, assets fs.FS) {
	dataFS = data
	assetsFS = assets
	assetRoot = ""
	initialized = true
}

// IsInitialized 返回 embedded 包是否已初始化
func IsInitialized() bool {
	return initialized
}

// AssetRoot 返回 assets/ 所在的父目录
func AssetRoot() string {
	return assetRoot
}

// ResolvePath 把 "assets/..." 路径转换为磁盘上的路径
// 外部进程（如 ffmpeg）无法读取 fs.FS，需要真实路径
func ResolvePath(path string) (string, error) {
	path = normalize(path)
	if !strings.HasPrefix(path, "assets/") {
		return "", fmt.Errorf("only assets/ paths live on disk: %s", path)
	}
	if assetRoot == "" {
		return "", fmt.Errorf("assets are not on disk: %s", path)
	}
	return filepath.Join(assetRoot, filepath.FromSlash(path)), nil
}

// normalize 统一路径分隔符并移除 "./" 与 "/" 前缀
// 数据文件中的资源路径形如 "/assets/3.jpg"
func normalize(path string) string {
	path = filepath.ToSlash(path)
	path = strings.TrimPrefix(path, "./")
	return strings.TrimPrefix(path, "/")
}

// pick 根据路径前缀选择文件系统
func pick(path string) (fs.FS, string, error) {
	if !initialized {
		return nil, "", fmt.Errorf("embedded package not initialized, call Init() first")
	}
	path = normalize(path)
	switch {
	case strings.HasPrefix(path, "assets/"):
		return assetsFS, path, nil
	case strings.HasPrefix(path, "data/"):
		if dataFS == nil {
			return nil, "", fmt.Errorf("no data filesystem configured for %s", path)
		}
		return dataFS, path, nil
	}
	return nil, "", fmt.Errorf("unknown resource path prefix: %s (must start with 'assets/' or 'data/')", path)
}

// Open 根据路径前缀选择正确的文件系统并打开文件
func Open(path string) (fs.File, error) {
	fsys, name, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fsys.Open(name)
}

// ReadFile 根据路径前缀选择正确的文件系统并读取文件内容
func ReadFile(path string) ([]byte, error) {
	fsys, name, err := pick(path)
	if err != nil {
		return nil, err
	}
	return fs.ReadFile(fsys, name)
}

// Exists 检查文件是否存在
func Exists(path string) bool {
	file, err := Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}
