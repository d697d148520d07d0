// Package video 提供背景视频播放：播放列表、ffmpeg 解码帧源和逐帧推进的背景播放器
package video

import (
	"errors"
	"fmt"
)

// ErrEmptyPlaylist 播放列表为空
var ErrEmptyPlaylist = errors.New("video: playlist is empty")

// Playlist 按顺序循环的视频源列表
// 不变量：0 <= index < len(sources)
type Playlist struct {
	sources []string
	index   int
}

// NewPlaylist 创建播放列表，游标指向第一个视频
func NewPlaylist(sources []string) (*Playlist, error) {
	if len(sources) == 0 {
		return nil, ErrEmptyPlaylist
	}
	for i, src := range sources {
		if src == "" {
			return nil, fmt.Errorf("video: playlist entry %d is empty", i)
		}
	}
	return &Playlist{sources: append([]string(nil), sources...)}, nil
}

// Current 当前视频路径
func (p *Playlist) Current() string {
	return p.sources[p.index]
}

// Index 当前游标
func (p *Playlist) Index() int {
	return p.index
}

// Len 视频数量
func (p *Playlist) Len() int {
	return len(p.sources)
}

// Advance 移到下一个视频（末尾回到开头），返回新的当前路径
// 自然结束与播放错误都通过它推进
func (p *Playlist) Advance() string {
	p.index = (p.index + 1) % len(p.sources)
	return p.sources[p.index]
}
