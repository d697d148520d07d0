package video

import (
	"context"
	"image"
)

// FrameSource 一个已挂载视频的逐帧来源
//
// NextFrame 不阻塞：
//   - (frame, nil)   新的一帧
//   - (nil, nil)     下一帧尚未就绪，继续显示上一帧
//   - (nil, io.EOF)  视频自然结束
//   - (nil, err)     播放错误
type FrameSource interface {
	NextFrame() (*image.RGBA, error)
	Close() error
}

// Opener 为指定路径打开帧源；打开失败视为播放错误
type Opener func(ctx context.Context, path string) (FrameSource, error)

// WithResolver 在打开前把播放列表路径转换为解码器可读的路径
// 转换失败同样视为播放错误
func WithResolver(open Opener, resolve func(string) (string, error)) Opener {
	return func(ctx context.Context, path string) (FrameSource, error) {
		resolved, err := resolve(path)
		if err != nil {
			return nil, err
		}
		return open(ctx, resolved)
	}
}
