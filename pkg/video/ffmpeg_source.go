package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os/exec"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// FFmpegBinary ffmpeg 可执行文件名
const FFmpegBinary = "ffmpeg"

// FFmpegAvailable 检查 PATH 中是否有 ffmpeg
func FFmpegAvailable() bool {
	_, err := exec.LookPath(FFmpegBinary)
	return err == nil
}

// FFmpegOptions 解码参数
type FFmpegOptions struct {
	Width, Height int     // 输出帧尺寸（cover 裁剪后）
	FPS           float64 // 输出帧率
	Buffer        int     // 解码协程与游戏循环之间的缓冲帧数
}

// FFmpegSource 用 ffmpeg 把视频解码为 rawvideo RGBA 帧
// 解码在独立协程中进行，帧通过有界通道交给游戏循环
type FFmpegSource struct {
	path   string
	cmd    *exec.Cmd
	rect   image.Rectangle
	frames chan *image.RGBA
	cancel context.CancelFunc
	done   chan struct{}

	mu  sync.Mutex
	err error
}

// NewFFmpegOpener 返回使用固定解码参数的 Opener
func NewFFmpegOpener(opts FFmpegOptions) Opener {
	return func(ctx context.Context, path string) (FrameSource, error) {
		return OpenFFmpeg(ctx, path, opts)
	}
}

// buildFFmpegArgs 构造解码参数：缩放到覆盖目标尺寸后居中裁剪，丢弃音轨
func buildFFmpegArgs(path string, opts FFmpegOptions) []string {
	filter := fmt.Sprintf("fps=%g,scale=%d:%d:force_original_aspect_ratio=increase,crop=%d:%d",
		opts.FPS, opts.Width, opts.Height, opts.Width, opts.Height)
	return []string{
		"-v", "error",
		"-nostdin",
		"-i", path,
		"-an",
		"-vf", filter,
		"-f", "rawvideo",
		"-pix_fmt", "rgba",
		"-",
	}
}

// OpenFFmpeg 启动 ffmpeg 解码 path
func OpenFFmpeg(ctx context.Context, path string, opts FFmpegOptions) (*FFmpegSource, error) {
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid frame size %dx%d", opts.Width, opts.Height)
	}
	if opts.FPS <= 0 {
		return nil, fmt.Errorf("invalid fps %g", opts.FPS)
	}
	if opts.Buffer <= 0 {
		opts.Buffer = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	cmd := exec.CommandContext(ctx, FFmpegBinary, buildFFmpegArgs(path, opts)...)

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	stdout, err := cmd.StdoutPipe()
	if err != nil {
		cancel()
		return nil, fmt.Errorf("stdout pipe error: %w", err)
	}
	if err := cmd.Start(); err != nil {
		cancel()
		return nil, fmt.Errorf("ffmpeg start error: %w", err)
	}

	s := &FFmpegSource{
		path:   path,
		cmd:    cmd,
		rect:   image.Rect(0, 0, opts.Width, opts.Height),
		frames: make(chan *image.RGBA, opts.Buffer),
		cancel: cancel,
		done:   make(chan struct{}),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		readErr := s.readFrames(gctx, stdout)
		if readErr != nil {
			// 读取中断时先终止进程，避免 ffmpeg 阻塞在写管道上
			cancel()
		}
		// 无论读取结果如何都要回收进程
		waitErr := cmd.Wait()
		if readErr != nil {
			return readErr
		}
		if waitErr != nil && ctx.Err() == nil {
			return fmt.Errorf("ffmpeg %s: %w: %s", path, waitErr, strings.TrimSpace(stderr.String()))
		}
		return nil
	})

	go func() {
		err := g.Wait()
		s.mu.Lock()
		s.err = err
		s.mu.Unlock()
		close(s.frames)
		close(s.done)
	}()

	return s, nil
}

// readFrames 从 r 连续读取整帧直到 EOF
func (s *FFmpegSource) readFrames(ctx context.Context, r io.Reader) error {
	for {
		frame := getFrame(s.rect)
		if _, err := io.ReadFull(r, frame.Pix); err != nil {
			putFrame(frame)
			if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
				return nil
			}
			return fmt.Errorf("read frame: %w", err)
		}
		select {
		case s.frames <- frame:
		case <-ctx.Done():
			putFrame(frame)
			return ctx.Err()
		}
	}
}

// NextFrame 取一帧，不阻塞
func (s *FFmpegSource) NextFrame() (*image.RGBA, error) {
	select {
	case frame, ok := <-s.frames:
		if ok {
			return frame, nil
		}
		s.mu.Lock()
		err := s.err
		s.mu.Unlock()
		if err != nil {
			return nil, err
		}
		return nil, io.EOF
	default:
		return nil, nil
	}
}

// Close 终止 ffmpeg，等待解码协程退出并回收进程
func (s *FFmpegSource) Close() error {
	s.cancel()
	<-s.done
	for frame := range s.frames {
		putFrame(frame)
	}
	return nil
}
