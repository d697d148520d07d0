package video

import (
	"context"
	"errors"
	"image"
	"io"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// RetryDelay 整个播放列表连续失败后，重新尝试前等待的秒数
const RetryDelay = 5.0

// Backdrop 循环播放列表的背景视频播放器
//
// 每次只挂载一个帧源。视频自然结束（io.EOF）或出错（含打开失败）时，
// 播放列表前进一位并挂载下一个视频；每次 Update 最多挂载一次。
// 由游戏循环按 dt 驱动，帧按固定帧率取出。
type Backdrop struct {
	playlist *Playlist
	open     Opener
	interval float64

	ctx    context.Context
	cancel context.CancelFunc

	source  FrameSource
	accum   float64
	backoff float64

	// 连续失败次数（成功取到一帧后清零）
	failures int

	frame *image.RGBA
	dirty bool
	image *ebiten.Image

	disabled bool
	advances int

	onAdvance func(index int, cause error)
}

// NewBackdrop 创建背景播放器
// open 为 nil 时播放器处于禁用状态，只绘制遮罩
func NewBackdrop(playlist *Playlist, open Opener, fps float64) *Backdrop {
	ctx, cancel := context.WithCancel(context.Background())
	b := &Backdrop{
		playlist: playlist,
		open:     open,
		ctx:      ctx,
		cancel:   cancel,
	}
	if fps > 0 {
		b.interval = 1 / fps
	}
	if open == nil || playlist == nil || fps <= 0 {
		b.disabled = true
		log.Printf("[Backdrop] Disabled (no decoder)")
	}
	return b
}

// OnAdvance 注册播放列表前进回调；cause 为 io.EOF 表示自然结束
func (b *Backdrop) OnAdvance(fn func(index int, cause error)) {
	b.onAdvance = fn
}

// Disabled 播放器是否被禁用
func (b *Backdrop) Disabled() bool {
	return b.disabled
}

// Index 当前播放列表游标
func (b *Backdrop) Index() int {
	if b.playlist == nil {
		return 0
	}
	return b.playlist.Index()
}

// Advances 播放列表累计前进次数
func (b *Backdrop) Advances() int {
	return b.advances
}

// Mounted 是否挂载了帧源
func (b *Backdrop) Mounted() bool {
	return b.source != nil
}

// Update 推进 dt 秒
func (b *Backdrop) Update(deltaTime float64) {
	if b.disabled {
		return
	}
	if b.backoff > 0 {
		b.backoff -= deltaTime
		if b.backoff > 0 {
			return
		}
		b.backoff = 0
	}

	if b.source == nil {
		if !b.mount() {
			return
		}
		// 新挂载的视频从第一帧开始计时
		b.accum = 0
		b.pull()
		return
	}

	b.accum += deltaTime
	if b.accum < b.interval {
		return
	}
	b.accum -= b.interval
	if b.accum > b.interval {
		// 落后太多时丢弃积压，避免追帧
		b.accum = 0
	}
	b.pull()
}

// mount 挂载当前视频，失败时前进播放列表
func (b *Backdrop) mount() bool {
	path := b.playlist.Current()
	src, err := b.open(b.ctx, path)
	if err != nil {
		log.Printf("[Backdrop] Failed to open %s: %v", path, err)
		b.advance(err)
		return false
	}
	b.source = src
	log.Printf("[Backdrop] Mounted %s (index %d)", path, b.playlist.Index())
	return true
}

// pull 取一帧；结束或出错时卸载并前进
func (b *Backdrop) pull() {
	frame, err := b.source.NextFrame()
	if err != nil {
		if errors.Is(err, io.EOF) {
			log.Printf("[Backdrop] %s ended", b.playlist.Current())
		} else {
			log.Printf("[Backdrop] %s playback error: %v", b.playlist.Current(), err)
		}
		b.unmount()
		b.advance(err)
		return
	}
	if frame == nil {
		return
	}

	b.failures = 0
	if b.frame != nil {
		putFrame(b.frame)
	}
	b.frame = frame
	b.dirty = true
}

func (b *Backdrop) unmount() {
	if b.source == nil {
		return
	}
	if err := b.source.Close(); err != nil {
		log.Printf("[Backdrop] Warning: close failed: %v", err)
	}
	b.source = nil
}

func (b *Backdrop) advance(cause error) {
	b.failures++
	b.playlist.Advance()
	b.advances++
	if b.onAdvance != nil {
		b.onAdvance(b.playlist.Index(), cause)
	}
	if b.failures >= b.playlist.Len() {
		log.Printf("[Backdrop] All %d videos failed, retrying in %.0fs", b.playlist.Len(), RetryDelay)
		b.failures = 0
		b.backoff = RetryDelay
	}
}

// Frame 最近一帧（尚未上传到 GPU 时非 nil）
func (b *Backdrop) Frame() *image.RGBA {
	return b.frame
}

// Image 返回最近一帧的 ebiten 图像，没有帧时返回 nil
func (b *Backdrop) Image() *ebiten.Image {
	if b.dirty && b.frame != nil {
		rect := b.frame.Bounds()
		if b.image == nil || b.image.Bounds().Dx() != rect.Dx() || b.image.Bounds().Dy() != rect.Dy() {
			if b.image != nil {
				b.image.Deallocate()
			}
			b.image = ebiten.NewImage(rect.Dx(), rect.Dy())
		}
		b.image.WritePixels(b.frame.Pix)
		putFrame(b.frame)
		b.frame = nil
		b.dirty = false
	}
	return b.image
}

// Stop 卸载当前帧源；之后的 Update 会从当前游标重新挂载
func (b *Backdrop) Stop() {
	b.unmount()
	b.accum = 0
	b.backoff = 0
	b.failures = 0
}

// Close 卸载当前帧源并取消所有解码
func (b *Backdrop) Close() {
	b.unmount()
	b.cancel()
	if b.frame != nil {
		putFrame(b.frame)
		b.frame = nil
	}
}
