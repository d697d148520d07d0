package video

import (
	"image"
	"sync"
)

// framePool 按尺寸复用 RGBA 帧缓冲，减轻逐帧分配的 GC 压力
type framePool struct {
	pools map[image.Rectangle]*sync.Pool
	mu    sync.RWMutex
}

var frames = &framePool{
	pools: make(map[image.Rectangle]*sync.Pool),
}

// getFrame 取出一块指定尺寸的帧缓冲（内容未清零）
func getFrame(rect image.Rectangle) *image.RGBA {
	return frames.get(rect)
}

// putFrame 归还帧缓冲
func putFrame(img *image.RGBA) {
	frames.put(img)
}

func (p *framePool) get(rect image.Rectangle) *image.RGBA {
	p.mu.RLock()
	pool, exists := p.pools[rect]
	p.mu.RUnlock()

	if !exists {
		p.mu.Lock()
		pool, exists = p.pools[rect]
		if !exists {
			pool = &sync.Pool{
				New: func() interface{} {
					return image.NewRGBA(rect)
				},
			}
			p.pools[rect] = pool
		}
		p.mu.Unlock()
	}

	return pool.Get().(*image.RGBA)
}

func (p *framePool) put(img *image.RGBA) {
	if img == nil {
		return
	}
	p.mu.RLock()
	pool, exists := p.pools[img.Rect]
	p.mu.RUnlock()

	if exists {
		pool.Put(img)
	}
}
