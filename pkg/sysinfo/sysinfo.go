// Package sysinfo 探测主机性能，用于选择背景视频解码分辨率和预加载并发数
package sysinfo

import (
	"context"
	"log"
	"runtime"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
)

const gib = 1 << 30

// HostInfo 主机概况
type HostInfo struct {
	LogicalCPUs int
	TotalMemory uint64 // 字节，未知时为 0
}

// Detect 读取 CPU 与内存信息；gopsutil 失败时回退到 runtime.NumCPU
func Detect(ctx context.Context) HostInfo {
	info := HostInfo{LogicalCPUs: runtime.NumCPU()}

	if n, err := cpu.CountsWithContext(ctx, true); err == nil && n > 0 {
		info.LogicalCPUs = n
	} else if err != nil {
		log.Printf("[SysInfo] Warning: cpu count unavailable: %v", err)
	}

	if vm, err := mem.VirtualMemoryWithContext(ctx); err == nil {
		info.TotalMemory = vm.Total
	} else {
		log.Printf("[SysInfo] Warning: memory info unavailable: %v", err)
	}

	log.Printf("[SysInfo] %d logical CPUs, %.1f GiB memory", info.LogicalCPUs, float64(info.TotalMemory)/gib)
	return info
}

// BackdropScale 背景视频解码分辨率相对窗口的比例
//
//	>= 8 核且 >= 8GiB  1.0
//	>= 4 核            0.75
//	其他               0.5
func (h HostInfo) BackdropScale() float64 {
	switch {
	case h.LogicalCPUs >= 8 && h.TotalMemory >= 8*gib:
		return 1.0
	case h.LogicalCPUs >= 4:
		return 0.75
	}
	return 0.5
}

// PreloadWorkers 图片预加载并发数，范围 [1, 4]
func (h HostInfo) PreloadWorkers() int {
	switch {
	case h.LogicalCPUs <= 1:
		return 1
	case h.LogicalCPUs >= 4:
		return 4
	}
	return h.LogicalCPUs
}
