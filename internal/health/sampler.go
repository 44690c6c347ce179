package health

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v4/cpu"
	"github.com/shirou/gopsutil/v4/disk"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/net"
	"github.com/shirou/gopsutil/v4/process"
)

const (
	defaultDiskPath    = "/"
	defaultCPUInterval = time.Second
	bytesPerMB         = 1 << 20
)

// HostSampler reads resource usage of the local host through gopsutil.
type HostSampler struct {
	diskPath    string
	cpuInterval time.Duration
	pid         int32
}

// NewHostSampler returns a Sampler measuring disk usage of diskPath and CPU
// usage over cpuInterval. Zero values fall back to "/" and one second.
func NewHostSampler(diskPath string, cpuInterval time.Duration) *HostSampler {
	if diskPath == "" {
		diskPath = defaultDiskPath
	}
	if cpuInterval <= 0 {
		cpuInterval = defaultCPUInterval
	}

	return &HostSampler{
		diskPath:    diskPath,
		cpuInterval: cpuInterval,
		pid:         int32(os.Getpid()),
	}
}

func (s *HostSampler) Sample(ctx context.Context) (SystemSample, error) {
	percents, err := cpu.PercentWithContext(ctx, s.cpuInterval, false)
	if err != nil {
		return SystemSample{}, fmt.Errorf("sample cpu: %w", err)
	}
	if len(percents) == 0 {
		return SystemSample{}, ErrNoCPUSample
	}

	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return SystemSample{}, fmt.Errorf("sample memory: %w", err)
	}

	usage, err := disk.UsageWithContext(ctx, s.diskPath)
	if err != nil {
		return SystemSample{}, fmt.Errorf("sample disk %s: %w", s.diskPath, err)
	}

	return SystemSample{
		CPUPercent:           percents[0],
		MemoryPercent:        vm.UsedPercent,
		MemoryAvailableBytes: vm.Available,
		MemoryUsedBytes:      vm.Used,
		DiskPercent:          usage.UsedPercent,
		DiskFreeBytes:        usage.Free,
	}, nil
}

func (s *HostSampler) Process(ctx context.Context) (ProcessInfo, error) {
	p, err := process.NewProcessWithContext(ctx, s.pid)
	if err != nil {
		return ProcessInfo{}, fmt.Errorf("open process %d: %w", s.pid, err)
	}

	memInfo, err := p.MemoryInfoWithContext(ctx)
	if err != nil {
		return ProcessInfo{}, fmt.Errorf("process memory: %w", err)
	}
	cpuPercent, err := p.CPUPercentWithContext(ctx)
	if err != nil {
		return ProcessInfo{}, fmt.Errorf("process cpu: %w", err)
	}
	threads, err := p.NumThreadsWithContext(ctx)
	if err != nil {
		return ProcessInfo{}, fmt.Errorf("process threads: %w", err)
	}
	files, err := p.OpenFilesWithContext(ctx)
	if err != nil {
		return ProcessInfo{}, fmt.Errorf("process open files: %w", err)
	}
	conns, err := p.ConnectionsWithContext(ctx)
	if err != nil {
		return ProcessInfo{}, fmt.Errorf("process connections: %w", err)
	}

	return ProcessInfo{
		PID:        s.pid,
		MemoryMB:   round2(float64(memInfo.RSS) / bytesPerMB),
		CPUPercent: cpuPercent,
		NumThreads: threads,
		OpenFiles:  len(files),
		Conns:      len(conns),
	}, nil
}

func (s *HostSampler) Network(ctx context.Context) (NetworkInfo, error) {
	counters, err := net.IOCountersWithContext(ctx, false)
	if err != nil {
		return NetworkInfo{}, fmt.Errorf("network counters: %w", err)
	}
	conns, err := net.ConnectionsWithContext(ctx, "all")
	if err != nil {
		return NetworkInfo{}, fmt.Errorf("network connections: %w", err)
	}

	var info NetworkInfo
	for _, c := range counters {
		info.BytesSent += c.BytesSent
		info.BytesRecv += c.BytesRecv
		info.PacketsSent += c.PacketsSent
		info.PacketsRecv += c.PacketsRecv
	}
	info.Conns = len(conns)

	return info, nil
}
