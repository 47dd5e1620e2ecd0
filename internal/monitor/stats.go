package monitor

import (
	"context"
	"fmt"
	stdnet "net"
	"regexp"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/disk"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	psnet "github.com/shirou/gopsutil/v3/net"
)

// HostStats reads the kernel-side metrics of the local board.
type HostStats interface {
	CPU(ctx context.Context) (CPUMetrics, error)
	Memory(ctx context.Context) (MemoryMetrics, error)
	Disk(ctx context.Context, path string) (DiskMetrics, error)
	Network(ctx context.Context) (NetworkMetrics, error)
	IP(ctx context.Context) (string, error)
	System(ctx context.Context) (hostname string, uptime time.Duration, err error)
}

// PsutilStats implements HostStats with gopsutil.
type PsutilStats struct{}

// CPU returns usage since the previous call. The first call measures since
// boot.
func (PsutilStats) CPU(ctx context.Context) (CPUMetrics, error) {
	var m CPUMetrics

	percents, err := cpu.PercentWithContext(ctx, 0, false)
	if err != nil {
		return m, fmt.Errorf("failed to read cpu usage: %w", err)
	}
	if len(percents) > 0 {
		m.Percent = percents[0]
	}

	if cores, err := cpu.CountsWithContext(ctx, true); err == nil {
		m.Cores = cores
	}

	if avg, err := load.AvgWithContext(ctx); err == nil {
		m.LoadAvg = [3]float64{avg.Load1, avg.Load5, avg.Load15}
	}
	return m, nil
}

// Memory returns virtual memory usage.
func (PsutilStats) Memory(ctx context.Context) (MemoryMetrics, error) {
	vm, err := mem.VirtualMemoryWithContext(ctx)
	if err != nil {
		return MemoryMetrics{}, fmt.Errorf("failed to read memory usage: %w", err)
	}
	return MemoryMetrics{UsedBytes: vm.Used, TotalBytes: vm.Total, Percent: vm.UsedPercent}, nil
}

// Disk returns usage of the filesystem holding path, plus the byte counters
// of the whole disks.
func (PsutilStats) Disk(ctx context.Context, path string) (DiskMetrics, error) {
	m := DiskMetrics{Path: path}

	usage, err := disk.UsageWithContext(ctx, path)
	if err != nil {
		return m, fmt.Errorf("failed to read disk usage of %s: %w", path, err)
	}
	m.UsedBytes, m.TotalBytes, m.Percent = usage.Used, usage.Total, usage.UsedPercent

	counters, err := disk.IOCountersWithContext(ctx)
	if err != nil {
		return m, fmt.Errorf("failed to read disk counters: %w", err)
	}
	for name, c := range counters {
		if !IsWholeDisk(name) {
			continue
		}
		m.ReadBytes += c.ReadBytes
		m.WriteBytes += c.WriteBytes
	}
	return m, nil
}

// partitionName matches block devices that are a partition of another one:
// sda1, vdb2, mmcblk0p1, nvme0n1p3. The eMMC boot areas count as partitions.
var partitionName = regexp.MustCompile(`^([shv]d[a-z]+\d+|mmcblk\d+(p\d+|boot\d+|rpmb)|nvme\d+n\d+p\d+)$`)

// virtualDiskPrefixes are block devices that aren't storage hardware.
var virtualDiskPrefixes = []string{"loop", "ram", "zram", "dm-", "md"}

// IsWholeDisk reports whether a block device name is a physical disk rather
// than a partition or a virtual device, so counters aren't counted twice.
func IsWholeDisk(name string) bool {
	for _, p := range virtualDiskPrefixes {
		if strings.HasPrefix(name, p) {
			return false
		}
	}
	return !partitionName.MatchString(name)
}

// Network returns byte counters summed over every interface except loopback.
func (PsutilStats) Network(ctx context.Context) (NetworkMetrics, error) {
	var m NetworkMetrics

	counters, err := psnet.IOCountersWithContext(ctx, true)
	if err != nil {
		return m, fmt.Errorf("failed to read network counters: %w", err)
	}
	for _, c := range counters {
		if c.Name == "lo" {
			continue
		}
		m.BytesIn += c.BytesRecv
		m.BytesOut += c.BytesSent
	}
	return m, nil
}

// IP returns the first IPv4 address of a non-loopback interface, or "" when
// the board has none.
func (PsutilStats) IP(ctx context.Context) (string, error) {
	ifaces, err := psnet.InterfacesWithContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list interfaces: %w", err)
	}
	return FirstIPv4(ifaces), nil
}

// FirstIPv4 picks the address hostname -I would print first.
func FirstIPv4(ifaces psnet.InterfaceStatList) string {
	for _, iface := range ifaces {
		if iface.Name == "lo" {
			continue
		}
		for _, addr := range iface.Addrs {
			ip, _, err := stdnet.ParseCIDR(addr.Addr)
			if err != nil {
				ip = stdnet.ParseIP(addr.Addr)
			}
			if ip == nil || ip.IsLoopback() || ip.To4() == nil {
				continue
			}
			return ip.String()
		}
	}
	return ""
}

// System returns the hostname and uptime.
func (PsutilStats) System(ctx context.Context) (string, time.Duration, error) {
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return "", 0, fmt.Errorf("failed to read host info: %w", err)
	}
	return info.Hostname, time.Duration(info.Uptime) * time.Second, nil
}
