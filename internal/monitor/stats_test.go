package monitor

import (
	"testing"

	psnet "github.com/shirou/gopsutil/v3/net"
	"github.com/stretchr/testify/assert"
)

func TestIsWholeDisk(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"mmcblk0", true},
		{"mmcblk0p1", false},
		{"mmcblk0p2", false},
		{"mmcblk0boot0", false},
		{"sda", true},
		{"sda1", false},
		{"nvme0n1", true},
		{"nvme0n1p2", false},
		{"loop0", false},
		{"ram0", false},
		{"zram0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsWholeDisk(tt.name))
		})
	}
}

func TestFirstIPv4(t *testing.T) {
	ifaces := psnet.InterfaceStatList{
		{Name: "lo", Addrs: psnet.InterfaceAddrList{{Addr: "127.0.0.1/8"}}},
		{Name: "eth0", Addrs: psnet.InterfaceAddrList{{Addr: "fe80::1/64"}}},
		{Name: "wlan0", Addrs: psnet.InterfaceAddrList{
			{Addr: "fe80::2/64"},
			{Addr: "192.168.1.20/24"},
		}},
	}
	assert.Equal(t, "192.168.1.20", FirstIPv4(ifaces))

	assert.Empty(t, FirstIPv4(ifaces[:2]))
	assert.Empty(t, FirstIPv4(nil))
}
