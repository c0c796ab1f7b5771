package version

import (
	"runtime"
	"strings"
	"testing"
)

func TestNewInfo(t *testing.T) {
	info := NewInfo("1.2.3", "abc1234", "2026-08-26")

	if info.Version != "1.2.3" {
		t.Errorf("Version = %q", info.Version)
	}
	if info.GoVer != runtime.Version() {
		t.Errorf("GoVer = %q, want %q", info.GoVer, runtime.Version())
	}
	if info.OS != runtime.GOOS || info.Arch != runtime.GOARCH {
		t.Errorf("OS/Arch = %s/%s", info.OS, info.Arch)
	}
}

func TestInfo_Strings(t *testing.T) {
	info := NewInfo("1.2.3", "abc1234", "2026-08-26")

	short := info.String()
	if !strings.Contains(short, "promptpack 1.2.3") || !strings.Contains(short, "abc1234") {
		t.Errorf("String() = %q", short)
	}

	full := info.FullString()
	for _, want := range []string{"promptpack 1.2.3", "Commit:", "Built:", "Go:", "OS/Arch:"} {
		if !strings.Contains(full, want) {
			t.Errorf("FullString() missing %q: %q", want, full)
		}
	}
}
