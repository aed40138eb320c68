// Package sysinfo holds the one piece of process-wide state the compile
// core deliberately has nothing to do with (spec §5): whether the current
// process appears to be running inside a container. It exists purely for
// the version command's informational output.
package sysinfo

import (
	"os"
	"strings"
	"sync"
)

var (
	containerOnce   sync.Once
	containerResult bool
)

// RunningInContainer reports whether the process appears to be running
// inside a container. The check runs once per process and is cached;
// repeated calls are free.
func RunningInContainer() bool {
	containerOnce.Do(func() {
		containerResult = detectContainer()
	})
	return containerResult
}

func detectContainer() bool {
	if _, err := os.Stat("/.dockerenv"); err == nil {
		return true
	}
	data, err := os.ReadFile("/proc/1/cgroup")
	if err != nil {
		return false
	}
	content := string(data)
	return strings.Contains(content, "docker") || strings.Contains(content, "kubepods")
}
