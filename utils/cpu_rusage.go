//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package utils

import (
	"syscall"
	"time"
)

// cpuTime returns the user plus system CPU time used by this process
func cpuTime() time.Duration {
	var usage syscall.Rusage
	if err := syscall.Getrusage(syscall.RUSAGE_SELF, &usage); err != nil {
		return 0
	}
	return time.Duration(usage.Utime.Nano() + usage.Stime.Nano())
}
