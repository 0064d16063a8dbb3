//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package utils

import "time"

func cpuTime() time.Duration { return 0 }
