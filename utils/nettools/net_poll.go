//go:build darwin || linux
// +build darwin linux

package nettools

import (
	"golang.org/x/sys/unix"
)

func init() {
	probe = pollReadable
}

// pollReadable polls with a zero timeout so the calling goroutine never
// hangs in a syscall.
func pollReadable(fd int) (bool, bool) {
	fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
	n, err := unix.Poll(fds, 0)
	if err != nil {
		return false, false
	}
	return n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0, true
}
