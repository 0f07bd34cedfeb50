//go:build linux

package thread

import "golang.org/x/sys/unix"

func schedYield() error {
	if _, _, errno := unix.Syscall(unix.SYS_SCHED_YIELD, 0, 0, 0); errno != 0 {
		return errno
	}
	return nil
}

func currentThreadID() int {
	return unix.Gettid()
}
