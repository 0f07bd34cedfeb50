//go:build !linux

package thread

import "runtime"

func schedYield() error {
	runtime.Gosched()
	return nil
}

// currentThreadID has no portable source outside Linux.
func currentThreadID() int {
	return 0
}
