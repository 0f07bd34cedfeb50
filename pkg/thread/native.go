package thread

import (
	"fmt"
	"runtime"
	"sync"
)

// NativeOptions configures a Native provider.
type NativeOptions struct {
	// MaxThreads caps the threads that may be running at once. Zero means
	// no cap.
	MaxThreads int
}

// Native starts every entry on a goroutine that is wired to its own OS
// thread for its whole life. The goroutine never unlocks, so the runtime
// tears the thread down when the entry returns.
type Native struct {
	mu      sync.Mutex
	opts    NativeOptions
	next    uint64
	live    int
	threads map[ID]*nativeThread
}

type nativeThread struct {
	tid     int
	started chan struct{}
	done    chan struct{}
	result  any
}

var defaultNative = NewNative(NativeOptions{})

// DefaultProvider returns the shared, uncapped native provider.
func DefaultProvider() Provider {
	return defaultNative
}

func NewNative(opts NativeOptions) *Native {
	return &Native{
		opts:    opts,
		threads: make(map[ID]*nativeThread),
	}
}

func (n *Native) Create(entry Entry, arg any) (ID, error) {
	if entry == nil {
		return 0, fmt.Errorf("%w: nil entry", ErrThreadCreationFailed)
	}

	n.mu.Lock()
	if n.opts.MaxThreads > 0 && n.live >= n.opts.MaxThreads {
		live := n.live
		n.mu.Unlock()
		return 0, fmt.Errorf("%w: %d of %d", ErrThreadLimit, live, n.opts.MaxThreads)
	}
	n.next++
	id := ID(n.next)
	th := &nativeThread{
		started: make(chan struct{}),
		done:    make(chan struct{}),
	}
	n.threads[id] = th
	n.live++
	n.mu.Unlock()

	go n.run(th, entry, arg)
	return id, nil
}

func (n *Native) run(th *nativeThread, entry Entry, arg any) {
	// never unlocked: the OS thread exits together with this goroutine.
	// The main thread is the exception, the runtime parks it instead.
	runtime.LockOSThread()
	th.tid = currentThreadID()
	close(th.started)

	defer func() {
		n.mu.Lock()
		n.live--
		n.mu.Unlock()
		close(th.done)
	}()

	th.result = entry(arg)
}

func (n *Native) Join(id ID) (any, error) {
	n.mu.Lock()
	th, ok := n.threads[id]
	delete(n.threads, id)
	n.mu.Unlock()

	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownThread, id)
	}

	<-th.done
	return th.result, nil
}

func (n *Native) Yield() error {
	return schedYield()
}

// OSThreadID reports the kernel thread id backing a running, unjoined
// thread. It waits for the thread to start if needed. Once the entry has
// returned the id is no longer reported.
func (n *Native) OSThreadID(id ID) (int, bool) {
	n.mu.Lock()
	th, ok := n.threads[id]
	n.mu.Unlock()
	if !ok {
		return 0, false
	}

	<-th.started
	select {
	case <-th.done:
		return 0, false
	default:
	}
	return th.tid, th.tid > 0
}

// Pending returns the number of threads created and not yet joined.
func (n *Native) Pending() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.threads)
}

// Live returns the number of threads that have started and not yet finished.
func (n *Native) Live() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.live
}
