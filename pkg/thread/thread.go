package thread

import (
	"fmt"
	"runtime"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Thread is an owned handle to a running (or finished) OS thread whose
// computation yields an A. Exactly one of Join, Wait or Close takes effect.
type Thread[A any] struct {
	id        uuid.UUID
	name      string
	spawnedAt time.Time
	work      *boxed[A]
	state     *handleState
}

// handleState is kept apart from Thread so the garbage-collector cleanup can
// reach it without keeping the handle alive.
type handleState struct {
	consumed atomic.Bool
	provider Provider
	native   ID
	logger   *zap.Logger
}

// Spawn starts f on a new OS thread. f must not share unsynchronized state
// with the caller after this call.
func Spawn[A any](f func() A, opts ...Option) (*Thread[A], error) {
	return spawn(f, buildSettings(opts))
}

// MustSpawn is Spawn with thread creation failure treated as fatal.
func MustSpawn[A any](f func() A, opts ...Option) *Thread[A] {
	t, err := Spawn(f, opts...)
	if err != nil {
		panic(err)
	}
	return t
}

func spawn[A any](f func() A, s settings) (*Thread[A], error) {
	id := uuid.New()
	log := s.logger.With(zap.Stringer("thread_id", id))
	if s.name != "" {
		log = log.With(zap.String("name", s.name))
	}

	if f == nil {
		return nil, fmt.Errorf("%w: nil computation", ErrThreadCreationFailed)
	}

	spawnedAt := time.Now().UTC()
	work := box(f)
	native, err := s.provider.Create(shim, work)
	if err != nil {
		log.Warn("thread creation failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrThreadCreationFailed, err)
	}
	log = log.With(zap.Uint64("native_id", uint64(native)))

	t := &Thread[A]{
		id:        id,
		name:      s.name,
		spawnedAt: spawnedAt,
		work:      work,
		state: &handleState{
			provider: s.provider,
			native:   native,
			logger:   log,
		},
	}
	runtime.AddCleanup(t, func(st *handleState) { st.abandon() }, t.state)

	log.Debug("thread spawned")
	return t, nil
}

// Join blocks until the thread finishes and returns its value, consuming the
// handle. A panic inside the computation is raised again here as a
// *PanicError. Joining a consumed handle panics with ErrAlreadyJoined.
func (t *Thread[A]) Join() A {
	res := t.Wait()
	if res.Err() != nil {
		panic(res.Err())
	}
	return res.Result()
}

// Wait is Join that reports a computation panic through Result.Err instead
// of panicking.
func (t *Thread[A]) Wait() Result[A] {
	if !t.state.consumed.CompareAndSwap(false, true) {
		panic(fmt.Errorf("%w: %s", ErrAlreadyJoined, t.id))
	}
	return t.reclaim()
}

// Close joins the thread and discards its value. It is a no-op on a consumed
// handle and never re-raises a computation panic, so it is safe to defer.
func (t *Thread[A]) Close() error {
	if !t.state.consumed.CompareAndSwap(false, true) {
		return nil
	}
	res := t.reclaim()
	if err := res.Err(); err != nil {
		t.state.logger.Error("discarded result of panicked computation", zap.Error(err))
		return err
	}
	return nil
}

func (t *Thread[A]) reclaim() Result[A] {
	raw, err := t.state.provider.Join(t.state.native)
	if err != nil {
		fatal(ErrJoinFailed, err)
	}

	out, ok := raw.(*outcome[A])
	if !ok && raw == nil && t.work != nil && t.work.out != nil {
		// the computation left through runtime.Goexit
		out, ok = t.work.out, true
	}
	if !ok {
		fatal(ErrJoinFailed, fmt.Errorf("unexpected thread result %T", raw))
	}
	t.state.logger.Debug("thread joined")

	if out.panicErr != nil {
		return failure[A](t.id, t.spawnedAt, out.finishedAt, out.panicErr)
	}
	return success(t.id, t.spawnedAt, out.finishedAt, out.value)
}

func (t *Thread[A]) ID() uuid.UUID {
	return t.id
}

func (t *Thread[A]) Name() string {
	return t.name
}

func (t *Thread[A]) SpawnedAt() time.Time {
	return t.spawnedAt
}

// OSThreadID returns the kernel thread id of the dedicated thread while the
// handle is unconsumed, the thread is still running and the provider can
// report it. A finished thread reports false: its id may already be reused.
func (t *Thread[A]) OSThreadID() (int, bool) {
	if t.state.consumed.Load() {
		return 0, false
	}
	p, ok := t.state.provider.(osThreadIdentifier)
	if !ok {
		return 0, false
	}
	return p.OSThreadID(t.state.native)
}

// abandon joins a thread whose handle was collected without being consumed.
// Cleanups share one goroutine, so the blocking join runs on its own.
func (st *handleState) abandon() {
	if !st.consumed.CompareAndSwap(false, true) {
		return
	}
	st.logger.Warn("thread handle dropped without Join or Close")
	go st.joinAbandoned()
}

// joinAbandoned discards the result of an abandoned thread. A failing join
// is as fatal here as in Join or Close.
func (st *handleState) joinAbandoned() {
	if _, err := st.provider.Join(st.native); err != nil {
		st.logger.Error("background join failed", zap.Error(err))
		fatal(ErrJoinFailed, err)
	}
}
