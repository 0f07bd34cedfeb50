package thread

import "time"

// computation is a unit of work with its result type erased, so it can pass
// through the non-generic Entry signature.
type computation interface {
	invoke() any
}

// boxed also keeps the outcome it produced, so the joining side can still
// find it when the computation leaves through runtime.Goexit and the entry
// never returns.
type boxed[A any] struct {
	f   func() A
	out *outcome[A]
}

// outcome is what crosses back over the provider boundary. Only the handle
// that knows A unpacks it.
type outcome[A any] struct {
	value      A
	panicErr   *PanicError
	finishedAt time.Time
}

func box[A any](f func() A) *boxed[A] {
	return &boxed[A]{f: f}
}

func (b *boxed[A]) invoke() (out any) {
	f := b.f
	b.f = nil
	o := &outcome[A]{}
	returned := false

	defer func() {
		if r := recover(); r != nil {
			o.panicErr = newPanicError(r)
		} else if !returned {
			o.panicErr = newPanicError(ErrGoexit)
		}
		o.finishedAt = time.Now().UTC()
		b.out = o
		out = o
	}()

	if f == nil {
		panic("thread: computation invoked twice")
	}
	o.value = f()
	returned = true
	return o
}

// shim is the Entry every spawned thread runs.
func shim(arg any) any {
	c, ok := arg.(computation)
	if !ok {
		return nil
	}
	return c.invoke()
}
