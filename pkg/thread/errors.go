package thread

import (
	"errors"
	"fmt"
	"runtime/debug"
)

var (
	ErrThreadCreationFailed = errors.New("thread: creation failed")
	ErrThreadLimit          = errors.New("thread: live thread limit reached")
	ErrJoinFailed           = errors.New("thread: join failed")
	ErrUnknownThread        = errors.New("thread: unknown thread id")
	ErrYieldFailed          = errors.New("thread: yield failed")
	ErrAlreadyJoined        = errors.New("thread: handle already joined")
	ErrScopeClosed          = errors.New("thread: scope closed")
	ErrGoexit               = errors.New("thread: computation called runtime.Goexit")
)

// PanicError carries a panic raised by a computation back to the joining side.
type PanicError struct {
	Value any
	Stack []byte
}

func newPanicError(v any) *PanicError {
	return &PanicError{Value: v, Stack: debug.Stack()}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("thread: computation panicked: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

func fatal(sentinel error, cause error) {
	panic(fmt.Errorf("%w: %w", sentinel, cause))
}
