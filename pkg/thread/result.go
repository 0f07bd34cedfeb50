package thread

import (
	"time"

	"github.com/google/uuid"
)

// Result is what Wait hands back: the computation's value, or the panic it
// died with.
type Result[A any] struct {
	id         uuid.UUID
	spawnedAt  time.Time
	finishedAt time.Time
	result     A
	err        error
	isSuccess  bool
}

func success[A any](id uuid.UUID, spawnedAt, finishedAt time.Time, r A) Result[A] {
	return Result[A]{
		id:         id,
		spawnedAt:  spawnedAt,
		finishedAt: finishedAt,
		result:     r,
		isSuccess:  true,
	}
}

func failure[A any](id uuid.UUID, spawnedAt, finishedAt time.Time, err error) Result[A] {
	return Result[A]{
		id:         id,
		spawnedAt:  spawnedAt,
		finishedAt: finishedAt,
		err:        err,
		isSuccess:  false,
	}
}

func (r Result[A]) Result() A {
	return r.result
}

func (r Result[A]) Err() error {
	return r.err
}

func (r Result[A]) IsSuccess() bool {
	return r.isSuccess
}

// Id is the id of the thread handle that produced the result.
func (r Result[A]) Id() uuid.UUID {
	return r.id
}

// SpawnedAt time of spawn (UTC)
func (r Result[A]) SpawnedAt() time.Time {
	return r.spawnedAt
}

// FinishedAt time the computation returned or panicked (UTC)
func (r Result[A]) FinishedAt() time.Time {
	return r.finishedAt
}

func (r Result[A]) Duration() time.Duration {
	return r.finishedAt.Sub(r.spawnedAt)
}
