package outcome

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoError is what Unwrap panics with when a result claims failure but
// holds no error. That state is only reachable through OverrideSuccess.
var ErrNoError = errors.New("outcome: failed result holds no error")

type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isOk      bool
}

func Success[T any](v T) Result[T] {
	return Result[T]{
		value:     v,
		err:       nil,
		isOk:      true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		isOk:      false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Payload is the discriminated construction input. Exactly one of Data or
// Error is meaningful, selected by Success; the caller supplies a shape
// consistent with the flag.
type Payload[T any] struct {
	Success bool
	Data    T
	Error   error
}

func FromPayload[T any](p Payload[T]) Result[T] {
	if p.Success {
		return Success(p.Data)
	}
	return Fail[T](p.Error)
}

// FailFrom propagates a failed result across a type change, keeping the
// original id, creation time and error. Combinators use it so that every
// later step of a chain observes the failure that started it.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	return Result[Out]{
		err:       from.err,
		isOk:      from.isOk,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r Result[T]) Result() T {
	return r.value
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsOk() bool {
	return r.isOk
}

func (r Result[T]) IsErr() bool {
	return !r.isOk
}

// Value returns the held value and error as a plain Go pair.
func (r Result[T]) Value() (T, error) {
	return r.value, r.err
}

// Unwrap returns the held value on success. On failure it panics with the
// held error itself, identity intact.
func (r Result[T]) Unwrap() T {
	if r.isOk {
		return r.value
	}
	if r.err != nil {
		panic(r.err)
	}
	panic(ErrNoError)
}

// Throw panics with the held error. On a success there is nothing to raise
// and the call is a no-op.
func (r Result[T]) Throw() {
	if r.err != nil {
		panic(r.err)
	}
}

// OverrideSuccess rewrites the success tag in place without touching the
// stored value or error. Low-level escape hatch: the result can end up
// inconsistent (a failure with no error, a success with a zero value), and
// nothing revalidates it.
func (r *Result[T]) OverrideSuccess(ok bool) {
	r.isOk = ok
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isOk
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}
