package chain

import (
	"context"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

// Chain wraps an outcome.Result with context to enable fluent chaining. Once
// a step fails, every later step is skipped and the original failure rides
// the chain to the end; the error only surfaces through Unwrap or Throw.
type Chain[T any] struct {
	ctx context.Context
	res outcome.Result[T]
}

func Start[T any](ctx context.Context, r outcome.Result[T]) Chain[T] {
	return Chain[T]{ctx: ctx, res: r}
}

func FromValue[T any](ctx context.Context, v T) Chain[T] {
	return Start(ctx, outcome.Success(v))
}

func FromPayload[T any](ctx context.Context, p outcome.Payload[T]) Chain[T] {
	return Start(ctx, outcome.FromPayload(p))
}

func (c Chain[T]) Result() outcome.Result[T] {
	return c.res
}

func (c Chain[T]) IsOk() bool {
	return c.res.IsOk()
}

func (c Chain[T]) IsErr() bool {
	return c.res.IsErr()
}

func (c Chain[T]) Err() error {
	return c.res.Err()
}

// Unwrap returns the value of a successful chain and panics with the held
// error otherwise.
func (c Chain[T]) Unwrap() T {
	return c.res.Unwrap()
}

// Throw panics with the held error, if any.
func (c Chain[T]) Throw() {
	c.res.Throw()
}

// Then composes functions that already return outcome.Result[T]
func (c Chain[T]) Then(onSuccess func(ctx context.Context, t T) outcome.Result[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: onSuccess(c.ctx, c.res.Result())}
}

// ThenTry composes functions that return (T, error) — like repo calls
func (c Chain[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: solo.Try(c.ctx, c.res, try)}
}

// Map transforms the successful value to a new value
func (c Chain[T]) Map(onSuccess func(ctx context.Context, t T) T) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return Chain[T]{ctx: c.ctx, res: outcome.Success(onSuccess(c.ctx, c.res.Result()))}
}

// Mutate forwards a write to the wrapped value. It runs only on success; on
// a failure the call is accepted and ignored. Mutation is visible to later
// steps only when T has reference semantics (pointer, map, slice) — a plain
// value is a copy and stays as constructed.
func (c Chain[T]) Mutate(mutate func(ctx context.Context, t T)) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	mutate(c.ctx, c.res.Result())
	return c
}

// Ensure triggers side effects for success/failure without changing the result
func (c Chain[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Chain[T] {
	if c.res.IsErr() {
		if onFailure != nil {
			onFailure(c.ctx, c.res.Err())
		}
		return c
	}

	if onSuccess != nil {
		onSuccess(c.ctx, c.res.Result())
	}
	return c
}

// Or keeps the first successful chain; with no success the original failure
// wins.
func (c Chain[T]) Or(alternative Chain[T]) Chain[T] {
	if c.res.IsOk() {
		return c
	}
	if alternative.res.IsOk() {
		return alternative
	}
	return c
}

// And keeps the first failure; with no failure the required chain's result
// wins.
func (c Chain[T]) And(required Chain[T]) Chain[T] {
	if c.res.IsErr() {
		return c
	}
	return required
}

// Finally collapses the chain to a final value, delegating to solo.Finally
func (c Chain[T]) Finally(
	onSuccess func(context.Context, T) T,
	onFailure func(context.Context, error) T,
) T {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}

// Then chains a function that returns outcome.Result[U]
func Then[T, U any](c Chain[T], onSuccess func(context.Context, T) outcome.Result[U]) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: solo.Switch(c.ctx, c.res, onSuccess),
	}
}

// ThenTry chains a function that returns (U, error)
func ThenTry[T, U any](c Chain[T], tryOnSuccess func(context.Context, T) (U, error)) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: solo.Try(c.ctx, c.res, tryOnSuccess),
	}
}

// Map chains a pure transformation function
func Map[T, U any](c Chain[T], onSuccess func(context.Context, T) U) Chain[U] {
	return Chain[U]{
		ctx: c.ctx,
		res: solo.Map(c.ctx, c.res, onSuccess),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.res, onSuccess, onFailure)
}
