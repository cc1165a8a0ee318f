package solo

import (
	"context"
	"errors"

	"github.com/ib-77/outcome/pkg/outcome"
)

func Succeed[T any](input T) outcome.Result[T] {
	return outcome.Success(input)
}

func Fail[T any](err error) outcome.Result[T] {
	return outcome.Fail[T](err)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string)) outcome.Result[T] {
	return AndValidate(ctx, Succeed(input), validate)
}

func AndValidate[T any](ctx context.Context, input outcome.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string)) outcome.Result[T] {

	if input.IsOk() {

		if isValid, errMsg := validate(ctx, input.Result()); isValid {
			return outcome.Success(input.Result())
		} else {
			return outcome.Fail[T](errors.New(errMsg))
		}
	}
	return input
}

func ValidateAll[T any](
	ctx context.Context,
	input outcome.Result[T],
	breakOnError bool, // exit on first error
	inputsF ...func(ctx context.Context, in outcome.Result[T]) outcome.Result[T]) outcome.Result[T] {

	var err error
	return Join(
		ctx,
		input,
		breakOnError,
		func(ctx context.Context, current outcome.Result[T]) outcome.Result[T] {

			if current.IsErr() {
				e := outcome.GetErrors(err)
				e = append(e, current.Err())
				err = errors.Join(e...)
			}

			if outcome.IsNil(err) {
				return current
			}

			return outcome.Fail[T](err)
		},
		inputsF...,
	)
}

// Switch moves from Result[In] to Result[Out]; a failure passes through with
// its identity intact and onSuccess is never evaluated.
func Switch[In any, Out any](ctx context.Context,
	input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) outcome.Result[Out]) outcome.Result[Out] {

	if input.IsOk() {
		return onSuccess(ctx, input.Result())
	}
	return outcome.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out) outcome.Result[Out] {

	if input.IsOk() {
		return outcome.Success(onSuccess(ctx, input.Result()))
	}
	return outcome.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input outcome.Result[T],
	onSuccess func(ctx context.Context, r outcome.Result[T])) outcome.Result[T] {

	if input.IsOk() {
		onSuccess(ctx, input)
	}

	return input
}

func TeeIf[T any](ctx context.Context,
	input outcome.Result[T],
	condition func(ctx context.Context, r outcome.Result[T]) bool,
	onSuccessAndCondition func(ctx context.Context, r outcome.Result[T])) outcome.Result[T] {

	if input.IsOk() {
		if condition(ctx, input) {
			onSuccessAndCondition(ctx, input)
		}
	}

	return input
}

func DoubleTee[T any](ctx context.Context, input outcome.Result[T],
	onSuccess func(ctx context.Context, r T),
	onError func(ctx context.Context, err error)) outcome.Result[T] {

	if input.IsOk() {
		onSuccess(ctx, input.Result())
	} else {
		onError(ctx, input.Err())
	}

	return input
}

func DoubleMap[In any, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) outcome.Result[Out] {

	if input.IsOk() {
		return outcome.Success(onSuccess(ctx, input.Result()))
	}

	onError(ctx, input.Err())

	return outcome.FailFrom[In, Out](input)
}

// Try calls a function returning (Out, error) and converts a returned error
// into a failure. A failed input short-circuits without calling it.
func Try[In any, Out any](ctx context.Context, input outcome.Result[In],
	onTryExecute func(ctx context.Context, r In) (Out, error)) outcome.Result[Out] {

	if input.IsOk() {

		out, err := onTryExecute(ctx, input.Result())
		if err != nil {
			return outcome.Fail[Out](err)
		}

		return outcome.Success(out)
	}

	return outcome.FailFrom[In, Out](input)
}

func FailOnError[T any](ctx context.Context, input outcome.Result[T],
	maybeErr func(ctx context.Context, in T) error) outcome.Result[T] {
	if input.IsOk() {
		err := maybeErr(ctx, input.Result())
		if err != nil {
			return outcome.Fail[T](err)
		} else {
			return input
		}
	}
	return input
}

func Finally[In, Out any](ctx context.Context, input outcome.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsOk() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}

func Join[T any](ctx context.Context,
	input outcome.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, current outcome.Result[T]) outcome.Result[T],
	inputsF ...func(ctx context.Context, in outcome.Result[T]) outcome.Result[T]) outcome.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := concat(ctx, inputsF[0](ctx, input))

	if finalResult.IsOk() || !breakOnError {
		for _, in := range inputsF[1:] {

			nextRes := concat(ctx, in(ctx, finalResult))
			if nextRes.IsErr() && breakOnError {
				return nextRes
			} else {
				finalResult = nextRes
			}
		}
	}
	return finalResult
}
