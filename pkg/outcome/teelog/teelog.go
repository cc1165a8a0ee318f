package teelog

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Tee logs the result and returns it unchanged: a debug event with the
// result id on success, an error event with the held error on failure.
func Tee[T any](ctx context.Context, log zerolog.Logger, msg string, r outcome.Result[T]) outcome.Result[T] {
	if r.IsOk() {
		log.Debug().Ctx(ctx).Str("result_id", r.Id().String()).Msg(msg)
		return r
	}

	log.Error().Ctx(ctx).Str("result_id", r.Id().String()).Err(r.Err()).Msg(msg)
	return r
}

// Handlers returns success/failure callbacks wired to the logger, shaped for
// solo.DoubleTee and chain.Ensure.
func Handlers[T any](log zerolog.Logger, msg string) (func(context.Context, T), func(context.Context, error)) {
	onSuccess := func(ctx context.Context, _ T) {
		log.Debug().Ctx(ctx).Msg(msg)
	}
	onFailure := func(ctx context.Context, err error) {
		log.Error().Ctx(ctx).Err(err).Msg(msg)
	}
	return onSuccess, onFailure
}
