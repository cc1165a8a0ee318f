package tests

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/outcome/pkg/outcome"
	"github.com/ib-77/outcome/pkg/outcome/box"
	"github.com/ib-77/outcome/pkg/outcome/chain"
	"github.com/ib-77/outcome/pkg/outcome/solo"
)

func divide(_ context.Context, a, b float64) outcome.Result[float64] {
	if b == 0 {
		return outcome.Fail[float64](errors.New("Division by zero"))
	}
	return outcome.Success(a / b)
}

func TestDivide_Success(t *testing.T) {
	c := chain.FromValue(context.Background(), 10.0).
		Then(func(ctx context.Context, n float64) outcome.Result[float64] {
			return divide(ctx, n, 2)
		})

	require.True(t, c.IsOk())
	assert.Equal(t, 5.0, c.Unwrap())
}

func TestDivide_ByZero(t *testing.T) {
	c := chain.FromValue(context.Background(), 10.0).
		Then(func(ctx context.Context, n float64) outcome.Result[float64] {
			return divide(ctx, n, 0)
		})

	require.True(t, c.IsErr())
	assert.Equal(t, "Division by zero", c.Err().Error())
}

// A failure in the middle of a pipeline must ride through every later step
// unchanged, including type-changing boxing steps, and only surface on Unwrap.
func TestPipeline_StickyFailure(t *testing.T) {
	ctx := context.Background()

	laterCalls := 0
	c := chain.FromValue(ctx, 10.0).
		Then(func(ctx context.Context, n float64) outcome.Result[float64] {
			return divide(ctx, n, 0)
		}).
		Map(func(ctx context.Context, n float64) float64 { laterCalls++; return n * 2 }).
		ThenTry(func(ctx context.Context, n float64) (float64, error) { laterCalls++; return n, nil })

	formatted := box.Upper(box.Fixed(c.Result(), 2))

	assert.Zero(t, laterCalls, "no step after the failure may execute")
	require.True(t, formatted.IsErr())
	assert.Equal(t, "Division by zero", formatted.Err().Error())
	assert.Equal(t, c.Result().Id(), formatted.Id(), "the original failure must survive boxing")

	assert.PanicsWithError(t, "Division by zero", func() { formatted.Unwrap() })
}

func TestPipeline_ParseValidateFormat(t *testing.T) {
	ctx := context.Background()

	run := func(raw string) string {
		parsed := box.ParseFloat(solo.Validate(ctx, raw,
			func(ctx context.Context, s string) (bool, string) {
				return s != "", "empty input"
			}))

		halved := solo.Switch(ctx, parsed, func(ctx context.Context, n float64) outcome.Result[float64] {
			return divide(ctx, n, 2)
		})

		return solo.Finally(ctx, box.Fixed(halved, 2),
			func(ctx context.Context, s string) string { return s },
			func(ctx context.Context, err error) string { return "invalid: " + err.Error() })
	}

	assert.Equal(t, "5.00", run("10"))
	assert.Equal(t, "invalid: empty input", run(""))
	assert.Equal(t, `invalid: strconv.ParseFloat: parsing "ten": invalid syntax`, run("ten"))
}

func TestPipeline_PayloadConstruction(t *testing.T) {
	ctx := context.Background()

	got := chain.FromPayload(ctx, outcome.Payload[float64]{Success: true, Data: 10}).
		Then(func(ctx context.Context, n float64) outcome.Result[float64] {
			return divide(ctx, n, 2)
		}).
		Finally(
			func(ctx context.Context, n float64) float64 { return n },
			func(ctx context.Context, err error) float64 { return -1 })

	assert.Equal(t, 5.0, got)
}

func TestPipeline_TagOverrideChangesLane(t *testing.T) {
	ctx := context.Background()

	r := outcome.Success(5.0)
	r.OverrideSuccess(false)

	got := solo.Finally(ctx, r,
		func(ctx context.Context, n float64) string { return "ok" },
		func(ctx context.Context, err error) string { return "forced failure" })

	assert.Equal(t, "forced failure", got)
}
