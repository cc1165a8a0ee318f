package box

import (
	"strconv"
	"strings"

	"github.com/ib-77/outcome/pkg/outcome"
)

// Upper exposes strings.ToUpper through the wrapper.
func Upper(r outcome.Result[string]) outcome.Result[string] {
	if r.IsErr() {
		return r
	}
	return outcome.Success(strings.ToUpper(r.Result()))
}

// Lower exposes strings.ToLower through the wrapper.
func Lower(r outcome.Result[string]) outcome.Result[string] {
	if r.IsErr() {
		return r
	}
	return outcome.Success(strings.ToLower(r.Result()))
}

// TrimSpace exposes strings.TrimSpace through the wrapper.
func TrimSpace(r outcome.Result[string]) outcome.Result[string] {
	if r.IsErr() {
		return r
	}
	return outcome.Success(strings.TrimSpace(r.Result()))
}

// Contains exposes strings.Contains through the wrapper.
func Contains(r outcome.Result[string], substr string) outcome.Result[bool] {
	if r.IsErr() {
		return outcome.FailFrom[string, bool](r)
	}
	return outcome.Success(strings.Contains(r.Result(), substr))
}

// Len exposes the string length through the wrapper.
func Len(r outcome.Result[string]) outcome.Result[int] {
	if r.IsErr() {
		return outcome.FailFrom[string, int](r)
	}
	return outcome.Success(len(r.Result()))
}

// Fixed formats the value with a fixed number of digits after the decimal
// point, e.g. Fixed(Success(123.456), 2) holds "123.46".
func Fixed(r outcome.Result[float64], digits int) outcome.Result[string] {
	if r.IsErr() {
		return outcome.FailFrom[float64, string](r)
	}
	return outcome.Success(strconv.FormatFloat(r.Result(), 'f', digits, 64))
}

// Itoa exposes strconv.Itoa through the wrapper.
func Itoa(r outcome.Result[int]) outcome.Result[string] {
	if r.IsErr() {
		return outcome.FailFrom[int, string](r)
	}
	return outcome.Success(strconv.Itoa(r.Result()))
}

// ParseInt parses the held string as a base-10 int; a parse error becomes a
// failure.
func ParseInt(r outcome.Result[string]) outcome.Result[int] {
	if r.IsErr() {
		return outcome.FailFrom[string, int](r)
	}

	n, err := strconv.Atoi(r.Result())
	if err != nil {
		return outcome.Fail[int](err)
	}
	return outcome.Success(n)
}

// ParseFloat parses the held string as a float64; a parse error becomes a
// failure.
func ParseFloat(r outcome.Result[string]) outcome.Result[float64] {
	if r.IsErr() {
		return outcome.FailFrom[string, float64](r)
	}

	f, err := strconv.ParseFloat(r.Result(), 64)
	if err != nil {
		return outcome.Fail[float64](err)
	}
	return outcome.Success(f)
}
