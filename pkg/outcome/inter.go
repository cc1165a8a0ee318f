package outcome

import "time"

type Provider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	Provider[T]
	// Err returns the error if operation failed
	Err() error
	// IsOk returns true if the operation succeeded
	IsOk() bool
}
