// Package xerrors defines the small, closed error taxonomy shared across the
// mining core. It generalizes the typed-error pattern the teacher uses for
// BatchWriterError/PoolError into a handful of sentinel kinds components can
// test against with errors.Is and errors.As.
package xerrors

import "errors"

// Kind classifies a Wrapped error the way a store boundary wants callers to
// branch on: transient I/O versus bad input.
type Kind int

const (
	KindTransient Kind = iota
	KindConfiguration
)

// Cancelled is returned by any long-running operation that observed its
// cancel token flip before completing. It is not a failure: callers should
// treat it as "no result this round", never surface it to the user as an
// error message.
var Cancelled = errors.New("cancelled")

// ErrDictionaryMissing indicates a requested dictionary name is not present
// in the store.
var ErrDictionaryMissing = errors.New("dictionary not found")

// ErrBackendRejected wraps an error string returned by the SRS backend
// itself (e.g. AnkiConnect returning {"error": "..."}). It is always
// propagated to the caller; there is no retry.
type ErrBackendRejected struct {
	Message string
}

func (e *ErrBackendRejected) Error() string { return "srs backend: " + e.Message }

// Wrapped pairs an error with the Kind a component boundary wants callers to
// branch on, without losing the underlying cause via errors.Unwrap.
type Wrapped struct {
	Kind Kind
	Err  error
}

func (w *Wrapped) Error() string { return w.Err.Error() }
func (w *Wrapped) Unwrap() error { return w.Err }

func Transient(err error) error {
	if err == nil {
		return nil
	}
	return &Wrapped{Kind: KindTransient, Err: err}
}

func Configuration(err error) error {
	if err == nil {
		return nil
	}
	return &Wrapped{Kind: KindConfiguration, Err: err}
}
