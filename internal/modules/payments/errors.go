package payments

import "errors"

var (
	ErrNotConfigured       = errors.New("payment processor not configured")
	ErrTransactionNotFound = errors.New("payment transaction not found")

	// ErrProcessorUnavailable marks timeouts and transport failures against
	// the processor; the caller may retry, it must not be read as non-paid.
	ErrProcessorUnavailable = errors.New("payment processor unavailable")
)
