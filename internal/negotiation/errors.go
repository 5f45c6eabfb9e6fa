package negotiation

import "errors"

var (
	// ErrNoTemplate means the filtered template set was empty. With a
	// correctly populated library this cannot happen; it indicates a
	// data-integrity bug and aborts the operation.
	ErrNoTemplate = errors.New("no template available for strategy")

	// ErrUnboundVariable means a template declared a slot with no
	// resolution rule. Library validation at startup is supposed to make
	// this unreachable.
	ErrUnboundVariable = errors.New("unbound template variable")

	// ErrUnknownSession is returned for operations on a session id the
	// engine does not know. A client error, not retried.
	ErrUnknownSession = errors.New("unknown session")

	// ErrSessionClosed is returned when a message arrives after the offer
	// was withdrawn.
	ErrSessionClosed = errors.New("offer has been withdrawn")
)
