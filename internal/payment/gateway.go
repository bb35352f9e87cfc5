package payment

import (
	"context"
	"errors"
	"time"
)

// Recoverable failure kinds. Both return the checkout to Idle; neither stops
// the render loop or the subsystem.
var (
	// ErrTokenization: the opaque field layer could not produce a nonce.
	ErrTokenization = errors.New("payment: tokenization failed")
	// ErrService: the charge was rejected or the service was unreachable.
	ErrService = errors.New("payment: service failure")
)

// Nonce is the opaque single-use token produced by tokenizing payment input.
// The core only ever sees this token, never the raw field values.
type Nonce string

// Transaction is the gateway's record of a completed charge.
type Transaction struct {
	ID        string
	Status    string
	Amount    string
	CreatedAt time.Time
}

// Gateway is the opaque payment collaborator. Real transports live outside
// this module; the core drives it only through this interface.
type Gateway interface {
	// ClientCredential fetches the short-lived credential the hosted-fields
	// layer boots with.
	ClientCredential(ctx context.Context) (string, error)

	// Tokenize asks the opaque field layer for a nonce over the values the
	// user entered. Failures wrap ErrTokenization.
	Tokenize(ctx context.Context) (Nonce, error)

	// Charge settles the amount (a decimal string, e.g. "49.99") against the
	// nonce. Failures wrap ErrService.
	Charge(ctx context.Context, nonce Nonce, amount string) (Transaction, error)
}
