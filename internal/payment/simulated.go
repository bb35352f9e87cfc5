package payment

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Simulated is an in-process gateway for the demo mains and tests. Latency
// and failure injection are knobs, not behavior of the real collaborator.
type Simulated struct {
	Latency      time.Duration
	FailTokenize bool
	DeclineAll   bool
}

// ClientCredential returns a fresh fake credential.
func (s *Simulated) ClientCredential(ctx context.Context) (string, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	return "sandbox_" + uuid.NewString(), nil
}

// Tokenize returns a fake nonce, or a tokenization failure when injected.
func (s *Simulated) Tokenize(ctx context.Context) (Nonce, error) {
	if err := s.wait(ctx); err != nil {
		return "", err
	}
	if s.FailTokenize {
		return "", fmt.Errorf("%w: hosted fields rejected input", ErrTokenization)
	}
	return Nonce("tokencc_" + uuid.NewString()), nil
}

// Charge settles the amount, declining when injected.
func (s *Simulated) Charge(ctx context.Context, nonce Nonce, amount string) (Transaction, error) {
	if err := s.wait(ctx); err != nil {
		return Transaction{}, err
	}
	if nonce == "" {
		return Transaction{}, fmt.Errorf("%w: empty nonce", ErrService)
	}
	if s.DeclineAll {
		return Transaction{}, fmt.Errorf("%w: card declined", ErrService)
	}
	return Transaction{
		ID:        "txn_" + uuid.NewString(),
		Status:    "settled",
		Amount:    amount,
		CreatedAt: time.Now().UTC(),
	}, nil
}

func (s *Simulated) wait(ctx context.Context) error {
	if s.Latency <= 0 {
		return nil
	}
	t := time.NewTimer(s.Latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
