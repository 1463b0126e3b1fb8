package naturaltime

import (
	"context"
	"time"
)

// UseCase defines the host-side contract for resolving natural-language
// time expressions against a base timestamp.
type UseCase interface {
	// Resolve tokenizes the input with the first plugin that recognizes
	// it and threads the base timestamp through the resulting tokens.
	Resolve(ctx context.Context, input ResolveInput) (ResolveOutput, error)
}

// TokenPlugin is the contract every time-expression plugin fulfils.
// The host tries plugins in registration order and attributes tokens to
// them by key.
type TokenPlugin interface {
	// Key returns the constant identity the host uses to attribute tokens
	// to this plugin among others in a chain.
	Key() string

	// Tokenize converts raw input into an ordered token sequence. The
	// input is a pointer so an absent reference (nil, -> ErrNilInput) can
	// be told apart from an empty string. Input that does not fully
	// conform to the plugin's grammar yields an empty sequence and a nil
	// error; tokenization is all-or-nothing, never best-effort.
	Tokenize(text *string) ([]TimeToken, error)

	// Apply shifts base by the token's signed magnitude in its unit.
	// Fails with ErrUnknownUnit for tokens carrying an invalid unit.
	Apply(tok TimeToken, base time.Time) (time.Time, error)
}
