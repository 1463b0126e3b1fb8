package naturaltime

import (
	"errors"
	"fmt"
)

// Domain-specific errors for the naturaltime package.
var (
	// ErrNilInput indicates Tokenize was called with an absent input
	// reference. Distinct from an empty string, which is simply unmatched.
	ErrNilInput = errors.New("input text is nil")

	// ErrUnknownUnit indicates Apply was called with a token whose unit
	// is not recognized.
	ErrUnknownUnit = errors.New("unrecognized time unit")

	// ErrUnrecognizedInput indicates no registered plugin matched the input.
	ErrUnrecognizedInput = errors.New("no plugin recognized the input")

	// ErrNoPluginsConfigured indicates the host has no plugins to try.
	ErrNoPluginsConfigured = errors.New("no plugins configured")
)

// PluginError attributes a failure to the plugin that produced it.
type PluginError struct {
	Plugin string
	Err    error
}

func (e *PluginError) Error() string {
	return fmt.Sprintf("plugin %s: %v", e.Plugin, e.Err)
}

func (e *PluginError) Unwrap() error {
	return e.Err
}
