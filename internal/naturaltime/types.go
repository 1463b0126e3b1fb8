package naturaltime

import "time"

// RelativeTimeUnit identifies the calendar unit a relative-time token
// shifts by. The zero value Unknown is never produced by tokenization;
// it exists so appliers can be exercised against an invalid unit.
type RelativeTimeUnit int

const (
	Unknown RelativeTimeUnit = iota
	Seconds
	Minutes
	Hours
	Days
	Weeks
	Fortnights
	Months
	Years
)

// String returns the canonical lowercase name of the unit.
func (u RelativeTimeUnit) String() string {
	switch u {
	case Seconds:
		return "seconds"
	case Minutes:
		return "minutes"
	case Hours:
		return "hours"
	case Days:
		return "days"
	case Weeks:
		return "weeks"
	case Fortnights:
		return "fortnights"
	case Months:
		return "months"
	case Years:
		return "years"
	default:
		return "unknown"
	}
}

// UnitFromName resolves a canonical unit name (as returned by String) back
// to its unit. Used when seeding vocabularies from configuration.
func UnitFromName(name string) (RelativeTimeUnit, bool) {
	for u := Seconds; u <= Years; u++ {
		if u.String() == name {
			return u, true
		}
	}
	return Unknown, false
}

// TimeToken is one recognized occurrence of a relative-time expression.
// Tokens are transient value objects: created by a plugin's Tokenize and
// consumed immediately by the host.
type TimeToken struct {
	// Source is the key of the plugin that produced the token.
	Source string `json:"source"`

	// Matched is the exact substring consumed for this occurrence.
	// Empty when the token was constructed synthetically.
	Matched string `json:"matched,omitempty"`

	// Magnitude is the decimal string of the signed multiplier. It is
	// always present; expressions that omit a number default to "1" or
	// "-1" depending on sign and a trailing "ago".
	Magnitude string `json:"magnitude"`

	// Unit the magnitude applies to.
	Unit RelativeTimeUnit `json:"unit"`
}

// ResolveInput is the input for resolving a time expression.
type ResolveInput struct {
	// Text is the raw expression. A nil pointer is rejected with
	// ErrNilInput; an empty string is merely unrecognized.
	Text *string

	// Base is the reference timestamp the deltas are applied to.
	// The zero value defaults to the current UTC time.
	Base time.Time
}

// ResolveOutput is the result of a successful resolution.
type ResolveOutput struct {
	// Plugin is the key of the plugin that recognized the input.
	Plugin string `json:"plugin"`

	// Tokens in left-to-right input order.
	Tokens []TimeToken `json:"tokens"`

	// Result is the base timestamp shifted by every token in sequence.
	Result time.Time `json:"result"`
}
