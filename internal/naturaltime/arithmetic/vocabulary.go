package arithmetic

import (
	"strings"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
)

// Vocabulary maps unit aliases to their canonical unit, case-insensitively.
// Each plugin instance owns exactly one vocabulary; there is no process-wide
// registry, so localizing one instance never leaks into another. The map is
// not synchronized: callers sharing an instance must serialize Set against
// Tokenize externally.
type Vocabulary struct {
	aliases map[string]naturaltime.RelativeTimeUnit
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		aliases: make(map[string]naturaltime.RelativeTimeUnit),
	}
}

// DefaultVocabulary returns a vocabulary seeded with the standard English
// GNU date aliases: singular and plural for all eight units, plus the
// common second/minute abbreviations.
func DefaultVocabulary() *Vocabulary {
	v := NewVocabulary()

	seed := map[string]naturaltime.RelativeTimeUnit{
		"sec":        naturaltime.Seconds,
		"secs":       naturaltime.Seconds,
		"second":     naturaltime.Seconds,
		"seconds":    naturaltime.Seconds,
		"min":        naturaltime.Minutes,
		"mins":       naturaltime.Minutes,
		"minute":     naturaltime.Minutes,
		"minutes":    naturaltime.Minutes,
		"hour":       naturaltime.Hours,
		"hours":      naturaltime.Hours,
		"day":        naturaltime.Days,
		"days":       naturaltime.Days,
		"week":       naturaltime.Weeks,
		"weeks":      naturaltime.Weeks,
		"fortnight":  naturaltime.Fortnights,
		"fortnights": naturaltime.Fortnights,
		"month":      naturaltime.Months,
		"months":     naturaltime.Months,
		"year":       naturaltime.Years,
		"years":      naturaltime.Years,
	}
	for alias, unit := range seed {
		v.Set(alias, unit)
	}

	return v
}

// Set inserts or overwrites an alias. The stored key is case-insensitive
// regardless of the case used here.
func (v *Vocabulary) Set(alias string, unit naturaltime.RelativeTimeUnit) {
	v.aliases[strings.ToLower(alias)] = unit
}

// Lookup resolves an alias case-insensitively.
func (v *Vocabulary) Lookup(alias string) (naturaltime.RelativeTimeUnit, bool) {
	unit, ok := v.aliases[strings.ToLower(alias)]
	return unit, ok
}

// Len reports the number of distinct aliases.
func (v *Vocabulary) Len() int {
	return len(v.aliases)
}
