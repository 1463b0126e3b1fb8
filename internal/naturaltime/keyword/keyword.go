package keyword

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
)

// Key is the source identity for tokens produced by this plugin.
const Key = "keyword"

// dayDeltas maps whole-input keywords to a shift in days.
var dayDeltas = map[string]int64{
	"now":       0,
	"today":     0,
	"yesterday": -1,
	"tomorrow":  1,
}

// Plugin recognizes the standalone keywords "now", "today", "yesterday" and
// "tomorrow" and expresses them as day deltas. Like the arithmetic plugin
// its grammar is anchored: the keyword must be the entire input.
type Plugin struct{}

// New creates a keyword plugin.
func New() *Plugin {
	return &Plugin{}
}

// Key implements naturaltime.TokenPlugin.
func (p *Plugin) Key() string {
	return Key
}

// Tokenize implements naturaltime.TokenPlugin.
func (p *Plugin) Tokenize(text *string) ([]naturaltime.TimeToken, error) {
	if text == nil {
		return nil, naturaltime.ErrNilInput
	}

	word := strings.TrimSpace(*text)
	delta, ok := dayDeltas[strings.ToLower(word)]
	if !ok {
		return nil, nil
	}

	return []naturaltime.TimeToken{{
		Source:    Key,
		Matched:   word,
		Magnitude: strconv.FormatInt(delta, 10),
		Unit:      naturaltime.Days,
	}}, nil
}

// Apply implements naturaltime.TokenPlugin. Keyword tokens only ever carry
// day deltas, so any other unit is rejected.
func (p *Plugin) Apply(tok naturaltime.TimeToken, base time.Time) (time.Time, error) {
	if tok.Unit == naturaltime.Unknown {
		return time.Time{}, fmt.Errorf("%w: %s", naturaltime.ErrUnknownUnit, tok.Unit)
	}
	if tok.Unit != naturaltime.Days {
		return time.Time{}, &naturaltime.PluginError{
			Plugin: Key,
			Err:    fmt.Errorf("unsupported unit %s", tok.Unit),
		}
	}

	n, err := strconv.ParseInt(tok.Magnitude, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid magnitude %q: %w", tok.Magnitude, err)
	}

	return base.Add(time.Duration(n) * 24 * time.Hour), nil
}
