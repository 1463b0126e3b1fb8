package arithmetic

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
)

// agoKeyword negates the sign of the occurrence it follows.
const agoKeyword = "ago"

// Tokenize implements naturaltime.TokenPlugin. The grammar is anchored over
// the whole input: one or more "sign? magnitude? alias ago?" occurrences
// separated by whitespace and nothing else. If any occurrence fails to
// match, the whole call yields an empty sequence; partial successes are
// discarded. A nil input is an error, an empty or unmatched input is not.
func (p *Plugin) Tokenize(text *string) ([]naturaltime.TimeToken, error) {
	if text == nil {
		return nil, naturaltime.ErrNilInput
	}

	s := *text
	pos := skipSpace(s, 0)
	if pos == len(s) {
		return nil, nil
	}

	var tokens []naturaltime.TimeToken
	for pos < len(s) {
		tok, next, ok := p.scanOccurrence(s, pos)
		if !ok {
			return nil, nil
		}
		tokens = append(tokens, tok)
		pos = skipSpace(s, next)
	}

	return tokens, nil
}

// scanOccurrence reads one occurrence starting at pos, which must point at
// a non-space byte. It returns the token, the position just past the
// consumed text, and whether the occurrence matched.
func (p *Plugin) scanOccurrence(s string, pos int) (naturaltime.TimeToken, int, bool) {
	start := pos
	end := endOfWord(s, pos)
	word := s[pos:end]

	// The sign must be contiguous with the magnitude, or with the alias
	// when the magnitude is omitted. A bare sign word never matches.
	negative := false
	switch word[0] {
	case '+':
		word = word[1:]
	case '-':
		negative = true
		word = word[1:]
	}
	if word == "" {
		return naturaltime.TimeToken{}, 0, false
	}

	digits := leadingDigits(word)
	alias := word[len(digits):]

	magnitude := int64(1)
	if digits != "" {
		n, err := strconv.ParseInt(digits, 10, 64)
		if err != nil {
			return naturaltime.TimeToken{}, 0, false
		}
		magnitude = n

		if alias == "" {
			// Magnitude and alias separated by whitespace.
			next := skipSpace(s, end)
			if next == len(s) {
				return naturaltime.TimeToken{}, 0, false
			}
			aliasEnd := endOfWord(s, next)
			alias = s[next:aliasEnd]
			end = aliasEnd
		}
	}

	unit, ok := p.vocab.Lookup(alias)
	if !ok {
		return naturaltime.TimeToken{}, 0, false
	}

	if negative {
		magnitude = -magnitude
	}

	// A trailing "ago" negates this occurrence only, so two negations
	// cancel: "-15 years ago" means +15 years.
	if next := skipSpace(s, end); next < len(s) {
		agoEnd := endOfWord(s, next)
		if strings.EqualFold(s[next:agoEnd], agoKeyword) {
			magnitude = -magnitude
			end = agoEnd
		}
	}

	return naturaltime.TimeToken{
		Source:    Key,
		Matched:   s[start:end],
		Magnitude: strconv.FormatInt(magnitude, 10),
		Unit:      unit,
	}, end, true
}

// leadingDigits returns the ASCII digit prefix of s.
func leadingDigits(s string) string {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	return s[:i]
}

// skipSpace advances i past any unicode whitespace.
func skipSpace(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}

// endOfWord advances i to the end of the non-space run starting at i.
func endOfWord(s string, i int) int {
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsSpace(r) {
			break
		}
		i += size
	}
	return i
}
