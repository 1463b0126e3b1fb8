package keyword_test

import (
	"errors"
	"testing"
	"time"

	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime"
	"github.com/Visma-Notification-Center/Visma-NaturalTimeParser/internal/naturaltime/keyword"
)

func strPtr(s string) *string {
	return &s
}

func TestTokenize(t *testing.T) {
	plugin := keyword.New()

	tests := []struct {
		input     string
		magnitude string
	}{
		{"now", "0"},
		{"today", "0"},
		{"Yesterday", "-1"},
		{"TOMORROW", "1"},
		{"  tomorrow  ", "1"},
	}

	for _, tt := range tests {
		got, err := plugin.Tokenize(strPtr(tt.input))
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", tt.input, err)
		}
		if len(got) != 1 {
			t.Fatalf("Tokenize(%q) = %d tokens, want 1", tt.input, len(got))
		}
		if got[0].Magnitude != tt.magnitude || got[0].Unit != naturaltime.Days {
			t.Errorf("Tokenize(%q) = %s:%s, want days:%s",
				tt.input, got[0].Unit, got[0].Magnitude, tt.magnitude)
		}
		if got[0].Source != keyword.Key {
			t.Errorf("Tokenize(%q) source = %q, want %q", tt.input, got[0].Source, keyword.Key)
		}
	}
}

func TestTokenizeUnmatched(t *testing.T) {
	plugin := keyword.New()

	for _, input := range []string{"", "later", "15 days", "now please"} {
		got, err := plugin.Tokenize(strPtr(input))
		if err != nil {
			t.Fatalf("Tokenize(%q) error = %v", input, err)
		}
		if len(got) != 0 {
			t.Errorf("Tokenize(%q) = %d tokens, want none", input, len(got))
		}
	}
}

func TestTokenizeNilInput(t *testing.T) {
	_, err := keyword.New().Tokenize(nil)
	if !errors.Is(err, naturaltime.ErrNilInput) {
		t.Fatalf("Tokenize(nil) error = %v, want ErrNilInput", err)
	}
}

func TestApply(t *testing.T) {
	plugin := keyword.New()
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	toks, err := plugin.Tokenize(strPtr("yesterday"))
	if err != nil || len(toks) != 1 {
		t.Fatalf("Tokenize = (%v, %v), want one token", toks, err)
	}

	got, err := plugin.Apply(toks[0], base)
	if err != nil {
		t.Fatalf("Apply() error = %v", err)
	}
	want := base.Add(-24 * time.Hour)
	if !got.Equal(want) {
		t.Errorf("Apply() = %v, want %v", got, want)
	}
}

func TestApplyRejectsForeignUnits(t *testing.T) {
	plugin := keyword.New()
	base := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	_, err := plugin.Apply(naturaltime.TimeToken{Magnitude: "1", Unit: naturaltime.Unknown}, base)
	if !errors.Is(err, naturaltime.ErrUnknownUnit) {
		t.Errorf("Apply(unknown) error = %v, want ErrUnknownUnit", err)
	}

	_, err = plugin.Apply(naturaltime.TimeToken{Magnitude: "1", Unit: naturaltime.Months}, base)
	if err == nil {
		t.Error("Apply(months) succeeded, want error")
	}
}
