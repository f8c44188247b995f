package sanitizer_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/fintrack/pkg/sanitizer"
)

func TestApplyAndCompose(t *testing.T) {
	t.Parallel()

	got := sanitizer.Apply("  Hello   World  ", sanitizer.NormalizeWhitespace, sanitizer.ToLower)
	assert.Equal(t, "hello world", got)

	assert.Equal(t, "as is", sanitizer.Apply("as is"))

	pipeline := sanitizer.Compose(sanitizer.Trim, sanitizer.ToUpper)
	assert.Equal(t, "ABC", pipeline("  abc "))
}

func TestNormalizeWhitespace(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"":                  "",
		"   ":               "",
		"a  b":              "a b",
		"\tgroceries\n\nrun": "groceries run",
	}
	for in, want := range tests {
		assert.Equal(t, want, sanitizer.NormalizeWhitespace(in), "input %q", in)
	}
}

func TestStripControl(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "line1\nline2\tend", sanitizer.StripControl("line1\nline2\tend\x00\x07"))
	assert.Equal(t, "plain", sanitizer.StripControl("plain"))
}

func TestNormalizeEmail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"trims and lowercases", "  John.Doe@Example.COM ", "john.doe@example.com"},
		{"collapses dots", "john..doe.@example.com", "john.doe@example.com"},
		{"no at sign", " NotAnEmail ", "notanemail"},
		{"two at signs", "a@b@c.com", "a@b@c.com"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, sanitizer.NormalizeEmail(tt.in))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "+915551234567", sanitizer.NormalizePhone(" +91 (555) 123-4567 "))
	assert.Equal(t, "5551234567", sanitizer.NormalizePhone("555.123.4567"))
}

func TestRoundMoney(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 10.13, sanitizer.RoundMoney(10.125000001))
	assert.Equal(t, 99.99, sanitizer.RoundMoney(99.99))
	assert.Equal(t, -1.5, sanitizer.RoundMoney(-1.499999))
	assert.True(t, math.IsNaN(sanitizer.RoundMoney(math.NaN())))
	assert.True(t, math.IsInf(sanitizer.RoundMoney(math.Inf(1)), 1))
}
