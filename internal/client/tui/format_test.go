package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTierForScore(t *testing.T) {
	tests := []struct {
		score float64
		want  scoreTier
	}{
		{0.85, tierSuccess},
		{0.80, tierSuccess},
		{0.799, tierWarning},
		{0.75, tierWarning},
		{0.70, tierWarning},
		{0.699, tierInfo},
		{0.5, tierInfo},
		{0, tierInfo},
		{1, tierSuccess},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tierForScore(tt.score), "score %v", tt.score)
	}
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "85.0%", formatScore(0.85))
	assert.Equal(t, "75.0%", formatScore(0.75))
	assert.Equal(t, "93.3%", formatScore(0.933))
	assert.Equal(t, "0.0%", formatScore(0))
}

func TestStripMarkup(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "plain text untouched", in: "quiet and tidy", want: "quiet and tidy"},
		{name: "bold tags removed", in: "<b>night owl</b> like you", want: "night owl like you"},
		{name: "nested markup", in: "<ul><li>same budget</li><li>same area</li></ul>", want: "same budget same area"},
		{name: "entities unescaped", in: "early riser &amp; tidy", want: "early riser & tidy"},
		{name: "script not executed just stripped", in: `<script>alert(1)</script>ok`, want: "alert(1) ok"},
		{name: "empty", in: "", want: ""},
		{name: "csi sequence defanged", in: "great match\x1b[2Jindeed", want: "great match [2Jindeed"},
		{name: "osc title set defanged", in: "nice\x1b]0;pwned\x07 area", want: "nice ]0;pwned area"},
		{name: "entity-minted escape defanged", in: "&#27;[31mloud", want: "[31mloud"},
		{name: "newlines and tabs collapse", in: "tidy\n\tquiet", want: "tidy quiet"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripMarkup(tt.in)
			assert.Equal(t, tt.want, got)
			assert.NotContains(t, got, "\x1b")
			assert.NotContains(t, got, "\x07")
		})
	}
}

func TestFormatPKR(t *testing.T) {
	assert.Equal(t, "PKR 25,000", formatPKR(25000))
	assert.Equal(t, "PKR 1,250,000", formatPKR(1250000))
	assert.Equal(t, "PKR 999", formatPKR(999))
	assert.Equal(t, "PKR 0", formatPKR(0))
}

func TestAvatarInitial(t *testing.T) {
	assert.Equal(t, "A", avatarInitial("ali"))
	assert.Equal(t, "Z", avatarInitial("  Zara Khan"))
	assert.Equal(t, "?", avatarInitial(""))
	assert.Equal(t, "?", avatarInitial("   "))
}

func TestOrNA(t *testing.T) {
	assert.Equal(t, "N/A", orNA(""))
	assert.Equal(t, "N/A", orNA("   "))
	assert.Equal(t, "Flexible", orNA("Flexible"))
}
