package tui

import (
	"fmt"
	"html"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

var (
	tagRe        = regexp.MustCompile(`<[^>]*>`)
	whitespaceRe = regexp.MustCompile(`\s+`)
)

// stripMarkup reduces the server's similarity fragment to plain text. The
// fragment crosses a trust boundary, so tags are removed rather than
// interpreted, and entities are unescaped afterwards. Control characters
// are dropped last: for a terminal, ESC/BEL and friends are executable
// markup too, and unescaping can mint them from entities.
func stripMarkup(s string) string {
	s = tagRe.ReplaceAllString(s, " ")
	s = html.UnescapeString(s)
	s = strings.Map(func(r rune) rune {
		if unicode.IsControl(r) {
			return ' '
		}
		return r
	}, s)
	s = whitespaceRe.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// formatScore renders a [0,1] score as a percentage with one decimal.
func formatScore(score float64) string {
	return fmt.Sprintf("%.1f%%", score*100)
}

// formatPKR renders a budget amount with thousands separators, e.g. 25000
// becomes "PKR 25,000".
func formatPKR(amount int) string {
	s := strconv.Itoa(amount)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	out := "PKR " + strings.Join(parts, ",")
	if neg {
		out = "PKR -" + strings.Join(parts, ",")
	}
	return out
}

// avatarInitial picks the uppercased first rune of a name for the avatar
// placeholder, "?" when the name is empty.
func avatarInitial(name string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return "?"
	}
	return strings.ToUpper(string([]rune(name)[0]))
}

// orNA substitutes the placeholder used for missing profile attributes.
func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
