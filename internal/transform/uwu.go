// Package transform implements the text transformations a quote can
// pass through before it is stored.
package transform

import (
	"strings"
	"unicode/utf8"

	"github.com/jsamuelsen/quotebook/internal/domain"
)

// letterReplacer applies the letter substitutions of the uwu style,
// preserving case.
var letterReplacer = strings.NewReplacer("L", "W", "l", "w", "R", "W", "r", "w")

// Result carries transformed text and whether the transformation had to
// stop after letter substitution to keep the quote within the length limit.
type Result struct {
	Text    string
	Partial bool
}

// Uwuify transforms text into its uwu variant in two steps:
// every L/l/R/r becomes W/w, then each space-delimited word starting
// with U or u gains a hyphen after its first character.
//
// If the fully transformed text would exceed domain.MaxQuoteLength, the
// letter-substituted text is returned instead with Partial set; the
// caller decides how to surface that. Returns domain.ErrNotModified when
// the chosen text is identical to the input.
func Uwuify(text string) (Result, error) {
	substituted := letterReplacer.Replace(text)

	// Split on a literal space, not arbitrary whitespace, so runs of
	// spaces survive the round trip.
	words := strings.Split(substituted, " ")
	for i, word := range words {
		if strings.HasPrefix(word, "U") || strings.HasPrefix(word, "u") {
			words[i] = word[:1] + "-" + word[1:]
		}
	}
	full := strings.Join(words, " ")

	result := Result{Text: full}
	if utf8.RuneCountInString(full) > domain.MaxQuoteLength {
		result = Result{Text: substituted, Partial: true}
	}

	if result.Text == text {
		return Result{}, domain.ErrNotModified
	}

	return result, nil
}
