// Package format renders stored quotes for display.
package format

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
)

// Quotes returns the markdown bullet list for texts: one "- " prefixed
// line per quote, joined by newlines, in the order given.
// An empty slice renders to the empty string.
func Quotes(texts []string) string {
	if len(texts) == 0 {
		return ""
	}

	var b strings.Builder
	for i, text := range texts {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString("- ")
		b.WriteString(text)
	}

	return b.String()
}

// WritePlain writes the bullet list followed by a trailing newline.
// An empty list still emits the newline.
func WritePlain(w io.Writer, texts []string) error {
	_, err := fmt.Fprintln(w, Quotes(texts))
	return err
}

// WritePretty renders the bullet list as terminal markdown using glamour.
// Intended for interactive sessions; pipelines should use WritePlain.
func WritePretty(w io.Writer, texts []string) error {
	r, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return fmt.Errorf("creating renderer: %w", err)
	}

	out, err := r.Render(Quotes(texts))
	if err != nil {
		return fmt.Errorf("rendering markdown: %w", err)
	}

	_, err = io.WriteString(w, out)

	return err
}
