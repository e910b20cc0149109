// Package export assembles the full source list into a shareable document.
package export

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"

	"saveit/internal/database"
	"saveit/internal/format"
)

var md = goldmark.New()

// Markdown renders every source as a bullet list of formatted citations,
// in store order. Comments, which the citation standards leave out, are
// appended as indented quotes so nothing the user wrote is lost on export.
func Markdown(sources []database.Source, style format.Style) string {
	if len(sources) == 0 {
		return "# Sources\n\nNo sources recorded.\n"
	}

	var out strings.Builder
	out.WriteString("# Sources\n\n")
	for _, s := range sources {
		fmt.Fprintf(&out, "- %s\n", format.Format(s, style))
		if s.Comment != nil && *s.Comment != "" {
			for _, line := range strings.Split(*s.Comment, "\n") {
				fmt.Fprintf(&out, "  > %s\n", line)
			}
		}
	}
	return out.String()
}

// HTML converts the markdown document into a standalone HTML fragment.
func HTML(sources []database.Source, style format.Style) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(Markdown(sources, style)), &buf); err != nil {
		return "", fmt.Errorf("rendering HTML: %w", err)
	}
	return buf.String(), nil
}
