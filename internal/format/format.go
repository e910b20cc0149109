// Package format renders source records into citation text. It is pure:
// no I/O, no clipboard, no clock. Given equal inputs the output is
// byte-identical.
package format

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"saveit/internal/database"
)

// Style selects the rendering standard. Standard is "default" or "custom";
// Custom holds the template applied when Standard is "custom".
type Style struct {
	Standard string
	Custom   string
}

const (
	// unknownAuthor is the fixed placeholder for a missing author.
	unknownAuthor = "Unknown"

	publishedLayout = "2006"
	viewedLayout    = "02. 01. 2006"

	// Delimiter separates records in FormatAll output.
	Delimiter = "\n"
)

var (
	pubDateRe    = regexp.MustCompile(`\{P_DATE\(([^)]*)\)\}`)
	viewedDateRe = regexp.MustCompile(`\{V_DATE\(([^)]*)\)\}`)
)

// Format renders one source. The default standard produces
//
//	[<id>] <author> (<year>): <title> URL: <url> [viewed: <DD. MM. YYYY>]
//
// with these rules: a nil or empty author renders the Unknown placeholder;
// the year segment is dropped whenever the published date is nil or the
// published-date-unknown flag is set (the flag overrides any stored date);
// the title, URL and viewed segments are dropped when their field is nil or
// empty. A record with nothing filled in renders "[<id>] Unknown".
func Format(s database.Source, style Style) string {
	if style.Standard == "custom" && style.Custom != "" {
		return applyTemplate(s, style.Custom)
	}
	return formatDefault(s)
}

// FormatAll renders every record in input order, joined by Delimiter.
// Empty input produces the empty string.
func FormatAll(sources []database.Source, style Style) string {
	if len(sources) == 0 {
		return ""
	}
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		parts = append(parts, Format(s, style))
	}
	return strings.Join(parts, Delimiter)
}

func formatDefault(s database.Source) string {
	var out strings.Builder

	fmt.Fprintf(&out, "[%d]", s.ID)

	out.WriteString(" " + authorOrUnknown(s.Author))

	if !s.PublishedDateUnknown && hasValue(s.PublishedDate) {
		fmt.Fprintf(&out, " (%s)", renderDate(*s.PublishedDate, publishedLayout))
	}

	if hasValue(s.Title) {
		out.WriteString(": " + *s.Title)
	}
	if hasValue(s.URL) {
		out.WriteString(" URL: " + *s.URL)
	}
	if hasValue(s.ViewedDate) {
		fmt.Fprintf(&out, " [viewed: %s]", renderDate(*s.ViewedDate, viewedLayout))
	}

	return out.String()
}

// applyTemplate substitutes {INDEX}, {TITLE}, {URL}, {AUTHOR},
// {P_DATE(layout)} and {V_DATE(layout)} in the template. Layouts are Go
// reference layouts; empty parentheses pick the package defaults. Nil text
// fields substitute as empty strings, a missing author as the Unknown
// placeholder, and P_DATE as empty when the unknown flag is set.
func applyTemplate(s database.Source, template string) string {
	out := template

	out = strings.ReplaceAll(out, "{INDEX}", strconv.FormatInt(s.ID, 10))
	out = strings.ReplaceAll(out, "{TITLE}", valueOr(s.Title, ""))
	out = strings.ReplaceAll(out, "{URL}", valueOr(s.URL, ""))
	out = strings.ReplaceAll(out, "{AUTHOR}", authorOrUnknown(s.Author))

	out = pubDateRe.ReplaceAllStringFunc(out, func(match string) string {
		if s.PublishedDateUnknown || !hasValue(s.PublishedDate) {
			return ""
		}
		layout := pubDateRe.FindStringSubmatch(match)[1]
		if layout == "" {
			layout = publishedLayout
		}
		return renderDate(*s.PublishedDate, layout)
	})

	out = viewedDateRe.ReplaceAllStringFunc(out, func(match string) string {
		if !hasValue(s.ViewedDate) {
			return ""
		}
		layout := viewedDateRe.FindStringSubmatch(match)[1]
		if layout == "" {
			layout = viewedLayout
		}
		return renderDate(*s.ViewedDate, layout)
	})

	return out
}

// renderDate reformats a stored 2006-01-02 date into the given layout.
// Values that do not parse are rendered verbatim.
func renderDate(stored, layout string) string {
	t, err := time.Parse("2006-01-02", stored)
	if err != nil {
		return stored
	}
	return t.Format(layout)
}

func authorOrUnknown(author *string) string {
	if hasValue(author) {
		return *author
	}
	return unknownAuthor
}

func hasValue(s *string) bool {
	return s != nil && *s != ""
}

func valueOr(s *string, fallback string) string {
	if s != nil {
		return *s
	}
	return fallback
}
