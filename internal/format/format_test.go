package format

import (
	"strings"
	"testing"

	"saveit/internal/database"
)

func ptr(s string) *string { return &s }

func fullSource() database.Source {
	return database.Source{
		ID:            3,
		Title:         ptr("The Go Programming Language"),
		URL:           ptr("https://go.dev"),
		Author:        ptr("Donovan, Alan"),
		PublishedDate: ptr("2015-10-26"),
		ViewedDate:    ptr("2026-08-20"),
	}
}

func TestFormatDefault(t *testing.T) {
	got := Format(fullSource(), Style{})
	want := "[3] Donovan, Alan (2015): The Go Programming Language URL: https://go.dev [viewed: 20. 08. 2026]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormatDeterministic(t *testing.T) {
	s := fullSource()
	if Format(s, Style{}) != Format(s, Style{}) {
		t.Error("expected identical output for identical input")
	}
}

func TestFormatAllNil(t *testing.T) {
	got := Format(database.Source{ID: 7}, Style{})
	if got != "[7] Unknown" {
		t.Errorf("got %q, want %q", got, "[7] Unknown")
	}
}

func TestFormatEmptyAuthor(t *testing.T) {
	s := fullSource()
	s.Author = ptr("")
	got := Format(s, Style{})
	if !strings.Contains(got, "Unknown") {
		t.Errorf("expected Unknown placeholder for empty author, got %q", got)
	}
}

func TestUnknownFlagHidesDate(t *testing.T) {
	withDate := fullSource()
	withDate.PublishedDateUnknown = true

	withoutDate := fullSource()
	withoutDate.PublishedDateUnknown = true
	withoutDate.PublishedDate = nil

	a := Format(withDate, Style{})
	b := Format(withoutDate, Style{})
	if a != b {
		t.Errorf("expected identical output regardless of stored date, got %q and %q", a, b)
	}
	if strings.Contains(a, "2015") {
		t.Errorf("expected year to be hidden, got %q", a)
	}
}

func TestNilDateWithoutFlagOmitsYear(t *testing.T) {
	s := fullSource()
	s.PublishedDate = nil
	got := Format(s, Style{})
	if strings.Contains(got, "(") {
		t.Errorf("expected no year segment, got %q", got)
	}
}

func TestFormatAllEmpty(t *testing.T) {
	if got := FormatAll(nil, Style{}); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
	if got := FormatAll([]database.Source{}, Style{}); got != "" {
		t.Errorf("expected empty string, got %q", got)
	}
}

func TestFormatAllSingle(t *testing.T) {
	s := fullSource()
	if FormatAll([]database.Source{s}, Style{}) != Format(s, Style{}) {
		t.Error("expected single-element FormatAll to equal Format, with no delimiter")
	}
}

func TestFormatAllPair(t *testing.T) {
	a := fullSource()
	b := fullSource()
	b.ID = 4
	got := FormatAll([]database.Source{a, b}, Style{})
	want := Format(a, Style{}) + Delimiter + Format(b, Style{})
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCustomTemplate(t *testing.T) {
	style := Style{
		Standard: "custom",
		Custom:   "{AUTHOR} | {TITLE} | {P_DATE(2006-01)} | {V_DATE()} | {INDEX}",
	}
	got := Format(fullSource(), style)
	want := "Donovan, Alan | The Go Programming Language | 2015-10 | 20. 08. 2026 | 3"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestCustomTemplateUnknownDate(t *testing.T) {
	s := fullSource()
	s.PublishedDateUnknown = true
	style := Style{Standard: "custom", Custom: "{TITLE} ({P_DATE()})"}
	got := Format(s, style)
	if got != "The Go Programming Language ()" {
		t.Errorf("expected empty P_DATE substitution, got %q", got)
	}
}

func TestCustomTemplateNilFields(t *testing.T) {
	style := Style{Standard: "custom", Custom: "{INDEX}: {AUTHOR} {TITLE}{URL}"}
	got := Format(database.Source{ID: 9}, style)
	if got != "9: Unknown " {
		t.Errorf("got %q", got)
	}
}

func TestCustomStandardWithEmptyTemplateFallsBack(t *testing.T) {
	got := Format(fullSource(), Style{Standard: "custom"})
	if got != Format(fullSource(), Style{}) {
		t.Error("expected empty custom template to fall back to the default standard")
	}
}

func TestUnparsableDateRenderedVerbatim(t *testing.T) {
	s := fullSource()
	s.ViewedDate = ptr("sometime in august")
	got := Format(s, Style{})
	if !strings.Contains(got, "[viewed: sometime in august]") {
		t.Errorf("expected verbatim fallback, got %q", got)
	}
}
