// Package editor holds the in-memory draft of one source record. The draft
// is plain mutable state read and written by event handlers; it knows nothing
// about the terminal UI or the store, so it can be tested without either.
package editor

import (
	"fmt"
	"strings"
	"time"

	"saveit/internal/database"
)

// DateLayout is the wire format for dates in drafts and in the store.
const DateLayout = "2006-01-02"

// Draft is the unsaved copy of a source being edited. Text fields hold what
// the user typed; a blank field converts to an absent (nil) column on save.
// ID is zero while the draft was never attached to a stored record.
type Draft struct {
	ID                   int64
	Title                string
	URL                  string
	Author               string
	PublishedDate        string
	ViewedDate           string
	PublishedDateUnknown bool
	Comment              string
}

// NewDraft returns an empty draft with both dates preset to the given day,
// mirroring how a new entry usually starts out.
func NewDraft(now time.Time) *Draft {
	today := now.Format(DateLayout)
	return &Draft{
		PublishedDate: today,
		ViewedDate:    today,
	}
}

// FromSource copies a stored record into a draft for editing.
func FromSource(s *database.Source) *Draft {
	return &Draft{
		ID:                   s.ID,
		Title:                deref(s.Title),
		URL:                  deref(s.URL),
		Author:               deref(s.Author),
		PublishedDate:        deref(s.PublishedDate),
		ViewedDate:           deref(s.ViewedDate),
		PublishedDateUnknown: s.PublishedDateUnknown,
		Comment:              deref(s.Comment),
	}
}

// ToSource converts the draft back into a record, validating dates. Blank
// fields become nil columns. Date fields must be YYYY-MM-DD when present;
// the published date is not validated while the unknown flag is set, since
// the flag makes the value semantically irrelevant.
func (d *Draft) ToSource() (*database.Source, error) {
	s := &database.Source{
		ID:                   d.ID,
		Title:                blankToNil(d.Title),
		URL:                  blankToNil(d.URL),
		Author:               blankToNil(d.Author),
		PublishedDateUnknown: d.PublishedDateUnknown,
		Comment:              blankToNil(d.Comment),
	}

	pub, err := parseDraftDate(d.PublishedDate)
	if err != nil && !d.PublishedDateUnknown {
		return nil, fmt.Errorf("published date: %w", err)
	}
	if err == nil {
		s.PublishedDate = pub
	}

	viewed, err := parseDraftDate(d.ViewedDate)
	if err != nil {
		return nil, fmt.Errorf("viewed date: %w", err)
	}
	s.ViewedDate = viewed

	return s, nil
}

// Reset clears the draft back to a fresh entry for the given day.
func (d *Draft) Reset(now time.Time) {
	*d = *NewDraft(now)
}

func parseDraftDate(input string) (*string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return nil, nil
	}
	if _, err := time.Parse(DateLayout, trimmed); err != nil {
		return nil, fmt.Errorf("%q is not a YYYY-MM-DD date", trimmed)
	}
	return &trimmed, nil
}

func blankToNil(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	// Preserve the text as typed, only dropping all-whitespace input.
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
