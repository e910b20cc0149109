package database

// Source is one bibliographic record. Every field except ID is nullable;
// a nil pointer means the user never filled the field in, which is distinct
// from an empty string.
type Source struct {
	ID                   int64
	Title                *string
	URL                  *string
	Author               *string
	PublishedDate        *string // 2006-01-02
	ViewedDate           *string // 2006-01-02
	PublishedDateUnknown bool
	Comment              *string
}
