package domain

import "time"

// WordOrigin tells which vocabulary a word came from
type WordOrigin string

const (
	// OriginShared marks words from the global vocabulary
	OriginShared WordOrigin = "shared"
	// OriginPersonal marks words added by a specific user
	OriginPersonal WordOrigin = "personal"
)

// Word represents a source-language word and its translation
type Word struct {
	ID         int64
	UserID     int64 // 0 for shared words
	SourceText string
	TargetText string
	Origin     WordOrigin
	CreatedAt  time.Time
}

// DisplayForm returns the "source - target" form shown on deletion buttons
func (w Word) DisplayForm() string {
	return w.SourceText + " - " + w.TargetText
}
