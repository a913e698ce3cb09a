package domain

import (
	"strings"
	"time"
)

// Utterance represents one attributed unit of speech in a transcript.
// It is immutable once created; the corpus only ever appends.
type Utterance struct {
	// Speaker is the speaker name with its original casing, for display.
	Speaker string

	// Date is the calendar date the utterance was spoken.
	// The zero value means the date could not be determined.
	Date time.Time

	// Text is the full utterance text, continuation lines joined.
	Text string

	// Order is the position in the global corpus sequence.
	// It increases strictly across all loaded documents, giving a
	// stable chronological replay order.
	Order int
}

// HasDate reports whether a date was assigned to the utterance.
func (u Utterance) HasDate() bool {
	return !u.Date.IsZero()
}

// SpeakerKey returns the normalised form of the utterance's speaker
// name, used for indexing and case-insensitive matching.
func (u Utterance) SpeakerKey() string {
	return NormaliseSpeaker(u.Speaker)
}

// NormaliseSpeaker canonicalises a speaker name for indexing:
// surrounding whitespace trimmed, internal runs of whitespace
// collapsed, upper-cased.
func NormaliseSpeaker(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// RawTranscript represents opaque bytes read from a source file or
// received as an upload, before normalisation into plain text.
type RawTranscript struct {
	// Name is the original file name (used for format selection and
	// date extraction).
	Name string

	// Content is the raw bytes.
	Content []byte
}

// TranscriptText is the output of normalisation: plain text plus an
// optional embedded title (e.g. from docx core properties).
type TranscriptText struct {
	// Text is the full plain-text content, paragraphs as lines.
	Text string

	// Title is the document title when the format carries one.
	Title string
}
