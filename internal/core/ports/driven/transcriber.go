package driven

import (
	"context"
	"time"
)

// VideoInfo describes a resolved video: its canonical ID, title, and
// any date that could be extracted from the title.
type VideoInfo struct {
	// ID is the canonical 11-character video identifier.
	ID string

	// Title is the human-readable title, or the ID when metadata
	// could not be fetched.
	Title string

	// Date is a date extracted from the title. Zero when absent.
	Date time.Time
}

// VideoResolver resolves a video URL to metadata and fetches its audio.
type VideoResolver interface {
	// Resolve extracts the video ID from a URL and fetches title
	// metadata. A metadata failure is not fatal: the returned info
	// falls back to the bare ID.
	Resolve(ctx context.Context, url string) (*VideoInfo, error)

	// FetchAudio downloads the video's audio track and returns the
	// path of a temporary audio file. The caller removes the file.
	FetchAudio(ctx context.Context, videoID string) (string, error)
}

// Transcriber converts audio into plain transcript text using a local
// speech-to-text engine. The output carries no speaker segmentation.
type Transcriber interface {
	// Transcribe runs speech-to-text on the audio file at path.
	Transcribe(ctx context.Context, audioPath string) (string, error)
}
