// Package transcript segments loosely structured transcript text into
// per-speaker entries and extracts dates from file names and titles.
//
// Parsing is pure: no file I/O, no shared state. The loader service
// feeds it decoded text; the parser only decides where speaker turns
// begin and end.
package transcript

import (
	"strings"
	"unicode"
)

// Entry is one speaker turn produced by segmentation.
type Entry struct {
	// Speaker is the speaker name exactly as written, trimmed.
	Speaker string

	// Text is the turn's text, continuation lines joined by a space.
	Text string
}

// ParseHeader recognises a speaker header at the start of a line.
//
// A header is a leading name-like token followed by the first ':' or
// '.' delimiter, e.g.
//
//	PIRMININKAS: Sveiki.
//	V. ALEKNAVIČIENĖ (LSDPF*). Labas.
//
// The scan is careful not to split inside initials such as
// "V. ALEKNAVIČIENĖ": a candidate delimiter is skipped when the text
// after it starts with another all-caps word, and the scan continues
// to the next delimiter. Later '.' or ':' characters in the remainder
// (decimals, abbreviations) never count, since the first accepted
// delimiter ends the scan.
//
// ok is false when the line has no recognisable header, in which case
// the line is a continuation of the previous speaker's turn.
func ParseHeader(line string) (speaker, remainder string, ok bool) {
	for i, r := range line {
		if r != ':' && r != '.' {
			continue
		}

		prefix := strings.TrimSpace(line[:i])
		rest := strings.TrimSpace(line[i+1:])

		if prefix == "" || !looksLikeName(prefix) {
			continue
		}

		// An all-caps word right after the delimiter means this was
		// an initial inside the name, not the end of it.
		words := strings.Fields(rest)
		if len(words) > 0 && isUpper(words[0]) {
			continue
		}

		return prefix, rest, true
	}
	return "", "", false
}

// looksLikeName reports whether a header prefix is plausibly a speaker
// name: it contains cased letters, all of them upper-case, and does
// not start with a digit.
func looksLikeName(s string) bool {
	first, _ := firstRune(s)
	if unicode.IsDigit(first) {
		return false
	}
	return isUpper(s)
}

// isUpper mirrors the "all cased characters are upper-case, and there
// is at least one" test. Digits and punctuation are ignored, so
// parenthetical fractions like "(LSDPF*)" pass.
func isUpper(s string) bool {
	cased := false
	for _, r := range s {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) || unicode.IsTitle(r) {
			cased = true
		}
	}
	return cased
}

func firstRune(s string) (rune, bool) {
	for _, r := range s {
		return r, true
	}
	return 0, false
}

// SegmentText splits transcript text into ordered speaker entries.
// Lines without a recognisable header are appended to the previous
// entry; text before the first header is dropped.
func SegmentText(text string) []Entry {
	var entries []Entry

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if line == "" {
			continue
		}

		if speaker, rest, ok := ParseHeader(line); ok {
			entries = append(entries, Entry{Speaker: speaker, Text: rest})
			continue
		}

		if len(entries) > 0 {
			last := &entries[len(entries)-1]
			if last.Text == "" {
				last.Text = line
			} else {
				last.Text += " " + line
			}
		}
	}

	return entries
}
