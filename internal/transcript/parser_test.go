package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHeader_Colon(t *testing.T) {
	speaker, rest, ok := ParseHeader("PIRMININKAS: Sveiki visi.")

	require.True(t, ok)
	assert.Equal(t, "PIRMININKAS", speaker)
	assert.Equal(t, "Sveiki visi.", rest)
}

func TestParseHeader_Period(t *testing.T) {
	speaker, rest, ok := ParseHeader("PIRMININKAS. Sveiki visi.")

	require.True(t, ok)
	assert.Equal(t, "PIRMININKAS", speaker)
	assert.Equal(t, "Sveiki visi.", rest)
}

func TestParseHeader_InitialsNotSplit(t *testing.T) {
	// The '.' after "V" must not end the name; the parenthetical and
	// the second '.' belong to the header too.
	speaker, rest, ok := ParseHeader("V. ALEKNAVIČIENĖ (LSDPF*). Labas rytas.")

	require.True(t, ok)
	assert.Equal(t, "V. ALEKNAVIČIENĖ (LSDPF*)", speaker)
	assert.Equal(t, "Labas rytas.", rest)
}

func TestParseHeader_ParentheticalName(t *testing.T) {
	speaker, rest, ok := ParseHeader("PIRMININKAS (S. SKVERNELIS). Posėdį pradedame.")

	require.True(t, ok)
	assert.Equal(t, "PIRMININKAS (S. SKVERNELIS)", speaker)
	assert.Equal(t, "Posėdį pradedame.", rest)
}

func TestParseHeader_NoHeader(t *testing.T) {
	tests := []struct {
		name string
		line string
	}{
		{"lowercase prose", "tai buvo ilga diena ir niekas nekalbėjo."},
		{"mixed case prefix", "Pirmininkas: Sveiki."},
		{"digit prefix", "2024: metų apžvalga."},
		{"no delimiter", "PIRMININKAS Sveiki"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := ParseHeader(tt.line)
			assert.False(t, ok)
		})
	}
}

func TestParseHeader_DecimalInRemainder(t *testing.T) {
	// Only the first delimiter after the leading token counts; the
	// decimal point must not produce a second split.
	speaker, rest, ok := ParseHeader("MINISTRAS: Biudžetas augo 3.5 procento.")

	require.True(t, ok)
	assert.Equal(t, "MINISTRAS", speaker)
	assert.Equal(t, "Biudžetas augo 3.5 procento.", rest)
}

func TestSegmentText_Continuations(t *testing.T) {
	text := "PIRMININKAS: Pradedame posėdį.\n" +
		"Darbotvarkėje trys klausimai.\n" +
		"MINISTRAS: Dėkoju už žodį.\n"

	entries := SegmentText(text)

	require.Len(t, entries, 2)
	assert.Equal(t, "PIRMININKAS", entries[0].Speaker)
	assert.Equal(t, "Pradedame posėdį. Darbotvarkėje trys klausimai.", entries[0].Text)
	assert.Equal(t, "MINISTRAS", entries[1].Speaker)
	assert.Equal(t, "Dėkoju už žodį.", entries[1].Text)
}

func TestSegmentText_SameSpeakerTwice(t *testing.T) {
	text := "PIRMININKAS: Pirmas klausimas.\n" +
		"MINISTRAS: Atsakymas.\n" +
		"PIRMININKAS: Antras klausimas.\n"

	entries := SegmentText(text)

	require.Len(t, entries, 3)
	assert.Equal(t, "PIRMININKAS", entries[0].Speaker)
	assert.Equal(t, "MINISTRAS", entries[1].Speaker)
	assert.Equal(t, "PIRMININKAS", entries[2].Speaker)
	assert.Equal(t, "Antras klausimas.", entries[2].Text)
}

func TestSegmentText_PreambleDropped(t *testing.T) {
	text := "Stenograma Nr. 42\n" +
		"PIRMININKAS: Pradedame.\n"

	entries := SegmentText(text)

	require.Len(t, entries, 1)
	assert.Equal(t, "PIRMININKAS", entries[0].Speaker)
	assert.Equal(t, "Pradedame.", entries[0].Text)
}

func TestSegmentText_Deterministic(t *testing.T) {
	text := "A: viena.\nB: dvi.\ntęsinys čia.\nA: trys.\n"

	first := SegmentText(text)
	second := SegmentText(text)

	assert.Equal(t, first, second)
}

func TestSegmentText_Empty(t *testing.T) {
	assert.Empty(t, SegmentText(""))
	assert.Empty(t, SegmentText("\n\n\n"))
}
