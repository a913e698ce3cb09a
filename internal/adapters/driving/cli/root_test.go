package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
)

// writeTranscripts creates a directory with a dated and an undated
// transcript for command tests.
func writeTranscripts(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	dated := `PIRMININKAS: Pradedame posėdį.
J. PETRAUSKAS: Siūlau svarstyti biudžeto projektą.
PIRMININKAS: Ačiū, pradedame svarstymą.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "2024-05-16 session.txt"), []byte(dated), 0o644))

	undated := `J. PETRAUSKAS: Grįžtame prie švietimo klausimo.
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(undated), 0o644))

	return dir
}

func TestParseDateFlag(t *testing.T) {
	t.Run("empty means no filter", func(t *testing.T) {
		filter, err := parseDateFlag("")
		require.NoError(t, err)
		assert.Nil(t, filter)
	})

	t.Run("ISO date", func(t *testing.T) {
		filter, err := parseDateFlag("2024-05-16")
		require.NoError(t, err)
		require.NotNil(t, filter)
		assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), filter.Date)
		assert.False(t, filter.Undated)
	})

	t.Run("Lithuanian long form", func(t *testing.T) {
		filter, err := parseDateFlag("2024 m. gegužės 16 d.")
		require.NoError(t, err)
		require.NotNil(t, filter)
		assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), filter.Date)
	})

	t.Run("undated literal", func(t *testing.T) {
		filter, err := parseDateFlag("Undated")
		require.NoError(t, err)
		require.NotNil(t, filter)
		assert.True(t, filter.Undated)
	})

	t.Run("malformed date", func(t *testing.T) {
		_, err := parseDateFlag("sometime in spring")
		require.Error(t, err)
		assert.ErrorIs(t, err, domain.ErrMalformedDate)
	})
}

func TestRootCmd_HasCommands(t *testing.T) {
	names := make([]string, 0)
	for _, cmd := range rootCmd.Commands() {
		names = append(names, cmd.Name())
	}

	assert.Contains(t, names, "ask")
	assert.Contains(t, names, "speakers")
	assert.Contains(t, names, "dates")
	assert.Contains(t, names, "version")
}
