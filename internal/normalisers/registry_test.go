package normalisers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults_SelectsByExtension(t *testing.T) {
	r := Defaults()

	n, ok := r.ForName("2024-05-16 session.txt")
	require.True(t, ok)
	assert.Contains(t, n.SupportedExtensions(), ".txt")

	n, ok = r.ForName("posedis.DOCX")
	require.True(t, ok)
	assert.Contains(t, n.SupportedExtensions(), ".docx")
}

func TestDefaults_Unsupported(t *testing.T) {
	r := Defaults()

	assert.False(t, r.Supported("notes.pdf"))
	assert.False(t, r.Supported("noextension"))
}
