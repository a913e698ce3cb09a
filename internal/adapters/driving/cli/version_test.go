package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVersionCmd_Use(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
}

func TestVersionCmd_Executes(t *testing.T) {
	// Save and restore version
	originalVersion := version
	version = "test-version-1.0.0"
	defer func() { version = originalVersion }()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"version"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "stenograma version test-version-1.0.0")
}

func TestSetVersion(t *testing.T) {
	originalVersion := version
	defer func() { version = originalVersion }()

	SetVersion("1.2.3")
	assert.Equal(t, "1.2.3", version)

	// Empty input keeps the current value.
	SetVersion("")
	assert.Equal(t, "1.2.3", version)
}
