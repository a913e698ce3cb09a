// Package normalisers provides implementations of the Normaliser
// interface for the supported transcript formats. Each normaliser
// knows how to extract plain text from a specific file extension.
//
// Normalisers are registered with the Registry at startup; the ingest
// service selects one by the source file's extension.
package normalisers

import (
	"path/filepath"
	"strings"

	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
	"github.com/balsas-labs/stenograma-cli/internal/normalisers/docx"
	"github.com/balsas-labs/stenograma-cli/internal/normalisers/plaintext"
)

// Registry selects a normaliser by file extension.
type Registry struct {
	byExt map[string]driven.Normaliser
}

// NewRegistry creates a registry with the given normalisers.
func NewRegistry(normalisers ...driven.Normaliser) *Registry {
	r := &Registry{byExt: make(map[string]driven.Normaliser)}
	for _, n := range normalisers {
		for _, ext := range n.SupportedExtensions() {
			r.byExt[strings.ToLower(ext)] = n
		}
	}
	return r
}

// Defaults returns a registry with every built-in normaliser.
func Defaults() *Registry {
	return NewRegistry(plaintext.New(), docx.New())
}

// ForName returns the normaliser for a file name's extension, or
// false when the format is unsupported.
func (r *Registry) ForName(name string) (driven.Normaliser, bool) {
	n, ok := r.byExt[strings.ToLower(filepath.Ext(name))]
	return n, ok
}

// Supported reports whether any normaliser handles the file name.
func (r *Registry) Supported(name string) bool {
	_, ok := r.ForName(name)
	return ok
}
