// Package docx normalises .docx transcripts.
package docx

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/xml"
	"fmt"
	"io"
	"strings"

	"github.com/balsas-labs/stenograma-cli/internal/core/domain"
	"github.com/balsas-labs/stenograma-cli/internal/core/ports/driven"
)

// Ensure Normaliser implements the interface.
var _ driven.Normaliser = (*Normaliser)(nil)

// Normaliser handles DOCX transcripts.
type Normaliser struct{}

// New creates a new DOCX normaliser.
func New() *Normaliser {
	return &Normaliser{}
}

// SupportedExtensions returns the file extensions this normaliser handles.
func (n *Normaliser) SupportedExtensions() []string {
	return []string{".docx"}
}

// Normalise extracts paragraph text from word/document.xml, one
// paragraph per line, preserving paragraph order as line order. The
// document title from docProps/core.xml is carried along when present.
func (n *Normaliser) Normalise(_ context.Context, raw *domain.RawTranscript) (*domain.TranscriptText, error) {
	if raw == nil {
		return nil, domain.ErrInvalidInput
	}

	reader, err := zip.NewReader(bytes.NewReader(raw.Content), int64(len(raw.Content)))
	if err != nil {
		return nil, fmt.Errorf("open docx archive: %w", domain.ErrSourceUnreadable)
	}

	text, err := extractDocumentText(reader)
	if err != nil {
		return nil, err
	}

	return &domain.TranscriptText{
		Text:  text,
		Title: extractTitle(reader),
	}, nil
}

// extractDocumentText extracts text from word/document.xml.
func extractDocumentText(reader *zip.Reader) (string, error) {
	for _, file := range reader.File {
		if file.Name != "word/document.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			return "", fmt.Errorf("open document.xml: %w", domain.ErrSourceUnreadable)
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", domain.ErrSourceUnreadable)
		}

		return parseDocumentXML(content), nil
	}
	return "", nil
}

// documentXML represents the structure of word/document.xml.
type documentXML struct {
	Body struct {
		Paragraphs []paragraph `xml:"p"`
	} `xml:"body"`
}

type paragraph struct {
	Runs []run `xml:"r"`
}

type run struct {
	Text []textElement `xml:"t"`
}

type textElement struct {
	Content string `xml:",chardata"`
}

// parseDocumentXML extracts paragraph text from the document XML.
func parseDocumentXML(content []byte) string {
	var doc documentXML
	if err := xml.Unmarshal(content, &doc); err != nil {
		return ""
	}

	var result strings.Builder
	for i, para := range doc.Body.Paragraphs {
		if i > 0 {
			result.WriteString("\n")
		}
		for _, run := range para.Runs {
			for _, text := range run.Text {
				result.WriteString(text.Content)
			}
		}
	}

	return strings.TrimSpace(result.String())
}

// coreXML represents the structure of docProps/core.xml.
type coreXML struct {
	Title string `xml:"title"`
}

// extractTitle extracts the title from docProps/core.xml, if any.
func extractTitle(reader *zip.Reader) string {
	for _, file := range reader.File {
		if file.Name != "docProps/core.xml" {
			continue
		}

		rc, err := file.Open()
		if err != nil {
			break
		}

		content, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			break
		}

		var core coreXML
		if err := xml.Unmarshal(content, &core); err == nil {
			return strings.TrimSpace(core.Title)
		}
		break
	}
	return ""
}
