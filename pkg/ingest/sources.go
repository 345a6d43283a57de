/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: sources.go
Description: Input sources for Synoptic Core. A Source produces the text handed
to the processing pipeline. Provides a plain text source and an HTML source
that extracts visible text from markup (scripts and styles stripped) so web
documents can be processed like any other text.
*/

package ingest

import (
	"fmt"
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Source produces processable text for the pipeline.
type Source interface {
	Extract() (string, error)
	Name() string
	Description() string
}

// TextSource passes plain text through unchanged.
type TextSource struct {
	text string
}

// NewTextSource creates a source over plain text.
func NewTextSource(text string) *TextSource {
	return &TextSource{text: text}
}

// Extract returns the text as-is.
func (s *TextSource) Extract() (string, error) {
	return s.text, nil
}

// Name returns the name of this source.
func (s *TextSource) Name() string {
	return "TextSource"
}

// Description returns a description of this source.
func (s *TextSource) Description() string {
	return "Passes plain text through unchanged"
}

// HTMLSource extracts visible text from an HTML document.
type HTMLSource struct {
	reader io.Reader
}

// NewHTMLSource creates a source over an HTML document.
func NewHTMLSource(r io.Reader) *HTMLSource {
	return &HTMLSource{reader: r}
}

// Extract parses the document and returns its visible text with script and
// style content removed and whitespace runs collapsed to single spaces.
func (s *HTMLSource) Extract() (string, error) {
	doc, err := goquery.NewDocumentFromReader(s.reader)
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, noscript").Remove()

	text := doc.Text()
	return strings.Join(strings.Fields(text), " "), nil
}

// Name returns the name of this source.
func (s *HTMLSource) Name() string {
	return "HTMLSource"
}

// Description returns a description of this source.
func (s *HTMLSource) Description() string {
	return "Extracts visible text from HTML documents"
}
