package extract

import (
	"fmt"
	"strings"
)

// Extractor turns raw file bytes into the text that gets scanned.
// Implementations must be deterministic and free of side effects.
type Extractor interface {
	Extract(input []byte) string
}

// PlainText scans the file content as-is.
type PlainText struct{}

func (PlainText) Extract(input []byte) string {
	return string(input)
}

// HTML scans only the visible text of an HTML document.
type HTML struct{}

func (HTML) Extract(input []byte) string {
	return FromHTML(input)
}

// Format names accepted by ForFormat.
const (
	FormatText = "text"
	FormatHTML = "html"
)

// ForFormat returns the extractor registered under name. The empty name
// selects plain text.
func ForFormat(name string) (Extractor, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", FormatText, "txt", "plain":
		return PlainText{}, nil
	case FormatHTML, "htm":
		return HTML{}, nil
	}
	return nil, fmt.Errorf("unknown input format %q (want text or html)", name)
}
