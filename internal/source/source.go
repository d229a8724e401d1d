// Package source loads input files as validated UTF-8 text.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/hyperifyio/vowelscan/internal/extract"
)

// ErrInvalidUTF8 is wrapped by every DecodeError.
var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

// FileAccessError reports that the input could not be opened or read.
type FileAccessError struct {
	Path string
	Err  error
}

func (e *FileAccessError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *FileAccessError) Unwrap() error { return e.Err }

// DecodeError reports input bytes that are not valid UTF-8. Offset is the
// position of the first invalid byte.
type DecodeError struct {
	Path   string
	Offset int
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decode %s: %v at byte %d", e.Path, ErrInvalidUTF8, e.Offset)
}

func (e *DecodeError) Unwrap() error { return ErrInvalidUTF8 }

// Normalization names accepted in Options.
const (
	NormalizeNone = "none"
	NormalizeNFC  = "nfc"
	NormalizeNFD  = "nfd"
)

// Options controls how a file becomes scannable text.
type Options struct {
	// Format selects the extractor, see extract.ForFormat.
	Format string
	// Normalize is one of NormalizeNone, NormalizeNFC or NormalizeNFD.
	Normalize string
}

// Validate reports unknown option values.
func (o Options) Validate() error {
	if _, err := extract.ForFormat(o.Format); err != nil {
		return err
	}
	if _, err := normForm(o.Normalize); err != nil {
		return err
	}
	return nil
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Load reads the whole file at path and returns its text. The file is closed
// before Load returns, whether or not reading succeeded.
func Load(path string, opts Options) (string, error) {
	ex, err := extract.ForFormat(opts.Format)
	if err != nil {
		return "", err
	}
	form, err := normForm(opts.Normalize)
	if err != nil {
		return "", err
	}

	raw, err := readAll(path)
	if err != nil {
		return "", err
	}
	return decode(path, raw, ex, form)
}

func readAll(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	defer f.Close()

	b, err := io.ReadAll(f)
	if err != nil {
		return nil, &FileAccessError{Path: path, Err: err}
	}
	return b, nil
}

// decode validates raw as UTF-8 before extraction, so HTML input is checked
// on its bytes too. A nil form leaves the text as-is.
func decode(path string, raw []byte, ex extract.Extractor, form *norm.Form) (string, error) {
	if !utf8.Valid(raw) {
		return "", &DecodeError{Path: path, Offset: firstInvalid(raw)}
	}
	raw = bytes.TrimPrefix(raw, utf8BOM)
	text := ex.Extract(raw)
	if form != nil {
		text = form.String(text)
	}
	return text, nil
}

func firstInvalid(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

func normForm(name string) (*norm.Form, error) {
	var f norm.Form
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NormalizeNone:
		return nil, nil
	case NormalizeNFC:
		f = norm.NFC
	case NormalizeNFD:
		f = norm.NFD
	default:
		return nil, fmt.Errorf("unknown normalization %q (want none, nfc or nfd)", name)
	}
	return &f, nil
}
