package vowels

import (
	"fmt"
	"strings"
)

// Mode selects how scan results are reported.
type Mode int

const (
	// Raw keeps order, duplicates and casing.
	Raw Mode = iota
	// Deduped lowercases and drops repeated words.
	Deduped
)

func (m Mode) String() string {
	switch m {
	case Raw:
		return "raw"
	case Deduped:
		return "deduped"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts a mode name into a Mode. The empty string means Raw.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "raw":
		return Raw, nil
	case "deduped", "dedupe", "unique":
		return Deduped, nil
	}
	return Raw, fmt.Errorf("unknown mode %q (want raw or deduped)", s)
}
