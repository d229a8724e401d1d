// Package vowels finds standalone vowel words: maximal runs of Latin and
// Cyrillic vowels that are not attached to any other word character.
package vowels

import (
	"regexp"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Alphabet lists the recognized vowels. Matching is case-insensitive.
const Alphabet = "eyuioaаеєиіїоуюя"

// runPattern matches maximal runs of alphabet characters. RE2 has no
// lookaround, so word boundaries are checked on the match indices instead.
var runPattern = regexp.MustCompile(`(?i)[` + Alphabet + `]+`)

// IsVowel reports whether r belongs to the alphabet, ignoring case.
func IsVowel(r rune) bool {
	return runPattern.MatchString(string(r))
}

// IsWordRune reports whether r is a letter, a number or an underscore.
func IsWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}

// RawMatches returns every vowel word in text in the order found, keeping
// duplicates and the original casing.
func RawMatches(text string) []string {
	words := []string{}
	for _, loc := range runPattern.FindAllStringIndex(text, -1) {
		if standalone(text, loc[0], loc[1]) {
			words = append(words, text[loc[0]:loc[1]])
		}
	}
	return words
}

// DedupedMatches returns the lowercased vowel words of text without
// duplicates, in order of first occurrence.
func DedupedMatches(text string) []string {
	return dedupe(RawMatches(text))
}

// Extract runs the scan in the given mode.
func Extract(text string, mode Mode) []string {
	if mode == Deduped {
		return DedupedMatches(text)
	}
	return RawMatches(text)
}

// standalone reports whether text[start:end] has no word rune directly
// before or after it.
func standalone(text string, start, end int) bool {
	if start > 0 {
		if r, _ := utf8.DecodeLastRuneInString(text[:start]); IsWordRune(r) {
			return false
		}
	}
	if end < len(text) {
		if r, _ := utf8.DecodeRuneInString(text[end:]); IsWordRune(r) {
			return false
		}
	}
	return true
}

func dedupe(words []string) []string {
	lower := cases.Lower(language.Und)
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		w = lower.String(w)
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
