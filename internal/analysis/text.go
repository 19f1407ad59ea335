// Package analysis provides pure text and employment-history classifiers used by the scoring parameters.
package analysis

import (
	"strings"
	"unicode"
)

// fillerWords are skipped when looking for the word that opens a bullet.
var fillerWords = map[string]bool{
	"a": true, "an": true, "the": true, "and": true, "or": true,
	"to": true, "of": true, "in": true, "on": true, "for": true,
	"with": true, "by": true, "at": true, "as": true, "from": true,
	"also": true, "then": true,
}

// bulletGlyphs are leading characters parsers leave on bullet lines.
const bulletGlyphs = "-*•▪◦·‣⁃–—>+ \t"

// Words splits text into lower-cased word tokens. Apostrophes, hyphens,
// dots, plus and hash signs inside a token are kept so that terms like
// "node.js", "c++" and "c#" survive.
func Words(text string) []string {
	fields := strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return false
		}
		switch r {
		case '\'', '-', '.', '+', '#', '&':
			return false
		}
		return true
	})

	out := make([]string, 0, len(fields))
	for _, f := range fields {
		f = strings.Trim(f, "'-.&")
		if f != "" {
			out = append(out, f)
		}
	}
	return out
}

// trimBullet removes list glyphs and numbering from the start of a bullet.
func trimBullet(bullet string) string {
	s := strings.TrimLeft(bullet, bulletGlyphs)
	// "1." / "2)" style numbering
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		s = strings.TrimLeft(s[i+1:], bulletGlyphs)
	}
	return s
}

// LeadingWord returns the first non-filler word of a bullet, lower-cased
// and stripped of punctuation. Returns "" for blank bullets.
func LeadingWord(bullet string) string {
	for _, w := range Words(trimBullet(bullet)) {
		if fillerWords[w] {
			continue
		}
		return w
	}
	return ""
}

// leadingWords returns up to n words from the start of the bullet,
// skipping leading filler words and "-ly" adverbs.
func leadingWords(bullet string, n int) []string {
	words := Words(trimBullet(bullet))
	start := 0
	for start < len(words) {
		w := words[start]
		if fillerWords[w] || (strings.HasSuffix(w, "ly") && len(w) > 4) {
			start++
			continue
		}
		break
	}
	end := start + n
	if end > len(words) {
		end = len(words)
	}
	return words[start:end]
}

// WordCount counts word tokens in text.
func WordCount(text string) int {
	return len(Words(text))
}

// containsTerm reports whether term occurs in text (both lower-cased)
// with no letter, digit or hyphen directly on either side, so "go" does
// not match inside "go-to-market".
func containsTerm(text, term string) bool {
	if term == "" {
		return false
	}
	offset := 0
	for {
		idx := strings.Index(text[offset:], term)
		if idx < 0 {
			return false
		}
		start := offset + idx
		end := start + len(term)
		if !isWordByteBefore(text, start) && !isWordByteAt(text, end) {
			return true
		}
		offset = start + 1
		if offset >= len(text) {
			return false
		}
	}
}

func isWordByteBefore(s string, i int) bool {
	if i <= 0 {
		return false
	}
	r := rune(s[i-1])
	return r < 0x80 && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-')
}

func isWordByteAt(s string, i int) bool {
	if i >= len(s) {
		return false
	}
	r := rune(s[i])
	return r < 0x80 && (unicode.IsLetter(r) || unicode.IsDigit(r) || r == '-')
}

// firstPersonPronouns are flagged by the pronoun check.
var firstPersonPronouns = map[string]bool{
	"i": true, "me": true, "my": true, "mine": true, "myself": true,
	"we": true, "our": true, "us": true, "ours": true,
}

// PronounCount counts first-person pronouns across bullets.
func PronounCount(bullets []string) int {
	count := 0
	for _, b := range bullets {
		for _, w := range Words(b) {
			if firstPersonPronouns[w] {
				count++
			}
		}
	}
	return count
}

// buzzwords are clichés that add no information for a reviewer.
var buzzwords = []string{
	"team player", "hard worker", "hardworking", "go-getter", "synergy",
	"results-driven", "results-oriented", "detail-oriented", "self-starter",
	"think outside the box", "out of the box", "go-to person", "dynamic",
	"passionate", "motivated", "proactive", "best of breed", "value add",
	"track record", "fast learner", "people person", "thought leader",
}

// FindBuzzwords returns the buzzwords present in text, in list order.
func FindBuzzwords(text string) []string {
	lower := strings.ToLower(text)
	found := make([]string, 0)
	for _, b := range buzzwords {
		if containsTerm(lower, b) {
			found = append(found, b)
		}
	}
	return found
}
