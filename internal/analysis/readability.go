package analysis

import (
	"strings"
)

// ReadabilityAnalysis holds a Flesch reading-ease estimate over bullets,
// treating each bullet as one sentence.
type ReadabilityAnalysis struct {
	Sentences        int     `json:"sentences"`
	Words            int     `json:"words"`
	Syllables        int     `json:"syllables"`
	WordsPerSentence float64 `json:"words_per_sentence"`
	FleschEase       float64 `json:"flesch_reading_ease"`
	LongBullets      int     `json:"long_bullets"`
}

// AnalyzeReadability estimates how easy the bullets are to read.
func AnalyzeReadability(bullets []string, longBulletWords int) ReadabilityAnalysis {
	ra := ReadabilityAnalysis{}
	for _, b := range bullets {
		words := Words(b)
		if len(words) == 0 {
			continue
		}
		ra.Sentences++
		ra.Words += len(words)
		if longBulletWords > 0 && len(words) > longBulletWords {
			ra.LongBullets++
		}
		for _, w := range words {
			ra.Syllables += Syllables(w)
		}
	}
	if ra.Sentences == 0 || ra.Words == 0 {
		return ra
	}
	ra.WordsPerSentence = float64(ra.Words) / float64(ra.Sentences)
	ra.FleschEase = 206.835 - 1.015*ra.WordsPerSentence - 84.6*(float64(ra.Syllables)/float64(ra.Words))
	return ra
}

// Syllables estimates the syllable count of an English word by counting
// vowel groups, dropping a silent trailing "e".
func Syllables(word string) int {
	w := strings.ToLower(strings.Trim(word, ".,;:!?'\"()"))
	if w == "" {
		return 0
	}
	count := 0
	prevVowel := false
	for _, r := range w {
		vowel := strings.ContainsRune("aeiouy", r)
		if vowel && !prevVowel {
			count++
		}
		prevVowel = vowel
	}
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}
	if count == 0 {
		count = 1
	}
	return count
}
