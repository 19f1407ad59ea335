package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyllables(t *testing.T) {
	tests := map[string]int{
		"cat":       1,
		"table":     2,
		"make":      1,
		"rhythm":    1,
		"beautiful": 3,
		"":          0,
	}

	for word, want := range tests {
		t.Run(word, func(t *testing.T) {
			assert.Equal(t, want, Syllables(word))
		})
	}
}

func TestAnalyzeReadability_SingleBullet(t *testing.T) {
	ra := AnalyzeReadability([]string{"Built a tool", ""}, 0)

	assert.Equal(t, 1, ra.Sentences)
	assert.Equal(t, 3, ra.Words)
	assert.Equal(t, 3, ra.Syllables)
	assert.InDelta(t, 119.19, ra.FleschEase, 1e-9)
	assert.Zero(t, ra.LongBullets)
}

func TestAnalyzeReadability_LongBullets(t *testing.T) {
	ra := AnalyzeReadability([]string{"Built a tool", "Shipped it"}, 2)

	assert.Equal(t, 2, ra.Sentences)
	assert.Equal(t, 1, ra.LongBullets)
	assert.InDelta(t, 2.5, ra.WordsPerSentence, 1e-9)
}

func TestAnalyzeReadability_Empty(t *testing.T) {
	ra := AnalyzeReadability(nil, 20)

	assert.Zero(t, ra.Sentences)
	assert.Zero(t, ra.FleschEase)
}
