package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchKeywords_Aliases(t *testing.T) {
	km := MatchKeywords("Experienced in Golang, K8s and PostgreSQL", []string{"Go", "Kubernetes", "postgres", "Rust"})

	assert.Equal(t, 4, km.Total)
	assert.Equal(t, []string{"go", "kubernetes", "postgresql"}, km.Matched)
	assert.Equal(t, []string{"rust"}, km.Missing)
	assert.InDelta(t, 0.75, km.Ratio, 1e-9)
}

func TestMatchKeywords_DeduplicatesAfterNormalizing(t *testing.T) {
	km := MatchKeywords("go developer", []string{"Go", "golang", " GO "})

	assert.Equal(t, 1, km.Total)
	assert.Equal(t, 1.0, km.Ratio)
}

func TestMatchKeywords_Empty(t *testing.T) {
	km := MatchKeywords("anything", nil)

	assert.Zero(t, km.Total)
	assert.Zero(t, km.Ratio)
	assert.NotNil(t, km.Matched)
	assert.NotNil(t, km.Missing)
}
