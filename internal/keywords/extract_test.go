package keywords

import (
	"testing"

	"github.com/jonathan/ats-resume-scorer/internal/parsing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractRequirement_SplitsRequiredAndPreferred(t *testing.T) {
	d, err := LoadEmbedded()
	require.NoError(t, err)

	posting := &parsing.Posting{
		Required:  "Strong Golang and SQL skills\nExperience with Docker and CI/CD pipelines",
		Preferred: "K8s experience\nTerraform\nDocker swarm",
	}

	req := d.ExtractRequirement(posting, "software engineer")

	assert.ElementsMatch(t, []string{"go", "sql", "docker", "ci/cd"}, req.RequiredKeywords)
	assert.ElementsMatch(t, []string{"kubernetes", "terraform"}, req.PreferredKeywords)
}

func TestExtractRequirement_NoMatches(t *testing.T) {
	d, err := LoadEmbedded()
	require.NoError(t, err)

	req := d.ExtractRequirement(&parsing.Posting{Required: "Juggling"}, "software_engineer")

	assert.Empty(t, req.RequiredKeywords)
	assert.Empty(t, req.PreferredKeywords)
	assert.True(t, req.IsEmpty())
}
