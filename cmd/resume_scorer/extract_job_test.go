package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

const samplePostingHTML = `<html>
<head><title>Backend Engineer | Acme</title></head>
<body>
<h1>Backend Engineer</h1>
<h2>Requirements</h2>
<ul>
<li>Production experience with Go and Kubernetes</li>
<li>Strong SQL and Docker skills</li>
</ul>
<h2>Nice to have</h2>
<ul>
<li>Terraform</li>
<li>Kafka</li>
</ul>
<h2>Benefits</h2>
<p>Great AWS credits for side projects</p>
</body>
</html>`

func TestExecuteExtractJob_HTML(t *testing.T) {
	dir := t.TempDir()
	opts := extractOptions{
		postingPath: writeFile(t, dir, "posting.html", samplePostingHTML),
		role:        "backend engineer",
	}

	var stdout bytes.Buffer
	err := executeExtractJob(opts, defaultConfig(), zap.NewNop(), &stdout, &bytes.Buffer{})
	require.NoError(t, err)

	var req types.JobRequirement
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &req))
	assert.ElementsMatch(t, []string{"go", "kubernetes", "sql", "docker"}, req.RequiredKeywords)
	assert.ElementsMatch(t, []string{"terraform", "kafka"}, req.PreferredKeywords)
	assert.NotContains(t, req.RequiredKeywords, "aws")
}

func TestExecuteExtractJob_TextToFile(t *testing.T) {
	dir := t.TempDir()
	posting := "Data Engineer\nRequirements:\n- Git and SQL\nPreferred:\n- Docker\n"
	opts := extractOptions{
		postingPath: writeFile(t, dir, "posting.txt", posting),
		role:        "software_engineer",
		outPath:     filepath.Join(dir, "job.json"),
		verbose:     true,
	}

	var stdout, stderr bytes.Buffer
	err := executeExtractJob(opts, defaultConfig(), zap.NewNop(), &stdout, &stderr)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "EXTRACTED KEYWORDS")

	data, err := os.ReadFile(opts.outPath)
	require.NoError(t, err)
	var req types.JobRequirement
	require.NoError(t, json.Unmarshal(data, &req))
	assert.ElementsMatch(t, []string{"git", "sql"}, req.RequiredKeywords)
	assert.Equal(t, []string{"docker"}, req.PreferredKeywords)
}

func TestExecuteExtractJob_FallsBackToRoleDefaults(t *testing.T) {
	dir := t.TempDir()
	opts := extractOptions{
		postingPath: writeFile(t, dir, "posting.txt", "Requirements:\n- Juggling\n- Unicycling\n"),
		role:        "software_engineer",
		level:       "senior",
	}

	var stdout bytes.Buffer
	err := executeExtractJob(opts, defaultConfig(), zap.NewNop(), &stdout, &bytes.Buffer{})
	require.NoError(t, err)

	var req types.JobRequirement
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &req))
	assert.Contains(t, req.RequiredKeywords, "system design")
	assert.Contains(t, req.RequiredKeywords, "kubernetes")
}

func TestExecuteExtractJob_NoFallbackWithoutLevel(t *testing.T) {
	dir := t.TempDir()
	opts := extractOptions{
		postingPath: writeFile(t, dir, "posting.txt", "Requirements:\n- Juggling\n"),
		role:        "software_engineer",
	}

	var stdout bytes.Buffer
	err := executeExtractJob(opts, defaultConfig(), zap.NewNop(), &stdout, &bytes.Buffer{})
	require.NoError(t, err)

	var req types.JobRequirement
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &req))
	assert.Empty(t, req.RequiredKeywords)
}

func TestExecuteExtractJob_InvalidLevel(t *testing.T) {
	dir := t.TempDir()
	opts := extractOptions{
		postingPath: writeFile(t, dir, "posting.txt", "Requirements:\n- Go\n"),
		level:       "wizard",
	}

	err := executeExtractJob(opts, defaultConfig(), zap.NewNop(), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "level")
}

func TestExecuteExtractJob_EmptyPosting(t *testing.T) {
	dir := t.TempDir()
	opts := extractOptions{
		postingPath: writeFile(t, dir, "posting.html", "   "),
	}

	err := executeExtractJob(opts, defaultConfig(), zap.NewNop(), &bytes.Buffer{}, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse posting")
}
