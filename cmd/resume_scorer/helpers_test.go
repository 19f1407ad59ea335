package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// getBinaryPath returns the path to the resume_scorer binary for testing
func getBinaryPath(t *testing.T) string {
	binaryName := "resume_scorer"
	if testing.Short() {
		t.Skip("Skipping CLI tests in short mode")
	}

	binaryPath := filepath.Join("..", "..", "bin", binaryName)
	if _, err := os.Stat(binaryPath); os.IsNotExist(err) {
		t.Skipf("Binary not found at %s, build it first with 'make build'", binaryPath)
	}

	return binaryPath
}

// writeFile writes content into dir and returns its path
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const sampleResume = `{
  "text": "Alex Rivera. Senior software engineer. Experience building Go services on Kubernetes and AWS with PostgreSQL.",
  "bullets": [
    "Led migration of 40 services to Kubernetes, cutting deploy time by 60%",
    "Built a Go payment API handling 2M requests per day for 300k users",
    "Designed PostgreSQL schema changes that reduced query latency by 35%",
    "Mentored 5 engineers and introduced code review standards across the team"
  ],
  "sections": {
    "experience": {"content": "...", "word_count": 320},
    "education": {"content": "...", "word_count": 40},
    "skills": {"content": "Go, Kubernetes, AWS, PostgreSQL, Docker", "word_count": 30},
    "summary": {"content": "...", "word_count": 45}
  },
  "page_count": 2,
  "employment": [
    {"title": "Senior Software Engineer", "company": "Acme", "start_date": "2021-03", "end_date": "present"},
    {"title": "Software Engineer", "company": "Globex", "start_date": "2017-06", "end_date": "2021-02"}
  ],
  "contact": {
    "email": "alex@example.com",
    "phone": "+1 555 123 4567",
    "linkedin": "linkedin.com/in/alexrivera",
    "location": "Austin, TX"
  }
}`

const sampleJob = `{
  "required_keywords": ["Go", "Kubernetes", "PostgreSQL", "Terraform"],
  "preferred_keywords": ["AWS", "Rust"]
}`
