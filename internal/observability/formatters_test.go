package observability

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"github.com/jonathan/ats-resume-scorer/internal/types"
	"github.com/stretchr/testify/assert"
)

func sampleResult() *types.ScoringResult {
	return &types.ScoringResult{
		RawScore:        61.5,
		MaxAvailable:    80,
		NormalizedScore: 76.88,
		Rating:          types.RatingGood,
		Level:           types.LevelSenior,
		Role:            "software_engineer",
		KeywordSource:   types.KeywordSourceJob,
		Categories: []types.CategoryAggregate{
			{Category: types.CategoryKeywordMatching, Score: 20, Max: 25, Available: 25},
			{Category: types.CategoryReadability, Score: 0, Max: 5, Available: 0},
		},
		Parameters: []types.ParameterResult{
			{ID: "required_keywords", Status: types.StatusSuccess},
			{ID: "page_count", Status: types.StatusSkipped, Message: "missing input: page_count"},
		},
		Feedback: types.Feedback{
			Strengths: []types.FeedbackItem{
				{Name: "Required keywords", Percentage: 80},
			},
			Weaknesses: []types.FeedbackItem{
				{Name: "Quantification", Percentage: 25, Hint: "1 of 4 bullets carry a number"},
			},
		},
	}
}

func TestPrintScoringResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoringResult(sampleResult())
	output := buf.String()

	assert.Contains(t, output, "ATS SCORE")
	assert.Contains(t, output, "76.9 / 100 (good)")
	assert.Contains(t, output, "software_engineer")
	assert.Contains(t, output, "CATEGORIES")
	assert.Contains(t, output, "keyword_matching")
	assert.Contains(t, output, "FEEDBACK")
	assert.Contains(t, output, "Quantification (25%)")
	assert.Contains(t, output, "1 of 4 bullets carry a number")
	assert.Contains(t, output, "NOT SCORED")
	assert.Contains(t, output, "page_count [skipped]")
	assert.NotContains(t, output, "required_keywords [success]")
}

func TestPrintScoringResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoringResult(nil)

	assert.Empty(t, buf.String())
}

func TestPrintCategories_BarIsFilledProportionally(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintCategories([]types.CategoryAggregate{
		{Category: types.CategoryPolish, Score: 5, Max: 10, Available: 10},
	})

	line := ""
	for _, l := range strings.Split(buf.String(), "\n") {
		if strings.Contains(l, "polish") {
			line = l
		}
	}
	assert.Equal(t, barWidth/2, strings.Count(line, "█"))
	assert.Equal(t, barWidth/2, strings.Count(line, "░"))
}

func TestPrintFeedback_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintFeedback(types.Feedback{})

	assert.Empty(t, buf.String())
}

func TestPrintFeedback_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	items := make([]types.FeedbackItem, 0, 8)
	for i := 0; i < 8; i++ {
		items = append(items, types.FeedbackItem{Name: fmt.Sprintf("param-%d", i)})
	}
	p.PrintFeedback(types.Feedback{Weaknesses: items})
	output := buf.String()

	assert.Contains(t, output, "param-4")
	assert.NotContains(t, output, "param-5")
	assert.Contains(t, output, "... and 3 more")
}

func TestPrintJobRequirement(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirement(&types.JobRequirement{
		RequiredKeywords:  []string{"go", "kubernetes"},
		PreferredKeywords: []string{"rust"},
	})
	output := buf.String()

	assert.Contains(t, output, "EXTRACTED KEYWORDS")
	assert.Contains(t, output, "Required (2)")
	assert.Contains(t, output, "kubernetes")
	assert.Contains(t, output, "Preferred (1)")
	assert.Contains(t, output, "rust")
}

func TestPrintJobRequirement_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintJobRequirement(nil)

	assert.Empty(t, buf.String())
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.printBox("TITLE", strings.Repeat("x", 200))

	assert.Contains(t, buf.String(), "...")
	assert.NotContains(t, buf.String(), strings.Repeat("x", boxWidth))
}
