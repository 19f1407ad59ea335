package export

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jonathan/ats-resume-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleResult() *types.ScoringResult {
	return &types.ScoringResult{
		RawScore:        42.5,
		MaxAvailable:    50,
		NormalizedScore: 85,
		Rating:          types.RatingExcellent,
		Level:           types.LevelIntermediary,
		Role:            "data_scientist",
		KeywordSource:   types.KeywordSourceRoleDefault,
		Categories: []types.CategoryAggregate{
			{Category: types.CategoryKeywordMatching, Score: 20, Max: 25, Available: 25},
			{Category: types.CategoryPolish, Score: 0, Max: 10, Available: 0},
		},
		Parameters: []types.ParameterResult{
			{ID: "required_keywords", Name: "Required keywords", Category: types.CategoryKeywordMatching, Score: 12.5, MaxScore: 15, Status: types.StatusSuccess},
			{ID: "page_count", Name: "Page count", Category: types.CategoryFormatStructure, MaxScore: 3, Status: types.StatusSkipped, Message: "missing input: page_count"},
		},
		Feedback: types.Feedback{
			Strengths:  []types.FeedbackItem{{Name: "Required keywords", Percentage: 83.3, Message: "Good coverage."}},
			Weaknesses: []types.FeedbackItem{{Name: "Buzzwords", Percentage: 40, Message: "Cut clichés.", Hint: "found: synergy"}},
		},
	}
}

func TestWriteReport_WritesAllSheets(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	meta := Meta{
		RunID:       "run-123",
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		ResumePath:  "resume.json",
	}

	written, err := WriteReport(sampleResult(), meta, path)
	require.NoError(t, err)
	assert.Equal(t, path, written)

	f, err := excelize.OpenFile(written)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{SummarySheet, CategoriesSheet, ParametersSheet, FeedbackSheet}, f.GetSheetList())

	score, err := f.GetCellValue(SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "85", score)

	rating, err := f.GetCellValue(SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "excellent", rating)

	runID, err := f.GetCellValue(SummarySheet, "B9")
	require.NoError(t, err)
	assert.Equal(t, "run-123", runID)

	generated, err := f.GetCellValue(SummarySheet, "B10")
	require.NoError(t, err)
	assert.Equal(t, "2026-03-01T12:00:00Z", generated)
}

func TestWriteReport_TableContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	_, err := WriteReport(sampleResult(), Meta{}, path)
	require.NoError(t, err)

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	categories, err := f.GetRows(CategoriesSheet)
	require.NoError(t, err)
	require.Len(t, categories, 3)
	assert.Equal(t, []string{"Category", "Score", "Max", "Available", "Percent"}, categories[0])
	assert.Equal(t, "keyword_matching", categories[1][0])
	assert.Equal(t, "80", categories[1][4])
	assert.Equal(t, "0", categories[2][4])

	params, err := f.GetRows(ParametersSheet)
	require.NoError(t, err)
	require.Len(t, params, 3)
	assert.Equal(t, "required_keywords", params[1][0])
	assert.Equal(t, "12.5", params[1][3])
	assert.Equal(t, "skipped", params[2][5])
	assert.Equal(t, "missing input: page_count", params[2][6])

	feedback, err := f.GetRows(FeedbackSheet)
	require.NoError(t, err)
	require.Len(t, feedback, 3)
	assert.Equal(t, "weakness", feedback[1][0])
	assert.Equal(t, "found: synergy", feedback[1][4])
	assert.Equal(t, "strength", feedback[2][0])
}

func TestWriteReport_AppendsExtension(t *testing.T) {
	base := filepath.Join(t.TempDir(), "report")

	written, err := WriteReport(sampleResult(), Meta{}, base)
	require.NoError(t, err)
	assert.Equal(t, base+".xlsx", written)
	assert.FileExists(t, written)
}

func TestWriteReport_NilResult(t *testing.T) {
	_, err := WriteReport(nil, Meta{}, filepath.Join(t.TempDir(), "report.xlsx"))
	assert.Error(t, err)
}

func TestWriteReport_MissingDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "report.xlsx")

	_, err := WriteReport(sampleResult(), Meta{}, path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save report")
}
