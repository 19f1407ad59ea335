// Package export writes scoring results to spreadsheet reports.
package export

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonathan/ats-resume-scorer/internal/types"
	"github.com/xuri/excelize/v2"
)

// Sheet names in report order
const (
	SummarySheet    = "Summary"
	CategoriesSheet = "Categories"
	ParametersSheet = "Parameters"
	FeedbackSheet   = "Feedback"
)

const headerColor = "4472C4"

// rating fills, best to worst
var ratingColors = map[types.Rating]string{
	types.RatingExcellent:        "C6EFCE",
	types.RatingGood:             "E2EFDA",
	types.RatingFair:             "FFEB9C",
	types.RatingNeedsImprovement: "FFC7CE",
	types.RatingPoor:             "FF9999",
}

// Meta carries report context that is not part of the scoring result.
type Meta struct {
	RunID       string
	GeneratedAt time.Time
	ResumePath  string
	JobPath     string
}

// WriteReport writes an xlsx report of result to path, appending the
// .xlsx extension when it is missing. The written path is returned.
func WriteReport(result *types.ScoringResult, meta Meta, path string) (string, error) {
	if result == nil {
		return "", fmt.Errorf("no scoring result to export")
	}

	if !strings.HasSuffix(strings.ToLower(path), ".xlsx") {
		path += ".xlsx"
	}
	path = filepath.Clean(path)

	f := excelize.NewFile()
	defer f.Close() //nolint:errcheck // closing an in-memory workbook

	if err := f.SetSheetName("Sheet1", SummarySheet); err != nil {
		return "", fmt.Errorf("failed to rename default sheet: %w", err)
	}
	for _, name := range []string{CategoriesSheet, ParametersSheet, FeedbackSheet} {
		if _, err := f.NewSheet(name); err != nil {
			return "", fmt.Errorf("failed to create %s sheet: %w", name, err)
		}
	}

	header, err := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerColor}, Pattern: 1},
		Alignment: &excelize.Alignment{Horizontal: "center", Vertical: "center"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to create header style: %w", err)
	}

	steps := []struct {
		sheet string
		write func(*excelize.File, int) error
	}{
		{SummarySheet, func(f *excelize.File, h int) error { return writeSummary(f, h, result, meta) }},
		{CategoriesSheet, func(f *excelize.File, h int) error { return writeCategories(f, h, result.Categories) }},
		{ParametersSheet, func(f *excelize.File, h int) error { return writeParameters(f, h, result.Parameters) }},
		{FeedbackSheet, func(f *excelize.File, h int) error { return writeFeedback(f, h, result.Feedback) }},
	}
	for _, step := range steps {
		if err := step.write(f, header); err != nil {
			return "", fmt.Errorf("failed to create %s sheet: %w", strings.ToLower(step.sheet), err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save report: %w", err)
	}
	return path, nil
}

func writeSummary(f *excelize.File, header int, result *types.ScoringResult, meta Meta) error {
	if err := f.SetColWidth(SummarySheet, "A", "A", 22); err != nil {
		return err
	}
	if err := f.SetColWidth(SummarySheet, "B", "B", 40); err != nil {
		return err
	}

	generated := ""
	if !meta.GeneratedAt.IsZero() {
		generated = meta.GeneratedAt.UTC().Format(time.RFC3339)
	}

	rows := [][]any{
		{"ATS Score Report", nil},
		{"Normalized Score", result.NormalizedScore},
		{"Rating", string(result.Rating)},
		{"Raw Score", result.RawScore},
		{"Max Available", result.MaxAvailable},
		{"Level", string(result.Level)},
		{"Role", result.Role},
		{"Keyword Source", string(result.KeywordSource)},
		{"Run ID", meta.RunID},
		{"Generated", generated},
		{"Resume", meta.ResumePath},
		{"Job", meta.JobPath},
	}
	if err := writeRows(f, SummarySheet, 1, rows); err != nil {
		return err
	}
	if err := f.MergeCell(SummarySheet, "A1", "B1"); err != nil {
		return err
	}
	if err := f.SetCellStyle(SummarySheet, "A1", "B1", header); err != nil {
		return err
	}

	if color, ok := ratingColors[result.Rating]; ok {
		style, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
			Fill: excelize.Fill{Type: "pattern", Color: []string{color}, Pattern: 1},
		})
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(SummarySheet, "B2", "B3", style); err != nil {
			return err
		}
	}
	return nil
}

func writeCategories(f *excelize.File, header int, categories []types.CategoryAggregate) error {
	rows := make([][]any, 0, len(categories)+1)
	rows = append(rows, []any{"Category", "Score", "Max", "Available", "Percent"})
	for _, c := range categories {
		pct := 0.0
		if c.Available > 0 {
			pct = c.Score / float64(c.Available) * 100
		}
		rows = append(rows, []any{string(c.Category), c.Score, c.Max, c.Available, math.Round(pct*10) / 10})
	}
	return writeTable(f, CategoriesSheet, header, rows, []float64{26, 10, 8, 10, 10})
}

func writeParameters(f *excelize.File, header int, params []types.ParameterResult) error {
	rows := make([][]any, 0, len(params)+1)
	rows = append(rows, []any{"ID", "Name", "Category", "Score", "Max", "Status", "Message"})
	for _, p := range params {
		rows = append(rows, []any{
			string(p.ID), p.Name, string(p.Category), p.Score, p.MaxScore, string(p.Status), p.Message,
		})
	}
	return writeTable(f, ParametersSheet, header, rows, []float64{22, 26, 22, 8, 6, 10, 60})
}

func writeFeedback(f *excelize.File, header int, fb types.Feedback) error {
	rows := make([][]any, 0, len(fb.Strengths)+len(fb.Weaknesses)+1)
	rows = append(rows, []any{"Kind", "Parameter", "Percent", "Message", "Hint"})
	for _, item := range fb.Weaknesses {
		rows = append(rows, []any{"weakness", item.Name, item.Percentage, item.Message, item.Hint})
	}
	for _, item := range fb.Strengths {
		rows = append(rows, []any{"strength", item.Name, item.Percentage, item.Message, item.Hint})
	}
	return writeTable(f, FeedbackSheet, header, rows, []float64{10, 26, 10, 60, 50})
}

// writeTable writes rows starting at A1, styles the header row and
// freezes it.
func writeTable(f *excelize.File, sheet string, header int, rows [][]any, widths []float64) error {
	for i, w := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, w); err != nil {
			return err
		}
	}
	if err := writeRows(f, sheet, 1, rows); err != nil {
		return err
	}

	last, err := excelize.CoordinatesToCellName(len(rows[0]), 1)
	if err != nil {
		return err
	}
	if err := f.SetCellStyle(sheet, "A1", last, header); err != nil {
		return err
	}
	return f.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	})
}

func writeRows(f *excelize.File, sheet string, firstRow int, rows [][]any) error {
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, firstRow+i)
		if err != nil {
			return err
		}
		values := row
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return nil
}
