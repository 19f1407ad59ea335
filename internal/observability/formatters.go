// Package observability provides logging setup and formatted output
// utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-resume-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
	// barWidth is the width of a category score bar
	barWidth = 20
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		runes := []rune(line)
		if len(runes) > boxWidth-4 {
			line = string(runes[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoringResult outputs the composite score, the category breakdown
// and the feedback of a scoring run.
func (p *Printer) PrintScoringResult(result *types.ScoringResult) {
	if result == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Score:    %.1f / 100 (%s)\n", result.NormalizedScore, result.Rating))
	sb.WriteString(fmt.Sprintf("Points:   %.2f of %d available\n", result.RawScore, result.MaxAvailable))
	sb.WriteString(fmt.Sprintf("Level:    %s\n", result.Level))
	if result.Role != "" {
		sb.WriteString(fmt.Sprintf("Role:     %s\n", result.Role))
	}
	sb.WriteString(fmt.Sprintf("Keywords: %s", result.KeywordSource))
	p.printBox("ATS SCORE", sb.String())

	p.PrintCategories(result.Categories)
	p.PrintFeedback(result.Feedback)
	p.printSkipped(result.Parameters)
}

// PrintCategories outputs one bar per category.
func (p *Printer) PrintCategories(categories []types.CategoryAggregate) {
	if len(categories) == 0 {
		return
	}

	var sb strings.Builder
	for i, c := range categories {
		filled := 0
		if c.Available > 0 {
			filled = int(c.Score / float64(c.Available) * barWidth)
		}
		filled = min(max(filled, 0), barWidth)
		sb.WriteString(fmt.Sprintf("%-22s %s%s %5.1f/%d",
			c.Category,
			strings.Repeat("█", filled),
			strings.Repeat("░", barWidth-filled),
			c.Score, c.Available))
		if i < len(categories)-1 {
			sb.WriteString("\n")
		}
	}
	p.printBox("CATEGORIES", sb.String())
}

// PrintFeedback outputs the top strengths and weaknesses.
func (p *Printer) PrintFeedback(fb types.Feedback) {
	if len(fb.Strengths) == 0 && len(fb.Weaknesses) == 0 {
		return
	}

	var sb strings.Builder
	if len(fb.Weaknesses) > 0 {
		sb.WriteString("Improve:\n")
		writeFeedbackItems(&sb, fb.Weaknesses)
	}
	if len(fb.Strengths) > 0 {
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString("Strengths:\n")
		writeFeedbackItems(&sb, fb.Strengths)
	}
	p.printBox("FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

func writeFeedbackItems(sb *strings.Builder, items []types.FeedbackItem) {
	count := min(len(items), maxItemsToShow)
	for i := 0; i < count; i++ {
		item := items[i]
		sb.WriteString(fmt.Sprintf("  • %s (%.0f%%)\n", item.Name, item.Percentage))
		if item.Hint != "" {
			sb.WriteString(fmt.Sprintf("    %s\n", item.Hint))
		}
	}
	if len(items) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
	}
}

// printSkipped lists parameters that did not contribute to the score.
func (p *Printer) printSkipped(params []types.ParameterResult) {
	var sb strings.Builder
	for _, r := range params {
		if r.Status == types.StatusSuccess {
			continue
		}
		sb.WriteString(fmt.Sprintf("%s [%s] %s\n", r.ID, r.Status, r.Message))
	}
	if sb.Len() == 0 {
		return
	}
	p.printBox("NOT SCORED", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintJobRequirement outputs keyword lists extracted from a job posting.
func (p *Printer) PrintJobRequirement(req *types.JobRequirement) {
	if req == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Required (%d):\n", len(req.RequiredKeywords)))
	writeKeywords(&sb, req.RequiredKeywords)
	sb.WriteString(fmt.Sprintf("\nPreferred (%d):\n", len(req.PreferredKeywords)))
	writeKeywords(&sb, req.PreferredKeywords)
	p.printBox("EXTRACTED KEYWORDS", strings.TrimSuffix(sb.String(), "\n"))
}

func writeKeywords(sb *strings.Builder, keywords []string) {
	count := min(len(keywords), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", keywords[i]))
	}
	if len(keywords) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(keywords)-maxItemsToShow))
	}
}
