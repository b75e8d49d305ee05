// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/resume-optimizer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
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
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintMatchResult outputs the score breakdown, top gaps, and top strengths.
func (p *Printer) PrintMatchResult(result *types.MatchResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Overall:     %.0f%%\n", result.OverallScore*100))
	sb.WriteString("\n")
	sb.WriteString(fmt.Sprintf("Keywords:    %.0f%%\n", result.Breakdown.KeywordScore*100))
	sb.WriteString(fmt.Sprintf("Skills:      %.0f%%\n", result.Breakdown.SkillsScore*100))
	sb.WriteString(fmt.Sprintf("Attributes:  %.0f%%\n", result.Breakdown.AttributesScore*100))
	sb.WriteString(fmt.Sprintf("Experience:  %.0f%%\n", result.Breakdown.ExperienceScore*100))
	sb.WriteString(fmt.Sprintf("Level:       %.0f%%\n", result.Breakdown.LevelScore*100))

	if len(result.Gaps) > 0 {
		sb.WriteString("\nGaps:\n")
		count := min(len(result.Gaps), maxItemsToShow)
		for i := 0; i < count; i++ {
			gap := result.Gaps[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s, importance %.2f)\n", gap.Element.Text, gap.Category, gap.Importance))
		}
		if len(result.Gaps) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Gaps)-maxItemsToShow))
		}
	}

	if len(result.Strengths) > 0 {
		sb.WriteString("\nStrengths:\n")
		count := min(len(result.Strengths), maxItemsToShow)
		for i := 0; i < count; i++ {
			strength := result.Strengths[i]
			sb.WriteString(fmt.Sprintf("  • %s (%s match)\n", strength.Element.Text, strength.MatchType))
		}
		if len(result.Strengths) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.Strengths)-maxItemsToShow))
		}
	}

	p.printBox("Match Result", strings.TrimRight(sb.String(), "\n"))
}

// PrintRecommendations outputs the summary and each recommendation list.
func (p *Printer) PrintRecommendations(recs *types.Recommendations) {
	if recs == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(recs.Summary)
	sb.WriteString("\n")

	writeList := func(name string, items []types.Recommendation) {
		if len(items) == 0 {
			return
		}
		sb.WriteString(fmt.Sprintf("\n%s:\n", name))
		count := min(len(items), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • [%s] %s\n", items[i].Type, items[i].Suggestion))
		}
		if len(items) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(items)-maxItemsToShow))
		}
	}

	writeList("Priority", recs.Priority)
	writeList("Optional", recs.Optional)
	writeList("Rewording", recs.Rewording)

	p.printBox(fmt.Sprintf("Recommendations (round %d)", recs.Metadata.IterationRound),
		strings.TrimRight(sb.String(), "\n"))
}

// PrintOptimizationResult outputs the run metrics and per-round score trail.
func (p *Printer) PrintOptimizationResult(result *types.OptimizationResult) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Terminated:  %s\n", result.TerminationReason))
	sb.WriteString(fmt.Sprintf("Rounds:      %d\n", result.Metrics.IterationCount))
	sb.WriteString(fmt.Sprintf("Initial:     %.0f%%\n", result.Metrics.InitialScore*100))
	sb.WriteString(fmt.Sprintf("Final:       %.0f%%\n", result.Metrics.FinalScore*100))
	sb.WriteString(fmt.Sprintf("Improvement: %+.0f pts\n", result.Metrics.Improvement*100))

	if len(result.Iterations) > 0 {
		sb.WriteString("\nScore trail:\n")
		for i, snap := range result.Iterations {
			sb.WriteString(fmt.Sprintf("  round %d: %.0f%% -> %.0f%%\n", i+1, snap.ScoreBefore*100, snap.ScoreAfter*100))
		}
	}

	p.printBox("Optimization Result", strings.TrimRight(sb.String(), "\n"))
}
