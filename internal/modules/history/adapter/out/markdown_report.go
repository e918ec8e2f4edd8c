package out

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"clearpoints/internal/modules/history/domain"
	historyout "clearpoints/internal/modules/history/port/out"
	"clearpoints/internal/platform/markdown"
)

const reportSection = "clearpoints-history"

// MarkdownReportWriter writes the history into a markdown note. An existing
// note keeps its own text; only the frontmatter keys and the generated
// section are replaced.
type MarkdownReportWriter struct{}

func NewMarkdownReportWriter() historyout.ReportWriter {
	return MarkdownReportWriter{}
}

func (MarkdownReportWriter) Write(_ context.Context, path string, report domain.Report) error {
	doc := markdown.Document{Meta: map[string]any{}, Body: "# clearpoints history\n"}
	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if doc, err = markdown.Parse(string(existing)); err != nil {
			return fmt.Errorf("read existing report: %w", err)
		}
	case !errors.Is(err, os.ErrNotExist):
		return fmt.Errorf("read existing report: %w", err)
	}

	doc.Meta["schema_version"] = domain.SchemaVersion
	doc.Meta["generated_at"] = report.GeneratedAt.Format(time.RFC3339)
	doc.Meta["games"] = report.Summary.Games
	doc.Meta["wins"] = report.Summary.Wins
	doc.Meta["losses"] = report.Summary.Losses
	doc.SetSection(reportSection, renderReport(report))

	rendered, err := doc.Render()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func renderReport(report domain.Report) string {
	var sb strings.Builder
	sb.WriteString("## Best times\n\n")
	if len(report.Summary.Best) == 0 {
		sb.WriteString("No wins yet.\n")
	}
	for _, b := range report.Summary.Best {
		fmt.Fprintf(&sb, "- %d points: %.1fs\n", b.TargetCount, b.Elapsed.Seconds())
	}
	sb.WriteString("\n## Recent games\n\n")
	if len(report.Records) == 0 {
		sb.WriteString("No games recorded.\n")
		return sb.String()
	}
	sb.WriteString("| ended | points | outcome | cleared | time |\n")
	sb.WriteString("|---|---|---|---|---|\n")
	for _, r := range report.Records {
		fmt.Fprintf(&sb, "| %s | %d | %s | %d | %.1fs |\n",
			r.EndedAt.Format("2006-01-02 15:04:05"), r.TargetCount, r.Outcome, r.Cleared, r.Elapsed().Seconds())
	}
	return sb.String()
}
