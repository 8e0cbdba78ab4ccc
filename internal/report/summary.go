package report

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"heuristicheck/internal/domain"
)

var (
	pass   = color.New(color.FgGreen, color.Bold).SprintfFunc()
	info   = color.New(color.FgCyan, color.Bold).SprintfFunc()
	high   = color.New(color.FgRed, color.Bold).SprintfFunc()
	medium = color.New(color.FgYellow, color.Bold).SprintfFunc()
	low    = color.New(color.FgBlue, color.Bold).SprintfFunc()
)

// ColorForSeverity returns the color function for a severity level.
func ColorForSeverity(s domain.Severity) func(string, ...interface{}) string {
	switch s {
	case domain.SeverityHigh:
		return high
	case domain.SeverityMedium:
		return medium
	case domain.SeverityLow:
		return low
	default:
		return info
	}
}

func scoreColor(score int) func(string, ...interface{}) string {
	switch {
	case score >= 90:
		return pass
	case score >= 70:
		return medium
	}
	return high
}

// PrintSummary writes a colored, human readable summary of r.
func PrintSummary(w io.Writer, r Report) {
	fmt.Fprintf(w, "%s %s\n", info("Audit of"), r.URL)
	fmt.Fprintf(w, "Score: %s\n\n", scoreColor(r.Score)("%d/100", r.Score))
	for _, f := range r.Findings {
		if f.Status == domain.StatusPass {
			fmt.Fprintf(w, "  %s  %2d. %s\n", pass("PASS"), f.ID, f.Name)
			continue
		}
		sev := ColorForSeverity(f.Severity)
		fmt.Fprintf(w, "  %s  %2d. %s [%s]\n", high("FAIL"), f.ID, f.Name, sev("%s", f.Severity))
		for _, is := range f.Issues {
			fmt.Fprintf(w, "        - %s Fix: %s\n", is.Description, is.Remedy)
		}
	}
	if len(r.Marked) > 0 {
		fmt.Fprintf(w, "\n%s\n", info("Marked elements"))
		for _, m := range r.Marked {
			fmt.Fprintf(w, "  %s %s %s\n", ColorForSeverity(m.Severity)("%-6s", m.Severity), m.Label, m.Descriptor)
		}
	}
	fmt.Fprintf(w, "\nHigh: %d  Medium: %d  Low: %d\n",
		r.Summary[domain.SeverityHigh], r.Summary[domain.SeverityMedium], r.Summary[domain.SeverityLow])
}
