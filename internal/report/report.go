// Package report renders audit results for files and terminals.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"heuristicheck/internal/domain"
)

type Report struct {
	URL         string                  `json:"url" yaml:"url"`
	GeneratedAt time.Time               `json:"generatedAt" yaml:"generatedAt"`
	Score       int                     `json:"score" yaml:"score"`
	Summary     map[domain.Severity]int `json:"summary" yaml:"summary"`
	Findings    []domain.Finding        `json:"findings" yaml:"findings"`
	Marked      []domain.MarkedElement  `json:"marked" yaml:"marked"`
}

func New(url string, findings []domain.Finding, marked []domain.MarkedElement, at time.Time) Report {
	if marked == nil {
		marked = []domain.MarkedElement{}
	}
	return Report{
		URL:         url,
		GeneratedAt: at,
		Score:       domain.Score(findings),
		Summary:     domain.Summary(findings),
		Findings:    findings,
		Marked:      marked,
	}
}

// Encode marshals r as json or yaml.
func Encode(r Report, format string) ([]byte, error) {
	var data []byte
	var err error

	switch format {
	case "", "json":
		data, err = json.MarshalIndent(r, "", "  ")
	case "yaml":
		data, err = yaml.Marshal(r)
	default:
		return nil, fmt.Errorf("unsupported report format: %s", format)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report: %w", err)
	}
	return data, nil
}

func Write(w io.Writer, r Report, format string) error {
	data, err := Encode(r, format)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
