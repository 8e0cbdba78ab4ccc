package report

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"heuristicheck/internal/domain"
)

var at = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sample() Report {
	findings := []domain.Finding{
		{ID: domain.RuleVisibility, Name: "Visibility of System Status", Severity: domain.SeverityMedium, Status: domain.StatusPass, Issues: []domain.IssueRecord{}},
		{ID: domain.RuleConsistency, Name: "Consistency and Standards", Severity: domain.SeverityHigh, Status: domain.StatusFail,
			Issues: []domain.IssueRecord{{Description: "Found 2 broken links.", Remedy: "Fix href attributes."}}},
	}
	marked := []domain.MarkedElement{{Handle: 7, Descriptor: "<a.cta>", Severity: domain.SeverityHigh, Label: "Broken Link"}}
	return New("https://example.com/", findings, marked, at)
}

func TestNewComputesScore(t *testing.T) {
	r := sample()
	assert.Equal(t, 92, r.Score)
	assert.Equal(t, 1, r.Summary[domain.SeverityHigh])
	assert.Empty(t, New("x", nil, nil, at).Marked)
}

func TestEncodeFormats(t *testing.T) {
	r := sample()

	raw, err := Encode(r, "json")
	require.NoError(t, err)
	var asJSON map[string]any
	require.NoError(t, json.Unmarshal(raw, &asJSON))
	assert.Equal(t, float64(92), asJSON["score"])

	raw, err = Encode(r, "yaml")
	require.NoError(t, err)
	var asYAML map[string]any
	require.NoError(t, yaml.Unmarshal(raw, &asYAML))
	assert.Equal(t, "https://example.com/", asYAML["url"])
	assert.Equal(t, 92, asYAML["score"])

	_, err = Encode(r, "csv")
	assert.ErrorContains(t, err, "unsupported report format")
}

func TestPrintSummary(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	PrintSummary(&buf, sample())
	out := buf.String()

	assert.Contains(t, out, "Score: 92/100")
	assert.Contains(t, out, "PASS   1. Visibility of System Status")
	assert.Contains(t, out, "FAIL   4. Consistency and Standards [High]")
	assert.Contains(t, out, "- Found 2 broken links. Fix: Fix href attributes.")
	assert.Contains(t, out, "Broken Link <a.cta>")
	assert.Contains(t, out, "High: 1  Medium: 0  Low: 0")
}
