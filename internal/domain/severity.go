package domain

import (
	"fmt"
	"strings"
)

// Severity is the impact tier of a rule and of the elements it marks.
type Severity string

const (
	SeverityLow    Severity = "Low"
	SeverityMedium Severity = "Medium"
	SeverityHigh   Severity = "High"
)

var severityWeights = map[Severity]int{
	SeverityLow:    1,
	SeverityMedium: 2,
	SeverityHigh:   3,
}

func (s Severity) IsValid() bool {
	_, ok := severityWeights[s]
	return ok
}

// Weight orders severities; invalid values weigh 0.
func (s Severity) Weight() int { return severityWeights[s] }

func (s Severity) String() string { return string(s) }

// ParseSeverity accepts the canonical spelling case-insensitively.
func ParseSeverity(s string) (Severity, error) {
	for sev := range severityWeights {
		if strings.EqualFold(string(sev), s) {
			return sev, nil
		}
	}
	return "", fmt.Errorf("invalid severity: %s", s)
}
