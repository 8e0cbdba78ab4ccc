package domain

import (
	"encoding/json"
	"time"
)

// Core domain models shared by the audit engine, the navigator and the adapters.
// Persistence and transport shapes live next to their adapters; keep these decoupled.

// RuleID identifies one of the fixed heuristic rules (1..10).
type RuleID int

const (
	RuleVisibility RuleID = iota + 1
	RuleRealWorld
	RuleUserControl
	RuleConsistency
	RuleErrorPrevention
	RuleRecognition
	RuleFlexibility
	RuleAesthetic
	RuleErrorRecovery
	RuleHelp
)

// AllRules returns every rule id in evaluation order.
func AllRules() []RuleID {
	out := make([]RuleID, 0, 10)
	for id := RuleVisibility; id <= RuleHelp; id++ {
		out = append(out, id)
	}
	return out
}

func (id RuleID) IsValid() bool { return id >= RuleVisibility && id <= RuleHelp }

type Status string

const (
	StatusPass Status = "PASS"
	StatusFail Status = "FAIL"
)

// IssueRecord is one failed check inside a Finding.
type IssueRecord struct {
	Description string `json:"description" yaml:"description"`
	Remedy      string `json:"remedy" yaml:"remedy"`
}

// Finding is the result of evaluating one rule. Findings are not mutated after the engine returns them.
type Finding struct {
	ID       RuleID        `json:"id" yaml:"id"`
	Name     string        `json:"name" yaml:"name"`
	Severity Severity      `json:"severity" yaml:"severity"`
	Status   Status        `json:"status" yaml:"status"`
	Issues   []IssueRecord `json:"issues" yaml:"issues"`
}

// Settings enables or disables rules. A rule without an entry is enabled.
type Settings map[RuleID]bool

func (s Settings) Enabled(id RuleID) bool {
	enabled, ok := s[id]
	return !ok || enabled
}

// AuditMeta is the structured metadata recorded on an element during the audit,
// e.g. the colors and ratio behind a low-contrast verdict.
type AuditMeta struct {
	FgColor string  `json:"fgColor"`
	BgColor string  `json:"bgColor"`
	Ratio   float64 `json:"currentRatio"`
}

// DecodeMeta parses persisted metadata. Anything malformed is reported as absent.
func DecodeMeta(raw []byte) (AuditMeta, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return AuditMeta{}, false
	}
	var m AuditMeta
	if err := json.Unmarshal(raw, &m); err != nil {
		return AuditMeta{}, false
	}
	if m.FgColor == "" && m.BgColor == "" && m.Ratio == 0 {
		return AuditMeta{}, false
	}
	return m, true
}

// MarkedElement is the persisted view of an element annotated by the audit.
type MarkedElement struct {
	Handle     int        `json:"handle"`
	Descriptor string     `json:"descriptor"`
	Severity   Severity   `json:"severity"`
	Label      string     `json:"label"`
	Meta       *AuditMeta `json:"meta,omitempty"`
}

// Audit run states.
const (
	AuditQueued    = "queued"
	AuditRunning   = "running"
	AuditCompleted = "completed"
	AuditFailed    = "failed"
)

type Audit struct {
	ID         string          `json:"id"`
	DomainRef  string          `json:"domainId"`
	URL        string          `json:"url"`
	Status     string          `json:"status"`
	Progress   float64         `json:"progress"`
	Settings   Settings        `json:"settings,omitempty"`
	Score      *int            `json:"score,omitempty"`
	Findings   []Finding       `json:"findings,omitempty"`
	Marked     []MarkedElement `json:"marked,omitempty"`
	Error      string          `json:"error,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
	FinishedAt *time.Time      `json:"finishedAt,omitempty"`
}

// Profile is the latest completed audit of a registrable domain.
type Profile struct {
	Domain    string           `json:"domain"`
	AuditID   string           `json:"auditId"`
	URL       string           `json:"url"`
	Score     int              `json:"score"`
	Summary   map[Severity]int `json:"summary"`
	AuditedAt time.Time        `json:"auditedAt"`
}

// Score computes the page score: 100 minus 8 per High, 3 per Medium and 1 per Low
// issue record of every failed finding, floored at zero.
func Score(findings []Finding) int {
	deduction := 0
	for _, f := range findings {
		if f.Status != StatusFail {
			continue
		}
		switch f.Severity {
		case SeverityHigh:
			deduction += 8 * len(f.Issues)
		case SeverityMedium:
			deduction += 3 * len(f.Issues)
		default:
			deduction += len(f.Issues)
		}
	}
	if deduction > 100 {
		return 0
	}
	return 100 - deduction
}

// Summary counts failed issue records per severity.
func Summary(findings []Finding) map[Severity]int {
	out := map[Severity]int{SeverityHigh: 0, SeverityMedium: 0, SeverityLow: 0}
	for _, f := range findings {
		if f.Status == StatusFail {
			out[f.Severity] += len(f.Issues)
		}
	}
	return out
}
