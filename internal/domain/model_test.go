package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSettingsDefaultToEnabled(t *testing.T) {
	var s Settings
	for _, id := range AllRules() {
		assert.True(t, s.Enabled(id))
	}
	s = Settings{RuleHelp: false, RuleAesthetic: true}
	assert.False(t, s.Enabled(RuleHelp))
	assert.True(t, s.Enabled(RuleAesthetic))
	assert.Len(t, AllRules(), 10)
	assert.False(t, RuleID(11).IsValid())
}

func TestSettingsJSONKeys(t *testing.T) {
	var s Settings
	require.NoError(t, json.Unmarshal([]byte(`{"6": false, "2": true}`), &s))
	assert.False(t, s.Enabled(RuleRecognition))
	assert.True(t, s.Enabled(RuleRealWorld))
}

func TestScore(t *testing.T) {
	findings := []Finding{
		{ID: RuleConsistency, Severity: SeverityHigh, Status: StatusFail, Issues: make([]IssueRecord, 1)},
		{ID: RuleFlexibility, Severity: SeverityMedium, Status: StatusFail, Issues: make([]IssueRecord, 2)},
		{ID: RuleAesthetic, Severity: SeverityLow, Status: StatusFail, Issues: make([]IssueRecord, 1)},
		{ID: RuleRealWorld, Severity: SeverityMedium, Status: StatusPass},
	}
	assert.Equal(t, 100-8-6-1, Score(findings))
	assert.Equal(t, map[Severity]int{SeverityHigh: 1, SeverityMedium: 2, SeverityLow: 1}, Summary(findings))

	var many []Finding
	for i := 0; i < 20; i++ {
		many = append(many, Finding{Severity: SeverityHigh, Status: StatusFail, Issues: make([]IssueRecord, 1)})
	}
	assert.Equal(t, 0, Score(many))
	assert.Equal(t, 100, Score(nil))
}

func TestDecodeMetaFailsClosed(t *testing.T) {
	m, ok := DecodeMeta([]byte(`{"fgColor":"rgb(1, 1, 1)","bgColor":"rgb(2, 2, 2)","currentRatio":1.01}`))
	require.True(t, ok)
	assert.Equal(t, 1.01, m.Ratio)

	for _, raw := range []string{"", "null", "{", `"text"`, `{}`, `[1,2]`} {
		_, ok := DecodeMeta([]byte(raw))
		assert.False(t, ok, raw)
	}
}

func TestSeverity(t *testing.T) {
	s, err := ParseSeverity("high")
	require.NoError(t, err)
	assert.Equal(t, SeverityHigh, s)
	assert.Greater(t, SeverityHigh.Weight(), SeverityMedium.Weight())
	assert.Greater(t, SeverityMedium.Weight(), SeverityLow.Weight())
	assert.False(t, Severity("INFO").IsValid())
	assert.Zero(t, Severity("INFO").Weight())

	_, err = ParseSeverity("critical")
	assert.Error(t, err)
}
