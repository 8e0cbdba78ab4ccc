package advisor

import (
	"regexp"
	"strings"
)

const (
	ErrorMarker = "❌ **Error:**"
	FixMarker   = "✅ **Fix:**"
)

// Advice is a provider reply split into its parts. Raw always holds the full reply.
type Advice struct {
	Problem  string `json:"problem,omitempty"`
	Fix      string `json:"fix,omitempty"`
	Language string `json:"language,omitempty"`
	Code     string `json:"code,omitempty"`
	Raw      string `json:"raw"`
}

var (
	problemRe = regexp.MustCompile(`❌ \*\*Error:\*\*(.*)`)
	fixRe     = regexp.MustCompile(`✅ \*\*Fix:\*\*(.*)`)
	codeRe    = regexp.MustCompile("(?s)```([A-Za-z0-9_+-]*)\\n?(.*?)```")
)

// ParseAdvice extracts the problem, fix and first code block. Missing parts stay empty.
func ParseAdvice(raw string) Advice {
	a := Advice{Raw: raw}
	if m := problemRe.FindStringSubmatch(raw); m != nil {
		a.Problem = strings.TrimSpace(m[1])
	}
	if m := fixRe.FindStringSubmatch(raw); m != nil {
		a.Fix = strings.TrimSpace(m[1])
	}
	if m := codeRe.FindStringSubmatch(raw); m != nil {
		a.Language = m[1]
		a.Code = strings.TrimSpace(m[2])
	}
	return a
}
