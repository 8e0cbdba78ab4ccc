package navigator

import (
	"fmt"
	"strings"

	"heuristicheck/internal/advisor"
	"heuristicheck/internal/dom"
	"heuristicheck/internal/domain"
)

type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme accepts "dark" or "light" in any case; empty means dark.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case "", ThemeDark:
		return ThemeDark, nil
	case ThemeLight:
		return ThemeLight, nil
	}
	return "", fmt.Errorf("unknown theme %q", s)
}

type State string

const (
	StateIdle     State = "idle"
	StateBrowsing State = "browsing"
)

// Summary describes the current element in the navigator panel.
type Summary struct {
	Severity   string `json:"severity"`
	Label      string `json:"label"`
	Descriptor string `json:"descriptor"`
}

// SpotlightPadding is the gap between the spotlight and the element it isolates.
const SpotlightPadding = 4.0

type Spotlight struct {
	Visible bool     `json:"visible"`
	Rect    dom.Rect `json:"rect"`
}

// Tier is the color band of a heatmap indicator.
type Tier string

const (
	TierHigh   Tier = "high"
	TierMedium Tier = "medium"
	TierLow    Tier = "low"
)

func tierOf(s domain.Severity) Tier {
	switch s {
	case domain.SeverityHigh:
		return TierHigh
	case domain.SeverityMedium:
		return TierMedium
	}
	return TierLow
}

// Indicator is one heatmap marker, centered on its element.
type Indicator struct {
	Index    int     `json:"index"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Tier     Tier    `json:"tier"`
	Tooltip  string  `json:"tooltip"`
	Vertical string  `json:"vertical"` // above|below
	Align    string  `json:"align"`    // center|left|right
}

type AdviceStatus string

const (
	AdviceIdle    AdviceStatus = "idle"
	AdviceLoading AdviceStatus = "loading"
	AdviceReady   AdviceStatus = "ready"
	AdviceError   AdviceStatus = "error"
)

type AdvicePanel struct {
	Open   bool            `json:"open"`
	Status AdviceStatus    `json:"status"`
	Text   string          `json:"text,omitempty"`
	Advice *advisor.Advice `json:"advice,omitempty"`
}

// Overlay is a point in time copy of everything the navigator draws.
type Overlay struct {
	Theme        Theme       `json:"theme"`
	State        State       `json:"state"`
	Total        int         `json:"total"`
	CurrentIndex int         `json:"currentIndex"`
	Counter      int         `json:"counter"`
	FocusMode    bool        `json:"focusMode"`
	HeatmapMode  bool        `json:"heatmapMode"`
	Summary      *Summary    `json:"summary,omitempty"`
	AllClear     bool        `json:"allClear"`
	AllClearText string      `json:"allClearText,omitempty"`
	Pulse        dom.Handle  `json:"pulse"`
	Spotlight    Spotlight   `json:"spotlight"`
	Indicators   []Indicator `json:"indicators"`
	Advice       AdvicePanel `json:"advice"`
	Closed       bool        `json:"closed"`
}
