package postgres

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"heuristicheck/internal/domain"
)

func TestDecodeMarkedTreatsBadMetaAsAbsent(t *testing.T) {
	raw := []byte(`[
        {"handle": 4, "descriptor": "h1", "severity": "Medium", "label": "Hard to Read",
         "meta": {"fgColor": "rgb(204, 204, 204)", "bgColor": "rgb(255, 255, 255)", "currentRatio": 1.61}},
        {"handle": 9, "descriptor": "a.nav-link", "severity": "Medium", "label": "Hard to Read", "meta": "garbage"},
        {"handle": 12, "descriptor": "img", "severity": "Medium", "label": "Accessibility Risk"}
    ]`)
	els, err := decodeMarked(raw)
	require.NoError(t, err)
	require.Len(t, els, 3)

	require.NotNil(t, els[0].Meta)
	assert.Equal(t, 1.61, els[0].Meta.Ratio)
	assert.Nil(t, els[1].Meta)
	assert.Nil(t, els[2].Meta)
	assert.Equal(t, "Accessibility Risk", els[2].Label)
}

func TestMarkedElementsSurviveEncoding(t *testing.T) {
	in := []domain.MarkedElement{{
		Handle: 3, Descriptor: "button.buy", Severity: domain.SeverityMedium, Label: "Too Small",
		Meta: &domain.AuditMeta{FgColor: "rgb(1, 2, 3)", BgColor: "rgb(4, 5, 6)", Ratio: 1.02},
	}}
	raw, err := json.Marshal(in)
	require.NoError(t, err)
	out, err := decodeMarked(raw)
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestDecodeMarkedEmpty(t *testing.T) {
	els, err := decodeMarked(nil)
	require.NoError(t, err)
	assert.Nil(t, els)
}
