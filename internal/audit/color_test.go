package audit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRelativeLuminanceEndpoints(t *testing.T) {
	assert.Equal(t, 0.0, RelativeLuminance(0, 0, 0))
	assert.InDelta(t, 1.0, RelativeLuminance(255, 255, 255), 1e-9)
}

func TestRelativeLuminanceMonotonic(t *testing.T) {
	for _, base := range [][3]uint8{{0, 0, 0}, {120, 40, 200}, {255, 0, 128}} {
		for ch := 0; ch < 3; ch++ {
			prev := -1.0
			for v := 0; v <= 255; v++ {
				c := base
				c[ch] = uint8(v)
				lum := RelativeLuminance(c[0], c[1], c[2])
				require.GreaterOrEqual(t, lum, prev, "channel %d value %d", ch, v)
				prev = lum
			}
		}
	}
}

func TestContrastRatioSymmetryAndIdentity(t *testing.T) {
	lums := []float64{0, 0.01, 0.18, 0.5, 0.93, 1}
	for _, a := range lums {
		assert.Equal(t, 1.0, ContrastRatio(a, a))
		for _, b := range lums {
			assert.Equal(t, ContrastRatio(a, b), ContrastRatio(b, a))
			assert.GreaterOrEqual(t, ContrastRatio(a, b), 1.0)
		}
	}
	assert.InDelta(t, 21.0, ContrastRatio(White.Luminance(), RGB{}.Luminance()), 1e-9)
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in    string
		want  Color
		valid bool
	}{
		{"rgb(10, 20, 30)", Color{RGB{10, 20, 30}, 1}, true},
		{"rgba(10, 20, 30, 0)", Color{RGB{10, 20, 30}, 0}, true},
		{"rgb(10 20 30 / 50%)", Color{RGB{10, 20, 30}, 0.5}, true},
		{"rgb(100%, 0%, 0%)", Color{RGB{255, 0, 0}, 1}, true},
		{"#fff", Color{RGB{255, 255, 255}, 1}, true},
		{"#112233", Color{RGB{0x11, 0x22, 0x33}, 1}, true},
		{"#11223300", Color{RGB{0x11, 0x22, 0x33}, 0}, true},
		{"  Navy ", Color{RGB{0, 0, 128}, 1}, true},
		{"transparent", Color{Alpha: 0}, true},
		{"", Color{}, false},
		{"#12", Color{}, false},
		{"rgb(1, 2)", Color{}, false},
		{"hsl(0, 0%, 0%)", Color{}, false},
		{"papayawhip", Color{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseColor(tt.in)
			assert.Equal(t, tt.valid, ok)
			if tt.valid {
				assert.Equal(t, tt.want.RGB, got.RGB)
				assert.InDelta(t, tt.want.Alpha, got.Alpha, 1e-9)
			}
		})
	}
}
