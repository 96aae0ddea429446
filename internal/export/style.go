package export

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/piwi3910/TetraLog/internal/model"
)

// ColorMode selects how units are colored in visual exports.
type ColorMode int

const (
	ColorByDestination ColorMode = iota // Stop palette color
	ColorByWeight                       // Single color, opacity scaled by weight
)

// ParseColorMode accepts "destination" (or "stop") and "weight".
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "destination", "stop":
		return ColorByDestination, nil
	case "weight":
		return ColorByWeight, nil
	default:
		return ColorByDestination, fmt.Errorf("unknown color mode %q", s)
	}
}

// rgb is a color on the 0-255 scale.
type rgb struct {
	R, G, B int
}

var (
	fallbackColor = rgb{R: 149, G: 165, B: 166}
	weightColor   = rgb{R: 52, G: 73, B: 94}
	headerColor   = rgb{R: 15, G: 23, B: 42}
	bayOutline    = rgb{R: 100, G: 116, B: 139}
	alertColor    = rgb{R: 220, G: 38, B: 38}
)

// parseHexColor converts "#rrggbb" to rgb. Malformed input yields a neutral gray.
func parseHexColor(s string) rgb {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallbackColor
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallbackColor
	}
	return rgb{R: int(v >> 16 & 0xff), G: int(v >> 8 & 0xff), B: int(v & 0xff)}
}

// unitStyle returns the fill color and opacity of a unit.
func unitStyle(it *model.Item, mode ColorMode) (rgb, float64) {
	if mode == ColorByWeight {
		return weightColor, model.ItemWeightOpacity(it.Weight)
	}
	return parseHexColor(it.Color), 1.0
}
