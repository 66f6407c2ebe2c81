package game

import (
	"github.com/lucasb-eyer/go-colorful"

	"github.com/diegok/pachinko/internal/geom"
)

func rgb255(r, g, b uint8) colorful.Color {
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Palette
var (
	ColorRed       = rgb255(255, 0, 0)
	ColorGreen     = rgb255(0, 255, 0)
	ColorBlue      = rgb255(0, 0, 255)
	ColorWhite     = rgb255(255, 255, 255)
	ColorGold      = rgb255(255, 215, 0)
	ColorAliceBlue = rgb255(240, 248, 255)
	ColorLimeGreen = rgb255(50, 205, 50)
	ColorSapphire  = rgb255(15, 82, 186)
	ColorOrange    = rgb255(255, 165, 0)
	ColorCyan      = rgb255(0, 255, 255)
	ColorDarkGray  = rgb255(100, 100, 100)
	ColorLightBlue = rgb255(173, 216, 230)
	ColorSteel     = rgb255(102, 153, 204)
)

// BumperColor blends red to green by where elasticity sits in [lo, hi]
func BumperColor(elasticity, lo, hi float64) colorful.Color {
	t := geom.RangeMapClamped(elasticity, lo, hi, 0, 1)
	return ColorRed.BlendRgb(ColorGreen, t)
}

// BallColor blends blue to white by fraction
func BallColor(fraction float64) colorful.Color {
	return ColorBlue.BlendRgb(ColorWhite, geom.ClampZeroToOne(fraction))
}
