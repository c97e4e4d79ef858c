package render

import "image/color"

// Placeholder and overlay colours.
var (
	ColorBackground = color.NRGBA{0xab, 0xcd, 0xef, 0xff}
	ColorPlayer     = color.NRGBA{0x00, 0x00, 0xff, 0xff}
	ColorEnemy      = color.NRGBA{0xff, 0x00, 0x00, 0xff}
	ColorObstacle   = color.NRGBA{0x8b, 0x45, 0x13, 0xff}
	ColorBullet     = color.NRGBA{0xff, 0xff, 0x00, 0xff}
	ColorHazard     = color.NRGBA{0xff, 0xa5, 0x00, 0xff}
	ColorText       = color.NRGBA{0xff, 0xff, 0xff, 0xff}
	ColorVeil       = color.NRGBA{0x00, 0x00, 0x00, 0xbf}

	ColorHealthTrack  = color.NRGBA{0x55, 0x55, 0x55, 0xff}
	ColorHealthBorder = color.NRGBA{0x33, 0x33, 0x33, 0xff}
	ColorHealthHigh   = color.NRGBA{0x00, 0xff, 0x00, 0xff}
	ColorHealthMid    = color.NRGBA{0xff, 0xff, 0x00, 0xff}
	ColorHealthLow    = color.NRGBA{0xff, 0x00, 0x00, 0xff}
)

// HealthColor picks the fill colour for a health ratio.
func HealthColor(ratio float64) color.NRGBA {
	switch {
	case ratio > 0.5:
		return ColorHealthHigh
	case ratio > 0.2:
		return ColorHealthMid
	default:
		return ColorHealthLow
	}
}

// sparkColor fades from yellow to red as the particle ages.
func sparkColor(life float64) color.NRGBA {
	return color.NRGBA{
		R: 0xff,
		G: uint8(0xd0 * life),
		B: 0x20,
		A: uint8(0xff * (0.3 + 0.7*life)),
	}
}

// withAlpha returns c with its alpha scaled by a.
func withAlpha(c color.NRGBA, a float64) color.NRGBA {
	c.A = uint8(float64(c.A) * a)
	return c
}
