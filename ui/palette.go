package ui

type rgb struct {
	R, G, B uint8
}

var (
	colorBackground = rgb{0x0b, 0x12, 0x20}
	colorGridLine   = rgb{0x1b, 0x22, 0x30}
	colorFood       = rgb{0xf8, 0x71, 0x71}
	colorHead       = rgb{0x34, 0xd3, 0x99}
	colorBody       = rgb{0x22, 0xc5, 0x5e}
	colorText       = rgb{0xf8, 0xfa, 0xfc}
	colorMuted      = rgb{0x94, 0xa3, 0xb8}
	colorActive     = rgb{0x38, 0xbd, 0xf8}
)

// dim darkens c as if covered by a black layer of the given opacity.
func (c rgb) dim(opacity float64) rgb {
	k := 1 - opacity
	return rgb{
		R: uint8(float64(c.R) * k),
		G: uint8(float64(c.G) * k),
		B: uint8(float64(c.B) * k),
	}
}

const overlayOpacity = 0.4

const helpLine = "Arrows move  Space pause  Enter restart  1-5 speed  Q quit"
