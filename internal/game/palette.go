package game

// RGB is an 8-bit per channel colour.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Mul(k uint8) RGB {
	return RGB{
		R: uint8((uint16(c.R) * uint16(k)) / 255),
		G: uint8((uint16(c.G) * uint16(k)) / 255),
		B: uint8((uint16(c.B) * uint16(k)) / 255),
	}
}

var Palette = struct {
	Background RGB
	Boundary   RGB
	SkyBlue    RGB
	Yellow     RGB
	Purple     RGB
	Green      RGB
	Orange     RGB
	Gold       RGB
	Red        RGB
	White      RGB
	LightGray  RGB
	DarkGray   RGB
	Lime       RGB
}{
	Background: RGB{R: 10, G: 10, B: 20},
	Boundary:   RGB{R: 100, G: 100, B: 200},
	SkyBlue:    RGB{R: 102, G: 191, B: 255},
	Yellow:     RGB{R: 253, G: 249, B: 0},
	Purple:     RGB{R: 200, G: 122, B: 255},
	Green:      RGB{R: 0, G: 228, B: 48},
	Orange:     RGB{R: 255, G: 161, B: 0},
	Gold:       RGB{R: 255, G: 203, B: 0},
	Red:        RGB{R: 230, G: 41, B: 55},
	White:      RGB{R: 255, G: 255, B: 255},
	LightGray:  RGB{R: 200, G: 200, B: 200},
	DarkGray:   RGB{R: 80, G: 80, B: 80},
	Lime:       RGB{R: 0, G: 158, B: 47},
}

// segmentColor returns the rider body gradient at position t in [0,1]
// (0 = head, bright cyan; 1 = tail, deep blue).
func segmentColor(t float64) RGB {
	head := RGB{R: 255, G: 255, B: 255}
	tail := RGB{R: 100, G: 200, B: 255}
	return lerpRGB(head, tail, clampF(t, 0, 1))
}
