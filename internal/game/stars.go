package game

import "math"

// Star is a fixed background point; Twinkle phases the brightness wave.
type Star struct {
	Pos        Vec3
	Brightness float64
	Twinkle    float64
}

// InitStars scatters the backdrop starfield around the arena.
func InitStars(rng *Rand) []Star {
	stars := make([]Star, StarCount)
	for i := range stars {
		stars[i] = Star{
			Pos: Vec3{
				rng.RangeF(-ArenaSize, ArenaSize),
				rng.RangeF(-10, 10),
				rng.RangeF(-ArenaSize, ArenaSize),
			},
			Brightness: rng.RangeF(0.3, 1.0),
			Twinkle:    rng.Float64(),
		}
	}
	return stars
}

// Luminance returns the star's momentary brightness at the given time.
func (s *Star) Luminance(gameTime float64) float64 {
	wave := math.Sin(gameTime*3+s.Twinkle*10)*0.3 + 0.7
	return s.Brightness * wave
}
