package game

// RenderStars queues the backdrop glow points.
func RenderStars(r *Renderer, g *GameState) {
	for i := range g.Stars {
		s := &g.Stars[i]
		lum := s.Luminance(g.RealTime)
		r.PushGlow(s.Pos, 0.15, Palette.White, lum)
	}
}

// RenderArena draws the boundary walls as wireframe and a sparse floor grid.
func RenderArena(r *Renderer) {
	half := ArenaSize / 2
	wallH := 2.0

	corners := [4]Vec3{
		{-half, 0, -half},
		{half, 0, -half},
		{half, 0, half},
		{-half, 0, half},
	}
	for i := 0; i < 4; i++ {
		a, b := corners[i], corners[(i+1)%4]
		r.PushLine(a, b, Palette.Boundary, 1)
		top := Vec3{0, wallH, 0}
		r.PushLine(a.Add(top), b.Add(top), Palette.Boundary, 0.6)
		r.PushLine(a, a.Add(top), Palette.Boundary, 0.8)
	}

	// Floor grid every 10 units.
	grid := Palette.Boundary.Mul(90)
	for x := -half; x <= half; x += 10 {
		r.PushLine(Vec3{x, 0, -half}, Vec3{x, 0, half}, grid, 0.35)
		r.PushLine(Vec3{-half, 0, x}, Vec3{half, 0, x}, grid, 0.35)
	}
}

// RenderRider draws the trail as lit cubes joined by a glowing line, plus
// the shield bubble when one is up.
func RenderRider(r *Renderer, g *GameState) {
	rd := g.Rider
	if rd == nil {
		return
	}
	for i := range rd.Segments {
		seg := &rd.Segments[i]
		size := SegmentSize
		if i == 0 {
			size *= 1.25
		}
		col := seg.Col
		if !rd.Alive {
			col = Palette.DarkGray
		}
		r.DrawCube(seg.Pos, Vec3{size, size, size}, seg.Angle, col)
		if i > 0 {
			prev := &rd.Segments[i-1]
			r.PushLine(prev.Pos, seg.Pos, col, seg.Glow*0.8)
		}
	}
	if rd.Alive && rd.ShieldTimer > 0 {
		head := rd.Head()
		pulse := 0.4 + 0.2*clampF(rd.ShieldTimer/ShieldDuration, 0, 1)
		r.PushGlow(head.Pos, SegmentSize*3, Palette.SkyBlue, pulse)
	}
	if rd.Alive && rd.BoostTimer > 0 {
		r.PushGlow(rd.Head().Pos, SegmentSize*2, Palette.Orange, 0.5)
	}
}

// RenderPowerups draws the live collectibles: a spinning cube on a stem
// with a soft glow in the pickup's colour.
func RenderPowerups(r *Renderer, g *GameState) {
	for i := range g.Powerups.Slots {
		p := &g.Powerups.Slots[i]
		if !p.Active {
			continue
		}
		pos := p.Pos
		pos[1] += p.BobHeight(g.GameTime)
		col := powerupColor(p.Kind)

		// Fade out over the last few seconds of life.
		fade := clampF(p.Lifetime/3, 0, 1)

		r.DrawCube(pos, Vec3{PowerupSize, PowerupSize, PowerupSize}, p.Spin, col)
		r.DrawCylinder(Vec3{p.Pos.X(), pos.Y() / 2, p.Pos.Z()}, 0.05, pos.Y(), 0, Palette.DarkGray)
		r.PushGlow(pos, PowerupSize*2, col, 0.4*fade)
	}
}

// RenderParticles queues every live particle as a fading glow sprite.
func RenderParticles(r *Renderer, g *GameState) {
	for i := range g.Particles.P {
		p := &g.Particles.P[i]
		if p.Life <= 0 {
			continue
		}
		r.PushGlow(p.Pos, p.Size*2, p.Col, p.Alpha())
	}
}
