package game

// Particle is a short-lived cosmetic spark spawned by gameplay events.
type Particle struct {
	Pos  Vec3
	Vel  Vec3
	Col  RGB
	Life float64 // seconds remaining; <= 0 means the slot is free
	Size float64
}

// ParticleSystem is a fixed-capacity slot pool. Spawning scans for a free
// slot and silently drops the particle when the pool is full.
type ParticleSystem struct {
	P [MaxParticles]Particle
}

func NewParticleSystem() *ParticleSystem {
	return &ParticleSystem{}
}

func (ps *ParticleSystem) Clear() {
	for i := range ps.P {
		ps.P[i].Life = 0
	}
}

// SpawnBurst emits count particles at pos with random upward-biased velocities.
func (ps *ParticleSystem) SpawnBurst(pos Vec3, col RGB, count int, rng *Rand) {
	for i := 0; i < count; i++ {
		slot := -1
		for j := range ps.P {
			if ps.P[j].Life <= 0 {
				slot = j
				break
			}
		}
		if slot < 0 {
			return
		}
		ps.P[slot] = Particle{
			Pos: pos,
			Vel: Vec3{
				rng.RangeF(-5, 5),
				rng.RangeF(0, 10),
				rng.RangeF(-5, 5),
			},
			Col:  col,
			Life: 1.0 + rng.RangeF(0, 1),
			Size: 0.1 + rng.RangeF(0, 0.3),
		}
	}
}

// Update integrates velocity and gravity and ages every live particle.
func (ps *ParticleSystem) Update(dt float64) {
	for i := range ps.P {
		p := &ps.P[i]
		if p.Life <= 0 {
			continue
		}
		p.Life -= dt
		p.Pos = p.Pos.Add(p.Vel.Mul(dt))
		p.Vel[1] -= ParticleGravity * dt
	}
}

// AliveCount returns the number of live particles (used by tests and HUD debug).
func (ps *ParticleSystem) AliveCount() int {
	n := 0
	for i := range ps.P {
		if ps.P[i].Life > 0 {
			n++
		}
	}
	return n
}

// Alpha returns the fade factor for a particle, clamped to [0,1].
func (p *Particle) Alpha() float64 {
	return clampF(p.Life, 0, 1)
}
