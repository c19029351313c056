package game

import "math"

// LineSegment is one body piece of the rider trail.
type LineSegment struct {
	Pos   Vec3
	Angle float64 // heading in radians, XZ plane
	Col   RGB
	Glow  float64
}

// LineRider is the player entity: a head segment towing a trail. The head
// can only ever turn left; loops accumulate on TotalRotation.
type LineRider struct {
	Segments []LineSegment

	Speed         float64
	TurnRate      float64
	Energy        float64
	TotalRotation float64 // accumulated left turn since the last completed loop
	LoopCount     int
	Score         float64

	BoostTimer  float64
	ShieldTimer float64
	Alive       bool
}

// NewLineRider builds the starting trail: InitialSegments pieces laid out
// behind the origin along -Z, heading straight down +Z.
func NewLineRider() *LineRider {
	r := &LineRider{
		Speed:    RiderSpeed,
		TurnRate: TurnSpeed,
		Energy:   MaxEnergy,
		Alive:    true,
	}
	r.Segments = make([]LineSegment, 0, MaxSegments)
	for i := 0; i < InitialSegments; i++ {
		t := float64(i) / float64(InitialSegments)
		r.Segments = append(r.Segments, LineSegment{
			Pos:  Vec3{0, SegmentHeight, -float64(i) * SegmentSpacing},
			Col:  segmentColor(t),
			Glow: 1.0 - t*0.5,
		})
	}
	return r
}

func (r *LineRider) Head() *LineSegment {
	return &r.Segments[0]
}

// Advance runs one simulation tick. The order of the phases matters: turning
// feeds loop detection, movement precedes follow and bounce, and collisions
// are checked against the settled positions.
func (r *LineRider) Advance(turnIntent, dt, diffMult float64, particles *ParticleSystem, events *EventBus, rng *Rand) {
	if !r.Alive {
		return
	}

	head := r.Head()

	// Turn. Left only; intent in [0,1].
	if turnIntent > 0 {
		turned := r.TurnRate * turnIntent * diffMult * dt
		head.Angle += turned
		r.TotalRotation += turned
	}

	// Loop detection.
	if r.TotalRotation >= 2*math.Pi {
		r.TotalRotation -= 2 * math.Pi
		r.LoopCount++
		r.Score += float64(LoopScoreBonus * r.LoopCount)
		particles.SpawnBurst(head.Pos, Palette.Gold, 20, rng)
		events.Emit(Event{Type: EventLoopCompleted, Pos: head.Pos, Data: r.LoopCount})
	}

	// Boost.
	speed := r.Speed * diffMult
	if r.BoostTimer > 0 {
		r.BoostTimer -= dt
		speed *= BoostMultiplier
	}

	// Move the head along its heading in the XZ plane.
	head.Pos[0] += math.Sin(head.Angle) * speed * dt
	head.Pos[2] += math.Cos(head.Angle) * speed * dt

	// Trail follow: each segment chases the point one spacing behind its
	// predecessor once it has fallen far enough behind.
	for i := 1; i < len(r.Segments); i++ {
		prev := &r.Segments[i-1]
		seg := &r.Segments[i]
		diff := prev.Pos.Sub(seg.Pos)
		dist := diff.Len()
		if dist > SegmentSpacing {
			dir := diff.Mul(1.0 / dist)
			target := prev.Pos.Sub(dir.Mul(SegmentSpacing))
			seg.Pos = lerpV(seg.Pos, target, FollowBlend)
			seg.Angle = math.Atan2(dir.X(), dir.Z())
		}
	}

	// Arena boundary: reflect and damp the offending coordinate.
	half := ArenaSize / 2
	bounced := false
	for axis := 0; axis <= 2; axis += 2 {
		if head.Pos[axis] > half || head.Pos[axis] < -half {
			head.Pos[axis] = -head.Pos[axis] * BounceDamping
			bounced = true
		}
	}
	if bounced {
		particles.SpawnBurst(head.Pos, Palette.SkyBlue, 10, rng)
		events.Emit(Event{Type: EventBoundaryHit, Pos: head.Pos})
	}

	// Energy drain and death.
	r.Energy -= EnergyDrainRate * diffMult * dt
	if r.Energy <= 0 {
		r.Energy = 0
		r.die(particles, events, rng)
		return
	}

	// Self collision. The first few trail segments are exempt so the neck
	// can't clip the head on tight turns.
	if r.ShieldTimer <= 0 {
		for i := CollisionExemptSegments; i < len(r.Segments); i++ {
			if head.Pos.Sub(r.Segments[i].Pos).Len() < SegmentSize {
				r.die(particles, events, rng)
				return
			}
		}
	} else {
		r.ShieldTimer -= dt
	}

	// Survival score.
	r.Score += PassiveScoreRate * dt
}

func (r *LineRider) die(particles *ParticleSystem, events *EventBus, rng *Rand) {
	r.Alive = false
	for i := range r.Segments {
		particles.SpawnBurst(r.Segments[i].Pos, Palette.Red, 5, rng)
	}
	events.Emit(Event{Type: EventRiderDied, Pos: r.Head().Pos})
}

// Grow appends one segment behind the current tail, offset along the tail's
// own heading so the new piece trails naturally.
func (r *LineRider) Grow() {
	if len(r.Segments) >= MaxSegments {
		return
	}
	tail := r.Segments[len(r.Segments)-1]
	seg := tail
	seg.Pos[0] -= math.Sin(tail.Angle) * SegmentSpacing
	seg.Pos[2] -= math.Cos(tail.Angle) * SegmentSpacing
	t := float64(len(r.Segments)) / float64(len(r.Segments)+1)
	seg.Col = segmentColor(t)
	seg.Glow = 1.0 - t*0.5
	r.Segments = append(r.Segments, seg)
}

// Shrink drops up to n tail segments but never below the starting length.
func (r *LineRider) Shrink(n int) {
	keep := len(r.Segments) - n
	if keep < InitialSegments {
		keep = InitialSegments
	}
	r.Segments = r.Segments[:keep]
}

// Refill adds energy, clamped to the maximum.
func (r *LineRider) Refill(amount float64) {
	r.Energy = clampF(r.Energy+amount, 0, MaxEnergy)
}
