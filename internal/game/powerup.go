package game

import "math"

// PowerupKind enumerates collectible effects.
type PowerupKind int

const (
	PowerupEnergy PowerupKind = iota
	PowerupSpeedBoost
	PowerupSlowTime
	PowerupShield
	PowerupShrink
	PowerupBonusPoints
	powerupKindCount
)

func (k PowerupKind) String() string {
	switch k {
	case PowerupEnergy:
		return "ENERGY"
	case PowerupSpeedBoost:
		return "BOOST"
	case PowerupSlowTime:
		return "SLOW TIME"
	case PowerupShield:
		return "SHIELD"
	case PowerupShrink:
		return "SHRINK"
	case PowerupBonusPoints:
		return "BONUS"
	}
	return "?"
}

func powerupColor(k PowerupKind) RGB {
	switch k {
	case PowerupEnergy:
		return Palette.Yellow
	case PowerupSpeedBoost:
		return Palette.Orange
	case PowerupSlowTime:
		return Palette.Purple
	case PowerupShield:
		return Palette.SkyBlue
	case PowerupShrink:
		return Palette.Green
	case PowerupBonusPoints:
		return Palette.Gold
	}
	return Palette.White
}

// Powerup is a single collectible slot.
type Powerup struct {
	Pos       Vec3
	Kind      PowerupKind
	Spin      float64
	BobOffset float64
	Lifetime  float64
	Active    bool
}

// PowerupSystem is a fixed pool of collectible slots.
type PowerupSystem struct {
	Slots [PowerupSlots]Powerup
}

func NewPowerupSystem() *PowerupSystem {
	return &PowerupSystem{}
}

func (pw *PowerupSystem) Clear() {
	for i := range pw.Slots {
		pw.Slots[i].Active = false
	}
}

// ActiveCount returns the number of live collectibles.
func (pw *PowerupSystem) ActiveCount() int {
	n := 0
	for i := range pw.Slots {
		if pw.Slots[i].Active {
			n++
		}
	}
	return n
}

// Spawn places a new collectible in a free slot at a random position on an
// annulus around the origin. The type roll is biased toward energy so a run
// is never starved. Returns false when every slot is occupied.
func (pw *PowerupSystem) Spawn(rng *Rand) bool {
	slot := -1
	for i := range pw.Slots {
		if !pw.Slots[i].Active {
			slot = i
			break
		}
	}
	if slot < 0 {
		return false
	}

	kind := PowerupKind(rng.Intn(int(powerupKindCount)))
	if rng.Intn(100) < EnergyBiasPercent {
		kind = PowerupEnergy
	}

	angle := rng.Angle()
	radius := PowerupMinRadius + rng.Float64()*ArenaSize*0.4
	pw.Slots[slot] = Powerup{
		Pos:       Vec3{math.Cos(angle) * radius, 1.0, math.Sin(angle) * radius},
		Kind:      kind,
		Spin:      rng.Angle(),
		BobOffset: rng.Angle(),
		Lifetime:  PowerupLifetime,
		Active:    true,
	}
	return true
}

// Update ages and animates every slot and returns the indices of slots the
// rider head collected this tick. Collected slots are already deactivated;
// the caller applies the effects.
func (pw *PowerupSystem) Update(dt, gameTime float64, head Vec3, riderAlive bool) []int {
	var collected []int
	for i := range pw.Slots {
		p := &pw.Slots[i]
		if !p.Active {
			continue
		}
		p.Lifetime -= dt
		if p.Lifetime <= 0 {
			p.Active = false
			continue
		}
		p.Spin += PowerupSpinRate * dt

		if riderAlive && head.Sub(p.Pos).Len() < SegmentSize+PowerupSize {
			p.Active = false
			collected = append(collected, i)
		}
	}
	return collected
}

// BobHeight returns the vertical hover offset for a slot at the given time.
func (p *Powerup) BobHeight(gameTime float64) float64 {
	return math.Sin(gameTime*PowerupBobRate+p.BobOffset) * PowerupBobAmp
}
