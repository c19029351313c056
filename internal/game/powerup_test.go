package game

import (
	"math"
	"testing"
)

func TestSpawnStopsWhenPoolIsFull(t *testing.T) {
	pw := NewPowerupSystem()
	rng := NewRand(7)

	for i := 0; i < PowerupSlots; i++ {
		if !pw.Spawn(rng) {
			t.Fatalf("spawn %d failed with free slots", i)
		}
	}
	if pw.Spawn(rng) {
		t.Fatal("spawn succeeded with a full pool")
	}
	if pw.ActiveCount() != PowerupSlots {
		t.Fatalf("active count: want %d, got %d", PowerupSlots, pw.ActiveCount())
	}
}

func TestSpawnPlacementOnAnnulus(t *testing.T) {
	pw := NewPowerupSystem()
	rng := NewRand(7)

	for i := 0; i < PowerupSlots; i++ {
		pw.Spawn(rng)
	}
	maxRadius := PowerupMinRadius + ArenaSize*0.4
	for i := range pw.Slots {
		p := &pw.Slots[i]
		if p.Pos.Y() != 1.0 {
			t.Fatalf("slot %d: hover height %v", i, p.Pos.Y())
		}
		radius := math.Hypot(p.Pos.X(), p.Pos.Z())
		if radius < PowerupMinRadius-1e-9 || radius > maxRadius+1e-9 {
			t.Fatalf("slot %d: radius %v outside [%v, %v]", i, radius, PowerupMinRadius, maxRadius)
		}
		if p.Lifetime != PowerupLifetime {
			t.Fatalf("slot %d: lifetime %v", i, p.Lifetime)
		}
	}
}

func TestSpawnBiasTowardEnergy(t *testing.T) {
	rng := NewRand(99)

	energy := 0
	total := 500
	for i := 0; i < total; i++ {
		pw := NewPowerupSystem()
		pw.Spawn(rng)
		if pw.Slots[0].Kind == PowerupEnergy {
			energy++
		}
	}
	// 40% forced plus 1/6 of the remaining uniform roll, about 50%.
	if energy < total*40/100 {
		t.Fatalf("energy bias too weak: %d of %d", energy, total)
	}
}

func TestPowerupExpiresSilently(t *testing.T) {
	pw := NewPowerupSystem()
	rng := NewRand(7)
	pw.Spawn(rng)

	farAway := Vec3{1000, 0, 1000}
	collected := pw.Update(PowerupLifetime+1, 0, farAway, true)
	if len(collected) != 0 {
		t.Fatalf("expiry reported as collection: %v", collected)
	}
	if pw.ActiveCount() != 0 {
		t.Fatal("expired powerup still active")
	}
}

func TestCollectionWithinRadius(t *testing.T) {
	pw := NewPowerupSystem()
	rng := NewRand(7)
	pw.Spawn(rng)
	pos := pw.Slots[0].Pos

	// Just outside the combined radius: nothing happens.
	outside := pos.Add(Vec3{SegmentSize + PowerupSize + 0.01, 0, 0})
	if got := pw.Update(0.001, 0, outside, true); len(got) != 0 {
		t.Fatalf("collected from outside radius: %v", got)
	}

	// Inside: the slot is reported and freed.
	inside := pos.Add(Vec3{SegmentSize, 0, 0})
	got := pw.Update(0.001, 0, inside, true)
	if len(got) != 1 || got[0] != 0 {
		t.Fatalf("expected slot 0 collected, got %v", got)
	}
	if pw.Slots[0].Active {
		t.Fatal("collected slot still active")
	}
}

func TestNoCollectionWhenDead(t *testing.T) {
	pw := NewPowerupSystem()
	rng := NewRand(7)
	pw.Spawn(rng)
	pos := pw.Slots[0].Pos

	if got := pw.Update(0.001, 0, pos, false); len(got) != 0 {
		t.Fatalf("dead rider collected: %v", got)
	}
}
