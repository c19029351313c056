package game

import "testing"

func TestBurstRespectsPoolCapacity(t *testing.T) {
	ps := NewParticleSystem()
	rng := NewRand(3)

	ps.SpawnBurst(Vec3{}, Palette.Gold, MaxParticles*2, rng)
	if got := ps.AliveCount(); got != MaxParticles {
		t.Fatalf("alive: want %d, got %d", MaxParticles, got)
	}
}

func TestParticlesFallAndExpire(t *testing.T) {
	ps := NewParticleSystem()
	rng := NewRand(3)
	ps.SpawnBurst(Vec3{0, 10, 0}, Palette.Red, 10, rng)

	vyBefore := ps.P[0].Vel.Y()
	ps.Update(0.1)
	if ps.P[0].Vel.Y() >= vyBefore {
		t.Fatalf("gravity not applied: %v -> %v", vyBefore, ps.P[0].Vel.Y())
	}

	for i := 0; i < 100; i++ {
		ps.Update(0.1)
	}
	if ps.AliveCount() != 0 {
		t.Fatalf("particles outlived their lifetime: %d", ps.AliveCount())
	}
}

func TestSlotReuseAfterExpiry(t *testing.T) {
	ps := NewParticleSystem()
	rng := NewRand(3)

	ps.SpawnBurst(Vec3{}, Palette.Red, MaxParticles, rng)
	for i := 0; i < 100; i++ {
		ps.Update(0.1)
	}
	ps.SpawnBurst(Vec3{}, Palette.Green, 5, rng)
	if got := ps.AliveCount(); got != 5 {
		t.Fatalf("reuse failed: want 5 alive, got %d", got)
	}
}
