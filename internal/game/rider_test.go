package game

import (
	"math"
	"testing"
)

func testRig() (*ParticleSystem, *EventBus, *Rand) {
	return NewParticleSystem(), NewEventBus(), NewRand(42)
}

func TestRiderMovesStraightWithoutTurnInput(t *testing.T) {
	r := NewLineRider()
	ps, eb, rng := testRig()

	start := r.Head().Pos
	for i := 0; i < 100; i++ {
		r.Advance(0, 0.01, 1.0, ps, eb, rng)
	}

	head := r.Head()
	if head.Angle != 0 {
		t.Fatalf("heading changed without input: %v", head.Angle)
	}
	if r.TotalRotation != 0 {
		t.Fatalf("rotation accumulated without input: %v", r.TotalRotation)
	}
	if math.Abs(head.Pos.X()-start.X()) > 1e-9 {
		t.Fatalf("drifted on X: %v", head.Pos.X())
	}
	moved := head.Pos.Z() - start.Z()
	if math.Abs(moved-RiderSpeed) > 0.01 {
		t.Fatalf("expected ~%v units of travel after 1s, got %v", RiderSpeed, moved)
	}
}

func TestRiderHeadingNeverDecreases(t *testing.T) {
	r := NewLineRider()
	ps, eb, rng := testRig()

	prev := r.Head().Angle
	for i := 0; i < 200; i++ {
		intent := 0.0
		if i%3 == 0 {
			intent = 1.0
		}
		r.Advance(intent, 0.01, 1.0, ps, eb, rng)
		if r.Head().Angle < prev {
			t.Fatalf("heading decreased at tick %d: %v -> %v", i, prev, r.Head().Angle)
		}
		prev = r.Head().Angle
	}
}

func TestLoopDetection(t *testing.T) {
	r := NewLineRider()
	ps, eb, rng := testRig()

	loops := 0
	eb.Subscribe(EventLoopCompleted, func(e Event) { loops = e.Data })

	scoreBefore := r.Score
	// Full turn takes 2pi/TurnSpeed seconds; run a little past it.
	ticks := int(math.Ceil(2*math.Pi/TurnSpeed/0.01)) + 5
	for i := 0; i < ticks; i++ {
		r.Advance(1, 0.01, 1.0, ps, eb, rng)
	}

	if r.LoopCount != 1 {
		t.Fatalf("expected 1 loop, got %d", r.LoopCount)
	}
	if loops != 1 {
		t.Fatalf("loop event not delivered, got %d", loops)
	}
	// The residual is the accumulated turn minus exactly one revolution,
	// not a reset to zero.
	residual := float64(ticks)*TurnSpeed*0.01 - 2*math.Pi
	if math.Abs(r.TotalRotation-residual) > 1e-9 {
		t.Fatalf("rotation residual: want %v, got %v", residual, r.TotalRotation)
	}
	if r.Score-scoreBefore < LoopScoreBonus {
		t.Fatalf("loop bonus not awarded: %v", r.Score-scoreBefore)
	}
}

func TestEnergyDrainScalesWithDifficulty(t *testing.T) {
	ps, eb, rng := testRig()

	easy := NewLineRider()
	for i := 0; i < 100; i++ {
		easy.Advance(0, 0.01, 1.0, ps, eb, rng)
	}
	wantEasy := MaxEnergy - EnergyDrainRate
	if math.Abs(easy.Energy-wantEasy) > 0.01 {
		t.Fatalf("easy drain: want %v, got %v", wantEasy, easy.Energy)
	}

	hard := NewLineRider()
	for i := 0; i < 100; i++ {
		hard.Advance(0, 0.01, HardcoreMultiplier, ps, eb, rng)
	}
	wantHard := MaxEnergy - EnergyDrainRate*HardcoreMultiplier
	if math.Abs(hard.Energy-wantHard) > 0.01 {
		t.Fatalf("hardcore drain: want %v, got %v", wantHard, hard.Energy)
	}
}

func TestDeathAtZeroEnergy(t *testing.T) {
	r := NewLineRider()
	ps, eb, rng := testRig()

	died := false
	eb.Subscribe(EventRiderDied, func(Event) { died = true })

	r.Energy = 0.001
	r.Advance(0, 0.1, 1.0, ps, eb, rng)

	if r.Alive {
		t.Fatal("rider survived zero energy")
	}
	if r.Energy != 0 {
		t.Fatalf("energy went negative: %v", r.Energy)
	}
	if !died {
		t.Fatal("death event not delivered")
	}
	if ps.AliveCount() == 0 {
		t.Fatal("no death burst spawned")
	}

	// Dead riders stay put.
	pos := r.Head().Pos
	r.Advance(1, 0.1, 1.0, ps, eb, rng)
	if r.Head().Pos != pos {
		t.Fatal("dead rider moved")
	}
}

func TestBoundaryReflect(t *testing.T) {
	r := NewLineRider()
	ps, eb, rng := testRig()

	hit := false
	eb.Subscribe(EventBoundaryHit, func(Event) { hit = true })

	half := ArenaSize / 2
	start := half - 0.05
	r.Head().Pos[2] = start
	r.Advance(0, 0.1, 1.0, ps, eb, rng)

	if !hit {
		t.Fatal("boundary event not delivered")
	}
	// The actual overshot coordinate is negated and damped, so a deeper
	// crossing reflects further in.
	got := r.Head().Pos.Z()
	want := -(start + RiderSpeed*0.1) * BounceDamping
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("reflected Z: want %v, got %v", want, got)
	}
}

func TestSelfCollisionSkipsNeck(t *testing.T) {
	ps, eb, rng := testRig()

	// Tail segments stacked on the head within the exempt window are harmless.
	r := NewLineRider()
	for i := 1; i < CollisionExemptSegments; i++ {
		r.Segments[i].Pos = r.Head().Pos
	}
	r.Advance(0, 0.001, 1.0, ps, eb, rng)
	if !r.Alive {
		t.Fatal("died to exempt neck segment")
	}

	// A segment past the window at the head position is lethal. Its
	// predecessors sit there too so the follow pass leaves it in place.
	r = NewLineRider()
	for i := 1; i <= CollisionExemptSegments; i++ {
		r.Segments[i].Pos = r.Head().Pos
	}
	r.Advance(0, 0.001, 1.0, ps, eb, rng)
	if r.Alive {
		t.Fatal("survived self collision")
	}
}

func TestShieldBlocksSelfCollision(t *testing.T) {
	r := NewLineRider()
	ps, eb, rng := testRig()

	r.ShieldTimer = 1.0
	for i := 1; i <= CollisionExemptSegments; i++ {
		r.Segments[i].Pos = r.Head().Pos
	}
	r.Advance(0, 0.001, 1.0, ps, eb, rng)
	if !r.Alive {
		t.Fatal("died while shielded")
	}
	if r.ShieldTimer >= 1.0 {
		t.Fatal("shield timer did not decay")
	}
}

func TestGrowAndShrinkBounds(t *testing.T) {
	r := NewLineRider()

	r.Grow()
	if len(r.Segments) != InitialSegments+1 {
		t.Fatalf("grow: want %d segments, got %d", InitialSegments+1, len(r.Segments))
	}
	tail := r.Segments[len(r.Segments)-1]
	prev := r.Segments[len(r.Segments)-2]
	gap := prev.Pos.Sub(tail.Pos).Len()
	if math.Abs(gap-SegmentSpacing) > 1e-9 {
		t.Fatalf("new segment gap: want %v, got %v", SegmentSpacing, gap)
	}

	r.Shrink(100)
	if len(r.Segments) != InitialSegments {
		t.Fatalf("shrink floor: want %d segments, got %d", InitialSegments, len(r.Segments))
	}
}

func TestBoostSpeedsUpTravel(t *testing.T) {
	ps, eb, rng := testRig()

	plain := NewLineRider()
	boosted := NewLineRider()
	boosted.BoostTimer = BoostDuration

	for i := 0; i < 100; i++ {
		plain.Advance(0, 0.01, 1.0, ps, eb, rng)
		boosted.Advance(0, 0.01, 1.0, ps, eb, rng)
	}

	ratio := boosted.Head().Pos.Z() / plain.Head().Pos.Z()
	if math.Abs(ratio-BoostMultiplier) > 0.01 {
		t.Fatalf("boost ratio: want %v, got %v", BoostMultiplier, ratio)
	}
}

func TestDifficultyScalesSpeedAndTurnRate(t *testing.T) {
	ps, eb, rng := testRig()

	easy := NewLineRider()
	hard := NewLineRider()
	for i := 0; i < 50; i++ {
		easy.Advance(1, 0.01, 1.0, ps, eb, rng)
		hard.Advance(1, 0.01, HardcoreMultiplier, ps, eb, rng)
	}

	if math.Abs(hard.TotalRotation-easy.TotalRotation*HardcoreMultiplier) > 1e-9 {
		t.Fatalf("turn rate not scaled: easy %v hard %v", easy.TotalRotation, hard.TotalRotation)
	}
	easyDist := easy.Head().Pos.Sub(Vec3{0, SegmentHeight, 0}).Len()
	hardDist := hard.Head().Pos.Sub(Vec3{0, SegmentHeight, 0}).Len()
	if hardDist <= easyDist {
		t.Fatalf("speed not scaled: easy %v hard %v", easyDist, hardDist)
	}
}

func TestPassiveScoreAccrues(t *testing.T) {
	r := NewLineRider()
	ps, eb, rng := testRig()

	for i := 0; i < 100; i++ {
		r.Advance(0, 0.01, 1.0, ps, eb, rng)
	}
	if math.Abs(r.Score-PassiveScoreRate) > 0.01 {
		t.Fatalf("passive score after 1s: want %v, got %v", PassiveScoreRate, r.Score)
	}
}
