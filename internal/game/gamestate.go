package game

import "math"

// Phase is the session state machine.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// Difficulty scales energy drain and powerup spawn cadence.
type Difficulty int

const (
	DifficultyEasy Difficulty = iota
	DifficultyHardcore
	difficultyCount
)

func (d Difficulty) String() string {
	if d == DifficultyHardcore {
		return "HARDCORE"
	}
	return "EASY"
}

func (d Difficulty) Multiplier() float64 {
	if d == DifficultyHardcore {
		return HardcoreMultiplier
	}
	return 1.0
}

// GameState owns one session: the rider, the collectible and particle
// pools, the backdrop, and the phase machine tying them together.
type GameState struct {
	Phase      Phase
	Difficulty Difficulty

	Rider     *LineRider
	Powerups  *PowerupSystem
	Particles *ParticleSystem
	Stars     []Star
	Events    *EventBus

	GameTime   float64 // advances only while actively playing
	RealTime   float64 // advances every frame, drives menu effects
	SpawnTimer float64
	TimeScale  float64 // < 1 while a slow-time pickup is in effect
	Shake      float64

	HighScores [difficultyCount]int

	SoundEnabled bool
	ShowFPS      bool

	rng           *Rand
	lastTurnSound float64
}

func NewGameState(seed uint64) *GameState {
	g := &GameState{
		Phase:        PhaseMenu,
		Powerups:     NewPowerupSystem(),
		Particles:    NewParticleSystem(),
		Events:       NewEventBus(),
		TimeScale:    1.0,
		SoundEnabled: true,
		rng:          NewRand(seed),
	}
	g.Stars = InitStars(g.rng)

	g.Events.Subscribe(EventPowerupCollected, func(e Event) {
		g.Shake = CollectShake
		switch PowerupKind(e.Data) {
		case PowerupSpeedBoost:
			g.playSound(SoundBoost)
		case PowerupShield:
			g.playSound(SoundShield)
		default:
			g.playSound(SoundPickup)
		}
	})
	g.Events.Subscribe(EventLoopCompleted, func(e Event) {
		g.playSound(SoundLoop)
	})
	g.Events.Subscribe(EventBoundaryHit, func(e Event) {
		if g.Shake < 0.1 {
			g.Shake = 0.1
		}
	})
	g.Events.Subscribe(EventRiderDied, func(e Event) {
		g.Phase = PhaseGameOver
		g.playSound(SoundGameOver)
	})
	return g
}

func (g *GameState) playSound(k SoundKind) {
	if g.SoundEnabled {
		PlaySound(k)
	}
}

// StartGame resets the session for a fresh run. Difficulty, high scores
// and the sound/FPS toggles survive the reset.
func (g *GameState) StartGame() {
	g.Rider = NewLineRider()
	g.Powerups.Clear()
	g.Particles.Clear()
	g.Stars = InitStars(g.rng)
	g.GameTime = 0
	g.TimeScale = 1.0
	g.Shake = 0
	g.SpawnTimer = 2.0 / g.Difficulty.Multiplier()
	for i := 0; i < InitialPowerups; i++ {
		g.Powerups.Spawn(g.rng)
	}
	g.Phase = PhasePlaying
}

// Update advances the session by one frame of fused input.
func (g *GameState) Update(in *Intents, dt float64) {
	g.RealTime += dt

	if in.ToggleSound {
		g.SoundEnabled = !g.SoundEnabled
	}
	if in.ToggleFPS {
		g.ShowFPS = !g.ShowFPS
	}

	switch g.Phase {
	case PhaseMenu:
		g.updateMenu(in)
	case PhasePlaying:
		g.updatePlaying(in, dt)
	case PhasePaused:
		if in.Pause {
			g.playSound(SoundPause)
			g.Phase = PhasePlaying
		}
	case PhaseGameOver:
		g.updateGameOver(in, dt)
	}
}

func (g *GameState) updateMenu(in *Intents) {
	if in.MenuLeft && g.Difficulty != DifficultyEasy {
		g.Difficulty = DifficultyEasy
		g.playSound(SoundMenu)
	}
	if in.MenuRight && g.Difficulty != DifficultyHardcore {
		g.Difficulty = DifficultyHardcore
		g.playSound(SoundMenu)
	}
	if in.Start {
		g.playSound(SoundMenu)
		g.StartGame()
	}
}

func (g *GameState) updatePlaying(in *Intents, dt float64) {
	if in.Pause {
		g.playSound(SoundPause)
		g.Phase = PhasePaused
		return
	}

	// Slow-time eases back toward normal speed.
	g.TimeScale = approach(g.TimeScale, 1.0, SlowTimeRecovery*dt)
	scaled := dt * g.TimeScale
	g.GameTime += scaled

	mult := g.Difficulty.Multiplier()

	if in.TurnIntent > 0 && g.RealTime-g.lastTurnSound > 0.1 {
		g.playSound(SoundTurn)
		g.lastTurnSound = g.RealTime
	}

	g.Rider.Advance(in.TurnIntent, scaled, mult, g.Particles, g.Events, g.rng)

	g.SpawnTimer -= scaled
	if g.SpawnTimer <= 0 {
		g.Powerups.Spawn(g.rng)
		g.SpawnTimer = (3.0 + g.rng.RangeF(0, 3)) / mult
	}

	collected := g.Powerups.Update(scaled, g.GameTime, g.Rider.Head().Pos, g.Rider.Alive)
	for _, idx := range collected {
		g.applyPowerup(g.Powerups.Slots[idx])
	}

	g.Particles.Update(scaled)
	g.Shake = math.Max(0, g.Shake-ShakeDecayRate*dt)
}

func (g *GameState) applyPowerup(p Powerup) {
	r := g.Rider
	r.Score += CollectScoreBonus
	switch p.Kind {
	case PowerupEnergy:
		r.Refill(EnergyRefill)
		r.Grow()
	case PowerupSpeedBoost:
		r.BoostTimer = BoostDuration
	case PowerupSlowTime:
		g.TimeScale = SlowTimeFactor
	case PowerupShield:
		r.ShieldTimer = ShieldDuration
	case PowerupShrink:
		r.Shrink(ShrinkSegments)
	case PowerupBonusPoints:
		r.Score += BonusPointsValue
	}
	g.Particles.SpawnBurst(p.Pos, powerupColor(p.Kind), 15, g.rng)
	g.Events.Emit(Event{Type: EventPowerupCollected, Pos: p.Pos, Data: int(p.Kind)})
}

func (g *GameState) updateGameOver(in *Intents, dt float64) {
	// Keep the high score current every frame; re-applying is harmless.
	score := int(g.Rider.Score)
	if score > g.HighScores[g.Difficulty] {
		g.HighScores[g.Difficulty] = score
	}

	g.Particles.Update(dt)
	g.Shake = math.Max(0, g.Shake-ShakeDecayRate*dt)

	if in.Start {
		g.StartGame()
	} else if in.MenuBack {
		g.Phase = PhaseMenu
	}
}

// HighScore returns the best score for the current difficulty.
func (g *GameState) HighScore() int {
	return g.HighScores[g.Difficulty]
}

// CameraTarget returns the point the camera should chase while a run is
// live: a spot ahead of the head along its heading. The second return is
// false outside of active play; pausing freezes the camera with the rest
// of the simulation.
func (g *GameState) CameraTarget() (Vec3, bool) {
	if g.Phase != PhasePlaying {
		return Vec3{}, false
	}
	if g.Rider == nil || !g.Rider.Alive {
		return Vec3{}, false
	}
	head := g.Rider.Head()
	return head.Pos.Add(Vec3{
		math.Sin(head.Angle) * FollowLookAhead,
		0,
		math.Cos(head.Angle) * FollowLookAhead,
	}), true
}

// FollowJitter returns this frame's screen-shake displacement, applied to
// the camera rig's target on top of the follow blend.
func (g *GameState) FollowJitter() Vec3 {
	if g.Shake <= 0 {
		return Vec3{}
	}
	return Vec3{
		g.rng.RangeF(-0.5, 0.5) * g.Shake,
		0,
		g.rng.RangeF(-0.5, 0.5) * g.Shake,
	}
}
