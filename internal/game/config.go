package game

// Arena dimensions (world units). The arena is a square in the XZ plane
// centred on the origin; the rider bounces off its edges.
const (
	ArenaSize     = 100.0
	BounceDamping = 0.95 // coordinate damping applied on a boundary bounce
)

// Window defaults.
const (
	WindowWidth  = 1280
	WindowHeight = 720
	CameraFovY   = 45.0 // degrees
)

// Rider constants.
const (
	InitialSegments = 5
	MaxSegments     = 500
	SegmentSize     = 0.8
	SegmentSpacing  = 1.0
	SegmentHeight   = 0.5
	RiderSpeed      = 12.0
	TurnSpeed       = 2.8 // rad/s at full turn intent (left only)
	EnergyDrainRate = 1.5 // energy per second
	MaxEnergy       = 100.0
	EnergyRefill    = 20.0
	FollowBlend     = 0.5 // lerp factor pulling a lagging segment toward its spot
	// Trailing segments closer to the head than this index are exempt from
	// self-collision so the rider's own neck can't kill it.
	CollisionExemptSegments = 4
	ShrinkSegments          = 3
	BoostDuration           = 5.0
	BoostMultiplier         = 1.5
	ShieldDuration          = 10.0
	LoopScoreBonus          = 100
	PassiveScoreRate        = 10.0 // score per second of survival
)

// Powerup constants.
const (
	PowerupSlots      = 20
	PowerupLifetime   = 30.0
	PowerupSize       = 0.8
	PowerupSpinRate   = 2.0 // rad/s
	PowerupBobAmp     = 0.2
	PowerupBobRate    = 2.0
	PowerupMinRadius  = 10.0 // inner annulus bound, keeps spawns off the rider start
	CollectScoreBonus = 50
	BonusPointsValue  = 500
	InitialPowerups   = 8
	EnergyBiasPercent = 40 // chance the random type roll is overridden to Energy
)

// Session modifiers.
const (
	HardcoreMultiplier = 2.0
	SlowTimeFactor     = 0.5
	SlowTimeRecovery   = 0.1 // per second, back toward 1.0
	ShakeDecayRate     = 2.0 // per second
	CollectShake       = 0.2
)

// Effect pools.
const (
	MaxParticles    = 100
	StarCount       = 200
	ParticleGravity = 5.0
)

// Camera settings (orbit).
const (
	CameraMouseSensitivity = 0.003
	CameraZoomSpeed        = 0.1
	CameraMinDistance      = 1.0
	CameraMaxDistance      = 100.0
	DefaultOrbitDistance   = 45.0
)

// Camera settings (isometric).
const (
	IsoCameraAngle     = 45.0 // degrees above the horizon
	IsoCameraMinHeight = 10.0
	IsoCameraMaxHeight = 100.0
	IsoCameraZoomSpeed = 3.0
	CameraPanSpeed     = 10.0
	CameraEdgeZone     = 20.0 // pixels from the window edge that trigger scrolling
	// Per-frame blend fraction for the isometric target/position chase.
	// Applied once per frame, not scaled by delta time, so the effective
	// chase speed varies with frame rate.
	CameraSmoothing = 0.15
)

// Camera follow coupling while gameplay is active.
const (
	FollowLookAhead = 5.0  // units ahead of the head along its heading
	FollowBlendRate = 0.08 // per-frame lerp toward the look-ahead point
)

// Gamepad filtering.
const (
	GamepadDeadZone         = 0.15
	GamepadTriggerThreshold = 0.1
)

// Font atlas layout, rasterized from basicfont.Face7x13 at startup.
// ASCII 32..127 in a 32x3 grid.
const (
	FontCellW  = 7
	FontCellH  = 13
	FontCols   = 32
	FontRows   = 3
	FontAtlasW = FontCellW * FontCols
	FontAtlasH = FontCellH * FontRows
)
