package game

import "math"

// CameraMode selects which rig drives the view.
type CameraMode int

const (
	CameraOrbit CameraMode = iota
	CameraIsometric
)

// CameraPose is the resolved view for one frame.
type CameraPose struct {
	Eye    Vec3
	Target Vec3
	FovY   float64
}

// OrbitCamera circles a target point on a sphere. Horizontal and vertical
// rotation come from mouse drags, distance from the scroll wheel.
type OrbitCamera struct {
	Target   Vec3
	Distance float64
	RotH     float64
	RotV     float64
}

func NewOrbitCamera() *OrbitCamera {
	c := &OrbitCamera{}
	c.Reset()
	return c
}

// Reset returns the rig to the overview pose used on the menu.
func (c *OrbitCamera) Reset() {
	c.Target = Vec3{}
	c.Distance = 10
	c.RotH = math.Pi * 0.25
	c.RotV = math.Pi * 0.15
}

// Rotate applies a mouse drag delta in pixels.
func (c *OrbitCamera) Rotate(dx, dy float64) {
	c.RotH -= dx * CameraMouseSensitivity
	c.RotV = clampF(c.RotV-dy*CameraMouseSensitivity, 0.01, math.Pi-0.01)
}

// Zoom applies a scroll wheel step. The step scales with the current
// distance so zooming feels even across the range.
func (c *OrbitCamera) Zoom(wheel float64) {
	c.Distance = clampF(c.Distance-wheel*c.Distance*CameraZoomSpeed,
		CameraMinDistance, CameraMaxDistance)
}

// Eye resolves the camera position from the spherical coordinates.
func (c *OrbitCamera) Eye() Vec3 {
	return c.Target.Add(Vec3{
		c.Distance * math.Sin(c.RotV) * math.Cos(c.RotH),
		c.Distance * math.Cos(c.RotV),
		c.Distance * math.Sin(c.RotV) * math.Sin(c.RotH),
	})
}

// IsoCamera looks down at a fixed 45 degree tilt and chases a desired
// target and height with a constant per-frame blend. The blend is applied
// per frame rather than per second on purpose; see CameraSmoothing.
type IsoCamera struct {
	Target        Vec3
	DesiredTarget Vec3
	Height        float64
	DesiredHeight float64
}

func NewIsoCamera() *IsoCamera {
	return &IsoCamera{
		Height:        30,
		DesiredHeight: 30,
	}
}

// Pan shifts the desired target in the ground plane. The direction is
// normalized so diagonal panning moves no faster than cardinal.
func (c *IsoCamera) Pan(dx, dz, dt float64) {
	if l := math.Hypot(dx, dz); l > 1 {
		dx, dz = dx/l, dz/l
	}
	c.DesiredTarget[0] += dx * CameraPanSpeed * dt
	c.DesiredTarget[2] += dz * CameraPanSpeed * dt
}

// Reset recentres the chase and restores the default height.
func (c *IsoCamera) Reset() {
	c.DesiredTarget = Vec3{}
	c.DesiredHeight = 30
}

// Zoom adjusts the desired height from a scroll wheel step.
func (c *IsoCamera) Zoom(wheel float64) {
	c.DesiredHeight = clampF(c.DesiredHeight-wheel*IsoCameraZoomSpeed,
		IsoCameraMinHeight, IsoCameraMaxHeight)
}

// Smooth advances the chase toward the desired target and height by one
// frame's worth of blending.
func (c *IsoCamera) Smooth() {
	c.Target = lerpV(c.Target, c.DesiredTarget, CameraSmoothing)
	c.Height = c.Height + (c.DesiredHeight-c.Height)*CameraSmoothing
}

// Eye resolves the camera position: pulled back along +Z by the height so
// the tilt stays at IsoCameraAngle.
func (c *IsoCamera) Eye() Vec3 {
	back := c.Height / math.Tan(IsoCameraAngle*math.Pi/180)
	return c.Target.Add(Vec3{0, c.Height, back})
}

// SelectionRect is a screen-space drag rectangle, active in isometric mode.
type SelectionRect struct {
	StartX, StartY float64
	EndX, EndY     float64
	Active         bool
}

// Bounds returns the normalized rectangle corners (min, then max).
func (s *SelectionRect) Bounds() (x0, y0, x1, y1 float64) {
	x0, x1 = s.StartX, s.EndX
	if x0 > x1 {
		x0, x1 = x1, x0
	}
	y0, y1 = s.StartY, s.EndY
	if y0 > y1 {
		y0, y1 = y1, y0
	}
	return
}

// CameraSystem owns both rigs and the active mode.
type CameraSystem struct {
	Mode      CameraMode
	Orbit     *OrbitCamera
	Iso       *IsoCamera
	Selection SelectionRect
}

func NewCameraSystem() *CameraSystem {
	return &CameraSystem{
		Mode:  CameraOrbit,
		Orbit: NewOrbitCamera(),
		Iso:   NewIsoCamera(),
	}
}

// SetMode switches rigs, carrying the current target over so the view does
// not jump.
func (cs *CameraSystem) SetMode(m CameraMode) {
	if m == cs.Mode {
		return
	}
	switch m {
	case CameraIsometric:
		cs.Iso.Target = cs.Orbit.Target
		cs.Iso.DesiredTarget = cs.Orbit.Target
	case CameraOrbit:
		cs.Orbit.Target = cs.Iso.Target
	}
	cs.Selection.Active = false
	cs.Mode = m
}

// Follow pulls the active rig's target toward the given point by one
// frame's blend, then displaces it by the shake jitter at full strength.
// Gameplay calls this every frame while the rider is alive.
func (cs *CameraSystem) Follow(point, jitter Vec3) {
	switch cs.Mode {
	case CameraOrbit:
		cs.Orbit.Target = lerpV(cs.Orbit.Target, point, FollowBlendRate).Add(jitter)
	case CameraIsometric:
		cs.Iso.DesiredTarget = lerpV(cs.Iso.DesiredTarget, point, FollowBlendRate).Add(jitter)
	}
}

// Pose resolves the active rig for rendering.
func (cs *CameraSystem) Pose() CameraPose {
	switch cs.Mode {
	case CameraIsometric:
		return CameraPose{Eye: cs.Iso.Eye(), Target: cs.Iso.Target, FovY: CameraFovY}
	default:
		return CameraPose{Eye: cs.Orbit.Eye(), Target: cs.Orbit.Target, FovY: CameraFovY}
	}
}

// SetupForGame frames the arena for a fresh run.
func (cs *CameraSystem) SetupForGame() {
	cs.Orbit.Target = Vec3{}
	cs.Orbit.Distance = DefaultOrbitDistance
	cs.Orbit.RotH = math.Pi * 0.25
	cs.Orbit.RotV = math.Pi * 0.35
	cs.Iso.Target = Vec3{}
	cs.Iso.DesiredTarget = Vec3{}
}
