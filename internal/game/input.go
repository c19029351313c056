package game

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
)

// Intents is one frame of fused input, device-agnostic. The state machine
// and the camera rigs consume this instead of touching GLFW directly.
type Intents struct {
	TurnIntent float64 // 0..1, strongest turn signal across devices

	Start     bool // edge: enter / gamepad A
	Pause     bool // edge: P / gamepad start
	MenuBack  bool // edge: M
	MenuLeft  bool // edge
	MenuRight bool // edge

	ToggleSound  bool // edge: F1
	ToggleFPS    bool // edge: F2
	ToggleCamera bool // edge: tab
	ResetCamera  bool // edge: R

	PanX, PanZ float64 // -1..1 held, isometric pan
	Wheel      float64

	OrbitDragX, OrbitDragY   float64 // right-drag delta, pixels
	MiddleDragX, MiddleDragY float64

	MouseX, MouseY float64
	SelectPress    bool // edge: left button down
	SelectHeld     bool
	SelectRelease  bool // edge: left button up
}

// InputSystem polls GLFW every frame and tracks previous state so edges
// can be detected without callbacks, except the scroll wheel which GLFW
// only delivers via callback.
type InputSystem struct {
	win *glfw.Window

	prevKeys     map[glfw.Key]bool
	prevButtons  map[glfw.MouseButton]bool
	prevPadA     bool
	prevPadStart bool

	wheel      float64
	lastMouseX float64
	lastMouseY float64
	haveMouse  bool
}

func NewInputSystem(win *glfw.Window) *InputSystem {
	in := &InputSystem{
		win:         win,
		prevKeys:    make(map[glfw.Key]bool),
		prevButtons: make(map[glfw.MouseButton]bool),
	}
	win.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		in.wheel += yoff
	})
	return in
}

func (in *InputSystem) key(k glfw.Key) bool {
	return in.win.GetKey(k) == glfw.Press
}

func (in *InputSystem) keyEdge(k glfw.Key) bool {
	cur := in.key(k)
	edge := cur && !in.prevKeys[k]
	in.prevKeys[k] = cur
	return edge
}

func (in *InputSystem) button(b glfw.MouseButton) bool {
	return in.win.GetMouseButton(b) == glfw.Press
}

func (in *InputSystem) buttonEdges(b glfw.MouseButton) (press, held, release bool) {
	cur := in.button(b)
	press = cur && !in.prevButtons[b]
	release = !cur && in.prevButtons[b]
	in.prevButtons[b] = cur
	return press, cur, release
}

// fuseTurnIntent merges every turn signal into one 0..1 value by taking
// the strongest. Analog inputs pass through their magnitude.
func fuseTurnIntent(keyHeld, mouseHeld, padA bool, rightTrigger, leftStickX float64) float64 {
	intent := 0.0
	if keyHeld || mouseHeld || padA {
		intent = 1.0
	}
	if rightTrigger > GamepadTriggerThreshold && rightTrigger > intent {
		intent = rightTrigger
	}
	if -leftStickX > GamepadDeadZone && -leftStickX > intent {
		intent = -leftStickX
	}
	return clampF(intent, 0, 1)
}

// Fuse polls every device and produces the frame's intents. winW and winH
// are the window size in screen coordinates, used for edge scrolling; dt
// scales held analog axes into this frame's drag deltas.
func (in *InputSystem) Fuse(winW, winH int, dt float64) Intents {
	var out Intents

	out.Start = in.keyEdge(glfw.KeyEnter) || in.keyEdge(glfw.KeyKPEnter)
	out.Pause = in.keyEdge(glfw.KeyP)
	out.MenuBack = in.keyEdge(glfw.KeyM)
	out.MenuLeft = in.keyEdge(glfw.KeyLeft)
	out.MenuRight = in.keyEdge(glfw.KeyRight)
	out.ToggleSound = in.keyEdge(glfw.KeyF1)
	out.ToggleFPS = in.keyEdge(glfw.KeyF2)
	out.ToggleCamera = in.keyEdge(glfw.KeyTab)
	out.ResetCamera = in.keyEdge(glfw.KeyR)

	if in.key(glfw.KeyA) {
		out.PanX -= 1
	}
	if in.key(glfw.KeyD) {
		out.PanX += 1
	}
	if in.key(glfw.KeyW) {
		out.PanZ -= 1
	}
	if in.key(glfw.KeyS) {
		out.PanZ += 1
	}

	// Gamepad.
	var padA, padTurnA bool
	var rightTrigger, leftStickX float64
	if glfw.Joystick1.IsGamepad() {
		if gp := glfw.Joystick1.GetGamepadState(); gp != nil {
			curA := gp.Buttons[glfw.ButtonA] == glfw.Press
			if curA && !in.prevPadA {
				padA = true
			}
			in.prevPadA = curA
			padTurnA = curA

			curStart := gp.Buttons[glfw.ButtonStart] == glfw.Press
			if curStart && !in.prevPadStart {
				out.Pause = true
			}
			in.prevPadStart = curStart

			// GLFW trigger axes rest at -1.
			rightTrigger = (float64(gp.Axes[glfw.AxisRightTrigger]) + 1) / 2
			leftStickX = float64(gp.Axes[glfw.AxisLeftX])
			if math.Abs(leftStickX) < GamepadDeadZone {
				leftStickX = 0
			}
			out.PanX += clampF(leftStickX, -1, 1)
			lsY := float64(gp.Axes[glfw.AxisLeftY])
			if math.Abs(lsY) >= GamepadDeadZone {
				out.PanZ += clampF(lsY, -1, 1)
			}

			// Left trigger zooms like a held-down scroll wheel.
			leftTrigger := (float64(gp.Axes[glfw.AxisLeftTrigger]) + 1) / 2
			if leftTrigger > GamepadTriggerThreshold {
				out.Wheel -= leftTrigger * 5 * dt
			}

			// Right stick rotates the orbit camera, scaled to match
			// mouse-drag pixel deltas.
			rsX := float64(gp.Axes[glfw.AxisRightX])
			rsY := float64(gp.Axes[glfw.AxisRightY])
			if math.Abs(rsX) >= GamepadDeadZone {
				out.OrbitDragX += rsX * 400 * dt
			}
			if math.Abs(rsY) >= GamepadDeadZone {
				out.OrbitDragY += rsY * 400 * dt
			}
		}
	}
	out.Start = out.Start || padA

	// Mouse.
	mx, my := in.win.GetCursorPos()
	out.MouseX, out.MouseY = mx, my
	dx, dy := 0.0, 0.0
	if in.haveMouse {
		dx, dy = mx-in.lastMouseX, my-in.lastMouseY
	}
	in.lastMouseX, in.lastMouseY = mx, my
	in.haveMouse = true

	leftPress, leftHeld, leftRelease := in.buttonEdges(glfw.MouseButtonLeft)
	out.SelectPress = leftPress
	out.SelectHeld = leftHeld
	out.SelectRelease = leftRelease

	_, rightHeld, _ := in.buttonEdges(glfw.MouseButtonRight)
	if rightHeld {
		out.OrbitDragX, out.OrbitDragY = dx, dy
	}
	_, middleHeld, _ := in.buttonEdges(glfw.MouseButtonMiddle)
	if middleHeld {
		out.MiddleDragX, out.MiddleDragY = dx, dy
	}

	// Edge scrolling.
	if mx >= 0 && my >= 0 && mx < float64(winW) && my < float64(winH) {
		if mx < CameraEdgeZone {
			out.PanX -= 1
		} else if mx > float64(winW)-CameraEdgeZone {
			out.PanX += 1
		}
		if my < CameraEdgeZone {
			out.PanZ -= 1
		} else if my > float64(winH)-CameraEdgeZone {
			out.PanZ += 1
		}
	}

	out.Wheel += in.wheel
	in.wheel = 0

	out.TurnIntent = fuseTurnIntent(
		in.key(glfw.KeySpace), leftHeld, padTurnA, rightTrigger, leftStickX)

	out.PanX = clampF(out.PanX, -1, 1)
	out.PanZ = clampF(out.PanZ, -1, 1)
	return out
}
