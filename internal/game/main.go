package game

import (
	"fmt"
	"os"
	"runtime"
	"strconv"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
)

func RunDesktop() {
	runtime.LockOSThread()

	window, err := initWindow()
	if err != nil {
		panic(err)
	}
	defer glfw.Terminate()
	defer window.Destroy()

	if err := InitAudio(); err != nil {
		fmt.Fprintf(os.Stderr, "audio init failed (continuing without sound): %v\n", err)
	}

	// Seed from environment or clock.
	seed := uint64(time.Now().UnixNano())
	if s := os.Getenv("SPACELEFT_SEED"); s != "" {
		if v, err := strconv.ParseUint(s, 10, 64); err == nil {
			seed = v
		}
	}

	rend, err := NewRenderer()
	if err != nil {
		panic(fmt.Errorf("renderer: %w", err))
	}
	defer rend.Destroy()

	g := NewGameState(seed)
	cams := NewCameraSystem()
	input := NewInputSystem(window)

	fps := 60.0
	last := glfw.GetTime()
	for !window.ShouldClose() {
		now := glfw.GetTime()
		dt := now - last
		last = now
		if dt > 0.1 {
			dt = 0.1
		}
		if dt > 0 {
			fps = fps*0.95 + (1.0/dt)*0.05
		}

		glfw.PollEvents()
		winW, winH := window.GetSize()
		fbW, fbH := window.GetFramebufferSize()

		in := input.Fuse(winW, winH, dt)

		// Camera control.
		if in.ToggleCamera {
			if cams.Mode == CameraOrbit {
				cams.SetMode(CameraIsometric)
			} else {
				cams.SetMode(CameraOrbit)
			}
		}
		switch cams.Mode {
		case CameraOrbit:
			if in.OrbitDragX != 0 || in.OrbitDragY != 0 {
				cams.Orbit.Rotate(in.OrbitDragX, in.OrbitDragY)
			}
			cams.Orbit.Zoom(in.Wheel)
			if in.ResetCamera {
				cams.Orbit.Reset()
			}
		case CameraIsometric:
			cams.Iso.Pan(in.PanX, in.PanZ, dt)
			cams.Iso.Zoom(in.Wheel)
			if in.ResetCamera {
				cams.Iso.Reset()
			}
			scaleX := float64(fbW) / float64(winW)
			scaleY := float64(fbH) / float64(winH)
			mx, my := in.MouseX*scaleX, in.MouseY*scaleY
			if in.MiddleDragX != 0 || in.MiddleDragY != 0 {
				// Anchor the drag to the ground plane: the point under the
				// cursor stays under the cursor.
				cur, okA := rend.ScreenToGround(mx, my)
				prev, okB := rend.ScreenToGround(
					(in.MouseX-in.MiddleDragX)*scaleX,
					(in.MouseY-in.MiddleDragY)*scaleY)
				if okA && okB {
					delta := prev.Sub(cur)
					cams.Iso.DesiredTarget[0] += delta.X()
					cams.Iso.DesiredTarget[2] += delta.Z()
				}
			}
			// Drag selection in framebuffer pixels.
			if in.SelectPress {
				cams.Selection = SelectionRect{StartX: mx, StartY: my, EndX: mx, EndY: my, Active: true}
			} else if in.SelectHeld && cams.Selection.Active {
				cams.Selection.EndX, cams.Selection.EndY = mx, my
			}
			if in.SelectRelease {
				cams.Selection.Active = false
			}
		}

		g.Update(&in, dt)

		if point, ok := g.CameraTarget(); ok {
			cams.Follow(point, g.FollowJitter())
		}
		cams.Iso.Smooth()

		// Render.
		rend.BeginFrame(cams.Pose(), fbW, fbH)

		RenderArena(rend)
		if g.Phase != PhaseMenu {
			RenderRider(rend, g)
			RenderPowerups(rend, g)
		}
		rend.FlushLines()

		RenderStars(rend, g)
		if g.Phase != PhaseMenu {
			RenderParticles(rend, g)
		}
		rend.FlushGlow()

		rend.Begin2D()
		switch g.Phase {
		case PhaseMenu:
			RenderMenu(rend, g)
		case PhasePlaying:
			RenderHUD(rend, g, fps)
			RenderPickupIndicators(rend, g)
			RenderSelectionBox(rend, &cams.Selection)
		case PhasePaused:
			RenderHUD(rend, g, fps)
			RenderPauseOverlay(rend)
		case PhaseGameOver:
			RenderHUD(rend, g, fps)
			RenderGameOver(rend, g)
		}
		rend.FlushUI()
		rend.FlushText()

		window.SwapBuffers()
	}
}
