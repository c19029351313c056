package game

import (
	"fmt"
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// buildFontTexture rasterizes the fixed 7x13 face into a single-channel
// atlas: ASCII 32..127 in a FontCols x FontRows grid.
func buildFontTexture() uint32 {
	img := image.NewGray(image.Rect(0, 0, FontAtlasW, FontAtlasH))
	d := font.Drawer{
		Dst:  img,
		Src:  image.White,
		Face: basicfont.Face7x13,
	}
	ascent := basicfont.Face7x13.Metrics().Ascent.Ceil()
	for c := 32; c < 128; c++ {
		column := (c - 32) % FontCols
		row := (c - 32) / FontCols
		d.Dot = fixed.P(column*FontCellW, row*FontCellH+ascent)
		d.DrawString(string(rune(c)))
	}

	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.R8,
		int32(FontAtlasW), int32(FontAtlasH), 0,
		gl.RED, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 4)
	return tex
}

// DrawChar queues one character as a textured quad in screen pixel space.
func (r *Renderer) DrawChar(ch rune, sx, sy, scale float32, col RGB) {
	if ch < 32 || ch > 126 {
		return
	}
	c := int(ch) - 32
	column := c % FontCols
	row := c / FontCols

	u0 := float32(column*FontCellW) / float32(FontAtlasW)
	v0 := float32(row*FontCellH) / float32(FontAtlasH)
	u1 := float32((column+1)*FontCellW) / float32(FontAtlasW)
	v1 := float32((row+1)*FontCellH) / float32(FontAtlasH)

	w := float32(FontCellW) * scale
	h := float32(FontCellH) * scale

	cr := float32(col.R) / 255.0
	cg := float32(col.G) / 255.0
	cb := float32(col.B) / 255.0

	r.textBuf = append(r.textBuf,
		sx, sy, u0, v0, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
		sx+w, sy, u1, v0, cr, cg, cb, 1,
		sx+w, sy+h, u1, v1, cr, cg, cb, 1,
		sx, sy+h, u0, v1, cr, cg, cb, 1,
	)
}

// DrawString queues a string at screen pixel position (sx, sy).
func (r *Renderer) DrawString(text string, sx, sy int, scale float32, col RGB) {
	advance := float32(FontCellW) * scale
	lineAdvance := float32(FontCellH) * scale
	baseX := float32(sx)
	x := float32(sx)
	y := float32(sy)
	for _, ch := range text {
		if ch == '\n' {
			x = baseX
			y += lineAdvance
			continue
		}
		r.DrawChar(ch, x, y, scale, col)
		x += advance
	}
}

// TextWidth returns the width in screen pixels of a string at given scale.
func TextWidth(text string, scale float32) int {
	lineLen := 0
	maxLineLen := 0
	for _, ch := range text {
		if ch == '\n' {
			if lineLen > maxLineLen {
				maxLineLen = lineLen
			}
			lineLen = 0
			continue
		}
		lineLen++
	}
	if lineLen > maxLineLen {
		maxLineLen = lineLen
	}
	return int(float32(maxLineLen*FontCellW) * scale)
}

// FlushText draws all buffered text quads and clears the buffer.
func (r *Renderer) FlushText() {
	if len(r.textBuf) == 0 {
		return
	}
	gl.UseProgram(r.textProg)
	gl.Uniform2f(r.uTextResolution, float32(r.fbW), float32(r.fbH))
	gl.Uniform1i(r.uTextFontTex, 2)
	gl.ActiveTexture(gl.TEXTURE2)
	gl.BindTexture(gl.TEXTURE_2D, r.fontTex)

	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.textBuf)*4, gl.Ptr(r.textBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.textBuf)/8))
	gl.BindVertexArray(0)

	gl.ActiveTexture(gl.TEXTURE0)
	r.textBuf = r.textBuf[:0]
}

func energyBarColor(frac float64) RGB {
	switch {
	case frac > 0.5:
		return Palette.Green
	case frac > 0.25:
		return Palette.Yellow
	default:
		return Palette.Red
	}
}

// RenderHUD draws the in-game overlay: score, energy, loops and the
// active effect timers.
func RenderHUD(r *Renderer, g *GameState, fps float64) {
	fbW := r.fbW
	rd := g.Rider

	r.DrawString(fmt.Sprintf("SCORE %d", int(rd.Score)), 10, 10, 2, Palette.White)
	r.DrawString(fmt.Sprintf("BEST %d", g.HighScore()), 10, 40, 1.5, Palette.LightGray)
	r.DrawString(fmt.Sprintf("LOOPS %d", rd.LoopCount), 10, 64, 1.5, Palette.Gold)
	r.DrawString(g.Difficulty.String(), fbW-TextWidth(g.Difficulty.String(), 1.5)-10, 10, 1.5, Palette.Purple)

	// Energy bar, centred at the top.
	barW, barH := 300.0, 18.0
	barX := float64(fbW)/2 - barW/2
	frac := rd.Energy / MaxEnergy
	r.PushRect(barX-2, 8, barW+4, barH+4, Palette.DarkGray, 0.8)
	r.PushRect(barX, 10, barW*frac, barH, energyBarColor(frac), 1)

	y := 34
	if rd.BoostTimer > 0 {
		s := fmt.Sprintf("BOOST %.1f", rd.BoostTimer)
		r.DrawString(s, fbW/2-TextWidth(s, 1.5)/2, y, 1.5, Palette.Orange)
		y += 22
	}
	if rd.ShieldTimer > 0 {
		s := fmt.Sprintf("SHIELD %.1f", rd.ShieldTimer)
		r.DrawString(s, fbW/2-TextWidth(s, 1.5)/2, y, 1.5, Palette.SkyBlue)
		y += 22
	}
	if g.TimeScale < 1 {
		s := "SLOW TIME"
		r.DrawString(s, fbW/2-TextWidth(s, 1.5)/2, y, 1.5, Palette.Purple)
	}

	if !g.SoundEnabled {
		r.DrawString("MUTED", fbW-TextWidth("MUTED", 1)-10, r.fbH-24, 1, Palette.DarkGray)
	}
	if g.ShowFPS {
		s := fmt.Sprintf("%.0f FPS", fps)
		r.DrawString(s, 10, r.fbH-24, 1, Palette.Lime)
	}
}

// RenderMenu draws the title screen with the difficulty selector.
func RenderMenu(r *Renderer, g *GameState) {
	fbW, fbH := r.fbW, r.fbH

	title := "SPACE IS LEFT"
	r.DrawString(title, fbW/2-TextWidth(title, 5)/2, fbH/2-160, 5, Palette.SkyBlue)

	sub := "THE ONLY WAY OUT IS LEFT"
	r.DrawString(sub, fbW/2-TextWidth(sub, 1.5)/2, fbH/2-90, 1.5, Palette.LightGray)

	diff := fmt.Sprintf("< %s >", g.Difficulty)
	r.DrawString(diff, fbW/2-TextWidth(diff, 2.5)/2, fbH/2-10, 2.5, Palette.Yellow)

	if best := g.HighScore(); best > 0 {
		s := fmt.Sprintf("BEST %d", best)
		r.DrawString(s, fbW/2-TextWidth(s, 1.5)/2, fbH/2+40, 1.5, Palette.Gold)
	}

	hint := "ENTER TO START"
	r.DrawString(hint, fbW/2-TextWidth(hint, 2)/2, fbH/2+90, 2, Palette.White)

	help := "SPACE / CLICK / TRIGGER TO TURN LEFT\nTAB CAMERA   P PAUSE   F1 SOUND"
	r.DrawString(help, fbW/2-TextWidth(help, 1)/2, fbH-80, 1, Palette.DarkGray)
}

// RenderPauseOverlay dims the scene and shows the pause banner.
func RenderPauseOverlay(r *Renderer) {
	fbW, fbH := r.fbW, r.fbH
	r.PushRect(0, 0, float64(fbW), float64(fbH), RGB{}, 0.5)
	s := "PAUSED"
	r.DrawString(s, fbW/2-TextWidth(s, 4)/2, fbH/2-30, 4, Palette.White)
	hint := "P TO RESUME"
	r.DrawString(hint, fbW/2-TextWidth(hint, 1.5)/2, fbH/2+40, 1.5, Palette.LightGray)
}

// RenderGameOver draws the end screen over the frozen scene.
func RenderGameOver(r *Renderer, g *GameState) {
	fbW, fbH := r.fbW, r.fbH
	r.PushRect(0, 0, float64(fbW), float64(fbH), RGB{}, 0.6)

	s := "GAME OVER"
	r.DrawString(s, fbW/2-TextWidth(s, 4)/2, fbH/2-110, 4, Palette.Red)

	score := fmt.Sprintf("SCORE %d", int(g.Rider.Score))
	r.DrawString(score, fbW/2-TextWidth(score, 2.5)/2, fbH/2-30, 2.5, Palette.White)

	best := fmt.Sprintf("BEST %d", g.HighScore())
	col := Palette.LightGray
	if int(g.Rider.Score) >= g.HighScore() && g.HighScore() > 0 {
		col = Palette.Gold
	}
	r.DrawString(best, fbW/2-TextWidth(best, 2)/2, fbH/2+10, 2, col)

	loops := fmt.Sprintf("LOOPS %d", g.Rider.LoopCount)
	r.DrawString(loops, fbW/2-TextWidth(loops, 1.5)/2, fbH/2+50, 1.5, Palette.Gold)

	hint := "ENTER RESTART   M MENU"
	r.DrawString(hint, fbW/2-TextWidth(hint, 1.5)/2, fbH/2+100, 1.5, Palette.Yellow)
}

// RenderPickupIndicators marks collectibles on the HUD. Off-screen pickups
// get an edge arrow pointing at them; energy pickups pulse urgent when the
// rider is running dry.
func RenderPickupIndicators(r *Renderer, g *GameState) {
	lowEnergy := g.Rider != nil && g.Rider.Energy < MaxEnergy*0.25
	margin := 24.0
	fbW, fbH := float64(r.fbW), float64(r.fbH)

	for i := range g.Powerups.Slots {
		p := &g.Powerups.Slots[i]
		if !p.Active {
			continue
		}
		col := powerupColor(p.Kind)
		urgent := lowEnergy && p.Kind == PowerupEnergy

		sx, sy, visible := r.WorldToScreen(p.Pos)
		onScreen := visible && sx >= 0 && sy >= 0 && sx < fbW && sy < fbH
		if onScreen {
			if urgent {
				r.PushTriangle(sx, sy-26, sx-7, sy-14, sx+7, sy-14, col, 0.9)
			}
			continue
		}

		// Clamp to the screen edge and draw an arrow toward the pickup.
		if !visible {
			sx, sy = fbW-sx, fbH-sy
		}
		cx := clampF(sx, margin, fbW-margin)
		cy := clampF(sy, margin, fbH-margin)
		dir := safeNormalize(Vec3{sx - cx, sy - cy, 0})
		if dir.Len() == 0 {
			continue
		}
		perp := Vec3{-dir.Y(), dir.X(), 0}
		tip := Vec3{cx, cy, 0}.Add(dir.Mul(10))
		b1 := Vec3{cx, cy, 0}.Sub(dir.Mul(4)).Add(perp.Mul(6))
		b2 := Vec3{cx, cy, 0}.Sub(dir.Mul(4)).Sub(perp.Mul(6))
		alpha := 0.6
		if urgent {
			alpha = 1.0
		}
		r.PushTriangle(tip.X(), tip.Y(), b1.X(), b1.Y(), b2.X(), b2.Y(), col, alpha)
	}
}

// RenderSelectionBox draws the drag rectangle while a selection is active.
func RenderSelectionBox(r *Renderer, sel *SelectionRect) {
	if !sel.Active {
		return
	}
	x0, y0, x1, y1 := sel.Bounds()
	r.PushRect(x0, y0, x1-x0, y1-y0, Palette.SkyBlue, 0.15)
	r.PushRectOutline(x0, y0, x1-x0, y1-y0, 1.5, Palette.SkyBlue, 0.8)
}
