package game

import (
	"math"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
)

// glOffset converts a byte offset to unsafe.Pointer for VBO offset params.
func glOffset(n int) unsafe.Pointer { return gl.PtrOffset(n) }

// staticMesh is an uploaded vertex buffer plus its draw count.
type staticMesh struct {
	vao   uint32
	vbo   uint32
	count int32
}

type Renderer struct {
	// Mesh program: solid lit geometry.
	meshProg   uint32
	uMeshProj  int32
	uMeshView  int32
	uMeshModel int32
	uMeshColor int32

	cube     staticMesh
	sphere   staticMesh
	cylinder staticMesh

	// Line program: streamed world-space lines.
	lineProg  uint32
	lineVAO   uint32
	lineVBO   uint32
	uLineProj int32
	uLineView int32
	lineBuf   []float32

	// Glow program: additive point sprites.
	glowProg        uint32
	glowVAO         uint32
	glowVBO         uint32
	uGlowProj       int32
	uGlowView       int32
	uGlowPointScale int32
	glowBuf         []float32

	// UI program: flat 2D triangles in pixel space.
	uiProg        uint32
	uiVAO         uint32
	uiVBO         uint32
	uUIResolution int32
	uiBuf         []float32

	// Text program: font atlas quads.
	textProg        uint32
	textVAO         uint32
	textVBO         uint32
	uTextResolution int32
	uTextFontTex    int32
	fontTex         uint32
	textBuf         []float32

	proj mgl32.Mat4
	view mgl32.Mat4
	fbW  int
	fbH  int
}

func uploadMesh(verts []float32) staticMesh {
	var m staticMesh
	m.count = int32(len(verts) / 6)
	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 6*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 3, gl.FLOAT, false, 6*4, glOffset(3*4))
	gl.BindVertexArray(0)
	return m
}

func NewRenderer() (*Renderer, error) {
	if err := gl.Init(); err != nil {
		return nil, err
	}

	r := &Renderer{}

	var err error
	if r.meshProg, err = linkProgram(meshVertSrc, meshFragSrc); err != nil {
		return nil, err
	}
	r.uMeshProj = gl.GetUniformLocation(r.meshProg, gl.Str("uProj\x00"))
	r.uMeshView = gl.GetUniformLocation(r.meshProg, gl.Str("uView\x00"))
	r.uMeshModel = gl.GetUniformLocation(r.meshProg, gl.Str("uModel\x00"))
	r.uMeshColor = gl.GetUniformLocation(r.meshProg, gl.Str("uColor\x00"))

	r.cube = uploadMesh(cubeVertices())
	r.sphere = uploadMesh(sphereVertices(12, 18))
	r.cylinder = uploadMesh(cylinderVertices(18))

	if r.lineProg, err = linkProgram(lineVertSrc, lineFragSrc); err != nil {
		return nil, err
	}
	r.uLineProj = gl.GetUniformLocation(r.lineProg, gl.Str("uProj\x00"))
	r.uLineView = gl.GetUniformLocation(r.lineProg, gl.Str("uView\x00"))
	gl.GenVertexArrays(1, &r.lineVAO)
	gl.GenBuffers(1, &r.lineVBO)
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 7*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, 7*4, glOffset(3*4))
	gl.BindVertexArray(0)

	if r.glowProg, err = linkProgram(glowVertSrc, glowFragSrc); err != nil {
		return nil, err
	}
	r.uGlowProj = gl.GetUniformLocation(r.glowProg, gl.Str("uProj\x00"))
	r.uGlowView = gl.GetUniformLocation(r.glowProg, gl.Str("uView\x00"))
	r.uGlowPointScale = gl.GetUniformLocation(r.glowProg, gl.Str("uPointScale\x00"))
	gl.GenVertexArrays(1, &r.glowVAO)
	gl.GenBuffers(1, &r.glowVBO)
	gl.BindVertexArray(r.glowVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.glowVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, 8*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 1, gl.FLOAT, false, 8*4, glOffset(3*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, 8*4, glOffset(4*4))
	gl.BindVertexArray(0)

	if r.uiProg, err = linkProgram(uiVertSrc, uiFragSrc); err != nil {
		return nil, err
	}
	r.uUIResolution = gl.GetUniformLocation(r.uiProg, gl.Str("uResolution\x00"))
	gl.GenVertexArrays(1, &r.uiVAO)
	gl.GenBuffers(1, &r.uiVBO)
	gl.BindVertexArray(r.uiVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.uiVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 6*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 4, gl.FLOAT, false, 6*4, glOffset(2*4))
	gl.BindVertexArray(0)

	if r.textProg, err = linkProgram(textVertSrc, textFragSrc); err != nil {
		return nil, err
	}
	r.uTextResolution = gl.GetUniformLocation(r.textProg, gl.Str("uResolution\x00"))
	r.uTextFontTex = gl.GetUniformLocation(r.textProg, gl.Str("uFontTex\x00"))
	gl.GenVertexArrays(1, &r.textVAO)
	gl.GenBuffers(1, &r.textVBO)
	gl.BindVertexArray(r.textVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.textVBO)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 8*4, glOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 8*4, glOffset(2*4))
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointer(2, 4, gl.FLOAT, false, 8*4, glOffset(4*4))
	gl.BindVertexArray(0)

	r.fontTex = buildFontTexture()

	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return r, nil
}

func (r *Renderer) Destroy() {
	for _, m := range []staticMesh{r.cube, r.sphere, r.cylinder} {
		gl.DeleteBuffers(1, &m.vbo)
		gl.DeleteVertexArrays(1, &m.vao)
	}
	gl.DeleteProgram(r.meshProg)
	gl.DeleteProgram(r.lineProg)
	gl.DeleteProgram(r.glowProg)
	gl.DeleteProgram(r.uiProg)
	gl.DeleteProgram(r.textProg)
	gl.DeleteTextures(1, &r.fontTex)
}

// BeginFrame clears and sets up the 3D matrices for the given camera pose.
func (r *Renderer) BeginFrame(pose CameraPose, fbW, fbH int) {
	r.fbW, r.fbH = fbW, fbH
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	bg := Palette.Background
	gl.ClearColor(float32(bg.R)/255, float32(bg.G)/255, float32(bg.B)/255, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	gl.Enable(gl.DEPTH_TEST)
	gl.Disable(gl.BLEND)

	aspect := float32(fbW) / float32(fbH)
	r.proj = mgl32.Perspective(mgl32.DegToRad(float32(pose.FovY)), aspect, 0.1, 500)
	r.view = mgl32.LookAtV(vec32(pose.Eye), vec32(pose.Target), mgl32.Vec3{0, 1, 0})
}

func vec32(v Vec3) mgl32.Vec3 {
	return mgl32.Vec3{float32(v.X()), float32(v.Y()), float32(v.Z())}
}

func (r *Renderer) drawMesh(m staticMesh, model mgl32.Mat4, col RGB, alpha float64) {
	gl.UseProgram(r.meshProg)
	gl.UniformMatrix4fv(r.uMeshProj, 1, false, &r.proj[0])
	gl.UniformMatrix4fv(r.uMeshView, 1, false, &r.view[0])
	gl.UniformMatrix4fv(r.uMeshModel, 1, false, &model[0])
	gl.Uniform4f(r.uMeshColor,
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(alpha))
	gl.BindVertexArray(m.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, m.count)
	gl.BindVertexArray(0)
}

// DrawCube draws an axis-scaled cube rotated by yaw around Y.
func (r *Renderer) DrawCube(pos, size Vec3, yaw float64, col RGB) {
	model := mgl32.Translate3D(float32(pos.X()), float32(pos.Y()), float32(pos.Z())).
		Mul4(mgl32.HomogRotate3DY(float32(yaw))).
		Mul4(mgl32.Scale3D(float32(size.X()), float32(size.Y()), float32(size.Z())))
	r.drawMesh(r.cube, model, col, 1)
}

// DrawSphere draws a sphere of the given radius.
func (r *Renderer) DrawSphere(pos Vec3, radius float64, col RGB) {
	model := mgl32.Translate3D(float32(pos.X()), float32(pos.Y()), float32(pos.Z())).
		Mul4(mgl32.Scale3D(float32(radius), float32(radius), float32(radius)))
	r.drawMesh(r.sphere, model, col, 1)
}

// DrawCylinder draws a Y-axis cylinder, pos at its centre.
func (r *Renderer) DrawCylinder(pos Vec3, radius, height, yaw float64, col RGB) {
	model := mgl32.Translate3D(float32(pos.X()), float32(pos.Y()), float32(pos.Z())).
		Mul4(mgl32.HomogRotate3DY(float32(yaw))).
		Mul4(mgl32.Scale3D(float32(radius), float32(height), float32(radius)))
	r.drawMesh(r.cylinder, model, col, 1)
}

// PushLine queues one world-space line segment for the next FlushLines.
func (r *Renderer) PushLine(a, b Vec3, col RGB, alpha float64) {
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255
	ca := float32(alpha)
	r.lineBuf = append(r.lineBuf,
		float32(a.X()), float32(a.Y()), float32(a.Z()), cr, cg, cb, ca,
		float32(b.X()), float32(b.Y()), float32(b.Z()), cr, cg, cb, ca)
}

// FlushLines draws and clears the queued line batch.
func (r *Renderer) FlushLines() {
	if len(r.lineBuf) == 0 {
		return
	}
	gl.UseProgram(r.lineProg)
	gl.UniformMatrix4fv(r.uLineProj, 1, false, &r.proj[0])
	gl.UniformMatrix4fv(r.uLineView, 1, false, &r.view[0])
	gl.BindVertexArray(r.lineVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.lineVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.lineBuf)*4, gl.Ptr(r.lineBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.LINES, 0, int32(len(r.lineBuf)/7))
	gl.BindVertexArray(0)
	r.lineBuf = r.lineBuf[:0]
}

// PushGlow queues one additive point sprite.
func (r *Renderer) PushGlow(pos Vec3, size float64, col RGB, alpha float64) {
	r.glowBuf = append(r.glowBuf,
		float32(pos.X()), float32(pos.Y()), float32(pos.Z()),
		float32(size),
		float32(col.R)/255, float32(col.G)/255, float32(col.B)/255, float32(alpha))
}

// FlushGlow draws the queued sprites with additive blending, depth-tested
// but not depth-writing so glows never occlude geometry.
func (r *Renderer) FlushGlow() {
	if len(r.glowBuf) == 0 {
		return
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	gl.UseProgram(r.glowProg)
	gl.UniformMatrix4fv(r.uGlowProj, 1, false, &r.proj[0])
	gl.UniformMatrix4fv(r.uGlowView, 1, false, &r.view[0])
	gl.Uniform1f(r.uGlowPointScale, float32(r.fbH)*2)
	gl.BindVertexArray(r.glowVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.glowVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.glowBuf)*4, gl.Ptr(r.glowBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.POINTS, 0, int32(len(r.glowBuf)/8))
	gl.BindVertexArray(0)

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
	r.glowBuf = r.glowBuf[:0]
}

// Begin2D switches to screen-space rendering for the UI pass.
func (r *Renderer) Begin2D() {
	gl.Disable(gl.DEPTH_TEST)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
}

// PushRect queues a filled 2D rectangle in pixel coordinates.
func (r *Renderer) PushRect(x, y, w, h float64, col RGB, alpha float64) {
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255
	ca := float32(alpha)
	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)
	r.uiBuf = append(r.uiBuf,
		x0, y0, cr, cg, cb, ca,
		x1, y0, cr, cg, cb, ca,
		x1, y1, cr, cg, cb, ca,
		x0, y0, cr, cg, cb, ca,
		x1, y1, cr, cg, cb, ca,
		x0, y1, cr, cg, cb, ca)
}

// PushTriangle queues one filled 2D triangle.
func (r *Renderer) PushTriangle(x0, y0, x1, y1, x2, y2 float64, col RGB, alpha float64) {
	cr := float32(col.R) / 255
	cg := float32(col.G) / 255
	cb := float32(col.B) / 255
	ca := float32(alpha)
	r.uiBuf = append(r.uiBuf,
		float32(x0), float32(y0), cr, cg, cb, ca,
		float32(x1), float32(y1), cr, cg, cb, ca,
		float32(x2), float32(y2), cr, cg, cb, ca)
}

// PushRectOutline queues a 1px-ish rectangle outline built from thin quads.
func (r *Renderer) PushRectOutline(x, y, w, h, thickness float64, col RGB, alpha float64) {
	r.PushRect(x, y, w, thickness, col, alpha)
	r.PushRect(x, y+h-thickness, w, thickness, col, alpha)
	r.PushRect(x, y, thickness, h, col, alpha)
	r.PushRect(x+w-thickness, y, thickness, h, col, alpha)
}

// FlushUI draws and clears the queued 2D batch.
func (r *Renderer) FlushUI() {
	if len(r.uiBuf) == 0 {
		return
	}
	gl.UseProgram(r.uiProg)
	gl.Uniform2f(r.uUIResolution, float32(r.fbW), float32(r.fbH))
	gl.BindVertexArray(r.uiVAO)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.uiVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(r.uiBuf)*4, gl.Ptr(r.uiBuf), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(len(r.uiBuf)/6))
	gl.BindVertexArray(0)
	r.uiBuf = r.uiBuf[:0]
}

// WorldToScreen projects a world point to pixel coordinates (origin top
// left). The boolean is false when the point is behind the camera; the
// returned coordinates are then mirrored and only useful for direction.
func (r *Renderer) WorldToScreen(p Vec3) (float64, float64, bool) {
	clip := r.proj.Mul4(r.view).Mul4x1(vec32(p).Vec4(1))
	win := mgl32.Project(vec32(p), r.view, r.proj, 0, 0, r.fbW, r.fbH)
	return float64(win.X()), float64(r.fbH) - float64(win.Y()), clip.W() > 0
}

// ScreenToGround casts a ray through a pixel and intersects the y=0 plane.
func (r *Renderer) ScreenToGround(sx, sy float64) (Vec3, bool) {
	wy := float64(r.fbH) - sy
	near, err := mgl32.UnProject(mgl32.Vec3{float32(sx), float32(wy), 0},
		r.view, r.proj, 0, 0, r.fbW, r.fbH)
	if err != nil {
		return Vec3{}, false
	}
	far, err := mgl32.UnProject(mgl32.Vec3{float32(sx), float32(wy), 1},
		r.view, r.proj, 0, 0, r.fbW, r.fbH)
	if err != nil {
		return Vec3{}, false
	}
	dir := far.Sub(near)
	if math.Abs(float64(dir.Y())) < 1e-6 {
		return Vec3{}, false
	}
	t := -float64(near.Y()) / float64(dir.Y())
	if t < 0 {
		return Vec3{}, false
	}
	return Vec3{
		float64(near.X()) + float64(dir.X())*t,
		0,
		float64(near.Z()) + float64(dir.Z())*t,
	}, true
}
