package game

import "math"

// Mesh geometry is interleaved position + normal, 6 floats per vertex,
// generated once at startup and uploaded to static VBOs.

// cubeVertices returns a unit cube centred on the origin.
func cubeVertices() []float32 {
	// Each face: two triangles, constant normal.
	faces := [6]struct {
		n          [3]float32
		a, b, c, d [3]float32
	}{
		{n: [3]float32{0, 0, 1},
			a: [3]float32{-0.5, -0.5, 0.5}, b: [3]float32{0.5, -0.5, 0.5},
			c: [3]float32{0.5, 0.5, 0.5}, d: [3]float32{-0.5, 0.5, 0.5}},
		{n: [3]float32{0, 0, -1},
			a: [3]float32{0.5, -0.5, -0.5}, b: [3]float32{-0.5, -0.5, -0.5},
			c: [3]float32{-0.5, 0.5, -0.5}, d: [3]float32{0.5, 0.5, -0.5}},
		{n: [3]float32{1, 0, 0},
			a: [3]float32{0.5, -0.5, 0.5}, b: [3]float32{0.5, -0.5, -0.5},
			c: [3]float32{0.5, 0.5, -0.5}, d: [3]float32{0.5, 0.5, 0.5}},
		{n: [3]float32{-1, 0, 0},
			a: [3]float32{-0.5, -0.5, -0.5}, b: [3]float32{-0.5, -0.5, 0.5},
			c: [3]float32{-0.5, 0.5, 0.5}, d: [3]float32{-0.5, 0.5, -0.5}},
		{n: [3]float32{0, 1, 0},
			a: [3]float32{-0.5, 0.5, 0.5}, b: [3]float32{0.5, 0.5, 0.5},
			c: [3]float32{0.5, 0.5, -0.5}, d: [3]float32{-0.5, 0.5, -0.5}},
		{n: [3]float32{0, -1, 0},
			a: [3]float32{-0.5, -0.5, -0.5}, b: [3]float32{0.5, -0.5, -0.5},
			c: [3]float32{0.5, -0.5, 0.5}, d: [3]float32{-0.5, -0.5, 0.5}},
	}

	out := make([]float32, 0, 36*6)
	push := func(p, n [3]float32) {
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	for _, f := range faces {
		push(f.a, f.n)
		push(f.b, f.n)
		push(f.c, f.n)
		push(f.a, f.n)
		push(f.c, f.n)
		push(f.d, f.n)
	}
	return out
}

// sphereVertices returns a unit-radius UV sphere.
func sphereVertices(rings, sectors int) []float32 {
	point := func(r, s int) ([3]float32, [3]float32) {
		lat := math.Pi * (float64(r)/float64(rings) - 0.5)
		lon := 2 * math.Pi * float64(s) / float64(sectors)
		x := float32(math.Cos(lat) * math.Cos(lon))
		y := float32(math.Sin(lat))
		z := float32(math.Cos(lat) * math.Sin(lon))
		p := [3]float32{x, y, z}
		return p, p
	}

	out := make([]float32, 0, rings*sectors*6*6)
	push := func(p, n [3]float32) {
		out = append(out, p[0], p[1], p[2], n[0], n[1], n[2])
	}
	for r := 0; r < rings; r++ {
		for s := 0; s < sectors; s++ {
			p00, n00 := point(r, s)
			p10, n10 := point(r+1, s)
			p01, n01 := point(r, s+1)
			p11, n11 := point(r+1, s+1)
			push(p00, n00)
			push(p10, n10)
			push(p11, n11)
			push(p00, n00)
			push(p11, n11)
			push(p01, n01)
		}
	}
	return out
}

// cylinderVertices returns a unit cylinder (radius 1, height 1, centred),
// axis along Y, with caps.
func cylinderVertices(sectors int) []float32 {
	out := make([]float32, 0, sectors*12*6)
	push := func(x, y, z, nx, ny, nz float32) {
		out = append(out, x, y, z, nx, ny, nz)
	}
	for s := 0; s < sectors; s++ {
		a0 := 2 * math.Pi * float64(s) / float64(sectors)
		a1 := 2 * math.Pi * float64(s+1) / float64(sectors)
		x0, z0 := float32(math.Cos(a0)), float32(math.Sin(a0))
		x1, z1 := float32(math.Cos(a1)), float32(math.Sin(a1))

		// Side quad.
		push(x0, -0.5, z0, x0, 0, z0)
		push(x1, -0.5, z1, x1, 0, z1)
		push(x1, 0.5, z1, x1, 0, z1)
		push(x0, -0.5, z0, x0, 0, z0)
		push(x1, 0.5, z1, x1, 0, z1)
		push(x0, 0.5, z0, x0, 0, z0)

		// Caps.
		push(0, 0.5, 0, 0, 1, 0)
		push(x0, 0.5, z0, 0, 1, 0)
		push(x1, 0.5, z1, 0, 1, 0)
		push(0, -0.5, 0, 0, -1, 0)
		push(x1, -0.5, z1, 0, -1, 0)
		push(x0, -0.5, z0, 0, -1, 0)
	}
	return out
}
