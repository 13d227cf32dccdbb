package raster

import "github.com/gogpu/swgl/internal/clip"

// CullMode selects which winding the rasterizer treats as back-facing.
type CullMode int

const (
	CullNone CullMode = iota
	CullBack
	CullFront
)

// ShadeMode selects how per-fragment color is derived from the triangle's
// three vertex colors.
type ShadeMode int

const (
	ShadeSmooth ShadeMode = iota
	ShadeFlat
)

// Fragment is a single rasterized sample ready for shading: screen
// coordinates, the perspective-corrected depth (as 1/z, matching
// clip.Projected) and attributes.
type Fragment struct {
	X, Y     int
	InvZ     float32
	Color    [4]float32
	Normal   [3]float32
	TexCoord [2]float32
	WorldPos [3]float32
}

// DepthTest reports whether a fragment at invZ passes the depth test
// against the value currently stored at (x, y), and if so updates the
// buffer. Implementations decide their own comparison direction and
// storage format; the rasterizer only calls this once per covered pixel.
type DepthTest func(x, y int, invZ float32) bool

// Shader computes a fragment's final color. ok=false discards the
// fragment (e.g. alpha test, texture fully transparent) before blending.
type Shader func(f Fragment) (color [4]float32, ok bool)

// Blend combines a shaded fragment's color with the framebuffer at
// (x, y) and writes the result.
type Blend func(x, y int, src [4]float32)

// Triangle rasterizes one triangle using the edge-function barycentric
// method: the signed area of the screen-space triangle selects the
// visible face, each pixel in the bounding box is tested against the
// three edge functions, and surviving fragments are perspective-corrected
// before shading. Vertices are expected to have already passed through
// the clipper's three stages (clip.Projected is screen-space with 1/z in
// Pos[2] and attributes pre-divided by 1/w).
func Triangle(v0, v1, v2 clip.Projected, cull CullMode, shade ShadeMode, depthTest DepthTest, shader Shader, blendFn Blend) {
	TriangleParallel(v0, v1, v2, cull, shade, depthTest, shader, blendFn, nil)
}

// RowForker splits [0, n) into row ranges and runs fn over each,
// concurrently or not, joining before returning. internal/parallel.ForEachRow
// satisfies this signature when partially applied over its threshold.
type RowForker func(n int, fn func(lo, hi int))

// TriangleParallel is Triangle with an optional row forker: when forkRows
// is non-nil, the triangle's bounding-box rows are split across it instead
// of walked by a single sequential loop. Each row range is independent
// (every pixel write targets a distinct (x, y)), so no synchronization is
// needed across ranges.
func TriangleParallel(v0, v1, v2 clip.Projected, cull CullMode, shade ShadeMode, depthTest DepthTest, shader Shader, blendFn Blend, forkRows RowForker) {
	x1, y1 := v0.Pos[0], v0.Pos[1]
	x2, y2 := v1.Pos[0], v1.Pos[1]
	x3, y3 := v2.Pos[0], v2.Pos[1]

	signedArea := (x2-x1)*(y3-y1) - (x3-x1)*(y2-y1)
	if signedArea == 0 {
		return
	}

	front := signedArea < 0
	if cull == CullFront {
		front = !front
	}
	if cull != CullNone && !front {
		return
	}

	minX, maxX := minf3(x1, x2, x3), maxf3(x1, x2, x3)
	minY, maxY := minf3(y1, y2, y3), maxf3(y1, y2, y3)

	xStart, xEnd := int(minX), int(maxX)+1
	yStart, yEnd := int(minY), int(maxY)+1

	verts := [3]clip.Projected{v0, v1, v2}

	rasterRows := func(rowLo, rowHi int) {
		for y := yStart + rowLo; y < yStart+rowHi; y++ {
			py := float32(y) + 0.5
			for x := xStart; x < xEnd; x++ {
				px := float32(x) + 0.5

				w0 := edgeFunc(x2, y2, x3, y3, px, py)
				w1 := edgeFunc(x3, y3, x1, y1, px, py)
				w2 := edgeFunc(x1, y1, x2, y2, px, py)

				inside := (w0 >= 0 && w1 >= 0 && w2 >= 0) || (w0 <= 0 && w1 <= 0 && w2 <= 0)
				if !inside {
					continue
				}

				sum := w0 + w1 + w2
				if sum == 0 {
					continue
				}
				a0, a1, a2 := w0/sum, w1/sum, w2/sum

				invZ := a0*v0.Pos[2] + a1*v1.Pos[2] + a2*v2.Pos[2]
				if invZ == 0 {
					continue
				}
				correction := 1 / invZ

				if depthTest != nil && !depthTest(x, y, invZ) {
					continue
				}

				frag := Fragment{X: x, Y: y, InvZ: invZ}

				switch shade {
				case ShadeFlat:
					frag.Color = provokingVertex(verts, a0, a1, a2).Color
				default:
					for c := 0; c < 4; c++ {
						frag.Color[c] = (a0*v0.Color[c] + a1*v1.Color[c] + a2*v2.Color[c]) * correction
					}
				}
				for c := 0; c < 3; c++ {
					frag.Normal[c] = (a0*v0.Normal[c] + a1*v1.Normal[c] + a2*v2.Normal[c]) * correction
				}
				for c := 0; c < 2; c++ {
					frag.TexCoord[c] = (a0*v0.TexCoord[c] + a1*v1.TexCoord[c] + a2*v2.TexCoord[c]) * correction
				}
				for c := 0; c < 3; c++ {
					frag.WorldPos[c] = (a0*v0.WorldPos[c] + a1*v1.WorldPos[c] + a2*v2.WorldPos[c]) * correction
				}

				color := frag.Color
				if shader != nil {
					var ok bool
					color, ok = shader(frag)
					if !ok {
						continue
					}
				}
				if blendFn != nil {
					blendFn(x, y, color)
				}
			}
		}
	}

	if forkRows == nil {
		rasterRows(0, yEnd-yStart)
		return
	}
	forkRows(yEnd-yStart, rasterRows)
}

func edgeFunc(ax, ay, bx, by, px, py float32) float32 {
	return (px-ax)*(by-ay) - (py-ay)*(bx-ax)
}

// provokingVertex picks the vertex with the largest barycentric weight,
// breaking ties deterministically toward v0, then v1.
func provokingVertex(v [3]clip.Projected, a0, a1, a2 float32) clip.Projected {
	best := 0
	bestW := a0
	if a1 > bestW {
		best = 1
		bestW = a1
	}
	if a2 > bestW {
		best = 2
	}
	return v[best]
}

func minf3(a, b, c float32) float32 {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

func maxf3(a, b, c float32) float32 {
	m := a
	if b > m {
		m = b
	}
	if c > m {
		m = c
	}
	return m
}
