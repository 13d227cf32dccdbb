package raster

import "github.com/gogpu/swgl/internal/clip"

// scanAttr bundles the attributes FillScanline interpolates along an edge,
// mirroring clip.Projected minus the screen position (tracked separately
// as the scanline's x extent).
type scanAttr struct {
	invZ     float32
	color    [4]float32
	normal   [3]float32
	texCoord [2]float32
	worldPos [3]float32
}

func sampleAttr(v clip.Projected) scanAttr {
	return scanAttr{
		invZ:     v.Pos[2],
		color:    v.Color,
		normal:   v.Normal,
		texCoord: v.TexCoord,
		worldPos: v.WorldPos,
	}
}

func lerpAttr(a, b scanAttr, t float32) scanAttr {
	var out scanAttr
	out.invZ = a.invZ + (b.invZ-a.invZ)*t
	for i := range out.color {
		out.color[i] = a.color[i] + (b.color[i]-a.color[i])*t
	}
	for i := range out.normal {
		out.normal[i] = a.normal[i] + (b.normal[i]-a.normal[i])*t
	}
	for i := range out.texCoord {
		out.texCoord[i] = a.texCoord[i] + (b.texCoord[i]-a.texCoord[i])*t
	}
	for i := range out.worldPos {
		out.worldPos[i] = a.worldPos[i] + (b.worldPos[i]-a.worldPos[i])*t
	}
	return out
}

// FillScanline rasterizes one triangle with the classic sort-by-y,
// split-into-two-trapezoids scanline algorithm: vertices are ordered by
// screen Y, each row's x extent comes from interpolating the long edge
// against whichever short edge spans that row, and pixels between the two
// edge intersections are filled by interpolating across the row. Because
// clip.Projected's attributes are already pre-divided by 1/w (the
// clipper's stage 3 contract), this affine edge interpolation is
// perspective-correct the same way Triangle's barycentric interpolation
// is, once the result is rescaled by the interpolated 1/z.
//
// This is an alternate strategy to Triangle/TriangleParallel's
// edge-function-per-pixel method, kept for cross-checking: the two
// should agree on every fully-covered interior pixel, differing only in
// how a partially-covered edge pixel rounds.
func FillScanline(v0, v1, v2 clip.Projected, cull CullMode, shade ShadeMode, depthTest DepthTest, shader Shader, blendFn Blend) {
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

	verts := [3]clip.Projected{v0, v1, v2}
	a, b, c := v0, v1, v2
	if b.Pos[1] < a.Pos[1] {
		a, b = b, a
	}
	if c.Pos[1] < a.Pos[1] {
		a, c = c, a
	}
	if c.Pos[1] < b.Pos[1] {
		b, c = c, b
	}

	fillRow := func(y int, xA, xB float32, attrA, attrB scanAttr) {
		if xA > xB {
			xA, xB = xB, xA
			attrA, attrB = attrB, attrA
		}
		xStart := int(xA + 0.5)
		xEnd := int(xB + 0.5)
		span := xB - xA
		for x := xStart; x < xEnd; x++ {
			t := float32(0)
			if span != 0 {
				t = (float32(x) + 0.5 - xA) / span
			}
			attr := lerpAttr(attrA, attrB, t)
			if attr.invZ == 0 {
				continue
			}
			correction := 1 / attr.invZ

			if depthTest != nil && !depthTest(x, y, attr.invZ) {
				continue
			}

			frag := Fragment{X: x, Y: y, InvZ: attr.invZ}
			switch shade {
			case ShadeFlat:
				// The provoking vertex is the call's first vertex here,
				// unlike Triangle's largest-barycentric-weight rule; flat
				// shading is expected to diverge slightly between the two
				// strategies at non-vertex-aligned samples.
				frag.Color = verts[0].Color
			default:
				for i := range frag.Color {
					frag.Color[i] = attr.color[i] * correction
				}
			}
			for i := range frag.Normal {
				frag.Normal[i] = attr.normal[i] * correction
			}
			for i := range frag.TexCoord {
				frag.TexCoord[i] = attr.texCoord[i] * correction
			}
			for i := range frag.WorldPos {
				frag.WorldPos[i] = attr.worldPos[i] * correction
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

	sA, sB, sC := sampleAttr(a), sampleAttr(b), sampleAttr(c)

	if b.Pos[1] > a.Pos[1] {
		totalH := c.Pos[1] - a.Pos[1]
		segH := b.Pos[1] - a.Pos[1]
		yStart, yEnd := int(a.Pos[1]+0.5), int(b.Pos[1]+0.5)
		for y := yStart; y < yEnd; y++ {
			alpha := (float32(y) + 0.5 - a.Pos[1]) / totalH
			beta := (float32(y) + 0.5 - a.Pos[1]) / segH
			xA := a.Pos[0] + (c.Pos[0]-a.Pos[0])*alpha
			xB := a.Pos[0] + (b.Pos[0]-a.Pos[0])*beta
			fillRow(y, xA, xB, lerpAttr(sA, sC, alpha), lerpAttr(sA, sB, beta))
		}
	}
	if c.Pos[1] > b.Pos[1] {
		totalH := c.Pos[1] - a.Pos[1]
		segH := c.Pos[1] - b.Pos[1]
		yStart, yEnd := int(b.Pos[1]+0.5), int(c.Pos[1]+0.5)
		for y := yStart; y < yEnd; y++ {
			alpha := (float32(y) + 0.5 - a.Pos[1]) / totalH
			beta := (float32(y) + 0.5 - b.Pos[1]) / segH
			xA := a.Pos[0] + (c.Pos[0]-a.Pos[0])*alpha
			xB := b.Pos[0] + (c.Pos[0]-b.Pos[0])*beta
			fillRow(y, xA, xB, lerpAttr(sA, sC, alpha), lerpAttr(sB, sC, beta))
		}
	}
}
