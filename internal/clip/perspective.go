package clip

// Viewport describes the screen-space rectangle NDC coordinates are mapped
// into by PerspectiveDivide.
type Viewport struct {
	X, Y          float32
	Width, Height float32
	// DepthNear and DepthFar hold the viewport's depth range.
	// PerspectiveDivide does not read them: Projected.Pos[2] stores 1/z,
	// not a depth mapped into this range.
	DepthNear, DepthFar float32
}

// DefaultViewport returns a viewport covering w x h pixels with the default
// [0,1] depth range.
func DefaultViewport(w, h float32) Viewport {
	return Viewport{Width: w, Height: h, DepthNear: 0, DepthFar: 1}
}

// Projected is a post-divide vertex ready for rasterization. Pos.X and
// Pos.Y are viewport pixel coordinates; Pos.Z holds 1/z (the reciprocal
// of the vertex's pre-divide clip-space z), not a mapped depth value.
// Color, Normal and TexCoord have already been pre-divided by 1/w; the
// rasterizer restores perspective correctness by interpolating Pos.Z
// (1/z) barycentrically and multiplying the interpolated attributes by
// the reciprocal of that interpolated value, per the clipper's stage 3
// contract.
type Projected struct {
	Pos      [3]float32
	Color    [4]float32
	Normal   [3]float32
	TexCoord [2]float32
	WorldPos [3]float32
}

// PerspectiveDivide performs the clipper's third stage: for every vertex,
// compute inv_w = 1/w and store 1/z in place of z (used for
// reciprocal-based perspective interpolation downstream), multiply
// texcoord, color and normal by inv_w so the rasterizer's linear
// interpolation becomes perspective-correct after multiplying back by
// the reciprocal of the interpolated 1/z, then multiply x,y by inv_w and
// map into the viewport.
func PerspectiveDivide(poly []Vertex, vp Viewport) []Projected {
	out := make([]Projected, len(poly))
	halfW := vp.Width * 0.5
	halfH := vp.Height * 0.5

	for i, v := range poly {
		w := v.Pos[3]
		invW := float32(1)
		if w != 0 {
			invW = 1 / w
		}
		z := v.Pos[2]
		invZ := float32(1)
		if z != 0 {
			invZ = 1 / z
		}
		ndcX := v.Pos[0] * invW
		ndcY := v.Pos[1] * invW

		out[i] = Projected{
			Pos: [3]float32{
				vp.X + (ndcX+1)*halfW,
				vp.Y + (1-ndcY)*halfH,
				invZ,
			},
			Color: [4]float32{
				v.Color[0] * invW, v.Color[1] * invW, v.Color[2] * invW, v.Color[3] * invW,
			},
			Normal:   [3]float32{v.Normal[0] * invW, v.Normal[1] * invW, v.Normal[2] * invW},
			TexCoord: [2]float32{v.TexCoord[0] * invW, v.TexCoord[1] * invW},
			WorldPos: [3]float32{v.WorldPos[0] * invW, v.WorldPos[1] * invW, v.WorldPos[2] * invW},
		}
	}
	return out
}

// Clip runs all three clipper stages in order against a convex polygon and
// projects the survivors into the given viewport. It returns nil if the
// polygon is clipped away entirely.
func Clip(poly []Vertex, epsilon float32, vp Viewport) []Projected {
	poly = ClipW(poly, epsilon)
	if len(poly) == 0 {
		return nil
	}
	poly = ClipHalfSpaces(poly)
	if len(poly) == 0 {
		return nil
	}
	return PerspectiveDivide(poly, vp)
}
