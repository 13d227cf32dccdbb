package clip

// plane is one of the six frustum half-spaces in homogeneous space:
// axis(v) <= w for sign=+1, or -axis(v) <= w for sign=-1.
type plane struct {
	axis int // 0=x, 1=y, 2=z
	sign float32
}

var frustumPlanes = [6]plane{
	{axis: 0, sign: 1},
	{axis: 0, sign: -1},
	{axis: 1, sign: 1},
	{axis: 1, sign: -1},
	{axis: 2, sign: 1},
	{axis: 2, sign: -1},
}

// distance returns A.w - sign*A.axis, positive when v is inside the plane's
// half-space.
func (p plane) distance(v Vertex) float32 {
	return v.Pos[3] - p.sign*v.Pos[p.axis]
}

// ClipHalfSpaces runs the Sutherland-Hodgman pass against all six frustum
// planes in turn, the clipper's second stage. The polygon is assumed to
// have already survived ClipW.
func ClipHalfSpaces(poly []Vertex) []Vertex {
	for _, p := range frustumPlanes {
		if len(poly) == 0 {
			return poly
		}
		poly = clipAgainstPlane(poly, p)
	}
	return poly
}

func clipAgainstPlane(poly []Vertex, p plane) []Vertex {
	out := make([]Vertex, 0, MaxClippedVertices)
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		da := p.distance(a)
		db := p.distance(b)
		aIn := da >= 0
		bIn := db >= 0

		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			t := da / (da - db)
			out = append(out, Lerp(a, b, t))
		}
	}
	return out
}
