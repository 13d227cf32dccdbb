package clip

// WEpsilon is the default near-w clip threshold: vertices with w < WEpsilon
// are behind the eye and must be clipped before any perspective divide.
const WEpsilon = 1e-5

// ClipW clips a convex polygon against w >= epsilon, the first of the
// clipper's three stages. Vertices with w - epsilon >= 0 are kept; edges
// that cross the plane are split at the linearly interpolated point.
func ClipW(poly []Vertex, epsilon float32) []Vertex {
	if len(poly) == 0 {
		return nil
	}
	out := make([]Vertex, 0, MaxClippedVertices)
	n := len(poly)
	for i := 0; i < n; i++ {
		a := poly[i]
		b := poly[(i+1)%n]
		aIn := a.Pos[3]-epsilon >= 0
		bIn := b.Pos[3]-epsilon >= 0

		if aIn {
			out = append(out, a)
		}
		if aIn != bIn {
			t := (epsilon - a.Pos[3]) / (b.Pos[3] - a.Pos[3])
			out = append(out, Lerp(a, b, t))
		}
	}
	return out
}
