// Package clip implements the three-stage homogeneous-space clipper: a
// w-plane clip, six half-space Sutherland-Hodgman passes, and the
// perspective divide that maps surviving vertices into the viewport.
package clip

import "github.com/gogpu/swgl/internal/pfm"

// MaxClippedVertices bounds the polygon a clip pass can produce. A
// triangle clipped against all planes of the view frustum can grow to at
// most this many vertices.
const MaxClippedVertices = 12

// Vertex is the clip stage's working vertex: a homogeneous position plus
// the attributes that must be interpolated linearly alongside it. Callers
// outside this package map their own vertex representation to and from
// Vertex at the clip stage's boundary.
type Vertex struct {
	Pos      pfm.Vec4
	Color    [4]float32
	Normal   pfm.Vec3
	TexCoord pfm.Vec2

	// WorldPos is the vertex's world-space position (object space after
	// the model matrix only, not view/projection), carried alongside Pos
	// so per-fragment lighting has an interpolated shading position
	// without having to invert the viewport/perspective mapping.
	WorldPos pfm.Vec3
}

// Lerp linearly interpolates every attribute of a and b at parameter t.
func Lerp(a, b Vertex, t float32) Vertex {
	return Vertex{
		Pos:      a.Pos.Lerp(b.Pos, t),
		Color:    lerpColor(a.Color, b.Color, t),
		Normal:   a.Normal.Lerp(b.Normal, t),
		TexCoord: a.TexCoord.Lerp(b.TexCoord, t),
		WorldPos: a.WorldPos.Lerp(b.WorldPos, t),
	}
}

func lerpColor(a, b [4]float32, t float32) [4]float32 {
	var out [4]float32
	for i := range out {
		out[i] = a[i] + (b[i]-a[i])*t
	}
	return out
}
