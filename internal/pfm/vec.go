// Package pfm provides the vector and matrix math primitives the rendering
// pipeline is built on: fixed-size float32 arrays and the handful of pure
// functions (dot, cross, normalize, reflect, 4x4 multiply/inverse) that the
// geometric stage calls on every vertex.
//
// These are the external "pfm" collaborators spec.md places out of scope for
// the pipeline's own algorithms, made concrete so the pipeline has something
// real to call.
package pfm

import "github.com/chewxy/math32"

// Vec3 is a 3-component float32 vector.
type Vec3 [3]float32

// Vec4 is a 4-component float32 vector, used for homogeneous coordinates.
type Vec4 [4]float32

func NewVec3(x, y, z float32) Vec3    { return Vec3{x, y, z} }
func NewVec4(x, y, z, w float32) Vec4 { return Vec4{x, y, z, w} }

func (v Vec3) X() float32 { return v[0] }
func (v Vec3) Y() float32 { return v[1] }
func (v Vec3) Z() float32 { return v[2] }

func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v[0] + o[0], v[1] + o[1], v[2] + o[2]} }
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v[0] - o[0], v[1] - o[1], v[2] - o[2]} }
func (v Vec3) Scale(s float32) Vec3 {
	return Vec3{v[0] * s, v[1] * s, v[2] * s}
}

// Mul returns the channel-wise (Hadamard) product of two vectors.
func (v Vec3) Mul(o Vec3) Vec3 { return Vec3{v[0] * o[0], v[1] * o[1], v[2] * o[2]} }

func (v Vec3) Dot(o Vec3) float32 {
	return v[0]*o[0] + v[1]*o[1] + v[2]*o[2]
}

func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		v[1]*o[2] - v[2]*o[1],
		v[2]*o[0] - v[0]*o[2],
		v[0]*o[1] - v[1]*o[0],
	}
}

func (v Vec3) LengthSq() float32 { return v.Dot(v) }

func (v Vec3) Length() float32 { return math32.Sqrt(v.LengthSq()) }

// Normalize returns a unit vector in the same direction as v. The zero
// vector normalizes to itself rather than producing NaN.
func (v Vec3) Normalize() Vec3 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Scale(1 / l)
}

// Reflect reflects v (pointing away from the surface) about normal n,
// following the classical r = 2*(n.v)*n - v convention used by the Phong
// reflection model: Reflect(lightDir, normal) returns the outgoing
// reflection direction of the incoming light.
func (v Vec3) Reflect(n Vec3) Vec3 {
	return n.Scale(2 * n.Dot(v)).Sub(v)
}

// Lerp linearly interpolates between v and o at parameter t.
func (v Vec3) Lerp(o Vec3, t float32) Vec3 {
	return Vec3{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
		v[2] + (o[2]-v[2])*t,
	}
}

func (v Vec4) XYZ() Vec3 { return Vec3{v[0], v[1], v[2]} }

func (v Vec4) Add(o Vec4) Vec4 {
	return Vec4{v[0] + o[0], v[1] + o[1], v[2] + o[2], v[3] + o[3]}
}

func (v Vec4) Sub(o Vec4) Vec4 {
	return Vec4{v[0] - o[0], v[1] - o[1], v[2] - o[2], v[3] - o[3]}
}

func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// Lerp linearly interpolates between v and o at parameter t.
func (v Vec4) Lerp(o Vec4, t float32) Vec4 {
	return Vec4{
		v[0] + (o[0]-v[0])*t,
		v[1] + (o[1]-v[1])*t,
		v[2] + (o[2]-v[2])*t,
		v[3] + (o[3]-v[3])*t,
	}
}

// Vec2 is a 2-component float32 vector, used for texture coordinates.
type Vec2 [2]float32

func (v Vec2) Add(o Vec2) Vec2    { return Vec2{v[0] + o[0], v[1] + o[1]} }
func (v Vec2) Scale(s float32) Vec2 { return Vec2{v[0] * s, v[1] * s} }
func (v Vec2) Lerp(o Vec2, t float32) Vec2 {
	return Vec2{v[0] + (o[0]-v[0])*t, v[1] + (o[1]-v[1])*t}
}
