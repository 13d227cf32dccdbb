package gg

// Compile-time tunables. These mirror spec's configuration constants
// directly; the two threshold fields below are the only ones meant to be
// overridden at runtime, via the Context fields of the same name.
const (
	MaxProjectionStackSize      = 2
	MaxModelviewStackSize       = 8
	MaxTextureStackSize         = 4
	MaxLightStack               = 8
	MaxClippedPolygonVertices   = 12 // mirrors internal/clip.MaxClippedVertices
	ClipEpsilon         float32 = 1e-5
	RGBA5551AlphaThreshold      = 50

	// defaultParallelClearThreshold is the pixel-area a Clear must exceed
	// before its row loop forks across goroutines (640*480).
	defaultParallelClearThreshold = 640 * 480
	// defaultParallelRasterThreshold is the bounding-box pixel-area a
	// triangle must exceed before its row loop forks (32*32).
	defaultParallelRasterThreshold = 32 * 32
)

// ReflectionMode selects the specular reflection model used when lighting
// is evaluated per fragment.
type ReflectionMode int

const (
	// PhongReflection evaluates specular via the reflected-light-vector
	// formula. BlinnPhongReflection (the default) uses the half-vector
	// formula instead.
	BlinnPhongReflection ReflectionMode = iota
	PhongReflection
)

// ShadingModel selects whether lighting is evaluated once per vertex
// (Gouraud) and interpolated, or once per fragment (Phong shading of the
// interpolated normal).
type ShadingModel int

const (
	GouraudShading ShadingModel = iota
	PerFragmentShading
)

// RasterStrategy selects the triangle fill algorithm. Both strategies
// read the same clipped, perspective-divided vertices and must agree on
// every fully-covered interior pixel; ScanlineFill exists for
// cross-checking BarycentricFill against an independently-derived
// result, not as a faster path.
type RasterStrategy int

const (
	BarycentricFill RasterStrategy = iota
	ScanlineFill
)
