// Package light implements the fixed-function lighting equations: per-light
// ambient/diffuse/specular composition, Blinn-Phong and Phong reflection,
// spotlight cutoff, distance attenuation, and post-lighting fog.
//
// Active lights are held as a singly-linked intrusive list rather than an
// indexed array with an "active" flag — the two conventions coexisted in
// the system this pipeline is modeled on, and the list is the cleaner of
// the two, so it is the only one implemented here.
package light

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/swgl/internal/color"
	"github.com/gogpu/swgl/internal/pfm"
)

// ReflectionModel selects the specular term's formula.
type ReflectionModel uint8

const (
	// BlinnPhong is the default: spec = max(n·h, 0)^shininess with h the
	// halfway vector between the light and view directions.
	BlinnPhong ReflectionModel = iota
	// Phong reflects the light direction about the normal and compares it
	// against the view direction directly.
	Phong
)

// Light is one node of the active-light list. A light is "active" if and
// only if it is reachable from the context's list head; there is no
// separate enabled flag.
type Light struct {
	Next *Light

	// Position is the light's position in eye space. W=0 marks a
	// directional light (Position.XYZ is then the direction from the surface
	// toward the light); W=1 marks a positional light.
	Position pfm.Vec4

	Ambient, Diffuse, Specular color.ColorF32

	// Direction, InnerCutoff, OuterCutoff configure a spotlight.
	// InnerCutoff/OuterCutoff are cosine thresholds compared directly
	// against the L_dir . -Direction dot product, not angles; InnerCutoff
	// should exceed OuterCutoff (cos of a smaller half-angle is larger). A
	// light is omnidirectional when InnerCutoff >= pi, a value no real
	// cosine threshold reaches, which is the default below.
	Direction                pfm.Vec3
	InnerCutoff, OuterCutoff float32

	// Attenuation coefficients; the pipeline skips the 1/(...) division
	// entirely when both Linear and Quadratic are zero.
	Constant, Linear, Quadratic float32
}

// NewLight returns a light with the non-attenuating, non-spot defaults:
// Constant=1, InnerCutoff=OuterCutoff=math.Pi.
func NewLight() *Light {
	const noSpot = 3.14159265358979323846
	return &Light{
		Constant:    1,
		InnerCutoff: noSpot,
		OuterCutoff: noSpot,
	}
}

// Material holds one face's reflectance coefficients.
type Material struct {
	Ambient, Diffuse, Specular, Emission color.ColorF32
	Shininess                            float32
}

// DefaultMaterial matches the fixed-function default material.
func DefaultMaterial() Material {
	return Material{
		Ambient:   color.ColorF32{R: 0.2, G: 0.2, B: 0.2, A: 1},
		Diffuse:   color.ColorF32{R: 0.8, G: 0.8, B: 0.8, A: 1},
		Specular:  color.ColorF32{R: 0, G: 0, B: 0, A: 1},
		Emission:  color.ColorF32{R: 0, G: 0, B: 0, A: 1},
		Shininess: 0,
	}
}

// mulC is the channel-wise (Hadamard), [0,1]-normalized color multiply (⊗)
// the lighting equations are built from.
func mulC(a, b color.ColorF32) color.ColorF32 {
	return color.ColorF32{R: a.R * b.R, G: a.G * b.G, B: a.B * b.B, A: a.A * b.A}
}

func scaleC(c color.ColorF32, s float32) color.ColorF32 {
	return color.ColorF32{R: c.R * s, G: c.G * s, B: c.B * s, A: c.A * s}
}

func addC(a, b color.ColorF32) color.ColorF32 {
	return color.ColorF32{R: a.R + b.R, G: a.G + b.G, B: a.B + b.B, A: a.A + b.A}
}

func clampC(c color.ColorF32) color.ColorF32 {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return color.ColorF32{R: clamp(c.R), G: clamp(c.G), B: clamp(c.B), A: clamp(c.A)}
}

func maxf(v float32) float32 {
	if v < 0 {
		return 0
	}
	return v
}

// Evaluate sums the contribution of every light reachable from head at
// fragment position p with unit normal n, as seen from viewPos, modulated
// by texel (the sampled/vertex color being lit), and returns the final
// color including mat.Emission, clamped to [0,1].
func Evaluate(head *Light, mat Material, texel color.ColorF32, p, n, viewPos pfm.Vec3, model ReflectionModel) color.ColorF32 {
	out := mat.Emission
	viewDir := viewPos.Sub(p).Normalize()

	for lt := head; lt != nil; lt = lt.Next {
		out = addC(out, contribution(lt, mat, texel, p, n, viewDir, model))
	}
	return clampC(out)
}

func contribution(lt *Light, mat Material, texel color.ColorF32, p, n, viewDir pfm.Vec3, model ReflectionModel) color.ColorF32 {
	ambient := mulC(mulC(texel, mat.Ambient), lt.Ambient)

	var lightDir pfm.Vec3
	var dist float32
	if lt.Position[3] == 0 {
		lightDir = lt.Position.XYZ().Normalize()
	} else {
		toLight := lt.Position.XYZ().Sub(p)
		dist = toLight.Length()
		lightDir = toLight.Normalize()
	}

	diffFactor := maxf(n.Dot(lightDir))
	diffuse := scaleC(mulC(mulC(texel, mat.Diffuse), lt.Diffuse), diffFactor)

	var specFactor float32
	switch model {
	case Phong:
		r := lightDir.Reflect(n)
		specFactor = powf(maxf(r.Dot(viewDir)), mat.Shininess)
	default:
		h := lightDir.Add(viewDir).Normalize()
		specFactor = powf(maxf(n.Dot(h)), mat.Shininess)
	}
	specular := scaleC(mulC(mat.Specular, lt.Specular), specFactor)

	intensity := float32(1)
	if lt.InnerCutoff < 3.14159265358979323846 {
		theta := lightDir.Dot(pfm.Vec3{-lt.Direction[0], -lt.Direction[1], -lt.Direction[2]})
		denom := lt.InnerCutoff - lt.OuterCutoff
		if denom == 0 {
			if theta >= lt.InnerCutoff {
				intensity = 1
			} else {
				intensity = 0
			}
		} else {
			intensity = clamp01((theta - lt.OuterCutoff) / denom)
		}
	}

	att := float32(1)
	if lt.Position[3] != 0 && (lt.Linear != 0 || lt.Quadratic != 0) {
		att = 1 / (lt.Constant + lt.Linear*dist + lt.Quadratic*dist*dist)
	}

	return addC(ambient, scaleC(addC(diffuse, specular), intensity*att))
}

// powf computes base^exp, short-circuiting a zero base to 0 regardless of
// exp (no specular contribution when the alignment term is clamped to 0).
func powf(base, exp float32) float32 {
	if base == 0 {
		return 0
	}
	return math32.Pow(base, exp)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
