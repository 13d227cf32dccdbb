// Package gg implements a CPU-only, fixed-function 3D rasterizer in the
// style of the classic immediate-mode graphics APIs: matrix stacks,
// Begin/Vertex*/End primitive submission, per-vertex attributes,
// materials, lights, fog, and textured fragment blitting onto a
// caller-owned framebuffer.
package gg

import (
	"github.com/gogpu/swgl/internal/assemble"
	"github.com/gogpu/swgl/internal/blend"
	"github.com/gogpu/swgl/internal/clip"
	"github.com/gogpu/swgl/internal/light"
	"github.com/gogpu/swgl/internal/pfm"
	"github.com/gogpu/swgl/internal/raster"
	"github.com/gogpu/swgl/internal/texture"
)

// State is the Enable/Disable bitset. Each constant corresponds to one of
// spec's named pipeline states.
type State uint32

const (
	CullFaceState State = 1 << iota
	DepthTestState
	LightingState
	Texture2DState
	BlendState
	NormalizeState
	FramebufferState
	ColorMaterialState
	VertexArrayState
	NormalArrayState
	TexCoordArrayState
	ColorArrayState
)

// Context owns all pipeline state from the data model: the framebuffer
// binding, matrix stacks, current vertex attributes, lights, materials,
// fog, and the enable bitset. All immediate-mode verbs are methods on
// *Context; there is no package-level mutable "current context" the way
// the teacher's logger.go pattern might otherwise suggest — callers hold
// their own *Context and thread it explicitly, matching spec's
// "global mutable state -> explicit context handle" design note.
type Context struct {
	FB       *Framebuffer
	viewport clip.Viewport

	matrices  matrixState
	stateBits State

	mode       assemble.Mode
	assembler  *assemble.Assembler
	inBeginEnd bool

	currentColor    [4]float32
	currentNormal   pfm.Vec3
	currentTexCoord pfm.Vec2

	rasterPos              pfm.Vec4
	pixelZoomX, pixelZoomY float32

	pointSize float32
	lineWidth float32

	cullFace  raster.CullMode
	shadeMode raster.ShadeMode

	depthFuncMode  blend.DepthFunc
	depthPredicate blend.DepthPredicate

	blendMode blend.Mode
	blendFn   blend.Func

	clearColor Color
	clearDepth float32

	fog light.Fog

	lights      [MaxLightStack]light.Light
	lightActive [MaxLightStack]bool
	lightHead   *light.Light

	materialFront, materialBack light.Material
	reflectionMode              ReflectionMode
	shadingModel                ShadingModel
	eyeWorldPos                 pfm.Vec3

	tex *texture.Texture

	positions, normals, texcoords, colors AttribPointer

	rasterStrategy RasterStrategy

	errorCode ErrorCode

	ParallelClearThreshold  int
	ParallelRasterThreshold int
}

// NewContext creates a pipeline controller bound to fb, with fixed-function
// defaults: identity matrices, white current color, smooth shading,
// back-face culling off (CullBack once CullFaceState is enabled), depth
// testing off, 1-pixel points and lines.
func NewContext(fb *Framebuffer) *Context {
	c := &Context{
		FB:                      fb,
		viewport:                clip.DefaultViewport(float32(fb.Width), float32(fb.Height)),
		matrices:                *newMatrixState(),
		currentColor:            [4]float32{1, 1, 1, 1},
		pixelZoomX:              1,
		pixelZoomY:              1,
		pointSize:               1,
		lineWidth:               1,
		cullFace:                raster.CullBack,
		shadeMode:               raster.ShadeSmooth,
		depthFuncMode:           blend.Greater,
		blendMode:               blend.AlphaOver,
		clearColor:              Color{A: 255},
		clearDepth:              0,
		fog:                     light.DefaultFog(),
		materialFront:           light.DefaultMaterial(),
		materialBack:            light.DefaultMaterial(),
		reflectionMode:          BlinnPhongReflection,
		shadingModel:            PerFragmentShading,
		rasterStrategy:          BarycentricFill,
		ParallelClearThreshold:  defaultParallelClearThreshold,
		ParallelRasterThreshold: defaultParallelRasterThreshold,
	}
	c.depthPredicate = blend.LookupDepth(c.depthFuncMode)
	c.blendFn = blend.Lookup(c.blendMode)
	return c
}

// Enable turns on one pipeline state bit.
func (c *Context) Enable(s State) { c.stateBits |= s }

// Disable turns off one pipeline state bit.
func (c *Context) Disable(s State) { c.stateBits &^= s }

// IsEnabled reports whether s is currently on.
func (c *Context) IsEnabled(s State) bool { return c.stateBits&s != 0 }

// Viewport sets the screen-space rectangle NDC coordinates map into.
func (c *Context) Viewport(x, y, w, h float32) {
	if w <= 0 || h <= 0 {
		c.setError(InvalidValue)
		return
	}
	c.viewport = clip.Viewport{X: x, Y: y, Width: w, Height: h, DepthNear: 0, DepthFar: 1}
}

// --- Matrix stack verbs ---

// MatrixMode selects the active matrix stack for subsequent matrix verbs.
func (c *Context) MatrixMode(mode MatrixMode) { c.matrices.mode = mode }

// LoadIdentity resets the current matrix to the identity.
func (c *Context) LoadIdentity() { c.matrices.setCurrent(pfm.Identity4()) }

// LoadMatrix replaces the current matrix with m.
func (c *Context) LoadMatrix(m pfm.Mat4) { c.matrices.setCurrent(m) }

// MultMatrix post-multiplies the current matrix by m: current = current * m.
func (c *Context) MultMatrix(m pfm.Mat4) {
	c.matrices.setCurrent(c.matrices.current().Mul(m))
}

// Translate, Scale and Rotate post-multiply the current matrix by the
// named elementary transform.
func (c *Context) Translate(x, y, z float32) { c.MultMatrix(pfm.Translate(x, y, z)) }
func (c *Context) Scale(x, y, z float32)     { c.MultMatrix(pfm.Scale(x, y, z)) }
func (c *Context) Rotate(angleRad, x, y, z float32) {
	c.MultMatrix(pfm.Rotate(angleRad, x, y, z))
}

// PushMatrix duplicates the current matrix onto the active stack. Reports
// StackOverflow if the stack is already at its configured maximum depth.
func (c *Context) PushMatrix() {
	if !c.matrices.push() {
		c.setError(StackOverflow)
	}
}

// PopMatrix restores the matrix beneath the current one. Reports
// StackUnderflow if the stack is already at its base.
func (c *Context) PopMatrix() {
	if !c.matrices.pop() {
		c.setError(StackUnderflow)
	}
}

// --- Immediate-mode vertex submission ---

// Begin starts a primitive batch under mode, recomputing mvp (and the
// normal matrix, if lighting is enabled) and arming the assembler.
func (c *Context) Begin(mode assemble.Mode) {
	if c.inBeginEnd {
		c.setError(InvalidOperation)
		return
	}
	c.inBeginEnd = true
	c.mode = mode
	c.matrices.recompute(c.stateBits&LightingState != 0)
	if viewInv, ok := c.matrices.view.Inverse(); ok {
		c.eyeWorldPos = viewInv.MulVec3Point(pfm.Vec3{0, 0, 0})
	}
	if c.assembler == nil {
		c.assembler = assemble.New(mode, c.emitPrimitive)
	} else {
		c.assembler.Reset(mode, c.emitPrimitive)
	}
}

// End flushes any primitive residue and closes the batch.
func (c *Context) End() {
	if !c.inBeginEnd {
		c.setError(InvalidOperation)
		return
	}
	c.assembler.End()
	c.inBeginEnd = false
}

// Color3f/Color4f latch the current color for subsequent Vertex calls.
func (c *Context) Color3f(r, g, b float32) { c.currentColor = [4]float32{r, g, b, 1} }
func (c *Context) Color4f(r, g, b, a float32) {
	c.currentColor = [4]float32{r, g, b, a}
}

// Normal3f latches the current normal for subsequent Vertex calls.
func (c *Context) Normal3f(x, y, z float32) { c.currentNormal = pfm.Vec3{x, y, z} }

// TexCoord2f latches the current texture coordinate for subsequent Vertex
// calls.
func (c *Context) TexCoord2f(u, v float32) { c.currentTexCoord = pfm.Vec2{u, v} }

// Vertex2f, Vertex3f and Vertex4f submit one vertex using the currently
// latched color, normal and texture coordinate, pushing it into the
// assembler.
func (c *Context) Vertex2f(x, y float32)        { c.vertex(pfm.Vec4{x, y, 0, 1}) }
func (c *Context) Vertex3f(x, y, z float32)     { c.vertex(pfm.Vec4{x, y, z, 1}) }
func (c *Context) Vertex4f(x, y, z, w float32)  { c.vertex(pfm.Vec4{x, y, z, w}) }

func (c *Context) vertex(obj pfm.Vec4) {
	if !c.inBeginEnd {
		c.setError(InvalidOperation)
		return
	}
	c.assembler.Push(c.buildVertex(obj))
}

// emitPrimitive is the assembler's sink: it clips each completed
// primitive and hands the survivors to the rasterizer.
func (c *Context) emitPrimitive(kind int, verts []clip.Vertex) {
	switch kind {
	case 1:
		c.rasterizePoint(verts[0])
	case 2:
		c.rasterizeLine(verts[0], verts[1])
	case 3:
		c.rasterizeTriangle(verts[0], verts[1], verts[2])
	}
}
