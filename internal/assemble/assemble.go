// Package assemble accumulates vertices submitted between Begin and End
// into complete primitives (points, lines, triangles) according to the
// active draw-mode topology, flushing each completed primitive to a
// caller-supplied sink and compacting its small vertex buffer the way a
// ring buffer retains only what the next primitive needs.
package assemble

import "github.com/gogpu/swgl/internal/clip"

// Mode names the immediate-mode topology in effect between Begin and End.
type Mode int

const (
	Points Mode = iota
	Lines
	Triangles
	Quads
	TriangleStrip
	TriangleFan
	QuadStrip
	QuadFan
)

// Sink receives completed primitives as they are assembled. kind is 1
// for a point, 2 for a line, 3 for a triangle (quads are always split
// into two triangles before reaching the sink).
type Sink func(kind int, verts []clip.Vertex)

// Assembler holds the small pending-vertex buffer for one Begin/End span.
// It carries no state beyond a single such span; a fresh Reset (or a new
// Assembler) is expected for each Begin.
type Assembler struct {
	mode    Mode
	pending []clip.Vertex
	count   int // total vertices seen this span, used for strip/fan parity
	sink    Sink
}

// New returns an Assembler ready to accept vertices for the given mode.
func New(mode Mode, sink Sink) *Assembler {
	return &Assembler{mode: mode, sink: sink, pending: make([]clip.Vertex, 0, 4)}
}

// Reset rearms the assembler for a new Begin/End span without reallocating
// its backing buffer.
func (a *Assembler) Reset(mode Mode, sink Sink) {
	a.mode = mode
	a.sink = sink
	a.pending = a.pending[:0]
	a.count = 0
}

// Push adds one vertex to the assembler, flushing and compacting whenever
// the current topology completes a primitive.
func (a *Assembler) Push(v clip.Vertex) {
	a.pending = append(a.pending, v)
	a.count++

	switch a.mode {
	case Points:
		a.flushAndCompact(1, a.pending, 0)
	case Lines:
		if len(a.pending) == 2 {
			a.flushAndCompact(2, a.pending, 0)
		}
	case Triangles:
		if len(a.pending) == 3 {
			a.flushAndCompact(3, a.pending, 0)
		}
	case Quads:
		if len(a.pending) == 4 {
			a.emitQuad(a.pending)
			a.pending = a.pending[:0]
		}
	case TriangleStrip:
		a.pushTriangleStrip()
	case TriangleFan:
		a.pushTriangleFan()
	case QuadStrip:
		a.pushQuadStrip()
	case QuadFan:
		a.pushQuadFan()
	}
}

// End discards any residual vertices that do not complete a primitive
// under the current topology. For all topologies defined here a
// well-formed vertex stream leaves no residue; End exists so callers
// always have a symmetric Begin/Push/End surface.
func (a *Assembler) End() {
	a.pending = a.pending[:0]
	a.count = 0
}

func (a *Assembler) flushAndCompact(kind int, verts []clip.Vertex, keep int) {
	out := make([]clip.Vertex, len(verts))
	copy(out, verts)
	if a.sink != nil {
		a.sink(kind, out)
	}
	if keep == 0 {
		a.pending = a.pending[:0]
		return
	}
	tail := append([]clip.Vertex(nil), verts[len(verts)-keep:]...)
	a.pending = append(a.pending[:0], tail...)
}

// pushTriangleStrip forms a triangle with the previous two vertices once
// three or more have been seen. Odd-indexed triangles (0-based, counting
// from the first completed triangle) swap their first two vertices to keep
// front-facing orientation consistent.
func (a *Assembler) pushTriangleStrip() {
	if len(a.pending) < 3 {
		return
	}
	n := len(a.pending)
	tri := []clip.Vertex{a.pending[n-3], a.pending[n-2], a.pending[n-1]}
	if (a.count-3)%2 == 1 {
		tri[0], tri[1] = tri[1], tri[0]
	}
	if a.sink != nil {
		a.sink(3, tri)
	}
	a.pending = a.pending[n-2:]
}

// pushTriangleFan forms a triangle from vertex 0 and the previous two
// vertices once three or more have been seen.
func (a *Assembler) pushTriangleFan() {
	if len(a.pending) < 3 {
		return
	}
	n := len(a.pending)
	tri := []clip.Vertex{a.pending[0], a.pending[n-2], a.pending[n-1]}
	if a.sink != nil {
		a.sink(3, tri)
	}
	a.pending = append(a.pending[:1], a.pending[n-1])
}

// pushQuadStrip flushes a quad every time an even count >= 4 is reached,
// keeping the last 2 vertices to seed the next quad, analogous to
// TRIANGLE_STRIP but flushing in pairs.
func (a *Assembler) pushQuadStrip() {
	if len(a.pending) < 4 || len(a.pending)%2 != 0 {
		return
	}
	n := len(a.pending)
	quad := []clip.Vertex{a.pending[n-4], a.pending[n-3], a.pending[n-1], a.pending[n-2]}
	a.emitQuad(quad)
	a.pending = a.pending[n-2:]
}

// pushQuadFan flushes a quad from vertex 0, the previous two, and the
// newest vertex each time the count grows by 2 past the first quad,
// mirroring TRIANGLE_FAN's "vertex 0 + last one" retention.
func (a *Assembler) pushQuadFan() {
	n := len(a.pending)
	if n < 4 || n%2 != 0 {
		return
	}
	quad := []clip.Vertex{a.pending[0], a.pending[n-3], a.pending[n-2], a.pending[n-1]}
	a.emitQuad(quad)
	a.pending = append(a.pending[:1], a.pending[n-1])
}

// emitQuad splits a quad (v0,v1,v2,v3 in winding order) into two
// triangles (v0,v1,v2) and (v0,v2,v3) before handing them to the sink,
// since the rasterizer only ever sees triangles.
func (a *Assembler) emitQuad(q []clip.Vertex) {
	if a.sink == nil {
		return
	}
	a.sink(3, []clip.Vertex{q[0], q[1], q[2]})
	a.sink(3, []clip.Vertex{q[0], q[2], q[3]})
}
