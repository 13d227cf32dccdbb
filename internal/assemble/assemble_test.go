package assemble

import (
	"testing"

	"github.com/gogpu/swgl/internal/clip"
	"github.com/gogpu/swgl/internal/pfm"
)

func vtx(id float32) clip.Vertex {
	return clip.Vertex{Pos: pfm.Vec4{id, 0, 0, 1}}
}

type capture struct {
	kinds []int
	prims [][]clip.Vertex
}

func (c *capture) sink(kind int, verts []clip.Vertex) {
	c.kinds = append(c.kinds, kind)
	c.prims = append(c.prims, verts)
}

func TestPointsFlushesEveryVertex(t *testing.T) {
	var c capture
	a := New(Points, c.sink)
	a.Push(vtx(1))
	a.Push(vtx(2))
	if len(c.prims) != 2 {
		t.Fatalf("expected 2 points, got %d", len(c.prims))
	}
}

func TestLinesFlushesEveryPair(t *testing.T) {
	var c capture
	a := New(Lines, c.sink)
	for i := 0; i < 4; i++ {
		a.Push(vtx(float32(i)))
	}
	if len(c.prims) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(c.prims))
	}
	for _, p := range c.prims {
		if len(p) != 2 {
			t.Errorf("expected 2 vertices per line, got %d", len(p))
		}
	}
}

func TestQuadsSplitIntoTwoTriangles(t *testing.T) {
	var c capture
	a := New(Quads, c.sink)
	for i := 0; i < 4; i++ {
		a.Push(vtx(float32(i)))
	}
	if len(c.prims) != 2 {
		t.Fatalf("expected a quad to emit 2 triangles, got %d primitives", len(c.prims))
	}
	for _, k := range c.kinds {
		if k != 3 {
			t.Errorf("expected triangle kind, got %d", k)
		}
	}
}

func TestTriangleStripFormsTriangleFromEachNewVertex(t *testing.T) {
	var c capture
	a := New(TriangleStrip, c.sink)
	for i := 0; i < 5; i++ {
		a.Push(vtx(float32(i)))
	}
	// 5 vertices: 3 completed triangles (indices 2,3,4 trigger flush).
	if len(c.prims) != 3 {
		t.Fatalf("expected 3 triangles from a 5-vertex strip, got %d", len(c.prims))
	}
}

func TestTriangleStripRetainsLastTwoAfterFlush(t *testing.T) {
	var c capture
	a := New(TriangleStrip, c.sink)
	for i := 0; i < 3; i++ {
		a.Push(vtx(float32(i)))
	}
	if len(a.pending) != 2 {
		t.Fatalf("expected strip to retain last 2 vertices, got %d", len(a.pending))
	}
}

func TestTriangleFanRetainsVertexZeroAndLast(t *testing.T) {
	var c capture
	a := New(TriangleFan, c.sink)
	for i := 0; i < 4; i++ {
		a.Push(vtx(float32(i)))
	}
	if len(a.pending) != 2 {
		t.Fatalf("expected fan to retain 2 vertices, got %d", len(a.pending))
	}
	if a.pending[0].Pos[0] != 0 {
		t.Errorf("expected retained vertex 0 to be the fan's origin, got %v", a.pending[0].Pos[0])
	}
}

func TestTriangleFanEveryTriangleSharesVertexZero(t *testing.T) {
	var c capture
	a := New(TriangleFan, c.sink)
	for i := 0; i < 5; i++ {
		a.Push(vtx(float32(i)))
	}
	for _, tri := range c.prims {
		if tri[0].Pos[0] != 0 {
			t.Errorf("expected every fan triangle to start at vertex 0, got %v", tri[0].Pos[0])
		}
	}
}

func TestQuadStripFlushesInPairs(t *testing.T) {
	var c capture
	a := New(QuadStrip, c.sink)
	for i := 0; i < 6; i++ {
		a.Push(vtx(float32(i)))
	}
	// 6 vertices -> 2 quads -> 4 triangles.
	if len(c.prims) != 4 {
		t.Fatalf("expected 4 triangles from 2 quads, got %d", len(c.prims))
	}
}

func TestQuadFanFlushesInPairsFromOrigin(t *testing.T) {
	var c capture
	a := New(QuadFan, c.sink)
	for i := 0; i < 6; i++ {
		a.Push(vtx(float32(i)))
	}
	if len(c.prims) != 4 {
		t.Fatalf("expected 4 triangles from 2 fan quads, got %d", len(c.prims))
	}
}

func TestResetClearsPendingState(t *testing.T) {
	var c capture
	a := New(Triangles, c.sink)
	a.Push(vtx(0))
	a.Push(vtx(1))
	a.Reset(Lines, c.sink)
	if len(a.pending) != 0 || a.count != 0 {
		t.Errorf("expected Reset to clear pending vertices and count")
	}
}

func TestEndClearsResidueWithoutFlushing(t *testing.T) {
	var c capture
	a := New(Triangles, c.sink)
	a.Push(vtx(0))
	a.Push(vtx(1))
	a.End()
	if len(c.prims) != 0 {
		t.Errorf("expected no flush from incomplete triangle residue, got %d", len(c.prims))
	}
	if len(a.pending) != 0 {
		t.Errorf("expected End to clear pending buffer")
	}
}
