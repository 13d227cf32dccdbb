package clip

import (
	"testing"

	"github.com/gogpu/swgl/internal/pfm"
)

func triVertex(x, y, z, w float32) Vertex {
	return Vertex{Pos: pfm.Vec4{x, y, z, w}, Color: [4]float32{1, 1, 1, 1}}
}

func TestClipWAllInsideUnchanged(t *testing.T) {
	poly := []Vertex{
		triVertex(-1, -1, 0, 1),
		triVertex(1, -1, 0, 1),
		triVertex(0, 1, 0, 1),
	}
	got := ClipW(poly, WEpsilon)
	if len(got) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(got))
	}
}

func TestClipWAllOutsideEmpty(t *testing.T) {
	poly := []Vertex{
		triVertex(-1, -1, 0, -1),
		triVertex(1, -1, 0, -1),
		triVertex(0, 1, 0, -1),
	}
	got := ClipW(poly, WEpsilon)
	if len(got) != 0 {
		t.Fatalf("expected empty polygon, got %d vertices", len(got))
	}
}

func TestClipWSplitsCrossingEdge(t *testing.T) {
	// One vertex behind the eye (w<0), two in front: the result should be
	// a quad (two original + two new intersection points).
	poly := []Vertex{
		triVertex(-1, -1, 0, 1),
		triVertex(1, -1, 0, 1),
		triVertex(0, 1, 0, -1),
	}
	got := ClipW(poly, WEpsilon)
	if len(got) != 4 {
		t.Fatalf("expected 4 vertices after clipping one behind eye, got %d", len(got))
	}
	for _, v := range got {
		if v.Pos[3] < WEpsilon-1e-6 {
			t.Errorf("clipped vertex has w=%v, below epsilon", v.Pos[3])
		}
	}
}

func TestClipWEmptyInputReturnsNil(t *testing.T) {
	got := ClipW(nil, WEpsilon)
	if got != nil {
		t.Errorf("expected nil for empty input, got %v", got)
	}
}
