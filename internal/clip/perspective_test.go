package clip

import (
	"testing"

	"github.com/gogpu/swgl/internal/pfm"
)

func TestPerspectiveDivideMapsToViewportCenter(t *testing.T) {
	poly := []Vertex{
		{Pos: pfm.Vec4{0, 0, 2, 1}, Color: [4]float32{1, 1, 1, 1}},
	}
	vp := DefaultViewport(800, 600)
	got := PerspectiveDivide(poly, vp)
	if len(got) != 1 {
		t.Fatalf("expected 1 projected vertex, got %d", len(got))
	}
	p := got[0]
	if p.Pos[0] != 400 || p.Pos[1] != 300 {
		t.Errorf("NDC origin should map to viewport center, got (%v, %v)", p.Pos[0], p.Pos[1])
	}
	if p.Pos[2] != 0.5 {
		t.Errorf("expected stored z = 1/z = 0.5 for z=2, got %v", p.Pos[2])
	}
}

func TestPerspectiveDivideFlipsYAxis(t *testing.T) {
	poly := []Vertex{
		{Pos: pfm.Vec4{0, 1, 0, 1}},
	}
	vp := DefaultViewport(800, 600)
	got := PerspectiveDivide(poly, vp)
	if got[0].Pos[1] != 0 {
		t.Errorf("NDC top (y=1) should map to viewport row 0, got %v", got[0].Pos[1])
	}
}

func TestPerspectiveDividePreDividesAttributesByW(t *testing.T) {
	poly := []Vertex{
		{Pos: pfm.Vec4{0, 0, 0, 2}, TexCoord: pfm.Vec2{1, 1}, Color: [4]float32{1, 1, 1, 1}},
	}
	vp := DefaultViewport(100, 100)
	got := PerspectiveDivide(poly, vp)
	if got[0].TexCoord[0] != 0.5 || got[0].TexCoord[1] != 0.5 {
		t.Errorf("texcoord should be pre-divided by w=2, got %v", got[0].TexCoord)
	}
}

func TestClipFullPipelineDropsBehindEyeTriangle(t *testing.T) {
	poly := []Vertex{
		triVertex(-1, -1, 0, -1),
		triVertex(1, -1, 0, -1),
		triVertex(0, 1, 0, -1),
	}
	got := Clip(poly, WEpsilon, DefaultViewport(640, 480))
	if got != nil {
		t.Errorf("expected nil for fully behind-eye triangle, got %v", got)
	}
}

func TestClipFullPipelineKeepsOnscreenTriangle(t *testing.T) {
	poly := []Vertex{
		triVertex(-0.5, -0.5, 0, 1),
		triVertex(0.5, -0.5, 0, 1),
		triVertex(0, 0.5, 0, 1),
	}
	got := Clip(poly, WEpsilon, DefaultViewport(640, 480))
	if len(got) != 3 {
		t.Fatalf("expected 3 projected vertices, got %d", len(got))
	}
}
