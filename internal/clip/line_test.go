package clip

import (
	"testing"

	"github.com/gogpu/swgl/internal/pfm"
)

func TestClipLine2DBothInsideUnchanged(t *testing.T) {
	a := triVertex(-0.5, -0.5, 0, 1)
	b := triVertex(0.5, 0.5, 0, 1)
	na, nb, ok := ClipLine(a, b, WEpsilon)
	if !ok {
		t.Fatal("expected line to survive clipping")
	}
	if na.Pos != a.Pos || nb.Pos != b.Pos {
		t.Errorf("fully inside line should be unchanged, got %v -> %v", na.Pos, nb.Pos)
	}
}

func TestClipLine2DPartiallyOutsideClips(t *testing.T) {
	a := triVertex(-0.5, 0, 0, 1)
	b := triVertex(2, 0, 0, 1)
	na, nb, ok := ClipLine(a, b, WEpsilon)
	if !ok {
		t.Fatal("expected line to survive clipping")
	}
	if nb.Pos[0] > 1+1e-5 {
		t.Errorf("clipped endpoint should not exceed x=1, got %v", nb.Pos[0])
	}
	if na.Pos[0] != a.Pos[0] {
		t.Errorf("unclipped endpoint should be unchanged, got %v", na.Pos[0])
	}
}

func TestClipLine2DFullyOutsideRejected(t *testing.T) {
	a := triVertex(2, 2, 0, 1)
	b := triVertex(3, 3, 0, 1)
	_, _, ok := ClipLine(a, b, WEpsilon)
	if ok {
		t.Error("expected fully outside line to be rejected")
	}
}

func TestClipLine3DBehindEyeClipped(t *testing.T) {
	a := Vertex{Pos: pfm.Vec4{0, 0, 0, -1}}
	b := Vertex{Pos: pfm.Vec4{0, 0, 0, 1}}
	na, nb, ok := ClipLine(a, b, WEpsilon)
	if !ok {
		t.Fatal("expected segment crossing the eye plane to survive clipping")
	}
	if na.Pos[3] < WEpsilon-1e-6 {
		t.Errorf("clipped endpoint should satisfy w>=epsilon, got w=%v", na.Pos[3])
	}
	if nb.Pos != b.Pos {
		t.Errorf("in-front endpoint should be unchanged, got %v", nb.Pos)
	}
}

func TestClipLine3DFullyBehindRejected(t *testing.T) {
	a := Vertex{Pos: pfm.Vec4{0, 0, 0, -1}}
	b := Vertex{Pos: pfm.Vec4{0, 0, 0, -2}}
	_, _, ok := ClipLine(a, b, WEpsilon)
	if ok {
		t.Error("expected fully behind-eye segment to be rejected")
	}
}
