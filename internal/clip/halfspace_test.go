package clip

import "testing"

func TestClipHalfSpacesTriangleInsideUnchanged(t *testing.T) {
	poly := []Vertex{
		triVertex(-0.5, -0.5, 0, 1),
		triVertex(0.5, -0.5, 0, 1),
		triVertex(0, 0.5, 0, 1),
	}
	got := ClipHalfSpaces(poly)
	if len(got) != 3 {
		t.Fatalf("expected 3 vertices, got %d", len(got))
	}
}

func TestClipHalfSpacesTriangleOutsideEmpty(t *testing.T) {
	poly := []Vertex{
		triVertex(2, 2, 0, 1),
		triVertex(3, 2, 0, 1),
		triVertex(2, 3, 0, 1),
	}
	got := ClipHalfSpaces(poly)
	if len(got) != 0 {
		t.Fatalf("expected empty polygon, got %d vertices", len(got))
	}
}

func TestClipHalfSpacesCornerProducesMoreVertices(t *testing.T) {
	// A triangle straddling all four x/y planes clips to a seven-vertex
	// polygon, more than the 3 it started with.
	poly := []Vertex{
		triVertex(-2, -2, 0, 1),
		triVertex(2, -0.1, 0, 1),
		triVertex(-0.1, 2, 0, 1),
	}
	got := ClipHalfSpaces(poly)
	if len(got) <= 3 {
		t.Fatalf("expected more than 3 vertices, got %d", len(got))
	}
	for _, v := range got {
		for axis := 0; axis < 3; axis++ {
			if v.Pos[axis] > v.Pos[3]+1e-4 || -v.Pos[axis] > v.Pos[3]+1e-4 {
				t.Errorf("vertex %v violates frustum plane on axis %d", v.Pos, axis)
			}
		}
	}
}

func TestClipHalfSpacesEmptyInputStopsEarly(t *testing.T) {
	got := ClipHalfSpaces(nil)
	if len(got) != 0 {
		t.Errorf("expected empty result for empty input, got %d", len(got))
	}
}
