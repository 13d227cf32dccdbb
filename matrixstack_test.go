package gg

import (
	"testing"

	"github.com/gogpu/swgl/internal/pfm"
)

func TestMatrixStateModelEngagesOnFirstPush(t *testing.T) {
	s := newMatrixState()
	s.mode = ModelView

	if s.modelMatrixUsed {
		t.Fatal("modelMatrixUsed should start false")
	}
	s.setCurrent(pfm.Translate(1, 2, 3))
	if s.view != pfm.Translate(1, 2, 3) {
		t.Error("pre-engagement ModelView verbs should act on view")
	}

	if !s.push() {
		t.Fatal("first ModelView push should succeed and engage model")
	}
	if !s.modelMatrixUsed {
		t.Fatal("push should engage the model matrix")
	}
	if s.view != pfm.Translate(1, 2, 3) {
		t.Error("engaging push should not alter view")
	}
	if s.current() != pfm.Identity4() {
		t.Error("engaged model should start as identity")
	}
}

func TestMatrixStatePopDisengagesAtBase(t *testing.T) {
	s := newMatrixState()
	s.mode = ModelView
	s.push()
	s.push()

	if !s.pop() {
		t.Fatal("pop should succeed at depth 2")
	}
	if !s.modelMatrixUsed {
		t.Fatal("model should still be engaged at depth 1")
	}
	if !s.pop() {
		t.Fatal("pop should succeed at depth 1, disengaging")
	}
	if s.modelMatrixUsed {
		t.Error("model should be disengaged after popping its base frame")
	}
	if s.pop() {
		t.Error("pop should fail (underflow) once disengaged")
	}
}

func TestBoundedStackOverflow(t *testing.T) {
	s := newBoundedStack(2)
	if !s.push() {
		t.Fatal("first push should succeed")
	}
	if s.push() {
		t.Error("push past maxDepth should report overflow")
	}
}

func TestMatrixStateRecomputeOrder(t *testing.T) {
	s := newMatrixState()
	s.projection.setTop(pfm.Scale(2, 2, 2))
	s.view = pfm.Translate(1, 0, 0)
	s.mode = ModelView
	s.push()
	s.setCurrent(pfm.Translate(0, 1, 0))

	s.recompute(false)

	want := pfm.Scale(2, 2, 2).Mul(pfm.Translate(1, 0, 0)).Mul(pfm.Translate(0, 1, 0))
	if s.mvp != want {
		t.Errorf("mvp = %v, want %v", s.mvp, want)
	}
}
