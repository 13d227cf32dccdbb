package gg

import (
	"testing"

	"github.com/gogpu/swgl/internal/pixelfmt"
)

func TestNewFramebufferRejectsBadDimensions(t *testing.T) {
	if _, err := NewFramebuffer(0, 4, pixelfmt.RGBA, pixelfmt.UnsignedByte); err == nil {
		t.Error("expected error for zero width")
	}
}

func TestFramebufferClearFillsColorAndDepth(t *testing.T) {
	fb := mustFB(t, 4, 4)
	fb.Clear(ClearColorBit|ClearDepthBit, Color3(10, 20, 30), 0.5, 0)

	got := fb.GetPixel(2, 2)
	want := Color3(10, 20, 30)
	if got != want {
		t.Errorf("GetPixel = %v, want %v", got, want)
	}
	if fb.ZBuffer[2*fb.Width+2] != 0.5 {
		t.Errorf("ZBuffer = %v, want 0.5", fb.ZBuffer[2*fb.Width+2])
	}
}

func TestFramebufferSetPixelOutOfBoundsIgnored(t *testing.T) {
	fb := mustFB(t, 2, 2)
	fb.SetPixel(10, 10, Color3(1, 2, 3))
	if fb.GetPixel(10, 10) != (Color{}) {
		t.Error("out-of-bounds GetPixel should return the zero color")
	}
}

func TestFramebufferRebindPreservesOverlap(t *testing.T) {
	fb := mustFB(t, 2, 2)
	fb.SetPixel(0, 0, Color3(9, 9, 9))

	bigger := make([]byte, 4*4*4)
	if err := fb.Rebind(4, 4, bigger, 1); err != nil {
		t.Fatalf("Rebind: %v", err)
	}
	if fb.Width != 4 || fb.Height != 4 {
		t.Fatalf("dimensions after Rebind = %dx%d, want 4x4", fb.Width, fb.Height)
	}
	if fb.ZBuffer[3*fb.Width+3] != 1 {
		t.Errorf("newly exposed zbuffer region = %v, want clearDepth 1", fb.ZBuffer[3*fb.Width+3])
	}
	if fb.ZBuffer[0] != posInf {
		t.Errorf("overlapping zbuffer region = %v, want the preserved initial depth %v", fb.ZBuffer[0], posInf)
	}
}

func TestFramebufferSwapBuffersRequiresAux(t *testing.T) {
	fb := mustFB(t, 2, 2)
	if err := fb.SwapBuffers(); err == nil {
		t.Error("SwapBuffers without SetAuxBuffer should error")
	}
	aux := make([]byte, len(fb.Pixels))
	if err := fb.SetAuxBuffer(aux); err != nil {
		t.Fatalf("SetAuxBuffer: %v", err)
	}
	if err := fb.SwapBuffers(); err != nil {
		t.Fatalf("SwapBuffers: %v", err)
	}
}
