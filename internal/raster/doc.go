// Package raster implements the rasterization stage: triangle, line and
// point fill over a clipped, perspective-divided polygon.
//
// Triangle (triangle.go) is the primary path: edge-function barycentric
// traversal with perspective-correct attribute interpolation. FillScanline
// (scanline.go) is an independently-derived top/bottom trapezoid walk over
// the same clipped, perspective-divided vertices, selectable at runtime via
// Context.SetRasterStrategy and used to cross-check Triangle's coverage.
package raster
