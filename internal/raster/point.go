package raster

import "github.com/gogpu/swgl/internal/clip"

// Point rasterizes a single vertex as either one pixel (pointSize <= 1)
// or a disc of radius pointSize/2 in screen space, with an optional
// per-pixel depth test.
func Point(v clip.Projected, pointSize float32, depthTest DepthTest, shader Shader, blendFn Blend) {
	cx, cy := v.Pos[0], v.Pos[1]

	if pointSize <= 1 {
		plotLinePoint(v, depthTest, shader, blendFn)
		return
	}

	radius := pointSize / 2
	minX := int(cx - radius)
	maxX := int(cx + radius)
	minY := int(cy - radius)
	maxY := int(cy + radius)

	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			dx := float32(x) + 0.5 - cx
			dy := float32(y) + 0.5 - cy
			if dx*dx+dy*dy > radius*radius {
				continue
			}
			sample := v
			sample.Pos[0] = float32(x)
			sample.Pos[1] = float32(y)
			plotLinePoint(sample, depthTest, shader, blendFn)
		}
	}
}
