package gg

import "github.com/gogpu/swgl/internal/assemble"

// AttribPointer describes one vertex attribute array: Size components of
// 32-bit floats per vertex, Stride float32 elements apart, starting at
// element 0 of Data.
// Unlike the classic glVertexPointer-style API this package only ever
// reads float32 data; the byte-buffer-plus-type-tag generality a driver
// needs to also accept bytes/shorts/ints/doubles has no caller in this
// pipeline, since VertexN/ColorN/Normal/TexCoord already hand the
// rasterizer plain float32s.
type AttribPointer struct {
	Size   int // 2, 3 or 4 components
	Stride int // components per vertex record; 0 means tightly packed (=Size)
	Data   []float32
}

func (a AttribPointer) at(index int) []float32 {
	stride := a.Stride
	if stride == 0 {
		stride = a.Size
	}
	off := index * stride
	if off+a.Size > len(a.Data) {
		return nil
	}
	return a.Data[off : off+a.Size]
}

// VertexPointer, NormalPointer, TexCoordPointer and ColorPointer install
// the attribute arrays DrawArrays/DrawElements read from. Each requires
// its matching *ArrayState bit to be enabled.
func (c *Context) VertexPointer(size, stride int, data []float32) {
	c.positions = AttribPointer{Size: size, Stride: stride, Data: data}
}
func (c *Context) NormalPointer(stride int, data []float32) {
	c.normals = AttribPointer{Size: 3, Stride: stride, Data: data}
}
func (c *Context) TexCoordPointer(stride int, data []float32) {
	c.texcoords = AttribPointer{Size: 2, Stride: stride, Data: data}
}
func (c *Context) ColorPointer(size, stride int, data []float32) {
	c.colors = AttribPointer{Size: size, Stride: stride, Data: data}
}

// DrawArrays walks count consecutive records starting at first out of the
// bound attribute arrays, submitting each as if through Vertex*/Normal3f/
// TexCoord2f/Color4f followed by the topology's End.
func (c *Context) DrawArrays(mode assemble.Mode, first, count int) {
	if c.stateBits&VertexArrayState == 0 {
		c.setError(InvalidOperation)
		return
	}
	c.Begin(mode)
	for i := first; i < first+count; i++ {
		c.drawIndexed(i)
	}
	c.End()
}

// DrawElements is DrawArrays indexed through indices instead of a
// contiguous run.
func (c *Context) DrawElements(mode assemble.Mode, indices []int) {
	if c.stateBits&VertexArrayState == 0 {
		c.setError(InvalidOperation)
		return
	}
	c.Begin(mode)
	for _, i := range indices {
		c.drawIndexed(i)
	}
	c.End()
}

func (c *Context) drawIndexed(i int) {
	if c.stateBits&NormalArrayState != 0 {
		if v := c.normals.at(i); v != nil {
			c.Normal3f(v[0], v[1], v[2])
		}
	}
	if c.stateBits&TexCoordArrayState != 0 {
		if v := c.texcoords.at(i); v != nil {
			c.TexCoord2f(v[0], v[1])
		}
	}
	if c.stateBits&ColorArrayState != 0 {
		if v := c.colors.at(i); v != nil {
			if len(v) >= 4 {
				c.Color4f(v[0], v[1], v[2], v[3])
			} else {
				c.Color3f(v[0], v[1], v[2])
			}
		}
	}
	v := c.positions.at(i)
	if v == nil {
		return
	}
	switch len(v) {
	case 2:
		c.Vertex2f(v[0], v[1])
	case 3:
		c.Vertex3f(v[0], v[1], v[2])
	default:
		c.Vertex4f(v[0], v[1], v[2], v[3])
	}
}
