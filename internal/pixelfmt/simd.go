package pixelfmt

// Batch8 holds eight working colors, the lane width this registry's batch
// getters/setters operate on. The batch functions below call the scalar
// getter/setter once per lane.
type Batch8 [8]Color

// GetterBatch8 reads eight consecutive pixels starting at offset.
type GetterBatch8 func(buf []byte, offset int) Batch8

// SetterBatch8 writes eight consecutive pixels starting at offset, honoring
// a per-lane write mask (false lanes are left untouched in buf).
type SetterBatch8 func(buf []byte, offset int, colors Batch8, mask [8]bool)

// LookupBatch8 returns batch-of-8 wrappers around the scalar getter/setter
// for (format, dtype). It is the "parallel SIMD variant" spec.md requires:
// the same (format, type) contract as Lookup, specialized for writing eight
// framebuffer pixels in one call instead of one pixel at a time.
func LookupBatch8(format Format, dtype DataType) (GetterBatch8, SetterBatch8, bool) {
	get, set, bpp, ok := Lookup(format, dtype)
	if !ok {
		return nil, nil, false
	}

	getBatch := func(buf []byte, offset int) Batch8 {
		var out Batch8
		for i := 0; i < 8; i++ {
			out[i] = get(buf, offset+i*bpp)
		}
		return out
	}
	setBatch := func(buf []byte, offset int, colors Batch8, mask [8]bool) {
		for i := 0; i < 8; i++ {
			if mask[i] {
				set(buf, offset+i*bpp, colors[i])
			}
		}
	}
	return getBatch, setBatch, true
}
