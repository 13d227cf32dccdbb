package pixelfmt

import (
	"encoding/binary"
	"math"
)

// Getter reads one pixel at offset (in bytes) from buf and returns it as a
// working Color.
type Getter func(buf []byte, offset int) Color

// Setter writes c into buf at offset (in bytes).
type Setter func(buf []byte, offset int, c Color)

// entry is one cell of the (Format, DataType) table.
type entry struct {
	bytesPerPixel int
	get           Getter
	set           Setter
}

var table [numFormats][numTypes]*entry

// Lookup returns the bound getter and setter for (format, dtype), the pixel
// size in bytes, and whether the combination is valid. An invalid
// combination returns a nil getter/setter, matching spec.md's INVALID_ENUM
// contract: callers are expected to signal that error code themselves.
func Lookup(format Format, dtype DataType) (get Getter, set Setter, bytesPerPixel int, ok bool) {
	if int(format) >= int(numFormats) || int(dtype) >= int(numTypes) {
		return nil, nil, 0, false
	}
	e := table[format][dtype]
	if e == nil {
		return nil, nil, 0, false
	}
	return e.get, e.set, e.bytesPerPixel, true
}

// scaleUp maps an 8-bit channel into an N-bit unsigned value, where
// maxOut = 2^N - 1.
func scaleUp(v uint8, maxOut uint64) uint64 {
	return (uint64(v)*maxOut + 127) / 255
}

// scaleDown maps an N-bit unsigned value (maxIn = 2^N - 1) back to 8 bits.
func scaleDown(v, maxIn uint64) uint8 {
	if maxIn == 0 {
		return 0
	}
	return uint8((v*255 + maxIn/2) / maxIn)
}

func init() {
	registerByteFormats()
	registerShortFormats()
	registerIntFormats()
	registerFloatFormats()
	registerPackedFormats()
}

// registerChannelEntry builds get/set closures for the single-channel formats
// (RED, GREEN, BLUE, ALPHA, LUMINANCE) given how to read/write one channel
// worth of bytes, and where that channel lands in Color.
func registerChannelEntry(f Format, dtype DataType, bpp int, readCh func(buf []byte, off int) uint8, writeCh func(buf []byte, off int, v uint8)) {
	var get Getter
	var set Setter

	switch f {
	case Red:
		get = func(buf []byte, off int) Color { return Color{R: readCh(buf, off), G: 0, B: 0, A: 255} }
		set = func(buf []byte, off int, c Color) { writeCh(buf, off, c.R) }
	case Green:
		get = func(buf []byte, off int) Color { return Color{G: readCh(buf, off), A: 255} }
		set = func(buf []byte, off int, c Color) { writeCh(buf, off, c.G) }
	case Blue:
		get = func(buf []byte, off int) Color { return Color{B: readCh(buf, off), A: 255} }
		set = func(buf []byte, off int, c Color) { writeCh(buf, off, c.B) }
	case Alpha:
		get = func(buf []byte, off int) Color { return Color{R: 255, G: 255, B: 255, A: readCh(buf, off)} }
		set = func(buf []byte, off int, c Color) { writeCh(buf, off, c.A) }
	case Luminance:
		get = func(buf []byte, off int) Color {
			y := readCh(buf, off)
			return Color{R: y, G: y, B: y, A: 255}
		}
		set = func(buf []byte, off int, c Color) { writeCh(buf, off, luma(c)) }
	default:
		return
	}
	table[f][dtype] = &entry{bytesPerPixel: bpp, get: get, set: set}
}

// luma computes Y = 0.299R + 0.587G + 0.114B and rounds to uint8.
func luma(c Color) uint8 {
	y := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	if y < 0 {
		y = 0
	}
	if y > 255 {
		y = 255
	}
	return uint8(y + 0.5)
}

func registerLuminanceAlpha(dtype DataType, bpp int, readCh func(buf []byte, off int) uint8, writeCh func(buf []byte, off int, v uint8)) {
	get := func(buf []byte, off int) Color {
		y := readCh(buf, off)
		a := readCh(buf, off+bpp)
		return Color{R: y, G: y, B: y, A: a}
	}
	set := func(buf []byte, off int, c Color) {
		writeCh(buf, off, luma(c))
		writeCh(buf, off+bpp, c.A)
	}
	table[LuminanceAlpha][dtype] = &entry{bytesPerPixel: bpp * 2, get: get, set: set}
}

func registerRGBFamily(f Format, dtype DataType, bpp int, readCh func(buf []byte, off int) uint8, writeCh func(buf []byte, off int, v uint8)) {
	channels := f.channelCount()
	bgr := f == BGR || f == BGRA
	hasAlpha := f == RGBA || f == BGRA

	get := func(buf []byte, off int) Color {
		c0 := readCh(buf, off)
		c1 := readCh(buf, off+bpp)
		c2 := readCh(buf, off+2*bpp)
		a := uint8(255)
		if hasAlpha {
			a = readCh(buf, off+3*bpp)
		}
		if bgr {
			return Color{R: c2, G: c1, B: c0, A: a}
		}
		return Color{R: c0, G: c1, B: c2, A: a}
	}
	set := func(buf []byte, off int, c Color) {
		c0, c2 := c.R, c.B
		if bgr {
			c0, c2 = c.B, c.R
		}
		writeCh(buf, off, c0)
		writeCh(buf, off+bpp, c.G)
		writeCh(buf, off+2*bpp, c2)
		if hasAlpha {
			writeCh(buf, off+3*bpp, c.A)
		}
	}
	table[f][dtype] = &entry{bytesPerPixel: bpp * channels, get: get, set: set}
}

func registerAllFormats(dtype DataType, bpp int, readCh func(buf []byte, off int) uint8, writeCh func(buf []byte, off int, v uint8)) {
	for _, f := range []Format{Red, Green, Blue, Alpha, Luminance} {
		registerChannelEntry(f, dtype, bpp, readCh, writeCh)
	}
	registerLuminanceAlpha(dtype, bpp, readCh, writeCh)
	for _, f := range []Format{RGB, RGBA, BGR, BGRA} {
		registerRGBFamily(f, dtype, bpp, readCh, writeCh)
	}
}

func registerByteFormats() {
	readU8 := func(buf []byte, off int) uint8 { return buf[off] }
	writeU8 := func(buf []byte, off int, v uint8) { buf[off] = v }
	registerAllFormats(UnsignedByte, 1, readU8, writeU8)

	// Signed BYTE: round-trips exactly via a +128 bias, the same range
	// remap used by OpenGL's signed-normalized byte formats.
	readS8 := func(buf []byte, off int) uint8 { return uint8(int32(int8(buf[off])) + 128) }
	writeS8 := func(buf []byte, off int, v uint8) { buf[off] = byte(int8(int32(v) - 128)) }
	registerAllFormats(Byte, 1, readS8, writeS8)
}

func registerShortFormats() {
	const maxU16 = 65535
	readU16 := func(buf []byte, off int) uint8 {
		return scaleDown(uint64(binary.LittleEndian.Uint16(buf[off:])), maxU16)
	}
	writeU16 := func(buf []byte, off int, v uint8) {
		binary.LittleEndian.PutUint16(buf[off:], uint16(scaleUp(v, maxU16)))
	}
	registerAllFormats(UnsignedShort, 2, readU16, writeU16)

	readS16 := func(buf []byte, off int) uint8 {
		raw := int32(int16(binary.LittleEndian.Uint16(buf[off:])))
		return scaleDown(uint64(raw+32768), maxU16)
	}
	writeS16 := func(buf []byte, off int, v uint8) {
		raw := int32(scaleUp(v, maxU16)) - 32768
		binary.LittleEndian.PutUint16(buf[off:], uint16(int16(raw)))
	}
	registerAllFormats(Short, 2, readS16, writeS16)

	readHalf := func(buf []byte, off int) uint8 {
		h := binary.LittleEndian.Uint16(buf[off:])
		f := halfToFloat32(h)
		return clampF32ToU8(f)
	}
	writeHalf := func(buf []byte, off int, v uint8) {
		f := float32(v) / 255
		binary.LittleEndian.PutUint16(buf[off:], float32ToHalf(f))
	}
	registerAllFormats(HalfFloat, 2, readHalf, writeHalf)
}

func registerIntFormats() {
	const maxU32 = 4294967295
	readU32 := func(buf []byte, off int) uint8 {
		return scaleDown(uint64(binary.LittleEndian.Uint32(buf[off:])), maxU32)
	}
	writeU32 := func(buf []byte, off int, v uint8) {
		binary.LittleEndian.PutUint32(buf[off:], uint32(scaleUp(v, maxU32)))
	}
	registerAllFormats(UnsignedInt, 4, readU32, writeU32)

	readS32 := func(buf []byte, off int) uint8 {
		raw := int64(int32(binary.LittleEndian.Uint32(buf[off:])))
		return scaleDown(uint64(raw+1<<31), maxU32)
	}
	writeS32 := func(buf []byte, off int, v uint8) {
		raw := int64(scaleUp(v, maxU32)) - 1<<31
		binary.LittleEndian.PutUint32(buf[off:], uint32(int32(raw)))
	}
	registerAllFormats(Int, 4, readS32, writeS32)
}

func clampF32ToU8(f float32) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}

func registerFloatFormats() {
	readF32 := func(buf []byte, off int) uint8 {
		bits := binary.LittleEndian.Uint32(buf[off:])
		return clampF32ToU8(math.Float32frombits(bits))
	}
	writeF32 := func(buf []byte, off int, v uint8) {
		binary.LittleEndian.PutUint32(buf[off:], math.Float32bits(float32(v)/255))
	}
	registerAllFormats(Float, 4, readF32, writeF32)

	readF64 := func(buf []byte, off int) uint8 {
		bits := binary.LittleEndian.Uint64(buf[off:])
		return clampF32ToU8(float32(math.Float64frombits(bits)))
	}
	writeF64 := func(buf []byte, off int, v uint8) {
		binary.LittleEndian.PutUint64(buf[off:], math.Float64bits(float64(v)/255))
	}
	registerAllFormats(Double, 8, readF64, writeF64)
}

// registerPackedFormats wires the 5-6-5 / 5-5-5-1 / 4-4-4-4 packed types.
// These only make sense for the format whose channel count they match:
// 565 has no alpha (RGB only), 5551 and 4444 both carry alpha (RGBA only).
func registerPackedFormats() {
	table[RGB][UnsignedShort565] = &entry{
		bytesPerPixel: 2,
		get: func(buf []byte, off int) Color {
			return unpack565(binary.LittleEndian.Uint16(buf[off:]))
		},
		set: func(buf []byte, off int, c Color) {
			binary.LittleEndian.PutUint16(buf[off:], pack565(c))
		},
	}
	table[RGBA][UnsignedShort5551] = &entry{
		bytesPerPixel: 2,
		get: func(buf []byte, off int) Color {
			return unpack5551(binary.LittleEndian.Uint16(buf[off:]))
		},
		set: func(buf []byte, off int, c Color) {
			binary.LittleEndian.PutUint16(buf[off:], pack5551(c))
		},
	}
	table[RGBA][UnsignedShort4444] = &entry{
		bytesPerPixel: 2,
		get: func(buf []byte, off int) Color {
			return unpack4444(binary.LittleEndian.Uint16(buf[off:]))
		},
		set: func(buf []byte, off int, c Color) {
			binary.LittleEndian.PutUint16(buf[off:], pack4444(c))
		},
	}
}
