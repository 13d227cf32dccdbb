// Package pixelfmt implements the pixel format registry: a 2-D table of
// getter/setter closures keyed by (PixelFormat, DataType) that converts
// between a caller's arbitrary framebuffer byte layout and the internal
// 8-bit RGBA working color.
//
// The table is built once, at package init, and bound into local variables
// by the pixel loop before it runs — never re-dispatched per pixel. This is
// the "bind once outside the loop" contract spec.md calls out as the reason
// this shape measurably outperforms a switch-per-pixel dispatch.
package pixelfmt

// Format identifies the channel layout of a pixel.
type Format uint8

const (
	Red Format = iota
	Green
	Blue
	Alpha
	Luminance
	LuminanceAlpha
	RGB
	RGBA
	BGR
	BGRA

	numFormats
)

func (f Format) String() string {
	switch f {
	case Red:
		return "RED"
	case Green:
		return "GREEN"
	case Blue:
		return "BLUE"
	case Alpha:
		return "ALPHA"
	case Luminance:
		return "LUMINANCE"
	case LuminanceAlpha:
		return "LUMINANCE_ALPHA"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	case BGR:
		return "BGR"
	case BGRA:
		return "BGRA"
	default:
		return "UNKNOWN_FORMAT"
	}
}

// DataType identifies the scalar storage type of each channel.
type DataType uint8

const (
	UnsignedByte DataType = iota
	Byte
	UnsignedShort
	Short
	UnsignedInt
	Int
	HalfFloat
	Float
	Double
	UnsignedShort565
	UnsignedShort5551
	UnsignedShort4444

	numTypes
)

func (t DataType) String() string {
	switch t {
	case UnsignedByte:
		return "UNSIGNED_BYTE"
	case Byte:
		return "BYTE"
	case UnsignedShort:
		return "UNSIGNED_SHORT"
	case Short:
		return "SHORT"
	case UnsignedInt:
		return "UNSIGNED_INT"
	case Int:
		return "INT"
	case HalfFloat:
		return "HALF_FLOAT"
	case Float:
		return "FLOAT"
	case Double:
		return "DOUBLE"
	case UnsignedShort565:
		return "UNSIGNED_SHORT_5_6_5"
	case UnsignedShort5551:
		return "UNSIGNED_SHORT_5_5_5_1"
	case UnsignedShort4444:
		return "UNSIGNED_SHORT_4_4_4_4"
	default:
		return "UNKNOWN_TYPE"
	}
}

// isPacked reports whether t packs all channels of one pixel into a single
// scalar (so it is only meaningful for formats with a matching channel
// count: 565/5551/4444 pack exactly 3 or 4 channels into one uint16).
func (t DataType) isPacked() bool {
	switch t {
	case UnsignedShort565, UnsignedShort5551, UnsignedShort4444:
		return true
	default:
		return false
	}
}

// channelCount returns how many channels a format carries.
func (f Format) channelCount() int {
	switch f {
	case Red, Green, Blue, Alpha, Luminance:
		return 1
	case LuminanceAlpha:
		return 2
	case RGB, BGR:
		return 3
	case RGBA, BGRA:
		return 4
	default:
		return 0
	}
}
