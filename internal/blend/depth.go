package blend

// DepthFunc is one of the depth comparison predicates. The rasterizer calls
// it as depthFunc(zNew, zStored); a true result authorizes the write.
type DepthFunc uint8

const (
	Less DepthFunc = iota
	LEqual
	Greater
	GEqual
	Equal
	NotEqual
	Always
	Never
)

func (f DepthFunc) String() string {
	switch f {
	case Less:
		return "LESS"
	case LEqual:
		return "LEQUAL"
	case Greater:
		return "GREATER"
	case GEqual:
		return "GEQUAL"
	case Equal:
		return "EQUAL"
	case NotEqual:
		return "NOTEQUAL"
	case Always:
		return "ALWAYS"
	case Never:
		return "NEVER"
	default:
		return "UNKNOWN_DEPTH_FUNC"
	}
}

// DepthPredicate decides whether zNew passes against zStored.
type DepthPredicate func(zNew, zStored float32) bool

// LookupDepth returns the predicate for f, defaulting to Less (the GL
// default depth function) for an unrecognized value.
func LookupDepth(f DepthFunc) DepthPredicate {
	switch f {
	case LEqual:
		return func(n, s float32) bool { return n <= s }
	case Greater:
		return func(n, s float32) bool { return n > s }
	case GEqual:
		return func(n, s float32) bool { return n >= s }
	case Equal:
		return func(n, s float32) bool { return n == s }
	case NotEqual:
		return func(n, s float32) bool { return n != s }
	case Always:
		return func(n, s float32) bool { return true }
	case Never:
		return func(n, s float32) bool { return false }
	default:
		return func(n, s float32) bool { return n < s }
	}
}
