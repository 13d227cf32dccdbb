package gg

import "github.com/gogpu/swgl/internal/pfm"

// MatrixMode selects which matrix stack subsequent matrix verbs
// (LoadIdentity, MultMatrix, Translate, Scale, Rotate, PushMatrix,
// PopMatrix) apply to.
type MatrixMode int

const (
	ModelView MatrixMode = iota
	Projection
	TextureMatrix
)

// boundedStack is a fixed-depth push-down stack of matrices, used for the
// projection, model, and texture stacks. Push past maxDepth or Pop below
// depth 1 reports StackOverflow/StackUnderflow on the owning context
// instead of panicking, matching spec's sticky-error propagation policy.
type boundedStack struct {
	frames   []pfm.Mat4
	maxDepth int
}

func newBoundedStack(maxDepth int) *boundedStack {
	return &boundedStack{frames: []pfm.Mat4{pfm.Identity4()}, maxDepth: maxDepth}
}

func (s *boundedStack) top() pfm.Mat4        { return s.frames[len(s.frames)-1] }
func (s *boundedStack) setTop(m pfm.Mat4)    { s.frames[len(s.frames)-1] = m }
func (s *boundedStack) push() bool {
	if len(s.frames) >= s.maxDepth {
		return false
	}
	s.frames = append(s.frames, s.top())
	return true
}
func (s *boundedStack) pop() bool {
	if len(s.frames) <= 1 {
		return false
	}
	s.frames = s.frames[:len(s.frames)-1]
	return true
}

// matrixState holds the four named matrices and their bounded stacks.
//
// The model-view split follows spec's data model literally: there is a
// single "view" matrix (the camera transform, not stacked on its own)
// and a bounded "model" stack that only engages the first time the
// caller pushes while in ModelView mode. Until then, ModelView verbs
// (Translate/Scale/Rotate/MultMatrix/LoadIdentity) act directly on view;
// once engaged, they act on the top of the model stack, and view is left
// untouched by further pushes — mirroring how a fixed-function pipeline
// keeps the camera fixed across nested per-object PushMatrix calls.
type matrixState struct {
	mode MatrixMode

	view            pfm.Mat4
	model           *boundedStack
	modelMatrixUsed bool

	projection *boundedStack
	texture    *boundedStack

	mvp          pfm.Mat4
	normalMatrix pfm.Mat4
}

func newMatrixState() *matrixState {
	return &matrixState{
		view:       pfm.Identity4(),
		model:      newBoundedStack(MaxModelviewStackSize),
		projection: newBoundedStack(MaxProjectionStackSize),
		texture:    newBoundedStack(MaxTextureStackSize),
		mvp:        pfm.Identity4(),
	}
}

// modelTop returns the model matrix currently in effect (identity until
// modelMatrixUsed).
func (s *matrixState) modelTop() pfm.Mat4 {
	if !s.modelMatrixUsed {
		return pfm.Identity4()
	}
	return s.model.top()
}

// current returns the stack the active MatrixMode addresses, and the
// current top matrix within it (for ModelView, the view or model matrix
// per the engagement rule above).
func (s *matrixState) current() pfm.Mat4 {
	switch s.mode {
	case Projection:
		return s.projection.top()
	case TextureMatrix:
		return s.texture.top()
	default:
		if s.modelMatrixUsed {
			return s.model.top()
		}
		return s.view
	}
}

func (s *matrixState) setCurrent(m pfm.Mat4) {
	switch s.mode {
	case Projection:
		s.projection.setTop(m)
	case TextureMatrix:
		s.texture.setTop(m)
	default:
		if s.modelMatrixUsed {
			s.model.setTop(m)
		} else {
			s.view = m
		}
	}
}

// push returns false (StackOverflow) if the active stack is already at
// its configured maximum depth. ModelView's first push engages the
// model matrix, seeded from the identity, per the engagement rule.
func (s *matrixState) push() bool {
	switch s.mode {
	case Projection:
		return s.projection.push()
	case TextureMatrix:
		return s.texture.push()
	default:
		if !s.modelMatrixUsed {
			s.modelMatrixUsed = true
			return true
		}
		return s.model.push()
	}
}

func (s *matrixState) pop() bool {
	switch s.mode {
	case Projection:
		return s.projection.pop()
	case TextureMatrix:
		return s.texture.pop()
	default:
		if !s.modelMatrixUsed {
			return false
		}
		if len(s.model.frames) <= 1 {
			s.modelMatrixUsed = false
			s.model.frames = s.model.frames[:1]
			s.model.setTop(pfm.Identity4())
			return true
		}
		return s.model.pop()
	}
}

// recompute derives mvp = projection * view * model, and, when
// lighting is needed, normal_matrix = transpose(inverse(model)).
func (s *matrixState) recompute(lightingEnabled bool) {
	s.mvp = s.projection.top().Mul(s.view).Mul(s.modelTop())
	if lightingEnabled {
		s.normalMatrix = pfm.NormalMatrix(s.modelTop())
	}
}
