package glsafe

import (
	"github.com/gogpu/glsafe/gl"
)

// slot is one mutable global binding point of the native context. The
// occupant itself is never stored; tokens prove access instead. The
// generation counter is the runtime stand-in for exclusive borrows: every
// bind, unbind, or aliasing disturbance increments it, ending the
// validity of all tokens issued against earlier generations.
type slot struct {
	label string
	gen   uint64
}

func (s *slot) bump() uint64 {
	s.gen++
	return s.gen
}

// stale reports whether a token issued at generation g has been
// superseded.
func (s *slot) stale(g uint64) error {
	if s.gen != g {
		return &StaleBindingError{Slot: s.label}
	}
	return nil
}

// Context is the root owner of every binding slot of one native GL
// context. All tokens are obtained from it, and any call that disturbs a
// slot goes through it, which is what keeps the generation counters
// honest.
//
// Construct at most one Context per native context, on the thread where
// that context is current, and keep it there: Context performs no
// locking and is not safe for concurrent use. See the package
// documentation for the full set of assumptions.
type Context struct {
	f gl.Functions

	buffers      [numBufferTargets]slot
	textures     [numTextureKinds]slot
	activeUnit   int
	framebuffers [2]slot // indexed by FramebufferTarget
	renderbuffer slot
	vertexArray  slot
	program      slot
}

// Current wraps the GL context that is current on the calling thread.
// The wrapper itself issues no native calls; it only establishes the
// slot registry.
//
// The caller must guarantee that f is backed by a current GL ES 3.x
// context, and that no other Context exists for the same native context.
// Objects derived from one Context must not be used with another.
func Current(f gl.Functions) (*Context, error) {
	if f == nil {
		return nil, ErrNoFunctions
	}
	c := &Context{f: f}
	for t := BufferTarget(0); t < numBufferTargets; t++ {
		c.buffers[t].label = "buffer(" + t.String() + ")"
	}
	for k := TextureKind(0); k < numTextureKinds; k++ {
		c.textures[k].label = "texture(" + k.String() + ")"
	}
	c.framebuffers[DrawFramebuffer].label = "framebuffer(DRAW_FRAMEBUFFER)"
	c.framebuffers[ReadFramebuffer].label = "framebuffer(READ_FRAMEBUFFER)"
	c.renderbuffer.label = "renderbuffer"
	c.vertexArray.label = "vertex array"
	c.program.label = "program"
	return c, nil
}

// Functions exposes the underlying native call surface. Going around the
// safety layer through it invalidates no tokens and updates no lifecycle
// tags; callers doing so take responsibility for the resulting state.
func (c *Context) Functions() gl.Functions {
	return c.f
}
