package glsafe

import (
	"github.com/gogpu/glsafe/gl"
)

// Renderbuffer is an application-owned renderbuffer object. There is a
// single renderbuffer target, so no target fixation applies.
type Renderbuffer struct {
	name gl.Renderbuffer
}

// Name returns the raw handle. Using it to issue native calls directly
// bypasses all state tracking.
func (r *Renderbuffer) Name() gl.Renderbuffer { return r.name }

// ActiveRenderbuffer proves access to the renderbuffer binding slot.
type ActiveRenderbuffer struct {
	ctx *Context
	gen uint64
	rb  *Renderbuffer // nil when the slot holds the default (no) renderbuffer
}

// BindRenderbuffer binds rb to the renderbuffer slot and returns the
// access token. The previous token, if any, is invalidated.
func (c *Context) BindRenderbuffer(rb *Renderbuffer) (*ActiveRenderbuffer, error) {
	if rb == nil {
		return nil, ErrNilObject
	}
	gen := c.renderbuffer.bump()
	c.f.BindRenderbuffer(gl.RENDERBUFFER, rb.name)
	return &ActiveRenderbuffer{ctx: c, gen: gen, rb: rb}, nil
}

// UnbindRenderbuffer binds the zero renderbuffer, leaving the slot
// empty.
func (c *Context) UnbindRenderbuffer() *ActiveRenderbuffer {
	gen := c.renderbuffer.bump()
	c.f.BindRenderbuffer(gl.RENDERBUFFER, gl.Renderbuffer{})
	return &ActiveRenderbuffer{ctx: c, gen: gen}
}

// Renderbuffer returns the occupant at bind time, or nil for an unbound
// slot.
func (a *ActiveRenderbuffer) Renderbuffer() *Renderbuffer { return a.rb }

func (a *ActiveRenderbuffer) occupied(op string) error {
	if err := a.ctx.renderbuffer.stale(a.gen); err != nil {
		return err
	}
	if a.rb == nil {
		return &InvalidStateError{
			Object: "renderbuffer slot",
			Op:     op,
			Reason: "no renderbuffer is bound to the slot",
		}
	}
	return nil
}

// Storage allocates the renderbuffer's datastore.
func (a *ActiveRenderbuffer) Storage(internalFormat gl.Enum, width, height int) error {
	if err := a.occupied("Storage"); err != nil {
		return err
	}
	a.ctx.f.RenderbufferStorage(gl.RENDERBUFFER, internalFormat, width, height)
	return nil
}

// StorageMultisample allocates a multisampled datastore.
func (a *ActiveRenderbuffer) StorageMultisample(samples int, internalFormat gl.Enum, width, height int) error {
	if err := a.occupied("StorageMultisample"); err != nil {
		return err
	}
	if samples < 0 {
		return &InvalidStateError{
			Object: "renderbuffer slot",
			Op:     "StorageMultisample",
			Reason: "negative sample count",
		}
	}
	a.ctx.f.RenderbufferStorageMultisample(gl.RENDERBUFFER, samples, internalFormat, width, height)
	return nil
}
