package glsafe

import (
	"github.com/gogpu/glsafe/gl"
)

// VertexArray is an application-owned vertex array object. It captures
// attribute layout and the element-array buffer binding.
type VertexArray struct {
	name gl.VertexArray
}

// Name returns the raw handle.
func (v *VertexArray) Name() gl.VertexArray { return v.name }

// ActiveVertexArray proves access to the vertex array slot.
type ActiveVertexArray struct {
	ctx *Context
	gen uint64
	va  *VertexArray // nil when the default vertex array is bound
}

// BindVertexArray binds va to the vertex array slot and returns the
// access token. The element-array buffer binding is part of vertex
// array state, so this also invalidates any outstanding
// ELEMENT_ARRAY_BUFFER token: the slot's occupant just changed to
// whatever va captured.
func (c *Context) BindVertexArray(va *VertexArray) (*ActiveVertexArray, error) {
	if va == nil {
		return nil, ErrNilObject
	}
	gen := c.vertexArray.bump()
	c.buffers[ElementArrayBuffer].bump()
	c.f.BindVertexArray(va.name)
	return &ActiveVertexArray{ctx: c, gen: gen, va: va}, nil
}

// UnbindVertexArray binds the default vertex array. Like BindVertexArray
// this disturbs the ELEMENT_ARRAY_BUFFER slot.
func (c *Context) UnbindVertexArray() *ActiveVertexArray {
	gen := c.vertexArray.bump()
	c.buffers[ElementArrayBuffer].bump()
	c.f.BindVertexArray(gl.VertexArray{})
	return &ActiveVertexArray{ctx: c, gen: gen}
}

// VertexArray returns the occupant at bind time, or nil for the default
// vertex array.
func (a *ActiveVertexArray) VertexArray() *VertexArray { return a.va }

func (a *ActiveVertexArray) live() error {
	return a.ctx.vertexArray.stale(a.gen)
}

func (a *ActiveVertexArray) occupied(op string) error {
	if err := a.live(); err != nil {
		return err
	}
	if a.va == nil {
		return &InvalidStateError{
			Object: "vertex array slot",
			Op:     op,
			Reason: "the default vertex array is bound",
		}
	}
	return nil
}

// attribSource verifies that src is a live ARRAY_BUFFER token holding a
// real buffer. The native attribute pointer call captures whatever is
// bound to ARRAY_BUFFER at call time, so the token is the proof that
// the intended buffer is the one captured.
func (a *ActiveVertexArray) attribSource(op string, src *ActiveBuffer) error {
	if src == nil {
		return ErrNilObject
	}
	if err := src.occupied(op); err != nil {
		return err
	}
	if src.target != ArrayBuffer {
		return &InvalidStateError{
			Object: "buffer slot " + src.target.String(),
			Op:     op,
			Reason: "attribute sources come from the ARRAY_BUFFER slot",
		}
	}
	return nil
}

// Attribute defines a floating-point vertex attribute sourced from src
// and enables it. Integer data types are converted to float, normalized
// when requested.
func (a *ActiveVertexArray) Attribute(index uint32, size int, ty gl.Enum, normalized bool, stride, offset int, src *ActiveBuffer) error {
	if err := a.occupied("Attribute"); err != nil {
		return err
	}
	if err := a.attribSource("Attribute", src); err != nil {
		return err
	}
	a.ctx.f.VertexAttribPointer(index, size, ty, normalized, stride, offset)
	a.ctx.f.EnableVertexAttribArray(index)
	return nil
}

// IntAttribute defines an integer vertex attribute sourced from src and
// enables it. Values reach the shader as ints, without conversion.
func (a *ActiveVertexArray) IntAttribute(index uint32, size int, ty gl.Enum, stride, offset int, src *ActiveBuffer) error {
	if err := a.occupied("IntAttribute"); err != nil {
		return err
	}
	if err := a.attribSource("IntAttribute", src); err != nil {
		return err
	}
	a.ctx.f.VertexAttribIPointer(index, size, ty, stride, offset)
	a.ctx.f.EnableVertexAttribArray(index)
	return nil
}

// DisableAttribute disables a previously defined attribute.
func (a *ActiveVertexArray) DisableAttribute(index uint32) error {
	if err := a.occupied("DisableAttribute"); err != nil {
		return err
	}
	a.ctx.f.DisableVertexAttribArray(index)
	return nil
}
