package glsafe

import (
	"github.com/gogpu/glsafe/gl"
)

// BufferTarget selects one of the eight buffer binding slots.
type BufferTarget uint8

const (
	// ArrayBuffer is the source of vertex data for attributes defined
	// through a vertex array object.
	ArrayBuffer BufferTarget = iota
	// ElementArrayBuffer is the source of vertex indices for indexed
	// draws. Note this binding is captured by the bound vertex array
	// object: rebinding the VAO disturbs this slot.
	ElementArrayBuffer
	// CopyReadBuffer is a scratch slot for copies that should not
	// disturb other bindings.
	CopyReadBuffer
	// CopyWriteBuffer is a scratch slot for copies that should not
	// disturb other bindings.
	CopyWriteBuffer
	// PixelPackBuffer is the destination for image downloads.
	PixelPackBuffer
	// PixelUnpackBuffer is the source for image uploads.
	PixelUnpackBuffer
	// TransformFeedbackBuffer receives vertex shader output feedback.
	TransformFeedbackBuffer
	// UniformBuffer backs uniform blocks.
	UniformBuffer

	numBufferTargets
)

func (t BufferTarget) enum() gl.Enum {
	switch t {
	case ArrayBuffer:
		return gl.ARRAY_BUFFER
	case ElementArrayBuffer:
		return gl.ELEMENT_ARRAY_BUFFER
	case CopyReadBuffer:
		return gl.COPY_READ_BUFFER
	case CopyWriteBuffer:
		return gl.COPY_WRITE_BUFFER
	case PixelPackBuffer:
		return gl.PIXEL_PACK_BUFFER
	case PixelUnpackBuffer:
		return gl.PIXEL_UNPACK_BUFFER
	case TransformFeedbackBuffer:
		return gl.TRANSFORM_FEEDBACK_BUFFER
	default:
		return gl.UNIFORM_BUFFER
	}
}

func (t BufferTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ARRAY_BUFFER"
	case ElementArrayBuffer:
		return "ELEMENT_ARRAY_BUFFER"
	case CopyReadBuffer:
		return "COPY_READ_BUFFER"
	case CopyWriteBuffer:
		return "COPY_WRITE_BUFFER"
	case PixelPackBuffer:
		return "PIXEL_PACK_BUFFER"
	case PixelUnpackBuffer:
		return "PIXEL_UNPACK_BUFFER"
	case TransformFeedbackBuffer:
		return "TRANSFORM_FEEDBACK_BUFFER"
	case UniformBuffer:
		return "UNIFORM_BUFFER"
	default:
		return "BUFFER_TARGET(?)"
	}
}

// UsageFrequency hints how often a buffer's datastore will be respecified.
type UsageFrequency uint8

const (
	// StaticUsage: specified once, used many times.
	StaticUsage UsageFrequency = iota
	// StreamUsage: specified once, used a few times.
	StreamUsage
	// DynamicUsage: respecified repeatedly.
	DynamicUsage
)

// UsageNature hints the direction of data flow for a buffer's datastore.
type UsageNature uint8

const (
	// DrawUsage: written by the application, read by GL drawing.
	DrawUsage UsageNature = iota
	// ReadUsage: written by GL, read back by the application.
	ReadUsage
	// CopyUsage: written by GL, read by GL.
	CopyUsage
)

func usageEnum(f UsageFrequency, n UsageNature) gl.Enum {
	switch f {
	case StreamUsage:
		switch n {
		case ReadUsage:
			return gl.STREAM_READ
		case CopyUsage:
			return gl.STREAM_COPY
		default:
			return gl.STREAM_DRAW
		}
	case DynamicUsage:
		switch n {
		case ReadUsage:
			return gl.DYNAMIC_READ
		case CopyUsage:
			return gl.DYNAMIC_COPY
		default:
			return gl.DYNAMIC_DRAW
		}
	default:
		switch n {
		case ReadUsage:
			return gl.STATIC_READ
		case CopyUsage:
			return gl.STATIC_COPY
		default:
			return gl.STATIC_DRAW
		}
	}
}

// Buffer is an application-owned buffer object. A fresh buffer has no
// target; its first bind fixes the target kind permanently, matching the
// native rule that a buffer's first binding determines its internal
// layout. The fixation is a one-way lifecycle transition: binding the
// same buffer to any other target is rejected before reaching the driver.
type Buffer struct {
	name   gl.Buffer
	target BufferTarget
	fixed  bool
}

// Name returns the raw handle. Using it to issue native calls directly
// bypasses all state tracking.
func (b *Buffer) Name() gl.Buffer { return b.name }

// Target returns the fixed target kind, if the buffer has been bound.
func (b *Buffer) Target() (BufferTarget, bool) { return b.target, b.fixed }

// ActiveBuffer proves access to one buffer binding slot. It is valid
// until the Context rebinds that slot (or a slot aliasing it); after
// that every operation fails with *StaleBindingError.
type ActiveBuffer struct {
	ctx    *Context
	gen    uint64
	target BufferTarget
	buf    *Buffer // nil when the slot holds the default (no) buffer
}

// BindBuffer binds buf to the target's slot and returns the access
// token. The previous token for this slot, if any, is invalidated.
//
// If buf has never been bound, this fixes its target kind. Binding a
// buffer whose target kind is already fixed to a different target fails
// with *InvalidStateError, and the slot is left undisturbed.
func (c *Context) BindBuffer(target BufferTarget, buf *Buffer) (*ActiveBuffer, error) {
	if buf == nil {
		return nil, ErrNilObject
	}
	if buf.fixed && buf.target != target {
		return nil, &InvalidStateError{
			Object: "buffer fixed to " + buf.target.String(),
			Op:     "BindBuffer(" + target.String() + ")",
			Reason: "a buffer's target kind is fixed permanently by its first bind",
		}
	}
	buf.target = target
	buf.fixed = true
	s := &c.buffers[target]
	gen := s.bump()
	c.f.BindBuffer(target.enum(), buf.name)
	return &ActiveBuffer{ctx: c, gen: gen, target: target, buf: buf}, nil
}

// UnbindBuffer binds the zero buffer to the target's slot, leaving it
// empty. The returned token proves the slot holds no buffer; data
// operations on it fail.
func (c *Context) UnbindBuffer(target BufferTarget) *ActiveBuffer {
	s := &c.buffers[target]
	gen := s.bump()
	c.f.BindBuffer(target.enum(), gl.Buffer{})
	return &ActiveBuffer{ctx: c, gen: gen, target: target}
}

// Target returns the slot this token belongs to.
func (a *ActiveBuffer) Target() BufferTarget { return a.target }

// Buffer returns the occupant at bind time, or nil for an unbound slot.
func (a *ActiveBuffer) Buffer() *Buffer { return a.buf }

func (a *ActiveBuffer) live() error {
	return a.ctx.buffers[a.target].stale(a.gen)
}

// occupied verifies the token is live and the slot holds a real buffer.
func (a *ActiveBuffer) occupied(op string) error {
	if err := a.live(); err != nil {
		return err
	}
	if a.buf == nil {
		return &InvalidStateError{
			Object: "buffer slot " + a.target.String(),
			Op:     op,
			Reason: "no buffer is bound to the slot",
		}
	}
	return nil
}

// Data (re)allocates the buffer's datastore and fills it with data.
func (a *ActiveBuffer) Data(data []byte, freq UsageFrequency, nature UsageNature) error {
	if err := a.occupied("Data"); err != nil {
		return err
	}
	a.ctx.f.BufferData(a.target.enum(), data, usageEnum(freq, nature))
	return nil
}

// SubData overwrites a sub-range of the datastore starting at offset.
func (a *ActiveBuffer) SubData(offset int, data []byte) error {
	if err := a.occupied("SubData"); err != nil {
		return err
	}
	if offset < 0 {
		return &InvalidStateError{
			Object: "buffer slot " + a.target.String(),
			Op:     "SubData",
			Reason: "negative offset",
		}
	}
	a.ctx.f.BufferSubData(a.target.enum(), offset, data)
	return nil
}

// CopyFrom copies n bytes from src's occupant into this buffer. Both
// tokens must be live and hold real buffers. Neither range may extend
// past the end of its buffer; that remains a native error.
func (a *ActiveBuffer) CopyFrom(src *ActiveBuffer, readOffset, writeOffset, n int) error {
	if err := a.occupied("CopyFrom"); err != nil {
		return err
	}
	if err := src.occupied("CopyFrom"); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}
	a.ctx.f.CopyBufferSubData(src.target.enum(), a.target.enum(), readOffset, writeOffset, n)
	return nil
}

// CopyWithin copies n bytes inside this buffer's datastore. The source
// and destination ranges must not overlap; an overlapping copy is
// rejected before the driver sees it.
func (a *ActiveBuffer) CopyWithin(readOffset, writeOffset, n int) error {
	if n > 0 && readOffset < writeOffset+n && writeOffset < readOffset+n {
		return &InvalidStateError{
			Object: "buffer slot " + a.target.String(),
			Op:     "CopyWithin",
			Reason: "source and destination ranges overlap",
		}
	}
	return a.CopyFrom(a, readOffset, writeOffset, n)
}

// Len returns the current size of the datastore in bytes. The value is
// not cached; every call queries the driver.
func (a *ActiveBuffer) Len() (int, error) {
	if err := a.occupied("Len"); err != nil {
		return 0, err
	}
	return a.ctx.f.GetBufferParameteri(a.target.enum(), gl.BUFFER_SIZE), nil
}

// Usage returns the usage hints given at datastore allocation time.
func (a *ActiveBuffer) Usage() (UsageFrequency, UsageNature, error) {
	if err := a.occupied("Usage"); err != nil {
		return 0, 0, err
	}
	switch gl.Enum(a.ctx.f.GetBufferParameteri(a.target.enum(), gl.BUFFER_USAGE)) {
	case gl.STREAM_DRAW:
		return StreamUsage, DrawUsage, nil
	case gl.STREAM_READ:
		return StreamUsage, ReadUsage, nil
	case gl.STREAM_COPY:
		return StreamUsage, CopyUsage, nil
	case gl.DYNAMIC_DRAW:
		return DynamicUsage, DrawUsage, nil
	case gl.DYNAMIC_READ:
		return DynamicUsage, ReadUsage, nil
	case gl.DYNAMIC_COPY:
		return DynamicUsage, CopyUsage, nil
	case gl.STATIC_READ:
		return StaticUsage, ReadUsage, nil
	case gl.STATIC_COPY:
		return StaticUsage, CopyUsage, nil
	default:
		return StaticUsage, DrawUsage, nil
	}
}
