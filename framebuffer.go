package glsafe

import (
	"log/slog"

	"github.com/gogpu/glsafe/gl"
)

// FramebufferTarget selects the draw or read framebuffer slot.
type FramebufferTarget uint8

const (
	DrawFramebuffer FramebufferTarget = iota
	ReadFramebuffer
)

func (t FramebufferTarget) enum() gl.Enum {
	if t == DrawFramebuffer {
		return gl.DRAW_FRAMEBUFFER
	}
	return gl.READ_FRAMEBUFFER
}

func (t FramebufferTarget) String() string {
	if t == DrawFramebuffer {
		return "DRAW_FRAMEBUFFER"
	}
	return "READ_FRAMEBUFFER"
}

// Framebuffer is an application-owned framebuffer object. A fresh
// framebuffer is incomplete; CheckFramebufferComplete advances it to
// complete once its attachment set satisfies the native completeness
// rules.
//
// The complete tag is advisory. Native completeness depends on the
// attached objects, which can be respecified or deleted through other
// handles without this layer noticing. A framebuffer that reports
// Complete here can still fail natively later; the tag only certifies
// that a check succeeded and no tracked mutation happened since.
type Framebuffer struct {
	name     gl.Framebuffer
	complete bool
}

// Name returns the raw handle. Using it to issue native calls directly
// bypasses all state tracking.
func (f *Framebuffer) Name() gl.Framebuffer { return f.name }

// Complete reports whether a completeness check has succeeded since the
// last tracked attachment mutation.
func (f *Framebuffer) Complete() bool { return f.complete }

// Attachment names one framebuffer attachment point.
type Attachment uint8

const (
	ColorAttachment0 Attachment = iota
	ColorAttachment1
	ColorAttachment2
	ColorAttachment3
	DepthAttachment
	StencilAttachment
	DepthStencilAttachment
)

func (a Attachment) enum() gl.Enum {
	switch a {
	case DepthAttachment:
		return gl.DEPTH_ATTACHMENT
	case StencilAttachment:
		return gl.STENCIL_ATTACHMENT
	case DepthStencilAttachment:
		return gl.DEPTH_STENCIL_ATTACHMENT
	default:
		return gl.COLOR_ATTACHMENT0 + gl.Enum(a)
	}
}

// ActiveFramebuffer proves access to the draw or read framebuffer slot.
// A token whose occupant is nil refers to the default framebuffer.
type ActiveFramebuffer struct {
	ctx    *Context
	gen    uint64
	target FramebufferTarget
	fb     *Framebuffer // nil for the default framebuffer
}

// BindFramebuffer binds fb to the given framebuffer slot and returns
// the access token. The previous token for this slot, if any, is
// invalidated. Binding through the combined native target is a separate
// operation, BindFramebufferBoth, because it disturbs both slots.
func (c *Context) BindFramebuffer(target FramebufferTarget, fb *Framebuffer) (*ActiveFramebuffer, error) {
	if fb == nil {
		return nil, ErrNilObject
	}
	gen := c.framebuffers[target].bump()
	c.f.BindFramebuffer(target.enum(), fb.name)
	return &ActiveFramebuffer{ctx: c, gen: gen, target: target, fb: fb}, nil
}

// BindDefaultFramebuffer binds the default framebuffer to the given
// slot. The returned token supports draw gating, clears, and pixel
// reads, but not attachment mutation.
func (c *Context) BindDefaultFramebuffer(target FramebufferTarget) *ActiveFramebuffer {
	gen := c.framebuffers[target].bump()
	c.f.BindFramebuffer(target.enum(), gl.Framebuffer{})
	return &ActiveFramebuffer{ctx: c, gen: gen, target: target}
}

// BindFramebufferBoth binds fb to both slots through the combined
// native target. Both slot generations advance, so every outstanding
// framebuffer token becomes stale. Two tokens are returned, draw first.
func (c *Context) BindFramebufferBoth(fb *Framebuffer) (*ActiveFramebuffer, *ActiveFramebuffer, error) {
	if fb == nil {
		return nil, nil, ErrNilObject
	}
	dg := c.framebuffers[DrawFramebuffer].bump()
	rg := c.framebuffers[ReadFramebuffer].bump()
	c.f.BindFramebuffer(gl.FRAMEBUFFER, fb.name)
	draw := &ActiveFramebuffer{ctx: c, gen: dg, target: DrawFramebuffer, fb: fb}
	read := &ActiveFramebuffer{ctx: c, gen: rg, target: ReadFramebuffer, fb: fb}
	return draw, read, nil
}

// Target returns the slot this token belongs to.
func (a *ActiveFramebuffer) Target() FramebufferTarget { return a.target }

// Framebuffer returns the occupant at bind time, or nil for the default
// framebuffer.
func (a *ActiveFramebuffer) Framebuffer() *Framebuffer { return a.fb }

func (a *ActiveFramebuffer) live() error {
	return a.ctx.framebuffers[a.target].stale(a.gen)
}

// mutable verifies the token is live, holds an application framebuffer,
// and that the framebuffer's attachment set is not frozen by a
// successful completeness check.
func (a *ActiveFramebuffer) mutable(op string) error {
	if err := a.live(); err != nil {
		return err
	}
	if a.fb == nil {
		return &InvalidStateError{
			Object: "framebuffer slot " + a.target.String(),
			Op:     op,
			Reason: "the default framebuffer has no mutable attachments",
		}
	}
	if a.fb.complete {
		return &InvalidStateError{
			Object: "framebuffer marked complete",
			Op:     op,
			Reason: "attachments are frozen once a completeness check succeeds",
		}
	}
	return nil
}

// AttachTexture2D attaches one mip level of a 2D texture to the given
// attachment point. The texture's kind must be fixed to TEXTURE_2D.
func (a *ActiveFramebuffer) AttachTexture2D(att Attachment, tex *Texture, level int) error {
	if tex == nil {
		return ErrNilObject
	}
	if err := a.mutable("AttachTexture2D"); err != nil {
		return err
	}
	if !tex.fixed || tex.kind != Texture2D {
		return &InvalidStateError{
			Object: "texture",
			Op:     "AttachTexture2D",
			Reason: "attachment requires a texture fixed to TEXTURE_2D",
		}
	}
	a.ctx.f.FramebufferTexture2D(a.target.enum(), att.enum(), gl.TEXTURE_2D, tex.name, level)
	return nil
}

// AttachCubeFace attaches one mip level of one cube map face. The
// texture's kind must be fixed to TEXTURE_CUBE_MAP.
func (a *ActiveFramebuffer) AttachCubeFace(att Attachment, tex *Texture, face CubeFace, level int) error {
	if tex == nil {
		return ErrNilObject
	}
	if err := a.mutable("AttachCubeFace"); err != nil {
		return err
	}
	if !tex.fixed || tex.kind != TextureCubeMap {
		return &InvalidStateError{
			Object: "texture",
			Op:     "AttachCubeFace",
			Reason: "attachment requires a texture fixed to TEXTURE_CUBE_MAP",
		}
	}
	a.ctx.f.FramebufferTexture2D(a.target.enum(), att.enum(), face.enum(), tex.name, level)
	return nil
}

// AttachRenderbuffer attaches a renderbuffer to the given attachment
// point.
func (a *ActiveFramebuffer) AttachRenderbuffer(att Attachment, rb *Renderbuffer) error {
	if rb == nil {
		return ErrNilObject
	}
	if err := a.mutable("AttachRenderbuffer"); err != nil {
		return err
	}
	a.ctx.f.FramebufferRenderbuffer(a.target.enum(), att.enum(), rb.name)
	return nil
}

// CheckFramebufferComplete binds fb to the given slot and runs the
// native completeness check. On success the framebuffer advances to
// complete and the fresh token is returned. On failure the slot is
// still disturbed (the bind happened) and the error carries the
// failing rule.
func (c *Context) CheckFramebufferComplete(target FramebufferTarget, fb *Framebuffer) (*ActiveFramebuffer, error) {
	a, err := c.BindFramebuffer(target, fb)
	if err != nil {
		return nil, err
	}
	status := c.f.CheckFramebufferStatus(target.enum())
	if status != gl.FRAMEBUFFER_COMPLETE {
		reason := incompleteReason(status)
		Logger().Warn("framebuffer completeness check failed",
			slog.String("target", target.String()),
			slog.Uint64("name", uint64(fb.name.V)),
			slog.String("reason", reason.String()))
		return nil, &IncompleteError{Reason: reason}
	}
	fb.complete = true
	return a, nil
}

func incompleteReason(status gl.Enum) IncompleteReason {
	switch status {
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return IncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return IncompleteMissingAttachment
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return IncompleteUnsupported
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return IncompleteMultisample
	case gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS:
		return IncompleteLayerTargets
	default:
		return IncompleteUnspecified
	}
}

// DrawBufferSelector names a destination for fragment output routing.
type DrawBufferSelector uint8

const (
	// DrawNone discards the corresponding fragment output.
	DrawNone DrawBufferSelector = iota
	// DrawBack selects the default framebuffer's back buffer.
	DrawBack
	DrawColor0
	DrawColor1
	DrawColor2
	DrawColor3
)

func (d DrawBufferSelector) enum() gl.Enum {
	switch d {
	case DrawNone:
		return gl.NONE
	case DrawBack:
		return gl.BACK
	default:
		return gl.COLOR_ATTACHMENT0 + gl.Enum(d-DrawColor0)
	}
}

// DrawBuffers routes fragment outputs to color attachments. Only valid
// on the draw slot.
func (a *ActiveFramebuffer) DrawBuffers(bufs ...DrawBufferSelector) error {
	if err := a.live(); err != nil {
		return err
	}
	if a.target != DrawFramebuffer {
		return &InvalidStateError{
			Object: "framebuffer slot " + a.target.String(),
			Op:     "DrawBuffers",
			Reason: "output routing applies to the draw slot only",
		}
	}
	es := make([]gl.Enum, len(bufs))
	for i, b := range bufs {
		es[i] = b.enum()
	}
	a.ctx.f.DrawBuffers(es)
	return nil
}

// ReadBuffer selects the color source for pixel reads and blits. Only
// valid on the read slot.
func (a *ActiveFramebuffer) ReadBuffer(src DrawBufferSelector) error {
	if err := a.live(); err != nil {
		return err
	}
	if a.target != ReadFramebuffer {
		return &InvalidStateError{
			Object: "framebuffer slot " + a.target.String(),
			Op:     "ReadBuffer",
			Reason: "read source selection applies to the read slot only",
		}
	}
	a.ctx.f.ReadBuffer(src.enum())
	return nil
}

// ReadPixels reads a rectangle of pixels from the read framebuffer into
// data. Only valid on the read slot. If a PIXEL_PACK buffer is bound
// the read goes there instead; that interaction is untracked.
func (a *ActiveFramebuffer) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) error {
	if err := a.live(); err != nil {
		return err
	}
	if a.target != ReadFramebuffer {
		return &InvalidStateError{
			Object: "framebuffer slot " + a.target.String(),
			Op:     "ReadPixels",
			Reason: "pixel reads apply to the read slot only",
		}
	}
	a.ctx.f.ReadPixels(x, y, width, height, format, ty, data)
	return nil
}

// Invalidate tells the driver the named attachments' contents are no
// longer needed.
func (a *ActiveFramebuffer) Invalidate(atts ...Attachment) error {
	if err := a.live(); err != nil {
		return err
	}
	es := make([]gl.Enum, len(atts))
	for i, at := range atts {
		es[i] = at.enum()
	}
	a.ctx.f.InvalidateFramebuffer(a.target.enum(), es)
	return nil
}

// ClearMask selects which buffers a Clear touches.
type ClearMask uint32

const (
	ClearColor   ClearMask = gl.COLOR_BUFFER_BIT
	ClearDepth   ClearMask = gl.DEPTH_BUFFER_BIT
	ClearStencil ClearMask = gl.STENCIL_BUFFER_BIT
)

// Clear clears the selected buffers of the draw framebuffer to the
// clear values set through the Context. Only valid on the draw slot.
func (a *ActiveFramebuffer) Clear(mask ClearMask) error {
	if err := a.live(); err != nil {
		return err
	}
	if a.target != DrawFramebuffer {
		return &InvalidStateError{
			Object: "framebuffer slot " + a.target.String(),
			Op:     "Clear",
			Reason: "clears apply to the draw slot only",
		}
	}
	a.ctx.f.Clear(gl.Enum(mask))
	return nil
}

// BlitFilter selects the scaling filter for a framebuffer blit.
type BlitFilter uint8

const (
	BlitNearest BlitFilter = iota
	BlitLinear
)

func (f BlitFilter) enum() gl.Enum {
	if f == BlitNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// BlitFramebuffer copies a rectangle from the read framebuffer to the
// draw framebuffer. Both tokens must be live; read must be a read-slot
// token and draw a draw-slot token. Depth and stencil blits require
// BlitNearest.
func (c *Context) BlitFramebuffer(read, draw *ActiveFramebuffer, sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask ClearMask, filter BlitFilter) error {
	if read == nil || draw == nil {
		return ErrNilObject
	}
	if err := read.live(); err != nil {
		return err
	}
	if err := draw.live(); err != nil {
		return err
	}
	if read.target != ReadFramebuffer || draw.target != DrawFramebuffer {
		return &InvalidStateError{
			Object: "framebuffer tokens",
			Op:     "BlitFramebuffer",
			Reason: "blit requires a read-slot source token and a draw-slot destination token",
		}
	}
	if mask&(ClearDepth|ClearStencil) != 0 && filter != BlitNearest {
		return &InvalidStateError{
			Object: "framebuffer tokens",
			Op:     "BlitFramebuffer",
			Reason: "depth and stencil blits require the nearest filter",
		}
	}
	c.f.BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, gl.Enum(mask), filter.enum())
	return nil
}
