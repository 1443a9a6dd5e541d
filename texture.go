package glsafe

import (
	"log/slog"

	"github.com/gogpu/glsafe/gl"
)

// TextureKind selects one of the four texture binding slots of the
// active texture unit.
type TextureKind uint8

const (
	Texture2D TextureKind = iota
	Texture3D
	Texture2DArray
	TextureCubeMap

	numTextureKinds
)

func (k TextureKind) enum() gl.Enum {
	switch k {
	case Texture2D:
		return gl.TEXTURE_2D
	case Texture3D:
		return gl.TEXTURE_3D
	case Texture2DArray:
		return gl.TEXTURE_2D_ARRAY
	default:
		return gl.TEXTURE_CUBE_MAP
	}
}

func (k TextureKind) String() string {
	switch k {
	case Texture2D:
		return "TEXTURE_2D"
	case Texture3D:
		return "TEXTURE_3D"
	case Texture2DArray:
		return "TEXTURE_2D_ARRAY"
	case TextureCubeMap:
		return "TEXTURE_CUBE_MAP"
	default:
		return "TEXTURE_KIND(?)"
	}
}

// CubeFace selects one face of a cube map texture for 2D image
// operations.
type CubeFace uint8

const (
	CubePositiveX CubeFace = iota
	CubeNegativeX
	CubePositiveY
	CubeNegativeY
	CubePositiveZ
	CubeNegativeZ
)

func (f CubeFace) enum() gl.Enum {
	return gl.TEXTURE_CUBE_MAP_POSITIVE_X + gl.Enum(f)
}

// Texture is an application-owned texture object. Like Buffer, a fresh
// texture carries no kind; its first bind fixes the kind permanently.
type Texture struct {
	name  gl.Texture
	kind  TextureKind
	fixed bool
}

// Name returns the raw handle. Using it to issue native calls directly
// bypasses all state tracking.
func (t *Texture) Name() gl.Texture { return t.name }

// Kind returns the fixed texture kind, if the texture has been bound.
func (t *Texture) Kind() (TextureKind, bool) { return t.kind, t.fixed }

// ActiveTexture proves access to one texture kind slot of the active
// texture unit. Switching the active unit via ActiveTextureUnit
// invalidates every outstanding ActiveTexture token, since texture
// bindings are per-unit state.
type ActiveTexture struct {
	ctx  *Context
	gen  uint64
	kind TextureKind
	tex  *Texture // nil when the slot holds the default texture
}

// ActiveTextureUnit switches the active texture unit. Texture bindings
// are stored per unit, so this disturbs every texture kind slot at once:
// all previously issued ActiveTexture tokens become stale, for every
// kind, regardless of which unit they were bound on.
func (c *Context) ActiveTextureUnit(unit int) error {
	if unit < 0 {
		return &InvalidStateError{
			Object: "context",
			Op:     "ActiveTextureUnit",
			Reason: "negative texture unit",
		}
	}
	for k := range c.textures {
		c.textures[k].bump()
	}
	c.activeUnit = unit
	c.f.ActiveTexture(gl.TEXTURE0 + gl.Enum(unit))
	return nil
}

// TextureUnit returns the currently active texture unit.
func (c *Context) TextureUnit() int { return c.activeUnit }

// BindTexture binds tex to the given kind slot of the active unit and
// returns the access token. The previous token for this slot, if any,
// is invalidated.
//
// If tex has never been bound, this fixes its kind. Binding a texture
// whose kind is already fixed to a different kind fails with
// *InvalidStateError, and the slot is left undisturbed.
func (c *Context) BindTexture(kind TextureKind, tex *Texture) (*ActiveTexture, error) {
	if tex == nil {
		return nil, ErrNilObject
	}
	if tex.fixed && tex.kind != kind {
		return nil, &InvalidStateError{
			Object: "texture fixed to " + tex.kind.String(),
			Op:     "BindTexture(" + kind.String() + ")",
			Reason: "a texture's kind is fixed permanently by its first bind",
		}
	}
	tex.kind = kind
	tex.fixed = true
	s := &c.textures[kind]
	gen := s.bump()
	c.f.BindTexture(kind.enum(), tex.name)
	Logger().Debug("bind texture",
		slog.String("kind", kind.String()),
		slog.Int("unit", c.activeUnit),
		slog.Uint64("name", uint64(tex.name.V)))
	return &ActiveTexture{ctx: c, gen: gen, kind: kind, tex: tex}, nil
}

// UnbindTexture binds the zero texture to the given kind slot of the
// active unit, leaving it empty.
func (c *Context) UnbindTexture(kind TextureKind) *ActiveTexture {
	s := &c.textures[kind]
	gen := s.bump()
	c.f.BindTexture(kind.enum(), gl.Texture{})
	return &ActiveTexture{ctx: c, gen: gen, kind: kind}
}

// Kind returns the slot this token belongs to.
func (a *ActiveTexture) Kind() TextureKind { return a.kind }

// Texture returns the occupant at bind time, or nil for an unbound slot.
func (a *ActiveTexture) Texture() *Texture { return a.tex }

func (a *ActiveTexture) occupied(op string) error {
	if err := a.ctx.textures[a.kind].stale(a.gen); err != nil {
		return err
	}
	if a.tex == nil {
		return &InvalidStateError{
			Object: "texture slot " + a.kind.String(),
			Op:     op,
			Reason: "no texture is bound to the slot",
		}
	}
	return nil
}

func (a *ActiveTexture) image2DTarget(op string) (gl.Enum, error) {
	if a.kind == TextureCubeMap {
		return 0, &InvalidStateError{
			Object: "texture slot " + a.kind.String(),
			Op:     op,
			Reason: "cube map textures take per-face image operations",
		}
	}
	if a.kind != Texture2D {
		return 0, &InvalidStateError{
			Object: "texture slot " + a.kind.String(),
			Op:     op,
			Reason: "2D image operations require a TEXTURE_2D binding",
		}
	}
	return a.kind.enum(), nil
}

// Storage2D allocates immutable storage for all mip levels of a 2D or
// cube map texture. The slot kind must be TEXTURE_2D or
// TEXTURE_CUBE_MAP.
func (a *ActiveTexture) Storage2D(levels int, internalFormat gl.Enum, width, height int) error {
	if err := a.occupied("Storage2D"); err != nil {
		return err
	}
	if a.kind != Texture2D && a.kind != TextureCubeMap {
		return &InvalidStateError{
			Object: "texture slot " + a.kind.String(),
			Op:     "Storage2D",
			Reason: "2D storage requires a TEXTURE_2D or TEXTURE_CUBE_MAP binding",
		}
	}
	a.ctx.f.TexStorage2D(a.kind.enum(), levels, internalFormat, width, height)
	return nil
}

// Image2D specifies one mip level of a 2D texture. data may be nil to
// allocate undefined contents.
func (a *ActiveTexture) Image2D(level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) error {
	if err := a.occupied("Image2D"); err != nil {
		return err
	}
	target, err := a.image2DTarget("Image2D")
	if err != nil {
		return err
	}
	a.ctx.f.TexImage2D(target, level, internalFormat, width, height, format, ty, data)
	return nil
}

// SubImage2D overwrites a sub-rectangle of one mip level of a 2D
// texture.
func (a *ActiveTexture) SubImage2D(level, x, y, width, height int, format, ty gl.Enum, data []byte) error {
	if err := a.occupied("SubImage2D"); err != nil {
		return err
	}
	target, err := a.image2DTarget("SubImage2D")
	if err != nil {
		return err
	}
	a.ctx.f.TexSubImage2D(target, level, x, y, width, height, format, ty, data)
	return nil
}

// FaceImage2D specifies one mip level of one face of a cube map. The
// slot kind must be TEXTURE_CUBE_MAP.
func (a *ActiveTexture) FaceImage2D(face CubeFace, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) error {
	if err := a.occupied("FaceImage2D"); err != nil {
		return err
	}
	if a.kind != TextureCubeMap {
		return &InvalidStateError{
			Object: "texture slot " + a.kind.String(),
			Op:     "FaceImage2D",
			Reason: "per-face image operations require a TEXTURE_CUBE_MAP binding",
		}
	}
	a.ctx.f.TexImage2D(face.enum(), level, internalFormat, width, height, format, ty, data)
	return nil
}

// GenerateMipmap derives the full mip chain from the base level.
func (a *ActiveTexture) GenerateMipmap() error {
	if err := a.occupied("GenerateMipmap"); err != nil {
		return err
	}
	a.ctx.f.GenerateMipmap(a.kind.enum())
	return nil
}

// MinFilter selects the minification filter.
type MinFilter uint8

const (
	MinNearest MinFilter = iota
	MinLinear
	MinNearestMipmapNearest
	MinLinearMipmapNearest
	MinNearestMipmapLinear
	MinLinearMipmapLinear
)

func (f MinFilter) enum() gl.Enum {
	switch f {
	case MinNearest:
		return gl.NEAREST
	case MinLinear:
		return gl.LINEAR
	case MinNearestMipmapNearest:
		return gl.NEAREST_MIPMAP_NEAREST
	case MinLinearMipmapNearest:
		return gl.LINEAR_MIPMAP_NEAREST
	case MinNearestMipmapLinear:
		return gl.NEAREST_MIPMAP_LINEAR
	default:
		return gl.LINEAR_MIPMAP_LINEAR
	}
}

// MagFilter selects the magnification filter.
type MagFilter uint8

const (
	MagNearest MagFilter = iota
	MagLinear
)

func (f MagFilter) enum() gl.Enum {
	if f == MagNearest {
		return gl.NEAREST
	}
	return gl.LINEAR
}

// WrapMode selects per-axis texture coordinate wrapping.
type WrapMode uint8

const (
	WrapRepeat WrapMode = iota
	WrapClampToEdge
	WrapMirroredRepeat
)

func (w WrapMode) enum() gl.Enum {
	switch w {
	case WrapRepeat:
		return gl.REPEAT
	case WrapClampToEdge:
		return gl.CLAMP_TO_EDGE
	default:
		return gl.MIRRORED_REPEAT
	}
}

// Swizzle selects the source component for one output channel.
type Swizzle uint8

const (
	SwizzleRed Swizzle = iota
	SwizzleGreen
	SwizzleBlue
	SwizzleAlpha
	SwizzleZero
	SwizzleOne
)

func (s Swizzle) enum() gl.Enum {
	switch s {
	case SwizzleRed:
		return gl.RED
	case SwizzleGreen:
		return gl.GREEN
	case SwizzleBlue:
		return gl.BLUE
	case SwizzleAlpha:
		return gl.ALPHA
	case SwizzleZero:
		return gl.ZERO
	default:
		return gl.ONE
	}
}

// SetFilters sets the minification and magnification filters.
func (a *ActiveTexture) SetFilters(min MinFilter, mag MagFilter) error {
	if err := a.occupied("SetFilters"); err != nil {
		return err
	}
	t := a.kind.enum()
	a.ctx.f.TexParameteri(t, gl.TEXTURE_MIN_FILTER, int(min.enum()))
	a.ctx.f.TexParameteri(t, gl.TEXTURE_MAG_FILTER, int(mag.enum()))
	return nil
}

// SetWrap sets coordinate wrapping for the S and T axes. The R axis of
// 3D and array textures is left untouched; use SetWrapR.
func (a *ActiveTexture) SetWrap(s, t WrapMode) error {
	if err := a.occupied("SetWrap"); err != nil {
		return err
	}
	target := a.kind.enum()
	a.ctx.f.TexParameteri(target, gl.TEXTURE_WRAP_S, int(s.enum()))
	a.ctx.f.TexParameteri(target, gl.TEXTURE_WRAP_T, int(t.enum()))
	return nil
}

// SetWrapR sets coordinate wrapping for the R axis.
func (a *ActiveTexture) SetWrapR(r WrapMode) error {
	if err := a.occupied("SetWrapR"); err != nil {
		return err
	}
	a.ctx.f.TexParameteri(a.kind.enum(), gl.TEXTURE_WRAP_R, int(r.enum()))
	return nil
}

// SetSwizzle routes source components to the four output channels.
func (a *ActiveTexture) SetSwizzle(r, g, b, al Swizzle) error {
	if err := a.occupied("SetSwizzle"); err != nil {
		return err
	}
	t := a.kind.enum()
	a.ctx.f.TexParameteri(t, gl.TEXTURE_SWIZZLE_R, int(r.enum()))
	a.ctx.f.TexParameteri(t, gl.TEXTURE_SWIZZLE_G, int(g.enum()))
	a.ctx.f.TexParameteri(t, gl.TEXTURE_SWIZZLE_B, int(b.enum()))
	a.ctx.f.TexParameteri(t, gl.TEXTURE_SWIZZLE_A, int(al.enum()))
	return nil
}

// SetLevelRange clamps the mip levels used for sampling.
func (a *ActiveTexture) SetLevelRange(base, max int) error {
	if err := a.occupied("SetLevelRange"); err != nil {
		return err
	}
	t := a.kind.enum()
	a.ctx.f.TexParameteri(t, gl.TEXTURE_BASE_LEVEL, base)
	a.ctx.f.TexParameteri(t, gl.TEXTURE_MAX_LEVEL, max)
	return nil
}

// SetLODRange clamps the computed level of detail.
func (a *ActiveTexture) SetLODRange(min, max float32) error {
	if err := a.occupied("SetLODRange"); err != nil {
		return err
	}
	t := a.kind.enum()
	a.ctx.f.TexParameterf(t, gl.TEXTURE_MIN_LOD, min)
	a.ctx.f.TexParameterf(t, gl.TEXTURE_MAX_LOD, max)
	return nil
}

// DepthStencilMode selects which component of a packed depth-stencil
// texture sampling reads.
type DepthStencilMode uint8

const (
	ReadDepth DepthStencilMode = iota
	ReadStencil
)

func (m DepthStencilMode) enum() gl.Enum {
	if m == ReadStencil {
		return gl.STENCIL_INDEX
	}
	return gl.DEPTH_COMPONENT
}

// SetDepthStencilMode selects the component sampled from a packed
// depth-stencil texture. It has no effect on other formats.
func (a *ActiveTexture) SetDepthStencilMode(mode DepthStencilMode) error {
	if err := a.occupied("SetDepthStencilMode"); err != nil {
		return err
	}
	a.ctx.f.TexParameteri(a.kind.enum(), gl.DEPTH_STENCIL_TEXTURE_MODE, int(mode.enum()))
	return nil
}

// SetCompare enables depth comparison sampling with the given function,
// or disables it when enabled is false.
func (a *ActiveTexture) SetCompare(enabled bool, fn CompareFunc) error {
	if err := a.occupied("SetCompare"); err != nil {
		return err
	}
	t := a.kind.enum()
	if !enabled {
		a.ctx.f.TexParameteri(t, gl.TEXTURE_COMPARE_MODE, gl.NONE)
		return nil
	}
	a.ctx.f.TexParameteri(t, gl.TEXTURE_COMPARE_MODE, gl.COMPARE_REF_TO_TEXTURE)
	a.ctx.f.TexParameteri(t, gl.TEXTURE_COMPARE_FUNC, int(fn.enum()))
	return nil
}
