package glsafe

import (
	"github.com/gogpu/glsafe/gl"
)

// Global context state that lives outside the binding slots. None of it
// is occupied by an object, so no tokens apply; setters take effect
// immediately and stay until changed.

// Capability names a toggleable fixed-function feature.
type Capability uint8

const (
	CapBlend Capability = iota
	CapCullFace
	CapDepthTest
	CapDither
	CapPolygonOffsetFill
	CapPrimitiveRestartFixedIndex
	CapRasterizerDiscard
	CapSampleAlphaToCoverage
	CapSampleCoverage
	CapScissorTest
	CapStencilTest
)

func (c Capability) enum() gl.Enum {
	switch c {
	case CapBlend:
		return gl.BLEND
	case CapCullFace:
		return gl.CULL_FACE
	case CapDepthTest:
		return gl.DEPTH_TEST
	case CapDither:
		return gl.DITHER
	case CapPolygonOffsetFill:
		return gl.POLYGON_OFFSET_FILL
	case CapPrimitiveRestartFixedIndex:
		return gl.PRIMITIVE_RESTART_FIXED_INDEX
	case CapRasterizerDiscard:
		return gl.RASTERIZER_DISCARD
	case CapSampleAlphaToCoverage:
		return gl.SAMPLE_ALPHA_TO_COVERAGE
	case CapSampleCoverage:
		return gl.SAMPLE_COVERAGE
	case CapScissorTest:
		return gl.SCISSOR_TEST
	default:
		return gl.STENCIL_TEST
	}
}

// Enable turns a capability on.
func (c *Context) Enable(cap Capability) {
	c.f.Enable(cap.enum())
}

// Disable turns a capability off.
func (c *Context) Disable(cap Capability) {
	c.f.Disable(cap.enum())
}

// CompareFunc names a comparison for depth, stencil, and texture
// compare tests.
type CompareFunc uint8

const (
	CompareNever CompareFunc = iota
	CompareLess
	CompareEqual
	CompareLessOrEqual
	CompareGreater
	CompareNotEqual
	CompareGreaterOrEqual
	CompareAlways
)

func (f CompareFunc) enum() gl.Enum {
	switch f {
	case CompareNever:
		return gl.NEVER
	case CompareLess:
		return gl.LESS
	case CompareEqual:
		return gl.EQUAL
	case CompareLessOrEqual:
		return gl.LEQUAL
	case CompareGreater:
		return gl.GREATER
	case CompareNotEqual:
		return gl.NOTEQUAL
	case CompareGreaterOrEqual:
		return gl.GEQUAL
	default:
		return gl.ALWAYS
	}
}

// SetClearColor sets the color buffer clear value.
func (c *Context) SetClearColor(r, g, b, a float32) {
	c.f.ClearColor(r, g, b, a)
}

// SetClearDepth sets the depth buffer clear value.
func (c *Context) SetClearDepth(d float32) {
	c.f.ClearDepthf(d)
}

// SetClearStencil sets the stencil buffer clear value.
func (c *Context) SetClearStencil(s int) {
	c.f.ClearStencil(s)
}

// SetColorMask enables or disables writes per color channel.
func (c *Context) SetColorMask(r, g, b, a bool) {
	c.f.ColorMask(r, g, b, a)
}

// SetDepthMask enables or disables depth buffer writes.
func (c *Context) SetDepthMask(write bool) {
	c.f.DepthMask(write)
}

// SetDepthFunc sets the depth test comparison.
func (c *Context) SetDepthFunc(fn CompareFunc) {
	c.f.DepthFunc(fn.enum())
}

// SetDepthRange maps normalized device depth to window depth.
func (c *Context) SetDepthRange(near, far float32) {
	c.f.DepthRangef(near, far)
}

// SetStencilFunc sets the stencil test comparison, reference value, and
// read mask.
func (c *Context) SetStencilFunc(fn CompareFunc, ref int, mask uint32) {
	c.f.StencilFunc(fn.enum(), ref, mask)
}

// SetStencilMask sets the stencil write mask.
func (c *Context) SetStencilMask(mask uint32) {
	c.f.StencilMask(mask)
}

// StencilAction names a stencil buffer update operation.
type StencilAction uint8

const (
	StencilKeep StencilAction = iota
	StencilZero
	StencilReplace
	StencilIncrement
	StencilIncrementWrap
	StencilDecrement
	StencilDecrementWrap
	StencilInvert
)

func (s StencilAction) enum() gl.Enum {
	switch s {
	case StencilKeep:
		return gl.KEEP
	case StencilZero:
		return gl.ZERO
	case StencilReplace:
		return gl.REPLACE
	case StencilIncrement:
		return gl.INCR
	case StencilIncrementWrap:
		return gl.INCR_WRAP
	case StencilDecrement:
		return gl.DECR
	case StencilDecrementWrap:
		return gl.DECR_WRAP
	default:
		return gl.INVERT
	}
}

// SetStencilOp sets the stencil updates for the fail, depth-fail, and
// pass cases.
func (c *Context) SetStencilOp(sfail, dpfail, dppass StencilAction) {
	c.f.StencilOp(sfail.enum(), dpfail.enum(), dppass.enum())
}

// BlendEquationMode combines source and destination blend terms.
type BlendEquationMode uint8

const (
	BlendAdd BlendEquationMode = iota
	BlendSubtract
	BlendReverseSubtract
	BlendMin
	BlendMax
)

func (m BlendEquationMode) enum() gl.Enum {
	switch m {
	case BlendAdd:
		return gl.FUNC_ADD
	case BlendSubtract:
		return gl.FUNC_SUBTRACT
	case BlendReverseSubtract:
		return gl.FUNC_REVERSE_SUBTRACT
	case BlendMin:
		return gl.MIN
	default:
		return gl.MAX
	}
}

// BlendFactor scales a blend term.
type BlendFactor uint8

const (
	FactorZero BlendFactor = iota
	FactorOne
	FactorSrcColor
	FactorOneMinusSrcColor
	FactorSrcAlpha
	FactorOneMinusSrcAlpha
	FactorDstColor
	FactorOneMinusDstColor
	FactorDstAlpha
	FactorOneMinusDstAlpha
	FactorConstantColor
	FactorOneMinusConstantColor
	FactorConstantAlpha
	FactorOneMinusConstantAlpha
	FactorSrcAlphaSaturate
)

func (f BlendFactor) enum() gl.Enum {
	switch f {
	case FactorZero:
		return gl.ZERO
	case FactorOne:
		return gl.ONE
	case FactorSrcColor:
		return gl.SRC_COLOR
	case FactorOneMinusSrcColor:
		return gl.ONE_MINUS_SRC_COLOR
	case FactorSrcAlpha:
		return gl.SRC_ALPHA
	case FactorOneMinusSrcAlpha:
		return gl.ONE_MINUS_SRC_ALPHA
	case FactorDstColor:
		return gl.DST_COLOR
	case FactorOneMinusDstColor:
		return gl.ONE_MINUS_DST_COLOR
	case FactorDstAlpha:
		return gl.DST_ALPHA
	case FactorOneMinusDstAlpha:
		return gl.ONE_MINUS_DST_ALPHA
	case FactorConstantColor:
		return gl.CONSTANT_COLOR
	case FactorOneMinusConstantColor:
		return gl.ONE_MINUS_CONSTANT_COLOR
	case FactorConstantAlpha:
		return gl.CONSTANT_ALPHA
	case FactorOneMinusConstantAlpha:
		return gl.ONE_MINUS_CONSTANT_ALPHA
	default:
		return gl.SRC_ALPHA_SATURATE
	}
}

// SetBlendEquation sets the blend equation for both color and alpha.
func (c *Context) SetBlendEquation(mode BlendEquationMode) {
	c.f.BlendEquation(mode.enum())
}

// SetBlendEquationSeparate sets the blend equation per channel group.
func (c *Context) SetBlendEquationSeparate(rgb, alpha BlendEquationMode) {
	c.f.BlendEquationSeparate(rgb.enum(), alpha.enum())
}

// SetBlendFunc sets the blend factors for both color and alpha.
func (c *Context) SetBlendFunc(src, dst BlendFactor) {
	c.f.BlendFunc(src.enum(), dst.enum())
}

// SetBlendFuncSeparate sets the blend factors per channel group.
func (c *Context) SetBlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha BlendFactor) {
	c.f.BlendFuncSeparate(srcRGB.enum(), dstRGB.enum(), srcAlpha.enum(), dstAlpha.enum())
}

// SetBlendColor sets the constant blend color.
func (c *Context) SetBlendColor(r, g, b, a float32) {
	c.f.BlendColor(r, g, b, a)
}

// CullMode names the face set discarded by culling.
type CullMode uint8

const (
	CullBack CullMode = iota
	CullFront
	CullFrontAndBack
)

func (m CullMode) enum() gl.Enum {
	switch m {
	case CullBack:
		return gl.BACK
	case CullFront:
		return gl.FRONT
	default:
		return gl.FRONT_AND_BACK
	}
}

// SetCullFace selects which faces culling discards.
func (c *Context) SetCullFace(mode CullMode) {
	c.f.CullFace(mode.enum())
}

// Winding names the vertex order of a front-facing triangle.
type Winding uint8

const (
	CounterClockwise Winding = iota
	Clockwise
)

func (w Winding) enum() gl.Enum {
	if w == CounterClockwise {
		return gl.CCW
	}
	return gl.CW
}

// SetFrontFace selects the front-facing winding.
func (c *Context) SetFrontFace(w Winding) {
	c.f.FrontFace(w.enum())
}

// SetScissor sets the scissor rectangle in window coordinates.
func (c *Context) SetScissor(x, y, width, height int) {
	c.f.Scissor(x, y, width, height)
}

// SetViewport sets the viewport rectangle in window coordinates.
func (c *Context) SetViewport(x, y, width, height int) {
	c.f.Viewport(x, y, width, height)
}

// SetLineWidth sets the rasterized line width.
func (c *Context) SetLineWidth(w float32) {
	c.f.LineWidth(w)
}

// SetPolygonOffset sets the depth offset applied to filled polygons
// when POLYGON_OFFSET_FILL is enabled.
func (c *Context) SetPolygonOffset(factor, units float32) {
	c.f.PolygonOffset(factor, units)
}

// SetSampleCoverage sets the multisample coverage value.
func (c *Context) SetSampleCoverage(value float32, invert bool) {
	c.f.SampleCoverage(value, invert)
}
