package glsafe

import (
	"testing"
)

func TestGlobalStateCallStream(t *testing.T) {
	c, f := newTestContext(t)
	f.TakeCalls()

	c.Enable(CapDepthTest)
	c.SetDepthFunc(CompareLessOrEqual)
	c.SetDepthMask(true)
	c.Enable(CapBlend)
	c.SetBlendEquation(BlendAdd)
	c.SetBlendFunc(FactorSrcAlpha, FactorOneMinusSrcAlpha)
	c.SetCullFace(CullBack)
	c.SetFrontFace(CounterClockwise)
	c.SetViewport(0, 0, 800, 600)
	c.SetClearColor(0, 0, 0, 1)
	c.Disable(CapScissorTest)

	assertCalls(t, f.Calls, []string{
		"Enable(0xB71)",
		"DepthFunc(0x203)",
		"DepthMask(true)",
		"Enable(0xBE2)",
		"BlendEquation(0x8006)",
		"BlendFunc(0x302, 0x303)",
		"CullFace(0x405)",
		"FrontFace(0x901)",
		"Viewport(0, 0, 800, 600)",
		"ClearColor(0, 0, 0, 1)",
		"Disable(0xC11)",
	})
}

func TestStencilState(t *testing.T) {
	c, f := newTestContext(t)
	f.TakeCalls()

	c.Enable(CapStencilTest)
	c.SetStencilFunc(CompareAlways, 1, 0xFF)
	c.SetStencilOp(StencilKeep, StencilKeep, StencilReplace)
	c.SetStencilMask(0xFF)

	assertCalls(t, f.Calls, []string{
		"Enable(0xB90)",
		"StencilFunc(0x207, 1, 255)",
		"StencilOp(0x1E00, 0x1E00, 0x1E01)",
		"StencilMask(255)",
	})
}
