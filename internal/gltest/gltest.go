// Package gltest provides an in-memory gl.Functions for tests. It
// records every native call as a formatted string so tests can assert
// exactly what reached the driver, and exposes knobs to simulate
// compile, link, and completeness failures.
package gltest

import (
	"fmt"
	"strings"

	"github.com/gogpu/glsafe/gl"
)

// Fake implements gl.Functions. The zero value is ready to use: object
// names are handed out sequentially from 1, and every status query
// reports success until a knob says otherwise.
type Fake struct {
	// Calls is the recorded native call stream, one entry per call, in
	// the form "Name(arg, arg, ...)". Enum arguments are recorded in
	// hex, handles and ints in decimal, byte slices by length.
	Calls []string

	// CompileFail makes every CompileShader fail until cleared.
	CompileFail bool
	// LinkFail makes every LinkProgram fail until cleared.
	LinkFail bool
	// ShaderLog and ProgramLog are returned by the info log queries.
	ShaderLog, ProgramLog string
	// Status is returned by CheckFramebufferStatus. Zero means
	// FRAMEBUFFER_COMPLETE.
	Status gl.Enum
	// BufferSize and BufferUsage are returned by GetBufferParameteri
	// for the corresponding pnames.
	BufferSize  int
	BufferUsage gl.Enum
	// UniformLocations maps uniform names to locations. Names not in
	// the map resolve to -1. A nil map resolves every name to 0.
	UniformLocations map[string]int32
	// Error is returned by GetError. Zero means NO_ERROR.
	Error gl.Enum

	nextName uint32
	compiled map[uint32]bool
	linked   map[uint32]bool
}

var _ gl.Functions = (*Fake)(nil)

// TakeCalls returns the recorded call stream and clears it, so a test
// can scope assertions to the operation under test.
func (f *Fake) TakeCalls() []string {
	c := f.Calls
	f.Calls = nil
	return c
}

// CallNames returns just the entry point names of the recorded stream.
func (f *Fake) CallNames() []string {
	names := make([]string, len(f.Calls))
	for i, c := range f.Calls {
		names[i] = c[:strings.IndexByte(c, '(')]
	}
	return names
}

func (f *Fake) record(name string, args ...any) {
	var b strings.Builder
	b.WriteString(name)
	b.WriteByte('(')
	for i, a := range args {
		if i > 0 {
			b.WriteString(", ")
		}
		switch v := a.(type) {
		case gl.Enum:
			fmt.Fprintf(&b, "0x%X", uint32(v))
		case []byte:
			fmt.Fprintf(&b, "len=%d", len(v))
		case []gl.Enum:
			for j, e := range v {
				if j > 0 {
					b.WriteByte(' ')
				}
				fmt.Fprintf(&b, "0x%X", uint32(e))
			}
		default:
			fmt.Fprintf(&b, "%v", v)
		}
	}
	b.WriteByte(')')
	f.Calls = append(f.Calls, b.String())
}

func (f *Fake) name() uint32 {
	f.nextName++
	return f.nextName
}

func (f *Fake) ActiveTexture(unit gl.Enum) { f.record("ActiveTexture", unit) }

func (f *Fake) AttachShader(p gl.Program, s gl.Shader) { f.record("AttachShader", p.V, s.V) }

func (f *Fake) BindBuffer(target gl.Enum, b gl.Buffer) { f.record("BindBuffer", target, b.V) }

func (f *Fake) BindFramebuffer(target gl.Enum, fb gl.Framebuffer) {
	f.record("BindFramebuffer", target, fb.V)
}

func (f *Fake) BindRenderbuffer(target gl.Enum, rb gl.Renderbuffer) {
	f.record("BindRenderbuffer", target, rb.V)
}

func (f *Fake) BindTexture(target gl.Enum, t gl.Texture) { f.record("BindTexture", target, t.V) }

func (f *Fake) BindVertexArray(a gl.VertexArray) { f.record("BindVertexArray", a.V) }

func (f *Fake) BlendColor(r, g, b, a float32) { f.record("BlendColor", r, g, b, a) }

func (f *Fake) BlendEquation(mode gl.Enum) { f.record("BlendEquation", mode) }

func (f *Fake) BlendEquationSeparate(rgb, alpha gl.Enum) {
	f.record("BlendEquationSeparate", rgb, alpha)
}

func (f *Fake) BlendFunc(sfactor, dfactor gl.Enum) { f.record("BlendFunc", sfactor, dfactor) }

func (f *Fake) BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha gl.Enum) {
	f.record("BlendFuncSeparate", srcRGB, dstRGB, srcAlpha, dstAlpha)
}

func (f *Fake) BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask gl.Enum, filter gl.Enum) {
	f.record("BlitFramebuffer", sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1, mask, filter)
}

func (f *Fake) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	f.record("BufferData", target, data, usage)
	f.BufferSize = len(data)
	f.BufferUsage = usage
}

func (f *Fake) BufferSubData(target gl.Enum, offset int, data []byte) {
	f.record("BufferSubData", target, offset, data)
}

func (f *Fake) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	f.record("CheckFramebufferStatus", target)
	if f.Status == 0 {
		return gl.FRAMEBUFFER_COMPLETE
	}
	return f.Status
}

func (f *Fake) Clear(mask gl.Enum) { f.record("Clear", mask) }

func (f *Fake) ClearColor(r, g, b, a float32) { f.record("ClearColor", r, g, b, a) }

func (f *Fake) ClearDepthf(d float32) { f.record("ClearDepthf", d) }

func (f *Fake) ClearStencil(s int) { f.record("ClearStencil", s) }

func (f *Fake) ColorMask(r, g, b, a bool) { f.record("ColorMask", r, g, b, a) }

func (f *Fake) CompileShader(s gl.Shader) {
	f.record("CompileShader", s.V)
	if f.compiled == nil {
		f.compiled = make(map[uint32]bool)
	}
	f.compiled[s.V] = !f.CompileFail
}

func (f *Fake) CopyBufferSubData(readTarget, writeTarget gl.Enum, readOffset, writeOffset, size int) {
	f.record("CopyBufferSubData", readTarget, writeTarget, readOffset, writeOffset, size)
}

func (f *Fake) CreateBuffer() gl.Buffer {
	n := f.name()
	f.record("CreateBuffer")
	return gl.Buffer{V: n}
}

func (f *Fake) CreateFramebuffer() gl.Framebuffer {
	n := f.name()
	f.record("CreateFramebuffer")
	return gl.Framebuffer{V: n}
}

func (f *Fake) CreateProgram() gl.Program {
	n := f.name()
	f.record("CreateProgram")
	return gl.Program{V: n}
}

func (f *Fake) CreateRenderbuffer() gl.Renderbuffer {
	n := f.name()
	f.record("CreateRenderbuffer")
	return gl.Renderbuffer{V: n}
}

func (f *Fake) CreateShader(ty gl.Enum) gl.Shader {
	n := f.name()
	f.record("CreateShader", ty)
	return gl.Shader{V: n}
}

func (f *Fake) CreateTexture() gl.Texture {
	n := f.name()
	f.record("CreateTexture")
	return gl.Texture{V: n}
}

func (f *Fake) CreateVertexArray() gl.VertexArray {
	n := f.name()
	f.record("CreateVertexArray")
	return gl.VertexArray{V: n}
}

func (f *Fake) CullFace(mode gl.Enum) { f.record("CullFace", mode) }

func (f *Fake) DeleteBuffer(b gl.Buffer) { f.record("DeleteBuffer", b.V) }

func (f *Fake) DeleteFramebuffer(fb gl.Framebuffer) { f.record("DeleteFramebuffer", fb.V) }

func (f *Fake) DeleteProgram(p gl.Program) { f.record("DeleteProgram", p.V) }

func (f *Fake) DeleteRenderbuffer(rb gl.Renderbuffer) { f.record("DeleteRenderbuffer", rb.V) }

func (f *Fake) DeleteShader(s gl.Shader) { f.record("DeleteShader", s.V) }

func (f *Fake) DeleteTexture(t gl.Texture) { f.record("DeleteTexture", t.V) }

func (f *Fake) DeleteVertexArray(a gl.VertexArray) { f.record("DeleteVertexArray", a.V) }

func (f *Fake) DepthFunc(fn gl.Enum) { f.record("DepthFunc", fn) }

func (f *Fake) DepthMask(mask bool) { f.record("DepthMask", mask) }

func (f *Fake) DepthRangef(near, far float32) { f.record("DepthRangef", near, far) }

func (f *Fake) DetachShader(p gl.Program, s gl.Shader) { f.record("DetachShader", p.V, s.V) }

func (f *Fake) Disable(cap gl.Enum) { f.record("Disable", cap) }

func (f *Fake) DisableVertexAttribArray(index uint32) { f.record("DisableVertexAttribArray", index) }

func (f *Fake) DrawArrays(mode gl.Enum, first, count int) {
	f.record("DrawArrays", mode, first, count)
}

func (f *Fake) DrawArraysInstanced(mode gl.Enum, first, count, instances int) {
	f.record("DrawArraysInstanced", mode, first, count, instances)
}

func (f *Fake) DrawBuffers(bufs []gl.Enum) { f.record("DrawBuffers", bufs) }

func (f *Fake) DrawElements(mode gl.Enum, count int, ty gl.Enum, offset int) {
	f.record("DrawElements", mode, count, ty, offset)
}

func (f *Fake) DrawElementsInstanced(mode gl.Enum, count int, ty gl.Enum, offset, instances int) {
	f.record("DrawElementsInstanced", mode, count, ty, offset, instances)
}

func (f *Fake) DrawRangeElements(mode gl.Enum, start, end uint32, count int, ty gl.Enum, offset int) {
	f.record("DrawRangeElements", mode, start, end, count, ty, offset)
}

func (f *Fake) Enable(cap gl.Enum) { f.record("Enable", cap) }

func (f *Fake) EnableVertexAttribArray(index uint32) { f.record("EnableVertexAttribArray", index) }

func (f *Fake) FramebufferRenderbuffer(target, attachment gl.Enum, rb gl.Renderbuffer) {
	f.record("FramebufferRenderbuffer", target, attachment, rb.V)
}

func (f *Fake) FramebufferTexture2D(target, attachment, texTarget gl.Enum, t gl.Texture, level int) {
	f.record("FramebufferTexture2D", target, attachment, texTarget, t.V, level)
}

func (f *Fake) FrontFace(winding gl.Enum) { f.record("FrontFace", winding) }

func (f *Fake) GenerateMipmap(target gl.Enum) { f.record("GenerateMipmap", target) }

func (f *Fake) GetBufferParameteri(target, pname gl.Enum) int {
	f.record("GetBufferParameteri", target, pname)
	if pname == gl.BUFFER_USAGE {
		return int(f.BufferUsage)
	}
	return f.BufferSize
}

func (f *Fake) GetError() gl.Enum {
	f.record("GetError")
	return f.Error
}

func (f *Fake) GetProgramInfoLog(p gl.Program) string {
	f.record("GetProgramInfoLog", p.V)
	return f.ProgramLog
}

func (f *Fake) GetProgrami(p gl.Program, pname gl.Enum) int {
	f.record("GetProgrami", p.V, pname)
	if pname == gl.LINK_STATUS && !f.linked[p.V] {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *Fake) GetShaderInfoLog(s gl.Shader) string {
	f.record("GetShaderInfoLog", s.V)
	return f.ShaderLog
}

func (f *Fake) GetShaderi(s gl.Shader, pname gl.Enum) int {
	f.record("GetShaderi", s.V, pname)
	if pname == gl.COMPILE_STATUS && !f.compiled[s.V] {
		return gl.FALSE
	}
	return gl.TRUE
}

func (f *Fake) GetUniformLocation(p gl.Program, name string) gl.Uniform {
	f.record("GetUniformLocation", p.V, name)
	if f.UniformLocations == nil {
		return gl.Uniform{V: 0}
	}
	loc, ok := f.UniformLocations[name]
	if !ok {
		return gl.Uniform{V: -1}
	}
	return gl.Uniform{V: loc}
}

func (f *Fake) InvalidateFramebuffer(target gl.Enum, attachments []gl.Enum) {
	f.record("InvalidateFramebuffer", target, attachments)
}

func (f *Fake) LineWidth(width float32) { f.record("LineWidth", width) }

func (f *Fake) LinkProgram(p gl.Program) {
	f.record("LinkProgram", p.V)
	if f.linked == nil {
		f.linked = make(map[uint32]bool)
	}
	f.linked[p.V] = !f.LinkFail
}

func (f *Fake) PolygonOffset(factor, units float32) { f.record("PolygonOffset", factor, units) }

func (f *Fake) ReadBuffer(src gl.Enum) { f.record("ReadBuffer", src) }

func (f *Fake) ReadPixels(x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.record("ReadPixels", x, y, width, height, format, ty, data)
}

func (f *Fake) RenderbufferStorage(target, internalFormat gl.Enum, width, height int) {
	f.record("RenderbufferStorage", target, internalFormat, width, height)
}

func (f *Fake) RenderbufferStorageMultisample(target gl.Enum, samples int, internalFormat gl.Enum, width, height int) {
	f.record("RenderbufferStorageMultisample", target, samples, internalFormat, width, height)
}

func (f *Fake) SampleCoverage(value float32, invert bool) {
	f.record("SampleCoverage", value, invert)
}

func (f *Fake) Scissor(x, y, width, height int) { f.record("Scissor", x, y, width, height) }

func (f *Fake) ShaderSource(s gl.Shader, src string) { f.record("ShaderSource", s.V, len(src)) }

func (f *Fake) StencilFunc(fn gl.Enum, ref int, mask uint32) {
	f.record("StencilFunc", fn, ref, mask)
}

func (f *Fake) StencilMask(mask uint32) { f.record("StencilMask", mask) }

func (f *Fake) StencilOp(sfail, dpfail, dppass gl.Enum) {
	f.record("StencilOp", sfail, dpfail, dppass)
}

func (f *Fake) TexImage2D(target gl.Enum, level int, internalFormat gl.Enum, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexImage2D", target, level, internalFormat, width, height, format, ty, data)
}

func (f *Fake) TexParameterf(target, pname gl.Enum, param float32) {
	f.record("TexParameterf", target, pname, param)
}

func (f *Fake) TexParameteri(target, pname gl.Enum, param int) {
	f.record("TexParameteri", target, pname, param)
}

func (f *Fake) TexStorage2D(target gl.Enum, levels int, internalFormat gl.Enum, width, height int) {
	f.record("TexStorage2D", target, levels, internalFormat, width, height)
}

func (f *Fake) TexSubImage2D(target gl.Enum, level, x, y, width, height int, format, ty gl.Enum, data []byte) {
	f.record("TexSubImage2D", target, level, x, y, width, height, format, ty, data)
}

func (f *Fake) Uniform1f(dst gl.Uniform, v float32) { f.record("Uniform1f", dst.V, v) }

func (f *Fake) Uniform1i(dst gl.Uniform, v int) { f.record("Uniform1i", dst.V, v) }

func (f *Fake) Uniform2f(dst gl.Uniform, v0, v1 float32) { f.record("Uniform2f", dst.V, v0, v1) }

func (f *Fake) Uniform3f(dst gl.Uniform, v0, v1, v2 float32) {
	f.record("Uniform3f", dst.V, v0, v1, v2)
}

func (f *Fake) Uniform4f(dst gl.Uniform, v0, v1, v2, v3 float32) {
	f.record("Uniform4f", dst.V, v0, v1, v2, v3)
}

func (f *Fake) UniformMatrix2fv(dst gl.Uniform, values []float32) {
	f.record("UniformMatrix2fv", dst.V, len(values))
}

func (f *Fake) UniformMatrix3fv(dst gl.Uniform, values []float32) {
	f.record("UniformMatrix3fv", dst.V, len(values))
}

func (f *Fake) UniformMatrix4fv(dst gl.Uniform, values []float32) {
	f.record("UniformMatrix4fv", dst.V, len(values))
}

func (f *Fake) UseProgram(p gl.Program) { f.record("UseProgram", p.V) }

func (f *Fake) VertexAttribIPointer(index uint32, size int, ty gl.Enum, stride, offset int) {
	f.record("VertexAttribIPointer", index, size, ty, stride, offset)
}

func (f *Fake) VertexAttribPointer(index uint32, size int, ty gl.Enum, normalized bool, stride, offset int) {
	f.record("VertexAttribPointer", index, size, ty, normalized, stride, offset)
}

func (f *Fake) Viewport(x, y, width, height int) { f.record("Viewport", x, y, width, height) }
