package gl

// Functions is the set of native entry points the safety layer issues.
// It is assumed to be backed by a current GL ES 3.x context on the
// calling goroutine; implementations perform no validation of their own.
//
// Implementations are not required to be safe for concurrent use.
type Functions interface {
	ActiveTexture(unit Enum)
	AttachShader(p Program, s Shader)
	BindBuffer(target Enum, b Buffer)
	BindFramebuffer(target Enum, fb Framebuffer)
	BindRenderbuffer(target Enum, rb Renderbuffer)
	BindTexture(target Enum, t Texture)
	BindVertexArray(a VertexArray)
	BlendColor(r, g, b, a float32)
	BlendEquation(mode Enum)
	BlendEquationSeparate(rgb, alpha Enum)
	BlendFunc(sfactor, dfactor Enum)
	BlendFuncSeparate(srcRGB, dstRGB, srcAlpha, dstAlpha Enum)
	BlitFramebuffer(sx0, sy0, sx1, sy1, dx0, dy0, dx1, dy1 int, mask Enum, filter Enum)
	BufferData(target Enum, data []byte, usage Enum)
	BufferSubData(target Enum, offset int, data []byte)
	CheckFramebufferStatus(target Enum) Enum
	Clear(mask Enum)
	ClearColor(r, g, b, a float32)
	ClearDepthf(d float32)
	ClearStencil(s int)
	ColorMask(r, g, b, a bool)
	CompileShader(s Shader)
	CopyBufferSubData(readTarget, writeTarget Enum, readOffset, writeOffset, size int)
	CreateBuffer() Buffer
	CreateFramebuffer() Framebuffer
	CreateProgram() Program
	CreateRenderbuffer() Renderbuffer
	CreateShader(ty Enum) Shader
	CreateTexture() Texture
	CreateVertexArray() VertexArray
	CullFace(mode Enum)
	DeleteBuffer(b Buffer)
	DeleteFramebuffer(fb Framebuffer)
	DeleteProgram(p Program)
	DeleteRenderbuffer(rb Renderbuffer)
	DeleteShader(s Shader)
	DeleteTexture(t Texture)
	DeleteVertexArray(a VertexArray)
	DepthFunc(fn Enum)
	DepthMask(mask bool)
	DepthRangef(near, far float32)
	DetachShader(p Program, s Shader)
	Disable(cap Enum)
	DisableVertexAttribArray(index uint32)
	DrawArrays(mode Enum, first, count int)
	DrawArraysInstanced(mode Enum, first, count, instances int)
	DrawBuffers(bufs []Enum)
	DrawElements(mode Enum, count int, ty Enum, offset int)
	DrawElementsInstanced(mode Enum, count int, ty Enum, offset, instances int)
	DrawRangeElements(mode Enum, start, end uint32, count int, ty Enum, offset int)
	Enable(cap Enum)
	EnableVertexAttribArray(index uint32)
	FramebufferRenderbuffer(target, attachment Enum, rb Renderbuffer)
	FramebufferTexture2D(target, attachment, texTarget Enum, t Texture, level int)
	FrontFace(winding Enum)
	GenerateMipmap(target Enum)
	GetBufferParameteri(target, pname Enum) int
	GetError() Enum
	GetProgramInfoLog(p Program) string
	GetProgrami(p Program, pname Enum) int
	GetShaderInfoLog(s Shader) string
	GetShaderi(s Shader, pname Enum) int
	GetUniformLocation(p Program, name string) Uniform
	InvalidateFramebuffer(target Enum, attachments []Enum)
	LineWidth(width float32)
	LinkProgram(p Program)
	PolygonOffset(factor, units float32)
	ReadBuffer(src Enum)
	ReadPixels(x, y, width, height int, format, ty Enum, data []byte)
	RenderbufferStorage(target, internalFormat Enum, width, height int)
	RenderbufferStorageMultisample(target Enum, samples int, internalFormat Enum, width, height int)
	SampleCoverage(value float32, invert bool)
	Scissor(x, y, width, height int)
	ShaderSource(s Shader, src string)
	StencilFunc(fn Enum, ref int, mask uint32)
	StencilMask(mask uint32)
	StencilOp(sfail, dpfail, dppass Enum)
	TexImage2D(target Enum, level int, internalFormat Enum, width, height int, format, ty Enum, data []byte)
	TexParameterf(target, pname Enum, param float32)
	TexParameteri(target, pname Enum, param int)
	TexStorage2D(target Enum, levels int, internalFormat Enum, width, height int)
	TexSubImage2D(target Enum, level, x, y, width, height int, format, ty Enum, data []byte)
	Uniform1f(dst Uniform, v float32)
	Uniform1i(dst Uniform, v int)
	Uniform2f(dst Uniform, v0, v1 float32)
	Uniform3f(dst Uniform, v0, v1, v2 float32)
	Uniform4f(dst Uniform, v0, v1, v2, v3 float32)
	UniformMatrix2fv(dst Uniform, values []float32)
	UniformMatrix3fv(dst Uniform, values []float32)
	UniformMatrix4fv(dst Uniform, values []float32)
	UseProgram(p Program)
	VertexAttribIPointer(index uint32, size int, ty Enum, stride, offset int)
	VertexAttribPointer(index uint32, size int, ty Enum, normalized bool, stride, offset int)
	Viewport(x, y, width, height int)
}
