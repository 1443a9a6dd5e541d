package glsafe

// Object creation and deletion. Fresh objects start at the beginning of
// their category's lifecycle: buffers and textures targetless, shaders
// uncompiled, programs unlinked, framebuffers incomplete.
//
// Deletion performs no bookkeeping. It accepts objects in any lifecycle
// state, bumps no slot generation, and does not mark the Go value;
// using an object after deleting it is native undefined behavior the
// caller takes on. See the package documentation.

// NewBuffer creates a single targetless buffer object.
func (c *Context) NewBuffer() *Buffer {
	return &Buffer{name: c.f.CreateBuffer()}
}

// GenBuffers creates n targetless buffer objects with distinct names.
func (c *Context) GenBuffers(n int) []*Buffer {
	bs := make([]*Buffer, n)
	for i := range bs {
		bs[i] = c.NewBuffer()
	}
	return bs
}

// NewTexture creates a single kindless texture object.
func (c *Context) NewTexture() *Texture {
	return &Texture{name: c.f.CreateTexture()}
}

// GenTextures creates n kindless texture objects with distinct names.
func (c *Context) GenTextures(n int) []*Texture {
	ts := make([]*Texture, n)
	for i := range ts {
		ts[i] = c.NewTexture()
	}
	return ts
}

// NewFramebuffer creates a single incomplete framebuffer object.
func (c *Context) NewFramebuffer() *Framebuffer {
	return &Framebuffer{name: c.f.CreateFramebuffer()}
}

// GenFramebuffers creates n incomplete framebuffer objects with
// distinct names.
func (c *Context) GenFramebuffers(n int) []*Framebuffer {
	fs := make([]*Framebuffer, n)
	for i := range fs {
		fs[i] = c.NewFramebuffer()
	}
	return fs
}

// NewRenderbuffer creates a single renderbuffer object.
func (c *Context) NewRenderbuffer() *Renderbuffer {
	return &Renderbuffer{name: c.f.CreateRenderbuffer()}
}

// GenRenderbuffers creates n renderbuffer objects with distinct names.
func (c *Context) GenRenderbuffers(n int) []*Renderbuffer {
	rs := make([]*Renderbuffer, n)
	for i := range rs {
		rs[i] = c.NewRenderbuffer()
	}
	return rs
}

// NewVertexArray creates a single vertex array object.
func (c *Context) NewVertexArray() *VertexArray {
	return &VertexArray{name: c.f.CreateVertexArray()}
}

// GenVertexArrays creates n vertex array objects with distinct names.
func (c *Context) GenVertexArrays(n int) []*VertexArray {
	vs := make([]*VertexArray, n)
	for i := range vs {
		vs[i] = c.NewVertexArray()
	}
	return vs
}

// DeleteBuffer releases the native buffer object.
func (c *Context) DeleteBuffer(b *Buffer) {
	if b != nil {
		c.f.DeleteBuffer(b.name)
	}
}

// DeleteTexture releases the native texture object.
func (c *Context) DeleteTexture(t *Texture) {
	if t != nil {
		c.f.DeleteTexture(t.name)
	}
}

// DeleteFramebuffer releases the native framebuffer object.
func (c *Context) DeleteFramebuffer(f *Framebuffer) {
	if f != nil {
		c.f.DeleteFramebuffer(f.name)
	}
}

// DeleteRenderbuffer releases the native renderbuffer object.
func (c *Context) DeleteRenderbuffer(r *Renderbuffer) {
	if r != nil {
		c.f.DeleteRenderbuffer(r.name)
	}
}

// DeleteVertexArray releases the native vertex array object.
func (c *Context) DeleteVertexArray(v *VertexArray) {
	if v != nil {
		c.f.DeleteVertexArray(v.name)
	}
}

// DeleteShader releases the native shader object.
func (c *Context) DeleteShader(s *Shader) {
	if s != nil {
		c.f.DeleteShader(s.name)
	}
}

// DeleteProgram releases the native program object.
func (c *Context) DeleteProgram(p *Program) {
	if p != nil {
		c.f.DeleteProgram(p.name)
	}
}
