package gl

// Enum is a raw GLenum value.
type Enum uint32

// Handle types for the GL object categories. Each wraps the GL "name",
// the unique non-zero ID used to address the object in native calls.
type (
	Buffer       struct{ V uint32 }
	Framebuffer  struct{ V uint32 }
	Program      struct{ V uint32 }
	Renderbuffer struct{ V uint32 }
	Shader       struct{ V uint32 }
	Texture      struct{ V uint32 }
	VertexArray  struct{ V uint32 }
	Uniform      struct{ V int32 }
)

func (b Buffer) Valid() bool       { return b.V != 0 }
func (f Framebuffer) Valid() bool  { return f.V != 0 }
func (p Program) Valid() bool      { return p.V != 0 }
func (r Renderbuffer) Valid() bool { return r.V != 0 }
func (s Shader) Valid() bool       { return s.V != 0 }
func (t Texture) Valid() bool      { return t.V != 0 }
func (a VertexArray) Valid() bool  { return a.V != 0 }

// Valid reports whether the uniform location exists. GL returns -1 for
// names not present in the linked program.
func (u Uniform) Valid() bool { return u.V != -1 }
