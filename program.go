package glsafe

import (
	"fmt"
	"log/slog"

	"github.com/gogpu/glsafe/gl"
)

// ShaderStage names a programmable pipeline stage.
type ShaderStage uint8

const (
	StageVertex ShaderStage = iota
	StageFragment
)

func (s ShaderStage) enum() gl.Enum {
	if s == StageVertex {
		return gl.VERTEX_SHADER
	}
	return gl.FRAGMENT_SHADER
}

func (s ShaderStage) String() string {
	if s == StageVertex {
		return "vertex"
	}
	return "fragment"
}

// Shader is an application-owned shader object. A fresh shader is
// uncompiled; CompileShader advances it to compiled, which is the state
// AttachShader requires.
type Shader struct {
	name     gl.Shader
	stage    ShaderStage
	compiled bool
}

// Name returns the raw handle.
func (s *Shader) Name() gl.Shader { return s.name }

// Stage returns the pipeline stage the shader was created for.
func (s *Shader) Stage() ShaderStage { return s.stage }

// Compiled reports whether compilation has succeeded.
func (s *Shader) Compiled() bool { return s.compiled }

// NewShader creates an uncompiled shader object for the given stage.
func (c *Context) NewShader(stage ShaderStage) *Shader {
	return &Shader{name: c.f.CreateShader(stage.enum()), stage: stage}
}

// CompileShader uploads src and compiles the shader. On success the
// shader advances to compiled. On failure the shader stays uncompiled
// and the error carries the driver info log; the shader object may be
// reused with a corrected source.
func (c *Context) CompileShader(s *Shader, src string) error {
	if s == nil {
		return ErrNilObject
	}
	c.f.ShaderSource(s.name, src)
	c.f.CompileShader(s.name)
	if c.f.GetShaderi(s.name, gl.COMPILE_STATUS) == gl.FALSE {
		log := c.f.GetShaderInfoLog(s.name)
		Logger().Debug("shader compilation failed",
			slog.String("stage", s.stage.String()),
			slog.String("log", log))
		return &CompileError{Stage: s.stage, Log: log}
	}
	s.compiled = true
	return nil
}

// Program is an application-owned program object. A fresh program is
// unlinked; LinkProgram advances it to linked. Re-linking a linked
// program is legal and leaves it linked. Only linked programs may be
// installed with UseProgram.
type Program struct {
	name   gl.Program
	linked bool
}

// Name returns the raw handle.
func (p *Program) Name() gl.Program { return p.name }

// Linked reports whether the most recent link succeeded.
func (p *Program) Linked() bool { return p.linked }

// NewProgram creates an unlinked program object.
func (c *Context) NewProgram() *Program {
	return &Program{name: c.f.CreateProgram()}
}

// AttachShader attaches a compiled shader to the program. Attaching an
// uncompiled shader is rejected here even though the native call would
// accept it, because the subsequent link can only fail.
func (c *Context) AttachShader(p *Program, s *Shader) error {
	if p == nil || s == nil {
		return ErrNilObject
	}
	if !s.compiled {
		return &InvalidStateError{
			Object: "uncompiled " + s.stage.String() + " shader",
			Op:     "AttachShader",
			Reason: "only compiled shaders may be attached",
		}
	}
	c.f.AttachShader(p.name, s.name)
	return nil
}

// DetachShader detaches a shader from the program. The program's link
// state is unaffected; a linked program keeps its executable.
func (c *Context) DetachShader(p *Program, s *Shader) error {
	if p == nil || s == nil {
		return ErrNilObject
	}
	c.f.DetachShader(p.name, s.name)
	return nil
}

// LinkProgram links the program from its attached shaders. On success
// the program advances to (or remains) linked; re-linking is legal. On
// failure the program drops back to unlinked and the error carries the
// driver info log. A failed re-link invalidates the previous executable
// natively, so the regression is deliberate.
func (c *Context) LinkProgram(p *Program) error {
	if p == nil {
		return ErrNilObject
	}
	c.f.LinkProgram(p.name)
	if c.f.GetProgrami(p.name, gl.LINK_STATUS) == gl.FALSE {
		log := c.f.GetProgramInfoLog(p.name)
		p.linked = false
		Logger().Debug("program link failed", slog.String("log", log))
		return &LinkError{Log: log}
	}
	p.linked = true
	return nil
}

// BuildProgram compiles the two sources and links them into a fresh
// program. Shaders are detached after a successful link; their objects
// are deleted since nothing else can use them.
func (c *Context) BuildProgram(vertexSrc, fragmentSrc string) (*Program, error) {
	vs := c.NewShader(StageVertex)
	defer c.f.DeleteShader(vs.name)
	if err := c.CompileShader(vs, vertexSrc); err != nil {
		return nil, err
	}
	fs := c.NewShader(StageFragment)
	defer c.f.DeleteShader(fs.name)
	if err := c.CompileShader(fs, fragmentSrc); err != nil {
		return nil, err
	}
	p := c.NewProgram()
	if err := c.AttachShader(p, vs); err != nil {
		return nil, err
	}
	if err := c.AttachShader(p, fs); err != nil {
		return nil, err
	}
	if err := c.LinkProgram(p); err != nil {
		c.f.DeleteProgram(p.name)
		return nil, err
	}
	c.f.DetachShader(p.name, vs.name)
	c.f.DetachShader(p.name, fs.name)
	return p, nil
}

// ActiveProgram proves the program is installed in the use-program
// slot. Uniform updates go through it, since native uniform calls
// target the installed program.
type ActiveProgram struct {
	ctx  *Context
	gen  uint64
	prog *Program // nil when no program is installed
}

// UseProgram installs a linked program in the use-program slot and
// returns the access token. The previous token, if any, is invalidated.
// Unlinked programs are rejected with *InvalidStateError and the slot
// is left undisturbed.
func (c *Context) UseProgram(p *Program) (*ActiveProgram, error) {
	if p == nil {
		return nil, ErrNilObject
	}
	if !p.linked {
		return nil, &InvalidStateError{
			Object: "unlinked program",
			Op:     "UseProgram",
			Reason: "only linked programs may be installed",
		}
	}
	gen := c.program.bump()
	c.f.UseProgram(p.name)
	return &ActiveProgram{ctx: c, gen: gen, prog: p}, nil
}

// ClearProgram uninstalls any program from the use-program slot.
func (c *Context) ClearProgram() *ActiveProgram {
	gen := c.program.bump()
	c.f.UseProgram(gl.Program{})
	return &ActiveProgram{ctx: c, gen: gen}
}

// Program returns the occupant at install time, or nil if the slot was
// cleared.
func (a *ActiveProgram) Program() *Program { return a.prog }

func (a *ActiveProgram) occupied(op string) error {
	if err := a.ctx.program.stale(a.gen); err != nil {
		return err
	}
	if a.prog == nil {
		return &InvalidStateError{
			Object: "use-program slot",
			Op:     op,
			Reason: "no program is installed",
		}
	}
	return nil
}

// UniformLocation looks up a uniform by name in the installed program.
// An unknown or optimized-out name is an error, distinguishing it from
// the native API's silent -1.
func (a *ActiveProgram) UniformLocation(name string) (gl.Uniform, error) {
	if err := a.occupied("UniformLocation"); err != nil {
		return gl.Uniform{V: -1}, err
	}
	u := a.ctx.f.GetUniformLocation(a.prog.name, name)
	if !u.Valid() {
		return u, &InvalidStateError{
			Object: "program",
			Op:     "UniformLocation",
			Reason: fmt.Sprintf("no active uniform named %q", name),
		}
	}
	return u, nil
}

// SetFloat sets a float uniform of the installed program.
func (a *ActiveProgram) SetFloat(dst gl.Uniform, v float32) error {
	if err := a.occupied("SetFloat"); err != nil {
		return err
	}
	a.ctx.f.Uniform1f(dst, v)
	return nil
}

// SetInt sets an int, bool, or sampler uniform of the installed program.
func (a *ActiveProgram) SetInt(dst gl.Uniform, v int) error {
	if err := a.occupied("SetInt"); err != nil {
		return err
	}
	a.ctx.f.Uniform1i(dst, v)
	return nil
}

// SetVec2 sets a vec2 uniform of the installed program.
func (a *ActiveProgram) SetVec2(dst gl.Uniform, x, y float32) error {
	if err := a.occupied("SetVec2"); err != nil {
		return err
	}
	a.ctx.f.Uniform2f(dst, x, y)
	return nil
}

// SetVec3 sets a vec3 uniform of the installed program.
func (a *ActiveProgram) SetVec3(dst gl.Uniform, x, y, z float32) error {
	if err := a.occupied("SetVec3"); err != nil {
		return err
	}
	a.ctx.f.Uniform3f(dst, x, y, z)
	return nil
}

// SetVec4 sets a vec4 uniform of the installed program.
func (a *ActiveProgram) SetVec4(dst gl.Uniform, x, y, z, w float32) error {
	if err := a.occupied("SetVec4"); err != nil {
		return err
	}
	a.ctx.f.Uniform4f(dst, x, y, z, w)
	return nil
}

// SetMat2 sets a mat2 uniform from 4 column-major values.
func (a *ActiveProgram) SetMat2(dst gl.Uniform, values []float32) error {
	if err := a.matrixArgs("SetMat2", values, 4); err != nil {
		return err
	}
	a.ctx.f.UniformMatrix2fv(dst, values)
	return nil
}

// SetMat3 sets a mat3 uniform from 9 column-major values.
func (a *ActiveProgram) SetMat3(dst gl.Uniform, values []float32) error {
	if err := a.matrixArgs("SetMat3", values, 9); err != nil {
		return err
	}
	a.ctx.f.UniformMatrix3fv(dst, values)
	return nil
}

// SetMat4 sets a mat4 uniform from 16 column-major values.
func (a *ActiveProgram) SetMat4(dst gl.Uniform, values []float32) error {
	if err := a.matrixArgs("SetMat4", values, 16); err != nil {
		return err
	}
	a.ctx.f.UniformMatrix4fv(dst, values)
	return nil
}

func (a *ActiveProgram) matrixArgs(op string, values []float32, want int) error {
	if err := a.occupied(op); err != nil {
		return err
	}
	if len(values) != want {
		return &InvalidStateError{
			Object: "use-program slot",
			Op:     op,
			Reason: fmt.Sprintf("matrix needs %d values, got %d", want, len(values)),
		}
	}
	return nil
}
