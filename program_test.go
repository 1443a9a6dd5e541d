package glsafe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glsafe/gl"
)

const (
	testVS = "#version 300 es\nvoid main() { gl_Position = vec4(0.0); }\n"
	testFS = "#version 300 es\nprecision highp float;\nout vec4 o;\nvoid main() { o = vec4(1.0); }\n"
)

func TestCompileShader(t *testing.T) {
	c, _ := newTestContext(t)
	s := c.NewShader(StageVertex)
	require.False(t, s.Compiled())

	require.NoError(t, c.CompileShader(s, testVS))
	assert.True(t, s.Compiled())
	assert.Equal(t, StageVertex, s.Stage())
}

func TestCompileShaderFailure(t *testing.T) {
	c, f := newTestContext(t)
	f.CompileFail = true
	f.ShaderLog = "0:1: syntax error"

	s := c.NewShader(StageFragment)
	err := c.CompileShader(s, "nonsense")
	var ce *CompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, StageFragment, ce.Stage)
	assert.Equal(t, "0:1: syntax error", ce.Log)
	assert.False(t, s.Compiled())

	// The same shader object can retry with a corrected source.
	f.CompileFail = false
	require.NoError(t, c.CompileShader(s, testFS))
	assert.True(t, s.Compiled())
}

func TestAttachRequiresCompiled(t *testing.T) {
	c, _ := newTestContext(t)
	p := c.NewProgram()
	s := c.NewShader(StageVertex)

	var ise *InvalidStateError
	require.ErrorAs(t, c.AttachShader(p, s), &ise)

	require.NoError(t, c.CompileShader(s, testVS))
	require.NoError(t, c.AttachShader(p, s))
}

func TestLinkAndRelink(t *testing.T) {
	c, _ := newTestContext(t)
	p, err := c.BuildProgram(testVS, testFS)
	require.NoError(t, err)
	require.True(t, p.Linked())

	// Re-linking a linked program is legal and leaves it linked.
	require.NoError(t, c.LinkProgram(p))
	assert.True(t, p.Linked())
}

func TestLinkFailure(t *testing.T) {
	c, f := newTestContext(t)
	p, err := c.BuildProgram(testVS, testFS)
	require.NoError(t, err)

	f.LinkFail = true
	f.ProgramLog = "varying mismatch"
	err = c.LinkProgram(p)
	var le *LinkError
	require.ErrorAs(t, err, &le)
	assert.Equal(t, "varying mismatch", le.Log)
	// A failed re-link drops the executable.
	assert.False(t, p.Linked())

	var ise *InvalidStateError
	_, err = c.UseProgram(p)
	require.ErrorAs(t, err, &ise)
}

func TestUseProgramRequiresLinked(t *testing.T) {
	c, f := newTestContext(t)
	p := c.NewProgram()

	f.TakeCalls()
	_, err := c.UseProgram(p)
	var ise *InvalidStateError
	require.ErrorAs(t, err, &ise)
	assert.Empty(t, f.Calls, "rejected UseProgram reached the driver")
}

func TestUniforms(t *testing.T) {
	c, f := newTestContext(t)
	f.UniformLocations = map[string]int32{"transform": 3, "tint": 7}

	p, err := c.BuildProgram(testVS, testFS)
	require.NoError(t, err)
	tok, err := c.UseProgram(p)
	require.NoError(t, err)

	mat, err := tok.UniformLocation("transform")
	require.NoError(t, err)
	tint, err := tok.UniformLocation("tint")
	require.NoError(t, err)

	// Unknown names are an error, not a silent -1.
	_, err = tok.UniformLocation("missing")
	var ise *InvalidStateError
	require.ErrorAs(t, err, &ise)

	f.TakeCalls()
	require.NoError(t, tok.SetMat4(mat, make([]float32, 16)))
	require.NoError(t, tok.SetVec4(tint, 1, 0, 0, 1))
	assertCalls(t, f.Calls, []string{
		"UniformMatrix4fv(3, 16)",
		"Uniform4f(7, 1, 0, 0, 1)",
	})

	// Wrong matrix length is rejected before the driver.
	f.TakeCalls()
	require.ErrorAs(t, tok.SetMat4(mat, make([]float32, 9)), &ise)
	assert.Empty(t, f.Calls)
}

func TestProgramTokenStaleness(t *testing.T) {
	c, _ := newTestContext(t)
	p, err := c.BuildProgram(testVS, testFS)
	require.NoError(t, err)
	tok, err := c.UseProgram(p)
	require.NoError(t, err)

	cleared := c.ClearProgram()

	var sbe *StaleBindingError
	require.ErrorAs(t, tok.SetFloat(gl.Uniform{V: 0}, 1), &sbe)
	assert.Equal(t, "program", sbe.Slot)

	// The cleared slot has no occupant for uniform updates.
	var ise *InvalidStateError
	require.ErrorAs(t, cleared.SetFloat(gl.Uniform{V: 0}, 1), &ise)
}

func TestBuildProgramCallStream(t *testing.T) {
	c, f := newTestContext(t)
	f.TakeCalls()
	_, err := c.BuildProgram(testVS, testFS)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"CreateShader", "ShaderSource", "CompileShader", "GetShaderi",
		"CreateShader", "ShaderSource", "CompileShader", "GetShaderi",
		"CreateProgram", "AttachShader", "AttachShader",
		"LinkProgram", "GetProgrami",
		"DetachShader", "DetachShader",
		"DeleteShader", "DeleteShader",
	}, f.CallNames())
}
