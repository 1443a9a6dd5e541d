// Package shader translates WGSL shader sources to the GLSL ES 3.00
// dialect Context.CompileShader consumes. Translation is pure CPU work
// with no GL dependency; it can run before any context exists.
package shader

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"
)

// Source is a translated shader ready for compilation.
type Source struct {
	// GLSL is the generated GLSL ES 3.00 source.
	GLSL string
	// EntryPoint is the generated GLSL name of the requested entry
	// point. GLSL entry points are always main, but the mapping is
	// reported for diagnostics.
	EntryPoint string
}

// Options configures a translation.
type Options struct {
	// EntryPoint selects the WGSL entry point to translate. If empty,
	// the first entry point of the matching stage is used.
	EntryPoint string
	// UniformBindingBase offsets uniform buffer binding indices, for
	// callers that partition binding space between shader sets.
	UniformBindingBase uint32
}

// TranslateES300 translates one entry point of a WGSL module to GLSL
// ES 3.00. The same WGSL source is typically translated twice, once for
// the vertex entry point and once for the fragment entry point.
func TranslateES300(wgslSrc string, opts Options) (Source, error) {
	ast, err := naga.Parse(wgslSrc)
	if err != nil {
		return Source{}, fmt.Errorf("shader: parse: %w", err)
	}
	module, err := naga.LowerWithSource(ast, wgslSrc)
	if err != nil {
		return Source{}, fmt.Errorf("shader: lower: %w", err)
	}
	out, info, err := glsl.Compile(module, glsl.Options{
		LangVersion:        glsl.VersionES300,
		EntryPoint:         opts.EntryPoint,
		UniformBindingBase: opts.UniformBindingBase,
		ForceHighPrecision: true,
	})
	if err != nil {
		return Source{}, fmt.Errorf("shader: emit: %w", err)
	}
	src := Source{GLSL: out}
	if opts.EntryPoint != "" {
		src.EntryPoint = info.EntryPointNames[opts.EntryPoint]
	}
	return src, nil
}
