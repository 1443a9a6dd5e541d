// Package gl defines the foreign call surface consumed by glsafe.
//
// The package contains no driver code. It declares the [Functions]
// interface — one method per OpenGL ES 3.0 entry point the safety layer
// issues — together with the handle and enum types those methods use.
// A concrete implementation (cgo bindings, a WebGL shim, or the test
// fake in internal/gltest) is supplied by the caller when constructing
// a glsafe Context.
//
// Handle types wrap the raw GL object name. The zero name is the GL
// "default object" (or null, depending on category); Valid reports
// whether a handle refers to an application-created object.
package gl
