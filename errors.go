package glsafe

import (
	"errors"
	"fmt"
)

// Common errors.
var (
	// ErrNoFunctions is returned by Current when no gl.Functions
	// implementation is supplied.
	ErrNoFunctions = errors.New("glsafe: nil gl.Functions")

	// ErrNilObject is returned when a bind or transition operation is
	// given a nil object identifier.
	ErrNilObject = errors.New("glsafe: nil object identifier")
)

// StaleBindingError reports use of an access token after its binding
// slot (or a slot aliasing it) was rebound. The native call is never
// issued; the caller must re-derive the token from the Context.
type StaleBindingError struct {
	// Slot names the binding slot the token belonged to,
	// e.g. "buffer(ELEMENT_ARRAY_BUFFER)" or "texture(TEXTURE_2D)".
	Slot string
}

func (e *StaleBindingError) Error() string {
	return fmt.Sprintf("glsafe: stale token for slot %s: superseded by a later bind", e.Slot)
}

// InvalidStateError reports an operation applied to an object whose
// lifecycle state does not permit it: re-fixing a buffer or texture to a
// different target, using an unlinked program, operating on a default
// (unbound) slot occupant, and similar. The native call is never issued.
type InvalidStateError struct {
	// Object describes the object and its current state.
	Object string
	// Op is the rejected operation.
	Op string
	// Reason explains why the state forbids the operation.
	Reason string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("glsafe: %s: invalid operation %s: %s", e.Object, e.Op, e.Reason)
}

// CompileError reports a native shader compilation failure.
type CompileError struct {
	Stage ShaderStage
	// Log is the driver-provided info log, possibly empty.
	Log string
}

func (e *CompileError) Error() string {
	if e.Log == "" {
		return fmt.Sprintf("glsafe: %s shader compilation failed", e.Stage)
	}
	return fmt.Sprintf("glsafe: %s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a native program link failure.
type LinkError struct {
	// Log is the driver-provided info log, possibly empty.
	Log string
}

func (e *LinkError) Error() string {
	if e.Log == "" {
		return "glsafe: program link failed"
	}
	return "glsafe: program link failed: " + e.Log
}

// IncompleteReason classifies a framebuffer completeness failure.
type IncompleteReason uint32

const (
	// IncompleteUnspecified covers driver-internal errors and statuses
	// this layer does not recognize.
	IncompleteUnspecified IncompleteReason = iota
	// IncompleteAttachment: one or more attachments are themselves
	// framebuffer-incomplete (zero size, unrenderable format).
	IncompleteAttachment
	// IncompleteMissingAttachment: the framebuffer has no attachments.
	IncompleteMissingAttachment
	// IncompleteUnsupported: the combination of internal formats
	// violates an implementation-defined restriction, or depth and
	// stencil refer to different objects.
	IncompleteUnsupported
	// IncompleteMultisample: sample counts differ across attachments.
	IncompleteMultisample
	// IncompleteLayerTargets: a mix of layered and non-layered
	// attachments.
	IncompleteLayerTargets
)

func (r IncompleteReason) String() string {
	switch r {
	case IncompleteAttachment:
		return "incomplete attachment"
	case IncompleteMissingAttachment:
		return "missing attachment"
	case IncompleteUnsupported:
		return "unsupported format combination"
	case IncompleteMultisample:
		return "mismatched sample counts"
	case IncompleteLayerTargets:
		return "mismatched layer targets"
	default:
		return "unspecified"
	}
}

// IncompleteError reports a failed framebuffer completeness check.
type IncompleteError struct {
	Reason IncompleteReason
}

func (e *IncompleteError) Error() string {
	return "glsafe: framebuffer incomplete: " + e.Reason.String()
}
