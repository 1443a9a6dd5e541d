// Package glsafe is a state-tracking safety layer over OpenGL ES 3.x.
//
// The native API is a large mutable global: a handful of binding slots
// (buffer targets, the texture units, the draw and read framebuffers,
// the vertex array, the program in use) that every upload and draw call
// implicitly reads. Two classes of mistakes follow from that shape and
// both are caught here before the driver ever sees them:
//
//   - Lifecycle misuse. Each object category has a small state machine
//     (a buffer's target is fixed by its first bind, a shader must
//     compile before it attaches, only linked programs install). Every
//     object carries its lifecycle tag, and operations that the tag
//     does not permit return *InvalidStateError.
//
//   - Stale bindings. Binding a slot returns an exclusive access token
//     pinned to a generation counter on that slot. Any later bind of
//     the same slot, or of a slot that aliases it, advances the counter
//     and ends every earlier token. Operations on an ended token return
//     *StaleBindingError. Aliasing follows the native context state
//     rules: switching the active texture unit disturbs all four
//     texture kind slots, binding a vertex array disturbs the
//     ELEMENT_ARRAY_BUFFER slot, and binding through the combined
//     framebuffer target disturbs both the draw and read slots.
//
// Draw calls are gated on the full set of state they depend on: the
// ArrayState and ElementState parameters of DrawArrays and DrawElements
// hold the required live tokens, and each draw revalidates all of them
// before issuing exactly one native call.
//
// Construction wraps a caller-supplied gl.Functions:
//
//	ctx, err := glsafe.Current(funcs)
//
// The package never loads a driver; funcs must be backed by a GL ES 3.x
// context current on the calling goroutine (lock the OS thread). One
// Context per native context; the Context and everything derived from
// it are confined to that thread and perform no locking. SetLogger is
// the only goroutine-safe entry point.
//
// # Unchecked operations
//
// The layer prevents state-machine misuse, not all undefined behavior.
// The following remain the caller's responsibility:
//
//   - Use after delete. Delete* does no bookkeeping; the Go values
//     still carry their old tags and tokens are not disturbed.
//   - Out-of-range vertex or index fetches. Counts and offsets are
//     checked only for negativity.
//   - Attribute layout mismatches between the vertex array and the
//     program's inputs.
//   - Framebuffer completeness decaying after a successful check, for
//     example by respecifying an attached texture through another
//     binding. The complete tag is advisory.
//   - Anything issued directly through Context.Functions.
package glsafe
