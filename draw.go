package glsafe

import (
	"log/slog"

	"github.com/gogpu/glsafe/gl"
)

// Topology selects how vertices assemble into primitives.
type Topology uint8

const (
	Points Topology = iota
	Lines
	LineLoop
	LineStrip
	Triangles
	TriangleStrip
	TriangleFan
)

func (t Topology) enum() gl.Enum {
	switch t {
	case Points:
		return gl.POINTS
	case Lines:
		return gl.LINES
	case LineLoop:
		return gl.LINE_LOOP
	case LineStrip:
		return gl.LINE_STRIP
	case Triangles:
		return gl.TRIANGLES
	case TriangleStrip:
		return gl.TRIANGLE_STRIP
	default:
		return gl.TRIANGLE_FAN
	}
}

func (t Topology) String() string {
	switch t {
	case Points:
		return "POINTS"
	case Lines:
		return "LINES"
	case LineLoop:
		return "LINE_LOOP"
	case LineStrip:
		return "LINE_STRIP"
	case Triangles:
		return "TRIANGLES"
	case TriangleStrip:
		return "TRIANGLE_STRIP"
	case TriangleFan:
		return "TRIANGLE_FAN"
	default:
		return "TOPOLOGY(?)"
	}
}

// ElementType is the index type of an indexed draw.
type ElementType uint8

const (
	ElementUint8 ElementType = iota
	ElementUint16
	ElementUint32
)

func (e ElementType) enum() gl.Enum {
	switch e {
	case ElementUint8:
		return gl.UNSIGNED_BYTE
	case ElementUint16:
		return gl.UNSIGNED_SHORT
	default:
		return gl.UNSIGNED_INT
	}
}

// Size returns the index size in bytes.
func (e ElementType) Size() int {
	switch e {
	case ElementUint8:
		return 1
	case ElementUint16:
		return 2
	default:
		return 4
	}
}

// ArrayState is the set of live tokens a non-indexed draw requires:
// the vertex array providing attributes, the installed program, and the
// draw framebuffer receiving fragments. Each field must be live at draw
// time; a stale token aborts the draw before any native call.
type ArrayState struct {
	VertexArray *ActiveVertexArray
	Program     *ActiveProgram
	Framebuffer *ActiveFramebuffer
}

// ElementState extends ArrayState with the element-array buffer token
// an indexed draw reads indices from.
type ElementState struct {
	ArrayState
	Elements *ActiveBuffer
}

func (c *Context) drawPreconditions(op string, st ArrayState, first, count, instances int) error {
	if st.VertexArray == nil || st.Program == nil || st.Framebuffer == nil {
		return ErrNilObject
	}
	if st.VertexArray.ctx != c || st.Program.ctx != c || st.Framebuffer.ctx != c {
		return &InvalidStateError{
			Object: "context",
			Op:     op,
			Reason: "token issued by a different context",
		}
	}
	if err := st.VertexArray.occupied(op); err != nil {
		return err
	}
	if err := st.Program.occupied(op); err != nil {
		return err
	}
	if err := st.Framebuffer.live(); err != nil {
		return err
	}
	if st.Framebuffer.target != DrawFramebuffer {
		return &InvalidStateError{
			Object: "framebuffer slot " + st.Framebuffer.target.String(),
			Op:     op,
			Reason: "draws render through the draw slot only",
		}
	}
	if first < 0 || count < 0 || instances < 0 {
		return &InvalidStateError{
			Object: "context",
			Op:     op,
			Reason: "negative first, count, or instance count",
		}
	}
	return nil
}

// DrawArrays renders count consecutive vertices starting at first, with
// the given instance count. Every token in st is revalidated; the first
// stale or unsatisfied one aborts the draw and the driver sees nothing.
// A zero count or instance count draws nothing and is not an error.
func (c *Context) DrawArrays(top Topology, first, count, instances int, st ArrayState) error {
	if err := c.drawPreconditions("DrawArrays", st, first, count, instances); err != nil {
		return err
	}
	if count == 0 || instances == 0 {
		// Nothing to draw.
		return nil
	}
	Logger().Debug("draw arrays",
		slog.String("topology", top.String()),
		slog.Int("count", count),
		slog.Int("instances", instances))
	if instances == 1 {
		c.f.DrawArrays(top.enum(), first, count)
	} else {
		c.f.DrawArraysInstanced(top.enum(), first, count, instances)
	}
	return nil
}

func (c *Context) elementPreconditions(op string, st ElementState, first, count, instances int) error {
	if st.Elements == nil {
		return ErrNilObject
	}
	if err := c.drawPreconditions(op, st.ArrayState, first, count, instances); err != nil {
		return err
	}
	if st.Elements.ctx != c {
		return &InvalidStateError{
			Object: "context",
			Op:     op,
			Reason: "token issued by a different context",
		}
	}
	if err := st.Elements.occupied(op); err != nil {
		return err
	}
	if st.Elements.target != ElementArrayBuffer {
		return &InvalidStateError{
			Object: "buffer slot " + st.Elements.target.String(),
			Op:     op,
			Reason: "indexed draws read indices from the ELEMENT_ARRAY_BUFFER slot",
		}
	}
	return nil
}

// DrawElements renders count indices of the given type, starting at
// index position first within the element-array buffer, with the given
// instance count. The native byte offset is first multiplied by the
// index size.
func (c *Context) DrawElements(top Topology, ty ElementType, first, count, instances int, st ElementState) error {
	if err := c.elementPreconditions("DrawElements", st, first, count, instances); err != nil {
		return err
	}
	if count == 0 || instances == 0 {
		// Nothing to draw.
		return nil
	}
	Logger().Debug("draw elements",
		slog.String("topology", top.String()),
		slog.Int("count", count),
		slog.Int("instances", instances))
	offset := first * ty.Size()
	if instances == 1 {
		c.f.DrawElements(top.enum(), count, ty.enum(), offset)
	} else {
		c.f.DrawElementsInstanced(top.enum(), count, ty.enum(), offset, instances)
	}
	return nil
}

// DrawRangeElements is DrawElements with a hint that every index value
// lies in [start, end]. Indices outside the range are native undefined
// behavior; the range is not checked here. No instanced form exists
// natively.
func (c *Context) DrawRangeElements(top Topology, ty ElementType, start, end uint32, first, count int, st ElementState) error {
	if err := c.elementPreconditions("DrawRangeElements", st, first, count, 1); err != nil {
		return err
	}
	if end < start {
		return &InvalidStateError{
			Object: "context",
			Op:     "DrawRangeElements",
			Reason: "end below start",
		}
	}
	if count == 0 {
		// Nothing to draw.
		return nil
	}
	c.f.DrawRangeElements(top.enum(), start, end, count, ty.enum(), first*ty.Size())
	return nil
}
