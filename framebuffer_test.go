package glsafe

import (
	"errors"
	"testing"

	"github.com/gogpu/glsafe/gl"
)

func TestFramebufferCompleteness(t *testing.T) {
	c, _ := newTestContext(t)
	fb := c.NewFramebuffer()

	// Attach a color renderbuffer, then check.
	rb := c.NewRenderbuffer()
	rbTok, err := c.BindRenderbuffer(rb)
	if err != nil {
		t.Fatal(err)
	}
	if err := rbTok.Storage(gl.RGBA8, 64, 64); err != nil {
		t.Fatal(err)
	}
	fbTok, err := c.BindFramebuffer(DrawFramebuffer, fb)
	if err != nil {
		t.Fatal(err)
	}
	if err := fbTok.AttachRenderbuffer(ColorAttachment0, rb); err != nil {
		t.Fatal(err)
	}

	if fb.Complete() {
		t.Fatal("framebuffer complete before any check")
	}
	tok, err := c.CheckFramebufferComplete(DrawFramebuffer, fb)
	if err != nil {
		t.Fatal(err)
	}
	if !fb.Complete() {
		t.Fatal("check succeeded but tag not advanced")
	}
	if tok.Framebuffer() != fb {
		t.Fatal("token occupant mismatch")
	}
}

func TestFramebufferIncompleteReasons(t *testing.T) {
	tests := []struct {
		status gl.Enum
		want   IncompleteReason
	}{
		{gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT, IncompleteAttachment},
		{gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT, IncompleteMissingAttachment},
		{gl.FRAMEBUFFER_UNSUPPORTED, IncompleteUnsupported},
		{gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE, IncompleteMultisample},
		{gl.FRAMEBUFFER_INCOMPLETE_LAYER_TARGETS, IncompleteLayerTargets},
	}
	for _, tt := range tests {
		c, f := newTestContext(t)
		f.Status = tt.status
		fb := c.NewFramebuffer()
		_, err := c.CheckFramebufferComplete(DrawFramebuffer, fb)
		var ie *IncompleteError
		if !errors.As(err, &ie) {
			t.Fatalf("status 0x%X: got %v, want *IncompleteError", uint32(tt.status), err)
		}
		if ie.Reason != tt.want {
			t.Errorf("status 0x%X: reason = %v, want %v", uint32(tt.status), ie.Reason, tt.want)
		}
		if fb.Complete() {
			t.Errorf("status 0x%X: tag advanced on failure", uint32(tt.status))
		}
	}
}

func TestAttachmentsFrozenAfterComplete(t *testing.T) {
	c, _ := newTestContext(t)
	fb := c.NewFramebuffer()
	tok, err := c.CheckFramebufferComplete(DrawFramebuffer, fb)
	if err != nil {
		t.Fatal(err)
	}
	var ise *InvalidStateError
	if err := tok.AttachRenderbuffer(ColorAttachment0, c.NewRenderbuffer()); !errors.As(err, &ise) {
		t.Fatalf("got %v, want *InvalidStateError", err)
	}
}

func TestBindFramebufferBothDisturbsBothSlots(t *testing.T) {
	c, _ := newTestContext(t)
	draw, err := c.BindFramebuffer(DrawFramebuffer, c.NewFramebuffer())
	if err != nil {
		t.Fatal(err)
	}
	read, err := c.BindFramebuffer(ReadFramebuffer, c.NewFramebuffer())
	if err != nil {
		t.Fatal(err)
	}

	newDraw, newRead, err := c.BindFramebufferBoth(c.NewFramebuffer())
	if err != nil {
		t.Fatal(err)
	}

	var sbe *StaleBindingError
	if err := draw.Clear(ClearColor); !errors.As(err, &sbe) {
		t.Errorf("old draw token: got %v, want *StaleBindingError", err)
	}
	if err := read.ReadBuffer(DrawColor0); !errors.As(err, &sbe) {
		t.Errorf("old read token: got %v, want *StaleBindingError", err)
	}
	if err := newDraw.Clear(ClearColor | ClearDepth); err != nil {
		t.Errorf("fresh draw token: %v", err)
	}
	if err := newRead.ReadBuffer(DrawColor0); err != nil {
		t.Errorf("fresh read token: %v", err)
	}
}

func TestFramebufferSlotDirectionality(t *testing.T) {
	c, _ := newTestContext(t)
	draw := c.BindDefaultFramebuffer(DrawFramebuffer)
	read := c.BindDefaultFramebuffer(ReadFramebuffer)

	var ise *InvalidStateError
	if err := read.Clear(ClearColor); !errors.As(err, &ise) {
		t.Errorf("Clear on read slot: got %v, want *InvalidStateError", err)
	}
	if err := draw.ReadPixels(0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 4)); !errors.As(err, &ise) {
		t.Errorf("ReadPixels on draw slot: got %v, want *InvalidStateError", err)
	}
	if err := draw.Clear(ClearColor); err != nil {
		t.Errorf("Clear on draw slot: %v", err)
	}
	if err := read.ReadPixels(0, 0, 1, 1, gl.RGBA, gl.UNSIGNED_BYTE, make([]byte, 4)); err != nil {
		t.Errorf("ReadPixels on read slot: %v", err)
	}
}

func TestDefaultFramebufferHasNoAttachments(t *testing.T) {
	c, _ := newTestContext(t)
	tok := c.BindDefaultFramebuffer(DrawFramebuffer)
	var ise *InvalidStateError
	if err := tok.AttachTexture2D(ColorAttachment0, c.NewTexture(), 0); !errors.As(err, &ise) {
		t.Fatalf("got %v, want *InvalidStateError", err)
	}
}

func TestAttachTexture2DRequires2DKind(t *testing.T) {
	c, _ := newTestContext(t)
	tok, err := c.BindFramebuffer(DrawFramebuffer, c.NewFramebuffer())
	if err != nil {
		t.Fatal(err)
	}

	cube := c.NewTexture()
	if _, err := c.BindTexture(TextureCubeMap, cube); err != nil {
		t.Fatal(err)
	}
	var ise *InvalidStateError
	if err := tok.AttachTexture2D(ColorAttachment0, cube, 0); !errors.As(err, &ise) {
		t.Fatalf("cube texture via AttachTexture2D: got %v, want *InvalidStateError", err)
	}
	if err := tok.AttachCubeFace(ColorAttachment0, cube, CubePositiveZ, 0); err != nil {
		t.Fatalf("AttachCubeFace: %v", err)
	}
}

func TestBlitFramebuffer(t *testing.T) {
	c, f := newTestContext(t)
	read := c.BindDefaultFramebuffer(ReadFramebuffer)
	draw, err := c.BindFramebuffer(DrawFramebuffer, c.NewFramebuffer())
	if err != nil {
		t.Fatal(err)
	}

	// Depth blits must use the nearest filter.
	var ise *InvalidStateError
	if err := c.BlitFramebuffer(read, draw, 0, 0, 8, 8, 0, 0, 8, 8, ClearDepth, BlitLinear); !errors.As(err, &ise) {
		t.Fatalf("linear depth blit: got %v, want *InvalidStateError", err)
	}
	// Swapped token roles are rejected.
	if err := c.BlitFramebuffer(draw, read, 0, 0, 8, 8, 0, 0, 8, 8, ClearColor, BlitNearest); !errors.As(err, &ise) {
		t.Fatalf("swapped tokens: got %v, want *InvalidStateError", err)
	}

	f.TakeCalls()
	if err := c.BlitFramebuffer(read, draw, 0, 0, 8, 8, 0, 0, 16, 16, ClearColor, BlitLinear); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, f.Calls, []string{
		"BlitFramebuffer(0, 0, 8, 8, 0, 0, 16, 16, 0x4000, 0x2601)",
	})
}
