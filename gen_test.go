package glsafe

import (
	"testing"
)

func TestGenBuffersDistinctNames(t *testing.T) {
	c, _ := newTestContext(t)
	bufs := c.GenBuffers(4)
	seen := make(map[uint32]bool)
	for i, b := range bufs {
		if !b.Name().Valid() {
			t.Errorf("buffer %d has zero name", i)
		}
		if seen[b.Name().V] {
			t.Errorf("buffer %d reuses name %d", i, b.Name().V)
		}
		seen[b.Name().V] = true
		if _, fixed := b.Target(); fixed {
			t.Errorf("buffer %d created with a fixed target", i)
		}
	}
}

func TestGenTexturesInitialState(t *testing.T) {
	c, _ := newTestContext(t)
	for i, tex := range c.GenTextures(3) {
		if !tex.Name().Valid() {
			t.Errorf("texture %d has zero name", i)
		}
		if _, fixed := tex.Kind(); fixed {
			t.Errorf("texture %d created with a fixed kind", i)
		}
	}
}

func TestGenFramebuffersIncomplete(t *testing.T) {
	c, _ := newTestContext(t)
	for i, fb := range c.GenFramebuffers(2) {
		if fb.Complete() {
			t.Errorf("framebuffer %d created complete", i)
		}
	}
}

// Deletion is the documented escape hatch: it does no bookkeeping, so
// tokens stay live and any use after delete is the caller's problem.
func TestDeleteDoesNoBookkeeping(t *testing.T) {
	c, f := newTestContext(t)
	buf := c.NewBuffer()
	tok, err := c.BindBuffer(ArrayBuffer, buf)
	if err != nil {
		t.Fatal(err)
	}

	c.DeleteBuffer(buf)
	f.TakeCalls()
	if err := tok.Data([]byte{1}, StaticUsage, DrawUsage); err != nil {
		t.Fatalf("delete disturbed the token: %v", err)
	}
	if len(f.Calls) != 1 {
		t.Fatalf("calls after delete: %v", f.Calls)
	}
}

func TestDeleteNilIsNoOp(t *testing.T) {
	c, f := newTestContext(t)
	f.TakeCalls()
	c.DeleteBuffer(nil)
	c.DeleteTexture(nil)
	c.DeleteProgram(nil)
	if len(f.Calls) != 0 {
		t.Fatalf("nil deletes reached the driver: %v", f.Calls)
	}
}
