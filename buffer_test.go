package glsafe

import (
	"errors"
	"testing"

	"github.com/gogpu/glsafe/internal/gltest"
)

func newTestContext(t *testing.T) (*Context, *gltest.Fake) {
	t.Helper()
	f := &gltest.Fake{}
	c, err := Current(f)
	if err != nil {
		t.Fatalf("Current: %v", err)
	}
	return c, f
}

func TestBufferTargetFixation(t *testing.T) {
	c, f := newTestContext(t)
	buf := c.NewBuffer()

	if _, fixed := buf.Target(); fixed {
		t.Fatal("fresh buffer should have no target")
	}
	if _, err := c.BindBuffer(ArrayBuffer, buf); err != nil {
		t.Fatalf("first bind: %v", err)
	}
	if target, fixed := buf.Target(); !fixed || target != ArrayBuffer {
		t.Fatalf("target = %v fixed = %v, want ARRAY_BUFFER fixed", target, fixed)
	}

	f.TakeCalls()
	_, err := c.BindBuffer(ElementArrayBuffer, buf)
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("cross-target bind: got %v, want *InvalidStateError", err)
	}
	if len(f.Calls) != 0 {
		t.Fatalf("cross-target bind reached the driver: %v", f.Calls)
	}

	// Re-binding to the fixed target stays legal.
	if _, err := c.BindBuffer(ArrayBuffer, buf); err != nil {
		t.Fatalf("re-bind to fixed target: %v", err)
	}
}

func TestBufferTokenStaleness(t *testing.T) {
	c, f := newTestContext(t)
	first := c.NewBuffer()
	second := c.NewBuffer()

	tok, err := c.BindBuffer(ArrayBuffer, first)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.BindBuffer(ArrayBuffer, second); err != nil {
		t.Fatal(err)
	}

	f.TakeCalls()
	err = tok.Data([]byte{1, 2, 3}, StaticUsage, DrawUsage)
	var sbe *StaleBindingError
	if !errors.As(err, &sbe) {
		t.Fatalf("got %v, want *StaleBindingError", err)
	}
	if sbe.Slot != "buffer(ARRAY_BUFFER)" {
		t.Fatalf("slot = %q", sbe.Slot)
	}
	if len(f.Calls) != 0 {
		t.Fatalf("stale op reached the driver: %v", f.Calls)
	}
}

func TestBufferSlotsIndependent(t *testing.T) {
	c, _ := newTestContext(t)
	array, err := c.BindBuffer(ArrayBuffer, c.NewBuffer())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.BindBuffer(UniformBuffer, c.NewBuffer()); err != nil {
		t.Fatal(err)
	}
	// A bind on a disjoint target leaves the ARRAY token valid.
	if err := array.Data([]byte{1}, StaticUsage, DrawUsage); err != nil {
		t.Fatalf("independent slot disturbed the token: %v", err)
	}
}

func TestUnboundBufferOps(t *testing.T) {
	c, f := newTestContext(t)
	tok := c.UnbindBuffer(ArrayBuffer)

	f.TakeCalls()
	err := tok.Data([]byte{1}, StaticUsage, DrawUsage)
	var ise *InvalidStateError
	if !errors.As(err, &ise) {
		t.Fatalf("got %v, want *InvalidStateError", err)
	}
	if len(f.Calls) != 0 {
		t.Fatalf("op on empty slot reached the driver: %v", f.Calls)
	}
}

func TestBufferDataCallStream(t *testing.T) {
	c, f := newTestContext(t)
	tok, err := c.BindBuffer(UniformBuffer, c.NewBuffer())
	if err != nil {
		t.Fatal(err)
	}

	f.TakeCalls()
	if err := tok.Data(make([]byte, 16), DynamicUsage, DrawUsage); err != nil {
		t.Fatal(err)
	}
	if err := tok.SubData(4, make([]byte, 8)); err != nil {
		t.Fatal(err)
	}
	want := []string{
		"BufferData(0x8A11, len=16, 0x88E8)",
		"BufferSubData(0x8A11, 4, len=8)",
	}
	assertCalls(t, f.Calls, want)
}

func TestBufferSubDataNegativeOffset(t *testing.T) {
	c, _ := newTestContext(t)
	tok, err := c.BindBuffer(ArrayBuffer, c.NewBuffer())
	if err != nil {
		t.Fatal(err)
	}
	var ise *InvalidStateError
	if err := tok.SubData(-1, []byte{1}); !errors.As(err, &ise) {
		t.Fatalf("got %v, want *InvalidStateError", err)
	}
}

func TestBufferCopy(t *testing.T) {
	c, f := newTestContext(t)
	src, err := c.BindBuffer(CopyReadBuffer, c.NewBuffer())
	if err != nil {
		t.Fatal(err)
	}
	dst, err := c.BindBuffer(CopyWriteBuffer, c.NewBuffer())
	if err != nil {
		t.Fatal(err)
	}

	f.TakeCalls()
	if err := dst.CopyFrom(src, 0, 8, 16); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, f.Calls, []string{"CopyBufferSubData(0x8F36, 0x8F37, 0, 8, 16)"})

	// Zero-length copies are a no-op.
	f.TakeCalls()
	if err := dst.CopyFrom(src, 0, 0, 0); err != nil {
		t.Fatal(err)
	}
	if len(f.Calls) != 0 {
		t.Fatalf("zero-length copy reached the driver: %v", f.Calls)
	}
}

func TestBufferCopyWithinOverlap(t *testing.T) {
	c, f := newTestContext(t)
	tok, err := c.BindBuffer(CopyWriteBuffer, c.NewBuffer())
	if err != nil {
		t.Fatal(err)
	}

	f.TakeCalls()
	var ise *InvalidStateError
	if err := tok.CopyWithin(0, 4, 32); !errors.As(err, &ise) {
		t.Fatalf("got %v, want *InvalidStateError", err)
	}
	if err := tok.CopyWithin(4, 0, 32); !errors.As(err, &ise) {
		t.Fatalf("got %v, want *InvalidStateError", err)
	}
	if len(f.Calls) != 0 {
		t.Fatalf("overlapping copy reached the driver: %v", f.Calls)
	}

	// Disjoint ranges go through.
	if err := tok.CopyWithin(0, 32, 32); err != nil {
		t.Fatal(err)
	}
	assertCalls(t, f.Calls, []string{"CopyBufferSubData(0x8F37, 0x8F37, 0, 32, 32)"})
}

func TestBufferUsageRoundTrip(t *testing.T) {
	tests := []struct {
		freq   UsageFrequency
		nature UsageNature
	}{
		{StaticUsage, DrawUsage},
		{StaticUsage, ReadUsage},
		{StreamUsage, CopyUsage},
		{DynamicUsage, DrawUsage},
		{DynamicUsage, ReadUsage},
	}
	for _, tt := range tests {
		c, _ := newTestContext(t)
		tok, err := c.BindBuffer(ArrayBuffer, c.NewBuffer())
		if err != nil {
			t.Fatal(err)
		}
		if err := tok.Data(make([]byte, 4), tt.freq, tt.nature); err != nil {
			t.Fatal(err)
		}
		freq, nature, err := tok.Usage()
		if err != nil {
			t.Fatal(err)
		}
		if freq != tt.freq || nature != tt.nature {
			t.Errorf("Usage() = (%v, %v), want (%v, %v)", freq, nature, tt.freq, tt.nature)
		}
		n, err := tok.Len()
		if err != nil {
			t.Fatal(err)
		}
		if n != 4 {
			t.Errorf("Len() = %d, want 4", n)
		}
	}
}

func assertCalls(t *testing.T, got, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("call stream length %d, want %d:\ngot  %v\nwant %v", len(got), len(want), got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("call %d = %q, want %q", i, got[i], want[i])
		}
	}
}
