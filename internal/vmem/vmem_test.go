package vmem

import (
	"errors"
	"testing"

	"github.com/momentics/hioload-ring/api"
)

func TestRoundUp(t *testing.T) {
	ps := PageSize()
	if ps <= 0 || ps&(ps-1) != 0 {
		t.Fatalf("PageSize() = %d, want a positive power of two", ps)
	}
	cases := []struct {
		in, want int
	}{
		{1, ps},
		{ps - 1, ps},
		{ps, ps},
		{ps + 1, 2 * ps},
		{10 * ps, 10 * ps},
	}
	for _, tc := range cases {
		got, err := RoundUp(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("RoundUp(%d) = %d, %v; want %d", tc.in, got, err, tc.want)
		}
	}
}

func TestRoundUpErrors(t *testing.T) {
	if _, err := RoundUp(0); !errors.Is(err, api.ErrInvalidArgument) {
		t.Errorf("RoundUp(0) error = %v", err)
	}
	if _, err := RoundUp(-5); api.CodeOf(err) != api.ErrCodeInvalidArgument {
		t.Errorf("RoundUp(-5) code = %v", api.CodeOf(err))
	}
	if _, err := RoundUp(int(^uint(0) >> 1)); !errors.Is(err, api.ErrResourceExhausted) {
		t.Errorf("RoundUp(MaxInt) error = %v", err)
	}
}

func TestPlainRegion(t *testing.T) {
	r, err := NewProvider(ModePlainOnly, nil).Allocate(100)
	if err != nil {
		t.Fatal(err)
	}
	if r.Mirrored() {
		t.Fatal("plain region claims to be mirrored")
	}
	if r.Size() != PageSize() || len(r.Bytes()) != 2*r.Size() {
		t.Fatalf("size %d bytes %d", r.Size(), len(r.Bytes()))
	}
	mem := r.Bytes()
	mem[0] = 1
	if mem[r.Size()] != 0 {
		t.Fatal("plain halves alias")
	}
	if err := r.Release(); err != nil {
		t.Fatal(err)
	}
	if err := r.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
	if r.Bytes() != nil {
		t.Fatal("Bytes after Release is not nil")
	}
}

func TestMirroredRegionAliases(t *testing.T) {
	r, err := NewProvider(ModeMirrorOnly, nil).Allocate(3 * PageSize())
	if err != nil {
		if errors.Is(err, api.ErrMirrorUnsupported) || errors.Is(err, api.ErrResourceExhausted) {
			t.Skipf("mirroring unavailable: %v", err)
		}
		t.Fatal(err)
	}
	defer r.Release()
	if !r.Mirrored() {
		t.Fatal("ModeMirrorOnly returned a plain region")
	}
	size := r.Size()
	mem := r.Bytes()
	for _, k := range []int{0, 1, size / 2, size - 1} {
		mem[k] = byte(k + 1)
		if mem[k+size] != byte(k+1) {
			t.Fatalf("write at %d not visible at %d", k, k+size)
		}
		mem[k+size] = 0xCC
		if mem[k] != 0xCC {
			t.Fatalf("write at %d not visible at %d", k+size, k)
		}
	}
	// A copy straddling the boundary lands at the start.
	copy(mem[size-2:], []byte{9, 8, 7, 6})
	if mem[0] != 7 || mem[1] != 6 {
		t.Fatalf("straddling copy wrapped to %d %d", mem[0], mem[1])
	}
}

func TestDefaultModeAlwaysAllocates(t *testing.T) {
	p := NewProvider(ModeMirrorOrPlain, nil)
	if p.Mode() != ModeMirrorOrPlain {
		t.Fatalf("Mode() = %v", p.Mode())
	}
	r, err := p.Allocate(1)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Release()
	if len(r.Bytes()) != 2*r.Size() {
		t.Fatalf("bytes %d, size %d", len(r.Bytes()), r.Size())
	}
}

func TestUnknownMode(t *testing.T) {
	if _, err := NewProvider(Mode(42), nil).Allocate(1); !errors.Is(err, api.ErrInvalidArgument) {
		t.Fatalf("error = %v", err)
	}
	if got := Mode(42).String(); got != "mode(42)" {
		t.Fatalf("String() = %q", got)
	}
}
