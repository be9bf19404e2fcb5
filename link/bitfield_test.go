package link

import (
	"testing"
)

// The size-class table is frozen. These vectors pin the boundary behavior of
// every mode; regenerate with internal/tools/linkvec when auditing.
func TestSizeClassVectors(t *testing.T) {
	cases := []struct {
		dataSize uint64
		class    uint64
	}{
		{0, 4096},
		{1, 4096},
		{4095, 4096},
		{4096, 4096},
		{4097, 8192},
		{8192, 8192},
		{8193, 12288},
		{12288, 12288},
		{16384, 16384},
		{28672, 28672},
		{32768, 32768},
		{32769, 36864},
		{36864, 36864},
		{36865, 40960},
		{40960, 40960},
		{61440, 61440},
		{65536, 65536},
		{65537, 73728},
		{73728, 73728},
		{131072, 131072},
		{131073, 147456},
		{262144, 262144},
		{262145, 294912},
		{524288, 524288},
		{524289, 589824},
		{1048576, 1048576},
		{1048577, 1179648},
		{2097152, 2097152},
		{2097153, 2359296},
		{4194304, 4194304},
	}
	for _, c := range cases {
		bf, err := buildBitfield(c.dataSize)
		if err != nil {
			t.Fatalf("buildBitfield(%d): %v", c.dataSize, err)
		}
		version, offset, fetchSize, err := parseBitfield(bf)
		if err != nil {
			t.Fatalf("parseBitfield(%d): %v", c.dataSize, err)
		}
		if version != 1 {
			t.Fatalf("dataSize %d: version = %d, want 1", c.dataSize, version)
		}
		if offset != 0 {
			t.Fatalf("dataSize %d: offset = %d, want 0", c.dataSize, offset)
		}
		if fetchSize != c.class {
			t.Fatalf("dataSize %d: class = %d, want %d", c.dataSize, fetchSize, c.class)
		}
	}
}

func TestSizeClassMonotonic(t *testing.T) {
	prev := uint64(0)
	for size := uint64(0); size <= SectorSize; size += 4096 {
		bf, err := buildBitfield(size)
		if err != nil {
			t.Fatalf("buildBitfield(%d): %v", size, err)
		}
		_, _, fetchSize, err := parseBitfield(bf)
		if err != nil {
			t.Fatalf("parseBitfield(%d): %v", size, err)
		}
		if fetchSize < size {
			t.Fatalf("class %d below data size %d", fetchSize, size)
		}
		if fetchSize < prev {
			t.Fatalf("class regressed at size %d: %d < %d", size, fetchSize, prev)
		}
		prev = fetchSize
	}
}

func TestBuildBitfieldTooLarge(t *testing.T) {
	if _, err := buildBitfield(SectorSize + 1); err == nil {
		t.Fatalf("expected error above the sector size")
	}
}

func TestParseBitfieldRejectsMalformed(t *testing.T) {
	cases := []struct {
		name string
		bf   uint16
	}{
		{"version 3", 0x0002},
		{"version 4", 0x0003},
		{"resolver with payload bits", 0x0005},
		{"mode overflow", 0x3FC}, // version 1, eight consecutive mode bits
	}
	for _, c := range cases {
		if _, _, _, err := parseBitfield(c.bf); err == nil {
			t.Fatalf("%s: expected error for bitfield %#x", c.name, c.bf)
		}
	}
}

func TestParseBitfieldWindowBound(t *testing.T) {
	// Mode 0, largest class (32768), maximum offset: 1023*4096 + 32768
	// overruns the sector and must be rejected.
	bf := uint16(1023)
	bf = bf<<3 | 7
	bf = bf << 1 // mode terminator, mode 0
	bf = bf << 2 // version 1
	if _, _, _, err := parseBitfield(bf); err == nil {
		t.Fatalf("expected window overrun error")
	}
}

func TestResolverBitfieldRoundTrip(t *testing.T) {
	version, offset, fetchSize, err := parseBitfield(resolverBitfield)
	if err != nil {
		t.Fatalf("parseBitfield(resolver): %v", err)
	}
	if version != 2 || offset != 0 || fetchSize != 0 {
		t.Fatalf("resolver bitfield decoded to (%d, %d, %d)", version, offset, fetchSize)
	}
}
