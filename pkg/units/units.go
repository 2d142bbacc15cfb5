// Package units provides binary size unit multipliers (1024-based) and
// IEC-prefixed rendering per ISO/IEC 80000-13.
package units

import (
	"fmt"
	"math/bits"
)

// Binary size multipliers.
const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
	TiB = 1024 * GiB
	PiB = 1024 * TiB
)

// IEC prefixes in ascending scale order; index i scales by 2^(10*i).
var iecPrefixes = [...]string{"", "Ki", "Mi", "Gi", "Ti", "Pi"}

const bitsPerPrefix = 10

// IEC renders a byte count with the largest fitting binary prefix,
// truncated (not rounded) to an integer multiple of the prefix scale:
// 2047 renders as "1 KiB". Non-positive values render as the bare
// number with no unit.
func IEC(v int64) string {
	if v <= 0 {
		return fmt.Sprintf("%d", v)
	}

	idx := (bits.Len64(uint64(v)) - 1) / bitsPerPrefix
	if idx >= len(iecPrefixes) {
		idx = len(iecPrefixes) - 1
	}

	return fmt.Sprintf("%d %sB", v>>(bitsPerPrefix*idx), iecPrefixes[idx])
}
