// Package summary accumulates per-owner and global usage statistics
// from a fist inventory scan and builds the final report structures.
package summary

import "github.com/ccin2p3/fistsum/pkg/mathutil"

// extent tracks a min/max pair with an explicit unset state, so that
// owners with no contributing records report 0 instead of leaking a
// sentinel into the output.
type extent struct {
	lo   int
	hi   int
	seen bool
}

func (e *extent) add(v int) {
	if !e.seen {
		e.lo, e.hi, e.seen = v, v, true

		return
	}

	e.lo = mathutil.Min(e.lo, v)
	e.hi = mathutil.Max(e.hi, v)
}

func (e *extent) merge(other extent) {
	if !other.seen {
		return
	}

	if !e.seen {
		*e = other

		return
	}

	e.lo = mathutil.Min(e.lo, other.lo)
	e.hi = mathutil.Max(e.hi, other.hi)
}

// bounds returns the extrema, collapsed to (0, 0) when never set.
func (e *extent) bounds() (int, int) {
	if !e.seen {
		return 0, 0
	}

	return e.lo, e.hi
}

// ownerStats is the mutable aggregate for one resolved owner display
// string. Created lazily on first encounter, mutated throughout the
// scan, never deleted.
type ownerStats struct {
	name string

	// fileSizes retains every regular-file size; exact quartile
	// computation needs the full sample.
	fileSizes []int64

	bytes  int64
	onDisk float64

	files    int64
	dirs     int64
	symlinks int64

	// hardlinked counts 1/nlink per hardlinked file, estimating the
	// number of distinct files without inode tracking. Fractional until
	// output rounding.
	hardlinked float64

	latime int64
	lmtime int64
	lctime int64

	depth  extent
	length extent
}

// globalStats mirrors the owner sums that are accumulated in parallel
// during the scan rather than recomputed from the owner map.
type globalStats struct {
	bytes      int64
	onDisk     float64
	hardlinked float64
	files      int64
	dirs       int64
	symlinks   int64
}
