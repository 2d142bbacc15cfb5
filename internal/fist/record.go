// Package fist reads inventories produced by the fist scanner: one
// filesystem object per line, ten colon-delimited fields, names
// percent-encoded by the scanner so they never contain a raw colon.
package fist

// POSIX file type bits, as encoded in the octal mode field.
const (
	modeTypeMask = 0o170000
	modeRegular  = 0o100000
	modeDir      = 0o040000
	modeSymlink  = 0o120000
)

// Kind classifies an inventory record by its file type bits.
type Kind int

// Record kinds. Anything that is not a regular file, a directory or a
// symlink (devices, sockets, fifos) is KindOther and is ignored by the
// accounting layer.
const (
	KindOther Kind = iota
	KindRegular
	KindDir
	KindSymlink
)

// Record is a single parsed inventory line. Records are ephemeral: the
// scanning pass folds each one into the running aggregates and drops it.
type Record struct {
	// Path is the percent-encoded object name. For symlinks it may carry
	// a trailing " -> target" suffix, which the accounting layer strips.
	Path string

	// Blocks is the allocated block count in 1 KiB units, the convention
	// the scanner uses when printing st_blocks.
	Blocks uint64

	// Nlink is the hardlink count, at least 1 for well-formed input.
	Nlink uint64

	Size  int64
	Mtime int64
	Atime int64
	Ctime int64

	Mode uint32
	UID  uint32
	GID  uint32
}

// Kind returns the record classification derived from the mode bits.
func (r *Record) Kind() Kind {
	switch r.Mode & modeTypeMask {
	case modeRegular:
		return KindRegular
	case modeDir:
		return KindDir
	case modeSymlink:
		return KindSymlink
	default:
		return KindOther
	}
}
