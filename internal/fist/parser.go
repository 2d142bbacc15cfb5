package fist

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// fieldCount is the exact number of colon-delimited fields per record:
// blocks:mode:nlinks:uid:gid:size:mtime:atime:ctime:path.
const fieldCount = 10

// Sentinel parse errors.
var (
	ErrFieldCount = errors.New("wrong field count")
	ErrZeroNlink  = errors.New("zero hardlink count")
)

// ParseLine parses one inventory line into a Record. The line must not
// be a comment line and must not carry a trailing line terminator.
//
// The upstream format is trusted: a malformed line means the inventory
// is corrupt, so the caller is expected to abort the whole scan rather
// than skip the line.
func ParseLine(line string) (Record, error) {
	fields := strings.Split(line, ":")
	if len(fields) != fieldCount {
		return Record{}, fmt.Errorf("%w: got %d, want %d", ErrFieldCount, len(fields), fieldCount)
	}

	blocks, err := strconv.ParseUint(fields[0], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("blocks field: %w", err)
	}

	mode, err := strconv.ParseUint(fields[1], 8, 32)
	if err != nil {
		return Record{}, fmt.Errorf("mode field: %w", err)
	}

	nlink, err := strconv.ParseUint(fields[2], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("nlinks field: %w", err)
	}

	// Every live object has at least one link; a zero count would later
	// divide the on-disk accounting by zero.
	if nlink == 0 {
		return Record{}, fmt.Errorf("nlinks field: %w", ErrZeroNlink)
	}

	uid, err := strconv.ParseUint(fields[3], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("uid field: %w", err)
	}

	gid, err := strconv.ParseUint(fields[4], 10, 32)
	if err != nil {
		return Record{}, fmt.Errorf("gid field: %w", err)
	}

	size, err := strconv.ParseInt(fields[5], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("size field: %w", err)
	}

	mtime, err := strconv.ParseInt(fields[6], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("mtime field: %w", err)
	}

	atime, err := strconv.ParseInt(fields[7], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("atime field: %w", err)
	}

	ctime, err := strconv.ParseInt(fields[8], 10, 64)
	if err != nil {
		return Record{}, fmt.Errorf("ctime field: %w", err)
	}

	return Record{
		Path:   fields[9],
		Blocks: blocks,
		Nlink:  nlink,
		Size:   size,
		Mtime:  mtime,
		Atime:  atime,
		Ctime:  ctime,
		Mode:   uint32(mode),
		UID:    uint32(uid),
		GID:    uint32(gid),
	}, nil
}

// IsComment reports whether the line is an inventory comment (optional
// headers emitted by some scanner wrappers).
func IsComment(line string) bool {
	return len(line) > 0 && line[0] == '#'
}
