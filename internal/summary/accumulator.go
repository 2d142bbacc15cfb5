package summary

import (
	"math/bits"
	"regexp"
	"strings"

	"github.com/ccin2p3/fistsum/internal/fist"
)

// secondsPerDay is the slack beyond which a timestamp is considered a
// client-side bug and scrubbed back to the scan start time.
const secondsPerDay = 86400

// blockShift converts the scanner's 1 KiB block counts to bytes.
const blockShift = 10

// symlinkTarget matches the " -> target" suffix the scanner appends to
// symlink names, raw or percent-encoded.
var symlinkTarget = regexp.MustCompile(`(?:%20-%3E%20| -> ).*$`)

// NameResolver turns a uid/gid pair into the owner display string used
// as the aggregation key.
type NameResolver interface {
	Display(uid, gid uint32) string
}

// Options configures one accumulation pass.
type Options struct {
	// ExpectedGroup is the group the report is scoped to; it also names
	// the report.
	ExpectedGroup string

	// SpecialGroup relaxes the root exclusion and the group mismatch
	// annotation when it equals ExpectedGroup. Empty never matches.
	SpecialGroup string

	// Now is the scan start time in Unix seconds, used for timestamp
	// scrubbing and the report date. Injected for deterministic tests.
	Now int64

	// Histogram enables the file-size distribution accumulator.
	Histogram bool
}

// Bucket is one power-of-two size range of the file-size histogram.
type Bucket struct {
	Bytes       int64
	Files       int64
	PosOverhead int64
	NegOverhead int64
}

// Accumulator folds inventory records into per-owner aggregates, global
// totals, and optionally the size histogram. It is mutated by a single
// sequential scanning pass; no locking discipline applies.
type Accumulator struct {
	opts     Options
	resolver NameResolver

	owners map[string]*ownerStats
	// order preserves first-encounter order so that equal byte totals
	// sort deterministically.
	order []*ownerStats

	global    globalStats
	histogram map[int]*Bucket
}

// NewAccumulator creates an accumulator for one scan.
func NewAccumulator(resolver NameResolver, opts Options) *Accumulator {
	a := &Accumulator{
		opts:     opts,
		resolver: resolver,
		owners:   make(map[string]*ownerStats),
	}

	if opts.Histogram {
		a.histogram = make(map[int]*Bucket)
	}

	return a
}

// Add folds one classified record into the aggregates. Records that are
// neither regular files, directories nor symlinks are discarded, as are
// root-owned records outside the special-group regime.
func (a *Accumulator) Add(rec fist.Record) {
	kind := rec.Kind()
	if kind == fist.KindOther {
		return
	}

	if rec.UID == 0 && a.opts.ExpectedGroup != a.opts.SpecialGroup {
		return
	}

	owner := a.owner(a.resolver.Display(rec.UID, rec.GID))

	path := rec.Path

	switch kind {
	case fist.KindRegular:
		a.addFile(owner, rec)
	case fist.KindDir:
		owner.dirs++
		a.global.dirs++
	case fist.KindSymlink:
		owner.symlinks++
		a.global.symlinks++
		path = symlinkTarget.ReplaceAllString(path, "")
	case fist.KindOther:
	}

	owner.depth.add(strings.Count(path, "/") + 1)
	owner.length.add(len(path))
}

func (a *Accumulator) owner(name string) *ownerStats {
	owner, ok := a.owners[name]
	if !ok {
		owner = &ownerStats{name: name}
		a.owners[name] = owner
		a.order = append(a.order, owner)
	}

	return owner
}

func (a *Accumulator) addFile(owner *ownerStats, rec fist.Record) {
	owner.fileSizes = append(owner.fileSizes, rec.Size)

	owner.bytes += rec.Size
	a.global.bytes += rec.Size

	owner.files++
	a.global.files++

	if rec.Nlink > 1 {
		norm := 1.0 / float64(rec.Nlink)
		owner.hardlinked += norm
		a.global.hardlinked += norm
	}

	// On-disk usage is divided by the hardlink count so shared blocks
	// are not counted once per link.
	diskBytes := int64(rec.Blocks << blockShift)
	onDisk := float64(diskBytes) / float64(rec.Nlink)
	owner.onDisk += onDisk
	a.global.onDisk += onDisk

	atime := a.scrub(rec.Atime)
	if atime > owner.latime {
		owner.latime = atime
	}

	ctime := a.scrub(rec.Ctime)
	if ctime > owner.lctime {
		owner.lctime = ctime
	}

	mtime := a.scrub(rec.Mtime)
	if mtime > owner.lmtime {
		owner.lmtime = mtime
	}

	if a.histogram != nil {
		a.bucketFile(rec, diskBytes)
	}
}

// scrub clamps timestamps more than one day in the future back to the
// scan start time.
func (a *Accumulator) scrub(t int64) int64 {
	if t > a.opts.Now+secondsPerDay {
		return a.opts.Now
	}

	return t
}

func (a *Accumulator) bucketFile(rec fist.Record, diskBytes int64) {
	idx := bucketIndex(rec.Size)

	bucket, ok := a.histogram[idx]
	if !ok {
		bucket = &Bucket{}
		a.histogram[idx] = bucket
	}

	bucket.Files++
	bucket.Bytes += rec.Size

	// Overhead is per physical allocation, not hardlink-divided.
	overhead := rec.Size - diskBytes
	if overhead > 0 {
		bucket.PosOverhead += overhead
	} else {
		bucket.NegOverhead += -overhead
	}
}

// bucketIndex is floor(log2(size)) for size > 1, else 0. Integer bit
// arithmetic keeps exact powers of two in their own bucket, which a
// float log2 would not guarantee at the edges.
func bucketIndex(size int64) int {
	if size <= 1 {
		return 0
	}

	return bits.Len64(uint64(size)) - 1
}
