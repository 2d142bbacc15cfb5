package summary

import (
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/ccin2p3/fistsum/pkg/units"
)

// dateLayout is the RFC3339 "Z" form used in the report header.
const dateLayout = "2006-01-02T15:04:05Z"

// UserEntry is the per-owner section of the summary report.
type UserEntry struct {
	Name         string `json:"name"`
	NFiles       int64  `json:"nfiles"`
	HLinkedFiles int64  `json:"hlinkedfiles"`
	NDirs        int64  `json:"ndirs"`
	NLinks       int64  `json:"nlinks"`
	Bytes        int64  `json:"bytes"`
	Overhead     int64  `json:"overhead"`
	MinFSize     int64  `json:"minfsize"`
	Q1FSize      int64  `json:"q1fsize"`
	MedFSize     int64  `json:"medfsize"`
	AvgFSize     int64  `json:"avgfsize"`
	Q3FSize      int64  `json:"q3fsize"`
	MaxFSize     int64  `json:"maxfsize"`
	LAtime       int64  `json:"latime"`
	LMtime       int64  `json:"lmtime"`
	LCtime       int64  `json:"lctime"`
	MinDepth     int    `json:"mindepth"`
	MaxDepth     int    `json:"maxdepth"`
	MinLength    int    `json:"minlength"`
	MaxLength    int    `json:"maxlength"`
}

// Totals is the global rollup section of the summary report.
type Totals struct {
	NUsers       int   `json:"nusers"`
	NFiles       int64 `json:"nfiles"`
	HLinkedFiles int64 `json:"hlinkedfiles"`
	NDirs        int64 `json:"ndirs"`
	NLinks       int64 `json:"nlinks"`
	Bytes        int64 `json:"bytes"`
	Overhead     int64 `json:"overhead"`
	MinFSize     int64 `json:"minfsize"`
	Q1FSize      int64 `json:"q1fsize"`
	MedFSize     int64 `json:"medfsize"`
	AvgFSize     int64 `json:"avgfsize"`
	Q3FSize      int64 `json:"q3fsize"`
	MaxFSize     int64 `json:"maxfsize"`
	LAtime       int64 `json:"latime"`
	LMtime       int64 `json:"lmtime"`
	LCtime       int64 `json:"lctime"`
	MinDepth     int   `json:"mindepth"`
	MaxDepth     int   `json:"maxdepth"`
	MinLength    int   `json:"minlength"`
	MaxLength    int   `json:"maxlength"`
}

// Report is the primary JSON output: per-owner statistics sorted by
// descending byte total, plus the global rollup.
type Report struct {
	Name   string      `json:"name"`
	Date   string      `json:"date"`
	Users  []UserEntry `json:"users"`
	Totals Totals      `json:"totals"`
}

// BucketEntry is one emitted histogram bucket.
type BucketEntry struct {
	Range string `json:"range"`
	Bytes int64  `json:"bytes"`
	Files int64  `json:"files"`
	PosOv int64  `json:"posov"`
	NegOv int64  `json:"negov"`
}

// SizeReport is the optional file-size distribution output.
type SizeReport struct {
	Name    string        `json:"name"`
	Buckets []BucketEntry `json:"file sizes"`
}

// Summarize post-processes the accumulated owner map into the final
// report: owners sorted by descending byte total (ties keep first
// encounter order), exact quartiles per owner and globally, and the
// global rollup. Fractional aggregates are rounded here and nowhere
// earlier.
func (a *Accumulator) Summarize() *Report {
	report := &Report{
		Name:  a.opts.ExpectedGroup,
		Date:  time.Unix(a.opts.Now, 0).UTC().Format(dateLayout),
		Users: make([]UserEntry, 0, len(a.order)),
	}

	owners := make([]*ownerStats, len(a.order))
	copy(owners, a.order)
	sort.SliceStable(owners, func(i, j int) bool {
		return owners[i].bytes > owners[j].bytes
	})

	allSizes := make([]int64, 0, a.global.files)
	totals := &report.Totals

	var depth, length extent

	for _, owner := range owners {
		allSizes = append(allSizes, owner.fileSizes...)

		report.Users = append(report.Users, ownerEntry(owner))

		if owner.latime > totals.LAtime {
			totals.LAtime = owner.latime
		}

		if owner.lctime > totals.LCtime {
			totals.LCtime = owner.lctime
		}

		if owner.lmtime > totals.LMtime {
			totals.LMtime = owner.lmtime
		}

		depth.merge(owner.depth)
		length.merge(owner.length)
	}

	totals.NUsers = len(owners)
	totals.NFiles = a.global.files
	totals.HLinkedFiles = roundEven(a.global.hardlinked)
	totals.NDirs = a.global.dirs
	totals.NLinks = a.global.symlinks
	totals.Bytes = a.global.bytes
	totals.Overhead = roundEven(a.global.onDisk - float64(a.global.bytes))
	totals.MinDepth, totals.MaxDepth = depth.bounds()
	totals.MinLength, totals.MaxLength = length.bounds()

	totals.MinFSize, totals.Q1FSize, totals.MedFSize, totals.AvgFSize,
		totals.Q3FSize, totals.MaxFSize = sizeStats(allSizes, a.global.bytes)

	return report
}

func ownerEntry(owner *ownerStats) UserEntry {
	entry := UserEntry{
		Name:         owner.name,
		NFiles:       owner.files,
		HLinkedFiles: roundEven(owner.hardlinked),
		NDirs:        owner.dirs,
		NLinks:       owner.symlinks,
		Bytes:        owner.bytes,
		Overhead:     roundEven(owner.onDisk - float64(owner.bytes)),
		LAtime:       owner.latime,
		LMtime:       owner.lmtime,
		LCtime:       owner.lctime,
	}

	entry.MinDepth, entry.MaxDepth = owner.depth.bounds()
	entry.MinLength, entry.MaxLength = owner.length.bounds()

	entry.MinFSize, entry.Q1FSize, entry.MedFSize, entry.AvgFSize,
		entry.Q3FSize, entry.MaxFSize = sizeStats(owner.fileSizes, owner.bytes)

	return entry
}

// sizeStats computes the file-size quartile fields. A single file makes
// every field that file's size; an empty sample degrades to all zero.
func sizeStats(sizes []int64, total int64) (minSize, q1, median, avg, q3, maxSize int64) {
	switch len(sizes) {
	case 0:
		return 0, 0, 0, 0, 0, 0
	case 1:
		s := sizes[0]

		return s, s, s, s, s, s
	}

	minSize, maxSize = sizes[0], sizes[0]
	for _, s := range sizes[1:] {
		if s < minSize {
			minSize = s
		}

		if s > maxSize {
			maxSize = s
		}
	}

	fq1, fmed, fq3 := quartiles(sizes)

	// The average derives from the running byte total, not a re-derived
	// sum of the sample.
	avg = roundEven(float64(total) / float64(len(sizes)))

	return minSize, roundEven(fq1), roundEven(fmed), avg, roundEven(fq3), maxSize
}

// SizeDistribution builds the histogram report, buckets in ascending
// index order. The lower bound is 0 for bucket 0, else 2^index; the
// upper bound is always 2^(index+1).
func (a *Accumulator) SizeDistribution() *SizeReport {
	report := &SizeReport{
		Name:    a.opts.ExpectedGroup,
		Buckets: make([]BucketEntry, 0, len(a.histogram)),
	}

	idxs := make([]int, 0, len(a.histogram))
	for idx := range a.histogram {
		idxs = append(idxs, idx)
	}

	sort.Ints(idxs)

	for _, idx := range idxs {
		bucket := a.histogram[idx]

		var lower int64
		if idx > 0 {
			lower = int64(1) << idx
		}

		upper := int64(1) << (idx + 1)

		report.Buckets = append(report.Buckets, BucketEntry{
			Range: fmt.Sprintf("[%s:%s[", units.IEC(lower), units.IEC(upper)),
			Bytes: bucket.Bytes,
			Files: bucket.Files,
			PosOv: bucket.PosOverhead,
			NegOv: bucket.NegOverhead,
		})
	}

	return report
}

// roundEven rounds half to even, matching the rounding convention the
// report format has always used for fractional aggregates.
func roundEven(v float64) int64 {
	return int64(math.RoundToEven(v))
}
