package fist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pierrec/lz4/v4"
)

// Scanner line buffer sizing. Percent-encoded names can expand well past
// PATH_MAX, so the limit is generous.
const (
	initialLineBuffer = 64 * 1024
	maxLineBuffer     = 1024 * 1024
)

// lz4Extension marks inventories compressed with the LZ4 frame format.
const lz4Extension = ".lz4"

// Open opens an inventory file for scanning. Files ending in ".lz4" are
// decompressed transparently as they are read.
func Open(path string) (io.ReadCloser, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open inventory: %w", err)
	}

	if strings.HasSuffix(path, lz4Extension) {
		return &lz4File{file: file, reader: lz4.NewReader(file)}, nil
	}

	return file, nil
}

type lz4File struct {
	file   *os.File
	reader *lz4.Reader
}

func (f *lz4File) Read(p []byte) (int, error) {
	return f.reader.Read(p)
}

func (f *lz4File) Close() error {
	return f.file.Close()
}

// EachRecord reads the inventory once, top to bottom, invoking fn for
// every parsed record. Comment lines are skipped before parsing. The
// first malformed line aborts the scan with an error naming the line
// number; silently skipping would hide upstream data corruption.
func EachRecord(r io.Reader, fn func(rec Record) error) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, initialLineBuffer), maxLineBuffer)

	lineno := 0

	for scanner.Scan() {
		lineno++

		line := scanner.Text()
		if IsComment(line) {
			continue
		}

		rec, err := ParseLine(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", lineno, err)
		}

		fnErr := fn(rec)
		if fnErr != nil {
			return fnErr
		}
	}

	scanErr := scanner.Err()
	if scanErr != nil {
		return fmt.Errorf("read inventory: %w", scanErr)
	}

	return nil
}
