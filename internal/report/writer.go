// Package report renders and writes the summary and histogram outputs:
// JSON to a file or stdout, a human-readable table, and an HTML plot of
// the size distribution.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ccin2p3/fistsum/internal/summary"
)

// stdoutName selects standard output instead of a file.
const stdoutName = "-"

// jsonIndent matches the pretty-printing the report consumers expect.
const jsonIndent = "    "

// WriteJSON serializes v as indented JSON to the named file, or to
// stdout when the name is "-" or empty. A failed write is fatal to the
// run; partial output is not valid.
func WriteJSON(path string, v any) error {
	if path == "" || path == stdoutName {
		return encodeJSON(os.Stdout, v)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	encodeErr := encodeJSON(file, v)
	if encodeErr != nil {
		file.Close()

		return encodeErr
	}

	closeErr := file.Close()
	if closeErr != nil {
		return fmt.Errorf("close output: %w", closeErr)
	}

	return nil
}

// WriteTable renders the summary table to the named file, or to stdout
// when the name is "-" or empty, mirroring WriteJSON's destination
// handling.
func WriteTable(path string, rep *summary.Report, noColor bool) error {
	if path == "" || path == stdoutName {
		return RenderTable(os.Stdout, rep, noColor)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	renderErr := RenderTable(file, rep, noColor)
	if renderErr != nil {
		file.Close()

		return renderErr
	}

	closeErr := file.Close()
	if closeErr != nil {
		return fmt.Errorf("close output: %w", closeErr)
	}

	return nil
}

func encodeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", jsonIndent)

	err := encoder.Encode(v)
	if err != nil {
		return fmt.Errorf("json encode: %w", err)
	}

	return nil
}
