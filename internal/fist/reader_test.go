package fist

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInventory = `# fist header comment
8:100644:1:1000:2000:4096:1700000000:1700000000:1700000000:data/a.txt
0:40755:2:1000:2000:4096:1700000000:1700000000:1700000000:data
`

func TestEachRecord(t *testing.T) {
	t.Parallel()

	t.Run("skips_comments", func(t *testing.T) {
		t.Parallel()

		var paths []string

		err := EachRecord(strings.NewReader(sampleInventory), func(rec Record) error {
			paths = append(paths, rec.Path)

			return nil
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"data/a.txt", "data"}, paths)
	})

	t.Run("malformed_line_aborts_with_line_number", func(t *testing.T) {
		t.Parallel()

		input := "8:100644:1:1000:2000:4096:1700000000:1700000000:1700000000:ok\nbogus line\n"

		err := EachRecord(strings.NewReader(input), func(Record) error { return nil })
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrFieldCount)
		assert.ErrorContains(t, err, "line 2")
	})

	t.Run("callback_error_stops_scan", func(t *testing.T) {
		t.Parallel()

		calls := 0

		err := EachRecord(strings.NewReader(sampleInventory), func(Record) error {
			calls++

			return assert.AnError
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 1, calls)
	})
}

func TestOpen(t *testing.T) {
	t.Parallel()

	t.Run("plain_file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "scan.fist")
		require.NoError(t, os.WriteFile(path, []byte(sampleInventory), 0o600))

		input, err := Open(path)
		require.NoError(t, err)

		defer input.Close()

		count := 0
		scanErr := EachRecord(input, func(Record) error {
			count++

			return nil
		})
		require.NoError(t, scanErr)
		assert.Equal(t, 2, count)
	})

	t.Run("lz4_file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "scan.fist.lz4")

		file, err := os.Create(path)
		require.NoError(t, err)

		writer := lz4.NewWriter(file)
		_, err = writer.Write([]byte(sampleInventory))
		require.NoError(t, err)
		require.NoError(t, writer.Close())
		require.NoError(t, file.Close())

		input, openErr := Open(path)
		require.NoError(t, openErr)

		defer input.Close()

		count := 0
		scanErr := EachRecord(input, func(Record) error {
			count++

			return nil
		})
		require.NoError(t, scanErr)
		assert.Equal(t, 2, count)
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		_, err := Open(filepath.Join(t.TempDir(), "absent.fist"))
		assert.Error(t, err)
	})
}
