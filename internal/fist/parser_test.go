package fist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLine(t *testing.T) {
	t.Parallel()

	t.Run("regular_file", func(t *testing.T) {
		t.Parallel()

		rec, err := ParseLine("8:100644:1:1000:2000:4096:1700000000:1700000100:1700000200:data/notes.txt")
		require.NoError(t, err)

		assert.Equal(t, uint64(8), rec.Blocks)
		assert.Equal(t, uint32(0o100644), rec.Mode)
		assert.Equal(t, uint64(1), rec.Nlink)
		assert.Equal(t, uint32(1000), rec.UID)
		assert.Equal(t, uint32(2000), rec.GID)
		assert.Equal(t, int64(4096), rec.Size)
		assert.Equal(t, int64(1700000000), rec.Mtime)
		assert.Equal(t, int64(1700000100), rec.Atime)
		assert.Equal(t, int64(1700000200), rec.Ctime)
		assert.Equal(t, "data/notes.txt", rec.Path)
		assert.Equal(t, KindRegular, rec.Kind())
	})

	t.Run("directory", func(t *testing.T) {
		t.Parallel()

		rec, err := ParseLine("0:40755:2:1000:2000:4096:1700000000:1700000000:1700000000:data")
		require.NoError(t, err)

		assert.Equal(t, KindDir, rec.Kind())
	})

	t.Run("symlink_keeps_arrow_suffix", func(t *testing.T) {
		t.Parallel()

		rec, err := ParseLine("0:120777:1:1000:2000:9:1700000000:1700000000:1700000000:data/link -> /etc/motd")
		require.NoError(t, err)

		assert.Equal(t, KindSymlink, rec.Kind())
		assert.Equal(t, "data/link -> /etc/motd", rec.Path)
	})

	t.Run("socket_is_other", func(t *testing.T) {
		t.Parallel()

		rec, err := ParseLine("0:140755:1:1000:2000:0:1700000000:1700000000:1700000000:run/app.sock")
		require.NoError(t, err)

		assert.Equal(t, KindOther, rec.Kind())
	})

	t.Run("wrong_field_count", func(t *testing.T) {
		t.Parallel()

		_, err := ParseLine("8:100644:1:1000:2000:4096:1700000000:1700000100:data/notes.txt")
		assert.ErrorIs(t, err, ErrFieldCount)
	})

	t.Run("zero_hardlink_count", func(t *testing.T) {
		t.Parallel()

		_, err := ParseLine("8:100644:0:1000:2000:4096:1700000000:1700000100:1700000200:data/notes.txt")
		assert.ErrorIs(t, err, ErrZeroNlink)
	})

	t.Run("non_numeric_field", func(t *testing.T) {
		t.Parallel()

		_, err := ParseLine("eight:100644:1:1000:2000:4096:1700000000:1700000100:1700000200:data/notes.txt")
		assert.ErrorContains(t, err, "blocks field")
	})

	t.Run("non_octal_mode", func(t *testing.T) {
		t.Parallel()

		_, err := ParseLine("8:100698:1:1000:2000:4096:1700000000:1700000100:1700000200:data/notes.txt")
		assert.ErrorContains(t, err, "mode field")
	})
}

func TestIsComment(t *testing.T) {
	t.Parallel()

	assert.True(t, IsComment("# fist header"))
	assert.False(t, IsComment("8:100644:1:0:0:0:0:0:0:x"))
	assert.False(t, IsComment(""))
}
