package fingerprint_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ly1hex/elua/internal/adapters/fingerprint"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func compFields() map[string]string {
	return map[string]string{
		"ccmd":   "gcc -c -o $(TARGET) $(FIRST)",
		"acmd":   "as -o $(TARGET) $(FIRST)",
		"cdcmd":  "gcc -E -MM -o $(TARGET) $(FIRST)",
		"adcmd":  "gcc -E -MM -o $(TARGET) $(FIRST)",
		"objext": ".o",
	}
}

func TestStore_CompareAndStore(t *testing.T) {
	t.Run("first run reports no change", func(t *testing.T) {
		dir := t.TempDir()
		s := fingerprint.NewStore()

		changed, err := s.CompareAndStore(dir, "comp", compFields())
		require.NoError(t, err)
		assert.False(t, changed)
		assert.FileExists(t, filepath.Join(dir, ".builddata.comp"))
	})

	t.Run("identical rerun reports no change", func(t *testing.T) {
		dir := t.TempDir()
		s := fingerprint.NewStore()

		_, err := s.CompareAndStore(dir, "comp", compFields())
		require.NoError(t, err)

		changed, err := s.CompareAndStore(dir, "comp", compFields())
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("changed field reports change", func(t *testing.T) {
		dir := t.TempDir()
		s := fingerprint.NewStore()

		_, err := s.CompareAndStore(dir, "comp", compFields())
		require.NoError(t, err)

		fields := compFields()
		fields["ccmd"] = "gcc -O2 -c -o $(TARGET) $(FIRST)"
		changed, err := s.CompareAndStore(dir, "comp", fields)
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("comparison is case-insensitive", func(t *testing.T) {
		dir := t.TempDir()
		s := fingerprint.NewStore()

		_, err := s.CompareAndStore(dir, "link", map[string]string{"lcmd": "GCC -o $(TARGET) $(DEPENDS)"})
		require.NoError(t, err)

		changed, err := s.CompareAndStore(dir, "link", map[string]string{"lcmd": "gcc -o $(TARGET) $(DEPENDS)"})
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("classes are independent", func(t *testing.T) {
		dir := t.TempDir()
		s := fingerprint.NewStore()

		_, err := s.CompareAndStore(dir, "comp", compFields())
		require.NoError(t, err)

		changed, err := s.CompareAndStore(dir, "link", map[string]string{"lcmd": "ld"})
		require.NoError(t, err)
		assert.False(t, changed)
	})

	t.Run("corrupt record is treated as changed", func(t *testing.T) {
		dir := t.TempDir()
		s := fingerprint.NewStore()

		_, err := s.CompareAndStore(dir, "comp", compFields())
		require.NoError(t, err)

		path := filepath.Join(dir, ".builddata.comp")
		require.NoError(t, os.WriteFile(path, []byte("xxh64:0000000000000000\nccmd=gcc\n"), 0o644))

		changed, err := s.CompareAndStore(dir, "comp", compFields())
		require.NoError(t, err)
		assert.True(t, changed)
	})

	t.Run("creates the directory when missing", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "out")
		s := fingerprint.NewStore()

		_, err := s.CompareAndStore(dir, "comp", compFields())
		require.NoError(t, err)
		assert.FileExists(t, filepath.Join(dir, ".builddata.comp"))
	})
}

func TestStore_Remove(t *testing.T) {
	dir := t.TempDir()
	s := fingerprint.NewStore()

	_, err := s.CompareAndStore(dir, "comp", compFields())
	require.NoError(t, err)

	require.NoError(t, s.Remove(dir, "comp"))
	assert.NoFileExists(t, filepath.Join(dir, ".builddata.comp"))

	// Removing twice stays benign.
	require.NoError(t, s.Remove(dir, "comp"))
}

func TestSerialize_StableOrder(t *testing.T) {
	a := fingerprint.Serialize(map[string]string{"b": "2", "a": "1", "c": "3"})
	b := fingerprint.Serialize(map[string]string{"c": "3", "a": "1", "b": "2"})
	assert.Equal(t, a, b)
	assert.Equal(t, "a=1\nb=2\nc=3\n", a)
}
