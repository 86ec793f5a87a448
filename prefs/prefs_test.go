package prefs

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func open(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestDefaultsSeededOnFirstRun(t *testing.T) {
	s := open(t, filepath.Join(t.TempDir(), "sten.db"))

	all, err := s.All()
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		KeyCipherKeyMask: "*",
		KeyPRNGSeedMask:  "*",
		KeyConfirmExit:   "1",
		KeyBrute:         "0",
	}, all)
}

func TestSetGet(t *testing.T) {
	s := open(t, filepath.Join(t.TempDir(), "sten.db"))

	require.NoError(t, s.Set(KeyBrute, "1"))
	v, err := s.Get(KeyBrute)
	require.NoError(t, err)
	assert.Equal(t, "1", v)

	// Arbitrary keys are allowed, not just the seeded ones.
	require.NoError(t, s.Set("LastPlan", "1,2,3"))
	v, err = s.Get("LastPlan")
	require.NoError(t, err)
	assert.Equal(t, "1,2,3", v)

	_, err = s.Get("missing")
	assert.Error(t, err)
}

func TestValuesPersistAcrossReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sten.db")

	s := open(t, path)
	require.NoError(t, s.Set(KeyConfirmExit, "0"))
	require.NoError(t, s.Close())

	// Reopening must not reseed over stored values.
	s = open(t, path)
	v, err := s.Get(KeyConfirmExit)
	require.NoError(t, err)
	assert.Equal(t, "0", v)
}

func TestSetOverwrites(t *testing.T) {
	s := open(t, filepath.Join(t.TempDir(), "sten.db"))

	require.NoError(t, s.Set(KeyPRNGSeedMask, "#"))
	require.NoError(t, s.Set(KeyPRNGSeedMask, "?"))
	v, err := s.Get(KeyPRNGSeedMask)
	require.NoError(t, err)
	assert.Equal(t, "?", v)
}
