package u

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/alecthomas/assert"
)

func TestNormalizeNewlines(t *testing.T) {
	tests := []string{
		"a\r\nb\r\n", "a\nb\n",
		"a\rb", "a\nb",
		"a\n\rb", "a\n\nb",
		"", "",
	}
	for i := 0; i < len(tests); i += 2 {
		orig := []byte(tests[i])
		got := NormalizeNewlines(orig)
		assert.Equal(t, tests[i+1], string(got))
		// input not modified
		assert.Equal(t, tests[i], string(orig))
	}
}

func TestIsASCIILetters(t *testing.T) {
	assert.True(t, IsASCIILetters("totalMass"))
	assert.True(t, IsASCIILetters("a"))
	assert.False(t, IsASCIILetters(""))
	assert.False(t, IsASCIILetters("mass2"))
	assert.False(t, IsASCIILetters("total_mass"))
	assert.False(t, IsASCIILetters("ñ"))
}

func TestReadFileMaybe(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "vars.tex")
	d, exists, err := ReadFileMaybe(path)
	assert.NoError(t, err)
	assert.False(t, exists)
	assert.Nil(t, d)

	assert.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	d, exists, err = ReadFileMaybe(path)
	assert.NoError(t, err)
	assert.True(t, exists)
	assert.Equal(t, "x", string(d))
	assert.True(t, FileExists(path))

	// a directory is an error, not a missing file
	_, _, err = ReadFileMaybe(dir)
	assert.Error(t, err)
	assert.False(t, FileExists(dir))
}
