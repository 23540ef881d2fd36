package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert"
)

func captureLogs(t *testing.T, dir string) *[]string {
	var lines []string
	buf := &bytes.Buffer{}
	Output = buf
	Init(&Config{
		Dir: dir,
		OnLog: func(s string) {
			lines = append(lines, s)
		},
	})
	t.Cleanup(func() {
		Close()
		Output = nil
		Verbose = false
	})
	return &lines
}

func TestLogf(t *testing.T) {
	lines := captureLogs(t, "")
	Logf("Saving %s as %s\n", "1", "a")
	Warnf("overwriting %s\n", "a")
	Verbosef("not shown\n")
	Verbose = true
	Verbosef("shown\n")
	exp := []string{"Saving 1 as a\n", "warning: overwriting a\n", "shown\n"}
	assert.Equal(t, exp, *lines)
	assert.Equal(t, strings.Join(exp, ""), Output.(*bytes.Buffer).String())
}

func TestIfErrf(t *testing.T) {
	lines := captureLogs(t, "")
	assert.False(t, IfErrf(nil))
	assert.True(t, IfErrf(os.ErrNotExist, "reading %s", "vars.tex"))
	assert.Equal(t, 1, len(*lines))
	assert.True(t, strings.HasPrefix((*lines)[0], "reading vars.tex\n"))
}

func TestDailyFiles(t *testing.T) {
	dir := t.TempDir()
	captureLogs(t, dir)
	Logf("hello\n")
	Event("save", "name", "a", "value", "1")
	Close()

	day := time.Now().UTC().Format("2006-01-02") + ".txt"
	d, err := os.ReadFile(filepath.Join(dir, "log", day))
	assert.NoError(t, err)
	assert.Equal(t, "hello\n", string(d))

	d, err = os.ReadFile(filepath.Join(dir, "events", day))
	assert.NoError(t, err)
	s := string(d)
	assert.True(t, strings.HasPrefix(s, "save "), s)
	assert.True(t, strings.Contains(s, "name"), s)
	assert.True(t, strings.HasSuffix(s, "\n"), s)
}

func TestEventNoDir(t *testing.T) {
	captureLogs(t, "")
	// no-op without a dir
	Event("delete", "name", "a")
	assert.Nil(t, eventsLog)
}

func TestFormatEvent(t *testing.T) {
	tm := time.UnixMilli(1700000000000)
	d, err := FormatEvent("delete", tm)
	assert.NoError(t, err)
	assert.Equal(t, "delete 1700000000000\n", string(d))

	assert.Panics(t, func() {
		_, _ = FormatEvent("bad", tm, "name")
	})
	assert.Panics(t, func() {
		_, _ = FormatEvent("bad", tm, []string{"k"}, "v")
	})
}

func TestWriteDailyNil(t *testing.T) {
	var w *WriteDaily
	assert.NoError(t, w.WriteString("x"))
	assert.NoError(t, w.Close())
}
