package main

import (
	"bytes"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"

	"huffenc/huffman"
)

// captureLogs records every entry of the standard logger and of the loggers
// derived from it while the test runs.
func captureLogs(t *testing.T) *logtest.Hook {
	t.Helper()
	hook := logtest.NewGlobal()
	t.Cleanup(func() { logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks)) })
	return hook
}

func findEntry(hook *logtest.Hook, substr string) bool {
	for _, e := range hook.AllEntries() {
		if strings.Contains(e.Message, substr) {
			return true
		}
	}
	return false
}

func setupHome(t *testing.T, input []byte) string {
	t.Helper()
	home := t.TempDir()
	if err := os.MkdirAll(filepath.Join(home, "conf"), 0755); err != nil {
		t.Fatal(err)
	}
	conf := "inputPath=D2.txt\noutputPath=encode.bin\nreport=false\nlogLevel=error,std\n"
	if err := ioutil.WriteFile(filepath.Join(home, "conf", "huffenc.properties"), []byte(conf), 0644); err != nil {
		t.Fatal(err)
	}
	if input != nil {
		if err := ioutil.WriteFile(filepath.Join(home, "D2.txt"), input, 0644); err != nil {
			t.Fatal(err)
		}
	}
	os.Setenv("HUFFENC_HOME", home)
	t.Cleanup(func() { os.Unsetenv("HUFFENC_HOME") })
	return home
}

func TestRun(t *testing.T) {
	home := setupHome(t, bytes.Repeat([]byte{0x41}, 1000))
	if code := run(); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	out, err := ioutil.ReadFile(filepath.Join(home, "encode.bin"))
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if len(out) != 126 {
		t.Fatalf("expected 126 bytes, got %d", len(out))
	}
}

func TestRunMissingInput(t *testing.T) {
	home := setupHome(t, nil)
	if code := run(); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if _, err := os.Stat(filepath.Join(home, "encode.bin")); !os.IsNotExist(err) {
		t.Fatalf("no output expected")
	}
}

func TestRunEmptyInput(t *testing.T) {
	home := setupHome(t, []byte{})
	if code := run(); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if _, err := os.Stat(filepath.Join(home, "encode.bin")); !os.IsNotExist(err) {
		t.Fatalf("no output expected")
	}
}

func TestRunUnreadableSource(t *testing.T) {
	home := setupHome(t, nil)
	src := filepath.Join(home, "D2.txt")
	if err := os.Mkdir(src, 0755); err != nil {
		t.Fatal(err)
	}
	hook := captureLogs(t)
	if code := run(); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !findEntry(hook, "An error occurred: ") || !findEntry(hook, "read source "+src) {
		t.Fatalf("expected the generic error report naming %s", src)
	}
	if _, err := os.Stat(filepath.Join(home, "encode.bin")); !os.IsNotExist(err) {
		t.Fatalf("no output expected")
	}
}

func TestRunPanic(t *testing.T) {
	setupHome(t, []byte("abc"))
	saved := encodeFile
	defer func() { encodeFile = saved }()
	encodeFile = func(src, dst string, opts ...huffman.Option) (*huffman.Result, error) {
		panic("bit writer exploded")
	}
	hook := captureLogs(t)
	if code := run(); code != 2 {
		t.Fatalf("exit code %d, want 2", code)
	}
	if !findEntry(hook, "Unexpected fault:bit writer exploded") {
		t.Fatalf("fault message not logged")
	}
	if !findEntry(hook, "[Main]goroutine ") {
		t.Fatalf("goroutine stack not logged")
	}
}
