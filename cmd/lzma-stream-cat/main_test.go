package main

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ulikunitz/xz/lzma"
)

const argvEnv = "LZMA_STREAM_CAT_ARGV"

// TestMain lets the test binary stand in for the tool: when the argv
// environment variable is set, run main with those arguments instead
// of the test suite.
func TestMain(m *testing.M) {
	argv, ok := os.LookupEnv(argvEnv)
	if !ok {
		os.Exit(m.Run())
	}
	os.Args = []string{"lzma-stream-cat"}
	if argv != "" {
		os.Args = append(os.Args, strings.Split(argv, "\x1f")...)
	}
	main()
	os.Exit(0)
}

// runTool re-executes the test binary as the tool and returns its
// stdout and exit code.
func runTool(t *testing.T, args ...string) (string, int) {
	t.Helper()
	cmd := exec.Command(os.Args[0])
	cmd.Env = append(os.Environ(), argvEnv+"="+strings.Join(args, "\x1f"))
	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	err := cmd.Run()
	if err == nil {
		return stdout.String(), 0
	}
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("run tool: %v", err)
	}
	return stdout.String(), exitErr.ExitCode()
}

func writeLZMAFile(t *testing.T, path string, payload []byte) {
	t.Helper()
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		t.Fatalf("lzma.NewWriter: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("compress payload: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func checkBanner(t *testing.T, out string) {
	t.Helper()
	for _, line := range []string{
		"LZMA Stream Cat",
		"Copies a LZMA stream to a file while decompressing it.",
		"Written by Matheus Xavier (c) 2023",
	} {
		if !strings.Contains(out, line) {
			t.Errorf("stdout missing %q:\n%s", line, out)
		}
	}
}

func TestUsageOnWrongArgCount(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.lzma")
	output := filepath.Join(dir, "out.bin")
	writeLZMAFile(t, input, []byte("payload"))

	cases := [][]string{
		{},
		{input},
		{input, output, "extra"},
	}
	for _, args := range cases {
		out, code := runTool(t, args...)
		checkBanner(t, out)
		if !strings.Contains(out, "Usage: lzma-stream-cat <file> <out>") {
			t.Errorf("args %v: stdout missing usage line:\n%s", args, out)
		}
		if code != 1 {
			t.Errorf("args %v: exit code = %d, want 1", args, code)
		}
	}

	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output file created despite argument error")
	}
}

func TestDecompressToFile(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.lzma")
	output := filepath.Join(dir, "out.bin")
	payload := []byte(strings.Repeat("stream payload\n", 128))
	writeLZMAFile(t, input, payload)

	out, code := runTool(t, input, output)
	checkBanner(t, out)
	if code != 0 {
		t.Fatalf("exit code = %d, want 0:\n%s", code, out)
	}
	if !strings.Contains(out, "Done.") {
		t.Errorf("stdout missing completion line:\n%s", out)
	}

	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Errorf("output content mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}

func TestCorruptInputExitStatus(t *testing.T) {
	dir := t.TempDir()
	input := filepath.Join(dir, "in.lzma")
	output := filepath.Join(dir, "out.bin")
	if err := os.WriteFile(input, []byte("definitely not an lzma stream"), 0644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, code := runTool(t, input, output)
	checkBanner(t, out)
	if code != 3 {
		t.Errorf("exit code = %d, want 3", code)
	}
	if _, err := os.Stat(output); !os.IsNotExist(err) {
		t.Errorf("output file created despite decode failure")
	}
}
