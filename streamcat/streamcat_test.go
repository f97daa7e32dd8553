package streamcat

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ulikunitz/xz/lzma"
)

func writeLZMAFile(t *testing.T, path string, payload []byte) {
	t.Helper()
	var buf bytes.Buffer
	w, err := lzma.NewWriter(&buf)
	if err != nil {
		t.Fatalf("lzma writer: %v", err)
	}
	if _, err := w.Write(payload); err != nil {
		t.Fatalf("lzma write: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("lzma close: %v", err)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func kindOf(t *testing.T, err error) Kind {
	t.Helper()
	var scErr *Error
	if !errors.As(err, &scErr) {
		t.Fatalf("error %v is not a streamcat error", err)
	}
	return scErr.Kind
}

func TestRunRoundTrip(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.lzma")
	out := filepath.Join(dir, "out.bin")

	payload := bytes.Repeat([]byte("arbitrary bytes for a round trip\x00\x01\x02"), 4096)
	writeLZMAFile(t, in, payload)

	if err := Run(in, out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("output mismatch: got %d bytes, want %d", len(got), len(payload))
	}
}

func TestRunEmptyStream(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.lzma")
	out := filepath.Join(dir, "out.bin")

	writeLZMAFile(t, in, nil)

	if err := Run(in, out); err != nil {
		t.Fatalf("Run: %v", err)
	}

	got, err := os.ReadFile(out)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty output, got %d bytes", len(got))
	}
}

func TestRunMissingInput(t *testing.T) {
	dir := t.TempDir()
	err := Run(filepath.Join(dir, "does-not-exist.lzma"), filepath.Join(dir, "out.bin"))
	if err == nil {
		t.Fatal("expected error for missing input")
	}
	if kind := kindOf(t, err); kind != KindInputOpen {
		t.Fatalf("kind: got %v, want %v", kind, KindInputOpen)
	}
	if _, statErr := os.Stat(filepath.Join(dir, "out.bin")); !os.IsNotExist(statErr) {
		t.Fatal("output file should not exist after input open failure")
	}
}

func TestRunCorruptInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "corrupt.lzma")
	if err := os.WriteFile(in, []byte("not an lzma stream at all, sorry"), 0644); err != nil {
		t.Fatalf("write corrupt input: %v", err)
	}

	err := Run(in, filepath.Join(dir, "out.bin"))
	if err == nil {
		t.Fatal("expected error for corrupt input")
	}
	if kind := kindOf(t, err); kind != KindDecode {
		t.Fatalf("kind: got %v, want %v", kind, KindDecode)
	}
}

func TestRunTruncatedInput(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "full.lzma")
	writeLZMAFile(t, in, bytes.Repeat([]byte("payload"), 10000))

	data, err := os.ReadFile(in)
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	truncated := filepath.Join(dir, "trunc.lzma")
	if err := os.WriteFile(truncated, data[:len(data)/2], 0644); err != nil {
		t.Fatalf("write truncated: %v", err)
	}

	err = Run(truncated, filepath.Join(dir, "out.bin"))
	if err == nil {
		t.Fatal("expected error for truncated input")
	}
	if kind := kindOf(t, err); kind != KindDecode {
		t.Fatalf("kind: got %v, want %v", kind, KindDecode)
	}
}

func TestRunOutputOpenFailure(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.lzma")
	writeLZMAFile(t, in, []byte("some payload"))

	// A directory path cannot be created as a file.
	err := Run(in, dir)
	if err == nil {
		t.Fatal("expected error for unwritable output path")
	}
	if kind := kindOf(t, err); kind != KindOutputOpen {
		t.Fatalf("kind: got %v, want %v", kind, KindOutputOpen)
	}
}
