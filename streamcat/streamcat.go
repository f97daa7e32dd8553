// Package streamcat copies a legacy .lzma stream to a file while decompressing it.
package streamcat

import (
	"fmt"
	"io"
	"os"

	"github.com/ulikunitz/xz/lzma"
)

// Kind classifies where a copy operation failed.
type Kind int

const (
	KindInputOpen Kind = iota + 1
	KindDecode
	KindOutputOpen
	KindWrite
)

func (k Kind) String() string {
	switch k {
	case KindInputOpen:
		return "cannot open input"
	case KindDecode:
		return "cannot decode LZMA stream"
	case KindOutputOpen:
		return "cannot open output"
	case KindWrite:
		return "cannot write output"
	default:
		return "unknown error"
	}
}

// Error wraps a failure with the step it happened in, so the process
// boundary can map it to a diagnostic and exit status.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func wrap(kind Kind, err error) error {
	return &Error{Kind: kind, Err: err}
}

// Run decompresses the single LZMA stream at inputPath and writes the
// result to outputPath, creating or truncating it. The whole decompressed
// payload is buffered in memory; there is no streaming mode.
func Run(inputPath, outputPath string) error {
	in, err := os.Open(inputPath)
	if err != nil {
		return wrap(KindInputOpen, err)
	}
	defer in.Close()

	reader, err := lzma.NewReader(in)
	if err != nil {
		return wrap(KindDecode, err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return wrap(KindDecode, err)
	}

	out, err := os.Create(outputPath)
	if err != nil {
		return wrap(KindOutputOpen, err)
	}

	if _, err := out.Write(data); err != nil {
		out.Close()
		return wrap(KindWrite, err)
	}

	if err := out.Close(); err != nil {
		return wrap(KindWrite, err)
	}

	return nil
}
