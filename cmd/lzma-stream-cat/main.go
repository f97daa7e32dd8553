package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/neonimp/neonzip-go/streamcat"
)

// Exit statuses per failure step. Argument errors exit 1.
func exitStatus(err error) int {
	var scErr *streamcat.Error
	if !errors.As(err, &scErr) {
		return 1
	}
	switch scErr.Kind {
	case streamcat.KindInputOpen:
		return 2
	case streamcat.KindDecode:
		return 3
	case streamcat.KindOutputOpen:
		return 4
	case streamcat.KindWrite:
		return 5
	default:
		return 1
	}
}

func main() {
	fmt.Println("LZMA Stream Cat")
	fmt.Println("Copies a LZMA stream to a file while decompressing it.")
	fmt.Println("Written by Matheus Xavier (c) 2023")

	if len(os.Args) != 3 {
		fmt.Println("Usage: lzma-stream-cat <file> <out>")
		os.Exit(1)
	}

	if err := streamcat.Run(os.Args[1], os.Args[2]); err != nil {
		fmt.Fprintf(os.Stderr, "lzma-stream-cat: %v\n", err)
		os.Exit(exitStatus(err))
	}

	fmt.Println("Done.")
}
