// Copyright 2015 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command hitraceconv converts a HiTrace capture file (binary ".sys",
// or an already-textual trace needing punctuation repair) into an
// ftrace/systrace-compatible text trace.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/aclements/hitraceconv/hitrace"
	"github.com/aclements/hitraceconv/hitrace/legacy"
)

func main() {
	var (
		flagText   = flag.String("t", "", "repair an already-textual trace `file` (legacy mode)")
		flagBinary = flag.String("b", "", "convert a binary capture `file`")
		flagDir    = flag.String("d", "", "batch mode: convert every file under `dir` whose name contains .sys")
		flagOut    = flag.String("o", "", "output `file` (required unless -d)")
	)
	flag.Parse()
	if flag.NArg() > 0 {
		flag.Usage()
		os.Exit(2)
	}

	switch {
	case *flagDir != "":
		if *flagText != "" || *flagBinary != "" {
			fmt.Fprintln(os.Stderr, "hitraceconv: -d cannot be combined with -t or -b")
			os.Exit(2)
		}
		if err := runBatch(*flagDir); err != nil {
			log.Fatal(err)
		}

	case *flagText != "" && *flagBinary != "":
		fmt.Fprintln(os.Stderr, "hitraceconv: only one of -t or -b may be given")
		os.Exit(2)

	case *flagText != "":
		if *flagOut == "" {
			fmt.Fprintln(os.Stderr, "hitraceconv: -o is required with -t")
			os.Exit(2)
		}
		if err := runText(*flagText, *flagOut); err != nil {
			log.Fatal(err)
		}

	case *flagBinary != "":
		if *flagOut == "" {
			fmt.Fprintln(os.Stderr, "hitraceconv: -o is required with -b")
			os.Exit(2)
		}
		if err := runBinary(*flagBinary, *flagOut); err != nil {
			log.Fatal(err)
		}

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func runText(in, out string) error {
	inFile, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("hitraceconv: %w", err)
	}
	defer inFile.Close()

	outFile, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("hitraceconv: %w", err)
	}
	defer outFile.Close()

	matched, err := legacy.Convert(inFile, outFile)
	if err != nil {
		return fmt.Errorf("hitraceconv: %w", err)
	}
	fmt.Fprintf(os.Stderr, "hitraceconv: %d line(s) repaired\n", matched)
	return nil
}

func runBinary(in, out string) error {
	inFile, err := os.Open(in)
	if err != nil {
		return fmt.Errorf("hitraceconv: %w", err)
	}
	defer inFile.Close()

	fi, err := inFile.Stat()
	if err != nil {
		return fmt.Errorf("hitraceconv: %w", err)
	}

	outFile, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("hitraceconv: %w", err)
	}
	defer outFile.Close()

	return hitrace.Convert(inFile, fi.Size(), outFile, os.Stderr)
}

// runBatch converts every file under dir whose name contains ".sys",
// writing each output next to its input with the extension replaced
// by ".ftrace".
func runBatch(dir string) error {
	return filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.Contains(info.Name(), ".sys") {
			return nil
		}
		out := strings.TrimSuffix(path, filepath.Ext(path)) + ".ftrace"
		fmt.Fprintf(os.Stderr, "hitraceconv: %s -> %s\n", path, out)
		if err := runBinary(path, out); err != nil {
			fmt.Fprintf(os.Stderr, "hitraceconv: %v\n", err)
		}
		return nil
	})
}
