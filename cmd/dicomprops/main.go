// Copyright 2026 The DicomParser Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command dicomprops prints the JSON property projection of DICOM files, one document per file.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/markheramis/DicomParser/props"
)

func main() {
	tty := term.IsTerminal(int(os.Stdout.Fd()))
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, tty))
}

func run(args []string, stdout, stderr io.Writer, tty bool) int {
	fs := flag.NewFlagSet("dicomprops", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: dicomprops [options] <file>...\n\n")
		fmt.Fprintf(stderr, "Print the text-valued elements of DICOM files as flat JSON objects\n\n")
		fmt.Fprintf(stderr, "Options:\n")
		fs.PrintDefaults()
	}

	numeric := fs.Bool("tags", false, "Use (GGGG,EEEE) keys instead of dictionary keywords")
	dates := fs.Bool("dates", false, "Render DA, TM and DT values as calendar text")
	decoder := fs.String("decoder", "native", "Decoder to use: native or library")
	indent := fs.Bool("indent", tty, "Pretty print (default when stdout is a terminal)")
	dropGroupLengths := fs.Bool("drop-group-lengths", false, "Leave out (gggg,0000) group length elements")
	verbose := fs.Bool("v", false, "Debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fs.Usage()
		return 2
	}

	logger, err := newLogger(*verbose)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	var d props.Decoder
	switch *decoder {
	case "native":
		d = props.NativeDecoder{DropGroupLengths: *dropGroupLengths}
	case "library":
		d = props.LibraryDecoder{}
	default:
		fmt.Fprintf(stderr, "Unknown decoder %q\n", *decoder)
		return 2
	}

	style := props.KeyStyleSymbolic
	if *numeric {
		style = props.KeyStyleNumeric
	}

	parser := props.NewParser(
		props.WithKeyStyle(style),
		props.WithDecoder(d),
		props.WithTemporalParsing(*dates),
		props.WithLogger(logger),
	)

	status := 0
	for _, path := range fs.Args() {
		if err := printFile(stdout, parser, path, *indent); err != nil {
			kind, _ := props.KindOf(err)
			fmt.Fprintf(stderr, "%s: %s: %v\n", path, kind, err)
			status = 1
		}
	}
	return status
}

func printFile(w io.Writer, parser *props.Parser, path string, indent bool) error {
	record, err := parser.Project(path)
	if err != nil {
		return err
	}

	var out []byte
	if indent {
		out, err = props.EncodeIndent(record, "  ")
	} else {
		out, err = props.Encode(record)
	}
	if err != nil {
		return &props.Error{Kind: props.KindSerialization, Path: path, Cause: err}
	}

	_, err = fmt.Fprintf(w, "%s\n", out)
	return err
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}
