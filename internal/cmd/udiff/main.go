// Copyright 2025 Florian Zenker (flo@znkr.io)
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// udiff compares two files and prints their unified diff. With -reparse, it instead reads a
// unified diff from the given file and prints its canonical re-rendering.
//
// This is mostly a manual test harness for the unified package, not a replacement for diff(1).
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"znkr.io/patch"
	"znkr.io/patch/unified"
)

var (
	context = flag.Int("context", 3, "number of context lines around each hunk")
	reparse = flag.Bool("reparse", false, "parse a unified diff and print it back")
)

func main() {
	flag.Parse()
	if err := run(flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if *reparse {
		if len(args) != 1 {
			return fmt.Errorf("expected 1 arg, got %d", len(args))
		}
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		doc, err := unified.Parse(f)
		if err != nil {
			return err
		}
		return unified.Format(os.Stdout, doc)
	}

	if len(args) != 2 {
		return fmt.Errorf("expected 2 args, got %d", len(args))
	}
	x, err := readLines(args[0])
	if err != nil {
		return err
	}
	y, err := readLines(args[1])
	if err != nil {
		return err
	}
	doc, err := unified.Generate(args[0], args[1], x, y, patch.Context(*context))
	if err != nil {
		return err
	}
	return unified.Format(os.Stdout, doc)
}

func readLines(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(data), "\n")
	if len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines, nil
}
