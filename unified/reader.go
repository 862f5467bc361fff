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

package unified

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"znkr.io/patch"
)

// ParseError reports a line that could not be interpreted in the state the reader was in.
type ParseError struct {
	Line string // the offending line
	Msg  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing unified diff: %s: %q", e.Msg, e.Line)
}

var (
	reDiff       = regexp.MustCompile(`^diff\s`)
	reIndex      = regexp.MustCompile(`^index [0-9a-zA-Z]+\.\.[0-9a-zA-Z]+( \d+)?`)
	reFromFile   = regexp.MustCompile(`^---\s`)
	reToFile     = regexp.MustCompile(`^\+\+\+\s`)
	reChunk      = regexp.MustCompile(`^@@\s+-(\d+)(?:,(\d+))?\s+\+(\d+)(?:,(\d+))?\s+@@`)
	reLineNormal = regexp.MustCompile(`^\s`)
	reLineAdd    = regexp.MustCompile(`^\+`)
	reLineDel    = regexp.MustCompile(`^-`)
	reTimestamp  = regexp.MustCompile(`\d{4}-\d{2}-\d{2}[T ]\d{2}:\d{2}:\d{2}\.\d+`)
)

// rule associates a line pattern with its handler. stopsHeader marks the four header line kinds
// that end preamble accumulation. The reader decides per state which subset of rules is
// eligible; within a subset the first matching rule wins.
type rule struct {
	re          *regexp.Regexp
	handle      func(r *Reader, line string, m []string)
	stopsHeader bool
}

var (
	diffRule   = &rule{re: reDiff, handle: (*Reader).processDiff, stopsHeader: true}
	indexRule  = &rule{re: reIndex, handle: (*Reader).processIndex, stopsHeader: true}
	fromRule   = &rule{re: reFromFile, handle: (*Reader).processFromFile, stopsHeader: true}
	toRule     = &rule{re: reToFile, handle: (*Reader).processToFile, stopsHeader: true}
	chunkRule  = &rule{re: reChunk, handle: (*Reader).processChunk}
	normalRule = &rule{re: reLineNormal, handle: (*Reader).processNormalLine}
	addRule    = &rule{re: reLineAdd, handle: (*Reader).processAddLine}
	delRule    = &rule{re: reLineDel, handle: (*Reader).processDelLine}

	headerRules = []*rule{diffRule, indexRule, fromRule, toRule}
	bodyRules   = []*rule{normalRule, addRule, delRule}
)

// Reader parses a unified diff from a character stream.
//
// A Reader owns mutable parse state and is a one-shot builder: construct one per parse and do
// not share it across goroutines. The underlying stream is borrowed, the reader neither opens
// nor closes it.
type Reader struct {
	br  *bufio.Reader
	doc *Diff

	actual *File // file currently being filled in

	oldLn, oldSize    int
	newLn, newSize    int
	original, revised []string
}

// Parse reads a complete unified diff document from r.
func Parse(r io.Reader) (*Diff, error) {
	if r == nil {
		return nil, errors.New("parsing unified diff: nil reader")
	}
	return NewReader(r).Read()
}

// NewReader returns a new Reader that parses from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{br: bufio.NewReader(r), doc: &Diff{}}
}

// readLine returns the next input line without its trailing newline. A final line without a
// newline is returned as-is; after that, io.EOF.
func (r *Reader) readLine() (string, error) {
	line, err := r.br.ReadString('\n')
	if err == io.EOF {
		if line == "" {
			return "", io.EOF
		}
		return line, nil
	} else if err != nil {
		return "", err
	}
	return strings.TrimSuffix(line, "\n"), nil
}

// Read parses the stream into a document. It must be called at most once.
func (r *Reader) Read() (*Diff, error) {
	// Preamble: free text accumulates into the header until the first header line shows up.
	// That line is carried over into the loop below and dispatched as the first header line.
	var header strings.Builder
	var line string
	for {
		l, err := r.readLine()
		if err == io.EOF {
			r.doc.Header = header.String()
			return r.doc, nil
		} else if err != nil {
			return nil, err
		}
		if stopsHeader(l) {
			line = l
			break
		}
		header.WriteString(l)
		header.WriteByte('\n')
	}
	r.doc.Header = header.String()

outer:
	for {
		if !reChunk.MatchString(line) {
			// File header. Every entry into this state starts a new file.
			r.actual = &File{Patch: &patch.Patch[string]{}}
			r.doc.Files = append(r.doc.Files, r.actual)
			for !reChunk.MatchString(line) {
				if !r.process(line, headerRules...) {
					return nil, &ParseError{Line: line, Msg: "expected file header line"}
				}
				l, err := r.readLine()
				if err == io.EOF {
					break outer
				} else if err != nil {
					return nil, err
				}
				line = l
			}
		}

		// Chunk: the header line sets up the expected counts, then body lines accumulate until
		// the counts are satisfied. A chunk header without counts falls back to treating the
		// start lines as counts.
		if !r.process(line, chunkRule) {
			return nil, &ParseError{Line: line, Msg: "expected chunk start line"}
		}
		for {
			l, err := r.readLine()
			if err == io.EOF {
				// A hunk truncated by the end of input is dropped.
				break outer
			} else if err != nil {
				return nil, err
			}
			if !r.process(l, bodyRules...) {
				return nil, &ParseError{Line: l, Msg: "expected chunk data line"}
			}
			if (len(r.original) == r.oldSize && len(r.revised) == r.newSize) ||
				(r.oldSize == 0 && r.newSize == 0 && len(r.original) == r.oldLn && len(r.revised) == r.newLn) {
				r.finalizeChunk()
				break
			}
		}

		// Decide how to continue: end of input or a "--" line terminate file parsing, a chunk
		// line continues the current file, anything else starts the next one.
		l, err := r.readLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if strings.HasPrefix(l, "--") {
			break
		}
		line = l
	}

	// Trailer: whatever is left belongs to the tail.
	var tail strings.Builder
	for {
		l, err := r.readLine()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		tail.WriteString(l)
		tail.WriteByte('\n')
	}
	r.doc.Tail = tail.String()
	return r.doc, nil
}

// process dispatches line to the first rule whose pattern matches and reports whether any did.
func (r *Reader) process(line string, rules ...*rule) bool {
	for _, rule := range rules {
		if m := rule.re.FindStringSubmatch(line); m != nil {
			rule.handle(r, line, m)
			return true
		}
	}
	return false
}

// stopsHeader reports whether line ends the free-text preamble.
func stopsHeader(line string) bool {
	for _, rule := range headerRules {
		if rule.stopsHeader && rule.re.MatchString(line) {
			return true
		}
	}
	return false
}

// processDiff handles a "diff ..." command line. For the canonical "diff --git a/... b/..."
// form, tokens 2 and 3 carry the two filenames. Splitting on single spaces is a known
// limitation for paths that contain spaces.
func (r *Reader) processDiff(line string, m []string) {
	r.actual.DiffCommand = line
	parts := strings.Split(line, " ")
	if len(parts) >= 4 {
		r.actual.FromFile = strings.TrimPrefix(parts[2], "a/")
		r.actual.ToFile = strings.TrimPrefix(parts[3], "b/")
	}
}

func (r *Reader) processIndex(line string, m []string) {
	r.actual.Index = strings.TrimPrefix(line, "index ")
}

// processFromFile handles a "--- " header line. A filename parsed here overwrites one taken
// from a preceding diff command line, which is intended.
func (r *Reader) processFromFile(line string, m []string) {
	r.actual.FromFile, r.actual.FromTimestamp = extractFileName(line)
}

func (r *Reader) processToFile(line string, m []string) {
	r.actual.ToFile, r.actual.ToTimestamp = extractFileName(line)
}

// extractFileName splits a "--- " or "+++ " header line into a filename and an optional
// ISO-like timestamp.
func extractFileName(line string) (name, timestamp string) {
	if loc := reTimestamp.FindStringIndex(line); loc != nil {
		timestamp = line[loc[0]:loc[1]]
		line = line[:loc[0]]
	}
	line = line[4:]
	for _, prefix := range []string{"a/", "b/", "old/", "new/"} {
		if rest, ok := strings.CutPrefix(line, prefix); ok {
			line = rest
			break
		}
	}
	return strings.TrimSpace(line), timestamp
}

func (r *Reader) processChunk(line string, m []string) {
	r.oldLn = atoiDefault(m[1], 0)
	r.oldSize = atoiDefault(m[2], 0)
	r.newLn = atoiDefault(m[3], 0)
	r.newSize = atoiDefault(m[4], 0)
	if r.oldLn == 0 {
		r.oldLn = 1
	}
	if r.newLn == 0 {
		r.newLn = 1
	}
	r.original = r.original[:0]
	r.revised = r.revised[:0]
}

func (r *Reader) processNormalLine(line string, m []string) {
	text := line[1:]
	r.original = append(r.original, text)
	r.revised = append(r.revised, text)
}

func (r *Reader) processAddLine(line string, m []string) {
	r.revised = append(r.revised, line[1:])
}

func (r *Reader) processDelLine(line string, m []string) {
	r.original = append(r.original, line[1:])
}

// finalizeChunk turns the accumulated original and revised lines into a single delta of the
// current file. A hunk is recorded as read: context lines stay part of both chunks, splitting
// the hunk into finer deltas is deliberately left to the diff engine.
func (r *Reader) finalizeChunk() {
	if len(r.original) > 0 || len(r.revised) > 0 {
		original := patch.Chunk[string]{Position: r.oldLn - 1, Lines: slices.Clone(r.original)}
		revised := patch.Chunk[string]{Position: r.newLn - 1, Lines: slices.Clone(r.revised)}
		r.actual.Patch.AddDelta(patch.NewDelta(original, revised))
	}
	r.original = r.original[:0]
	r.revised = r.revised[:0]
}

func atoiDefault(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}
