package edgelist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/matzehuels/degreerank/pkg/digraph"
	errs "github.com/matzehuels/degreerank/pkg/errors"
)

// CommentPrefix marks a line that is ignored by the reader.
const CommentPrefix = "#"

// maxLineSize bounds a single line; edge lists with data columns can be wide.
const maxLineSize = 1 << 20

var gzipMagic = []byte{0x1f, 0x8b}

// ParseError reports a line that could not be read as an edge.
type ParseError struct {
	Line int    // 1-based line number
	Text string // the offending line, trimmed
	Err  error  // underlying cause
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %q: %v", e.Line, e.Text, e.Err)
}

// Unwrap returns the underlying cause.
func (e *ParseError) Unwrap() error { return e.Err }

var (
	errTooFewFields = errors.New("expected two node IDs")
	errBadNodeID    = errors.New("node ID is not an integer")
)

// Read decodes an edge list from r into a new graph. The input may be plain
// text or gzip-compressed. Read does not close r.
func Read(r io.Reader) (*digraph.Graph, error) {
	br := bufio.NewReader(r)
	head, err := br.Peek(len(gzipMagic))
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, errs.Wrap(errs.ErrCodeParse, err, "read header")
	}
	if bytes.Equal(head, gzipMagic) {
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, errs.Wrap(errs.ErrCodeParse, err, "open gzip stream")
		}
		defer zr.Close()
		return readPlain(zr)
	}
	return readPlain(br)
}

// ReadFile opens path and decodes it with [Read].
func ReadFile(path string) (*digraph.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errs.Wrap(errs.ErrCodeInternal, err, "open %s", path)
	}
	defer f.Close()

	g, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

func readPlain(r io.Reader) (*digraph.Graph, error) {
	g := digraph.New()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, CommentPrefix) {
			continue
		}
		from, to, err := parseEdge(text)
		if err != nil {
			perr := &ParseError{Line: line, Text: text, Err: err}
			return nil, errs.Wrap(errs.ErrCodeParse, perr, "malformed edge")
		}
		g.AddEdge(from, to)
	}
	if err := sc.Err(); err != nil {
		return nil, errs.Wrap(errs.ErrCodeParse, err, "scan after line %d", line)
	}
	return g, nil
}

func parseEdge(text string) (from, to int64, err error) {
	fields := strings.Fields(text)
	if len(fields) < 2 {
		return 0, 0, errTooFewFields
	}
	if from, err = strconv.ParseInt(fields[0], 10, 64); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadNodeID, fields[0])
	}
	if to, err = strconv.ParseInt(fields[1], 10, 64); err != nil {
		return 0, 0, fmt.Errorf("%w: %q", errBadNodeID, fields[1])
	}
	return from, to, nil
}
