package edgelist

import (
	"bytes"
	"errors"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"

	"github.com/matzehuels/degreerank/pkg/digraph"
	errs "github.com/matzehuels/degreerank/pkg/errors"
)

const sample = `# Directed graph: sample
# FromNodeId	ToNodeId
1 2
2 1

3	1
3 1
`

func TestReadPlain(t *testing.T) {
	g, err := Read(strings.NewReader(sample))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if got, want := g.Nodes(), []int64{1, 2, 3}; !slices.Equal(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3", g.EdgeCount())
	}
	if !g.HasEdge(3, 1) || g.HasEdge(1, 3) {
		t.Error("edge direction not preserved")
	}
}

func TestReadGzip(t *testing.T) {
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(sample)); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}

	g, err := Read(&buf)
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if g.NodeCount() != 3 || g.EdgeCount() != 3 {
		t.Errorf("counts = (%d, %d), want (3, 3)", g.NodeCount(), g.EdgeCount())
	}
}

func TestReadExtraColumns(t *testing.T) {
	g, err := Read(strings.NewReader("1 2 {'weight': 3}\n"))
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !g.HasEdge(1, 2) {
		t.Error("edge 1->2 missing")
	}
}

func TestReadEmpty(t *testing.T) {
	for _, in := range []string{"", "\n", "# only a comment\n", "  \t\n"} {
		g, err := Read(strings.NewReader(in))
		if err != nil {
			t.Fatalf("Read(%q) error: %v", in, err)
		}
		if g.NodeCount() != 0 {
			t.Errorf("Read(%q) NodeCount() = %d, want 0", in, g.NodeCount())
		}
	}
}

func TestReadMalformed(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantLine int
	}{
		{"single field", "1 2\n3\n", 2},
		{"non-integer source", "a 2\n", 1},
		{"non-integer target", "# c\n1 2.5\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.Is(err, errs.ErrCodeParse) {
				t.Errorf("code = %v, want %v", errs.GetCode(err), errs.ErrCodeParse)
			}
			var perr *ParseError
			if !errors.As(err, &perr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			if perr.Line != tt.wantLine {
				t.Errorf("Line = %d, want %d", perr.Line, tt.wantLine)
			}
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt.gz"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("code = %v, want %v", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}
}

func TestWriteFileRoundTrip(t *testing.T) {
	g := digraph.New()
	g.AddEdge(10, 20)
	g.AddEdge(20, 10)
	g.AddEdge(30, 10)

	for _, name := range []string{"edges.txt", "edges.txt.gz"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			if err := WriteFile(path, g); err != nil {
				t.Fatalf("WriteFile() error: %v", err)
			}
			got, err := ReadFile(path)
			if err != nil {
				t.Fatalf("ReadFile() error: %v", err)
			}
			if !slices.Equal(got.Edges(), g.Edges()) {
				t.Errorf("Edges() = %v, want %v", got.Edges(), g.Edges())
			}
		})
	}
}

func TestWrite(t *testing.T) {
	g := digraph.New()
	g.AddEdge(2, 1)
	g.AddEdge(1, 2)

	var buf bytes.Buffer
	if err := Write(&buf, g); err != nil {
		t.Fatalf("Write() error: %v", err)
	}
	if got, want := buf.String(), "1 2\n2 1\n"; got != want {
		t.Errorf("Write() = %q, want %q", got, want)
	}
}
