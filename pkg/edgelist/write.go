package edgelist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/matzehuels/degreerank/pkg/digraph"
)

// Write encodes the graph's edges to w, one "<source> <target>" line per edge,
// ordered by source then target. Isolated nodes cannot be expressed in an
// edge list and are omitted.
func Write(w io.Writer, g *digraph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		if _, err := fmt.Fprintf(bw, "%d %d\n", e.From, e.To); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// WriteFile writes the graph to path, gzip-compressed when path ends in ".gz".
func WriteFile(path string, g *digraph.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if !strings.HasSuffix(path, ".gz") {
		return Write(f, g)
	}
	zw := gzip.NewWriter(f)
	if err := Write(zw, g); err != nil {
		return err
	}
	return zw.Close()
}
