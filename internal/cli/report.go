package cli

import (
	"encoding/json"
	"io"
	"strconv"

	"github.com/matzehuels/degreerank/pkg/pipeline"
	"github.com/matzehuels/degreerank/pkg/summary"
)

// printReport writes the human-readable analysis report.
func printReport(w io.Writer, res *pipeline.Result) {
	p := printer{w: w}

	p.success("Read %s", res.Input)
	p.detail("%d nodes · %d edges", res.Nodes, res.Edges)

	for _, path := range res.Charts {
		p.success("Histogram drawn")
		p.file(path)
	}

	for _, sel := range res.Selections {
		p.newline()
		p.title("For nodes with %s of at least %s (%d nodes):", singular(sel.By), formatFloat(sel.Threshold), sel.Count)
		if sel.Err != "" {
			p.warning("%s", sel.Err)
			continue
		}
		printSummary(p, "Copeland score", sel.Copeland)
		printSummary(p, "Degree ratio", sel.Ratio)
	}
}

func printSummary(p printer, label string, s summary.Summary) {
	p.keyValue(0, label, "")
	p.keyValue(1, "mean", formatFloat(s.Mean))
	p.keyValue(1, "median", formatFloat(s.Median))
	p.keyValue(1, "standard deviation", formatFloat(s.StdDev))
}

// singular turns a ranking title into a noun phrase for the report.
func singular(title string) string {
	switch title {
	case pipeline.TitleCopeland:
		return "Copeland score"
	case pipeline.TitleRatio:
		return "degree ratio"
	}
	return strconv.Quote(title)
}

// writeJSON writes the report as indented JSON.
func writeJSON(w io.Writer, res *pipeline.Result) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}
