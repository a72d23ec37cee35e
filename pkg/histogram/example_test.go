package histogram_test

import (
	"fmt"

	"github.com/matzehuels/degreerank/pkg/histogram"
	"github.com/matzehuels/degreerank/pkg/rank"
)

func ExampleBuild() {
	scores := rank.Ranking{1: 0, 2: 1, 3: 2, 4: 3, 5: 4, 6: 4}

	h, err := histogram.Build("Copeland Scores", scores, histogram.WithBins(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println("edges:", h.Edges)
	fmt.Println("counts:", h.Counts)
	fmt.Println("top bin starts at", h.TopBinStart())
	// Output:
	// edges: [0 1 2 3 4]
	// counts: [1 1 1 3]
	// top bin starts at 3
}
