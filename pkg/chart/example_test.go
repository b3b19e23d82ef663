package chart_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/chartcore/pkg/chart"
)

func ExampleReadDataset() {
	src := `
kind = "sankey"

[[flows]]
source = "budget"
target = "rent"
value = 1200

[[flows]]
source = "budget"
target = "food"
value = 400
`
	ds, err := chart.ReadDataset(strings.NewReader(src), chart.FormatTOML)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Kind:", ds.Kind)
	fmt.Println("Flows:", ds.Len())
	// Output:
	// Kind: sankey
	// Flows: 2
}

func ExampleDataset_Validate() {
	ds := chart.Dataset{Kind: chart.KindGauge}
	fmt.Println(ds.Validate())
	// Output:
	// INVALID_INPUT: gauge dataset requires "gauge"
}
