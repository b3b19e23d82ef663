package sankey

import (
	stderrors "errors"
	"math"
	"slices"
	"testing"

	"github.com/matzehuels/chartcore/pkg/errors"
)

const tol = 1e-9

func energyFlows() []Connection {
	return []Connection{
		{Source: "coal", Target: "power", Value: 40},
		{Source: "gas", Target: "power", Value: 20},
		{Source: "gas", Target: "heat", Value: 10},
		{Source: "power", Target: "homes", Value: 35},
		{Source: "power", Target: "industry", Value: 25},
		{Source: "heat", Target: "homes", Value: 10},
	}
}

func TestGraph(t *testing.T) {
	g, err := NewGraph(energyFlows())
	if err != nil {
		t.Fatalf("NewGraph() error: %v", err)
	}

	want := []string{"coal", "power", "gas", "heat", "homes", "industry"}
	if got := g.Nodes(); !slices.Equal(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
	if got := g.Value("power"); got != 60 {
		t.Errorf("Value(power) = %v, want 60", got)
	}
	if got := g.Value("gas"); got != 30 {
		t.Errorf("Value(gas) = %v, want 30", got)
	}
	if got := g.Parents("homes"); !slices.Equal(got, []string{"power", "heat"}) {
		t.Errorf("Parents(homes) = %v", got)
	}
	if got := g.Sources(); !slices.Equal(got, []string{"coal", "gas"}) {
		t.Errorf("Sources() = %v", got)
	}
	if got := g.Sinks(); !slices.Equal(got, []string{"homes", "industry"}) {
		t.Errorf("Sinks() = %v", got)
	}
}

func TestNewGraph_Invalid(t *testing.T) {
	tests := []struct {
		name string
		conn Connection
		code errors.Code
	}{
		{"empty source", Connection{Source: "", Target: "b", Value: 1}, errors.ErrCodeInvalidInput},
		{"negative", Connection{Source: "a", Target: "b", Value: -1}, errors.ErrCodeInvalidInput},
		{"nan", Connection{Source: "a", Target: "b", Value: math.NaN()}, errors.ErrCodeInvalidInput},
		{"self loop", Connection{Source: "a", Target: "a", Value: 1}, errors.ErrCodeGraphCycle},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGraph([]Connection{tt.conn})
			if !errors.Is(err, tt.code) {
				t.Errorf("NewGraph() error = %v, want code %s", err, tt.code)
			}
		})
	}
}

func TestAssignColumns_StrictlyAfterPredecessors(t *testing.T) {
	conns := []Connection{
		{Source: "a", Target: "b", Value: 1},
		{Source: "b", Target: "c", Value: 1},
		{Source: "a", Target: "c", Value: 1},
		{Source: "c", Target: "d", Value: 1},
		{Source: "x", Target: "d", Value: 1},
		{Source: "a", Target: "d", Value: 1},
	}
	g, err := NewGraph(conns)
	if err != nil {
		t.Fatalf("NewGraph() error: %v", err)
	}
	cols, err := AssignColumns(g)
	if err != nil {
		t.Fatalf("AssignColumns() error: %v", err)
	}

	want := map[string]int{"a": 0, "b": 1, "c": 2, "d": 3, "x": 0}
	for id, c := range want {
		if cols[id] != c {
			t.Errorf("column(%s) = %d, want %d", id, cols[id], c)
		}
	}
	for _, c := range conns {
		if cols[c.Target] <= cols[c.Source] {
			t.Errorf("%s (col %d) not after predecessor %s (col %d)", c.Target, cols[c.Target], c.Source, cols[c.Source])
		}
	}
}

func TestAssignColumns_Cycle(t *testing.T) {
	conns := []Connection{
		{Source: "src", Target: "a", Value: 1},
		{Source: "a", Target: "b", Value: 1},
		{Source: "b", Target: "a", Value: 1},
		{Source: "b", Target: "sink", Value: 1},
	}
	_, err := Compute(conns, Options{Width: 100, Height: 100})
	if err == nil {
		t.Fatal("Compute() error = nil, want cycle error")
	}
	if !errors.Is(err, errors.ErrCodeGraphCycle) {
		t.Errorf("GetCode() = %v, want %v", errors.GetCode(err), errors.ErrCodeGraphCycle)
	}
	var cycle *errors.CycleError
	if !stderrors.As(err, &cycle) {
		t.Fatalf("error %v does not wrap *CycleError", err)
	}
	if want := []string{"a", "b", "sink"}; !slices.Equal(cycle.Nodes, want) {
		t.Errorf("CycleError.Nodes = %v, want %v", cycle.Nodes, want)
	}
}

func TestCompute_Geometry(t *testing.T) {
	opts := Options{Width: 500, Height: 300, NodeWidth: 20, NodePadding: 10}
	layout, err := Compute(energyFlows(), opts)
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	if layout.Columns != 3 {
		t.Fatalf("Columns = %d, want 3", layout.Columns)
	}

	// Column 1 (power 60, heat 10) has 2 nodes; column 0 (coal 40, gas 30)
	// and column 2 (homes 45, industry 25) total 70 as well. Max nodes = 2.
	wantScale := (300.0 - 10) / 70
	if math.Abs(layout.Scale-wantScale) > tol {
		t.Errorf("Scale = %v, want %v", layout.Scale, wantScale)
	}

	power, _ := layout.Node("power")
	if power.Column != 1 || power.X != 240 {
		t.Errorf("power column/x = %d/%v, want 1/240", power.Column, power.X)
	}
	heat, _ := layout.Node("heat")
	if math.Abs(heat.Y-(power.Height+10)) > tol {
		t.Errorf("heat.Y = %v, want %v", heat.Y, power.Height+10)
	}
	industry, _ := layout.Node("industry")
	if industry.X != 480 {
		t.Errorf("industry.X = %v, want 480", industry.X)
	}

	for _, n := range layout.Nodes {
		if math.Abs(n.Height-n.Value*layout.Scale) > tol {
			t.Errorf("%s height = %v, want value*scale", n.Name, n.Height)
		}
		if n.Y+n.Height > opts.Height+tol {
			t.Errorf("%s bottom %v exceeds canvas", n.Name, n.Y+n.Height)
		}
	}
}

func TestCompute_FlowsStackInInputOrder(t *testing.T) {
	layout, err := Compute(energyFlows(), Options{Width: 500, Height: 300})
	if err != nil {
		t.Fatalf("Compute() error: %v", err)
	}
	power, _ := layout.Node("power")
	homes, _ := layout.Node("homes")

	// Into power: coal (first), then gas.
	coal := layout.Flows[0]
	gas := layout.Flows[1]
	if math.Abs(coal.TargetY-power.Y) > tol {
		t.Errorf("first flow into power at %v, want top %v", coal.TargetY, power.Y)
	}
	if math.Abs(gas.TargetY-(power.Y+coal.Thickness)) > tol {
		t.Errorf("second flow into power at %v, want %v", gas.TargetY, power.Y+coal.Thickness)
	}

	// Out of power: homes, then industry.
	toHomes, toIndustry := layout.Flows[3], layout.Flows[4]
	if math.Abs(toHomes.SourceY-power.Y) > tol || math.Abs(toIndustry.SourceY-(power.Y+toHomes.Thickness)) > tol {
		t.Errorf("outgoing flows at %v/%v", toHomes.SourceY, toIndustry.SourceY)
	}

	// Into homes: power, then heat.
	fromHeat := layout.Flows[5]
	if math.Abs(fromHeat.TargetY-(homes.Y+toHomes.Thickness)) > tol {
		t.Errorf("heat->homes TargetY = %v, want %v", fromHeat.TargetY, homes.Y+toHomes.Thickness)
	}

	for _, f := range layout.Flows {
		if math.Abs(f.Thickness-f.Connection.Value*layout.Scale) > tol {
			t.Errorf("flow %s->%s thickness not proportional", f.Connection.Source, f.Connection.Target)
		}
	}
}

func TestCompute_Degenerate(t *testing.T) {
	layout, err := Compute(nil, Options{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("Compute(nil) error: %v", err)
	}
	if len(layout.Nodes) != 0 || len(layout.Flows) != 0 {
		t.Errorf("Compute(nil) = %+v, want empty", layout)
	}

	zero, err := Compute([]Connection{{Source: "a", Target: "b", Value: 0}}, Options{Width: 10, Height: 10})
	if err != nil {
		t.Fatalf("Compute(zero) error: %v", err)
	}
	if zero.Scale != 0 || zero.Nodes[1].Height != 0 {
		t.Errorf("Compute(zero) scale/height = %v/%v, want 0", zero.Scale, zero.Nodes[1].Height)
	}

	if _, err := Compute(nil, Options{Width: 0, Height: 10}); !errors.Is(err, errors.ErrCodeInvalidCanvas) {
		t.Errorf("Compute(bad canvas) error = %v, want %s", err, errors.ErrCodeInvalidCanvas)
	}
}
