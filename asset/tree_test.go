package asset

import "testing"

func fixtureTenants() []Tenant {
	return []Tenant{
		{
			ID:   "t1",
			Name: "Acme",
			Projects: []Project{
				{
					ID:   "p1",
					Name: "Storefront",
					SubProjects: []SubProject{
						{
							ID:   "sp1",
							Name: "Checkout",
							Environments: []Environment{
								{ID: "e1", Name: "prod", VulnerabilitiesCount: 4, RiskScore: 7.1},
								{ID: "e2", Name: "staging"},
							},
						},
						{ID: "sp2", Name: "Catalog"},
					},
				},
				{ID: "p2", Name: "Billing"},
			},
		},
		{ID: "t2", Name: "Globex"},
	}
}

// collect walks a built tree pre-order.
func collect(nodes []Node) []Node {
	var out []Node
	for _, n := range nodes {
		out = append(out, n)
		out = append(out, collect(n.Children)...)
	}
	return out
}

func TestBuildTree_LevelsAndOrder(t *testing.T) {
	tree := BuildTree(fixtureTenants(), NewState())

	if len(tree) != 2 {
		t.Fatalf("BuildTree() roots = %d, want 2", len(tree))
	}
	if tree[0].ID != "t1" || tree[1].ID != "t2" {
		t.Error("root order should match source array order")
	}

	for _, n := range collect(tree) {
		if n.Level != n.Type.Level() {
			t.Errorf("node %s level = %d, want %d", n.ID, n.Level, n.Type.Level())
		}
		for _, child := range n.Children {
			if child.Level != n.Level+1 {
				t.Errorf("child %s level = %d, want parent+1 = %d", child.ID, child.Level, n.Level+1)
			}
			if child.ParentID != n.ID {
				t.Errorf("child %s parentID = %q, want %q", child.ID, child.ParentID, n.ID)
			}
		}
		if n.Type == TypeEnvironment && len(n.Children) != 0 {
			t.Errorf("environment %s has children", n.ID)
		}
	}

	// Child order preserved at every level.
	p1 := tree[0].Children[0]
	if p1.Children[0].ID != "sp1" || p1.Children[1].ID != "sp2" {
		t.Error("sub-project order should match source array order")
	}
	sp1 := p1.Children[0]
	if sp1.Children[0].ID != "e1" || sp1.Children[1].ID != "e2" {
		t.Error("environment order should match source array order")
	}
}

func TestBuildTree_UniqueIDs(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range collect(BuildTree(fixtureTenants(), NewState())) {
		if seen[n.ID] {
			t.Errorf("duplicate node ID %s", n.ID)
		}
		seen[n.ID] = true
	}
	if len(seen) != 8 {
		t.Errorf("tree has %d nodes, want 8", len(seen))
	}
}

func TestBuildTree_DerivesStateFlags(t *testing.T) {
	state := NewState()
	state.Toggle("p1")
	state.Select("e1")

	for _, n := range collect(BuildTree(fixtureTenants(), state)) {
		if got, want := n.Expanded, n.ID == "p1"; got != want {
			t.Errorf("node %s Expanded = %v, want %v", n.ID, got, want)
		}
		if got, want := n.Selected, n.ID == "e1"; got != want {
			t.Errorf("node %s Selected = %v, want %v", n.ID, got, want)
		}
	}
}

func TestBuildTree_NilStateCollapsed(t *testing.T) {
	for _, n := range collect(BuildTree(fixtureTenants(), nil)) {
		if n.Expanded || n.Selected {
			t.Errorf("node %s should be collapsed and unselected with nil state", n.ID)
		}
	}
}

func TestState_ToggleTwiceRestores(t *testing.T) {
	state := NewState()
	state.Toggle("t1")
	if !state.IsExpanded("t1") {
		t.Fatal("Toggle() should expand a collapsed node")
	}
	state.Toggle("t1")
	if state.IsExpanded("t1") {
		t.Error("second Toggle() should restore collapsed state")
	}
}

func TestState_SingleSelection(t *testing.T) {
	state := NewState()
	state.Select("e1")
	state.Select("e2")
	if state.Selected() != "e2" {
		t.Errorf("Selected() = %q, want %q", state.Selected(), "e2")
	}

	tree := BuildTree(fixtureTenants(), state)
	selected := 0
	for _, n := range collect(tree) {
		if n.Selected {
			selected++
		}
	}
	if selected != 1 {
		t.Errorf("tree has %d selected nodes, want 1", selected)
	}

	state.Select("")
	if state.Selected() != "" {
		t.Error("Select(\"\") should clear the selection")
	}
}

func TestState_ExpandAllCollapseAll(t *testing.T) {
	state := NewState()
	tree := BuildTree(fixtureTenants(), state)

	state.ExpandAll(tree)
	rebuilt := BuildTree(fixtureTenants(), state)
	for _, n := range collect(rebuilt) {
		if !n.Expanded {
			t.Errorf("node %s should be expanded after ExpandAll", n.ID)
		}
	}

	state.CollapseAll()
	rebuilt = BuildTree(fixtureTenants(), state)
	for _, n := range collect(rebuilt) {
		if n.Expanded {
			t.Errorf("node %s should be collapsed after CollapseAll", n.ID)
		}
	}

	// CollapseAll then ExpandAll lands every node expanded again.
	state.ExpandAll(rebuilt)
	for _, n := range collect(BuildTree(fixtureTenants(), state)) {
		if !n.Expanded {
			t.Errorf("node %s should be expanded after collapse/expand cycle", n.ID)
		}
	}
}

func TestNodeType_Level(t *testing.T) {
	tests := []struct {
		typ  NodeType
		want int
	}{
		{TypeTenant, 0},
		{TypeProject, 1},
		{TypeSubProject, 2},
		{TypeEnvironment, 3},
		{NodeType("bogus"), -1},
	}
	for _, tt := range tests {
		if got := tt.typ.Level(); got != tt.want {
			t.Errorf("NodeType(%q).Level() = %d, want %d", tt.typ, got, tt.want)
		}
	}
}

func TestParseNodeType(t *testing.T) {
	nt, err := ParseNodeType("SUB_PROJECT")
	if err != nil {
		t.Fatalf("ParseNodeType(SUB_PROJECT) error = %v", err)
	}
	if nt != TypeSubProject {
		t.Errorf("ParseNodeType(SUB_PROJECT) = %v, want %v", nt, TypeSubProject)
	}
	if _, err := ParseNodeType("REGION"); err == nil {
		t.Error("ParseNodeType(REGION) expected error, got nil")
	}
}
