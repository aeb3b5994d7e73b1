// Package asset builds the tenant hierarchy tree the console's inventory
// sidebar renders. Expand and select state live outside the tree in a
// State value; BuildTree is a pure function of the source data and that
// state.
package asset

// State holds the two independent pieces of tree UI state: the set of
// expanded node IDs and the single selected node. It is owned by the
// caller and passed into BuildTree on every rebuild.
//
// State is not safe for concurrent use.
type State struct {
	expanded map[string]struct{}
	selected string
}

// NewState creates an empty state: everything collapsed, nothing selected.
func NewState() *State {
	return &State{expanded: make(map[string]struct{})}
}

// Toggle flips the expanded flag for a node ID.
func (s *State) Toggle(id string) {
	if _, ok := s.expanded[id]; ok {
		delete(s.expanded, id)
		return
	}
	s.expanded[id] = struct{}{}
}

// IsExpanded reports whether a node ID is in the expanded set.
func (s *State) IsExpanded(id string) bool {
	_, ok := s.expanded[id]
	return ok
}

// Select makes the given node the single selected node, replacing any
// previous selection. An empty ID clears the selection.
func (s *State) Select(id string) {
	s.selected = id
}

// Selected returns the selected node ID, empty when nothing is selected.
func (s *State) Selected() string {
	return s.selected
}

// ExpandAll adds every node of a built tree to the expanded set. Leaf IDs
// are added too, which is harmless since leaves have no expand affordance.
func (s *State) ExpandAll(nodes []Node) {
	for _, n := range nodes {
		s.expanded[n.ID] = struct{}{}
		s.ExpandAll(n.Children)
	}
}

// CollapseAll empties the expanded set.
func (s *State) CollapseAll() {
	s.expanded = make(map[string]struct{})
}

// BuildTree converts the nested tenant data into a tree of typed nodes,
// deriving each node's Expanded and Selected flags from the state. Child
// order equals source array order throughout. A nil state builds a fully
// collapsed, unselected tree.
func BuildTree(tenants []Tenant, state *State) []Node {
	if state == nil {
		state = NewState()
	}
	nodes := make([]Node, 0, len(tenants))
	for i := range tenants {
		t := &tenants[i]
		node := newNode(t.ID, t.Name, TypeTenant, "", t, state)
		for j := range t.Projects {
			p := &t.Projects[j]
			pNode := newNode(p.ID, p.Name, TypeProject, t.ID, p, state)
			for k := range p.SubProjects {
				sp := &p.SubProjects[k]
				spNode := newNode(sp.ID, sp.Name, TypeSubProject, p.ID, sp, state)
				for l := range sp.Environments {
					env := &sp.Environments[l]
					spNode.Children = append(spNode.Children, newNode(env.ID, env.Name, TypeEnvironment, sp.ID, env, state))
				}
				pNode.Children = append(pNode.Children, spNode)
			}
			node.Children = append(node.Children, pNode)
		}
		nodes = append(nodes, node)
	}
	return nodes
}

func newNode(id, name string, typ NodeType, parentID string, data any, state *State) Node {
	return Node{
		ID:       id,
		Name:     name,
		Type:     typ,
		Level:    typ.Level(),
		ParentID: parentID,
		Expanded: state.IsExpanded(id),
		Selected: state.Selected() == id,
		Data:     data,
	}
}
