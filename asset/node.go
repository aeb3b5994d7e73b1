package asset

import "fmt"

// NodeType identifies the hierarchy level of a tree node.
type NodeType string

const (
	// TypeTenant is level 0, the root of the hierarchy.
	TypeTenant NodeType = "TENANT"

	// TypeProject is level 1.
	TypeProject NodeType = "PROJECT"

	// TypeSubProject is level 2.
	TypeSubProject NodeType = "SUB_PROJECT"

	// TypeEnvironment is level 3, the leaf type; it never has children.
	TypeEnvironment NodeType = "ENVIRONMENT"
)

// IsValid returns true if the node type is valid.
func (t NodeType) IsValid() bool {
	switch t {
	case TypeTenant, TypeProject, TypeSubProject, TypeEnvironment:
		return true
	default:
		return false
	}
}

// String returns the string representation of the node type.
func (t NodeType) String() string {
	return string(t)
}

// Level returns the fixed tree depth for the node type, 0 through 3.
// Invalid types return -1.
func (t NodeType) Level() int {
	switch t {
	case TypeTenant:
		return 0
	case TypeProject:
		return 1
	case TypeSubProject:
		return 2
	case TypeEnvironment:
		return 3
	default:
		return -1
	}
}

// ParseNodeType parses a string into a NodeType value.
// Returns an error if the string is not a valid node type.
func ParseNodeType(s string) (NodeType, error) {
	t := NodeType(s)
	if !t.IsValid() {
		return "", fmt.Errorf("invalid node type: %s", s)
	}
	return t, nil
}

// Node is one entry of the built asset tree. Expanded and Selected are
// derived from the State passed to BuildTree, never stored on source data;
// the tree is rebuilt in full on every state change so it cannot drift
// from the state sets.
type Node struct {
	// ID is unique across the entire tree.
	ID string `json:"id"`

	// Name is the display name.
	Name string `json:"name"`

	// Type is the hierarchy level type.
	Type NodeType `json:"type"`

	// Level is Type.Level(), 0 at the root, +1 per generation.
	Level int `json:"level"`

	// ParentID is the parent node's ID; empty only at level 0.
	ParentID string `json:"parent_id,omitempty"`

	// Expanded reflects membership in the state's expanded set.
	Expanded bool `json:"expanded"`

	// Selected reflects the state's single selected node.
	Selected bool `json:"selected"`

	// Children preserve the source array order. Empty for environments.
	Children []Node `json:"children,omitempty"`

	// Data carries the original source record for the presentation layer.
	Data any `json:"data,omitempty"`
}
