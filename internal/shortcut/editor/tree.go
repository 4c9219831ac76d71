package editor

import (
	"sort"
	"strings"

	"github.com/dshills/cutline/internal/shortcut"
)

// Node is one entry in the command tree. Category nodes carry children;
// command nodes carry the command id. The tree widget stores only node
// ids; the controller resolves them back to commands.
type Node struct {
	// ID is the tree-wide node identifier.
	ID string

	// Label is the display text.
	Label string

	// CommandID is set on command leaves, empty on category nodes.
	CommandID string

	// Expanded is true for category nodes shown open.
	Expanded bool

	// Visible is false when the node is filtered out.
	Visible bool

	// Children holds command leaves under a category node.
	Children []*Node
}

// IsCategory returns true for category nodes.
func (n *Node) IsCategory() bool {
	return n.CommandID == ""
}

// categoryNodeID derives the node id for a category.
func categoryNodeID(category string) string {
	return "category/" + category
}

// buildTree constructs the category tree from a registry snapshot.
// Categories sort lexicographically and start expanded; commands keep
// the registry's order.
func buildTree(byCategory map[string][]*shortcut.Command) []*Node {
	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	tree := make([]*Node, 0, len(categories))
	for _, cat := range categories {
		catNode := &Node{
			ID:       categoryNodeID(cat),
			Label:    cat,
			Expanded: true,
			Visible:  true,
		}
		for _, cmd := range byCategory[cat] {
			catNode.Children = append(catNode.Children, &Node{
				ID:        cmd.ID,
				Label:     cmd.Name,
				CommandID: cmd.ID,
				Visible:   true,
			})
		}
		tree = append(tree, catNode)
	}
	return tree
}

// applyFilter sets node visibility for a query. A command is visible
// when its label or its category's label contains the query
// (case-insensitive substring); a category is visible only while it has
// at least one visible child. An empty query restores full visibility.
func applyFilter(tree []*Node, query string) {
	query = strings.ToLower(strings.TrimSpace(query))

	for _, cat := range tree {
		if query == "" {
			cat.Visible = true
			for _, child := range cat.Children {
				child.Visible = true
			}
			continue
		}

		catMatches := strings.Contains(strings.ToLower(cat.Label), query)
		anyVisible := false
		for _, child := range cat.Children {
			child.Visible = catMatches || strings.Contains(strings.ToLower(child.Label), query)
			if child.Visible {
				anyVisible = true
			}
		}
		cat.Visible = anyVisible
	}
}
