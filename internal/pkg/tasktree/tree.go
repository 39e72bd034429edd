package tasktree

import (
	"github.com/madiaz/bizledger/app/models"
)

// Node is one task with its resolved children.
type Node struct {
	Task     models.Task `json:"task"`
	Children []*Node     `json:"children,omitempty"`
}

// Build assembles the task hierarchy from the flat task table. Input order
// is preserved among siblings, so callers should pass rows already ordered
// by position. Tasks whose parent is missing from the input are treated as
// roots rather than dropped.
func Build(tasks []models.Task) []*Node {
	nodes := make(map[uint]*Node, len(tasks))
	order := make([]*Node, 0, len(tasks))
	for _, t := range tasks {
		n := &Node{Task: t}
		nodes[t.ID] = n
		order = append(order, n)
	}

	var roots []*Node
	for _, n := range order {
		if n.Task.ParentID != nil {
			if parent, ok := nodes[*n.Task.ParentID]; ok && parent != n {
				parent.Children = append(parent.Children, n)
				continue
			}
		}
		roots = append(roots, n)
	}

	return roots
}

// CountByStatus tallies tasks per status across the whole tree input.
func CountByStatus(tasks []models.Task) map[string]int {
	counts := make(map[string]int)
	for _, t := range tasks {
		counts[t.Status]++
	}
	return counts
}
