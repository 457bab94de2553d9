package internal

// WalkParents follows parent links from current and returns every node
// visited, current first. The walk stops after appending the first node that
// is its own parent. ok is false if a node has no parent or the chain is
// longer than limit.
func WalkParents[NodeType comparable](
	parentOf func(NodeType) (NodeType, bool),
	current NodeType,
	limit int,
) (path []NodeType, ok bool) {
	for steps := 0; steps < limit; steps++ {
		path = append(path, current)
		parent, exists := parentOf(current)
		if !exists {
			return path, false
		}
		if parent == current {
			return path, true
		}
		current = parent
	}
	return path, false
}
