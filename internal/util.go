package internal

import "fmt"

// WalkBack follows cameFrom from current until a node without a
// predecessor, returning current first. A predecessor chain longer than the
// map can only be a cycle, which panics.
func WalkBack[NodeType comparable](cameFrom map[NodeType]NodeType, current NodeType) []NodeType {
	path := []NodeType{current}
	for {
		previousNode, exists := cameFrom[current]
		if !exists {
			return path
		}
		if len(path) > len(cameFrom) {
			panic(fmt.Sprintf("bestfirst: predecessor cycle through %v", previousNode))
		}
		path = append(path, previousNode)
		current = previousNode
	}
}
