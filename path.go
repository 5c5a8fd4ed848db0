package bestfirst

import (
	"slices"

	"github.com/pdrpinto/bestfirst/internal"
)

// ReconstructPath walks cameFrom back from end until it reaches a node with
// no predecessor. With reverse set the result runs source to end, otherwise
// end to source. A source end yields just [end].
func ReconstructPath[NodeType comparable](cameFrom map[NodeType]NodeType, end NodeType, reverse bool) []NodeType {
	path := internal.WalkBack(cameFrom, end)
	if reverse {
		slices.Reverse(path)
	}
	return path
}
