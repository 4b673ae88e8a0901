package avl

import (
	"fmt"

	"github.com/emicklei/dot"
)

// DotGraph renders the tree in Graphviz DOT format. Vertices are labelled
// with the node key and cached height, edges with l or r.
func (t *Tree[K, V]) DotGraph() string {
	graph := dot.NewGraph(dot.Directed)
	if t.root == nil {
		return graph.String()
	}

	var traverse func(node *Node[K, V], parent *dot.Node, direction string)
	traverse = func(node *Node[K, V], parent *dot.Node, direction string) {
		label := fmt.Sprintf("K:%v H:%d", node.key, node.height)
		n := graph.Node(label)
		if parent != nil {
			parent.Edge(n, direction)
		}
		if node.left != nil {
			traverse(node.left, &n, "l")
		}
		if node.right != nil {
			traverse(node.right, &n, "r")
		}
	}
	traverse(t.root, nil, "")

	return graph.String()
}
