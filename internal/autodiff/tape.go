package autodiff

// Tape is the linearized computation graph behind a single output value.
//
// Nodes are stored in topological order: every node appears after all of its
// inputs. Walking the tape in reverse therefore visits every node before any
// of the nodes it was computed from, which is the order the chain rule needs.
//
// Usage:
//
//	tape := autodiff.Record(loss)
//	tape.Backward() // same as loss.Backward()
type Tape struct {
	root  *Value
	nodes []*Value
}

// Record linearizes the graph reachable from root through recorded inputs.
//
// The traversal is a depth-first search that appends a node only after all of
// its inputs have been visited. Inputs are explored in operand order and each
// node is recorded once, keyed by identity rather than value. The graph must be
// acyclic, which holds for any graph built through Value operations.
func Record(root *Value) *Tape {
	type frame struct {
		node     *Value
		expanded bool
	}

	visited := make(map[*Value]struct{})
	nodes := make([]*Value, 0, 64)
	stack := []frame{{node: root}}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.expanded {
			nodes = append(nodes, top.node)
			continue
		}
		if _, seen := visited[top.node]; seen {
			continue
		}
		visited[top.node] = struct{}{}

		stack = append(stack, frame{node: top.node, expanded: true})
		// Pushed in reverse so the first operand is explored first.
		for i := len(top.node.inputs) - 1; i >= 0; i-- {
			if _, seen := visited[top.node.inputs[i]]; !seen {
				stack = append(stack, frame{node: top.node.inputs[i]})
			}
		}
	}

	return &Tape{root: root, nodes: nodes}
}

// TopologicalOrder returns the nodes reachable from root, inputs before the
// nodes computed from them. The last element is root itself.
func TopologicalOrder(root *Value) []*Value {
	return Record(root).Nodes()
}

// Root returns the value the tape was recorded from.
func (t *Tape) Root() *Value {
	return t.root
}

// Nodes returns the recorded nodes in topological order.
func (t *Tape) Nodes() []*Value {
	return t.nodes
}

// Len returns the number of recorded nodes.
func (t *Tape) Len() int {
	return len(t.nodes)
}

// Backward seeds the root gradient with 1 and propagates gradients to every
// recorded node by walking the tape in reverse.
//
// Gradients accumulate: nodes that already carry a gradient from an earlier
// pass keep it and receive the new contributions on top. Values are never
// changed.
func (t *Tape) Backward() {
	t.root.grad = 1
	for i := len(t.nodes) - 1; i >= 0; i-- {
		t.nodes[i].propagate()
	}
}
