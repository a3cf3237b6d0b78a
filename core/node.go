package core

// Node adapts a Step into a Workflow with action-based routing.
type Node[State any, In any, Out any] struct {
	step       Step[State, In, Out]
	successors map[Action]Workflow[State]
}

// NewNode creates a node around the given step.
func NewNode[State any, In any, Out any](step Step[State, In, Out]) *Node[State, In, Out] {
	return &Node[State, In, Out]{
		step:       step,
		successors: make(map[Action]Workflow[State]),
	}
}

// Run executes one Prep/Exec/Post cycle. Exec gets exactly one attempt; an
// error is absorbed through Fallback so the cycle always completes.
func (n *Node[State, In, Out]) Run(state *State) Action {
	in, ok := n.step.Prep(state)
	if !ok {
		var zero Out
		return n.step.Post(state, in, zero, false)
	}

	out, err := n.step.Exec(in)
	if err != nil {
		out = n.step.Fallback(err)
	}

	return n.step.Post(state, in, out, true)
}

// AddSuccessor adds a successor for an action. With no action given the
// successor is registered under ActionDefault.
func (n *Node[State, In, Out]) AddSuccessor(workflow Workflow[State], action ...Action) Workflow[State] {
	if workflow == nil {
		return workflow
	}
	if len(action) == 0 {
		n.successors[ActionDefault] = workflow
		return workflow
	}
	n.successors[action[0]] = workflow
	return workflow
}

// GetSuccessor gets the next workflow for the given action.
func (n *Node[State, In, Out]) GetSuccessor(action Action) Workflow[State] {
	return n.successors[action]
}
