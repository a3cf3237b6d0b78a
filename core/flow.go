package core

// Flow represents a workflow subgraph that implements Workflow.
type Flow[State any] struct {
	startNode  Workflow[State]
	successors map[Action]Workflow[State]
}

// NewFlow creates a new flow starting at the given workflow.
func NewFlow[State any](startNode Workflow[State]) *Flow[State] {
	return &Flow[State]{
		startNode:  startNode,
		successors: make(map[Action]Workflow[State]),
	}
}

// Run executes workflows in sequence following action-based transitions
// until no successor is registered for the returned action.
func (f *Flow[State]) Run(state *State) Action {
	current := f.startNode
	if current == nil {
		return ActionFailure
	}

	finalAction := ActionSuccess
	for current != nil {
		action := current.Run(state)
		finalAction = action

		next := current.GetSuccessor(action)
		if next == nil {
			next = f.GetSuccessor(action)
		}
		current = next
	}
	return finalAction
}

// GetSuccessor returns the flow-level successor for a given action.
func (f *Flow[State]) GetSuccessor(action Action) Workflow[State] {
	return f.successors[action]
}

// AddSuccessor connects a flow-level successor for a specific action.
func (f *Flow[State]) AddSuccessor(successor Workflow[State], action ...Action) Workflow[State] {
	if successor == nil {
		return successor
	}
	if len(action) == 0 {
		action = append(action, ActionSuccess)
	}
	f.successors[action[0]] = successor
	return successor
}
