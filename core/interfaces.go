package core

// Step is the three-phase contract for a workflow node: Prep gathers the
// input for one cycle, Exec performs the work, Post folds the result back
// into state and picks the next action.
type Step[State any, In any, Out any] interface {
	// Prep produces the input for Exec. ok=false means there is nothing to
	// execute this cycle; Post still runs so the step can route termination.
	Prep(state *State) (in In, ok bool)

	// Exec performs the core work for one cycle. It gets exactly one
	// attempt; on error the node substitutes Fallback's result.
	Exec(in In) (Out, error)

	// Post consumes the cycle result and determines the next action.
	// executed is false when Prep returned ok=false.
	Post(state *State, in In, out Out, executed bool) Action

	// Fallback supplies the Exec result used when Exec returns an error.
	Fallback(err error) Out
}

// Workflow represents a unit of execution that can be connected to other
// workflows by action. Both Node and Flow implement it.
type Workflow[State any] interface {
	// Run executes the workflow logic and returns an action for routing.
	Run(state *State) Action

	// GetSuccessor returns the successor workflow for a given action.
	GetSuccessor(action Action) Workflow[State]

	// AddSuccessor connects a successor workflow for a specific action.
	AddSuccessor(successor Workflow[State], action ...Action) Workflow[State]
}
