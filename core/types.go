package core

// Action represents the result of a step execution that determines flow
// control.
type Action string

// Common actions
const (
	ActionContinue Action = "continue"
	ActionSuccess  Action = "success"
	ActionFailure  Action = "failure"
	ActionDefault  Action = "default"
)
